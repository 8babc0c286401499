package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/marcelsud/github-webhook-counter/counter"
)

/*
PostgreSQL implementation of counter.Store

One row per day. The increment is a single INSERT ... ON CONFLICT DO UPDATE,
so concurrent requests for the same date never read-then-write.
The table name comes from configuration and is always quoted with pq.QuoteIdentifier.
*/

type Store struct {
	DB    *sql.DB
	table string
}

// NewStore opens a PostgreSQL store with the default pool (25, 5, 5 min)
func NewStore(connectionString, table string) (*Store, error) {
	return NewStoreWithPoolConfig(connectionString, table, 25, 5, 5)
}

// NewStoreWithPoolConfig opens a PostgreSQL store with a custom pool
// maxOpenConns: maximum simultaneous connections (0 = unlimited)
// maxIdleConns: maximum idle connections kept in the pool
// maxLifeMinutes: maximum time a connection may be reused
func NewStoreWithPoolConfig(connectionString, table string, maxOpenConns, maxIdleConns, maxLifeMinutes int) (*Store, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("opening postgres connection: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("pinging postgres: %w", err)
	}

	if maxOpenConns > 0 {
		db.SetMaxOpenConns(maxOpenConns)
	}
	if maxIdleConns > 0 {
		db.SetMaxIdleConns(maxIdleConns)
	}
	if maxLifeMinutes > 0 {
		db.SetConnMaxLifetime(time.Duration(maxLifeMinutes) * time.Minute)
	}

	return NewStoreWithDB(db, table), nil
}

// NewStoreWithDB wraps an open database handle
func NewStoreWithDB(db *sql.DB, table string) *Store {
	return &Store{
		DB:    db,
		table: pq.QuoteIdentifier(table),
	}
}

// EnsureSchema creates the counter table when it does not exist
func (s *Store) EnsureSchema(ctx context.Context) error {
	query := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		date TEXT PRIMARY KEY,
		event_count BIGINT NOT NULL DEFAULT 0
	)`, s.table)

	if _, err := s.DB.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("creating table %s: %w", s.table, err)
	}
	return nil
}

// Increment upserts the row for date and returns the new count
func (s *Store) Increment(ctx context.Context, date string) (counter.Record, error) {
	query := fmt.Sprintf(`INSERT INTO %s AS c (date, event_count)
		VALUES ($1, 1)
		ON CONFLICT (date) DO UPDATE SET event_count = c.event_count + 1
		RETURNING date, event_count`, s.table)

	var r counter.Record
	err := s.DB.QueryRowContext(ctx, query, date).Scan(&r.Date, &r.Count)
	if err != nil {
		return counter.Record{}, fmt.Errorf("upserting count: %w", err)
	}
	return r, nil
}

// Get returns the count for date, zero when there is no row
func (s *Store) Get(ctx context.Context, date string) (counter.Record, error) {
	query := fmt.Sprintf("SELECT event_count FROM %s WHERE date = $1", s.table)

	r := counter.Record{Date: date}
	err := s.DB.QueryRowContext(ctx, query, date).Scan(&r.Count)
	if errors.Is(err, sql.ErrNoRows) {
		return r, nil
	}
	if err != nil {
		return counter.Record{}, fmt.Errorf("selecting count: %w", err)
	}
	return r, nil
}

// Close closes the database pool
func (s *Store) Close(ctx context.Context) error {
	return s.DB.Close()
}
