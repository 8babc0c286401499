package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/marcelsud/github-webhook-counter/counter"
	"github.com/redis/go-redis/v9"
)

/* Redis implementation of counter.Store
 * All daily counts live in one hash named after the table: HINCRBY {table} {date} 1
 * HINCRBY creates the field at zero when absent, so the upsert is a single command
 */

const DefaultTable = "github-events"

type Store struct {
	client *redis.Client
	table  string
}

// NewStore connects to Redis and verifies the connection
func NewStore(addr, password string, db int, table string) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connecting to Redis: %w", err)
	}

	return NewStoreWithClient(client, table), nil
}

// NewStoreWithClient wraps an existing client
func NewStoreWithClient(client *redis.Client, table string) *Store {
	if table == "" {
		table = DefaultTable
	}
	return &Store{
		client: client,
		table:  table,
	}
}

// Increment atomically adds one to the count for date
func (s *Store) Increment(ctx context.Context, date string) (counter.Record, error) {
	count, err := s.client.HIncrBy(ctx, s.table, date, 1).Result()
	if err != nil {
		return counter.Record{}, fmt.Errorf("incrementing %s in %s: %w", date, s.table, err)
	}
	return counter.Record{Date: date, Count: count}, nil
}

// Get returns the count for date, zero when the field does not exist
func (s *Store) Get(ctx context.Context, date string) (counter.Record, error) {
	count, err := s.client.HGet(ctx, s.table, date).Int64()
	if errors.Is(err, redis.Nil) {
		return counter.Record{Date: date}, nil
	}
	if err != nil {
		return counter.Record{}, fmt.Errorf("getting %s from %s: %w", date, s.table, err)
	}
	return counter.Record{Date: date, Count: count}, nil
}

// Close closes the Redis connection
func (s *Store) Close(ctx context.Context) error {
	return s.client.Close()
}

// GetClient returns the underlying Redis client for advanced operations
func (s *Store) GetClient() *redis.Client {
	return s.client
}
