package memory

import (
	"context"
	"sync"

	"github.com/marcelsud/github-webhook-counter/counter"
)

/* In-memory implementation of counter.Store
 * Used for local development and tests. Counts are lost on restart.
 */

type Store struct {
	mu     sync.Mutex
	counts map[string]int64
}

// NewStore creates an empty in-memory store
func NewStore() *Store {
	return &Store{
		counts: make(map[string]int64),
	}
}

// Increment adds one to the count for date under a single lock
func (s *Store) Increment(ctx context.Context, date string) (counter.Record, error) {
	if err := ctx.Err(); err != nil {
		return counter.Record{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts[date]++
	return counter.Record{Date: date, Count: s.counts[date]}, nil
}

// Get returns the count for date, zero when absent
func (s *Store) Get(ctx context.Context, date string) (counter.Record, error) {
	if err := ctx.Err(); err != nil {
		return counter.Record{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return counter.Record{Date: date, Count: s.counts[date]}, nil
}

// Close is a no-op
func (s *Store) Close(ctx context.Context) error {
	return nil
}
