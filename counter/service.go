package counter

import (
	"context"
	"fmt"
	"time"
)

// UseCase defines the operations on the daily event counter
type UseCase interface {
	IncrementToday(ctx context.Context) (Record, error)
	Today(ctx context.Context) (Record, error)
	Get(ctx context.Context, date string) (Record, error)
}

type Service struct {
	Store Store
	Now   func() time.Time
}

// NewService creates a new counter service with dependency injection
func NewService(store Store) *Service {
	return &Service{
		Store: store,
		Now:   time.Now,
	}
}

// IncrementToday adds one to the record of the current UTC date.
// The date is taken when the call is made. Store failures are returned as is, without retry.
func (s *Service) IncrementToday(ctx context.Context) (Record, error) {
	date := Key(s.Now())
	r, err := s.Store.Increment(ctx, date)
	if err != nil {
		return Record{}, fmt.Errorf("incrementing count for %s: %w", date, err)
	}
	return r, nil
}

// Today returns the record of the current UTC date
func (s *Service) Today(ctx context.Context) (Record, error) {
	return s.Get(ctx, Key(s.Now()))
}

// Get returns the record for date
func (s *Service) Get(ctx context.Context, date string) (Record, error) {
	date, err := ParseDate(date)
	if err != nil {
		return Record{}, err
	}
	r, err := s.Store.Get(ctx, date)
	if err != nil {
		return Record{}, fmt.Errorf("getting count for %s: %w", date, err)
	}
	return r, nil
}
