package metrics

import (
	"context"
	"time"

	"github.com/marcelsud/github-webhook-counter/counter"
)

// Metrics represents the current state of the event counter.
type Metrics struct {
	// Today is the counter record for the current UTC day
	Today counter.Record `json:"today"`

	// Timestamp when metrics were collected
	Timestamp time.Time `json:"timestamp"`
}

// Collector defines the interface for collecting metrics from the counter store.
type Collector interface {
	// Collect gathers current metrics from the system
	Collect(ctx context.Context) (Metrics, error)
}
