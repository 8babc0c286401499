package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/marcelsud/github-webhook-counter/counter"
)

// CounterCollector implements the Collector interface on top of the counter service
type CounterCollector struct {
	counts counter.UseCase
	now    func() time.Time
}

// NewCounterCollector creates a collector reading from counts
func NewCounterCollector(counts counter.UseCase) *CounterCollector {
	return &CounterCollector{
		counts: counts,
		now:    time.Now,
	}
}

// Collect reads today's record from the store
func (c *CounterCollector) Collect(ctx context.Context) (Metrics, error) {
	today, err := c.counts.Today(ctx)
	if err != nil {
		return Metrics{}, fmt.Errorf("getting today's count: %w", err)
	}

	return Metrics{
		Today:     today,
		Timestamp: c.now().UTC(),
	}, nil
}
