package counter

import "context"

/* Small, focused interfaces
 * Every backend must implement Increment as a single atomic upsert,
 * never as a read followed by a write
 */

// Reader provides read access to daily records
type Reader interface {
	/* Get returns the record for date
	 * A date that was never incremented yields a zero count, not an error
	 */
	Get(ctx context.Context, date string) (Record, error)
}

// Writer provides the atomic increment-or-initialize operation
type Writer interface {
	/* Increment sets count = (existing count, or 0 if absent) + 1 for date
	 * and returns the record as stored after the update
	 */
	Increment(ctx context.Context, date string) (Record, error)
}

type Store interface {
	Reader
	Writer
	Close(ctx context.Context) error
}
