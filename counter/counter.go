package counter

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the ISO 8601 calendar date used as the record key
const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date")

/* Record is the event count for one UTC calendar day
 * Uses value semantics as it represents data, not behavior
 */
type Record struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// Key returns the record key for t, always taken in UTC
func Key(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// ParseDate validates a record key
func ParseDate(date string) (string, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return t.Format(DateLayout), nil
}
