package webhook

/* Outcome is the terminal state of one Receive call
 * Received -> SecretFetched -> Validated -> Counted
 * with early exits SecretFailed, Rejected and StoreFailed
 */
type Outcome int

const (
	Counted Outcome = iota + 1
	Rejected
	SecretFailed
	StoreFailed
)

// String returns the string representation of the outcome
func (o Outcome) String() string {
	switch o {
	case Counted:
		return "counted"
	case Rejected:
		return "rejected"
	case SecretFailed:
		return "secret_failed"
	case StoreFailed:
		return "store_failed"
	default:
		return "unknown"
	}
}

// IsClientError reports whether the outcome was caused by the caller's input
func (o Outcome) IsClientError() bool {
	return o == Rejected
}
