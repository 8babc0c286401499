package webhook

import "net/http"

/* Result is the outcome of request validation
 * Every failure has its own status code and message, callers depend on both
 */
type Result int

const (
	Valid Result = iota + 1
	MissingSecret
	MissingSignatureHeader
	MissingEventTypeHeader
	MissingDeliveryIDHeader
	SignatureMismatch
)

// String returns the string representation of the result
func (r Result) String() string {
	switch r {
	case Valid:
		return "valid"
	case MissingSecret:
		return "missing_secret"
	case MissingSignatureHeader:
		return "missing_signature_header"
	case MissingEventTypeHeader:
		return "missing_event_type_header"
	case MissingDeliveryIDHeader:
		return "missing_delivery_id_header"
	case SignatureMismatch:
		return "signature_mismatch"
	default:
		return "unvalidated"
	}
}

// StatusCode returns the HTTP status reported for the result
func (r Result) StatusCode() int {
	switch r {
	case Valid:
		return http.StatusOK
	case MissingEventTypeHeader:
		return http.StatusUnprocessableEntity
	case MissingSecret, MissingSignatureHeader, MissingDeliveryIDHeader, SignatureMismatch:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the plain text body reported for a failed result
func (r Result) Message() string {
	switch r {
	case MissingSecret:
		return "Must provide a GitHub webhook secret"
	case MissingSignatureHeader:
		return "No X-Hub-Signature found on request"
	case MissingEventTypeHeader:
		return "No X-Github-Event found on request"
	case MissingDeliveryIDHeader:
		return "No X-Github-Delivery found on request"
	case SignatureMismatch:
		return "X-Hub-Signature incorrect. Github webhook token doesn't match"
	default:
		return ""
	}
}
