package webhook

import (
	"encoding/json"
	"net/http"

	"github.com/google/go-github/v66/github"
	"github.com/marcelsud/github-webhook-counter/webhook/signature"
)

/* Request represents one inbound GitHub webhook delivery
 * Uses value semantics as it represents data, not behavior.
 * Body holds the raw bytes exactly as received, they are what gets signed.
 */
type Request struct {
	Method  string
	Path    string
	Headers http.Header
	Body    []byte
}

// NewRequest copies headers so later changes by the caller do not leak in
func NewRequest(method, path string, headers http.Header, body []byte) Request {
	return Request{
		Method:  method,
		Path:    path,
		Headers: headers.Clone(),
		Body:    body,
	}
}

// Signature returns the X-Hub-Signature header value
func (r Request) Signature() string {
	return r.Headers.Get(signature.Header)
}

// Event returns the X-GitHub-Event header value
func (r Request) Event() string {
	return r.Headers.Get(github.EventTypeHeader)
}

// DeliveryID returns the X-GitHub-Delivery header value
func (r Request) DeliveryID() string {
	return r.Headers.Get(github.DeliveryIDHeader)
}

// MarshalJSON renders the request the way it is echoed back to the caller
func (r Request) MarshalJSON() ([]byte, error) {
	headers := make(map[string]string, len(r.Headers))
	for key, values := range r.Headers {
		if len(values) > 0 {
			headers[key] = values[0]
		}
	}
	return json.Marshal(struct {
		HTTPMethod string            `json:"httpMethod,omitempty"`
		Path       string            `json:"path,omitempty"`
		Headers    map[string]string `json:"headers"`
		Body       string            `json:"body"`
	}{
		HTTPMethod: r.Method,
		Path:       r.Path,
		Headers:    headers,
		Body:       string(r.Body),
	})
}
