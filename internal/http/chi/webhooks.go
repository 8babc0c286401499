package chi

import (
	"io"
	"net/http"

	"github.com/go-chi/httplog"
	"github.com/marcelsud/github-webhook-counter/webhook"
)

// postWebhook handles POST /webhook and POST /v1/webhooks/github.
// The body is passed on untouched because the signature covers the raw bytes.
func postWebhook(webhookService webhook.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "failed to read request body", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		req := webhook.NewRequest(r.Method, r.URL.Path, r.Header, body)
		httplog.LogEntrySetField(r.Context(), "delivery_id", req.DeliveryID())
		httplog.LogEntrySetField(r.Context(), "event", req.Event())

		resp := webhookService.Receive(r.Context(), req)
		httplog.LogEntrySetField(r.Context(), "outcome", resp.Outcome.String())

		w.Header().Set("Content-Type", resp.ContentType)
		w.WriteHeader(resp.StatusCode)
		w.Write(resp.Body)
	})
}
