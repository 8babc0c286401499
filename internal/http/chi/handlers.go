package chi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog"
	"github.com/marcelsud/github-webhook-counter/counter"
	"github.com/marcelsud/github-webhook-counter/webhook"
)

const requestTimeout = 30 * time.Second

// Handlers sets up the webhook receiver and the count read API.
// metricsHandler is mounted on /metrics when not nil.
func Handlers(ctx context.Context, webhookService webhook.UseCase, counts counter.UseCase, metricsHandler http.Handler) *chi.Mux {
	logger := httplog.NewLogger("github-webhook-counter", httplog.Options{
		JSON: true,
	})

	r := chi.NewRouter()
	r.Use(httplog.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	if metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", metricsHandler)
	}

	// legacy path kept for existing hook configurations
	r.Method(http.MethodPost, "/webhook", postWebhook(webhookService))

	r.Route("/v1", func(r chi.Router) {
		r.Method(http.MethodPost, "/webhooks/github", postWebhook(webhookService))
		r.Method(http.MethodGet, "/counts/today", getCountToday(counts))
		r.Method(http.MethodGet, "/counts/{date}", getCount(counts))
	})

	return r
}
