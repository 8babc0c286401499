package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog"
	"github.com/marcelsud/github-webhook-counter/counter"
)

/* HTTP layer DTO for the count read API
 * Separate from domain entities to avoid leaking internal structure
 */
type countResponse struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// getCountToday handles GET /v1/counts/today
func getCountToday(counts counter.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		record, err := counts.Today(r.Context())
		writeCount(w, r, record, err)
	})
}

// getCount handles GET /v1/counts/{date}
func getCount(counts counter.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		record, err := counts.Get(r.Context(), chi.URLParam(r, "date"))
		writeCount(w, r, record, err)
	})
}

func writeCount(w http.ResponseWriter, r *http.Request, record counter.Record, err error) {
	switch {
	case errors.Is(err, counter.ErrInvalidDate):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		oplog := httplog.LogEntry(r.Context())
		oplog.Error().Err(err).Msg("reading event count")
		http.Error(w, "Error reading event counter store", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(countResponse{Date: record.Date, Count: record.Count}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
