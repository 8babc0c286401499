package metrics

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/marcelsud/github-webhook-counter/counter"
	"github.com/marcelsud/github-webhook-counter/counter/mocks"
	"github.com/marcelsud/github-webhook-counter/webhook"
)

type staticCollector struct {
	record counter.Record
}

func (c staticCollector) Collect(ctx context.Context) (Metrics, error) {
	return Metrics{Today: c.record, Timestamp: time.Now()}, nil
}

func scrape(t *testing.T, oe *OTelExporter) string {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	oe.ServeHTTP().ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	body, err := io.ReadAll(w.Body)
	require.NoError(t, err)
	return string(body)
}

func TestOTelExporter(t *testing.T) {
	ctx := context.Background()

	t.Run("success - exposes daily gauge and delivery counter", func(t *testing.T) {
		oe, err := NewOTelExporterWithRegistry(
			staticCollector{record: counter.Record{Date: "2026-10-16", Count: 7}},
			prom.NewRegistry(),
		)
		require.NoError(t, err)
		defer oe.Shutdown(ctx)

		oe.RecordDelivery(ctx, webhook.Counted, webhook.Valid)
		oe.RecordDelivery(ctx, webhook.Rejected, webhook.SignatureMismatch)

		body := scrape(t, oe)
		assert.Contains(t, body, "webhook_events_daily")
		assert.Contains(t, body, `date="2026-10-16"`)
		assert.Contains(t, body, "webhook_deliveries")
		assert.Contains(t, body, `outcome="counted"`)
		assert.Contains(t, body, `result="signature_mismatch"`)
		assert.Contains(t, body, `client_error="true"`)
	})

	t.Run("success - exporter satisfies the recorder", func(t *testing.T) {
		oe, err := NewOTelExporterWithRegistry(staticCollector{}, prom.NewRegistry())
		require.NoError(t, err)
		defer oe.Shutdown(ctx)

		var _ webhook.Recorder = oe
	})
}

func TestCounterCollector(t *testing.T) {
	ctx := context.Background()

	t.Run("success - reports today's record", func(t *testing.T) {
		counts := mocks.NewUseCase(t)
		counts.On("Today", mock.Anything).Return(counter.Record{Date: "2026-10-16", Count: 3}, nil)
		c := NewCounterCollector(counts)

		m, err := c.Collect(ctx)
		require.NoError(t, err)
		assert.Equal(t, counter.Record{Date: "2026-10-16", Count: 3}, m.Today)
		assert.False(t, m.Timestamp.IsZero())
	})

	t.Run("error - store failure is wrapped", func(t *testing.T) {
		counts := mocks.NewUseCase(t)
		storeErr := errors.New("connection refused")
		counts.On("Today", mock.Anything).Return(counter.Record{}, storeErr)
		c := NewCounterCollector(counts)

		_, err := c.Collect(ctx)
		require.Error(t, err)
		assert.ErrorIs(t, err, storeErr)
	})
}
