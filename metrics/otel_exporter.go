package metrics

import (
	"context"
	"fmt"
	"net/http"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/marcelsud/github-webhook-counter/webhook"
)

// OTelExporter provides OpenTelemetry metrics export following OTel standards.
// It also implements webhook.Recorder.
type OTelExporter struct {
	meterProvider *sdkmetric.MeterProvider
	collector     Collector
	handler       http.Handler

	// OTel meters and instruments
	meter            metric.Meter
	deliveries       metric.Int64Counter
	dailyEventsGauge metric.Int64ObservableGauge
}

// NewOTelExporter creates a new OpenTelemetry metrics exporter with Prometheus format
// registered on the default Prometheus registry
func NewOTelExporter(collector Collector) (*OTelExporter, error) {
	return newOTelExporter(collector, prom.DefaultRegisterer, promhttp.Handler())
}

// NewOTelExporterWithRegistry registers on reg and serves only what reg gathers
func NewOTelExporterWithRegistry(collector Collector, reg *prom.Registry) (*OTelExporter, error) {
	return newOTelExporter(collector, reg, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
}

func newOTelExporter(collector Collector, reg prom.Registerer, handler http.Handler) (*OTelExporter, error) {
	exporter, err := prometheus.New(prometheus.WithRegisterer(reg))
	if err != nil {
		return nil, fmt.Errorf("creating prometheus exporter: %w", err)
	}

	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
	)
	otel.SetMeterProvider(meterProvider)

	meter := meterProvider.Meter(
		"github-webhook-counter",
		metric.WithInstrumentationVersion("1.0.0"),
	)

	oe := &OTelExporter{
		meterProvider: meterProvider,
		collector:     collector,
		handler:       handler,
		meter:         meter,
	}

	if err := oe.registerInstruments(); err != nil {
		return nil, fmt.Errorf("registering instruments: %w", err)
	}

	return oe, nil
}

// registerInstruments creates and registers all OpenTelemetry metric instruments
func (oe *OTelExporter) registerInstruments() error {
	var err error

	oe.deliveries, err = oe.meter.Int64Counter(
		"webhook.deliveries",
		metric.WithDescription("Number of webhook deliveries handled, by outcome"),
		metric.WithUnit("{deliveries}"),
	)
	if err != nil {
		return fmt.Errorf("creating deliveries counter: %w", err)
	}

	oe.dailyEventsGauge, err = oe.meter.Int64ObservableGauge(
		"webhook.events.daily",
		metric.WithDescription("Events counted for the current UTC day"),
		metric.WithUnit("{events}"),
		metric.WithInt64Callback(oe.observeDailyEvents),
	)
	if err != nil {
		return fmt.Errorf("creating daily events gauge: %w", err)
	}

	return nil
}

// observeDailyEvents is a callback that reports today's stored count
func (oe *OTelExporter) observeDailyEvents(ctx context.Context, observer metric.Int64Observer) error {
	m, err := oe.collector.Collect(ctx)
	if err != nil {
		return err
	}

	observer.Observe(m.Today.Count, metric.WithAttributes(
		attribute.String("date", m.Today.Date),
	))

	return nil
}

// RecordDelivery counts one finished delivery
func (oe *OTelExporter) RecordDelivery(ctx context.Context, outcome webhook.Outcome, result webhook.Result) {
	oe.deliveries.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome.String()),
		attribute.String("result", result.String()),
		attribute.Bool("client_error", outcome.IsClientError()),
	))
}

// ServeHTTP serves Prometheus-formatted metrics on the given HTTP handler
func (oe *OTelExporter) ServeHTTP() http.Handler {
	return oe.handler
}

// Shutdown gracefully shuts down the meter provider
func (oe *OTelExporter) Shutdown(ctx context.Context) error {
	if oe.meterProvider != nil {
		return oe.meterProvider.Shutdown(ctx)
	}
	return nil
}
