package webhook

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/marcelsud/github-webhook-counter/counter"
	"github.com/marcelsud/github-webhook-counter/secret"
	"github.com/rs/zerolog"
)

/* Service represents the business logic layer
 * Uses pointer semantics as it's an API, not data
 */

const (
	ContentTypeText = "text/plain"
	ContentTypeJSON = "application/json"

	MessageSecretUnavailable = "Error retrieving webhook secret"
	MessageStoreFailure      = "Error writing to event counter store"
)

// UseCase defines the business operations for webhook deliveries
type UseCase interface {
	Receive(ctx context.Context, req Request) Response
}

// Recorder observes every finished delivery
type Recorder interface {
	RecordDelivery(ctx context.Context, outcome Outcome, result Result)
}

// Config holds the settings the service needs, resolved once at startup
type Config struct {
	SecretName string
}

// Response is what the transport writes back to the caller
type Response struct {
	StatusCode  int
	ContentType string
	Body        []byte
	Outcome     Outcome
	Result      Result
	Record      *counter.Record
}

type Service struct {
	Config   Config
	Secrets  secret.Provider
	Counter  counter.UseCase
	Logger   zerolog.Logger
	Recorder Recorder
}

// NewService creates a new webhook service with dependency injection
func NewService(cfg Config, secrets secret.Provider, counts counter.UseCase, logger zerolog.Logger) *Service {
	if cfg.SecretName == "" {
		cfg.SecretName = secret.DefaultName
	}
	return &Service{
		Config:  cfg,
		Secrets: secrets,
		Counter: counts,
		Logger:  logger,
	}
}

// Receive authenticates one delivery and counts it.
// Steps run in order and the first failure produces the response.
// The secret is fetched on every call and never logged.
func (s *Service) Receive(ctx context.Context, req Request) Response {
	logger := s.Logger.With().
		Str("delivery_id", req.DeliveryID()).
		Str("event", req.Event()).
		Logger()

	key, err := s.Secrets.GetSecret(ctx, s.Config.SecretName)
	if err != nil {
		logger.Error().Err(err).Str("secret_name", s.Config.SecretName).Msg("fetching webhook secret")
		return s.finish(ctx, Response{
			StatusCode:  http.StatusInternalServerError,
			ContentType: ContentTypeText,
			Body:        []byte(MessageSecretUnavailable),
			Outcome:     SecretFailed,
		})
	}

	result := Validate(req, key)
	if result != Valid {
		logger.Warn().Str("result", result.String()).Msg("webhook rejected")
		return s.finish(ctx, Response{
			StatusCode:  result.StatusCode(),
			ContentType: ContentTypeText,
			Body:        []byte(result.Message()),
			Outcome:     Rejected,
			Result:      result,
		})
	}

	record, err := s.Counter.IncrementToday(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("writing event count")
		return s.finish(ctx, Response{
			StatusCode:  http.StatusInternalServerError,
			ContentType: ContentTypeText,
			Body:        []byte(MessageStoreFailure),
			Outcome:     StoreFailed,
			Result:      result,
		})
	}
	logger.Info().Str("date", record.Date).Int64("count", record.Count).Msg("webhook counted")

	body, err := json.Marshal(struct {
		Input Request `json:"input"`
	}{Input: req})
	if err != nil {
		// the count is already stored, so the outcome stays Counted
		logger.Error().Err(err).Msg("encoding response")
		body = []byte(`{}`)
	}

	return s.finish(ctx, Response{
		StatusCode:  http.StatusOK,
		ContentType: ContentTypeJSON,
		Body:        body,
		Outcome:     Counted,
		Result:      result,
		Record:      &record,
	})
}

func (s *Service) finish(ctx context.Context, resp Response) Response {
	if s.Recorder != nil {
		s.Recorder.RecordDelivery(ctx, resp.Outcome, resp.Result)
	}
	return resp
}
