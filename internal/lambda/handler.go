package lambda

import (
	"context"
	"encoding/base64"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/marcelsud/github-webhook-counter/webhook"
	"github.com/rs/zerolog"
)

/* Handler binds the webhook service to API Gateway proxy events
 * Every outcome is returned as a proxy response, the error return is always nil
 * so Lambda never retries a delivery.
 */
type Handler struct {
	Service webhook.UseCase
	Logger  zerolog.Logger
}

// NewHandler creates a handler for svc
func NewHandler(svc webhook.UseCase, logger zerolog.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  logger,
	}
}

// Handle converts the event, runs the service and converts the response back
func (h *Handler) Handle(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	body := []byte(event.Body)
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(event.Body)
		if err != nil {
			h.Logger.Warn().Err(err).Msg("decoding base64 body")
			return events.APIGatewayProxyResponse{
				StatusCode: http.StatusBadRequest,
				Headers:    map[string]string{"Content-Type": webhook.ContentTypeText},
				Body:       "failed to read request body",
			}, nil
		}
		body = decoded
	}

	req := webhook.NewRequest(event.HTTPMethod, event.Path, headers(event), body)
	resp := h.Service.Receive(ctx, req)

	return events.APIGatewayProxyResponse{
		StatusCode: resp.StatusCode,
		Headers:    map[string]string{"Content-Type": resp.ContentType},
		Body:       string(resp.Body),
	}, nil
}

// headers prefers the multi-value map and falls back to the single-value one
func headers(event events.APIGatewayProxyRequest) http.Header {
	h := http.Header{}
	if len(event.MultiValueHeaders) > 0 {
		for key, values := range event.MultiValueHeaders {
			for _, v := range values {
				h.Add(key, v)
			}
		}
		return h
	}
	for key, v := range event.Headers {
		h.Set(key, v)
	}
	return h
}
