package webhook_test

import (
	"net/http"
	"testing"

	"github.com/marcelsud/github-webhook-counter/webhook"
	"github.com/marcelsud/github-webhook-counter/webhook/signature"
	"github.com/stretchr/testify/assert"
)

const testSecret = "It's a Secret to Everybody"

var testBody = []byte(`{"zen":"Design for failure.","hook_id":42}`)

func signedRequest(secret string, body []byte) webhook.Request {
	headers := http.Header{}
	headers.Set("X-Hub-Signature", signature.Compute(secret, body))
	headers.Set("X-GitHub-Event", "ping")
	headers.Set("X-GitHub-Delivery", "72d3162e-cc78-11e3-81ab-4c9367dc0958")
	return webhook.NewRequest(http.MethodPost, "/webhook", headers, body)
}

func without(req webhook.Request, headers ...string) webhook.Request {
	h := req.Headers.Clone()
	for _, name := range headers {
		h.Del(name)
	}
	return webhook.NewRequest(req.Method, req.Path, h, req.Body)
}

func TestValidate(t *testing.T) {
	t.Run("success - correct signature is valid", func(t *testing.T) {
		assert.Equal(t, webhook.Valid, webhook.Validate(signedRequest(testSecret, testBody), testSecret))
	})

	t.Run("failure - empty secret comes first", func(t *testing.T) {
		req := without(signedRequest(testSecret, testBody), "X-Hub-Signature", "X-GitHub-Event", "X-GitHub-Delivery")
		assert.Equal(t, webhook.MissingSecret, webhook.Validate(req, ""))
	})

	t.Run("failure - missing signature header", func(t *testing.T) {
		req := without(signedRequest(testSecret, testBody), "X-Hub-Signature", "X-GitHub-Event")
		assert.Equal(t, webhook.MissingSignatureHeader, webhook.Validate(req, testSecret))
	})

	t.Run("failure - empty signature header counts as missing", func(t *testing.T) {
		req := signedRequest(testSecret, testBody)
		req.Headers.Set("X-Hub-Signature", "")
		assert.Equal(t, webhook.MissingSignatureHeader, webhook.Validate(req, testSecret))
	})

	t.Run("failure - missing event header with valid signature", func(t *testing.T) {
		req := without(signedRequest(testSecret, testBody), "X-GitHub-Event")
		assert.Equal(t, webhook.MissingEventTypeHeader, webhook.Validate(req, testSecret))
	})

	t.Run("failure - missing event header is reported before missing delivery", func(t *testing.T) {
		req := without(signedRequest(testSecret, testBody), "X-GitHub-Event", "X-GitHub-Delivery")
		assert.Equal(t, webhook.MissingEventTypeHeader, webhook.Validate(req, testSecret))
	})

	t.Run("failure - missing delivery header with valid signature", func(t *testing.T) {
		req := without(signedRequest(testSecret, testBody), "X-GitHub-Delivery")
		assert.Equal(t, webhook.MissingDeliveryIDHeader, webhook.Validate(req, testSecret))
	})

	t.Run("failure - missing header wins over a bad signature", func(t *testing.T) {
		req := without(signedRequest("wrong", testBody), "X-GitHub-Delivery")
		assert.Equal(t, webhook.MissingDeliveryIDHeader, webhook.Validate(req, testSecret))
	})

	t.Run("failure - signature made with another secret", func(t *testing.T) {
		assert.Equal(t, webhook.SignatureMismatch, webhook.Validate(signedRequest("wrong", testBody), testSecret))
	})

	t.Run("failure - body changed after signing", func(t *testing.T) {
		req := signedRequest(testSecret, testBody)
		req.Body = []byte(`{"zen":"Design for failure.","hook_id":43}`)
		assert.Equal(t, webhook.SignatureMismatch, webhook.Validate(req, testSecret))
	})
}

func TestResult(t *testing.T) {
	cases := []struct {
		result  webhook.Result
		status  int
		message string
	}{
		{webhook.MissingSecret, http.StatusUnauthorized, "Must provide a GitHub webhook secret"},
		{webhook.MissingSignatureHeader, http.StatusUnauthorized, "No X-Hub-Signature found on request"},
		{webhook.MissingEventTypeHeader, http.StatusUnprocessableEntity, "No X-Github-Event found on request"},
		{webhook.MissingDeliveryIDHeader, http.StatusUnauthorized, "No X-Github-Delivery found on request"},
		{webhook.SignatureMismatch, http.StatusUnauthorized, "X-Hub-Signature incorrect. Github webhook token doesn't match"},
	}

	for _, c := range cases {
		t.Run(c.result.String(), func(t *testing.T) {
			assert.Equal(t, c.status, c.result.StatusCode())
			assert.Equal(t, c.message, c.result.Message())
		})
	}

	t.Run("zero value is unvalidated", func(t *testing.T) {
		var r webhook.Result
		assert.Equal(t, "unvalidated", r.String())
		assert.Equal(t, http.StatusInternalServerError, r.StatusCode())
	})
}
