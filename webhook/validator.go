package webhook

import "github.com/marcelsud/github-webhook-counter/webhook/signature"

// Validate checks req against secret and returns the first failing check.
// The order is fixed: secret, signature header, event header, delivery header, signature.
// Nothing after the first failure is evaluated, the HMAC included.
func Validate(req Request, secret string) Result {
	if secret == "" {
		return MissingSecret
	}
	supplied := req.Signature()
	if supplied == "" {
		return MissingSignatureHeader
	}
	if req.Event() == "" {
		return MissingEventTypeHeader
	}
	if req.DeliveryID() == "" {
		return MissingDeliveryIDHeader
	}
	if !signature.Equal(supplied, signature.Compute(secret, req.Body)) {
		return SignatureMismatch
	}
	return Valid
}
