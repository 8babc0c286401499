package secret

import (
	"context"
	"errors"
)

// DefaultName is the logical name of the GitHub webhook signing secret
const DefaultName = "github-webhook-secret"

var ErrNotFound = errors.New("secret not found")

/* Provider supplies a secret value by logical name
 * Implementations fetch on every call, callers must not cache the value.
 * An empty value with a nil error means the secret exists but is unset.
 */
type Provider interface {
	GetSecret(ctx context.Context, name string) (string, error)
}
