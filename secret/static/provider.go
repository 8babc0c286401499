package static

import (
	"context"
	"fmt"

	"github.com/marcelsud/github-webhook-counter/secret"
)

// Provider serves secrets held in memory, typically read from the environment
type Provider struct {
	values map[string]string
}

// NewProvider creates a provider holding a single named value
func NewProvider(name, value string) *Provider {
	return &Provider{
		values: map[string]string{name: value},
	}
}

// GetSecret returns the value stored under name
func (p *Provider) GetSecret(ctx context.Context, name string) (string, error) {
	v, ok := p.values[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", secret.ErrNotFound, name)
	}
	return v, nil
}
