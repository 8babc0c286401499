package ssm

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/marcelsud/github-webhook-counter/secret"
)

/* SSM Parameter Store implementation of secret.Provider
 * Parameters are read with decryption, so SecureString values come back in plain text.
 */

// API is the subset of the SSM client used by the provider
type API interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

type Provider struct {
	client API
}

// NewProvider creates a provider over an existing client
func NewProvider(client API) *Provider {
	return &Provider{
		client: client,
	}
}

// NewProviderFromConfig builds the SSM client from an AWS config
func NewProviderFromConfig(cfg aws.Config) *Provider {
	return NewProvider(ssm.NewFromConfig(cfg))
}

// GetSecret fetches and decrypts the parameter called name
func (p *Provider) GetSecret(ctx context.Context, name string) (string, error) {
	out, err := p.client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(true),
	})
	var notFound *types.ParameterNotFound
	if errors.As(err, &notFound) {
		return "", fmt.Errorf("%w: %s: %w", secret.ErrNotFound, name, err)
	}
	if err != nil {
		return "", fmt.Errorf("getting parameter %s: %w", name, err)
	}
	if out.Parameter == nil {
		return "", nil
	}
	return aws.ToString(out.Parameter.Value), nil
}
