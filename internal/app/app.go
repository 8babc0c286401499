package app

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/marcelsud/github-webhook-counter/config"
	"github.com/marcelsud/github-webhook-counter/counter"
	"github.com/marcelsud/github-webhook-counter/counter/dynamodb"
	"github.com/marcelsud/github-webhook-counter/counter/memory"
	"github.com/marcelsud/github-webhook-counter/counter/postgres"
	"github.com/marcelsud/github-webhook-counter/counter/redis"
	"github.com/marcelsud/github-webhook-counter/secret"
	"github.com/marcelsud/github-webhook-counter/secret/ssm"
	"github.com/marcelsud/github-webhook-counter/secret/static"
)

/* app builds the collaborators shared by every binary
 * The binaries only differ in how they expose the webhook service.
 */

// NewCounterStore opens the store named by cfg.CounterBackend
func NewCounterStore(ctx context.Context, cfg *config.Config) (counter.Store, error) {
	switch cfg.CounterBackend {
	case config.BackendMemory:
		return memory.NewStore(), nil
	case config.BackendRedis:
		return redis.NewStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.EventTable)
	case config.BackendPostgres:
		return postgres.NewStore(cfg.PostgresDSN, cfg.EventTable)
	case config.BackendDynamoDB:
		awsCfg, err := loadAWSConfig(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return dynamodb.NewStoreFromConfig(awsCfg, cfg.EventTable, cfg.DynamoDBEndpoint), nil
	default:
		return nil, fmt.Errorf("unknown counter backend %q", cfg.CounterBackend)
	}
}

// NewSecretProvider returns the provider named by cfg.SecretBackend.
// The env provider serves GITHUB_WEBHOOK_SECRET under the configured secret name.
func NewSecretProvider(ctx context.Context, cfg *config.Config) (secret.Provider, error) {
	switch cfg.SecretBackend {
	case config.SecretFromEnv:
		return static.NewProvider(cfg.SecretName, cfg.WebhookSecret), nil
	case config.SecretFromSSM:
		awsCfg, err := loadAWSConfig(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return ssm.NewProviderFromConfig(awsCfg), nil
	default:
		return nil, fmt.Errorf("unknown secret backend %q", cfg.SecretBackend)
	}
}

func loadAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if cfg.AWSRegion != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.AWSRegion))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("loading AWS config: %w", err)
	}
	return awsCfg, nil
}
