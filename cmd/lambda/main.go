package main

import (
	"context"
	"fmt"
	"os"

	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/marcelsud/github-webhook-counter/config"
	"github.com/marcelsud/github-webhook-counter/counter"
	"github.com/marcelsud/github-webhook-counter/internal/app"
	"github.com/marcelsud/github-webhook-counter/internal/lambda"
	"github.com/marcelsud/github-webhook-counter/internal/logger"
	"github.com/marcelsud/github-webhook-counter/webhook"
)

/* Lambda entry point behind API Gateway
 * Defaults to SSM for the secret and DynamoDB for the counter when the
 * environment does not say otherwise.
 */

func main() {
	setDefault("COUNTER_BACKEND", config.BackendDynamoDB)
	setDefault("SECRET_BACKEND", config.SecretFromSSM)
	cfg, err := config.GetConfig()
	if err != nil {
		fmt.Println(err)
		return
	}
	log, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		fmt.Println(err)
		return
	}
	ctx := context.Background()

	store, err := app.NewCounterStore(ctx, cfg)
	if err != nil {
		log.Error().Err(err).Str("backend", cfg.CounterBackend).Msg("opening counter store")
		return
	}
	defer store.Close(ctx)

	secrets, err := app.NewSecretProvider(ctx, cfg)
	if err != nil {
		log.Error().Err(err).Str("backend", cfg.SecretBackend).Msg("creating secret provider")
		return
	}

	s := webhook.NewService(webhook.Config{SecretName: cfg.SecretName}, secrets, counter.NewService(store), log)
	awslambda.Start(lambda.NewHandler(s, log).Handle)
}

func setDefault(key, value string) {
	if _, ok := os.LookupEnv(key); !ok {
		os.Setenv(key, value)
	}
}
