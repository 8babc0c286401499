package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/marcelsud/github-webhook-counter/config"
	"github.com/marcelsud/github-webhook-counter/counter"
	"github.com/marcelsud/github-webhook-counter/internal/app"
	"github.com/marcelsud/github-webhook-counter/internal/http/chi"
	"github.com/marcelsud/github-webhook-counter/internal/logger"
	"github.com/marcelsud/github-webhook-counter/metrics"
	"github.com/marcelsud/github-webhook-counter/webhook"
)

const TIMEOUT = 30 * time.Second

/* "a porta de entrada e saída da minha aplicação"
 * All wiring happens here: config, logger, stores, services and the HTTP server.
 * Imports only go one way: down. cmd imports the business packages, which import storage.
 */

func main() {
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
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT,
	)
	defer stop()

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

	counts := counter.NewService(store)
	exporter, err := metrics.NewOTelExporter(metrics.NewCounterCollector(counts))
	if err != nil {
		log.Error().Err(err).Msg("creating metrics exporter")
		return
	}
	defer exporter.Shutdown(context.Background())

	s := webhook.NewService(webhook.Config{SecretName: cfg.SecretName}, secrets, counts, log)
	s.Recorder = exporter

	r := chi.Handlers(ctx, s, counts, exporter.ServeHTTP())
	srv := &http.Server{
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		Addr:         ":" + cfg.Port,
		Handler:      r,
	}

	errShutdown := make(chan error, 1)
	go shutdown(srv, ctx, errShutdown)
	log.Info().
		Str("port", cfg.Port).
		Str("counter_backend", cfg.CounterBackend).
		Str("secret_backend", cfg.SecretBackend).
		Msg("listening")
	err = srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Error().Err(err).Msg("serving http")
		return
	}
	err = <-errShutdown
	if err != nil {
		log.Error().Err(err).Msg("shutting down")
		return
	}
	log.Info().Msg("server stopped")
}

func shutdown(server *http.Server, ctxShutdown context.Context, errShutdown chan error) {
	<-ctxShutdown.Done()

	ctxTimeout, stop := context.WithTimeout(context.Background(), TIMEOUT)
	defer stop()

	err := server.Shutdown(ctxTimeout)
	switch err {
	case nil:
		errShutdown <- nil
	case context.DeadlineExceeded:
		errShutdown <- fmt.Errorf("forcing closing the server")
	default:
		errShutdown <- fmt.Errorf("forcing closing the server: %w", err)
	}
}
