package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/marcelsud/github-webhook-counter/config"
	"github.com/marcelsud/github-webhook-counter/counter"
	"github.com/marcelsud/github-webhook-counter/counter/postgres"
	"github.com/marcelsud/github-webhook-counter/internal/app"
)

/*
Counter CLI - reads the configured counter store

	go run ./cmd/counter                   # today's count
	go run ./cmd/counter -date 2026-10-01  # count for a given UTC day
	go run ./cmd/counter -migrate          # create the postgres table

Backend and table come from the same configuration as the API.
*/

func main() {
	date := flag.String("date", "", "UTC day as YYYY-MM-DD, empty for today")
	migrate := flag.Bool("migrate", false, "create the postgres counter table and exit")
	flag.Parse()

	cfg, err := config.GetConfig()
	if err != nil {
		fmt.Println(err)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if *migrate {
		if err := migratePostgres(ctx, cfg); err != nil {
			fmt.Println(err)
			return
		}
		fmt.Printf("table %s ready\n", cfg.EventTable)
		return
	}

	store, err := app.NewCounterStore(ctx, cfg)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer store.Close(ctx)

	s := counter.NewService(store)
	var r counter.Record
	if *date == "" {
		r, err = s.Today(ctx)
	} else {
		r, err = s.Get(ctx, *date)
	}
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%s %d\n", r.Date, r.Count)
}

func migratePostgres(ctx context.Context, cfg *config.Config) error {
	if cfg.CounterBackend != config.BackendPostgres {
		return fmt.Errorf("-migrate needs COUNTER_BACKEND=postgres, got %q", cfg.CounterBackend)
	}
	store, err := postgres.NewStore(cfg.PostgresDSN, cfg.EventTable)
	if err != nil {
		return err
	}
	defer store.Close(ctx)
	return store.EnsureSchema(ctx)
}
