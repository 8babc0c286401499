package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/go-github/v66/github"
	"github.com/google/uuid"
	"github.com/marcelsud/github-webhook-counter/config"
	"github.com/marcelsud/github-webhook-counter/webhook/signature"
)

/*
CLI - sends one signed test delivery to a running receiver

	go run ./cmd/cli -url http://localhost:8080/webhook -event ping
	go run ./cmd/cli -generate-secret

The secret defaults to GITHUB_WEBHOOK_SECRET from the environment or .env.
*/

const defaultPayload = `{"zen":"Responsive is better than fast.","hook_id":1}`

func main() {
	url := flag.String("url", "http://localhost:8080/webhook", "receiver URL")
	event := flag.String("event", "ping", "value for the X-GitHub-Event header")
	payload := flag.String("payload", defaultPayload, "raw request body")
	key := flag.String("secret", "", "signing secret, overrides GITHUB_WEBHOOK_SECRET")
	generate := flag.Bool("generate-secret", false, "print a new random secret and exit")
	flag.Parse()

	if *generate {
		s, err := signature.GenerateSecret(32)
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Println(s)
		return
	}

	if *key == "" {
		cfg, err := config.GetConfig()
		if err != nil {
			fmt.Println(err)
			return
		}
		*key = cfg.WebhookSecret
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	body := []byte(*payload)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, *url, bytes.NewReader(body))
	if err != nil {
		fmt.Println(err)
		return
	}
	deliveryID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(signature.Header, signature.Compute(*key, body))
	req.Header.Set(github.EventTypeHeader, *event)
	req.Header.Set(github.DeliveryIDHeader, deliveryID)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("delivery %s -> %s\n%s\n", deliveryID, resp.Status, respBody)
}
