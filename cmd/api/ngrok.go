package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"dialogflow-fulfillment/pkg/log"
)

const (
	ngrokAttempts = 10
	ngrokInterval = 3 * time.Second
)

// ngrokTunnelsResponse matches the /api/tunnels response from the ngrok local API.
type ngrokTunnelsResponse struct {
	Tunnels []ngrokTunnel `json:"tunnels"`
}

type ngrokTunnel struct {
	PublicURL string `json:"public_url"`
	Proto     string `json:"proto"`
}

// logWebhookURLs logs the URLs to paste into the Dialogflow fulfillment settings.
func logWebhookURLs(ctx context.Context, l log.Logger, publicURL, ngrokAPIBase string) {
	if publicURL == "" && ngrokAPIBase != "" {
		detected, err := detectNgrokURL(ctx, ngrokAPIBase, ngrokInterval)
		if err != nil {
			l.Warnf(ctx, "Could not detect ngrok URL: %v", err)
			return
		}
		l.Infof(ctx, "Auto-detected ngrok URL: %s", detected)
		publicURL = detected
	}
	if publicURL == "" {
		return
	}

	l.Infof(ctx, "Fulfillment webhook URL: %s/webhook/fulfillment", publicURL)
	l.Infof(ctx, "No-input webhook URL: %s/webhook/no-input", publicURL)
}

// detectNgrokURL queries the ngrok local API and returns the first HTTPS tunnel URL.
// It retries to handle ngrok starting after this service.
func detectNgrokURL(ctx context.Context, ngrokAPIBase string, interval time.Duration) (string, error) {
	url := ngrokAPIBase + "/api/tunnels"
	client := &http.Client{Timeout: 5 * time.Second}

	wait := func() error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(interval):
			return nil
		}
	}

	var lastErr error
	for attempt := 1; attempt <= ngrokAttempts; attempt++ {
		tunnels, err := fetchTunnels(ctx, client, url)
		if err != nil {
			lastErr = err
		} else {
			// Prefer HTTPS tunnels
			for _, t := range tunnels.Tunnels {
				if t.Proto == "https" {
					return t.PublicURL, nil
				}
			}
			if len(tunnels.Tunnels) > 0 {
				return tunnels.Tunnels[0].PublicURL, nil
			}
			lastErr = fmt.Errorf("no active tunnels")
		}

		if attempt < ngrokAttempts {
			if err := wait(); err != nil {
				return "", err
			}
		}
	}

	return "", fmt.Errorf("ngrok not ready after %d attempts: %w", ngrokAttempts, lastErr)
}

func fetchTunnels(ctx context.Context, client *http.Client, url string) (ngrokTunnelsResponse, error) {
	var tunnels ngrokTunnelsResponse

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return tunnels, fmt.Errorf("failed to create ngrok API request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return tunnels, fmt.Errorf("ngrok API not reachable: %w", err)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(&tunnels); err != nil {
		return tunnels, fmt.Errorf("failed to decode ngrok API response: %w", err)
	}
	return tunnels, nil
}
