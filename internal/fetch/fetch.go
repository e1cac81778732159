// Package fetch provides the shared transport used by venue adapters: an
// HTTP client with retry and a headless-Chromium session helper for venues
// that render their listings with JavaScript.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	UserAgent      = "dc-screenings/1.0 (github.com/dcfilmcal/screenings)"
	DefaultTimeout = 30 * time.Second

	maxRetries = 3
)

// Client fetches venue pages over plain HTTP.
type Client struct {
	client *http.Client
}

// NewClient creates a Client with the given per-request timeout. A zero
// timeout falls back to DefaultTimeout.
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Get fetches a URL and returns the response body, retrying transient
// failures with exponential backoff. Client errors (4xx) are not retried;
// a venue that returns 404 will keep returning it.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	var body []byte

	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("creating request: %w", err))
		}
		req.Header.Set("User-Agent", UserAgent)

		resp, err := c.client.Do(req)
		if err != nil {
			return fmt.Errorf("fetching page: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			err := fmt.Errorf("unexpected status code: %d", resp.StatusCode)
			if resp.StatusCode >= 400 && resp.StatusCode < 500 {
				return backoff.Permanent(err)
			}
			return err
		}

		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("reading body: %w", err)
		}
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxRetries), ctx)

	if err := backoff.Retry(operation, policy); err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}

	return body, nil
}
