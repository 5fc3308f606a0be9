// Package http provides an HTTP-based implementation of
// dealerscout.Fetcher for downloading dealer website pages. Dealer sites
// are fetched as served; there is no JavaScript rendering.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/jmalczyk/dealerscout"
)

// DefaultFetchTimeout bounds every page download. Dealer sites are often
// slow; anything past this is treated as content-unavailable upstream.
const DefaultFetchTimeout = 10 * time.Second

// userAgent identifies the tool to dealer sites.
const userAgent = "dealerscout/1.0 (+https://github.com/jmalczyk/dealerscout)"

// Ensure Fetcher implements dealerscout.Fetcher at compile time.
var _ dealerscout.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using plain HTTP requests.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL. Non-2xx responses
// return EUNAVAILABLE so callers can fall through to "no content".
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", dealerscout.Errorf(dealerscout.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", dealerscout.Errorf(dealerscout.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
