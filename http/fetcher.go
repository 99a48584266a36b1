// Package http provides an HTTP-based implementation of tenderwatch.Fetcher
// for fetching tender listing and detail pages.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/brunesco/tenderwatch"
)

// DefaultFetchTimeout is the default timeout for HTTP requests. Some of the
// official portals respond slowly, so this is generous.
const DefaultFetchTimeout = 25 * time.Second

// DefaultUserAgent identifies the fetcher to the portals. A few of them
// reject requests without a browser-like agent string.
const DefaultUserAgent = "Mozilla/5.0 (compatible; tenderwatch/1.0)"

// Ensure Fetcher implements tenderwatch.Fetcher at compile time.
var _ tenderwatch.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves pages over plain HTTP requests. It does not execute
// JavaScript, which the supported portals do not require.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (25s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the content at the given URL. Any non-200 response is an
// error so that callers cannot mistake an error page for tender content.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*tenderwatch.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &tenderwatch.Response{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        string(body),
	}, nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
