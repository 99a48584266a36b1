package crawl

import (
	"context"
	"time"

	"github.com/brunesco/tenderwatch"
)

// DefaultRetryDelays returns the backoff delays between fetch attempts:
// 1s then 2s (two retries, linearly increasing).
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second}
}

// FetchWithRetry attempts to fetch a URL with linear backoff retry logic.
// It retries up to 2 times (3 total attempts) with delays of 1s, 2s.
func FetchWithRetry(ctx context.Context, fetcher tenderwatch.Fetcher, url string) (*tenderwatch.Response, error) {
	return FetchWithRetryDelays(ctx, fetcher, url, DefaultRetryDelays())
}

// FetchWithRetryDelays is like FetchWithRetry but allows configurable delays.
// This is useful for testing without waiting for real delays.
func FetchWithRetryDelays(ctx context.Context, fetcher tenderwatch.Fetcher, url string, delays []time.Duration) (*tenderwatch.Response, error) {
	maxAttempts := len(delays) + 1 // 1 initial + N retries

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		resp, err := fetcher.Fetch(ctx, url)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		// Don't sleep after the last attempt
		if attempt >= maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return nil, lastErr
}
