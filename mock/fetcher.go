// Package mock provides function-field mock implementations of the
// tenderwatch interfaces for testing.
package mock

import (
	"context"

	"github.com/brunesco/tenderwatch"
)

var _ tenderwatch.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of tenderwatch.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*tenderwatch.Response, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*tenderwatch.Response, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
