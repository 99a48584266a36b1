package tenderwatch

import "context"

// Response is the part of an HTTP response the extraction pipeline cares
// about: the body text and enough of the headers to detect PDF payloads.
type Response struct {
	StatusCode  int
	ContentType string
	Body        string
}

// Fetcher retrieves pages over the network.
//
// Implementations treat any non-200 status as an error; the pipeline treats
// an exhausted fetch as "no data" rather than a failure.
type Fetcher interface {
	// Fetch retrieves the page at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (*Response, error)

	// Close releases underlying resources.
	Close() error
}
