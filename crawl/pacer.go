package crawl

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// DefaultRequestDelay is the cooperative pacing delay between outbound
// requests, matching roughly one request per 1.2 seconds.
const DefaultRequestDelay = 1200 * time.Millisecond

// Pacer bounds the outbound request rate using a token bucket with a burst
// of 1, so at most one request is released per configured interval. It is
// the only shared resource a future parallel pipeline would need to
// coordinate besides the store's write path.
type Pacer struct {
	limiter *rate.Limiter
}

// NewPacer creates a Pacer releasing one request per delay interval.
// A non-positive delay disables pacing.
func NewPacer(delay time.Duration) *Pacer {
	if delay <= 0 {
		return &Pacer{limiter: rate.NewLimiter(rate.Inf, 1)}
	}
	return &Pacer{limiter: rate.NewLimiter(rate.Every(delay), 1)}
}

// Wait blocks until the pacing interval allows the next request.
// Returns an error if the context is canceled before the wait completes.
func (p *Pacer) Wait(ctx context.Context) error {
	return p.limiter.Wait(ctx)
}
