package scrape

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Pacer spaces lesson interactions out using a token bucket, so the target
// site sees at most one interaction per interval and trailing UI transitions
// have time to finish. A nil Pacer never waits.
type Pacer struct {
	limiter *rate.Limiter
}

// NewPacer creates a Pacer allowing one interaction per interval, with a
// burst of 1 so the first lesson starts immediately.
func NewPacer(interval time.Duration) *Pacer {
	return &Pacer{limiter: rate.NewLimiter(rate.Every(interval), 1)}
}

// Wait blocks until the pacer allows the next interaction.
// Returns an error if the context is canceled before the wait completes.
func (p *Pacer) Wait(ctx context.Context) error {
	if p == nil {
		return nil
	}
	return p.limiter.Wait(ctx)
}
