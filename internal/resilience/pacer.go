package resilience

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Pacer spaces out consecutive provider calls. It replaces ad hoc sleeps
// with an injectable policy object: production code passes a real interval,
// tests pass zero and never sleep.
//
// The first Wait returns immediately; subsequent calls block until the
// interval has elapsed since the previous one.
type Pacer struct {
	limiter *rate.Limiter
}

// NewPacer creates a Pacer with the given minimum interval between calls.
// A non-positive interval disables pacing.
func NewPacer(interval time.Duration) *Pacer {
	if interval <= 0 {
		return &Pacer{}
	}
	return &Pacer{limiter: rate.NewLimiter(rate.Every(interval), 1)}
}

// Wait blocks until the next call is allowed or the context is done.
func (p *Pacer) Wait(ctx context.Context) error {
	if p == nil || p.limiter == nil {
		return ctx.Err()
	}
	return p.limiter.Wait(ctx)
}
