// Package pacing provides the rate policy applied between external calls.
package pacing

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Pacer throttles successive external calls. It replaces inline sleeps so
// the policy can be swapped without touching strategy or aggregation logic.
type Pacer interface {
	// Wait blocks until the next call is allowed or ctx is done.
	Wait(ctx context.Context) error
}

type limiterPacer struct {
	limiter *rate.Limiter
}

// NewIntervalPacer allows one call per interval, with a burst of one.
func NewIntervalPacer(interval time.Duration) Pacer {
	return &limiterPacer{limiter: rate.NewLimiter(rate.Every(interval), 1)}
}

func (p *limiterPacer) Wait(ctx context.Context) error {
	return p.limiter.Wait(ctx)
}

type nopPacer struct{}

// NewNopPacer returns a pacer that never waits, for offline backends and tests.
func NewNopPacer() Pacer { return nopPacer{} }

func (nopPacer) Wait(ctx context.Context) error { return ctx.Err() }
