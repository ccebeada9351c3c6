package universe

import (
	"context"
	"time"
)

// Ticker paces generations at a fixed rate.
type Ticker struct {
	t *time.Ticker
}

// NewTicker returns a pacer releasing rate generations per second.
func NewTicker(rate int) *Ticker {
	if rate <= 0 {
		rate = 60
	}
	return &Ticker{t: time.NewTicker(time.Second / time.Duration(rate))}
}

// Wait blocks until the next tick.
func (p *Ticker) Wait(ctx context.Context) error {
	select {
	case <-p.t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops the underlying ticker.
func (p *Ticker) Close() { p.t.Stop() }

// Unpaced never blocks; generations run back to back.
type Unpaced struct{}

// Wait returns the context error if ctx has ended, nil otherwise.
func (Unpaced) Wait(ctx context.Context) error { return ctx.Err() }
