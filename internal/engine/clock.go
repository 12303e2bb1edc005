// Package engine runs the fireball state machine outside the terminal UI.
// A Loop ties a frame clock, an input source and a render surface to a
// machine; the clock decides whether frames are paced in real time.
package engine

import (
	"context"
	"time"
)

// FrameClock paces the loop, one tick per display refresh.
type FrameClock interface {
	// Frame returns the number of ticks delivered so far.
	Frame() uint64
	// Wait blocks until the next tick or until ctx is done.
	Wait(ctx context.Context) error
}

// TickerClock ticks on the wall clock at a fixed rate.
type TickerClock struct {
	ticker *time.Ticker
	frame  uint64
}

// NewTickerClock creates a clock ticking fps times per second.
// Call Stop when done.
func NewTickerClock(fps int) *TickerClock {
	return &TickerClock{ticker: time.NewTicker(time.Second / time.Duration(max(fps, 1)))}
}

// Frame returns the number of ticks delivered so far.
func (c *TickerClock) Frame() uint64 {
	return c.frame
}

// Wait blocks until the next tick.
func (c *TickerClock) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-c.ticker.C:
		c.frame++
		return nil
	}
}

// Stop releases the underlying ticker.
func (c *TickerClock) Stop() {
	c.ticker.Stop()
}

// StepClock ticks immediately. Simulations and tests run at full speed.
type StepClock struct {
	frame uint64
}

// Frame returns the number of ticks delivered so far.
func (c *StepClock) Frame() uint64 {
	return c.frame
}

// Wait returns at once unless ctx is already done.
func (c *StepClock) Wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.frame++
	return nil
}
