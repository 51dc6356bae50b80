// Package scheduler drives the fixed-period tick clock.
//
// Run is the wall-clock loop used by headless frontends. Accumulator is the
// frame-driven variant for frontends that own their own update loop and
// report elapsed time instead of waiting on a ticker.
package scheduler

import (
	"context"
	"errors"
	"time"
)

// ErrBadPeriod is returned when a clock is created with a negative period.
var ErrBadPeriod = errors.New("scheduler: period must not be negative")

// StepFunc runs one tick and reports whether the clock should keep going.
type StepFunc func() bool

// Run calls step once per period until step returns false or ctx is done.
// A zero period runs the steps back to back, which the simulator uses to
// play out a session as fast as possible.
func Run(ctx context.Context, period time.Duration, step StepFunc) error {
	if period < 0 {
		return ErrBadPeriod
	}

	if period == 0 {
		for {
			if err := ctx.Err(); err != nil {
				return err
			}
			if !step() {
				return nil
			}
		}
	}

	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if !step() {
				return nil
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Accumulator converts elapsed frame time into whole ticks. After Stop no
// ticks fire until Resume, and time spent stopped is discarded.
type Accumulator struct {
	period  time.Duration
	acc     time.Duration
	stopped bool
}

// NewAccumulator creates a running accumulator. A non-positive period falls
// back to 100ms.
func NewAccumulator(period time.Duration) *Accumulator {
	if period <= 0 {
		period = 100 * time.Millisecond
	}
	return &Accumulator{period: period}
}

// Advance adds dt and calls step once for every full period accumulated.
// If step returns false the clock stops and the remainder is dropped.
// It returns the number of ticks run.
func (a *Accumulator) Advance(dt time.Duration, step StepFunc) int {
	if a.stopped {
		return 0
	}
	a.acc += dt

	n := 0
	for a.acc >= a.period {
		a.acc -= a.period
		n++
		if !step() {
			a.Stop()
			break
		}
	}
	return n
}

// Stop halts the clock.
func (a *Accumulator) Stop() {
	a.stopped = true
	a.acc = 0
}

// Resume restarts a stopped clock from zero.
func (a *Accumulator) Resume() {
	a.stopped = false
	a.acc = 0
}
