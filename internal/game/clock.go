package game

import "time"

// MaxCatchUp caps the ticks run for one frame after a stall.
const MaxCatchUp = 5

// Clock converts wall time into a whole number of fixed simulation ticks.
type Clock struct {
	step    time.Duration
	last    time.Time
	acc     time.Duration
	dropped uint64
}

// NewClock creates a clock with the given tick length.
func NewClock(step time.Duration) *Clock {
	return &Clock{step: step}
}

// Start resets the clock at now.
func (c *Clock) Start(now time.Time) {
	c.last = now
	c.acc = 0
}

// Step returns the tick length.
func (c *Clock) Step() time.Duration {
	return c.step
}

// Advance accounts for the time since the last call and returns the number
// of ticks due. Ticks beyond MaxCatchUp are dropped.
func (c *Clock) Advance(now time.Time) int {
	if elapsed := now.Sub(c.last); elapsed > 0 {
		c.acc += elapsed
	}
	c.last = now

	n := int(c.acc / c.step)
	c.acc -= time.Duration(n) * c.step
	if n > MaxCatchUp {
		c.dropped += uint64(n - MaxCatchUp)
		n = MaxCatchUp
	}
	return n
}

// UntilNext returns how long to wait before the next tick is due.
func (c *Clock) UntilNext(now time.Time) time.Duration {
	wait := c.step - c.acc - now.Sub(c.last)
	if wait < 0 {
		return 0
	}
	return wait
}

// Dropped returns the number of ticks skipped by catch-up limiting.
func (c *Clock) Dropped() uint64 {
	return c.dropped
}
