package wordfall

import "time"

// Clock converts wall time into simulation time. While paused it hands out
// zero, so every timer holds its value until resumed.
type Clock struct {
	maxDelta float64
	paused   bool
	elapsed  float64
	ticks    uint64
}

// NewClock creates a running clock that clamps frames to maxDelta seconds.
// A non-positive maxDelta disables clamping.
func NewClock(maxDelta float64) *Clock {
	return &Clock{maxDelta: maxDelta}
}

// Advance returns the effective dt for a frame of the given length.
func (c *Clock) Advance(frame time.Duration) float64 {
	if c.paused || frame <= 0 {
		return 0
	}
	dt := frame.Seconds()
	if c.maxDelta > 0 && dt > c.maxDelta {
		dt = c.maxDelta
	}
	c.elapsed += dt
	c.ticks++
	return dt
}

// Pause freezes the clock.
func (c *Clock) Pause() {
	c.paused = true
}

// Resume unfreezes the clock.
func (c *Clock) Resume() {
	c.paused = false
}

// Paused reports whether the clock is frozen.
func (c *Clock) Paused() bool {
	return c.paused
}

// Elapsed returns the simulated seconds since the last reset.
func (c *Clock) Elapsed() float64 {
	return c.elapsed
}

// Ticks returns the number of running ticks since the last reset.
func (c *Clock) Ticks() uint64 {
	return c.ticks
}

// Reset zeroes the clock and resumes it.
func (c *Clock) Reset() {
	c.paused = false
	c.elapsed = 0
	c.ticks = 0
}
