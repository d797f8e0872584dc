package arena

import "time"

// DefaultMaxCatchUp is used when a clock is created without a catch-up limit.
const DefaultMaxCatchUp = 5

// Clock is a fixed-timestep accumulator. Real frame time goes in; whole ticks
// of exactly one step come out, with the remainder carried to the next frame.
// At most maxCatchUp ticks run per frame; time beyond that is dropped so a
// long stall cannot trigger a burst of catch-up ticks.
type Clock struct {
	step       time.Duration
	acc        time.Duration
	maxCatchUp int
	dropped    uint64
}

// NewClock creates a clock running tickRate ticks per second.
func NewClock(tickRate, maxCatchUp int) *Clock {
	if tickRate <= 0 {
		tickRate = 60
	}
	if maxCatchUp <= 0 {
		maxCatchUp = DefaultMaxCatchUp
	}
	return &Clock{
		step:       time.Second / time.Duration(tickRate),
		maxCatchUp: maxCatchUp,
	}
}

// Step returns the fixed tick length.
func (c *Clock) Step() time.Duration {
	return c.step
}

// Advance adds frame time and calls tick once per whole step available.
// It returns the number of ticks run and the number dropped by the cap.
func (c *Clock) Advance(frame time.Duration, tick func()) (ran, dropped int) {
	if frame > 0 {
		c.acc += frame
	}
	for c.acc >= c.step {
		if ran == c.maxCatchUp {
			dropped = int(c.acc / c.step)
			c.acc %= c.step
			c.dropped += uint64(dropped) //#nosec G115 -- dropped is non-negative
			break
		}
		tick()
		c.acc -= c.step
		ran++
	}
	return ran, dropped
}

// Pending returns the accumulated time not yet consumed by a tick.
func (c *Clock) Pending() time.Duration {
	return c.acc
}

// Dropped returns the total number of ticks discarded by the catch-up cap.
func (c *Clock) Dropped() uint64 {
	return c.dropped
}
