package arena

import (
	"testing"
	"time"
)

func TestClockFixedSteps(t *testing.T) {
	c := NewClock(60, 5)
	step := c.Step()

	ticks := 0
	ran, dropped := c.Advance(step*5/2, func() { ticks++ })
	if ran != 2 || ticks != 2 || dropped != 0 {
		t.Fatalf("Advance(2.5 steps) ran=%d ticks=%d dropped=%d, want 2/2/0", ran, ticks, dropped)
	}
	if got, want := c.Pending(), step/2; got != want {
		t.Errorf("Pending = %v, want %v", got, want)
	}

	ran, _ = c.Advance(step/2, func() { ticks++ })
	if ran != 1 {
		t.Errorf("leftover halves should combine into one tick, ran=%d", ran)
	}
	if c.Pending() != 0 {
		t.Errorf("Pending = %v, want 0", c.Pending())
	}
}

func TestClockZeroAndNegativeFrames(t *testing.T) {
	c := NewClock(60, 5)
	for _, d := range []time.Duration{0, -time.Second} {
		if ran, _ := c.Advance(d, func() {}); ran != 0 {
			t.Errorf("Advance(%v) ran %d ticks", d, ran)
		}
	}
	if c.Pending() != 0 {
		t.Errorf("Pending = %v, want 0", c.Pending())
	}
}

func TestClockCatchUpCap(t *testing.T) {
	c := NewClock(60, 5)
	ran, dropped := c.Advance(time.Second, func() {})
	if ran != 5 {
		t.Errorf("ran = %d, want 5", ran)
	}
	if dropped != 55 {
		t.Errorf("dropped = %d, want 55", dropped)
	}
	if c.Pending() >= c.Step() {
		t.Errorf("Pending = %v, want less than one step", c.Pending())
	}
	if c.Dropped() != 55 {
		t.Errorf("Dropped total = %d, want 55", c.Dropped())
	}
}

func TestClockDefaults(t *testing.T) {
	c := NewClock(0, 0)
	if c.Step() != time.Second/60 {
		t.Errorf("Step = %v, want 1/60s", c.Step())
	}
	ran, _ := c.Advance(time.Second, func() {})
	if ran != DefaultMaxCatchUp {
		t.Errorf("ran = %d, want %d", ran, DefaultMaxCatchUp)
	}
}
