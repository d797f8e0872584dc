// Package audio synthesizes the short effect cues emitted by the simulation
// and plays them through the system speaker.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator shape.
type Wave int

const (
	Sine Wave = iota
	Square
	Saw
	Noise
)

// tone is a single voice gliding linearly from one frequency to another,
// shaped by a linear attack and an exponential-ish tail.
type tone struct {
	wave     Wave
	from, to float64
	rate     beep.SampleRate
	total    int
	attack   int
	pos      int
	phase    float64
	noise    *rand.Rand
}

// newTone returns a streamer for one voice. Noise is seeded so a cue always
// renders the same samples.
func newTone(w Wave, from, to float64, d, attack time.Duration, rate beep.SampleRate) beep.Streamer {
	return &tone{
		wave:   w,
		from:   from,
		to:     to,
		rate:   rate,
		total:  rate.N(d),
		attack: rate.N(attack),
		noise:  rand.New(rand.NewSource(int64(from) + 1)), //#nosec G404 -- audio noise
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}
		progress := float64(t.pos) / float64(t.total)

		var v float64
		switch t.wave {
		case Sine:
			v = math.Sin(2 * math.Pi * t.phase)
		case Square:
			v = 1
			if t.phase >= 0.5 {
				v = -1
			}
		case Saw:
			v = 2*t.phase - 1
		case Noise:
			v = t.noise.Float64()*2 - 1
		}

		gain := 1 - progress
		if t.attack > 0 && t.pos < t.attack {
			gain = float64(t.pos) / float64(t.attack)
		}
		v *= gain * gain

		samples[i][0] = v
		samples[i][1] = v

		freq := t.from + (t.to-t.from)*progress
		t.phase += freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// withVolume scales s by a linear gain. Zero or less is silent.
func withVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}
