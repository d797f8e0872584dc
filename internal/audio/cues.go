package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-arena/internal/core"
)

// SampleRate is the output rate of every cue.
const SampleRate = beep.SampleRate(44100)

// Cue renders the streamer for an effect cue at the given master volume.
// Unknown cues return nil.
func Cue(c core.Cue, volume float64) beep.Streamer {
	var s beep.Streamer
	switch c {
	case core.CueHit:
		s = hitSound()
	case core.CueDash:
		s = dashSound()
	case core.CueCollect:
		s = collectSound()
	case core.CueLevelUp:
		s = levelUpSound()
	default:
		return nil
	}
	return withVolume(s, volume)
}

// hitSound is a falling saw buzz.
func hitSound() beep.Streamer {
	return newTone(Saw, 220, 70, 140*time.Millisecond, 4*time.Millisecond, SampleRate)
}

// dashSound is a noise burst blended with a rising sine sweep.
func dashSound() beep.Streamer {
	return beep.Mix(
		withVolume(newTone(Noise, 0, 0, 160*time.Millisecond, 20*time.Millisecond, SampleRate), 0.5),
		withVolume(newTone(Sine, 300, 900, 160*time.Millisecond, 20*time.Millisecond, SampleRate), 0.4),
	)
}

// collectSound is a two-note chime.
func collectSound() beep.Streamer {
	return beep.Seq(
		newTone(Sine, 987.77, 987.77, 60*time.Millisecond, 2*time.Millisecond, SampleRate),
		newTone(Sine, 1318.51, 1318.51, 120*time.Millisecond, 2*time.Millisecond, SampleRate),
	)
}

// levelUpSound is a rising square arpeggio (C5 E5 G5 C6).
func levelUpSound() beep.Streamer {
	notes := []float64{523.25, 659.25, 783.99, 1046.5}
	parts := make([]beep.Streamer, 0, len(notes))
	for i, f := range notes {
		d := 80 * time.Millisecond
		if i == len(notes)-1 {
			d = 240 * time.Millisecond
		}
		parts = append(parts, withVolume(newTone(Square, f, f, d, 3*time.Millisecond, SampleRate), 0.35))
	}
	return beep.Seq(parts...)
}
