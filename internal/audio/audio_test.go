package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-arena/internal/core"
)

// drain streams s to completion and returns every left-channel sample.
// It gives up after ten seconds of audio.
func drain(t *testing.T, s beep.Streamer) []float64 {
	t.Helper()
	var out []float64
	buf := make([][2]float64, 512)
	limit := SampleRate.N(10 * time.Second)
	for len(out) < limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			out = append(out, buf[i][0])
		}
		if !ok {
			return out
		}
	}
	t.Fatalf("stream did not end within 10s")
	return nil
}

func TestToneLengthAndRange(t *testing.T) {
	waves := map[string]Wave{"sine": Sine, "square": Square, "saw": Saw, "noise": Noise}
	for name, w := range waves {
		t.Run(name, func(t *testing.T) {
			samples := drain(t, newTone(w, 440, 220, 100*time.Millisecond, 5*time.Millisecond, SampleRate))
			if want := SampleRate.N(100 * time.Millisecond); len(samples) != want {
				t.Errorf("len = %d, want %d", len(samples), want)
			}
			for i, v := range samples {
				if v < -1 || v > 1 || math.IsNaN(v) {
					t.Fatalf("sample %d out of range: %f", i, v)
				}
			}
			if samples[0] != 0 {
				t.Errorf("attack should start from silence, got %f", samples[0])
			}
		})
	}
}

func TestToneIsDeterministic(t *testing.T) {
	a := drain(t, newTone(Noise, 0, 0, 20*time.Millisecond, 0, SampleRate))
	b := drain(t, newTone(Noise, 0, 0, 20*time.Millisecond, 0, SampleRate))
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise differs at sample %d", i)
		}
	}
}

func TestCues(t *testing.T) {
	cues := []core.Cue{core.CueHit, core.CueDash, core.CueCollect, core.CueLevelUp}
	for _, c := range cues {
		t.Run(c.String(), func(t *testing.T) {
			s := Cue(c, 1)
			if s == nil {
				t.Fatal("Cue returned nil")
			}
			samples := drain(t, s)
			if len(samples) == 0 {
				t.Fatal("cue produced no samples")
			}
			if len(samples) > SampleRate.N(time.Second) {
				t.Errorf("cue is %d samples, want under a second", len(samples))
			}
			peak := 0.0
			for _, v := range samples {
				peak = math.Max(peak, math.Abs(v))
			}
			if peak == 0 || peak > 1.0001 {
				t.Errorf("peak = %f, want audible and within range", peak)
			}
		})
	}
	if Cue(core.Cue(99), 1) != nil {
		t.Error("unknown cue should return nil")
	}
}

func TestCueSilentAtZeroVolume(t *testing.T) {
	for _, v := range drain(t, Cue(core.CueCollect, 0)) {
		if v != 0 {
			t.Fatalf("sample %f at zero volume", v)
		}
	}
}

func TestMutedPlayerCountsCues(t *testing.T) {
	p := New(Muted(true))
	if err := p.Init(); err != nil {
		t.Fatalf("Init on a muted player: %v", err)
	}
	p.Handle([]core.Event{
		core.Sound(core.CueHit),
		core.Particles(core.Vec2{}, core.ColorRed, 3),
		core.Sound(core.CueHit),
		core.Shake(0.1, 2),
		core.Sound(core.CueLevelUp),
	})
	if got := p.Played(core.CueHit); got != 2 {
		t.Errorf("Played(hit) = %d, want 2", got)
	}
	if got := p.Played(core.CueLevelUp); got != 1 {
		t.Errorf("Played(levelup) = %d, want 1", got)
	}
	if got := p.Played(core.CueDash); got != 0 {
		t.Errorf("Played(dash) = %d, want 0", got)
	}
	if !p.IsMuted() {
		t.Error("player should be muted")
	}
	p.Close()
}
