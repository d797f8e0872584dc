package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-arena/internal/core"
)

// Player plays effect cues on the speaker. The zero value is not usable;
// create one with New. A muted Player never touches the audio device.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	muted       bool
	initialized bool
	logger      *log.Logger
	played      map[core.Cue]int
}

// Option configures a Player.
type Option func(*Player)

// Muted disables output entirely.
func Muted(m bool) Option {
	return func(p *Player) { p.muted = m }
}

// Volume sets the master gain, 1.0 being unity.
func Volume(v float64) Option {
	return func(p *Player) { p.volume = v }
}

// WithLogger sets the logger for device errors.
func WithLogger(l *log.Logger) Option {
	return func(p *Player) { p.logger = l }
}

// New creates a Player. Call Init before playing.
func New(opts ...Option) *Player {
	p := &Player{
		mixer:  &beep.Mixer{},
		volume: 0.6,
		logger: log.New(io.Discard),
		played: make(map[core.Cue]int),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Init opens the speaker. On failure the player stays silent and the error
// is returned so the caller can report it.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.muted || p.initialized {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond)); err != nil {
		p.muted = true
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play starts a cue without blocking.
func (p *Player) Play(c core.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.played[c]++
	if p.muted || !p.initialized {
		return
	}
	s := Cue(c, p.volume)
	if s == nil {
		p.logger.Debug("unknown audio cue", "cue", c)
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Handle plays every sound event in events and ignores the rest.
func (p *Player) Handle(events []core.Event) {
	for _, ev := range events {
		if ev.Kind == core.EventSound {
			p.Play(ev.Cue)
		}
	}
}

// Played returns how many times a cue was requested, muted or not.
func (p *Player) Played(c core.Cue) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played[c]
}

// SetMuted toggles output. Unmuting does not open the device; call Init.
func (p *Player) SetMuted(m bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = m
	if m && p.initialized {
		speaker.Lock()
		p.mixer.Clear()
		speaker.Unlock()
	}
}

// IsMuted reports whether output is disabled.
func (p *Player) IsMuted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Close stops all playing cues.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}
