package tui

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-arena/internal/arena"
	"github.com/vovakirdan/tui-arena/internal/core"
)

const (
	maxParticles     = 512
	particleMinSpeed = 60.0
	particleMaxSpeed = 220.0
	particleMinLife  = 0.3
	particleMaxLife  = 0.7
	particleDrag     = 0.9
)

type particle struct {
	pos   core.Vec2
	vel   core.Vec2
	life  float64
	color core.Color
}

// Effects owns the cosmetic state driven by simulation events: particle
// bursts and camera shake. None of it feeds back into the simulation.
type Effects struct {
	rng       *rand.Rand
	particles []particle

	shakeLeft float64
	shakeMag  float64
}

// NewEffects creates an empty effect layer.
func NewEffects(seed int64) *Effects {
	//#nosec G404 -- cosmetic randomness
	return &Effects{rng: rand.New(rand.NewSource(seed))}
}

// Apply consumes particle and shake events. Sound events are ignored here.
func (e *Effects) Apply(events []core.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case core.EventParticles:
			e.burst(ev.Pos, ev.Color, ev.Count)
		case core.EventShake:
			e.shakeLeft = math.Max(e.shakeLeft, ev.Duration)
			e.shakeMag = math.Max(e.shakeMag, ev.Magnitude)
		}
	}
}

func (e *Effects) burst(pos core.Vec2, c core.Color, n int) {
	for i := 0; i < n; i++ {
		if len(e.particles) >= maxParticles {
			return
		}
		angle := e.rng.Float64() * 2 * math.Pi
		speed := particleMinSpeed + e.rng.Float64()*(particleMaxSpeed-particleMinSpeed)
		e.particles = append(e.particles, particle{
			pos:   pos,
			vel:   core.V(math.Cos(angle)*speed, math.Sin(angle)*speed),
			life:  particleMinLife + e.rng.Float64()*(particleMaxLife-particleMinLife),
			color: c,
		})
	}
}

// Update advances particles and shake by dt seconds.
func (e *Effects) Update(dt float64) {
	live := e.particles[:0]
	for _, p := range e.particles {
		p.life -= dt
		if p.life <= 0 {
			continue
		}
		p.pos = p.pos.Add(p.vel.Scale(dt))
		p.vel = p.vel.Scale(math.Pow(particleDrag, dt*10))
		live = append(live, p)
	}
	e.particles = live

	if e.shakeLeft > 0 {
		e.shakeLeft -= dt
		if e.shakeLeft <= 0 {
			e.shakeLeft, e.shakeMag = 0, 0
		}
	}
}

// Count returns the number of live particles.
func (e *Effects) Count() int {
	return len(e.particles)
}

// Shaking reports whether a camera shake is active.
func (e *Effects) Shaking() bool {
	return e.shakeLeft > 0
}

// CameraOffset returns a random offset within the current shake magnitude.
func (e *Effects) CameraOffset() core.Vec2 {
	if e.shakeLeft <= 0 {
		return core.Vec2{}
	}
	return core.V(
		(e.rng.Float64()*2-1)*e.shakeMag,
		(e.rng.Float64()*2-1)*e.shakeMag,
	)
}

// Clear drops all particles and stops the shake.
func (e *Effects) Clear() {
	e.particles = e.particles[:0]
	e.shakeLeft, e.shakeMag = 0, 0
}

// Draw plots live particles over the map area of dst. Fading particles use a
// lighter glyph.
func (e *Effects) Draw(dst *core.Screen, vp arena.Viewport) {
	for _, p := range e.particles {
		x, y, ok := vp.ToScreen(p.pos)
		if !ok {
			continue
		}
		r := '*'
		if p.life < particleMinLife/2 {
			r = '·'
		}
		dst.SetColored(x, y, r, p.color)
	}
}
