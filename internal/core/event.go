package core

// EventKind identifies the collaborator an Event is meant for.
type EventKind int

const (
	EventParticles EventKind = iota // burst of cosmetic particles
	EventSound                      // one-shot audio cue
	EventShake                      // camera shake
)

// Cue names an audio effect.
type Cue int

const (
	CueHit Cue = iota
	CueDash
	CueCollect
	CueLevelUp
)

// String returns the cue name used in logs and config.
func (c Cue) String() string {
	switch c {
	case CueHit:
		return "hit"
	case CueDash:
		return "dash"
	case CueCollect:
		return "collect"
	case CueLevelUp:
		return "levelup"
	default:
		return "unknown"
	}
}

// Event is a fire-and-forget effect request emitted by the simulation.
// Only the fields relevant to Kind are set.
type Event struct {
	Kind EventKind

	// Particles
	Pos   Vec2
	Color Color
	Count int

	// Sound
	Cue Cue

	// Shake
	Duration  float64 // seconds
	Magnitude float64 // world pixels
}

// Particles builds a particle burst event.
func Particles(pos Vec2, color Color, count int) Event {
	return Event{Kind: EventParticles, Pos: pos, Color: color, Count: count}
}

// Sound builds an audio cue event.
func Sound(cue Cue) Event {
	return Event{Kind: EventSound, Cue: cue}
}

// Shake builds a camera shake event.
func Shake(duration, magnitude float64) Event {
	return Event{Kind: EventShake, Duration: duration, Magnitude: magnitude}
}
