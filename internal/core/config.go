package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay

	// MaxCatchUp bounds how many ticks a single frame may run when the
	// platform falls behind. Zero means the default.
	MaxCatchUp int
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		TickRate:   60,
		Seed:       0, // 0 means use current time in platform layer
		MaxCatchUp: 5,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the run has ended (lost or won)
	Won      bool // Whether the run ended by clearing the final level
	Paused   bool // Whether the game is paused
	Level    int  // Current dungeon level, 1-based
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// Events are the effect cues produced during the tick, in order.
	// The platform drains them after the tick (audio, particles, shake).
	Events []Event
}
