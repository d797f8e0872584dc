// Package registry maps mode identifiers to game factories.
// Game packages register their modes in init(), so the platform can list and
// start them without importing any game package directly.
package registry

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/tui-arena/internal/core"
)

// Game is what the platform drives. Implementations hold pure simulation
// logic; timing, input mapping and terminal output belong to the platform.
type Game interface {
	// ID is the mode identifier used on the command line and in score storage.
	ID() string

	// Title is the human-readable mode name.
	Title() string

	// Reset starts a fresh run. It is called once before the first Step and
	// the platform may call it again to abandon a run.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by exactly one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst.
	Render(dst *core.Screen)

	// State reports score and run status.
	State() core.GameState
}

// ModeInfo describes a registered mode.
type ModeInfo struct {
	ID    string
	Title string
}

// Factory creates a new, not yet Reset, game.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

var (
	mu    sync.RWMutex
	modes = make(map[string]entry)
)

// Register adds a mode. Panics on a duplicate ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := modes[id]; exists {
		panic(fmt.Sprintf("registry: mode %q already registered", id))
	}
	modes[id] = entry{factory: f, title: f().Title()}
}

// List returns all registered modes sorted by ID.
func List() []ModeInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]ModeInfo, 0, len(modes))
	for id, e := range modes {
		out = append(out, ModeInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(out, func(a, b ModeInfo) int { return cmp.Compare(a.ID, b.ID) })
	return out
}

// Create instantiates the mode with the given ID.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := modes[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown mode %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := modes[id]
	return ok
}
