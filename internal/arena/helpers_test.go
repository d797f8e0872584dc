package arena

import (
	"github.com/vovakirdan/tui-arena/internal/config"
	"github.com/vovakirdan/tui-arena/internal/core"
)

// scriptedRNG replays a fixed sequence of values, cycling when exhausted.
type scriptedRNG struct {
	values []float64
	next   int
	calls  int
}

func newScriptedRNG(values ...float64) *scriptedRNG {
	return &scriptedRNG{values: values}
}

func (r *scriptedRNG) Float64() float64 {
	v := r.values[r.next]
	r.next = (r.next + 1) % len(r.values)
	r.calls++
	return v
}

// openGrid returns a bordered grid with an all-floor interior.
func openGrid(w, h int) *TileGrid {
	g := NewTileGrid(w, h, 64)
	g.generateBox(newScriptedRNG(0), 0)
	return g
}

// boxConfig is the default arena config on an obstacle-free box map, whose
// open layout makes spawn counts predictable.
func boxConfig() config.ArenaConfig {
	cfg := config.DefaultArenaConfig()
	cfg.Map.Strategy = "box"
	cfg.Map.Obstacles = 0
	return cfg
}

// clearEntities empties every entity collection of the current level.
func clearEntities(s *Session) {
	s.enemies = nil
	s.projectiles = nil
	s.collectibles = nil
	s.powerups = nil
}

// newPlaying returns a session that has left the menu and is on level 1.
func newPlaying(cfg config.ArenaConfig, seed int64) *Session {
	s := New(WithConfig(cfg))
	rc := core.DefaultConfig()
	rc.Seed = seed
	s.Reset(rc)
	confirm := core.NewInputFrame()
	confirm.Set(core.ActionConfirm)
	s.Step(confirm)
	return s
}

func idle() core.InputFrame {
	return core.NewInputFrame()
}
