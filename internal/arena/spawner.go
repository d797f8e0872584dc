package arena

import (
	"github.com/vovakirdan/tui-arena/internal/config"
	"github.com/vovakirdan/tui-arena/internal/core"
)

// Spawner places entities by rejection sampling: draw a uniform position
// over the grid, reject it if a probe circle there touches a wall or if it is
// too close to the player, and retry until the attempts run out.
type Spawner struct {
	grid *TileGrid
	rng  RNG
	cfg  config.SpawnConfig
}

// NewSpawner creates a spawner for one level's grid.
func NewSpawner(grid *TileGrid, rng RNG, cfg config.SpawnConfig) *Spawner {
	return &Spawner{grid: grid, rng: rng, cfg: cfg}
}

// FindSpot returns a valid position at least cfg.Exclusion away from avoid.
// ok is false when every attempt was rejected; callers skip the entity.
func (s *Spawner) FindSpot(avoid core.Vec2) (pos core.Vec2, ok bool) {
	size := s.grid.WorldSize()
	minSq := s.cfg.Exclusion * s.cfg.Exclusion
	for i := 0; i < s.cfg.Attempts; i++ {
		p := core.V(s.rng.Float64()*size.X, s.rng.Float64()*size.Y)
		if s.grid.CheckCollision(p, s.cfg.ProbeRadius) {
			continue
		}
		if core.DistSq(p, avoid) < minSq {
			continue
		}
		return p, true
	}
	return core.Vec2{}, false
}
