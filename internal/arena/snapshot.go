package arena

import "math"

// Snapshot is a flat copy of the simulation state, used to compare runs.
// Positions are stored as raw float bits so equal hashes mean bit-identical state.
type Snapshot struct {
	Tick   uint64
	State  string
	Level  int
	Score  int
	GridW  int
	GridH  int
	Player []uint64 // X, Y bits then HP, MaxHP, XP, MaxXP, Level, Dashing, Speed/Shield timer bits

	// Each enemy is 4 values: kind, X bits, Y bits, HP
	EnemyData []uint64
	// Each projectile is 3 values: X bits, Y bits, life bits
	ProjectileData []uint64
	Collectibles   int
	PowerUps       int
	Tiles          []byte
}

// Snapshot returns the current session state.
func (s *Session) Snapshot() Snapshot {
	p := s.player
	snap := Snapshot{
		Tick:         s.tick,
		State:        s.state.String(),
		Level:        s.level,
		Score:        s.score,
		GridW:        s.grid.Width(),
		GridH:        s.grid.Height(),
		Collectibles: len(s.collectibles),
		PowerUps:     len(s.powerups),
	}

	dashing := uint64(0)
	if p.Dashing {
		dashing = 1
	}
	snap.Player = []uint64{
		math.Float64bits(p.Pos.X),
		math.Float64bits(p.Pos.Y),
		uint64(p.HP),    //#nosec G115 -- HP is never negative
		uint64(p.MaxHP), //#nosec G115 -- hash input
		uint64(p.XP),    //#nosec G115 -- hash input
		uint64(p.MaxXP), //#nosec G115 -- hash input
		uint64(p.Level), //#nosec G115 -- hash input
		dashing,
		math.Float64bits(p.SpeedBuff),
		math.Float64bits(p.ShieldBuff),
	}

	snap.EnemyData = make([]uint64, 0, len(s.enemies)*4)
	for _, e := range s.enemies {
		snap.EnemyData = append(snap.EnemyData,
			uint64(e.Kind), //#nosec G115 -- kind is a small enum
			math.Float64bits(e.Pos.X),
			math.Float64bits(e.Pos.Y),
			uint64(e.HP), //#nosec G115 -- HP is never negative
		)
	}

	snap.ProjectileData = make([]uint64, 0, len(s.projectiles)*3)
	for _, pr := range s.projectiles {
		snap.ProjectileData = append(snap.ProjectileData,
			math.Float64bits(pr.Pos.X),
			math.Float64bits(pr.Pos.Y),
			math.Float64bits(pr.Life),
		)
	}

	snap.Tiles = make([]byte, len(s.grid.cells))
	for i, t := range s.grid.cells {
		snap.Tiles[i] = byte(t)
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, c := range []byte(snap.State) {
		h = h*31 + uint64(c)
	}
	h = h*31 + uint64(snap.Level) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.GridW) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.GridH) //#nosec G115 -- hash computation

	for _, v := range snap.Player {
		h = h*31 + v
	}
	for _, v := range snap.EnemyData {
		h = h*31 + v
	}
	for _, v := range snap.ProjectileData {
		h = h*31 + v
	}

	h = h*31 + uint64(snap.Collectibles) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PowerUps)     //#nosec G115 -- hash computation

	for _, t := range snap.Tiles {
		h = h*31 + uint64(t)
	}
	return h
}
