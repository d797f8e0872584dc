package arena

import (
	"github.com/vovakirdan/tui-arena/internal/core"
)

// setupLevel generates the grid for level n and repopulates it. The player
// keeps its stats and buffs; only its position changes.
func (s *Session) setupLevel(n int) {
	mc := s.cfg.Map
	lc := s.cfg.Levels
	s.level = n
	s.projectiles = nil

	side := mc.BaseSize + n*mc.SizePerLevel
	s.grid = NewTileGrid(side, side, mc.TileSize)
	s.grid.Generate(s.strategy, s.rng, GenParams{
		WallChance:   mc.WallChance,
		SmoothPasses: mc.SmoothPasses,
		Obstacles:    mc.Obstacles,
	})

	start := mc.StartTile
	s.grid.ClearArea(start, start, mc.ClearRadius)
	s.player.Pos = s.grid.CellCenter(start, start)

	goalCell := side - mc.StartTile
	s.grid.ClearArea(goalCell, goalCell, mc.ClearRadius)
	s.goal = Goal{Pos: s.grid.CellCenter(goalCell, goalCell), Radius: lc.GoalRadius}

	sp := NewSpawner(s.grid, s.rng, s.cfg.Spawn)
	sum := LevelSummary{
		Level:       n,
		GridW:       side,
		GridH:       side,
		MapStrategy: s.strategy,
		FloorTiles:  s.grid.FloorCount(),
	}

	speedScale := 1.0
	if s.difficulty.IsEnabled() {
		speedScale = s.difficulty.Speed(1, n, s.score)
	}

	s.enemies = nil
	spawnEnemy := func(kind EnemyKind) {
		sum.Requested++
		pos, ok := sp.FindSpot(s.player.Pos)
		if !ok {
			return
		}
		s.enemies = append(s.enemies, s.table.NewEnemy(kind, pos, speedScale))
		sum.Spawned++
		sum.Enemies++
	}
	if n >= lc.Max {
		sum.HasBoss = true
		spawnEnemy(EnemyBoss)
		for i := 0; i < lc.BossMinions; i++ {
			spawnEnemy(EnemyNormal)
		}
	} else {
		for i := 0; i < n*lc.EnemiesPerLevel+lc.EnemiesBase; i++ {
			spawnEnemy(s.rollEnemyKind())
		}
	}

	s.collectibles = nil
	for i := 0; i < n*lc.CollectiblesPerLevel+lc.CollectiblesBase; i++ {
		kind := CollectHealth
		if s.rng.Float64() > lc.HealthRoll {
			kind = CollectXP
		}
		sum.Requested++
		pos, ok := sp.FindSpot(s.player.Pos)
		if !ok {
			continue
		}
		s.collectibles = append(s.collectibles, NewCollectible(kind, pos, s.cfg.Pickups))
		sum.Spawned++
		sum.Pickups++
	}

	s.powerups = nil
	for i := 0; i < n*lc.PowerUpsPerLevel+lc.PowerUpsBase; i++ {
		kind := PowerShield
		if s.rng.Float64() > lc.ShieldRoll {
			kind = PowerSpeed
		}
		sum.Requested++
		pos, ok := sp.FindSpot(s.player.Pos)
		if !ok {
			continue
		}
		s.powerups = append(s.powerups, NewPowerUp(kind, pos, s.cfg.Pickups.PowerUpRadius))
		sum.Spawned++
		sum.PowerUps++
	}

	s.summary = sum
	if sum.Spawned < sum.Requested {
		s.logger.Debug("spawn shortfall", "level", n, "requested", sum.Requested, "spawned", sum.Spawned)
	}
	s.logger.Info("level ready",
		"level", n,
		"size", side,
		"strategy", s.strategy,
		"enemies", sum.Enemies,
		"pickups", sum.Pickups,
		"powerups", sum.PowerUps,
		"boss", sum.HasBoss,
	)
}

// rollEnemyKind draws one roll and maps it through the configured thresholds.
func (s *Session) rollEnemyKind() EnemyKind {
	r := s.rng.Float64()
	switch {
	case r > s.cfg.Levels.TankRoll:
		return EnemyTank
	case r > s.cfg.Levels.FastRoll:
		return EnemyFast
	default:
		return EnemyNormal
	}
}

// IsFinalLevel reports whether the current level is the boss level.
func (s *Session) IsFinalLevel() bool {
	return s.level >= s.cfg.Levels.Max
}

// Teleport moves the player to pos without collision checks. Used by the map
// preview command and tests.
func (s *Session) Teleport(pos core.Vec2) {
	s.player.Pos = pos
}

// LoadLevel replaces the current level with level n, clamped to the
// configured range. The run state is left as is.
func (s *Session) LoadLevel(n int) {
	s.setupLevel(max(1, min(n, s.cfg.Levels.Max)))
}
