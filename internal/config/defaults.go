package config

import (
	_ "embed"
)

//go:embed defaults/arena.yaml
var defaultArenaYAML []byte

// DefaultArenaConfig returns the built-in arena configuration.
// It mirrors defaults/arena.yaml and is used when the embedded file cannot be parsed.
func DefaultArenaConfig() ArenaConfig {
	return ArenaConfig{
		Map: MapConfig{
			Strategy:     "cave",
			BaseSize:     50,
			SizePerLevel: 10,
			TileSize:     64,
			WallChance:   0.4,
			SmoothPasses: 5,
			Obstacles:    40,
			StartTile:    5,
			ClearRadius:  3,
		},
		Player: PlayerConfig{
			Radius:         12,
			Speed:          300,
			HP:             100,
			XPToLevel:      100,
			XPGrowth:       1.5,
			LevelUpHP:      20,
			DashCooldown:   1.0,
			DashDuration:   0.2,
			DashMultiplier: 3,
		},
		Enemies: EnemiesConfig{
			Normal: EnemyStats{Radius: 15, Speed: 100, HP: 1, Color: "bright_magenta"},
			Fast:   EnemyStats{Radius: 12, Speed: 160, HP: 1, Color: "orange"},
			Tank:   EnemyStats{Radius: 20, Speed: 60, HP: 3, Color: "red"},
			Boss:   EnemyStats{Radius: 40, Speed: 80, HP: 500, Color: "bright_red"},
		},
		Boss: BossConfig{
			AttackInterval:   2.0,
			ProjectileCount:  8,
			ProjectileSpeed:  200,
			ProjectileRadius: 8,
			ProjectileLife:   3.0,
		},
		Pickups: PickupConfig{
			CollectibleRadius: 8,
			XPValue:           10,
			HealthValue:       20,
			PowerUpRadius:     12,
			SpeedMultiplier:   1.5,
			SpeedDuration:     5,
			ShieldDuration:    10,
		},
		Spawn: SpawnConfig{
			Attempts:    100,
			ProbeRadius: 20,
			Exclusion:   500,
		},
		Levels: LevelConfig{
			Max:                  3,
			GoalRadius:           30,
			EnemiesBase:          5,
			EnemiesPerLevel:      8,
			BossMinions:          10,
			FastRoll:             0.7,
			TankRoll:             0.9,
			CollectiblesBase:     10,
			CollectiblesPerLevel: 5,
			HealthRoll:           0.3,
			PowerUpsBase:         2,
			PowerUpsPerLevel:     2,
			ShieldRoll:           0.5,
		},
		Combat: CombatConfig{
			ContactDamage:    1,
			ShakeChance:      0.1,
			ProjectileDamage: 10,
			DashDamage:       1,
			BossDashDamage:   50,
			Knockback:        20,
			KillXP:           20,
		},
		Scoring: ScoringConfig{
			XPPickup: 10,
			Kill:     100,
			BossKill: 1000,
			Goal:     500,
		},
		Clock: ClockConfig{
			TickRate:   60,
			MaxCatchUp: 5,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 3,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  0.5,
				DamageMultiplier: 1.0,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultArenaYAML
}
