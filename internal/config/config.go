// Package config provides YAML-based arena configuration loading and
// difficulty management.
package config

import (
	"errors"
	"fmt"
)

// ArenaConfig contains all tunables of the arena simulation.
type ArenaConfig struct {
	Map        MapConfig        `yaml:"map"`
	Player     PlayerConfig     `yaml:"player"`
	Enemies    EnemiesConfig    `yaml:"enemies"`
	Boss       BossConfig       `yaml:"boss"`
	Pickups    PickupConfig     `yaml:"pickups"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Levels     LevelConfig      `yaml:"levels"`
	Combat     CombatConfig     `yaml:"combat"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Clock      ClockConfig      `yaml:"clock"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// MapConfig defines tile grid generation.
type MapConfig struct {
	Strategy     string  `yaml:"strategy"`       // "cave" or "box"
	BaseSize     int     `yaml:"base_size"`      // grid side before level scaling
	SizePerLevel int     `yaml:"size_per_level"` // added to the side for every level
	TileSize     float64 `yaml:"tile_size"`      // world pixels per tile
	WallChance   float64 `yaml:"wall_chance"`    // cave: initial wall probability
	SmoothPasses int     `yaml:"smooth_passes"`  // cave: cellular automata iterations
	Obstacles    int     `yaml:"obstacles"`      // box: random single-tile obstacles
	StartTile    int     `yaml:"start_tile"`     // start at (n, n), goal at (w-n, h-n)
	ClearRadius  int     `yaml:"clear_radius"`   // floor carved around start and goal
}

// PlayerConfig defines the player's base stats.
type PlayerConfig struct {
	Radius         float64 `yaml:"radius"`
	Speed          float64 `yaml:"speed"`
	HP             int     `yaml:"hp"`
	XPToLevel      int     `yaml:"xp_to_level"`
	XPGrowth       float64 `yaml:"xp_growth"`   // maxXP multiplier on level up
	LevelUpHP      int     `yaml:"level_up_hp"` // maxHP gained on level up
	DashCooldown   float64 `yaml:"dash_cooldown"`
	DashDuration   float64 `yaml:"dash_duration"`
	DashMultiplier float64 `yaml:"dash_multiplier"`
}

// EnemyStats is one row of the enemy behaviour table.
type EnemyStats struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"`
	HP     int     `yaml:"hp"`
	Color  string  `yaml:"color"`
}

// EnemiesConfig holds the stats for each enemy kind.
type EnemiesConfig struct {
	Normal EnemyStats `yaml:"normal"`
	Fast   EnemyStats `yaml:"fast"`
	Tank   EnemyStats `yaml:"tank"`
	Boss   EnemyStats `yaml:"boss"`
}

// BossConfig defines the boss's radial attack.
type BossConfig struct {
	AttackInterval   float64 `yaml:"attack_interval"`
	ProjectileCount  int     `yaml:"projectile_count"`
	ProjectileSpeed  float64 `yaml:"projectile_speed"`
	ProjectileRadius float64 `yaml:"projectile_radius"`
	ProjectileLife   float64 `yaml:"projectile_life"`
}

// PickupConfig defines collectibles and power-ups.
type PickupConfig struct {
	CollectibleRadius float64 `yaml:"collectible_radius"`
	XPValue           int     `yaml:"xp_value"`
	HealthValue       int     `yaml:"health_value"`
	PowerUpRadius     float64 `yaml:"powerup_radius"`
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`
	SpeedDuration     float64 `yaml:"speed_duration"`
	ShieldDuration    float64 `yaml:"shield_duration"`
}

// SpawnConfig defines rejection sampling for entity placement.
type SpawnConfig struct {
	Attempts    int     `yaml:"attempts"`
	ProbeRadius float64 `yaml:"probe_radius"`
	Exclusion   float64 `yaml:"exclusion"` // minimum distance from the player
}

// LevelConfig defines level count and per-level population.
type LevelConfig struct {
	Max                  int     `yaml:"max"`
	GoalRadius           float64 `yaml:"goal_radius"`
	EnemiesBase          int     `yaml:"enemies_base"`
	EnemiesPerLevel      int     `yaml:"enemies_per_level"`
	BossMinions          int     `yaml:"boss_minions"`
	FastRoll             float64 `yaml:"fast_roll"` // roll above this spawns a fast enemy
	TankRoll             float64 `yaml:"tank_roll"` // roll above this spawns a tank
	CollectiblesBase     int     `yaml:"collectibles_base"`
	CollectiblesPerLevel int     `yaml:"collectibles_per_level"`
	HealthRoll           float64 `yaml:"health_roll"` // roll at or below this spawns health
	PowerUpsBase         int     `yaml:"powerups_base"`
	PowerUpsPerLevel     int     `yaml:"powerups_per_level"`
	ShieldRoll           float64 `yaml:"shield_roll"` // roll at or below this spawns a shield
}

// CombatConfig defines damage and knockback.
type CombatConfig struct {
	ContactDamage    int     `yaml:"contact_damage"`
	ShakeChance      float64 `yaml:"shake_chance"`
	ProjectileDamage int     `yaml:"projectile_damage"`
	DashDamage       int     `yaml:"dash_damage"`
	BossDashDamage   int     `yaml:"boss_dash_damage"`
	Knockback        float64 `yaml:"knockback"`
	KillXP           int     `yaml:"kill_xp"`
}

// ScoringConfig defines score awards.
type ScoringConfig struct {
	XPPickup int `yaml:"xp_pickup"`
	Kill     int `yaml:"kill"`
	BossKill int `yaml:"boss_kill"`
	Goal     int `yaml:"goal"`
}

// ClockConfig defines the fixed timestep.
type ClockConfig struct {
	TickRate   int `yaml:"tick_rate"`
	MaxCatchUp int `yaml:"max_catch_up"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level", "score", or "none"
	MaxAt int    `yaml:"max_at"` // level/score at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`  // added to enemy speed at max difficulty
	DamageMultiplier float64 `yaml:"damage_multiplier"` // added to contact damage at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ErrUnknownPreset is returned by ParsePreset for unrecognized names.
var ErrUnknownPreset = errors.New("unknown difficulty preset")

// ParsePreset validates a preset name. The empty string means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: %w %q (want easy, normal, hard or fixed)", ErrUnknownPreset, s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyArenaPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyArenaPreset(cfg *ArenaConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
		return
	case DifficultyEasy:
		cfg.Player.HP += cfg.Player.HP / 2
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
}

// Validate reports the first setting that would make the simulation ill-formed.
func (c ArenaConfig) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"map.tile_size", c.Map.TileSize},
		{"player.radius", c.Player.Radius},
		{"player.speed", c.Player.Speed},
		{"player.hp", float64(c.Player.HP)},
		{"player.xp_to_level", float64(c.Player.XPToLevel)},
		{"enemies.normal.radius", c.Enemies.Normal.Radius},
		{"enemies.fast.radius", c.Enemies.Fast.Radius},
		{"enemies.tank.radius", c.Enemies.Tank.Radius},
		{"enemies.boss.radius", c.Enemies.Boss.Radius},
		{"enemies.normal.hp", float64(c.Enemies.Normal.HP)},
		{"enemies.fast.hp", float64(c.Enemies.Fast.HP)},
		{"enemies.tank.hp", float64(c.Enemies.Tank.HP)},
		{"enemies.boss.hp", float64(c.Enemies.Boss.HP)},
		{"boss.projectile_radius", c.Boss.ProjectileRadius},
		{"pickups.collectible_radius", c.Pickups.CollectibleRadius},
		{"pickups.powerup_radius", c.Pickups.PowerUpRadius},
		{"spawn.attempts", float64(c.Spawn.Attempts)},
		{"spawn.probe_radius", c.Spawn.ProbeRadius},
		{"levels.max", float64(c.Levels.Max)},
		{"levels.goal_radius", c.Levels.GoalRadius},
		{"clock.tick_rate", float64(c.Clock.TickRate)},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return fmt.Errorf("config: %s must be positive, got %v", p.name, p.v)
		}
	}

	if c.Map.Strategy != "cave" && c.Map.Strategy != "box" {
		return fmt.Errorf("config: map.strategy must be cave or box, got %q", c.Map.Strategy)
	}
	// The goal sits StartTile cells in from the far corner, so the smallest
	// grid must leave room for both safe zones inside the border.
	minSide := 2*(c.Map.StartTile+c.Map.ClearRadius) + 1
	if c.Map.BaseSize+c.Map.SizePerLevel < minSide {
		return fmt.Errorf("config: first level grid %d is smaller than %d", c.Map.BaseSize+c.Map.SizePerLevel, minSide)
	}
	if c.Map.StartTile <= c.Map.ClearRadius {
		return fmt.Errorf("config: map.start_tile %d must exceed clear_radius %d", c.Map.StartTile, c.Map.ClearRadius)
	}
	return nil
}
