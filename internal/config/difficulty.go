package config

import "math"

// DifficultyManager calculates enemy tuning from dungeon progress.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: cfg.InitialLevel,
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the difficulty level (0.0 to 1.0) for the given dungeon level
// and score. A disabled manager always reports 0 so base stats apply unchanged.
func (d *DifficultyManager) Level(dungeonLevel, score int) float64 {
	if !d.cfg.Enabled {
		return 0
	}
	if d.cfg.Progression.Type == "none" {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "level":
		// Level 1 is the starting point, MaxAt is full difficulty.
		if maxAt > 1 {
			progress = float64(dungeonLevel-1) / (maxAt - 1)
		} else {
			progress = 1
		}
	case "score":
		progress = float64(score) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed scales an enemy base speed for the current difficulty.
func (d *DifficultyManager) Speed(baseSpeed float64, dungeonLevel, score int) float64 {
	level := d.Level(dungeonLevel, score)
	return baseSpeed * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
}

// Damage scales contact damage for the current difficulty. Never below base.
func (d *DifficultyManager) Damage(baseDamage, dungeonLevel, score int) int {
	level := d.Level(dungeonLevel, score)
	scaled := float64(baseDamage) * (1.0 + level*d.cfg.Scaling.DamageMultiplier)
	return max(baseDamage, int(math.Round(scaled)))
}

// clampF restricts a float64 to [lo, hi].
func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
