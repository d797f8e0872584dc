package arena

import (
	"math"

	"github.com/vovakirdan/tui-arena/internal/config"
	"github.com/vovakirdan/tui-arena/internal/core"
)

// Player is the controlled entity.
type Player struct {
	Pos       core.Vec2
	Radius    float64
	BaseSpeed float64
	Speed     float64 // BaseSpeed with the speed buff applied

	HP    int
	MaxHP int
	XP    int
	MaxXP int
	Level int

	DashCooldown  float64
	DashRemaining float64
	Dashing       bool

	SpeedBuff    float64 // seconds left
	ShieldBuff   float64 // seconds left
	SpeedBoosted bool
	Shielded     bool

	stats     config.PlayerConfig
	speedMult float64
}

// NewPlayer creates a level 1 player at full health.
// speedBuffMult is the speed multiplier granted by the speed power-up.
func NewPlayer(pos core.Vec2, stats config.PlayerConfig, speedBuffMult float64) *Player {
	return &Player{
		Pos:       pos,
		Radius:    stats.Radius,
		BaseSpeed: stats.Speed,
		Speed:     stats.Speed,
		HP:        stats.HP,
		MaxHP:     stats.HP,
		MaxXP:     stats.XPToLevel,
		Level:     1,
		stats:     stats,
		speedMult: speedBuffMult,
	}
}

// Invulnerable reports whether damage is currently ignored.
func (p *Player) Invulnerable() bool {
	return p.Dashing || p.Shielded
}

// TakeDamage lowers HP unless the player is dashing or shielded.
// HP never drops below zero. Returns whether the damage landed.
func (p *Player) TakeDamage(n int) bool {
	if p.Invulnerable() {
		return false
	}
	p.HP = max(0, p.HP-n)
	return true
}

// Heal restores HP up to MaxHP.
func (p *Player) Heal(n int) {
	p.HP = min(p.MaxHP, p.HP+n)
}

// GainXP adds experience. Crossing the threshold levels up once: the excess
// carries over, the threshold grows, max HP rises and HP is refilled.
// Returns true on level up.
func (p *Player) GainXP(n int) bool {
	p.XP += n
	if p.XP < p.MaxXP {
		return false
	}
	p.XP -= p.MaxXP
	p.Level++
	p.MaxXP = int(math.Floor(float64(p.MaxXP) * p.stats.XPGrowth))
	p.MaxHP += p.stats.LevelUpHP
	p.HP = p.MaxHP
	return true
}

// ApplyBuff starts or refreshes a buff timer. Timers are replaced, not stacked.
func (p *Player) ApplyBuff(kind PowerUpKind, duration float64) {
	switch kind {
	case PowerSpeed:
		p.SpeedBuff = duration
		p.SpeedBoosted = true
	case PowerShield:
		p.ShieldBuff = duration
		p.Shielded = true
	}
}

// DashReady reports whether the dash action would trigger now.
func (p *Player) DashReady() bool {
	return p.DashCooldown <= 0
}

// tickBuffs counts buff timers down; a flag clears on the tick its timer runs out.
func (p *Player) tickBuffs(dt float64) {
	if p.SpeedBuff > 0 {
		p.SpeedBuff = math.Max(0, p.SpeedBuff-dt)
	}
	p.SpeedBoosted = p.SpeedBuff > 0
	if p.SpeedBoosted {
		p.Speed = p.BaseSpeed * p.speedMult
	} else {
		p.Speed = p.BaseSpeed
	}

	if p.ShieldBuff > 0 {
		p.ShieldBuff = math.Max(0, p.ShieldBuff-dt)
	}
	p.Shielded = p.ShieldBuff > 0
}

// tickDash advances the dash timers and triggers a new dash when requested.
// Returns true if a dash started this tick.
func (p *Player) tickDash(dt float64, wantDash bool) bool {
	if p.DashCooldown > 0 {
		p.DashCooldown -= dt
	}
	started := false
	if wantDash && p.DashCooldown <= 0 {
		p.DashCooldown = p.stats.DashCooldown
		p.DashRemaining = p.stats.DashDuration
		started = true
	}
	if p.DashRemaining > 0 {
		p.DashRemaining -= dt
		p.Dashing = true
	} else {
		p.Dashing = false
	}
	return started
}

// move applies the movement intent for one tick.
func (p *Player) move(dt float64, intent core.Vec2, grid *TileGrid) {
	speed := p.Speed
	if p.Dashing {
		speed *= p.stats.DashMultiplier
	}
	p.Pos = grid.MoveAxisSeparated(p.Pos, intent.Scale(speed*dt), p.Radius)
}
