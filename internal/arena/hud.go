package arena

import "math"

// HUD is the read-only per-tick view of player stats for display.
type HUD struct {
	HP, MaxHP   int
	XP, MaxXP   int
	PlayerLevel int
	Level       int
	MaxLevel    int
	Score       int
	Enemies     int
	BossHP      int // zero when no boss is alive
	BossMaxHP   int
	DashReady   bool
	Dashing     bool
	SpeedBuff   float64
	ShieldBuff  float64
	Objective   string
}

// HUD returns the current display stats.
func (s *Session) HUD() HUD {
	p := s.player
	h := HUD{
		HP:          p.HP,
		MaxHP:       p.MaxHP,
		XP:          p.XP,
		MaxXP:       p.MaxXP,
		PlayerLevel: p.Level,
		Level:       s.level,
		MaxLevel:    s.cfg.Levels.Max,
		Score:       s.score,
		Enemies:     len(s.enemies),
		DashReady:   p.DashReady(),
		Dashing:     p.Dashing,
		SpeedBuff:   p.SpeedBuff,
		ShieldBuff:  p.ShieldBuff,
		Objective:   "Find the Yellow Goal",
	}
	if s.IsFinalLevel() {
		h.Objective = "DEFEAT THE BOSS!"
	}
	for _, e := range s.enemies {
		if e.IsBoss() {
			h.BossHP, h.BossMaxHP = e.HP, e.MaxHP
			break
		}
	}
	return h
}

// BlipKind tags a radar contact.
type BlipKind int

const (
	BlipEnemy BlipKind = iota
	BlipBoss
	BlipGoal
)

// Blip is a radar contact, positioned relative to the player and scaled to
// [-1, 1] by the radar range.
type Blip struct {
	Kind BlipKind
	X, Y float64
}

// Radar returns enemies within rng world units of the player. The goal is
// always included, pinned to the radar edge when out of range.
func (s *Session) Radar(rng float64) []Blip {
	if rng <= 0 {
		return nil
	}
	origin := s.player.Pos
	blips := make([]Blip, 0, len(s.enemies)+1)
	for _, e := range s.enemies {
		d := e.Pos.Sub(origin)
		if d.LenSq() > rng*rng {
			continue
		}
		kind := BlipEnemy
		if e.IsBoss() {
			kind = BlipBoss
		}
		blips = append(blips, Blip{Kind: kind, X: d.X / rng, Y: d.Y / rng})
	}

	g := s.goal.Pos.Sub(origin).Scale(1 / rng).ClampLen(1)
	blips = append(blips, Blip{Kind: BlipGoal, X: g.X, Y: g.Y})
	return blips
}

// GoalBearing returns the direction from the player to the goal in radians,
// zero along +X, and the distance in tiles.
func (s *Session) GoalBearing() (angle float64, tiles float64) {
	d := s.goal.Pos.Sub(s.player.Pos)
	return math.Atan2(d.Y, d.X), d.Len() / s.grid.TileSize()
}

// Projectiles returns the live projectiles.
func (s *Session) Projectiles() []*Projectile {
	return s.projectiles
}

// Collectibles returns the remaining collectibles.
func (s *Session) Collectibles() []*Collectible {
	return s.collectibles
}

// PowerUps returns the remaining power-ups.
func (s *Session) PowerUps() []*PowerUp {
	return s.powerups
}
