package arena

import (
	"slices"

	"github.com/vovakirdan/tui-arena/internal/core"
)

// Particle colors.
const (
	colorDashTrail   = core.ColorBrightCyan
	colorShieldSpark = core.ColorOrange
	colorSpeedPickup = core.ColorCyan
	colorShieldPick  = core.ColorOrange
	colorBlood       = core.ColorRed
	colorKill        = core.ColorPink
	colorKnockback   = core.ColorWhite
	colorXP          = core.ColorGreen
	colorHeal        = core.ColorPink
	colorLevelUp     = core.ColorYellow
)

const shieldSparkChance = 0.2

// update runs one playing tick. Phases run in a fixed order:
// player, power-ups, projectiles, enemies, collectibles, goal, death.
func (s *Session) update(in core.InputFrame) {
	s.updatePlayer(in)
	s.resolvePowerUps()
	s.resolveProjectiles()
	s.resolveEnemies()
	s.resolveCollectibles()
	s.resolveGoal()

	if s.player.HP <= 0 {
		s.setState(StateGameOver)
	}
}

func (s *Session) updatePlayer(in core.InputFrame) {
	p := s.player
	p.tickBuffs(s.dt)
	if p.tickDash(s.dt, in.Has(core.ActionDash)) {
		s.emit(core.Sound(core.CueDash))
	}
	p.move(s.dt, core.MoveIntent(in.Move.X, in.Move.Y), s.grid)

	if p.Dashing {
		s.emit(core.Particles(p.Pos, colorDashTrail, 2))
	}
	if p.Shielded && s.rng.Float64() < shieldSparkChance {
		s.emit(core.Particles(p.Pos, colorShieldSpark, 1))
	}
}

func (s *Session) resolvePowerUps() {
	p := s.player
	pc := s.cfg.Pickups
	for _, pu := range s.powerups {
		if !overlaps(p.Pos, p.Radius, pu.Pos, pu.Radius) {
			continue
		}
		switch pu.Kind {
		case PowerSpeed:
			p.ApplyBuff(PowerSpeed, pc.SpeedDuration)
			s.emit(core.Particles(p.Pos, colorSpeedPickup, 10))
		case PowerShield:
			p.ApplyBuff(PowerShield, pc.ShieldDuration)
			s.emit(core.Particles(p.Pos, colorShieldPick, 10))
		}
		s.emit(core.Sound(core.CueCollect))
		pu.consumed = true
	}
	s.powerups = slices.DeleteFunc(s.powerups, func(pu *PowerUp) bool { return pu.consumed })
}

func (s *Session) resolveProjectiles() {
	p := s.player
	for _, pr := range s.projectiles {
		pr.Pos = pr.Pos.Add(pr.Vel.Scale(s.dt))
		pr.Life -= s.dt
		if pr.Life <= 0 || s.grid.CheckCorners(pr.Pos, pr.Radius) {
			pr.Life = 0
			continue
		}
		if overlaps(p.Pos, p.Radius, pr.Pos, pr.Radius) {
			if p.TakeDamage(s.cfg.Combat.ProjectileDamage) {
				s.emit(core.Particles(p.Pos, colorBlood, 5))
				s.emit(core.Shake(0.2, 5))
				s.emit(core.Sound(core.CueHit))
			}
			pr.Life = 0
		}
	}
	s.projectiles = slices.DeleteFunc(s.projectiles, func(pr *Projectile) bool { return pr.Life <= 0 })
}

func (s *Session) resolveEnemies() {
	p := s.player
	cc := s.cfg.Combat
	var spawned []*Projectile

	for _, e := range s.enemies {
		e.chase(s.dt, p.Pos, s.grid)
		if e.IsBoss() {
			e.AttackCooldown -= s.dt
			if e.AttackCooldown <= 0 {
				spawned = append(spawned, radialBurst(e.Pos, s.cfg.Boss)...)
				e.AttackCooldown = s.cfg.Boss.AttackInterval
			}
		}

		if !overlaps(p.Pos, p.Radius, e.Pos, e.Radius) {
			continue
		}
		switch {
		case p.Dashing && e.IsBoss():
			e.TakeDamage(cc.BossDashDamage)
			s.emit(core.Particles(e.Pos, colorBlood, 5))
			s.emit(core.Shake(0.1, 3))
			if e.Dead {
				s.score += s.cfg.Scoring.BossKill
				s.emit(core.Sound(core.CueLevelUp))
				s.logger.Info("boss defeated", "level", s.level, "score", s.score)
			}
		case p.Dashing:
			if e.TakeDamage(cc.DashDamage) {
				s.emit(core.Particles(e.Pos, colorKill, 10))
				s.gainXP(cc.KillXP)
				s.score += s.cfg.Scoring.Kill
				s.emit(core.Sound(core.CueHit))
				s.emit(core.Shake(0.1, 5))
				continue
			}
			away := e.Pos.Sub(p.Pos).Normalize().Scale(cc.Knockback)
			e.Pos = s.grid.MoveAxisSeparated(e.Pos, away, e.Radius)
			s.emit(core.Particles(e.Pos, colorKnockback, 2))
			s.emit(core.Sound(core.CueHit))
		case !p.Shielded:
			dmg := s.difficulty.Damage(cc.ContactDamage, s.level, s.score)
			if p.TakeDamage(dmg) {
				s.emit(core.Particles(p.Pos, colorBlood, 2))
				if s.rng.Float64() < cc.ShakeChance {
					s.emit(core.Shake(0.1, 2))
				}
			}
		}
	}

	s.enemies = slices.DeleteFunc(s.enemies, func(e *Enemy) bool { return e.Dead })
	s.projectiles = append(s.projectiles, spawned...)
}

func (s *Session) resolveCollectibles() {
	p := s.player
	for _, c := range s.collectibles {
		if !overlaps(p.Pos, p.Radius, c.Pos, c.Radius) {
			continue
		}
		switch c.Kind {
		case CollectXP:
			s.gainXP(c.Value)
			s.score += s.cfg.Scoring.XPPickup
			s.emit(core.Particles(c.Pos, colorXP, 5))
		case CollectHealth:
			p.Heal(c.Value)
			s.emit(core.Particles(c.Pos, colorHeal, 5))
		}
		s.emit(core.Sound(core.CueCollect))
		c.consumed = true
	}
	s.collectibles = slices.DeleteFunc(s.collectibles, func(c *Collectible) bool { return c.consumed })
}

// gainXP awards experience and emits the level-up effects when it triggers one.
func (s *Session) gainXP(n int) {
	if !s.player.GainXP(n) {
		return
	}
	s.emit(core.Particles(s.player.Pos, colorLevelUp, 20))
	s.emit(core.Sound(core.CueLevelUp))
	s.logger.Debug("player level up", "level", s.player.Level, "max_hp", s.player.MaxHP)
}

func (s *Session) resolveGoal() {
	p := s.player
	if !overlaps(p.Pos, p.Radius, s.goal.Pos, s.goal.Radius) {
		return
	}
	if s.IsFinalLevel() {
		s.setState(StateWin)
		s.emit(core.Sound(core.CueLevelUp))
		return
	}
	s.score += s.cfg.Scoring.Goal
	s.setupLevel(s.level + 1)
	s.emit(core.Particles(p.Pos, colorLevelUp, 20))
	s.emit(core.Sound(core.CueLevelUp))
}
