package arena

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-arena/internal/config"
	"github.com/vovakirdan/tui-arena/internal/core"
)

// EnemyKind tags the enemy variant; behaviour comes from the EnemyTable.
type EnemyKind int

const (
	EnemyNormal EnemyKind = iota
	EnemyFast
	EnemyTank
	EnemyBoss
	enemyKindCount
)

// String returns the enemy kind name.
func (k EnemyKind) String() string {
	switch k {
	case EnemyNormal:
		return "normal"
	case EnemyFast:
		return "fast"
	case EnemyTank:
		return "tank"
	case EnemyBoss:
		return "boss"
	default:
		return fmt.Sprintf("EnemyKind(%d)", int(k))
	}
}

// Valid reports whether k names a known enemy kind.
func (k EnemyKind) Valid() bool {
	return k >= EnemyNormal && k < enemyKindCount
}

// EnemyProfile is the per-kind row of the behaviour table.
type EnemyProfile struct {
	Radius float64
	Speed  float64
	HP     int
	Color  core.Color
}

// EnemyTable maps each EnemyKind to its profile.
type EnemyTable [enemyKindCount]EnemyProfile

// NewEnemyTable builds the behaviour table from config.
func NewEnemyTable(cfg config.EnemiesConfig) (EnemyTable, error) {
	var t EnemyTable
	rows := [enemyKindCount]config.EnemyStats{cfg.Normal, cfg.Fast, cfg.Tank, cfg.Boss}
	for k, row := range rows {
		c, ok := core.ParseColor(row.Color)
		if !ok {
			return t, fmt.Errorf("arena: enemy %s: unknown color %q", EnemyKind(k), row.Color)
		}
		t[k] = EnemyProfile{Radius: row.Radius, Speed: row.Speed, HP: row.HP, Color: c}
	}
	return t, nil
}

// Enemy chases the player. A boss additionally fires radial projectile bursts.
type Enemy struct {
	Kind   EnemyKind
	Pos    core.Vec2
	Radius float64
	Speed  float64
	HP     int
	MaxHP  int
	Color  core.Color
	Dead   bool

	// AttackCooldown is only used by bosses. It starts at zero, so a boss
	// attacks on its first update.
	AttackCooldown float64
}

// NewEnemy creates an enemy of the given kind. speedScale multiplies the
// profile speed (difficulty). Panics on an invalid kind.
func (t *EnemyTable) NewEnemy(kind EnemyKind, pos core.Vec2, speedScale float64) *Enemy {
	if !kind.Valid() {
		panic(fmt.Sprintf("arena: invalid enemy kind %d", int(kind)))
	}
	p := t[kind]
	return &Enemy{
		Kind:   kind,
		Pos:    pos,
		Radius: p.Radius,
		Speed:  p.Speed * speedScale,
		HP:     p.HP,
		MaxHP:  p.HP,
		Color:  p.Color,
	}
}

// IsBoss reports whether the enemy is the boss variant.
func (e *Enemy) IsBoss() bool {
	return e.Kind == EnemyBoss
}

// TakeDamage lowers HP, never below zero, and marks the enemy dead at zero.
// Returns true if this hit killed it.
func (e *Enemy) TakeDamage(n int) bool {
	if e.Dead {
		return false
	}
	e.HP = max(0, e.HP-n)
	if e.HP == 0 {
		e.Dead = true
		return true
	}
	return false
}

// chase steps toward target at the enemy's speed, sliding along walls.
func (e *Enemy) chase(dt float64, target core.Vec2, grid *TileGrid) {
	if e.Dead {
		return
	}
	dir := target.Sub(e.Pos)
	if dir.LenSq() == 0 {
		return
	}
	e.Pos = grid.MoveAxisSeparated(e.Pos, dir.Normalize().Scale(e.Speed*dt), e.Radius)
}

// Projectile is a boss bullet travelling in a straight line.
type Projectile struct {
	Pos    core.Vec2
	Vel    core.Vec2
	Radius float64
	Life   float64 // seconds left
}

// radialBurst returns count projectiles spread evenly around origin, the first
// one heading along +X.
func radialBurst(origin core.Vec2, cfg config.BossConfig) []*Projectile {
	out := make([]*Projectile, 0, cfg.ProjectileCount)
	for i := 0; i < cfg.ProjectileCount; i++ {
		angle := 2 * math.Pi / float64(cfg.ProjectileCount) * float64(i)
		out = append(out, &Projectile{
			Pos:    origin,
			Vel:    core.V(math.Cos(angle), math.Sin(angle)).Scale(cfg.ProjectileSpeed),
			Radius: cfg.ProjectileRadius,
			Life:   cfg.ProjectileLife,
		})
	}
	return out
}

// CollectibleKind tags a pickup.
type CollectibleKind int

const (
	CollectXP CollectibleKind = iota
	CollectHealth
)

// String returns the collectible kind name.
func (k CollectibleKind) String() string {
	switch k {
	case CollectXP:
		return "xp"
	case CollectHealth:
		return "health"
	default:
		return fmt.Sprintf("CollectibleKind(%d)", int(k))
	}
}

// Collectible grants XP or heals on contact.
type Collectible struct {
	Pos      core.Vec2
	Radius   float64
	Kind     CollectibleKind
	Value    int
	consumed bool
}

// NewCollectible creates a pickup with the configured value for its kind.
// Panics on an invalid kind.
func NewCollectible(kind CollectibleKind, pos core.Vec2, cfg config.PickupConfig) *Collectible {
	c := &Collectible{Pos: pos, Radius: cfg.CollectibleRadius, Kind: kind}
	switch kind {
	case CollectXP:
		c.Value = cfg.XPValue
	case CollectHealth:
		c.Value = cfg.HealthValue
	default:
		panic(fmt.Sprintf("arena: invalid collectible kind %d", int(kind)))
	}
	return c
}

// PowerUpKind tags a timed buff pickup.
type PowerUpKind int

const (
	PowerSpeed PowerUpKind = iota
	PowerShield
)

// String returns the power-up kind name.
func (k PowerUpKind) String() string {
	switch k {
	case PowerSpeed:
		return "speed"
	case PowerShield:
		return "shield"
	default:
		return fmt.Sprintf("PowerUpKind(%d)", int(k))
	}
}

// PowerUp applies a timed buff on contact.
type PowerUp struct {
	Pos      core.Vec2
	Radius   float64
	Kind     PowerUpKind
	consumed bool
}

// NewPowerUp creates a power-up. Panics on an invalid kind.
func NewPowerUp(kind PowerUpKind, pos core.Vec2, radius float64) *PowerUp {
	if kind != PowerSpeed && kind != PowerShield {
		panic(fmt.Sprintf("arena: invalid power-up kind %d", int(kind)))
	}
	return &PowerUp{Pos: pos, Radius: radius, Kind: kind}
}

// Goal ends the level when the player touches it.
type Goal struct {
	Pos    core.Vec2
	Radius float64
}

// overlaps reports whether two circles intersect (strictly).
func overlaps(a core.Vec2, ra float64, b core.Vec2, rb float64) bool {
	r := ra + rb
	return core.DistSq(a, b) < r*r
}
