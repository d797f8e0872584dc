// Package arena implements the arena simulation: procedurally generated tile
// dungeons, a dashing player, chasing enemies, a projectile-firing boss,
// pickups and level progression, all advanced in fixed ticks.
package arena

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-arena/internal/config"
	"github.com/vovakirdan/tui-arena/internal/core"
	"github.com/vovakirdan/tui-arena/internal/registry"
)

// State is the session state machine.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StateGameOver
	StateWin
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "MENU"
	case StatePlaying:
		return "PLAYING"
	case StateGameOver:
		return "GAMEOVER"
	case StateWin:
		return "WIN"
	default:
		return "UNKNOWN"
	}
}

// Package-level settings applied to sessions created through the registry.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	defaultLogger    = log.New(io.Discard)
)

// SetConfigPath sets the arena config file used by registry-created sessions.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset used by registry-created sessions.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// SetLogger sets the logger handed to sessions created after the call.
func SetLogger(l *log.Logger) {
	if l != nil {
		defaultLogger = l
	}
}

func init() {
	registry.Register("arena", func() registry.Game {
		return New(WithStrategy(StrategyCave))
	})
	registry.Register("arena_classic", func() registry.Game {
		return New(WithStrategy(StrategyBox))
	})
}

// LevelSummary describes what setup produced for the current level.
type LevelSummary struct {
	Level       int
	GridW       int
	GridH       int
	Requested   int // entities the level asked for
	Spawned     int // entities actually placed
	Enemies     int
	Pickups     int
	PowerUps    int
	HasBoss     bool
	FloorTiles  int
	MapStrategy Strategy
}

// Session is one game: a single timeline owned by a single goroutine.
type Session struct {
	cfg        config.ArenaConfig
	cfgFixed   bool
	strategy   Strategy
	strategyOK bool
	rng        RNG
	rngFixed   bool
	logger     *log.Logger
	table      EnemyTable
	difficulty *config.DifficultyManager

	dt     float64
	tick   uint64
	state  State
	paused bool
	level  int
	score  int

	grid         *TileGrid
	player       *Player
	enemies      []*Enemy
	projectiles  []*Projectile
	collectibles []*Collectible
	powerups     []*PowerUp
	goal         Goal
	summary      LevelSummary

	events    []core.Event
	camOffset core.Vec2
}

// Option configures a Session.
type Option func(*Session)

// WithConfig uses cfg instead of loading the config file on Reset.
func WithConfig(cfg config.ArenaConfig) Option {
	return func(s *Session) {
		s.cfg = cfg
		s.cfgFixed = true
	}
}

// WithRNG injects the randomness source. Reset will not reseed it.
func WithRNG(rng RNG) Option {
	return func(s *Session) {
		s.rng = rng
		s.rngFixed = true
	}
}

// WithLogger sets the logger for level and state transitions.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// WithStrategy forces the map generation strategy, overriding config.
func WithStrategy(st Strategy) Option {
	return func(s *Session) {
		s.strategy = st
		s.strategyOK = true
	}
}

// New creates a session. It is inert until Reset is called.
func New(opts ...Option) *Session {
	s := &Session{
		cfg:    config.DefaultArenaConfig(),
		logger: defaultLogger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the registry identifier.
func (s *Session) ID() string {
	if s.strategyOK && s.strategy == StrategyBox {
		return "arena_classic"
	}
	return "arena"
}

// Title returns the display name.
func (s *Session) Title() string {
	if s.strategyOK && s.strategy == StrategyBox {
		return "Arena (Classic Rooms)"
	}
	return "Arena (Caves)"
}

// Reset prepares a fresh session in the menu state with level 1 generated
// behind the menu.
func (s *Session) Reset(rc core.RuntimeConfig) {
	if !s.cfgFixed {
		s.cfg = s.loadConfig()
	}
	if !s.strategyOK {
		st, err := ParseStrategy(s.cfg.Map.Strategy)
		if err != nil {
			s.logger.Warn("falling back to cave maps", "error", err)
		}
		s.strategy = st
	}

	table, err := NewEnemyTable(s.cfg.Enemies)
	if err != nil {
		s.logger.Warn("invalid enemy table, using defaults", "error", err)
		table, _ = NewEnemyTable(config.DefaultArenaConfig().Enemies)
	}
	s.table = table
	s.difficulty = config.NewDifficultyManager(s.cfg.Difficulty)

	if !s.rngFixed {
		s.rng = rand.New(rand.NewSource(rc.Seed)) //#nosec G404 -- gameplay randomness
	}

	rate := rc.TickRate
	if rate <= 0 {
		rate = s.cfg.Clock.TickRate
	}
	s.dt = 1.0 / float64(rate)

	s.tick = 0
	s.score = 0
	s.paused = false
	s.events = nil
	s.state = StateMenu
	s.player = s.newPlayer()
	s.setupLevel(1)
}

func (s *Session) loadConfig() config.ArenaConfig {
	cfg, err := config.LoadArena(configPath)
	if err != nil {
		s.logger.Warn("could not load arena config, using defaults", "path", configPath, "error", err)
		cfg = config.DefaultArenaConfig()
	}
	config.ApplyArenaPreset(&cfg, difficultyPreset)
	return cfg
}

func (s *Session) newPlayer() *Player {
	return NewPlayer(core.Vec2{}, s.cfg.Player, s.cfg.Pickups.SpeedMultiplier)
}

// Step advances the session by one fixed tick.
func (s *Session) Step(in core.InputFrame) core.StepResult {
	switch s.state {
	case StateMenu:
		if in.Has(core.ActionConfirm) {
			s.start(false)
		}
	case StateGameOver, StateWin:
		if in.Has(core.ActionConfirm) {
			s.start(true)
		}
	case StatePlaying:
		if in.Has(core.ActionPause) {
			s.paused = !s.paused
		}
		if !s.paused {
			s.tick++
			s.update(in)
		}
	}

	events := s.events
	s.events = nil
	return core.StepResult{State: s.State(), Events: events}
}

// start leaves the menu or a terminal state. A restart also replaces the
// player, discarding level, XP and buffs.
func (s *Session) start(restart bool) {
	if restart {
		s.player = s.newPlayer()
	}
	s.score = 0
	s.tick = 0
	s.paused = false
	s.setupLevel(1)
	s.setState(StatePlaying)
	s.emit(core.Sound(core.CueCollect))
}

func (s *Session) setState(st State) {
	if s.state == st {
		return
	}
	s.logger.Info("state changed", "from", s.state, "to", st, "level", s.level, "score", s.score)
	s.state = st
}

// emit queues an effect event for the current tick.
func (s *Session) emit(ev core.Event) {
	s.events = append(s.events, ev)
}

// State returns the platform-facing game state.
func (s *Session) State() core.GameState {
	return core.GameState{
		Score:    s.score,
		GameOver: s.state == StateGameOver || s.state == StateWin,
		Won:      s.state == StateWin,
		Paused:   s.paused,
		Level:    s.level,
	}
}

// Phase returns the state machine state.
func (s *Session) Phase() State {
	return s.state
}

// Level returns the current dungeon level (1-based).
func (s *Session) Level() int {
	return s.level
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// Player returns the player. Callers must not retain it across Reset.
func (s *Session) Player() *Player {
	return s.player
}

// Grid returns the current level's tile grid.
func (s *Session) Grid() *TileGrid {
	return s.grid
}

// Enemies returns the live enemies.
func (s *Session) Enemies() []*Enemy {
	return s.enemies
}

// Goal returns the current level's goal.
func (s *Session) Goal() Goal {
	return s.goal
}

// Summary returns the setup summary of the current level.
func (s *Session) Summary() LevelSummary {
	return s.summary
}

// Camera returns the world position the view should center on.
func (s *Session) Camera() core.Vec2 {
	return s.player.Pos
}

// Ticks returns the number of simulated (unpaused, playing) ticks of the
// current run.
func (s *Session) Ticks() uint64 {
	return s.tick
}
