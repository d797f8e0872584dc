package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-arena/internal/arena"
	"github.com/vovakirdan/tui-arena/internal/audio"
	"github.com/vovakirdan/tui-arena/internal/core"
	"github.com/vovakirdan/tui-arena/internal/registry"
	"github.com/vovakirdan/tui-arena/internal/storage"
)

// viewer is implemented by games with a world camera that effects can be
// drawn against.
type viewer interface {
	Viewport(w, h int, offset core.Vec2) arena.Viewport
	SetCameraOffset(off core.Vec2)
}

// reporter is implemented by games that can describe a finished run.
type reporter interface {
	Ticks() uint64
	Player() *arena.Player
}

// Model is the Bubble Tea model that drives one game.
type Model struct {
	game    registry.Game
	screen  *core.Screen
	store   *storage.Store
	audio   *audio.Player
	effects *Effects
	clock   *arena.Clock
	keys    *KeyMapper
	held    *HeldKeys
	pending core.InputFrame
	config  core.RuntimeConfig
	logger  *log.Logger

	lastFrame  time.Time
	gameState  core.GameState
	quitting   bool
	backToMenu bool
	embedded   bool
	runSaved   bool
	status     string
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithAudio routes sound events to p.
func WithAudio(p *audio.Player) ModelOption {
	return func(m *Model) { m.audio = p }
}

// WithLogger sets the logger for storage and screenshot errors.
func WithLogger(l *log.Logger) ModelOption {
	return func(m *Model) { m.logger = l }
}

// embedded makes the back key hand control to an enclosing model instead of
// quitting the program.
func embedded() ModelOption {
	return func(m *Model) { m.embedded = true }
}

// NewModel creates a model for game. store may be nil.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	m := Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:   store,
		effects: NewEffects(cfg.Seed),
		clock:   arena.NewClock(cfg.TickRate, cfg.MaxCatchUp),
		keys:    NewKeyMapper(),
		held:    NewHeldKeys(DefaultHoldWindow),
		pending: core.NewInputFrame(),
		config:  cfg,
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.game.Reset(cfg)
	m.gameState = m.game.State()
	return m
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.config.TickRate)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	case FrameMsg:
		m.advance(time.Time(msg))
		return m, frameCmd(m.config.TickRate)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.status = m.saveScreenshot()
		return m, nil
	case "m":
		if m.audio != nil {
			m.audio.SetMuted(!m.audio.IsMuted())
		}
		return m, nil
	case "b":
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			if !m.embedded {
				return m, tea.Quit
			}
			return m, nil
		}
	}

	dir, action := m.keys.MapKey(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if dir != DirNone {
		m.held.Press(dir, now)
	}
	if action != core.ActionNone {
		m.pending.Set(action)
	}
	return m, nil
}

// advance runs the ticks owed for the time since the last frame. Pending
// actions go to the first tick only; held movement goes to every tick.
func (m *Model) advance(now time.Time) {
	frame := m.clock.Step()
	if !m.lastFrame.IsZero() {
		frame = now.Sub(m.lastFrame)
	}
	m.lastFrame = now

	move := m.held.Intent(now)
	first := true
	ran, dropped := m.clock.Advance(frame, func() {
		in := core.NewInputFrame()
		in.Move = move
		if first {
			for a := range m.pending.Actions {
				in.Set(a)
			}
			first = false
		}
		m.step(in)
	})
	if ran > 0 {
		m.pending.Clear()
	}
	if dropped > 0 {
		m.logger.Debug("frame behind, ticks dropped", "dropped", dropped)
	}
	m.effects.Update(frame.Seconds())
}

func (m *Model) step(in core.InputFrame) {
	prev := m.gameState
	res := m.game.Step(in)
	m.gameState = res.State

	if m.audio != nil {
		m.audio.Handle(res.Events)
	}
	m.effects.Apply(res.Events)

	if prev.GameOver && !res.State.GameOver {
		m.runSaved = false
		m.status = ""
		m.effects.Clear()
		m.held.Release()
	}
	if res.State.GameOver && !m.runSaved {
		m.saveRun(res.State)
		m.runSaved = true
	}
}

// saveRun records the finished run. Storage errors are logged and otherwise
// ignored.
func (m *Model) saveRun(st core.GameState) {
	if m.store == nil {
		return
	}
	if st.Score > 0 {
		if _, err := m.store.SaveScore(m.game.ID(), st.Score); err != nil {
			m.logger.Warn("could not save score", "game", m.game.ID(), "error", err)
		}
	}

	rec := storage.RunRecord{
		GameID:       m.game.ID(),
		Score:        st.Score,
		LevelReached: st.Level,
		Won:          st.Won,
	}
	if r, ok := m.game.(reporter); ok {
		rec.Ticks = r.Ticks()
		if p := r.Player(); p != nil {
			rec.PlayerLevel = p.Level
		}
	}
	saved, err := m.store.SaveRun(rec)
	if err != nil {
		m.logger.Warn("could not save run", "game", m.game.ID(), "error", err)
		return
	}
	m.logger.Info("run saved", "id", saved.ID, "score", saved.Score, "won", saved.Won)
}

// saveScreenshot writes the current screen to ~/.arena/screenshots and
// returns a status line.
func (m *Model) saveScreenshot() string {
	m.render()

	home, err := os.UserHomeDir()
	if err != nil {
		return "screenshot failed"
	}
	dir := filepath.Join(home, ".arena", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return "screenshot failed"
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not write screenshot", "path", path, "error", err)
		return "screenshot failed"
	}
	return "saved " + path
}

// render draws the game and the effect layer into the screen buffer.
func (m *Model) render() {
	v, ok := m.game.(viewer)
	if !ok {
		m.game.Render(m.screen)
		return
	}

	offset := m.effects.CameraOffset()
	v.SetCameraOffset(offset)
	m.game.Render(m.screen)

	w, h := m.screen.Width(), m.screen.Height()
	if w < arena.MinScreenW || h < arena.MinScreenH {
		return
	}
	if !m.gameState.GameOver {
		m.effects.Draw(m.screen, v.Viewport(w, h, offset))
	}
	if m.status != "" {
		m.screen.DrawTextColored(0, h-1, m.status, core.ColorGray)
	}
}

// View renders the game.
func (m Model) View() string {
	if m.quitting || (m.backToMenu && !m.embedded) {
		return ""
	}
	m.render()
	return RenderScreen(m.screen)
}

// State returns the last reported game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting reports whether the user asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu reports whether the user left the game for the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the interactive game loop.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) error {
	model := NewModel(game, store, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
