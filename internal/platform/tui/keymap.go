package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-arena/internal/core"
)

// DefaultHoldWindow is how long a movement key counts as held after its last
// press. Terminals report key repeats, not releases, so a held key shows up
// as a stream of presses.
const DefaultHoldWindow = 180 * time.Millisecond

// Direction is one of the four movement keys.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// KeyMapper translates Bubble Tea key messages to movement and actions.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey returns the movement direction or action for a key. At most one of
// dir and action is set.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (dir Direction, action core.Action) {
	switch msg.String() {
	case "ctrl+c", "q":
		return DirNone, core.ActionQuit
	case "w", "up", "k":
		return DirUp, core.ActionNone
	case "s", "down", "j":
		return DirDown, core.ActionNone
	case "a", "left", "h":
		return DirLeft, core.ActionNone
	case "d", "right", "l":
		return DirRight, core.ActionNone
	case " ", "shift+space":
		return DirNone, core.ActionDash
	case "enter":
		return DirNone, core.ActionConfirm
	case "p", "esc":
		return DirNone, core.ActionPause
	}
	return DirNone, core.ActionNone
}

// HeldKeys tracks which movement keys are currently considered held.
type HeldKeys struct {
	window time.Duration
	last   map[Direction]time.Time
}

// NewHeldKeys creates a tracker. A non-positive window uses DefaultHoldWindow.
func NewHeldKeys(window time.Duration) *HeldKeys {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HeldKeys{window: window, last: make(map[Direction]time.Time)}
}

// Press records a key press at now. Pressing a direction releases its opposite.
func (h *HeldKeys) Press(d Direction, now time.Time) {
	if d == DirNone {
		return
	}
	delete(h.last, opposite(d))
	h.last[d] = now
}

// Release forgets every held key.
func (h *HeldKeys) Release() {
	clear(h.last)
}

// Intent returns the movement intent at now.
func (h *HeldKeys) Intent(now time.Time) core.Vec2 {
	var dx, dy float64
	for d, at := range h.last {
		if now.Sub(at) > h.window {
			delete(h.last, d)
			continue
		}
		switch d {
		case DirUp:
			dy--
		case DirDown:
			dy++
		case DirLeft:
			dx--
		case DirRight:
			dx++
		}
	}
	return core.MoveIntent(dx, dy)
}

func opposite(d Direction) Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	}
	return DirNone
}
