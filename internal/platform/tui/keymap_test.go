package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-arena/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		name   string
		msg    tea.KeyMsg
		dir    Direction
		action core.Action
	}{
		{"w", runeKey('w'), DirUp, core.ActionNone},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, DirDown, core.ActionNone},
		{"a", runeKey('a'), DirLeft, core.ActionNone},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, DirRight, core.ActionNone},
		{"space", runeKey(' '), DirNone, core.ActionDash},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, DirNone, core.ActionConfirm},
		{"p", runeKey('p'), DirNone, core.ActionPause},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, DirNone, core.ActionPause},
		{"q", runeKey('q'), DirNone, core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, DirNone, core.ActionQuit},
		{"unbound", runeKey('z'), DirNone, core.ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, action := km.MapKey(tt.msg)
			if dir != tt.dir || action != tt.action {
				t.Errorf("MapKey(%q) = (%d, %s), want (%d, %s)", tt.msg.String(), dir, action, tt.dir, tt.action)
			}
		})
	}
}

func TestHeldKeysIntent(t *testing.T) {
	t0 := time.Unix(1000, 0)
	h := NewHeldKeys(100 * time.Millisecond)

	h.Press(DirRight, t0)
	if got := h.Intent(t0.Add(50 * time.Millisecond)); got != core.V(1, 0) {
		t.Errorf("Intent while held = %v, want (1,0)", got)
	}

	h.Press(DirDown, t0.Add(60*time.Millisecond))
	got := h.Intent(t0.Add(80 * time.Millisecond))
	if d := got.Len(); d > 1.0000001 {
		t.Errorf("diagonal intent length = %v, want <= 1", d)
	}
	if got.X <= 0 || got.Y <= 0 {
		t.Errorf("diagonal intent = %v, want both axes positive", got)
	}

	// Right expires first, down is still within its window.
	if got := h.Intent(t0.Add(150 * time.Millisecond)); got != core.V(0, 1) {
		t.Errorf("Intent after right expired = %v, want (0,1)", got)
	}
	if got := h.Intent(t0.Add(time.Second)); got != (core.Vec2{}) {
		t.Errorf("Intent after release window = %v, want zero", got)
	}
}

func TestHeldKeysOppositeReleases(t *testing.T) {
	t0 := time.Unix(1000, 0)
	h := NewHeldKeys(0)

	h.Press(DirLeft, t0)
	h.Press(DirRight, t0.Add(10*time.Millisecond))
	if got := h.Intent(t0.Add(20 * time.Millisecond)); got != core.V(1, 0) {
		t.Errorf("Intent = %v, want the later direction only", got)
	}

	h.Release()
	if got := h.Intent(t0.Add(20 * time.Millisecond)); got != (core.Vec2{}) {
		t.Errorf("Intent after Release = %v, want zero", got)
	}
}
