package core

// Action represents a discrete trigger, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionDash           // Space - short invulnerable burst of speed
	ActionConfirm        // Enter - start from menu, restart after game over or win
	ActionPause          // P - pause/unpause
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionDash:
		return "Dash"
	case ActionConfirm:
		return "Confirm"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the input for one simulation tick: a movement intent plus the
// discrete actions triggered since the previous tick.
type InputFrame struct {
	// Move is the desired direction of travel. Magnitude never exceeds 1.
	Move Vec2

	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// SetMove sets the movement intent from raw axis values in [-1, 1].
// Diagonals are normalized so that moving diagonally is not faster.
func (f *InputFrame) SetMove(dx, dy float64) {
	f.Move = MoveIntent(dx, dy)
}

// Clear resets actions and movement for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Move = Vec2{}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	clone.Move = f.Move
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// MoveIntent turns per-axis input into a movement vector of length <= 1.
func MoveIntent(dx, dy float64) Vec2 {
	v := Vec2{X: ClampF(dx, -1, 1), Y: ClampF(dy, -1, 1)}
	return v.ClampLen(1)
}
