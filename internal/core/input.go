package core

// Action is a player intent. The platform binds keys to actions; the session
// never sees raw key presses.
type Action int

const (
	ActionNone     Action = iota
	ActionUp              // Up arrow, k - move cursor up
	ActionDown            // Down arrow, j - move cursor down
	ActionLeft            // Left arrow, h - move cursor left
	ActionRight           // Right arrow, l - move cursor right
	ActionSelect          // Enter, Space - primary click on the cursor tile
	ActionMark            // M - secondary click on the cursor tile
	ActionScramble        // S - scramble button
	ActionUnmark          // U - unmark button
	ActionHistory         // H - word history menu
	ActionRestart         // R - restart button
	ActionConfirm         // Y - confirm the open menu
	ActionBack            // N, Escape - dismiss the open menu
	ActionQuit            // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionSelect:
		return "Select"
	case ActionMark:
		return "Mark"
	case ActionScramble:
		return "Scramble"
	case ActionUnmark:
		return "Unmark"
	case ActionHistory:
		return "History"
	case ActionRestart:
		return "Restart"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// PointerButton identifies which pointer button was pressed.
type PointerButton int

const (
	ButtonPrimary   PointerButton = iota // Left click
	ButtonSecondary                      // Right click
)

// PointerEvent is a pointer-down at a position in board units.
type PointerEvent struct {
	At     Point
	Button PointerButton
}

// InputFrame collects the input delivered between two session steps.
type InputFrame struct {
	Actions map[Action]bool

	// Pointers holds pointer-down events in arrival order.
	Pointers []PointerEvent
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

// Press queues a pointer-down event for this frame.
func (f *InputFrame) Press(at Point, button PointerButton) {
	f.Pointers = append(f.Pointers, PointerEvent{At: at, Button: button})
}

// Clear resets all actions and pointer events for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointers = f.Pointers[:0]
}
