package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone  Action = iota
	ActionUp           // W, Up arrow - move paddle up (held)
	ActionDown         // S, Down arrow - move paddle down (held)
	ActionStart        // Space, touch/click - (re)start a rally
	ActionQuit         // Escape, window close - terminate
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
	case ActionStart:
		return "Start"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for one frame.
//
// Pressed actions are discrete events that happened since the previous frame
// (start, quit). Held actions are the polled "key is currently down" state used
// for continuous movement. Games must not rely on press events for movement.
type InputFrame struct {
	// Actions maps action types to whether they were pressed this frame.
	Actions map[Action]bool

	// Held maps action types to whether their key is currently held down.
	Held map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Set marks an action as pressed for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Hold marks an action's key as currently held.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// IsHeld returns true if the given action's key is held down.
func (f InputFrame) IsHeld(a Action) bool {
	if f.Held == nil {
		return false
	}
	return f.Held[a]
}

// Clear resets pressed and held actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	clear(f.Held)
}
