package core

// Action represents a semantic game command, abstracted from physical input.
// Keyboard keys, on-screen buttons and swipe gestures all normalise to these.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow, swipe up, up button
	ActionDown           // S, Down arrow, swipe down, down button
	ActionLeft           // A, Left arrow, swipe left, left button
	ActionRight          // D, Right arrow, swipe right, right button
	ActionRestart        // Space, R, restart button - only honoured after game over
	ActionPause          // P - pause/unpause
	ActionMute           // M, sound button - toggle audio
	ActionQuit           // Q, Ctrl+C - exit
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
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionMute:
		return "Mute"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Heading returns the movement vector for a directional action.
func (a Action) Heading() (Heading, bool) {
	switch a {
	case ActionUp:
		return HeadingUp, true
	case ActionDown:
		return HeadingDown, true
	case ActionLeft:
		return HeadingLeft, true
	case ActionRight:
		return HeadingRight, true
	}
	return Heading{}, false
}

// InputFrame collects the actions delivered between two simulation ticks.
// Arrival order is preserved so the last direction wins.
type InputFrame struct {
	actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set appends an action to this frame. ActionNone is dropped.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.actions = append(f.actions, a)
}

// Actions returns the actions in arrival order.
func (f InputFrame) Actions() []Action {
	return f.actions
}

// Len returns the number of actions recorded.
func (f InputFrame) Len() int {
	return len(f.actions)
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.actions = f.actions[:0]
}
