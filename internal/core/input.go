package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionLeft             // Left arrow, Q - walk left
	ActionRight            // Right arrow, D - walk right
	ActionJump             // Up arrow, Z - jump
	ActionAimUp            // W - raise the aim angle
	ActionAimDown          // S - lower the aim angle
	ActionPowerUp          // E - more power
	ActionPowerDown        // A - less power
	ActionFire             // Space - release the shot
	ActionConfirm          // Enter - confirm selection in menus
	ActionRestart          // R - restart after game over
	ActionPause            // P, Escape - pause/unpause
	ActionQuit             // Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionAimUp:
		return "AimUp"
	case ActionAimDown:
		return "AimDown"
	case ActionPowerUp:
		return "PowerUp"
	case ActionPowerDown:
		return "PowerDown"
	case ActionFire:
		return "Fire"
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// MouseButton indexes InputFrame.Buttons.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseMiddle
	MouseRight
)

// InputFrame represents the input state during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Keys holds the raw key names seen this frame ("left", "q", " ").
	Keys map[string]bool

	// Mouse is the last known mouse position in screen cells.
	Mouse struct{ X, Y int }

	// Buttons is the held state of the left, middle and right buttons.
	Buttons [3]bool

	// Delta is the frame's dt scale. Zero means the nominal 1.0.
	Delta float64
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Keys:    make(map[string]bool),
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
	return f.Actions[a]
}

// Press records a raw key name for this frame.
func (f *InputFrame) Press(key string) {
	if f.Keys == nil {
		f.Keys = make(map[string]bool)
	}
	f.Keys[key] = true
}

// Pressed reports whether the raw key was seen this frame.
func (f InputFrame) Pressed(key string) bool {
	return f.Keys[key]
}

// Button reports whether a mouse button is held.
func (f InputFrame) Button(b MouseButton) bool {
	if b < 0 || int(b) >= len(f.Buttons) {
		return false
	}
	return f.Buttons[b]
}

// DT returns the frame's dt scale, defaulting to 1.
func (f InputFrame) DT() float64 {
	if f.Delta <= 0 {
		return 1
	}
	return f.Delta
}

// Clear resets per-frame actions and keys. Mouse state persists because the
// terminal only reports it when it changes.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	clear(f.Keys)
	f.Delta = 0
}
