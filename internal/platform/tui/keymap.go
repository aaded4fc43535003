package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bowmaster/internal/core"
)

// KeyMap defines the key bindings of a running game.
type KeyMap struct {
	Left      key.Binding
	Right     key.Binding
	Jump      key.Binding
	AimUp     key.Binding
	AimDown   key.Binding
	PowerUp   key.Binding
	PowerDown key.Binding
	Fire      key.Binding
	Confirm   key.Binding
	Restart   key.Binding
	Pause     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the default bindings. Movement keeps the AZERTY
// q/d/z layout next to the arrow keys.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "q"),
			key.WithHelp("←/q", "walk left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "walk right"),
		),
		Jump: key.NewBinding(
			key.WithKeys("up", "z"),
			key.WithHelp("↑/z", "jump"),
		),
		AimUp: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w/s", "angle"),
		),
		AimDown: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "lower angle"),
		),
		PowerUp: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e/a", "power"),
		),
		PowerDown: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "less power"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "fire"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.AimUp, k.PowerUp, k.Fire, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Jump},
		{k.AimUp, k.AimDown, k.PowerUp, k.PowerDown},
		{k.Fire, k.Confirm, k.Restart},
		{k.Pause, k.Help, k.Quit},
	}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (k KeyMap) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, k.Left):
		return core.ActionLeft, false
	case key.Matches(msg, k.Right):
		return core.ActionRight, false
	case key.Matches(msg, k.Jump):
		return core.ActionJump, false
	case key.Matches(msg, k.AimUp):
		return core.ActionAimUp, false
	case key.Matches(msg, k.AimDown):
		return core.ActionAimDown, false
	case key.Matches(msg, k.PowerUp):
		return core.ActionPowerUp, false
	case key.Matches(msg, k.PowerDown):
		return core.ActionPowerDown, false
	case key.Matches(msg, k.Fire):
		return core.ActionFire, false
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm, false
	case key.Matches(msg, k.Restart):
		return core.ActionRestart, false
	case key.Matches(msg, k.Pause):
		return core.ActionPause, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (k KeyMap) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	frame.Press(msg.String())
	action, isQuit := k.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "z", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}
