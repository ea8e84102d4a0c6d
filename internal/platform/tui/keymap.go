package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-slide/internal/core"
)

// KeyMapper translates Bubble Tea key and mouse messages to game input.
// This centralizes bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "enter":
		return core.ActionConfirm, false
	case "b":
		return core.ActionBack, false
	case "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionReset, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MapMouse translates a mouse message to a pointer event.
// Wheel and unknown events are dropped.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg) (core.PointerEvent, bool) {
	ev := core.PointerEvent{X: msg.X, Y: msg.Y}

	switch msg.Button {
	case tea.MouseButtonLeft:
		ev.Button = core.ButtonPrimary
	case tea.MouseButtonRight:
		ev.Button = core.ButtonSecondary
	case tea.MouseButtonMiddle:
		ev.Button = core.ButtonMiddle
	case tea.MouseButtonNone:
		ev.Button = core.ButtonNone
	default:
		return core.PointerEvent{}, false
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if ev.Button == core.ButtonNone {
			return core.PointerEvent{}, false
		}
		ev.Kind = core.PointerPress
	case tea.MouseActionMotion:
		ev.Kind = core.PointerMotion
	case tea.MouseActionRelease:
		ev.Kind = core.PointerRelease
	default:
		return core.PointerEvent{}, false
	}

	return ev, true
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
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
