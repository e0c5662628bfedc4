package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/periodic2048/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	bindings map[string]core.Action
}

// NewKeyMapper creates a key mapper with the default bindings: arrows,
// WASD and vim keys for moves, 1-4 for answers.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{bindings: map[string]core.Action{
		"up": core.ActionUp, "w": core.ActionUp, "k": core.ActionUp,
		"down": core.ActionDown, "s": core.ActionDown, "j": core.ActionDown,
		"left": core.ActionLeft, "a": core.ActionLeft, "h": core.ActionLeft,
		"right": core.ActionRight, "d": core.ActionRight, "l": core.ActionRight,
		"enter": core.ActionConfirm,
		"r":     core.ActionRestart, " ": core.ActionRestart,
		"p": core.ActionPause, "esc": core.ActionPause,
		"1": core.ActionChoice1, "2": core.ActionChoice2,
		"3": core.ActionChoice3, "4": core.ActionChoice4,
		"q": core.ActionQuit, "ctrl+c": core.ActionQuit,
	}}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	action, ok := km.bindings[msg.String()]
	if !ok {
		return core.ActionNone, false
	}
	return action, action == core.ActionQuit
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone && !isQuit {
		frame.Set(action)
	}
	return isQuit
}
