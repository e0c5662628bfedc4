package core

// Action represents a semantic game action, abstracted from physical key presses.
// Games react to intents rather than raw keys, so every transport can share them.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, K, Up arrow - slide tiles up
	ActionDown           // S, J, Down arrow - slide tiles down
	ActionLeft           // A, H, Left arrow - slide tiles left
	ActionRight          // D, L, Right arrow - slide tiles right
	ActionConfirm        // Enter - skip the element card
	ActionRestart        // R, Space - start a new run
	ActionPause          // P - pause/unpause
	ActionQuit           // Q, Ctrl+C - exit the session
	ActionChoice1        // 1 - first trivia answer
	ActionChoice2        // 2 - second trivia answer
	ActionChoice3        // 3 - third trivia answer
	ActionChoice4        // 4 - fourth trivia answer
)

// ChoiceActions lists the answer actions in choice order.
var ChoiceActions = [...]Action{ActionChoice1, ActionChoice2, ActionChoice3, ActionChoice4}

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
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	case ActionChoice1:
		return "Choice1"
	case ActionChoice2:
		return "Choice2"
	case ActionChoice3:
		return "Choice3"
	case ActionChoice4:
		return "Choice4"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state during one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
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

// Choice returns the 1-based trivia choice pressed this frame, or 0.
func (f InputFrame) Choice() int {
	for i, a := range ChoiceActions {
		if f.Has(a) {
			return i + 1
		}
	}
	return 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
