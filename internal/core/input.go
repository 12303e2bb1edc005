package core

import "strings"

// Action represents a logical button, abstracted from physical key presses.
// Games only ever see actions; platforms decide which keys produce them.
type Action int

const (
	ActionNone   Action = iota
	ActionUp            // W, Up arrow - move up
	ActionDown          // S, Down arrow - move down
	ActionLeft          // A, Left arrow - move left
	ActionRight         // D, Right arrow - move right
	ActionEasy          // 1 - select the easy tier on the start screen
	ActionMedium        // 2 - select the medium tier
	ActionHard          // 3 - select the hard tier
	ActionReturn        // Esc, B - return to the start screen from any phase
	ActionQuit          // Q, Ctrl+C - exit the program (platform only)

	actionCount
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
	case ActionEasy:
		return "Easy"
	case ActionMedium:
		return "Medium"
	case ActionHard:
		return "Hard"
	case ActionReturn:
		return "Return"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// ParseAction maps a lower-case action name ("up", "easy", "return") to an Action.
func ParseAction(name string) (Action, bool) {
	for a := ActionUp; a < actionCount; a++ {
		if strings.EqualFold(a.String(), name) {
			return a, true
		}
	}
	return ActionNone, false
}

// InputFrame is the snapshot of held buttons for one simulation frame.
// Input is level-triggered: a button is either held this frame or it is not.
type InputFrame struct {
	held uint32
}

// NewInputFrame creates an empty input frame.
func NewInputFrame(actions ...Action) InputFrame {
	var f InputFrame
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as held for this frame.
func (f *InputFrame) Set(a Action) {
	if a <= ActionNone || a >= actionCount {
		return
	}
	f.held |= 1 << uint(a)
}

// Unset releases an action.
func (f *InputFrame) Unset(a Action) {
	f.held &^= 1 << uint(a)
}

// Has returns true if the given action is held this frame.
func (f InputFrame) Has(a Action) bool {
	if a <= ActionNone || a >= actionCount {
		return false
	}
	return f.held&(1<<uint(a)) != 0
}

// Empty reports whether no action is held.
func (f InputFrame) Empty() bool {
	return f.held == 0
}

// Clear releases all actions.
func (f *InputFrame) Clear() {
	f.held = 0
}

// Merge returns a frame holding the actions of both frames.
func (f InputFrame) Merge(other InputFrame) InputFrame {
	return InputFrame{held: f.held | other.held}
}

// Actions lists the held actions in declaration order.
func (f InputFrame) Actions() []Action {
	var out []Action
	for a := ActionUp; a < actionCount; a++ {
		if f.Has(a) {
			out = append(out, a)
		}
	}
	return out
}

// String returns the held actions joined with "+", or "None".
func (f InputFrame) String() string {
	actions := f.Actions()
	if len(actions) == 0 {
		return ActionNone.String()
	}
	names := make([]string, len(actions))
	for i, a := range actions {
		names[i] = a.String()
	}
	return strings.Join(names, "+")
}
