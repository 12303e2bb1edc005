package tui

import "github.com/vovakirdan/fireball-dodge/internal/core"

// DefaultHoldFrames is how long a key press counts as held when the config
// does not say otherwise.
const DefaultHoldFrames = 8

// opposite pairs cancel each other: pressing one releases the other.
var opposite = map[core.Action]core.Action{
	core.ActionUp:    core.ActionDown,
	core.ActionDown:  core.ActionUp,
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
}

// HeldInput turns key presses into held buttons. Terminals only report
// presses (and auto-repeat), so each press keeps its button down for a
// fixed number of frames; a repeat before expiry extends it.
type HeldInput struct {
	window    int
	remaining map[core.Action]int
}

// NewHeldInput creates a tracker holding each press for window frames.
func NewHeldInput(window int) *HeldInput {
	if window < 1 {
		window = DefaultHoldFrames
	}
	return &HeldInput{
		window:    window,
		remaining: make(map[core.Action]int),
	}
}

// Press marks a button as held for the next window frames.
func (h *HeldInput) Press(a core.Action) {
	if a == core.ActionNone {
		return
	}
	if o, ok := opposite[a]; ok {
		delete(h.remaining, o)
	}
	h.remaining[a] = h.window
}

// Poll returns the buttons held this frame and ages every press by one
// frame.
func (h *HeldInput) Poll() core.InputFrame {
	in := core.NewInputFrame()
	for a, n := range h.remaining {
		in.Set(a)
		if n <= 1 {
			delete(h.remaining, a)
		} else {
			h.remaining[a] = n - 1
		}
	}
	return in
}

// Release drops every held button.
func (h *HeldInput) Release() {
	clear(h.remaining)
}
