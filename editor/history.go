package editor

import "plank/core"

// History manages undo/redo over unit snapshots. Each saved state is
// a deep copy, so later mutations never leak into history.
type History struct {
	states  []*core.Unit
	current int
	max     int
}

// NewHistory creates a history keeping at most max states.
func NewHistory(max int) *History {
	if max <= 0 {
		max = 50
	}
	return &History{
		states:  make([]*core.Unit, 0, max),
		current: -1,
		max:     max,
	}
}

// Save records a new state, truncating any redo tail.
func (h *History) Save(u *core.Unit) {
	if h.current < len(h.states)-1 {
		h.states = h.states[:h.current+1]
	}
	h.states = append(h.states, u.Clone())
	if len(h.states) > h.max {
		h.states = h.states[1:]
	}
	h.current = len(h.states) - 1
}

// Undo steps back one state and returns a copy of it, or nil at the
// beginning of history.
func (h *History) Undo() *core.Unit {
	if h.current <= 0 {
		return nil
	}
	h.current--
	return h.states[h.current].Clone()
}

// Redo steps forward one state and returns a copy of it, or nil at
// the end of history.
func (h *History) Redo() *core.Unit {
	if h.current >= len(h.states)-1 {
		return nil
	}
	h.current++
	return h.states[h.current].Clone()
}

// CanUndo reports whether an undo step is available.
func (h *History) CanUndo() bool {
	return h.current > 0
}

// CanRedo reports whether a redo step is available.
func (h *History) CanRedo() bool {
	return h.current < len(h.states)-1
}
