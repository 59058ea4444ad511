// Package drag converts in-progress drag gestures into element
// positions and division counts. A gesture's total displacement from
// its starting position selects how many compartments the dragged
// shelf or column is split into.
package drag

import (
	"math"

	"plank/geometry"
)

// MaxDivisions caps the division count a single gesture can select.
const MaxDivisions = 5

// divisionStep is the displacement that buys one extra division.
const divisionStep = 0.05

// Session records, per element ID, the normalized position the
// element had when its current gesture started. Entries are created
// lazily on the first movement of an element and the whole session is
// forgotten when the gesture ends.
type Session map[string]float64

// NewSession returns an empty drag session.
func NewSession() Session {
	return make(Session)
}

// End clears every recorded baseline. The next drag on any element
// starts fresh from its then-current position.
func (s Session) End() {
	clear(s)
}

// Divisions maps a gesture's total normalized displacement to a
// division count. The thresholds are exclusive lower bounds: a
// distance of exactly 0.05 still yields 1.
func Divisions(distance float64) int {
	switch {
	case distance > 4*divisionStep:
		return 5
	case distance > 3*divisionStep:
		return 4
	case distance > 2*divisionStep:
		return 3
	case distance > divisionStep:
		return 2
	default:
		return 1
	}
}

// Resolve processes one drag update for the element with the given
// ID. position is the gesture's current normalized location; current
// looks up the element's pre-drag position in the owning state and
// reports whether the element exists.
//
// The first update for an element records its baseline; later updates
// in the same session measure displacement against that baseline. A
// lookup miss means the baseline equals the current position, which
// yields distance zero, never an error.
//
// Returns the element's new position, clamped to [0,1], and the
// division count selected by the gesture so far. The caller merges
// both into the unit state.
func (s Session) Resolve(id string, position float64, current func(string) (float64, bool)) (float64, int) {
	position = geometry.Clamp01(position)

	baseline, ok := s[id]
	if !ok {
		baseline = position
		if cur, found := current(id); found {
			baseline = cur
		}
		s[id] = baseline
	}

	return position, Divisions(math.Abs(position - baseline))
}
