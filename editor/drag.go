package editor

import "fmt"

// DragUpdate processes one pointer movement of the element with the
// given ID to the normalized position pos. The first update of a
// gesture records the element's pre-drag position as the baseline;
// the gesture's total displacement from that baseline selects the
// element's division count.
func (e *Editor) DragUpdate(id string, pos float64) {
	newPos, divisions := e.session.Resolve(id, pos, func(id string) (float64, bool) {
		if s := e.unit.Shelf(id); s != nil {
			return s.Position, true
		}
		if c := e.unit.Column(id); c != nil {
			return c.Position, true
		}
		return 0, false
	})

	if s := e.unit.Shelf(id); s != nil {
		s.Position, s.Divisions = newPos, divisions
	} else if c := e.unit.Column(id); c != nil {
		c.Position, c.Divisions = newPos, divisions
	} else {
		return
	}

	e.recompute()
	e.SetStatus(fmt.Sprintf("position %.0f%%, %d divisions", newPos*100, divisions))
}

// DragEnd closes the current gesture: every baseline is forgotten, so
// the next drag on any element measures from its then-current
// position. The finished gesture becomes one undo step.
func (e *Editor) DragEnd() {
	if len(e.session) == 0 {
		return
	}
	e.session.End()
	e.commit()
}

// Dragging reports whether a drag gesture is in progress.
func (e *Editor) Dragging() bool {
	return len(e.session) > 0
}
