package editor

import (
	"fmt"

	"plank/core"
	"plank/geometry"
	"plank/layout"
)

// Field identifies which dimension the slider keys currently adjust.
type Field int

const (
	FieldWidth Field = iota
	FieldHeight
	FieldDepth
	FieldThickness
)

// fieldSpec fixes the range and step of each dimension slider. These
// ranges are the only guard against degenerate geometry.
type fieldSpec struct {
	name           string
	min, max, step float64
	get            func(*core.Unit) float64
	set            func(*core.Unit, float64)
}

var fieldSpecs = [...]fieldSpec{
	FieldWidth: {
		name: "width", min: 0.4, max: 4.0, step: 0.1,
		get: func(u *core.Unit) float64 { return u.Width },
		set: func(u *core.Unit, v float64) { u.Width = v },
	},
	FieldHeight: {
		name: "height", min: 0.4, max: 3.0, step: 0.1,
		get: func(u *core.Unit) float64 { return u.Height },
		set: func(u *core.Unit, v float64) { u.Height = v },
	},
	FieldDepth: {
		name: "depth", min: 0.2, max: 1.0, step: 0.05,
		get: func(u *core.Unit) float64 { return u.Depth },
		set: func(u *core.Unit, v float64) { u.Depth = v },
	},
	FieldThickness: {
		name: "thickness", min: 0.01, max: 0.1, step: 0.005,
		get: func(u *core.Unit) float64 { return u.Thickness },
		set: func(u *core.Unit, v float64) { u.Thickness = v },
	},
}

// Field returns the active slider field.
func (e *Editor) Field() Field {
	return e.field
}

// FieldName returns the display name of the active slider field.
func (e *Editor) FieldName() string {
	return fieldSpecs[e.field].name
}

// CycleField moves the slider focus to the next dimension.
func (e *Editor) CycleField() {
	e.field = Field((int(e.field) + 1) % len(fieldSpecs))
	e.SetStatus(fmt.Sprintf("adjusting %s", e.FieldName()))
}

// AdjustField nudges the active dimension by delta steps, clamped to
// the field's fixed range.
func (e *Editor) AdjustField(delta int) {
	spec := fieldSpecs[e.field]
	v := geometry.Clamp(spec.get(e.unit)+float64(delta)*spec.step, spec.min, spec.max)
	spec.set(e.unit, v)
	e.commit()
	e.SetStatus(fmt.Sprintf("%s: %d mm", spec.name, core.Millimeters(v)))
}

// AddShelf inserts a new shelf at the midpoint of the largest
// vertical gap.
func (e *Editor) AddShelf() {
	pos := layout.InsertPosition(e.unit.ShelfPositions())
	e.unit.Shelves = append(e.unit.Shelves, core.NewShelf(pos))
	e.selKind, e.selIndex = KindShelf, len(e.unit.Shelves)-1
	e.commit()
	e.SetStatus(fmt.Sprintf("added shelf at %.0f%%", pos*100))
}

// AddColumn inserts a new column at the midpoint of the largest
// horizontal gap.
func (e *Editor) AddColumn() {
	pos := layout.InsertPosition(e.unit.ColumnPositions())
	e.unit.Columns = append(e.unit.Columns, core.NewColumn(pos))
	e.selKind, e.selIndex = KindColumn, len(e.unit.Columns)-1
	e.commit()
	e.SetStatus(fmt.Sprintf("added column at %.0f%%", pos*100))
}

// RemoveSelected deletes the selected element; with no selection it
// removes the most recently added shelf, then column.
func (e *Editor) RemoveSelected() {
	id, kind, ok := e.selectedOrLast()
	if !ok {
		e.SetStatus("nothing to remove")
		return
	}
	if kind == KindShelf {
		e.unit.RemoveShelf(id)
	} else {
		e.unit.RemoveColumn(id)
	}
	e.selIndex = -1
	e.commit()
	e.SetStatus("removed element")
}

func (e *Editor) selectedOrLast() (string, ElementKind, bool) {
	if id, kind, ok := e.Selected(); ok {
		return id, kind, ok
	}
	if n := len(e.unit.Shelves); n > 0 {
		return e.unit.Shelves[n-1].ID, KindShelf, true
	}
	if n := len(e.unit.Columns); n > 0 {
		return e.unit.Columns[n-1].ID, KindColumn, true
	}
	return "", 0, false
}

// Selected returns the selected element's ID and kind.
func (e *Editor) Selected() (string, ElementKind, bool) {
	if e.selIndex < 0 {
		return "", 0, false
	}
	if e.selKind == KindShelf {
		if e.selIndex < len(e.unit.Shelves) {
			return e.unit.Shelves[e.selIndex].ID, KindShelf, true
		}
	} else if e.selIndex < len(e.unit.Columns) {
		return e.unit.Columns[e.selIndex].ID, KindColumn, true
	}
	return "", 0, false
}

// SelectNext cycles the selection through shelves then columns.
func (e *Editor) SelectNext() {
	e.cycleSelection(1)
}

// SelectPrev cycles the selection backwards.
func (e *Editor) SelectPrev() {
	e.cycleSelection(-1)
}

func (e *Editor) cycleSelection(dir int) {
	total := len(e.unit.Shelves) + len(e.unit.Columns)
	if total == 0 {
		e.selIndex = -1
		return
	}

	// Flatten the selection to one index over shelves + columns.
	flat := -1
	if e.selIndex >= 0 {
		flat = e.selIndex
		if e.selKind == KindColumn {
			flat += len(e.unit.Shelves)
		}
	}
	flat = ((flat+dir)%total + total) % total

	if flat < len(e.unit.Shelves) {
		e.selKind, e.selIndex = KindShelf, flat
	} else {
		e.selKind, e.selIndex = KindColumn, flat-len(e.unit.Shelves)
	}
	id, kind, _ := e.Selected()
	e.SetStatus(fmt.Sprintf("selected %s %s", kindName(kind), shortID(id)))
}

// NudgeSelected moves the selected element by delta hundredths of its
// axis. Unlike a drag this never changes the division count.
func (e *Editor) NudgeSelected(delta int) {
	id, kind, ok := e.Selected()
	if !ok {
		e.SetStatus("no element selected")
		return
	}
	step := float64(delta) * 0.01
	if kind == KindShelf {
		s := e.unit.Shelf(id)
		s.Position = geometry.Clamp01(s.Position + step)
	} else {
		c := e.unit.Column(id)
		c.Position = geometry.Clamp01(c.Position + step)
	}
	e.commit()
}

// CycleMaterial advances to the next material.
func (e *Editor) CycleMaterial() {
	mats := core.Materials()
	for i, m := range mats {
		if m == e.unit.Material {
			e.unit.Material = mats[(i+1)%len(mats)]
			e.commit()
			e.SetStatus(fmt.Sprintf("material: %s", e.unit.Material))
			return
		}
	}
	e.unit.Material = mats[0]
	e.commit()
}

// ToggleViewMode switches between perspective and technical views.
func (e *Editor) ToggleViewMode() {
	e.unit.ViewMode = e.unit.ViewMode.Toggle()
	e.commit()
	e.SetStatus(fmt.Sprintf("view: %s", e.unit.ViewMode))
}

// ToggleWireframe flips wireframe display.
func (e *Editor) ToggleWireframe() {
	e.unit.ShowWireframe = !e.unit.ShowWireframe
	e.commit()
}

// ToggleDimensions flips dimension-annotation display.
func (e *Editor) ToggleDimensions() {
	e.unit.ShowDimensions = !e.unit.ShowDimensions
	e.commit()
}

// LoadPreset replaces the unit with a named preset layout.
func (e *Editor) LoadPreset(name string) error {
	u, err := core.Preset(name)
	if err != nil {
		return err
	}
	e.SetUnit(u)
	e.SetStatus(fmt.Sprintf("preset: %s", name))
	return nil
}

func kindName(k ElementKind) string {
	if k == KindShelf {
		return "shelf"
	}
	return "column"
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
