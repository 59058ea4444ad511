// Package editor owns the unit state and turns UI events into state
// mutations. It holds no rendering or terminal code: the terminal
// layer feeds it key and pointer events and asks it for the current
// unit and derived geometry after each one.
package editor

import (
	"plank/core"
	"plank/drag"
	"plank/layout"
)

// Mode is the editor's input mode.
type Mode int

const (
	// ModeNormal dispatches single-key commands.
	ModeNormal Mode = iota
	// ModeCommand collects a ":" command line.
	ModeCommand
)

// Editor is the interactive controller for one unit configuration.
type Editor struct {
	unit     *core.Unit
	geometry core.Geometry
	session  drag.Session
	history  *History

	mode  Mode
	field Field

	// Element selection: kind plus index into the unit's shelf or
	// column list. selIndex is -1 when nothing is selected.
	selKind  ElementKind
	selIndex int

	commandBuffer []rune
	statusMsg     string

	// Requests for the terminal loop to act on.
	quitRequested  bool
	exportFormat   string
	exportFilename string
	saveName       string
	loadName       string
	deleteName     string
	listRequested  bool
}

// ElementKind distinguishes shelves from columns in selections.
type ElementKind int

const (
	KindShelf ElementKind = iota
	KindColumn
)

// New creates an editor seeded with the given unit. The editor takes
// ownership of the unit.
func New(u *core.Unit) *Editor {
	e := &Editor{
		unit:     u,
		session:  drag.NewSession(),
		history:  NewHistory(100),
		selIndex: -1,
	}
	e.history.Save(u)
	e.recompute()
	return e
}

// Unit returns the current unit. Callers must treat it as read-only;
// all mutation goes through editor operations.
func (e *Editor) Unit() *core.Unit {
	return e.unit
}

// Geometry returns the panel geometry derived from the current unit.
func (e *Editor) Geometry() core.Geometry {
	return e.geometry
}

// Mode returns the current input mode.
func (e *Editor) Mode() Mode {
	return e.mode
}

// CommandLine returns the in-progress ":" command.
func (e *Editor) CommandLine() string {
	return string(e.commandBuffer)
}

// Status returns and clears the last status message.
func (e *Editor) Status() string {
	msg := e.statusMsg
	e.statusMsg = ""
	return msg
}

// SetStatus sets the status message shown on the next repaint.
func (e *Editor) SetStatus(msg string) {
	e.statusMsg = msg
}

// SetUnit replaces the whole unit, e.g. after loading a design.
func (e *Editor) SetUnit(u *core.Unit) {
	e.unit = u
	e.selIndex = -1
	e.session.End()
	e.history.Save(u)
	e.recompute()
}

// recompute re-derives the renderable geometry. Called after every
// mutation so the terminal can hand fresh geometry to the renderer.
func (e *Editor) recompute() {
	e.geometry = layout.Derive(e.unit)
}

// commit records the current unit in the undo history and re-derives
// geometry.
func (e *Editor) commit() {
	e.history.Save(e.unit)
	e.recompute()
}

// Undo reverts to the previous recorded unit state.
func (e *Editor) Undo() bool {
	u := e.history.Undo()
	if u == nil {
		return false
	}
	e.unit = u
	e.selIndex = -1
	e.recompute()
	return true
}

// Redo re-applies an undone state.
func (e *Editor) Redo() bool {
	u := e.history.Redo()
	if u == nil {
		return false
	}
	e.unit = u
	e.selIndex = -1
	e.recompute()
	return true
}

// IsQuitRequested reports whether a quit was requested.
func (e *Editor) IsQuitRequested() bool {
	return e.quitRequested
}

// GetExportRequest returns and clears any pending export request.
func (e *Editor) GetExportRequest() (format, filename string) {
	format, filename = e.exportFormat, e.exportFilename
	e.exportFormat, e.exportFilename = "", ""
	return format, filename
}

// GetSaveRequest returns and clears any pending save-design request.
func (e *Editor) GetSaveRequest() string {
	name := e.saveName
	e.saveName = ""
	return name
}

// GetLoadRequest returns and clears any pending load-design request.
func (e *Editor) GetLoadRequest() string {
	name := e.loadName
	e.loadName = ""
	return name
}

// GetDeleteRequest returns and clears any pending delete request.
func (e *Editor) GetDeleteRequest() string {
	name := e.deleteName
	e.deleteName = ""
	return name
}

// GetListRequest returns and clears any pending list request.
func (e *Editor) GetListRequest() bool {
	req := e.listRequested
	e.listRequested = false
	return req
}
