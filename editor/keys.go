package editor

import (
	"fmt"
	"strconv"
)

// HandleRune processes a printable key press in the current mode.
func (e *Editor) HandleRune(r rune) {
	if e.mode == ModeCommand {
		e.commandBuffer = append(e.commandBuffer, r)
		return
	}

	switch r {
	case '+', '=':
		e.AdjustField(1)
	case '-', '_':
		e.AdjustField(-1)
	case 's':
		e.AddShelf()
	case 'c':
		e.AddColumn()
	case 'x', 'X':
		e.RemoveSelected()
	case 'j':
		e.SelectNext()
	case 'k':
		e.SelectPrev()
	case '[':
		e.NudgeSelected(-1)
	case ']':
		e.NudgeSelected(1)
	case 'm':
		e.CycleMaterial()
	case 'v':
		e.ToggleViewMode()
	case 'f':
		e.ToggleWireframe()
	case 'd':
		e.ToggleDimensions()
	case 'u':
		if !e.Undo() {
			e.SetStatus("nothing to undo")
		}
	case 'r':
		if !e.Redo() {
			e.SetStatus("nothing to redo")
		}
	case '1', '2', '3', '4':
		i, _ := strconv.Atoi(string(r))
		names := []string{"basic", "bookshelf", "display", "grid"}
		if err := e.LoadPreset(names[i-1]); err != nil {
			e.SetStatus(err.Error())
		}
	case ':':
		e.mode = ModeCommand
		e.commandBuffer = e.commandBuffer[:0]
	case 'q':
		e.quitRequested = true
	}
}

// HandleTab cycles the slider focus in normal mode.
func (e *Editor) HandleTab() {
	if e.mode == ModeNormal {
		e.CycleField()
	}
}

// HandleEnter executes the pending command in command mode.
func (e *Editor) HandleEnter() {
	if e.mode != ModeCommand {
		return
	}
	cmd := string(e.commandBuffer)
	e.commandBuffer = e.commandBuffer[:0]
	e.mode = ModeNormal
	if err := e.execCommand(cmd); err != nil {
		e.SetStatus(fmt.Sprintf("error: %v", err))
	}
}

// HandleEscape cancels command mode or the current selection.
func (e *Editor) HandleEscape() {
	if e.mode == ModeCommand {
		e.mode = ModeNormal
		e.commandBuffer = e.commandBuffer[:0]
		return
	}
	e.selIndex = -1
}

// HandleBackspace deletes the last command character.
func (e *Editor) HandleBackspace() {
	if e.mode == ModeCommand && len(e.commandBuffer) > 0 {
		e.commandBuffer = e.commandBuffer[:len(e.commandBuffer)-1]
	}
}
