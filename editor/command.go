package editor

import (
	"fmt"
	"strings"
)

// execCommand runs one ":" command. Commands that need I/O (export,
// save, load) only record a request; the terminal loop performs the
// actual work and reports back through SetStatus.
func (e *Editor) execCommand(cmd string) error {
	fields := strings.Fields(cmd)
	if len(fields) == 0 {
		return nil
	}

	switch fields[0] {
	case "q", "quit":
		e.quitRequested = true
	case "export":
		if len(fields) < 2 {
			return fmt.Errorf("usage: export <spec|json|cutlist> [file]")
		}
		e.exportFormat = fields[1]
		if len(fields) > 2 {
			e.exportFilename = fields[2]
		}
	case "save":
		if len(fields) < 2 {
			return fmt.Errorf("usage: save <name>")
		}
		e.saveName = strings.Join(fields[1:], " ")
	case "load":
		if len(fields) < 2 {
			return fmt.Errorf("usage: load <name>")
		}
		e.loadName = strings.Join(fields[1:], " ")
	case "delete":
		if len(fields) < 2 {
			return fmt.Errorf("usage: delete <name>")
		}
		e.deleteName = strings.Join(fields[1:], " ")
	case "list":
		e.listRequested = true
	case "preset":
		if len(fields) < 2 {
			return fmt.Errorf("usage: preset <basic|bookshelf|display|grid>")
		}
		return e.LoadPreset(fields[1])
	default:
		return fmt.Errorf("unknown command: %s", fields[0])
	}
	return nil
}
