package core

import (
	"fmt"

	"github.com/google/uuid"
)

// PresetNames returns the fixed set of named starting layouts.
func PresetNames() []string {
	return []string{"basic", "bookshelf", "display", "grid"}
}

// Preset builds a fresh unit for one of the named layouts. Element IDs
// are regenerated on every call so two presets never share IDs.
func Preset(name string) (*Unit, error) {
	base := &Unit{
		Material:       MaterialWood,
		ShowDimensions: true,
		ViewMode:       ViewTechnical,
	}
	shelf := func(pos float64, div int) Shelf {
		return Shelf{ID: uuid.NewString(), Position: pos, Divisions: div}
	}
	column := func(pos float64, div int) Column {
		return Column{ID: uuid.NewString(), Position: pos, Divisions: div}
	}

	switch name {
	case "basic":
		base.Width, base.Height, base.Depth, base.Thickness = 3, 2, 1, 0.05
		base.Shelves = []Shelf{shelf(0.5, 2)}
	case "bookshelf":
		base.Width, base.Height, base.Depth, base.Thickness = 0.9, 2.1, 0.3, 0.02
		base.Shelves = []Shelf{
			shelf(0.2, 1),
			shelf(0.4, 1),
			shelf(0.6, 1),
			shelf(0.8, 1),
		}
	case "display":
		base.Width, base.Height, base.Depth, base.Thickness = 2, 1.6, 0.4, 0.03
		base.Shelves = []Shelf{shelf(1.0/3, 3), shelf(2.0/3, 3)}
		base.Columns = []Column{column(0.5, 1)}
	case "grid":
		base.Width, base.Height, base.Depth, base.Thickness = 1.8, 1.8, 0.35, 0.025
		base.Shelves = []Shelf{shelf(0.25, 1), shelf(0.5, 1), shelf(0.75, 1)}
		base.Columns = []Column{column(0.25, 1), column(0.5, 1), column(0.75, 1)}
	default:
		return nil, fmt.Errorf("unknown preset: %s", name)
	}
	return base, nil
}
