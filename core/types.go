// Package core contains the fundamental types used throughout the
// plank shelving configurator.
package core

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"plank/geometry"
)

// MillimetersPerUnit converts abstract length units to millimeters.
// All unit dimensions are stored in abstract units; 1 unit = 1000 mm.
const MillimetersPerUnit = 1000

// Millimeters converts a length in abstract units to whole millimeters.
func Millimeters(units float64) int {
	return int(math.Round(units * MillimetersPerUnit))
}

// Material is the surface finish of the unit. It affects display only,
// never geometry.
type Material string

const (
	MaterialWood   Material = "wood"
	MaterialWhite  Material = "white"
	MaterialBlack  Material = "black"
	MaterialWalnut Material = "walnut"
	MaterialOak    Material = "oak"
)

// Materials returns all selectable materials in display order.
func Materials() []Material {
	return []Material{MaterialWood, MaterialWhite, MaterialBlack, MaterialWalnut, MaterialOak}
}

// ParseMaterial converts a string to a Material.
func ParseMaterial(s string) (Material, error) {
	for _, m := range Materials() {
		if s == string(m) {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown material: %s", s)
}

// ViewMode selects how the unit preview is drawn.
type ViewMode string

const (
	// ViewPerspective draws a 3D cabinet projection.
	ViewPerspective ViewMode = "perspective"
	// ViewTechnical draws flat orthographic technical views.
	ViewTechnical ViewMode = "technical"
)

// Toggle returns the other view mode.
func (v ViewMode) Toggle() ViewMode {
	if v == ViewPerspective {
		return ViewTechnical
	}
	return ViewPerspective
}

// Shelf is a horizontal board at a normalized height within the unit.
// Position is a fraction of the unit height measured from the bottom.
// Divisions >= 1; 1 means no internal subdivision.
type Shelf struct {
	ID        string  `json:"id"`
	Position  float64 `json:"position"`
	Divisions int     `json:"divisions"`
}

// Column is a vertical board at a normalized offset within the unit.
// Position is a fraction of the unit width measured from the left.
type Column struct {
	ID        string  `json:"id"`
	Position  float64 `json:"position"`
	Divisions int     `json:"divisions"`
}

// InsertDivisions is the division count given to a freshly added
// shelf or column, regardless of where it lands.
const InsertDivisions = 2

// NewShelf creates a shelf with a fresh unique ID at the given
// normalized position.
func NewShelf(position float64) Shelf {
	return Shelf{
		ID:        uuid.NewString(),
		Position:  geometry.Clamp01(position),
		Divisions: InsertDivisions,
	}
}

// NewColumn creates a column with a fresh unique ID at the given
// normalized position.
func NewColumn(position float64) Column {
	return Column{
		ID:        uuid.NewString(),
		Position:  geometry.Clamp01(position),
		Divisions: InsertDivisions,
	}
}

// Unit is the single authoritative configuration record for a shelving
// unit. All dimensions are in abstract units.
type Unit struct {
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	Depth     float64 `json:"depth"`
	Thickness float64 `json:"thickness"`

	Shelves []Shelf  `json:"shelves"`
	Columns []Column `json:"columns"`

	Material       Material `json:"material"`
	ShowWireframe  bool     `json:"showWireframe"`
	ShowDimensions bool     `json:"showDimensions"`
	ViewMode       ViewMode `json:"viewMode"`
}

// Clone creates a deep copy of the unit.
func (u *Unit) Clone() *Unit {
	if u == nil {
		return nil
	}
	clone := *u
	clone.Shelves = make([]Shelf, len(u.Shelves))
	copy(clone.Shelves, u.Shelves)
	clone.Columns = make([]Column, len(u.Columns))
	copy(clone.Columns, u.Columns)
	return &clone
}

// Shelf returns a pointer to the shelf with the given ID, or nil.
func (u *Unit) Shelf(id string) *Shelf {
	for i := range u.Shelves {
		if u.Shelves[i].ID == id {
			return &u.Shelves[i]
		}
	}
	return nil
}

// Column returns a pointer to the column with the given ID, or nil.
func (u *Unit) Column(id string) *Column {
	for i := range u.Columns {
		if u.Columns[i].ID == id {
			return &u.Columns[i]
		}
	}
	return nil
}

// RemoveShelf deletes the shelf with the given ID, preserving the
// order of the remaining shelves. Returns false if no shelf matched.
func (u *Unit) RemoveShelf(id string) bool {
	for i := range u.Shelves {
		if u.Shelves[i].ID == id {
			u.Shelves = append(u.Shelves[:i], u.Shelves[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveColumn deletes the column with the given ID, preserving the
// order of the remaining columns. Returns false if no column matched.
func (u *Unit) RemoveColumn(id string) bool {
	for i := range u.Columns {
		if u.Columns[i].ID == id {
			u.Columns = append(u.Columns[:i], u.Columns[i+1:]...)
			return true
		}
	}
	return false
}

// ShelfPositions returns the normalized positions of all shelves in
// insertion order.
func (u *Unit) ShelfPositions() []float64 {
	out := make([]float64, len(u.Shelves))
	for i, s := range u.Shelves {
		out[i] = s.Position
	}
	return out
}

// ColumnPositions returns the normalized positions of all columns in
// insertion order.
func (u *Unit) ColumnPositions() []float64 {
	out := make([]float64, len(u.Columns))
	for i, c := range u.Columns {
		out[i] = c.Position
	}
	return out
}

// Validate checks the structural invariants of the unit: positive
// dimensions, unique element IDs, normalized positions and division
// counts. It does not reject geometrically degenerate combinations
// such as an oversized thickness; slider ranges are the only guard
// for those.
func (u *Unit) Validate() error {
	if u.Width <= 0 || u.Height <= 0 || u.Depth <= 0 || u.Thickness <= 0 {
		return fmt.Errorf("dimensions must be positive: %gx%gx%g t=%g", u.Width, u.Height, u.Depth, u.Thickness)
	}
	seen := make(map[string]bool)
	for i, s := range u.Shelves {
		if seen[s.ID] {
			return fmt.Errorf("duplicate shelf ID: %s", s.ID)
		}
		seen[s.ID] = true
		if s.Position < 0 || s.Position > 1 {
			return fmt.Errorf("shelf %d position out of range: %g", i, s.Position)
		}
		if s.Divisions < 1 {
			return fmt.Errorf("shelf %d divisions must be >= 1: %d", i, s.Divisions)
		}
	}
	seen = make(map[string]bool)
	for i, c := range u.Columns {
		if seen[c.ID] {
			return fmt.Errorf("duplicate column ID: %s", c.ID)
		}
		seen[c.ID] = true
		if c.Position < 0 || c.Position > 1 {
			return fmt.Errorf("column %d position out of range: %g", i, c.Position)
		}
		if c.Divisions < 1 {
			return fmt.Errorf("column %d divisions must be >= 1: %d", i, c.Divisions)
		}
	}
	return nil
}

// Box is an axis-aligned panel volume described by its center point
// and full size along each axis.
type Box struct {
	Name   string
	Center geometry.Vec3
	Size   geometry.Vec3
}

// Min returns the minimum corner of the box.
func (b Box) Min() geometry.Vec3 {
	return b.Center.Sub(b.Size.Scale(0.5))
}

// Max returns the maximum corner of the box.
func (b Box) Max() geometry.Vec3 {
	return b.Center.Add(b.Size.Scale(0.5))
}

// Line is a straight segment in 3D space.
type Line struct {
	From, To geometry.Vec3
}

// Geometry is the fully derived, renderable shape of a unit: the
// structural panels plus the thin subdivision marker boxes.
type Geometry struct {
	Panels        []Box
	DivisionLines []Box
}
