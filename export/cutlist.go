package export

import (
	"fmt"
	"sort"
	"strings"

	"plank/core"
	"plank/layout"
)

// CutlistExporter derives the unit's panel geometry and renders it as
// a cutting list: one line per board with its length and width in
// millimeters, plus the total board area. Thin subdivision markers
// are not boards and are left out.
type CutlistExporter struct{}

// NewCutlistExporter creates a new cutting-list exporter
func NewCutlistExporter() *CutlistExporter {
	return &CutlistExporter{}
}

// Export converts the unit to a cutting list
func (e *CutlistExporter) Export(u *core.Unit) (string, error) {
	if u == nil {
		return "", fmt.Errorf("unit is nil")
	}

	g := layout.Derive(u)

	var b strings.Builder
	b.WriteString("CUTTING LIST\n")
	fmt.Fprintf(&b, "Material: %s\n", u.Material)
	fmt.Fprintf(&b, "Panel thickness: %d mm\n\n", core.Millimeters(u.Thickness))

	fmt.Fprintf(&b, "  %-3s %-14s %s\n", "#", "part", "length x width (mm)")
	totalArea := 0.0
	for i, p := range g.Panels {
		length, width := boardFaces(p)
		totalArea += length * width
		fmt.Fprintf(&b, "  %-3d %-14s %d x %d\n", i+1, p.Name, core.Millimeters(length), core.Millimeters(width))
	}

	fmt.Fprintf(&b, "\nParts: %d\n", len(g.Panels))
	fmt.Fprintf(&b, "Board area: %.2f m2\n", totalArea)

	return b.String(), nil
}

// boardFaces returns the two larger extents of a panel, largest
// first. The smallest extent is the material thickness.
func boardFaces(p core.Box) (length, width float64) {
	dims := []float64{p.Size.X, p.Size.Y, p.Size.Z}
	sort.Float64s(dims)
	return dims[2], dims[1]
}

// GetFileExtension returns the recommended file extension
func (e *CutlistExporter) GetFileExtension() string {
	return ".txt"
}

// GetFormatName returns the format name
func (e *CutlistExporter) GetFormatName() string {
	return "Cutting List"
}
