package export

import (
	"fmt"
	"strings"
	"time"

	"plank/core"
)

// SpecExporter renders a human-readable design specification: overall
// dimensions in millimeters, material, and one line per shelf and
// column with its percentage position and division count. The output
// is documentation for the user, not a re-importable save format.
type SpecExporter struct {
	now func() time.Time
}

// NewSpecExporter creates a new specification exporter
func NewSpecExporter() *SpecExporter {
	return &SpecExporter{now: time.Now}
}

// Export converts the unit to specification text
func (e *SpecExporter) Export(u *core.Unit) (string, error) {
	if u == nil {
		return "", fmt.Errorf("unit is nil")
	}

	var b strings.Builder
	b.WriteString("SHELVING UNIT - DESIGN SPECIFICATION\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", e.now().Format("2006-01-02 15:04"))

	b.WriteString("Dimensions\n")
	fmt.Fprintf(&b, "  Width:     %5d mm\n", core.Millimeters(u.Width))
	fmt.Fprintf(&b, "  Height:    %5d mm\n", core.Millimeters(u.Height))
	fmt.Fprintf(&b, "  Depth:     %5d mm\n", core.Millimeters(u.Depth))
	fmt.Fprintf(&b, "  Thickness: %5d mm\n\n", core.Millimeters(u.Thickness))

	fmt.Fprintf(&b, "Material: %s\n\n", u.Material)

	fmt.Fprintf(&b, "Shelves (%d)\n", len(u.Shelves))
	for i, s := range u.Shelves {
		fmt.Fprintf(&b, "  %d. position %.0f%% from bottom, %s\n", i+1, s.Position*100, compartments(s.Divisions))
	}
	fmt.Fprintf(&b, "\nColumns (%d)\n", len(u.Columns))
	for i, c := range u.Columns {
		fmt.Fprintf(&b, "  %d. position %.0f%% from left, %s\n", i+1, c.Position*100, compartments(c.Divisions))
	}

	return b.String(), nil
}

func compartments(divisions int) string {
	if divisions == 1 {
		return "undivided"
	}
	return fmt.Sprintf("%d compartments", divisions)
}

// GetFileExtension returns the recommended file extension
func (e *SpecExporter) GetFileExtension() string {
	return ".txt"
}

// GetFormatName returns the format name
func (e *SpecExporter) GetFormatName() string {
	return "Design Specification"
}
