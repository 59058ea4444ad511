// Package export provides functionality to export a unit design to
// various text-based formats
package export

import (
	"fmt"

	"plank/core"
)

// Format represents an export format
type Format string

const (
	// FormatSpec exports a human-readable design specification
	FormatSpec Format = "spec"
	// FormatJSON exports the raw unit parameters as JSON
	FormatJSON Format = "json"
	// FormatCutlist exports a per-panel cutting list
	FormatCutlist Format = "cutlist"
)

// Exporter interface for different export formats
type Exporter interface {
	// Export converts a unit to the target format
	Export(u *core.Unit) (string, error)
	// GetFileExtension returns the recommended file extension for this format
	GetFileExtension() string
	// GetFormatName returns a human-readable name for this format
	GetFormatName() string
}

// NewExporter creates an exporter for the specified format
func NewExporter(format Format) (Exporter, error) {
	switch format {
	case FormatSpec:
		return NewSpecExporter(), nil
	case FormatJSON:
		return NewJSONExporter(), nil
	case FormatCutlist:
		return NewCutlistExporter(), nil
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
}

// ParseFormat converts a string to a Format
func ParseFormat(s string) (Format, error) {
	switch s {
	case "spec", "text", "txt":
		return FormatSpec, nil
	case "json":
		return FormatJSON, nil
	case "cutlist", "cuts":
		return FormatCutlist, nil
	default:
		return "", fmt.Errorf("unknown format: %s", s)
	}
}

// GetAvailableFormats returns a list of all available export formats
func GetAvailableFormats() []Format {
	return []Format{FormatSpec, FormatJSON, FormatCutlist}
}
