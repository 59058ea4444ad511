package export

import (
	"encoding/json"
	"fmt"

	"plank/core"
)

// JSONExporter exports the raw unit parameters as indented JSON. This
// is the one machine-readable format and round-trips through Load.
type JSONExporter struct{}

// NewJSONExporter creates a new JSON exporter
func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

// Export converts the unit to JSON
func (e *JSONExporter) Export(u *core.Unit) (string, error) {
	if u == nil {
		return "", fmt.Errorf("unit is nil")
	}
	data, err := json.MarshalIndent(u, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal unit: %w", err)
	}
	return string(data), nil
}

// Load parses a JSON export back into a unit.
func Load(data []byte) (*core.Unit, error) {
	var u core.Unit
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, fmt.Errorf("failed to parse unit JSON: %w", err)
	}
	if err := u.Validate(); err != nil {
		return nil, fmt.Errorf("invalid unit: %w", err)
	}
	return &u, nil
}

// GetFileExtension returns the recommended file extension
func (e *JSONExporter) GetFileExtension() string {
	return ".json"
}

// GetFormatName returns the format name
func (e *JSONExporter) GetFormatName() string {
	return "JSON"
}
