package export

import (
	"strings"
	"testing"
	"time"

	"plank/core"
)

func specUnit() *core.Unit {
	return &core.Unit{
		Width: 2.4, Height: 1.8, Depth: 0.4, Thickness: 0.018,
		Shelves: []core.Shelf{
			{ID: "s1", Position: 0.5, Divisions: 2},
			{ID: "s2", Position: 0.75, Divisions: 1},
		},
		Columns:  []core.Column{{ID: "c1", Position: 0.33, Divisions: 3}},
		Material: core.MaterialWalnut,
		ViewMode: core.ViewTechnical,
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"spec", FormatSpec, false},
		{"txt", FormatSpec, false},
		{"json", FormatJSON, false},
		{"cutlist", FormatCutlist, false},
		{"cuts", FormatCutlist, false},
		{"svg", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNewExporterCoversAllFormats(t *testing.T) {
	for _, f := range GetAvailableFormats() {
		e, err := NewExporter(f)
		if err != nil {
			t.Errorf("NewExporter(%s) failed: %v", f, err)
			continue
		}
		if e.GetFileExtension() == "" || e.GetFormatName() == "" {
			t.Errorf("exporter %s has empty metadata", f)
		}
	}
	if _, err := NewExporter("stl"); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestSpecExport(t *testing.T) {
	e := NewSpecExporter()
	e.now = func() time.Time {
		return time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	}

	out, err := e.Export(specUnit())
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	for _, want := range []string{
		"Generated: 2026-03-14 09:30",
		"Width:      2400 mm",
		"Height:     1800 mm",
		"Depth:       400 mm",
		"Thickness:    18 mm",
		"Material: walnut",
		"Shelves (2)",
		"1. position 50% from bottom, 2 compartments",
		"2. position 75% from bottom, undivided",
		"Columns (1)",
		"1. position 33% from left, 3 compartments",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("spec output missing %q\n%s", want, out)
		}
	}
}

func TestSpecExportNilUnit(t *testing.T) {
	if _, err := NewSpecExporter().Export(nil); err == nil {
		t.Error("expected error for nil unit")
	}
}

func TestJSONExportRoundTrip(t *testing.T) {
	u := specUnit()
	out, err := NewJSONExporter().Export(u)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	back, err := Load([]byte(out))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if back.Width != u.Width || back.Material != u.Material {
		t.Errorf("round trip changed unit: %+v", back)
	}
	if len(back.Shelves) != 2 || back.Shelves[0].ID != "s1" {
		t.Errorf("round trip lost shelves: %+v", back.Shelves)
	}
}

func TestLoadRejectsInvalidUnit(t *testing.T) {
	if _, err := Load([]byte(`{"width": -1}`)); err == nil {
		t.Error("expected error for invalid unit")
	}
	if _, err := Load([]byte(`not json`)); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestCutlistExport(t *testing.T) {
	out, err := NewCutlistExporter().Export(specUnit())
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	for _, want := range []string{
		"CUTTING LIST",
		"Material: walnut",
		"Panel thickness: 18 mm",
		"bottom",
		"2400 x 400", // bottom panel: width x depth
		"shelf 1",
		"column 1",
		"Parts: 8", // 5 base panels + 2 shelves + 1 column
	} {
		if !strings.Contains(out, want) {
			t.Errorf("cutlist output missing %q\n%s", want, out)
		}
	}
}
