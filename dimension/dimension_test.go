package dimension

import (
	"math"
	"reflect"
	"testing"

	"plank/core"
	"plank/geometry"
)

const tol = 1e-9

func TestBuildLabelMM(t *testing.T) {
	a := Build(
		geometry.Vec3{},
		geometry.Vec3{X: 1},
		0, geometry.Vec3{Y: -1},
		0.02, 0.04,
	)
	if a.LabelMM != 1000 {
		t.Errorf("LabelMM = %d, want 1000", a.LabelMM)
	}
	want := geometry.Vec3{X: 0.5}
	if a.LabelPosition.Distance(want) > tol {
		t.Errorf("label position = %+v, want %+v", a.LabelPosition, want)
	}
}

func TestBuildOffsetsLine(t *testing.T) {
	a := Build(
		geometry.Vec3{},
		geometry.Vec3{X: 2},
		0.3, geometry.Vec3{Y: -2}, // non-unit direction must be normalized
		0.02, 0.04,
	)
	wantFrom := geometry.Vec3{Y: -0.3}
	wantTo := geometry.Vec3{X: 2, Y: -0.3}
	if a.Line.From.Distance(wantFrom) > tol || a.Line.To.Distance(wantTo) > tol {
		t.Errorf("dimension line = %+v, want %+v -> %+v", a.Line, wantFrom, wantTo)
	}
	// Offsetting does not change the measured length.
	if a.LabelMM != 2000 {
		t.Errorf("LabelMM = %d, want 2000", a.LabelMM)
	}
}

func TestBuildExtensionsPerpendicular(t *testing.T) {
	a := Build(
		geometry.Vec3{},
		geometry.Vec3{X: 1, Y: 1},
		0.2, geometry.Vec3{X: 1, Y: -1},
		0.05, 0.04,
	)
	lineDir := a.Line.To.Sub(a.Line.From).Normalize()
	for i, ext := range a.Extensions {
		extDir := ext.To.Sub(ext.From).Normalize()
		if dot := math.Abs(lineDir.Dot(extDir)); dot > 1e-9 {
			t.Errorf("extension %d not perpendicular to dimension line: dot = %g", i, dot)
		}
	}
}

func TestBuildArrowheads(t *testing.T) {
	a := Build(
		geometry.Vec3{},
		geometry.Vec3{X: 1},
		0, geometry.Vec3{Y: -1},
		0.02, 0.04,
	)
	for i, arrow := range a.Arrows {
		length := arrow.To.Sub(arrow.From).Length()
		if math.Abs(length-0.04) > tol {
			t.Errorf("arrow %d length = %g, want 0.04", i, length)
		}
	}
	// Start arrows anchor at the line start, end arrows at the end.
	for i := 0; i < 2; i++ {
		if a.Arrows[i].From.Distance(a.Line.From) > tol {
			t.Errorf("arrow %d not anchored at line start", i)
		}
		if a.Arrows[i+2].From.Distance(a.Line.To) > tol {
			t.Errorf("arrow %d not anchored at line end", i+2)
		}
	}
	// Start arrows point inward (positive X), end arrows point back.
	for i := 0; i < 2; i++ {
		if a.Arrows[i].To.X <= a.Arrows[i].From.X {
			t.Errorf("arrow %d does not point inward", i)
		}
		if a.Arrows[i+2].To.X >= a.Arrows[i+2].From.X {
			t.Errorf("arrow %d does not point inward", i+2)
		}
	}
}

func TestBuildDegenerateDirectionFallback(t *testing.T) {
	// A line along Z has no XY projection; the witness offset must
	// fall back to (1,0,0) instead of collapsing to zero.
	a := Build(
		geometry.Vec3{},
		geometry.Vec3{Z: 0.6},
		0, geometry.Vec3{X: 1},
		0.05, 0.04,
	)
	ext := a.Extensions[0]
	if math.Abs(ext.From.X-0.05) > tol {
		t.Errorf("witness offset not on fallback axis: %+v", ext.From)
	}
	if a.LabelMM != 600 {
		t.Errorf("LabelMM = %d, want 600", a.LabelMM)
	}
}

func TestBuildDeterministic(t *testing.T) {
	build := func() Annotation {
		return Build(
			geometry.Vec3{X: -1, Y: -0.5},
			geometry.Vec3{X: 1, Y: -0.5},
			0.25, geometry.Vec3{Y: -1},
			0.03, 0.05,
		)
	}
	if !reflect.DeepEqual(build(), build()) {
		t.Error("identical inputs produced different annotations")
	}
}

func TestBuildUsesCoreLines(t *testing.T) {
	a := Build(geometry.Vec3{}, geometry.Vec3{X: 1}, 0.1, geometry.Vec3{Y: 1}, 0.02, 0.04)
	var _ core.Line = a.Line
	if len(a.Arrows) != 4 || len(a.Extensions) != 2 {
		t.Error("unexpected annotation shape")
	}
}
