// Package dimension builds technical-drawing dimension annotations:
// a dimension line offset from the measured edge, witness (extension)
// lines back to the anchors, arrowheads, and a millimeter label.
package dimension

import (
	"math"

	"plank/core"
	"plank/geometry"
)

// arrowAngle is the spread of each arrowhead stroke from the
// dimension line, in radians.
const arrowAngle = 30 * math.Pi / 180

// Annotation is the full drawable geometry for one dimension.
type Annotation struct {
	// Line is the dimension line itself, drawn parallel to the
	// measured edge at the requested offset.
	Line core.Line
	// Extensions connect the original anchor points to the offset
	// line endpoints.
	Extensions [2]core.Line
	// Arrows holds two strokes per endpoint, pointing inward.
	Arrows [4]core.Line
	// LabelPosition is the midpoint of the dimension line.
	LabelPosition geometry.Vec3
	// LabelMM is the measured length in whole millimeters.
	LabelMM int
}

// Build constructs the annotation for the edge from start to end.
// offsetDir (normalized internally) pushes the dimension line away
// from the measured edge by offset; extOffset displaces the witness
// lines perpendicular to the line so they read as open lines rather
// than touching the object edge; arrowSize scales the arrowhead
// strokes. Pure and deterministic.
func Build(start, end geometry.Vec3, offset float64, offsetDir geometry.Vec3, extOffset, arrowSize float64) Annotation {
	push := offsetDir.Normalize().Scale(offset)
	sp := start.Add(push)
	ep := end.Add(push)

	dir := ep.Sub(sp).Normalize()
	perp := geometry.PerpendicularXY(dir)
	witness := perp.Scale(extOffset)

	a := Annotation{
		Line: core.Line{From: sp, To: ep},
		Extensions: [2]core.Line{
			{From: start.Add(witness), To: sp.Add(witness)},
			{From: end.Add(witness), To: ep.Add(witness)},
		},
		LabelPosition: sp.Mid(ep),
		LabelMM:       core.Millimeters(sp.Distance(ep)),
	}

	in := dir
	out := dir.Scale(-1)
	a.Arrows = [4]core.Line{
		{From: sp, To: sp.Add(geometry.RotateInPlane(in, perp, arrowAngle).Scale(arrowSize))},
		{From: sp, To: sp.Add(geometry.RotateInPlane(in, perp, -arrowAngle).Scale(arrowSize))},
		{From: ep, To: ep.Add(geometry.RotateInPlane(out, perp, arrowAngle).Scale(arrowSize))},
		{From: ep, To: ep.Add(geometry.RotateInPlane(out, perp, -arrowAngle).Scale(arrowSize))},
	}

	return a
}
