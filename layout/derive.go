// Package layout turns a unit configuration into concrete panel
// geometry and computes insertion positions for new elements. Both
// operations are pure: they read a snapshot of the unit and hold no
// state of their own.
package layout

import (
	"fmt"

	"plank/core"
	"plank/geometry"
)

// Derive maps the unit parameters to the full set of panel boxes and
// subdivision marker boxes, centered on the origin. Safe to call on
// every parameter change; identical inputs produce identical output.
//
// Degenerate inputs (thickness larger than half a dimension) produce
// negative-size boxes. Derive does not reject them; the caller's
// input ranges are the only guard.
func Derive(u *core.Unit) core.Geometry {
	w, h, d, t := u.Width, u.Height, u.Depth, u.Thickness

	g := core.Geometry{
		Panels: []core.Box{
			{
				Name:   "bottom",
				Center: geometry.Vec3{Y: -h/2 + t/2},
				Size:   geometry.Vec3{X: w, Y: t, Z: d},
			},
			{
				Name:   "top",
				Center: geometry.Vec3{Y: h/2 - t/2},
				Size:   geometry.Vec3{X: w, Y: t, Z: d},
			},
			{
				Name:   "left side",
				Center: geometry.Vec3{X: -(w/2 - t/2)},
				Size:   geometry.Vec3{X: t, Y: h - 2*t, Z: d},
			},
			{
				Name:   "right side",
				Center: geometry.Vec3{X: w/2 - t/2},
				Size:   geometry.Vec3{X: t, Y: h - 2*t, Z: d},
			},
			{
				Name:   "back",
				Center: geometry.Vec3{Z: -(d/2 - t/2)},
				Size:   geometry.Vec3{X: w - 2*t, Y: h - 2*t, Z: t},
			},
		},
	}

	for i, s := range u.Shelves {
		y := -h/2 + s.Position*h
		g.Panels = append(g.Panels, core.Box{
			Name:   fmt.Sprintf("shelf %d", i+1),
			Center: geometry.Vec3{Y: y},
			Size:   geometry.Vec3{X: w - 2*t, Y: t, Z: d - 2*t},
		})
		for k := 1; k < s.Divisions; k++ {
			g.DivisionLines = append(g.DivisionLines, core.Box{
				Name:   fmt.Sprintf("shelf %d divider %d", i+1, k),
				Center: geometry.Vec3{X: -w/2 + float64(k)*(w/float64(s.Divisions)), Y: y},
				Size:   geometry.Vec3{X: t, Y: t, Z: d - 2*t},
			})
		}
	}

	for i, c := range u.Columns {
		x := -w/2 + c.Position*w
		// Columns run floor to ceiling: full height, never reduced
		// by the top/bottom panel thickness.
		g.Panels = append(g.Panels, core.Box{
			Name:   fmt.Sprintf("column %d", i+1),
			Center: geometry.Vec3{X: x},
			Size:   geometry.Vec3{X: t, Y: h, Z: d - 2*t},
		})
		for k := 1; k < c.Divisions; k++ {
			g.DivisionLines = append(g.DivisionLines, core.Box{
				Name:   fmt.Sprintf("column %d divider %d", i+1, k),
				Center: geometry.Vec3{X: x, Y: -h/2 + float64(k)*(h/float64(c.Divisions))},
				Size:   geometry.Vec3{X: t, Y: t, Z: d - 2*t},
			})
		}
	}

	return g
}
