package render

import (
	"fmt"
	"math"
	"sort"

	"plank/core"
	"plank/dimension"
	"plank/geometry"
)

// Margins around the front view, in cells. The left and bottom
// margins leave room for dimension annotations.
const (
	marginLeft   = 12
	marginRight  = 3
	marginTop    = 2
	marginBottom = 5
)

// cellAspect compensates for terminal cells being roughly twice as
// tall as they are wide.
const cellAspect = 2.0

// HitKind identifies what a hit region belongs to.
type HitKind string

const (
	HitShelf  HitKind = "shelf"
	HitColumn HitKind = "column"
)

// Hit is a draggable region of the rendered frame, in canvas cells.
type Hit struct {
	ID             string
	Kind           HitKind
	X1, Y1, X2, Y2 int
}

// Contains reports whether the cell (x,y) falls inside the hit
// region, with one cell of grab slack on each side.
func (h Hit) Contains(x, y int) bool {
	return x >= h.X1-1 && x <= h.X2+1 && y >= h.Y1-1 && y <= h.Y2+1
}

// Projection maps unit coordinates (origin at the unit center) onto
// front-view canvas cells, and canvas cells back onto normalized
// element positions for drag handling.
type Projection struct {
	originX, originY int // cell of the unit's top-left front corner
	sx, sy           float64
	unitW, unitH     float64
}

func (p Projection) cellX(ux float64) int {
	return p.originX + int(math.Round((ux+p.unitW/2)*p.sx))
}

func (p Projection) cellY(uy float64) int {
	return p.originY + int(math.Round((p.unitH/2-uy)*p.sy))
}

// ShelfPosition converts a canvas row to a normalized shelf position
// (fraction of height from the bottom).
func (p Projection) ShelfPosition(row int) float64 {
	return geometry.Clamp01(1 - float64(row-p.originY)/(p.unitH*p.sy))
}

// ColumnPosition converts a canvas column to a normalized column
// position (fraction of width from the left).
func (p Projection) ColumnPosition(col int) float64 {
	return geometry.Clamp01(float64(col-p.originX) / (p.unitW * p.sx))
}

// Frame is one rendered picture of the unit plus the information the
// terminal needs to translate pointer events back into the model.
type Frame struct {
	Canvas *Canvas
	Hits   []Hit
	Front  Projection
}

// Renderer projects derived unit geometry onto a character canvas.
type Renderer struct {
	Width, Height int
}

// NewRenderer creates a renderer for the given canvas size in cells.
func NewRenderer(width, height int) *Renderer {
	return &Renderer{Width: width, Height: height}
}

// Render draws the already-derived geometry of the unit according to
// its view mode and display flags. The caller derives g from the same
// unit snapshot, typically via layout.Derive after each mutation.
func (r *Renderer) Render(u *core.Unit, g core.Geometry) (*Frame, error) {
	c, err := NewCanvas(r.Width, r.Height)
	if err != nil {
		return nil, err
	}

	availW := r.Width - marginLeft - marginRight
	availH := r.Height - marginTop - marginBottom
	if availW < 4 || availH < 4 {
		return nil, fmt.Errorf("canvas %dx%d too small for a view", r.Width, r.Height)
	}

	// Perspective needs headroom for the receding depth axis.
	effW, effH := u.Width, u.Height
	if u.ViewMode == core.ViewPerspective {
		effW += depthShearX * u.Depth
		effH += depthShearY * u.Depth
	}

	s := math.Min(float64(availW)/(cellAspect*effW), float64(availH)/effH)
	if s <= 0 {
		return nil, fmt.Errorf("unit %gx%g does not fit canvas", u.Width, u.Height)
	}

	p := Projection{
		originX: marginLeft + (availW-int(math.Round(cellAspect*s*effW)))/2,
		originY: marginTop + (availH-int(math.Round(s*effH)))/2,
		sx:      cellAspect * s,
		sy:      s,
		unitW:   u.Width,
		unitH:   u.Height,
	}

	frame := &Frame{Canvas: c, Front: p}

	if u.ViewMode == core.ViewPerspective {
		r.drawPerspective(c, u, g, p)
	} else {
		r.drawTechnical(c, u, g, p)
	}
	frame.Hits = hitRegions(u, g, p)

	if u.ShowDimensions {
		r.drawDimensions(c, u, p)
	}

	return frame, nil
}

// drawTechnical draws the flat front elevation.
func (r *Renderer) drawTechnical(c *Canvas, u *core.Unit, g core.Geometry, p Projection) {
	for _, b := range g.Panels {
		drawBoxFront(c, u, b, p, boardFill(b))
	}
	for _, b := range g.DivisionLines {
		drawBoxFront(c, u, b, p, '┆')
	}
}

// boardFill picks the fill shade for a panel in filled mode. The back
// panel reads as a lighter surface behind everything else.
func boardFill(b core.Box) rune {
	if b.Name == "back" {
		return '░'
	}
	return '▓'
}

func drawBoxFront(c *Canvas, u *core.Unit, b core.Box, p Projection, fill rune) {
	lo, hi := b.Min(), b.Max()
	x1, y1 := p.cellX(lo.X), p.cellY(hi.Y)
	x2, y2 := p.cellX(hi.X), p.cellY(lo.Y)
	if u.ShowWireframe {
		c.Rect(x1, y1, x2, y2)
		return
	}
	c.Fill(x1, y1, x2, y2, fill)
}

// Cabinet projection factors: the receding depth axis shears right
// and up by a fraction of the depth.
const (
	depthShearX = 0.5
	depthShearY = 0.3
)

// drawPerspective draws a cabinet projection, back boxes first.
func (r *Renderer) drawPerspective(c *Canvas, u *core.Unit, g core.Geometry, p Projection) {
	boxes := make([]core.Box, 0, len(g.Panels)+len(g.DivisionLines))
	boxes = append(boxes, g.Panels...)
	boxes = append(boxes, g.DivisionLines...)
	sort.SliceStable(boxes, func(i, j int) bool {
		return boxes[i].Min().Z < boxes[j].Min().Z
	})

	// Shift so the whole sheared projection stays inside the view.
	front := u.Depth / 2
	project := func(v geometry.Vec3) (int, int) {
		depth := front - v.Z // 0 at the front face, grows backward
		px := v.X + depthShearX*depth - depthShearX*u.Depth/2
		py := v.Y + depthShearY*depth - depthShearY*u.Depth/2
		return p.cellX(px), p.cellY(py)
	}

	for _, b := range boxes {
		lo, hi := b.Min(), b.Max()
		// Front face corners.
		fx1, fy1 := project(geometry.Vec3{X: lo.X, Y: hi.Y, Z: hi.Z})
		fx2, fy2 := project(geometry.Vec3{X: hi.X, Y: lo.Y, Z: hi.Z})
		// Back face corners.
		bx1, by1 := project(geometry.Vec3{X: lo.X, Y: hi.Y, Z: lo.Z})
		bx2, by2 := project(geometry.Vec3{X: hi.X, Y: lo.Y, Z: lo.Z})

		if !u.ShowWireframe {
			c.Fill(fx1, fy1, fx2, fy2, boardFill(b))
		}
		c.Rect(bx1, by1, bx2, by2)
		c.Line(bx1, by1, fx1, fy1, 0)
		c.Line(bx2, by1, fx2, fy1, 0)
		c.Line(bx1, by2, fx1, fy2, 0)
		c.Line(bx2, by2, fx2, fy2, 0)
		c.Rect(fx1, fy1, fx2, fy2)
	}
}

// hitRegions computes the draggable front-view rectangles for every
// shelf and column board.
func hitRegions(u *core.Unit, g core.Geometry, p Projection) []Hit {
	var hits []Hit
	panelAt := func(i int) core.Box {
		// Shelf and column boards follow the five base panels in
		// derivation order.
		return g.Panels[5+i]
	}
	for i, s := range u.Shelves {
		b := panelAt(i)
		lo, hi := b.Min(), b.Max()
		hits = append(hits, Hit{
			ID: s.ID, Kind: HitShelf,
			X1: p.cellX(lo.X), Y1: p.cellY(hi.Y),
			X2: p.cellX(hi.X), Y2: p.cellY(lo.Y),
		})
	}
	for i, col := range u.Columns {
		b := panelAt(len(u.Shelves) + i)
		lo, hi := b.Min(), b.Max()
		hits = append(hits, Hit{
			ID: col.ID, Kind: HitColumn,
			X1: p.cellX(lo.X), Y1: p.cellY(hi.Y),
			X2: p.cellX(hi.X), Y2: p.cellY(lo.Y),
		})
	}
	return hits
}

// drawDimensions annotates the front view with width, height and
// depth measurements.
func (r *Renderer) drawDimensions(c *Canvas, u *core.Unit, p Projection) {
	w, h, d := u.Width, u.Height, u.Depth

	// Offsets in unit lengths chosen so the annotations land a few
	// cells away from the object.
	offX := 2.5 / p.sy // below the unit
	offY := 5.0 / p.sx // left of the unit
	ext := 0.5 / p.sy
	arrow := 1.0 / p.sx

	width := dimension.Build(
		geometry.Vec3{X: -w / 2, Y: -h / 2, Z: d / 2},
		geometry.Vec3{X: w / 2, Y: -h / 2, Z: d / 2},
		offX, geometry.Vec3{Y: -1},
		ext, arrow,
	)
	height := dimension.Build(
		geometry.Vec3{X: -w / 2, Y: -h / 2, Z: d / 2},
		geometry.Vec3{X: -w / 2, Y: h / 2, Z: d / 2},
		offY, geometry.Vec3{X: -1},
		ext, arrow,
	)
	drawAnnotation(c, width, p, labelBelow)
	drawAnnotation(c, height, p, labelLeft)

	// Depth has no front-view extent; state it as text.
	c.Text(marginLeft, r.Height-1, fmt.Sprintf("depth %d mm", core.Millimeters(d)))
}

type labelSide int

const (
	labelBelow labelSide = iota
	labelLeft
)

// drawAnnotation projects one dimension annotation into the front
// view: witness lines, the dimension line with arrow glyphs, and the
// millimeter label.
func drawAnnotation(c *Canvas, a dimension.Annotation, p Projection, side labelSide) {
	for _, ext := range a.Extensions {
		c.Line(p.cellX(ext.From.X), p.cellY(ext.From.Y), p.cellX(ext.To.X), p.cellY(ext.To.Y), 0)
	}

	x1, y1 := p.cellX(a.Line.From.X), p.cellY(a.Line.From.Y)
	x2, y2 := p.cellX(a.Line.To.X), p.cellY(a.Line.To.Y)
	c.Line(x1, y1, x2, y2, 0)

	label := fmt.Sprintf("%d", a.LabelMM)
	lx, ly := p.cellX(a.LabelPosition.X), p.cellY(a.LabelPosition.Y)
	if abs(y2-y1) > abs(x2-x1) {
		// Vertical dimension line: arrows point up and down.
		if y1 > y2 {
			y1, y2 = y2, y1
		}
		c.Set(x1, y1, '^')
		c.Set(x1, y2, 'v')
	} else {
		if x1 > x2 {
			x1, x2 = x2, x1
		}
		c.Set(x1, y1, '<')
		c.Set(x2, y1, '>')
	}

	switch side {
	case labelBelow:
		c.TextCentered(lx, ly+1, label)
	case labelLeft:
		c.Text(lx-len(label)-1, ly, label)
	}
}
