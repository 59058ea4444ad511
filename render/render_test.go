package render

import (
	"math"
	"strings"
	"testing"

	"plank/core"
	"plank/layout"
)

func TestNewCanvasValidation(t *testing.T) {
	if _, err := NewCanvas(0, 10); err != ErrInvalidSize {
		t.Errorf("expected ErrInvalidSize, got %v", err)
	}
	if _, err := NewCanvas(10, -1); err != ErrInvalidSize {
		t.Errorf("expected ErrInvalidSize, got %v", err)
	}
}

func TestCanvasSetGetAndBounds(t *testing.T) {
	c, err := NewCanvas(4, 3)
	if err != nil {
		t.Fatalf("NewCanvas failed: %v", err)
	}
	c.Set(1, 1, 'x')
	if got := c.Get(1, 1); got != 'x' {
		t.Errorf("Get(1,1) = %q, want 'x'", got)
	}
	// Out-of-bounds writes are dropped, reads return space.
	c.Set(-1, 0, 'y')
	c.Set(0, 99, 'y')
	if got := c.Get(-1, 0); got != ' ' {
		t.Errorf("out-of-bounds Get = %q, want space", got)
	}
}

func TestCanvasRect(t *testing.T) {
	c, _ := NewCanvas(6, 4)
	c.Rect(0, 0, 5, 3)
	want := "┌────┐\n│    │\n│    │\n└────┘"
	if got := c.String(); got != want {
		t.Errorf("Rect output:\n%s\nwant:\n%s", got, want)
	}
}

func TestCanvasLineCharSelection(t *testing.T) {
	c, _ := NewCanvas(5, 5)
	c.Line(0, 2, 4, 2, 0)
	if c.Get(2, 2) != '─' {
		t.Errorf("horizontal line char = %q", c.Get(2, 2))
	}
	c, _ = NewCanvas(5, 5)
	c.Line(2, 0, 2, 4, 0)
	if c.Get(2, 2) != '│' {
		t.Errorf("vertical line char = %q", c.Get(2, 2))
	}
	c, _ = NewCanvas(5, 5)
	c.Line(0, 0, 4, 4, 0)
	if c.Get(2, 2) != '\\' {
		t.Errorf("diagonal line char = %q", c.Get(2, 2))
	}
}

func TestProjectionRoundTrip(t *testing.T) {
	p := Projection{originX: 10, originY: 3, sx: 20, sy: 12, unitW: 2, unitH: 1.5}

	// A shelf at position 0.5 sits at unit y 0; its row must map
	// back to roughly 0.5.
	row := p.cellY(0)
	if got := p.ShelfPosition(row); math.Abs(got-0.5) > 0.06 {
		t.Errorf("ShelfPosition(cellY(0)) = %g, want ~0.5", got)
	}

	col := p.cellX(0)
	if got := p.ColumnPosition(col); math.Abs(got-0.5) > 0.06 {
		t.Errorf("ColumnPosition(cellX(0)) = %g, want ~0.5", got)
	}

	// Rows above the unit clamp to 1, below to 0.
	if got := p.ShelfPosition(p.originY - 10); got != 1 {
		t.Errorf("position above unit = %g, want 1", got)
	}
	if got := p.ShelfPosition(p.originY + 1000); got != 0 {
		t.Errorf("position below unit = %g, want 0", got)
	}
}

func renderUnit() *core.Unit {
	return &core.Unit{
		Width: 2, Height: 1.5, Depth: 0.5, Thickness: 0.03,
		Shelves:        []core.Shelf{{ID: "s1", Position: 0.5, Divisions: 2}},
		Columns:        []core.Column{{ID: "c1", Position: 0.3, Divisions: 1}},
		Material:       core.MaterialOak,
		ShowDimensions: true,
		ViewMode:       core.ViewTechnical,
	}
}

func TestRenderTechnicalFrame(t *testing.T) {
	r := NewRenderer(100, 36)
	frame, err := r.Render(renderUnit(), layout.Derive(renderUnit()))
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	out := frame.Canvas.String()
	if !strings.Contains(out, "▓") {
		t.Error("filled technical view has no board shading")
	}
	// Dimension labels: 2000 wide, 1500 tall, depth text.
	for _, want := range []string{"2000", "1500", "depth 500 mm"} {
		if !strings.Contains(out, want) {
			t.Errorf("render output missing %q", want)
		}
	}
}

func TestRenderHitRegions(t *testing.T) {
	r := NewRenderer(100, 36)
	frame, err := r.Render(renderUnit(), layout.Derive(renderUnit()))
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if len(frame.Hits) != 2 {
		t.Fatalf("expected 2 hit regions, got %d", len(frame.Hits))
	}

	var shelf, column *Hit
	for i := range frame.Hits {
		switch frame.Hits[i].Kind {
		case HitShelf:
			shelf = &frame.Hits[i]
		case HitColumn:
			column = &frame.Hits[i]
		}
	}
	if shelf == nil || column == nil {
		t.Fatalf("missing shelf or column hit: %+v", frame.Hits)
	}
	if shelf.ID != "s1" || column.ID != "c1" {
		t.Errorf("hit IDs wrong: %+v", frame.Hits)
	}

	// The shelf's row should map back near its own position.
	midY := (shelf.Y1 + shelf.Y2) / 2
	if got := frame.Front.ShelfPosition(midY); math.Abs(got-0.5) > 0.08 {
		t.Errorf("shelf hit maps to position %g, want ~0.5", got)
	}
	midX := (column.X1 + column.X2) / 2
	if got := frame.Front.ColumnPosition(midX); math.Abs(got-0.3) > 0.08 {
		t.Errorf("column hit maps to position %g, want ~0.3", got)
	}

	if !shelf.Contains(shelf.X1, shelf.Y1-1) {
		t.Error("hit slack should extend one cell beyond the board")
	}
}

func TestRenderWireframeUsesOutlines(t *testing.T) {
	u := renderUnit()
	u.ShowWireframe = true
	r := NewRenderer(100, 36)
	frame, err := r.Render(u, layout.Derive(u))
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	out := frame.Canvas.String()
	if strings.Contains(out, "▓") {
		t.Error("wireframe view should not contain filled shading")
	}
	if !strings.Contains(out, "┌") {
		t.Error("wireframe view should contain box outlines")
	}
}

func TestRenderPerspective(t *testing.T) {
	u := renderUnit()
	u.ViewMode = core.ViewPerspective
	u.ShowDimensions = false
	r := NewRenderer(100, 36)
	frame, err := r.Render(u, layout.Derive(u))
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	out := frame.Canvas.String()
	// The receding edges show up as diagonals.
	if !strings.Contains(out, "\\") && !strings.Contains(out, "/") {
		t.Error("perspective view has no receding edges")
	}
}

func TestRenderTooSmall(t *testing.T) {
	r := NewRenderer(10, 4)
	u := renderUnit()
	if _, err := r.Render(u, layout.Derive(u)); err == nil {
		t.Error("expected error for tiny canvas")
	}
}

func TestMaterialColors(t *testing.T) {
	for _, m := range core.Materials() {
		c := MaterialColor(m)
		if !c.IsValid() {
			t.Errorf("material %s has invalid color", m)
		}
		w := WireframeColor(m)
		if !w.IsValid() {
			t.Errorf("material %s has invalid wireframe color", m)
		}
		// Wireframe variant must be lighter than the base.
		lBase, _, _ := c.Lab()
		lWire, _, _ := w.Lab()
		if lWire <= lBase {
			t.Errorf("material %s wireframe not lighter: %g <= %g", m, lWire, lBase)
		}
	}
	if MaterialColor(core.Material("granite")) != MaterialColor(core.MaterialWood) {
		t.Error("unknown material should fall back to wood")
	}
}
