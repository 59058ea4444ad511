// Package render draws the derived unit geometry as technical views
// on a character canvas; the terminal layer decides how the canvas
// reaches the screen.
package render

import (
	"errors"
	"strings"
)

// Common errors
var (
	ErrInvalidSize = errors.New("invalid canvas size")
)

// Canvas is a rune matrix with the drawing primitives the views need.
// Origin (0,0) is top-left; X grows right, Y grows down. Writes out
// of bounds are silently dropped so callers can draw annotation
// geometry that extends past the visible area.
type Canvas struct {
	cells  [][]rune
	width  int
	height int
}

// NewCanvas creates a canvas filled with spaces.
func NewCanvas(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidSize
	}
	cells := make([][]rune, height)
	for y := range cells {
		cells[y] = make([]rune, width)
		for x := range cells[y] {
			cells[y][x] = ' '
		}
	}
	return &Canvas{cells: cells, width: width, height: height}, nil
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// Set writes a rune at the given cell. Out-of-bounds writes are
// ignored.
func (c *Canvas) Set(x, y int, r rune) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.cells[y][x] = r
}

// Get reads the rune at the given cell, or space when out of bounds.
func (c *Canvas) Get(x, y int) rune {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return ' '
	}
	return c.cells[y][x]
}

// Fill writes the rune into every cell of the rectangle [x1,x2]x[y1,y2].
func (c *Canvas) Fill(x1, y1, x2, y2 int, r rune) {
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	if y2 < y1 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			c.Set(x, y, r)
		}
	}
}

// Rect draws the outline of the rectangle [x1,x2]x[y1,y2] with box
// drawing characters. Degenerate rectangles collapse to a line.
func (c *Canvas) Rect(x1, y1, x2, y2 int) {
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	if y2 < y1 {
		y1, y2 = y2, y1
	}
	if x1 == x2 {
		c.Line(x1, y1, x1, y2, '│')
		return
	}
	if y1 == y2 {
		c.Line(x1, y1, x2, y1, '─')
		return
	}
	for x := x1 + 1; x < x2; x++ {
		c.Set(x, y1, '─')
		c.Set(x, y2, '─')
	}
	for y := y1 + 1; y < y2; y++ {
		c.Set(x1, y, '│')
		c.Set(x2, y, '│')
	}
	c.Set(x1, y1, '┌')
	c.Set(x2, y1, '┐')
	c.Set(x1, y2, '└')
	c.Set(x2, y2, '┘')
}

// Line draws a straight segment from (x1,y1) to (x2,y2). When r is 0
// a character is chosen from the slope: '─', '│', '/' or '\'.
func (c *Canvas) Line(x1, y1, x2, y2 int, r rune) {
	dx := x2 - x1
	dy := y2 - y1
	adx, ady := abs(dx), abs(dy)

	if r == 0 {
		switch {
		case ady == 0:
			r = '─'
		case adx == 0:
			r = '│'
		case (dx > 0) == (dy > 0):
			r = '\\'
		default:
			r = '/'
		}
	}

	steps := max(adx, ady)
	if steps == 0 {
		c.Set(x1, y1, r)
		return
	}
	for i := 0; i <= steps; i++ {
		x := x1 + dx*i/steps
		y := y1 + dy*i/steps
		c.Set(x, y, r)
	}
}

// Text writes a string horizontally starting at (x,y).
func (c *Canvas) Text(x, y int, s string) {
	for i, r := range []rune(s) {
		c.Set(x+i, y, r)
	}
}

// TextCentered writes a string horizontally centered on (x,y).
func (c *Canvas) TextCentered(x, y int, s string) {
	c.Text(x-len([]rune(s))/2, y, s)
}

// String renders the canvas as newline-separated rows with trailing
// spaces trimmed.
func (c *Canvas) String() string {
	var b strings.Builder
	for y, row := range c.cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(strings.TrimRight(string(row), " "))
	}
	return b.String()
}

// Row returns one row of the canvas as runes. The slice is the
// canvas's own storage; callers must not modify it.
func (c *Canvas) Row(y int) []rune {
	if y < 0 || y >= c.height {
		return nil
	}
	return c.cells[y]
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
