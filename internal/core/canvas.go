package core

import (
	"strings"
)

// Canvas is a 2D character buffer addressed in grid coordinates.
// It covers a fixed Bounds; row 0 of the output is the box's top edge
// (largest Y), so plots read with Up pointing up.
type Canvas struct {
	bounds Bounds
	cells  [][]rune
}

// NewCanvas creates a canvas covering b, filled with the given rune.
func NewCanvas(b Bounds, fill rune) *Canvas {
	c := &Canvas{bounds: b}
	c.cells = make([][]rune, b.Height())
	for row := range c.cells {
		c.cells[row] = make([]rune, b.Width())
	}
	c.Fill(fill)
	return c
}

// Width returns the canvas width in characters.
func (c *Canvas) Width() int {
	return c.bounds.Width()
}

// Height returns the canvas height in characters.
func (c *Canvas) Height() int {
	return c.bounds.Height()
}

// Fill fills the entire canvas with the given rune.
func (c *Canvas) Fill(r rune) {
	for row := range c.cells {
		for col := range c.cells[row] {
			c.cells[row][col] = r
		}
	}
}

// cell maps a grid point to buffer indices.
func (c *Canvas) cell(p Point) (row, col int, ok bool) {
	if !c.bounds.Contains(p) {
		return 0, 0, false
	}
	return c.bounds.Max.Y - p.Y, p.X - c.bounds.Min.X, true
}

// Set places a rune at the given point.
// Points outside the canvas are silently ignored.
func (c *Canvas) Set(p Point, r rune) {
	row, col, ok := c.cell(p)
	if !ok {
		return
	}
	c.cells[row][col] = r
}

// Get returns the rune at the given point.
// Returns space for points outside the canvas.
func (c *Canvas) Get(p Point) rune {
	row, col, ok := c.cell(p)
	if !ok {
		return ' '
	}
	return c.cells[row][col]
}

// Rows returns each canvas row as a string, top row first.
func (c *Canvas) Rows() []string {
	rows := make([]string, len(c.cells))
	for i, r := range c.cells {
		rows[i] = string(r)
	}
	return rows
}

// String converts the canvas to a newline-joined string.
func (c *Canvas) String() string {
	return strings.Join(c.Rows(), "\n")
}
