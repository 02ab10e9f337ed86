// Package core provides the grid primitives shared by the wire tracer,
// the analyzer and the renderer. It has no dependencies on the CLI, storage
// or config layers so that wire logic stays pure and testable.
package core

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Point is a position on the infinite integer grid.
// X increases to the right, Y increases upward.
type Point struct {
	X, Y int
}

// Origin is the shared starting point of every wire.
var Origin = Point{}

// P is a convenience constructor for Point.
func P(x, y int) Point {
	return Point{X: x, Y: y}
}

// String returns a string representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns a new Point offset by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Step returns the point one grid unit away in direction d.
func (p Point) Step(d Dir) Point {
	dx, dy := d.Delta()
	return p.Add(dx, dy)
}

// Manhattan returns the Manhattan distance to another point.
func (p Point) Manhattan(other Point) int {
	return Abs(p.X-other.X) + Abs(p.Y-other.Y)
}

// Abs returns the absolute value of a signed integer.
func Abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two values.
func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two values.
func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Bounds is the smallest axis-aligned box containing a set of points.
// Both corners are inclusive.
type Bounds struct {
	Min, Max Point
	empty    bool
}

// NewBounds returns an empty bounding box.
func NewBounds() Bounds {
	return Bounds{empty: true}
}

// Extend grows the box to include p.
func (b *Bounds) Extend(p Point) {
	if b.empty {
		b.Min, b.Max = p, p
		b.empty = false
		return
	}
	b.Min.X = Min(b.Min.X, p.X)
	b.Min.Y = Min(b.Min.Y, p.Y)
	b.Max.X = Max(b.Max.X, p.X)
	b.Max.Y = Max(b.Max.Y, p.Y)
}

// Empty reports whether no point has been added.
func (b Bounds) Empty() bool {
	return b.empty
}

// Width returns the number of columns covered by the box.
func (b Bounds) Width() int {
	if b.empty {
		return 0
	}
	return b.Max.X - b.Min.X + 1
}

// Height returns the number of rows covered by the box.
func (b Bounds) Height() int {
	if b.empty {
		return 0
	}
	return b.Max.Y - b.Min.Y + 1
}

// Contains returns true if p lies inside the box.
func (b Bounds) Contains(p Point) bool {
	if b.empty {
		return false
	}
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}
