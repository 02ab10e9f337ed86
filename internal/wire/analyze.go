package wire

import (
	"github.com/vovakirdan/wirecross/internal/core"
)

// Result holds both answers for a pair of wires.
type Result struct {
	Distance      int        // Manhattan distance from the origin to the closest intersection
	Steps         int        // Least combined first-visit steps to reach an intersection
	Closest       core.Point // Intersection achieving Distance
	Fastest       core.Point // Intersection achieving Steps
	Intersections int        // Number of distinct crossing points
}

// Intersections returns the points visited by both wires, sorted by X, then Y.
func Intersections(a, b *Wire) []core.Point {
	small, large := a, b
	if b.Len() < a.Len() {
		small, large = b, a
	}

	var out []core.Point
	for p := range small.points {
		if large.Contains(p) {
			out = append(out, p)
		}
	}
	sortPoints(out)
	return out
}

// ClosestIntersection returns the Manhattan distance from the origin to the
// nearest point both wires visit.
func ClosestIntersection(a, b *Wire) (int, error) {
	pts := Intersections(a, b)
	if len(pts) == 0 {
		return 0, ErrNoIntersections
	}

	best := pts[0].Manhattan(core.Origin)
	for _, p := range pts[1:] {
		best = core.Min(best, p.Manhattan(core.Origin))
	}
	return best, nil
}

// LeastSteps returns the smallest sum of first-visit step counts over all
// points both wires visit.
func LeastSteps(a, b *Wire) (int, error) {
	pts := Intersections(a, b)
	if len(pts) == 0 {
		return 0, ErrNoIntersections
	}

	best := -1
	for _, p := range pts {
		if n := combinedSteps(a, b, p); best < 0 || n < best {
			best = n
		}
	}
	return best, nil
}

// Analyze computes both minimums in a single pass over the intersection.
// Ties keep the first point in X, then Y order.
func Analyze(a, b *Wire) (Result, error) {
	pts := Intersections(a, b)
	if len(pts) == 0 {
		return Result{}, ErrNoIntersections
	}

	res := Result{
		Distance:      pts[0].Manhattan(core.Origin),
		Steps:         combinedSteps(a, b, pts[0]),
		Closest:       pts[0],
		Fastest:       pts[0],
		Intersections: len(pts),
	}
	for _, p := range pts[1:] {
		if d := p.Manhattan(core.Origin); d < res.Distance {
			res.Distance = d
			res.Closest = p
		}
		if n := combinedSteps(a, b, p); n < res.Steps {
			res.Steps = n
			res.Fastest = p
		}
	}
	return res, nil
}

// combinedSteps assumes p is on both wires; every visited point has a step entry.
func combinedSteps(a, b *Wire, p core.Point) int {
	sa, _ := a.Steps(p)
	sb, _ := b.Steps(p)
	return sa + sb
}
