package wire

import (
	"cmp"
	"slices"

	"github.com/vovakirdan/wirecross/internal/core"
)

// Wire is the traced path of one input line: every grid point it visits and
// the step count at which each point was first reached.
// A Wire is immutable once Trace returns it.
type Wire struct {
	points map[core.Point]struct{}
	steps  map[core.Point]int
	end    core.Point
	total  int
	bounds core.Bounds
}

// Trace walks the segments from the origin one unit step at a time.
//
// Only the first visit to a point records its step count; later visits leave
// it unchanged. The origin is never recorded, even if the wire passes back
// through it.
func Trace(segs []Segment) *Wire {
	w := &Wire{
		points: make(map[core.Point]struct{}),
		steps:  make(map[core.Point]int),
		bounds: core.NewBounds(),
	}
	w.bounds.Extend(core.Origin)

	pos := core.Origin
	steps := 0
	for _, seg := range segs {
		for i := 0; i < seg.Distance; i++ {
			steps++
			pos = pos.Step(seg.Dir)
			w.bounds.Extend(pos)
			if pos == core.Origin {
				continue
			}
			w.points[pos] = struct{}{}
			if _, seen := w.steps[pos]; !seen {
				w.steps[pos] = steps
			}
		}
	}

	w.end = pos
	w.total = steps
	return w
}

// ParseWire parses a wire description and traces it.
func ParseWire(line string) (*Wire, error) {
	segs, err := ParsePath(line)
	if err != nil {
		return nil, err
	}
	return Trace(segs), nil
}

// Contains reports whether the wire visits p.
func (w *Wire) Contains(p core.Point) bool {
	_, ok := w.points[p]
	return ok
}

// Steps returns the first-visit step count for p.
func (w *Wire) Steps(p core.Point) (int, bool) {
	n, ok := w.steps[p]
	return n, ok
}

// Len returns the number of distinct points visited.
func (w *Wire) Len() int {
	return len(w.points)
}

// End returns the final position of the wire.
func (w *Wire) End() core.Point {
	return w.end
}

// TotalSteps returns the number of unit moves the wire makes.
func (w *Wire) TotalSteps() int {
	return w.total
}

// Bounds returns the box covering the origin and every position the wire reaches.
func (w *Wire) Bounds() core.Bounds {
	return w.bounds
}

// Points returns the visited points sorted by X, then Y.
func (w *Wire) Points() []core.Point {
	out := make([]core.Point, 0, len(w.points))
	for p := range w.points {
		out = append(out, p)
	}
	sortPoints(out)
	return out
}

func sortPoints(pts []core.Point) {
	slices.SortFunc(pts, func(a, b core.Point) int {
		if c := cmp.Compare(a.X, b.X); c != 0 {
			return c
		}
		return cmp.Compare(a.Y, b.Y)
	})
}
