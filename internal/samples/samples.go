// Package samples registers the built-in wire pairs with known answers.
// Import it for side effects.
package samples

import "github.com/vovakirdan/wirecross/internal/registry"

// Fixture is a static Sample.
type Fixture struct {
	id    string
	title string
	lines []string
	want  registry.Want
}

func (f Fixture) ID() string { return f.id }
func (f Fixture) Title() string { return f.title }
func (f Fixture) Lines() []string { return append([]string(nil), f.lines...) }
func (f Fixture) Want() registry.Want { return f.want }

var builtin = []Fixture{
	{
		id:    "demo",
		title: "Small worked example",
		lines: []string{"R8,U5,L5,D3", "U7,R6,D4,L4"},
		want:  registry.Want{Distance: 6, Steps: 30},
	},
	{
		id:    "sample1",
		title: "First longer example",
		lines: []string{
			"R75,D30,R83,U83,L12,D49,R71,U7,L72",
			"U62,R66,U55,R34,D71,R55,D58,R83",
		},
		want: registry.Want{Distance: 159, Steps: 610},
	},
	{
		id:    "sample2",
		title: "Second longer example",
		lines: []string{
			"R98,U47,R26,D63,R33,U87,L62,D20,R33,U53,R51",
			"U98,R91,D20,R16,D67,R40,U7,R15,U6,R7",
		},
		want: registry.Want{Distance: 135, Steps: 410},
	},
	{
		id:    "disjoint",
		title: "Parallel wires that never cross",
		lines: []string{"R10", "U2,R10"},
		want:  registry.Want{NoIntersections: true},
	},
}

func init() {
	for _, f := range builtin {
		f := f
		registry.Register(f.id, func() registry.Sample { return f })
	}
}
