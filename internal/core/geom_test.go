package core

import "testing"

func TestDirDelta(t *testing.T) {
	tests := []struct {
		dir    Dir
		dx, dy int
	}{
		{DirUp, 0, 1},
		{DirDown, 0, -1},
		{DirLeft, -1, 0},
		{DirRight, 1, 0},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			dx, dy := tc.dir.Delta()
			if dx != tc.dx || dy != tc.dy {
				t.Errorf("Delta() = (%d, %d), expected (%d, %d)", dx, dy, tc.dx, tc.dy)
			}
		})
	}
}

func TestDirLetter(t *testing.T) {
	want := map[Dir]byte{DirUp: 'U', DirRight: 'R', DirDown: 'D', DirLeft: 'L'}
	for d, l := range want {
		if d.Letter() != l {
			t.Errorf("%v.Letter() = %q, expected %q", d, d.Letter(), l)
		}
	}
	if Dir(9).Valid() {
		t.Error("Dir(9) should not be valid")
	}
}

func TestPointStep(t *testing.T) {
	p := P(3, -2)
	if got := p.Step(DirUp); got != P(3, -1) {
		t.Errorf("Step(Up) = %v, expected (3,-1)", got)
	}
	if got := p.Step(DirLeft); got != P(2, -2) {
		t.Errorf("Step(Left) = %v, expected (2,-2)", got)
	}
}

func TestPointManhattan(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Point
		expected int
	}{
		{"same point", P(1, 1), P(1, 1), 0},
		{"from origin", P(3, 3), Origin, 6},
		{"negative quadrant", P(-4, -7), Origin, 11},
		{"mixed signs", P(-2, 5), P(3, -1), 11},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Manhattan(tc.b); got != tc.expected {
				t.Errorf("Manhattan() = %d, expected %d", got, tc.expected)
			}
			// Also test symmetry
			if got := tc.b.Manhattan(tc.a); got != tc.expected {
				t.Errorf("Manhattan() (reversed) = %d, expected %d", got, tc.expected)
			}
		})
	}
}

func TestPointAsMapKey(t *testing.T) {
	seen := map[Point]int{P(1, 2): 7}
	if seen[P(1, 2)] != 7 {
		t.Error("structurally equal points should hash to the same key")
	}
	if _, ok := seen[P(2, 1)]; ok {
		t.Error("(2,1) should not match (1,2)")
	}
}

func TestBounds(t *testing.T) {
	b := NewBounds()
	if !b.Empty() || b.Width() != 0 || b.Height() != 0 {
		t.Fatal("new bounds should be empty")
	}

	b.Extend(P(2, 3))
	b.Extend(P(-1, 0))
	b.Extend(P(0, 5))

	if b.Min != P(-1, 0) || b.Max != P(2, 5) {
		t.Errorf("bounds = %v..%v, expected (-1,0)..(2,5)", b.Min, b.Max)
	}
	if b.Width() != 4 || b.Height() != 6 {
		t.Errorf("size = %dx%d, expected 4x6", b.Width(), b.Height())
	}
	if !b.Contains(P(0, 0)) || b.Contains(P(3, 0)) {
		t.Error("Contains() gave wrong answer")
	}
}

func TestAbs(t *testing.T) {
	if Abs(5) != 5 {
		t.Error("Abs(5) should be 5")
	}
	if Abs(-5) != 5 {
		t.Error("Abs(-5) should be 5")
	}
	if Abs(int64(0)) != 0 {
		t.Error("Abs(0) should be 0")
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}
