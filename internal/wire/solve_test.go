package wire

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestSolve(t *testing.T) {
	for _, parallel := range []bool{false, true} {
		for _, tc := range scenarios {
			res, err := Solve(context.Background(), []string{tc.a, tc.b}, SolveOptions{Parallel: parallel})
			if err != nil {
				t.Fatalf("Solve(%s, parallel=%v) failed: %v", tc.name, parallel, err)
			}
			if res.Distance != tc.distance || res.Steps != tc.steps {
				t.Errorf("Solve(%s, parallel=%v) = %d/%d, expected %d/%d",
					tc.name, parallel, res.Distance, res.Steps, tc.distance, tc.steps)
			}
		}
	}
}

func TestSolveWireCount(t *testing.T) {
	tests := [][]string{
		nil,
		{"R8,U5"},
		{"R1", "U1", "L1"},
	}

	for _, lines := range tests {
		_, err := Solve(context.Background(), lines, SolveOptions{})
		if !errors.Is(err, ErrWireCount) {
			t.Errorf("Solve(%d lines) error = %v, expected ErrWireCount", len(lines), err)
		}
	}
}

func TestSolveReportsWireNumber(t *testing.T) {
	_, err := Solve(context.Background(), []string{"R8,U5", "U7,Q6"}, SolveOptions{Parallel: true})
	if !errors.Is(err, ErrInvalidDirection) {
		t.Fatalf("Solve() error = %v, expected ErrInvalidDirection", err)
	}
	if !strings.Contains(err.Error(), "wire 2") {
		t.Errorf("error %q should name wire 2", err)
	}
}

func TestSolveNoIntersections(t *testing.T) {
	_, err := Solve(context.Background(), []string{"R10", "U2,R10"}, SolveOptions{})
	if !errors.Is(err, ErrNoIntersections) {
		t.Errorf("Solve() error = %v, expected ErrNoIntersections", err)
	}
}

func TestSolveCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Solve(ctx, []string{"R8,U5,L5,D3", "U7,R6,D4,L4"}, SolveOptions{Parallel: true})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Solve() error = %v, expected context.Canceled", err)
	}
}

func TestReadLines(t *testing.T) {
	input := "R8,U5,L5,D3\n\n  U7,R6,D4,L4  \r\n\n"
	lines, err := ReadLines(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadLines() failed: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("ReadLines() returned %d lines, expected 2", len(lines))
	}
	if lines[1] != "U7,R6,D4,L4" {
		t.Errorf("second line = %q", lines[1])
	}
}
