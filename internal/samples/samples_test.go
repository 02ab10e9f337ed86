package samples

import (
	"context"
	"errors"
	"testing"

	"github.com/vovakirdan/wirecross/internal/registry"
	"github.com/vovakirdan/wirecross/internal/wire"
)

func TestBuiltinSamplesRegistered(t *testing.T) {
	for _, id := range []string{"demo", "sample1", "sample2", "disjoint"} {
		if !registry.Exists(id) {
			t.Errorf("sample %q should be registered", id)
		}
	}
}

func TestBuiltinSamplesSolve(t *testing.T) {
	for _, info := range registry.List() {
		t.Run(info.ID, func(t *testing.T) {
			s, err := registry.Create(info.ID)
			if err != nil {
				t.Fatalf("Create() failed: %v", err)
			}
			want := s.Want()

			res, err := wire.Solve(context.Background(), s.Lines(), wire.SolveOptions{})
			if want.NoIntersections {
				if !errors.Is(err, wire.ErrNoIntersections) {
					t.Errorf("Solve() error = %v, expected ErrNoIntersections", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Solve() failed: %v", err)
			}
			if res.Distance != want.Distance || res.Steps != want.Steps {
				t.Errorf("Solve() = %d/%d, expected %d/%d", res.Distance, res.Steps, want.Distance, want.Steps)
			}
		})
	}
}

func TestFixtureLinesAreCopied(t *testing.T) {
	s, err := registry.Create("demo")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	lines := s.Lines()
	lines[0] = "L1"
	if s.Lines()[0] != "R8,U5,L5,D3" {
		t.Error("mutating returned lines should not change the sample")
	}
}
