package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wirecross/internal/registry"
	"github.com/vovakirdan/wirecross/internal/wire"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify every built-in sample",
	Long: `Solve each built-in sample and compare against its known answer.
Exits non-zero if any sample disagrees.`,
	Run: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) {
	failed := 0
	for _, info := range registry.List() {
		sample, err := registry.Create(info.ID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		got, ok := checkSample(cmd.Context(), sample, cfg.Parallel)
		status := style(okStyle, "ok  ")
		if !ok {
			status = style(failStyle, "FAIL")
			failed++
		}
		fmt.Printf("  %s  %-10s  %s\n", status, info.ID, got)
	}

	fmt.Println()
	if failed > 0 {
		fmt.Printf("%d sample(s) failed.\n", failed)
		os.Exit(1)
	}
	fmt.Println("All samples passed.")
}

// checkSample solves s and returns a description of the outcome and whether it matched.
func checkSample(ctx context.Context, s registry.Sample, parallel bool) (string, bool) {
	want := s.Want()
	res, err := wire.Solve(ctx, s.Lines(), wire.SolveOptions{Parallel: parallel})

	if want.NoIntersections {
		if errors.Is(err, wire.ErrNoIntersections) {
			return "no intersections", true
		}
		if err != nil {
			return fmt.Sprintf("error: %v (want no intersections)", err), false
		}
		return fmt.Sprintf("%d/%d (want no intersections)", res.Distance, res.Steps), false
	}

	if err != nil {
		return fmt.Sprintf("error: %v (want %d/%d)", err, want.Distance, want.Steps), false
	}
	if res.Distance != want.Distance || res.Steps != want.Steps {
		return fmt.Sprintf("%d/%d (want %d/%d)", res.Distance, res.Steps, want.Distance, want.Steps), false
	}
	return fmt.Sprintf("%d/%d", res.Distance, res.Steps), true
}
