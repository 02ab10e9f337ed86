package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wirecross/internal/storage"
	"github.com/vovakirdan/wirecross/internal/wire"
)

// exitNoIntersections is the exit status when the wires never cross.
const exitNoIntersections = 2

var (
	flagSample    string
	flagNoHistory bool
)

var solveCmd = &cobra.Command{
	Use:   "solve [file]",
	Short: "Find the closest crossing and the fewest combined steps",
	Long: `Read two wires (one per line) and report the Manhattan distance from the
origin to the closest crossing, and the least combined number of steps both
wires take to reach a crossing.

With no file, the configured input (default: input.txt) is read.
Use "-" to read from stdin.

Exit status is 2 when the wires never cross.

Examples:
  wirecross solve
  wirecross solve wires.txt
  wirecross solve --sample sample1
  echo -e "R8,U5,L5,D3\nU7,R6,D4,L4" | wirecross solve -`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&flagSample, "sample", "", "Use a built-in sample instead of a file")
	solveCmd.Flags().BoolVar(&flagNoHistory, "no-history", false, "Do not record this run")
}

func runSolve(cmd *cobra.Command, args []string) {
	source, lines, err := loadInput(args, flagSample)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	start := time.Now()
	res, err := wire.Solve(cmd.Context(), lines, wire.SolveOptions{Parallel: cfg.Parallel})
	elapsed := time.Since(start)
	logger.Debug("solved", "source", source, "elapsed", elapsed, "intersections", res.Intersections)

	if !flagNoHistory && cfg.History.Enabled {
		recordRun(source, lines, res, err, elapsed)
	}

	switch {
	case errors.Is(err, wire.ErrNoIntersections):
		fmt.Println(style(failStyle, "No intersections between the two wires."))
		os.Exit(exitNoIntersections)
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s %s\n", style(labelStyle, "Minimum distance:"), style(valueStyle, fmt.Sprint(res.Distance)))
	fmt.Printf("%s %s\n", style(labelStyle, "Minimum steps:"), style(valueStyle, fmt.Sprint(res.Steps)))
	logger.Info("crossings found", "count", res.Intersections, "closest", res.Closest, "fastest", res.Fastest)
}

// recordRun saves the run to history. Storage failures are logged, not fatal.
func recordRun(source string, lines []string, res wire.Result, solveErr error, elapsed time.Duration) {
	store, err := storage.Open(cfg.Database)
	if err != nil {
		logger.Warn("could not open history database", "error", err)
		return
	}
	defer store.Close()

	run := storage.Run{
		Source:   source,
		Duration: elapsed,
	}
	if len(lines) > 0 {
		run.Wire1 = lines[0]
	}
	if len(lines) > 1 {
		run.Wire2 = lines[1]
	}

	switch {
	case solveErr == nil:
		run.Outcome = storage.OutcomeOK
		run.Distance = res.Distance
		run.Steps = res.Steps
		run.Intersections = res.Intersections
	case errors.Is(solveErr, wire.ErrNoIntersections):
		run.Outcome = storage.OutcomeNoIntersections
	default:
		run.Outcome = storage.OutcomeFailed
		run.Error = solveErr.Error()
	}

	id, err := store.SaveRun(run)
	if err != nil {
		logger.Warn("could not record run", "error", err)
		return
	}
	logger.Debug("run recorded", "id", id, "outcome", run.Outcome)
}
