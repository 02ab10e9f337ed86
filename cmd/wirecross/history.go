package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wirecross/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryClear bool
	flagHistoryStats bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded runs",
	Long: `Display the most recent solve runs from the history database.

Examples:
  wirecross history
  wirecross history --limit 5
  wirecross history --stats
  wirecross history --clear`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 0, "Number of runs to show (0 = config value)")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete all recorded runs")
	historyCmd.Flags().BoolVar(&flagHistoryStats, "stats", false, "Show aggregate statistics")
}

func runHistory(cmd *cobra.Command, args []string) {
	store, err := storage.Open(cfg.Database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagHistoryClear {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logger.Info("history cleared", "database", cfg.Database)
		return
	}

	if flagHistoryStats {
		printStats(store)
		return
	}

	limit := cfg.History.Limit
	if flagHistoryLimit > 0 {
		limit = flagHistoryLimit
	}

	runs, err := store.RecentRuns(limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'wirecross solve' to record one.")
		return
	}

	fmt.Printf("  %-5s  %-16s  %-18s  %-9s  %s\n", "ID", "Date", "Source", "Distance", "Steps")
	fmt.Printf("  %-5s  %-16s  %-18s  %-9s  %s\n", "--", "----", "------", "--------", "-----")

	for _, run := range runs {
		dateStr := run.CreatedAt.Format("2006-01-02 15:04")
		distance, steps := "-", "-"
		switch run.Outcome {
		case storage.OutcomeOK:
			distance = fmt.Sprint(run.Distance)
			steps = fmt.Sprint(run.Steps)
		case storage.OutcomeNoIntersections:
			distance = "none"
		case storage.OutcomeFailed:
			distance = "error"
		}
		fmt.Printf("  %-5d  %-16s  %-18s  %-9s  %s\n", run.ID, dateStr, truncate(run.Source, 18), distance, steps)
	}
}

func printStats(store *storage.Store) {
	stats, err := store.GetStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Runs:              %d\n", stats.Runs)
	fmt.Printf("  solved:          %d\n", stats.Succeeded)
	fmt.Printf("  no crossings:    %d\n", stats.NoIntersections)
	fmt.Printf("  failed:          %d\n", stats.Failed)
	if stats.Succeeded > 0 {
		fmt.Println()
		fmt.Printf("Best distance:     %d\n", stats.BestDistance)
		fmt.Printf("Best steps:        %d\n", stats.BestSteps)
	}
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}
