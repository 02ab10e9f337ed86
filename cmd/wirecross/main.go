// wirecross finds where two wires drawn on an integer grid cross.
//
// Usage:
//
//	wirecross solve [file]       - Closest crossing distance and least combined steps
//	wirecross render [file]      - Plot both wires as ASCII
//	wirecross samples            - List built-in samples
//	wirecross check              - Verify every built-in sample
//	wirecross history            - Show recorded runs
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.wirecross, ./configs, embedded)
//	--db <path>         - History database path (default: ~/.wirecross/history.db)
//	--log-level <lvl>   - debug, info, warn, error
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/wirecross/internal/config"

	// Import samples to register them
	_ "github.com/vovakirdan/wirecross/internal/samples"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
)

var (
	cfg    config.Config
	logger *log.Logger
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wirecross",
	Short: "wirecross - find where two grid wires cross",
	Long: `wirecross reads two wire paths such as "R8,U5,L5,D3", traces them
from a shared origin and reports:

  - the Manhattan distance from the origin to the closest crossing
  - the fewest combined steps both wires need to reach a crossing

Available commands:
  solve    - Analyze two wires from a file, stdin or a built-in sample
  render   - Draw both wires as an ASCII plot
  samples  - List built-in samples
  check    - Verify every built-in sample against its known answer
  history  - Show previously recorded runs

Examples:
  wirecross solve input.txt
  wirecross solve --sample demo
  cat input.txt | wirecross solve -
  wirecross render --sample demo
  wirecross history --limit 5`,
	PersistentPreRun: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to history database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(samplesCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(historyCmd)
}

// setup loads configuration, applies flag overrides and builds the logger.
func setup(cmd *cobra.Command, _ []string) {
	loaded, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagDBPath != "" {
		loaded.Database = flagDBPath
	}
	if flagLogLevel != "" {
		loaded.Log.Level = flagLogLevel
	}
	if err := loaded.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg = loaded

	logger, err = newLogger(cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("configuration loaded", "command", cmd.Name(), "input", cfg.Input, "database", cfg.Database)
}

// newLogger creates the stderr logger at the given level.
func newLogger(level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "wirecross",
		Level:           lvl,
	}), nil
}
