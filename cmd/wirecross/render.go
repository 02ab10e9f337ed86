package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wirecross/internal/wire"
)

var (
	flagRenderSample string
	flagMaxWidth     int
	flagMaxHeight    int
)

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Draw both wires as an ASCII plot",
	Long: `Plot two wires on a character grid with Up at the top.

Legend:
  o  origin
  1  first wire only
  2  second wire only
  X  crossing
  .  empty

Plots larger than the configured limits are refused; real puzzle inputs
span hundreds of thousands of cells and are not meant to be drawn.

Examples:
  wirecross render --sample demo
  wirecross render small.txt --max-width 300`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRender,
}

func init() {
	renderCmd.Flags().StringVar(&flagRenderSample, "sample", "", "Use a built-in sample instead of a file")
	renderCmd.Flags().IntVar(&flagMaxWidth, "max-width", 0, "Maximum plot width (0 = config value)")
	renderCmd.Flags().IntVar(&flagMaxHeight, "max-height", 0, "Maximum plot height (0 = config value)")
}

func runRender(cmd *cobra.Command, args []string) {
	_, lines, err := loadInput(args, flagRenderSample)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(lines) != 2 {
		fmt.Fprintf(os.Stderr, "Error: %v, got %d\n", wire.ErrWireCount, len(lines))
		os.Exit(1)
	}

	wires, err := wire.TraceAll(cmd.Context(), lines, wire.SolveOptions{Parallel: cfg.Parallel})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts := wire.RenderOptions{
		MaxWidth:  cfg.Render.MaxWidth,
		MaxHeight: cfg.Render.MaxHeight,
		Color:     cfg.Render.Color && stdoutIsTerminal(),
	}
	if flagMaxWidth > 0 {
		opts.MaxWidth = flagMaxWidth
	}
	if flagMaxHeight > 0 {
		opts.MaxHeight = flagMaxHeight
	}

	plot, err := wire.Render(wires[0], wires[1], opts)
	if errors.Is(err, wire.ErrTooLarge) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Raise --max-width/--max-height to draw it anyway.")
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(plot)
	fmt.Println()
	fmt.Println(style(dimStyle, "o origin  1 first wire  2 second wire  X crossing"))
}
