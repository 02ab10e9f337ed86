package wire

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"golang.org/x/sync/errgroup"
)

// SolveOptions controls how Solve runs.
type SolveOptions struct {
	// Parallel traces the two wires concurrently.
	Parallel bool
}

// Solve parses and traces exactly two wire lines, then analyzes them.
func Solve(ctx context.Context, lines []string, opts SolveOptions) (Result, error) {
	if len(lines) != 2 {
		return Result{}, fmt.Errorf("%w, got %d", ErrWireCount, len(lines))
	}

	wires, err := TraceAll(ctx, lines, opts)
	if err != nil {
		return Result{}, err
	}
	return Analyze(wires[0], wires[1])
}

// TraceAll parses and traces every line, preserving order.
// The first error wins; its message names the 1-based wire number.
func TraceAll(ctx context.Context, lines []string, opts SolveOptions) ([]*Wire, error) {
	wires := make([]*Wire, len(lines))

	g, gctx := errgroup.WithContext(ctx)
	if !opts.Parallel {
		g.SetLimit(1)
	}
	for i, line := range lines {
		i, line := i, line
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			w, err := ParseWire(line)
			if err != nil {
				return fmt.Errorf("wire %d: %w", i+1, err)
			}
			wires[i] = w
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return wires, nil
}

// ReadLines reads wire descriptions, one per line, skipping blank lines.
func ReadLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	// Real inputs are a single line of a few thousand tokens.
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 10*1024*1024)

	var lines []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("wire: reading input: %w", err)
	}
	return lines, nil
}
