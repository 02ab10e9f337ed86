package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vovakirdan/wirecross/internal/registry"
	"github.com/vovakirdan/wirecross/internal/wire"
)

// loadInput returns the wire lines and a label describing where they came from.
// A sample ID takes the lines from the registry; otherwise the file named in
// args (or the configured input) is read, with "-" meaning stdin.
func loadInput(args []string, sampleID string) (source string, lines []string, err error) {
	if sampleID != "" {
		if len(args) > 0 {
			return "", nil, errors.New("cannot use --sample together with an input file")
		}
		sample, err := registry.Create(sampleID)
		if err != nil {
			return "", nil, err
		}
		return "sample:" + sample.ID(), sample.Lines(), nil
	}

	path := cfg.Input
	if len(args) > 0 {
		path = args[0]
	}

	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return "", nil, fmt.Errorf("cannot open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	lines, err = wire.ReadLines(r)
	if err != nil {
		return "", nil, err
	}
	logger.Debug("input read", "source", path, "lines", len(lines))
	return path, lines, nil
}
