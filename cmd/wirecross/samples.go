package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wirecross/internal/registry"
)

var samplesCmd = &cobra.Command{
	Use:   "samples",
	Short: "List built-in samples",
	Long:  `Shows the wire pairs bundled with wirecross, usable with --sample.`,
	Run:   runSamples,
}

func runSamples(cmd *cobra.Command, args []string) {
	samples := registry.List()

	if len(samples) == 0 {
		fmt.Println("No samples available.")
		return
	}

	fmt.Println("Available samples:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, s := range samples {
		if len(s.ID) > maxIDLen {
			maxIDLen = len(s.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, s := range samples {
		fmt.Printf("  %-*s  %s\n", maxIDLen, s.ID, s.Title)
	}

	fmt.Println()
	fmt.Println("Run 'wirecross solve --sample <id>' to analyze one.")
}
