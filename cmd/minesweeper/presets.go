package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/minefield/internal/config"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List board presets",
	Long:  `Shows the board presets from the active configuration.`,
	Args:  cobra.NoArgs,
	Run:   runPresets,
}

func runPresets(cmd *cobra.Command, args []string) {
	cfg, err := config.LoadMinefield(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(cfg.Presets) == 0 {
		fmt.Println("No presets available.")
		return
	}

	fmt.Println("Available presets:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, p := range cfg.Presets {
		if len(p.Name) > maxNameLen {
			maxNameLen = len(p.Name)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-7s  %-5s  %s\n", maxNameLen, "Name", "Size", "Mines", "Density")
	fmt.Printf("  %-*s  %-7s  %-5s  %s\n", maxNameLen, "----", "----", "-----", "-------")

	// Print presets
	for _, p := range cfg.Presets {
		marker := ""
		if p.Name == cfg.DefaultPreset {
			marker = "(default)"
		}
		size := fmt.Sprintf("%dx%d", p.Rows, p.Cols)
		fmt.Printf("  %-*s  %-7s  %-5d  %6.1f%%  %s\n", maxNameLen, p.Name, size, p.Mines, p.Density()*100, marker)
	}

	fmt.Println()
	fmt.Printf("Mark mode: %s\n", cfg.MarkMode)
	fmt.Println("Run 'minesweeper play --preset <name>' to play.")
}
