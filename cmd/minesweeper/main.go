// minesweeper plays Minesweeper boards from line commands in the terminal.
//
// Usage:
//
//	minesweeper play            - Play a board (reads commands from stdin)
//	minesweeper presets         - List board presets
//	minesweeper records [preset] - Show best times and statistics
//
// Global flags:
//
//	--config <path> - Board configuration YAML
//	--db <path>     - Records database path (default: ~/.minefield/records.db)
//	--verbose       - Debug logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig  string
	flagDBPath  string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "minesweeper",
	Short: "Minesweeper - clear the minefield from your terminal",
	Long: `Minesweeper reveals cells on a grid of hidden mines. Numbers show how
many mines touch a cell; clear every safe cell to win.

Available commands:
  play     - Play a board
  presets  - List board presets
  records  - View best times

Examples:
  minesweeper play
  minesweeper play --preset expert --seed 42
  minesweeper play --rows 20 --cols 20 --mines 60
  minesweeper records beginner`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to board config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.minefield/records.db", "Path to records database")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(recordsCmd)
}

// newLogger builds the stderr logger shared by all commands.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "minesweeper",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
