package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/minefield/internal/config"
	"github.com/vovakirdan/minefield/internal/storage"
)

var flagClear bool

var recordsCmd = &cobra.Command{
	Use:   "records [preset]",
	Short: "Show best times for a preset",
	Long: `Display the 10 fastest wins and overall statistics for a preset.
Without a preset, shows the most recent games.

Examples:
  minesweeper records
  minesweeper records expert
  minesweeper records beginner --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRecords,
}

func init() {
	recordsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all records for the preset")
}

func runRecords(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening records database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		if err := printRecent(store); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving records: %v\n", err)
			store.Close()
			os.Exit(1)
		}
		return
	}

	preset := args[0]
	if preset != "custom" {
		// Check if preset exists
		cfg, err := config.LoadMinefield(flagConfig)
		if err == nil {
			if _, err := cfg.Preset(preset); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				fmt.Fprintln(os.Stderr, "Run 'minesweeper presets' to see available presets.")
				store.Close()
				os.Exit(1)
			}
		}
	}

	if flagClear {
		if err := store.ClearResults(preset); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			store.Close()
			os.Exit(1)
		}
		fmt.Printf("Cleared records for %s.\n", preset)
		return
	}

	best, err := store.BestTimes(preset, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving records: %v\n", err)
		store.Close()
		os.Exit(1)
	}

	fmt.Printf("Best Times - %s\n", preset)
	fmt.Println()

	if len(best) == 0 {
		fmt.Println("No wins recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'minesweeper play --preset %s' to set the first record!\n", preset)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-5s  %s\n", "Rank", "Time", "Moves", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %s\n", "----", "----", "-----", "----")

	for i, r := range best {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8s  %-5d  %s\n", i+1, formatDuration(r.Duration), r.Moves, dateStr)
	}

	stats, err := store.Stats(preset)
	if err == nil {
		fmt.Println()
		fmt.Printf("Played: %d  Won: %d (%.0f%%)\n", stats.Played, stats.Won, stats.WinRate()*100)
	}
}

func printRecent(store *storage.Store) error {
	recent, err := store.RecentResults(20)
	if err != nil {
		return err
	}

	fmt.Println("Recent Games")
	fmt.Println()
	if len(recent) == 0 {
		fmt.Println("No games recorded yet.")
		return nil
	}

	fmt.Printf("  %-12s  %-7s  %-9s  %-8s  %s\n", "Preset", "Size", "Outcome", "Time", "Date")
	fmt.Printf("  %-12s  %-7s  %-9s  %-8s  %s\n", "------", "----", "-------", "----", "----")
	for _, r := range recent {
		size := fmt.Sprintf("%dx%d", r.Rows, r.Cols)
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-12s  %-7s  %-9s  %-8s  %s\n", r.Preset, size, r.Outcome, formatDuration(r.Duration), dateStr)
	}
	return nil
}

// formatDuration renders a duration as m:ss.t.
func formatDuration(d time.Duration) string {
	d = d.Round(100 * time.Millisecond)
	m := int(d / time.Minute)
	s := d - time.Duration(m)*time.Minute
	return fmt.Sprintf("%d:%04.1f", m, s.Seconds())
}
