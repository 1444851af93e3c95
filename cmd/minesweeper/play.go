package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/minefield/internal/config"
	"github.com/vovakirdan/minefield/internal/core"
	"github.com/vovakirdan/minefield/internal/minefield"
	"github.com/vovakirdan/minefield/internal/platform/cli"
	"github.com/vovakirdan/minefield/internal/storage"
)

var (
	flagPreset   string
	flagSeed     int64
	flagRows     int
	flagCols     int
	flagMines    int
	flagTwoState bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a board",
	Long: `Start a board and read commands from stdin, one per line.

Commands:
  r <row> <col>  - Reveal a cell
  m <row> <col>  - Cycle flag / question mark
  n              - New board
  q              - Quit

Examples:
  minesweeper play
  minesweeper play --preset intermediate
  minesweeper play --preset expert --seed 42
  minesweeper play --rows 12 --cols 12 --mines 30 --two-state
  minesweeper play < moves.txt`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPreset, "preset", "", "Board preset (default from config)")
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	playCmd.Flags().IntVar(&flagRows, "rows", 0, "Override preset rows")
	playCmd.Flags().IntVar(&flagCols, "cols", 0, "Override preset columns")
	playCmd.Flags().IntVar(&flagMines, "mines", 0, "Override preset mine count")
	playCmd.Flags().BoolVar(&flagTwoState, "two-state", false, "Marks toggle flag only (no question marks)")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger := newLogger()

	cfg, err := config.LoadMinefield(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	preset, err := cfg.Preset(flagPreset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'minesweeper presets' to see available presets.")
		os.Exit(1)
	}
	preset, err = config.ApplyOverrides(preset, config.Overrides{Rows: flagRows, Cols: flagCols, Mines: flagMines})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	mode, err := cfg.Mode()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagTwoState {
		mode = minefield.MarkTwoState
	}

	// Open records storage
	var saver cli.ResultSaver
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open records database", "error", err)
		// Continue without storage - game still works
	} else {
		saver = store
	}

	logger.Info("starting board", "preset", preset.Name, "rows", preset.Rows, "cols", preset.Cols, "mines", preset.Mines)

	runtime := core.RuntimeConfig{
		Rows:  preset.Rows,
		Cols:  preset.Cols,
		Mines: preset.Mines,
		Seed:  flagSeed,
	}
	runner := cli.NewRunner(os.Stdout, saver, logger, cli.Options{
		Preset:   preset,
		MarkMode: mode,
		Runtime:  runtime,
		Prompt:   term.IsTerminal(int(os.Stdin.Fd())),
	})

	runErr := runner.Run(os.Stdin)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
