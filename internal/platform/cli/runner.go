// Package cli drives minefield sessions from line-oriented text commands.
// It is the thin collaborator between the engine and a terminal: it parses
// input, calls the engine, prints the board dump and records results.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/minefield/internal/config"
	"github.com/vovakirdan/minefield/internal/core"
	"github.com/vovakirdan/minefield/internal/minefield"
	"github.com/vovakirdan/minefield/internal/storage"
)

// ResultSaver persists finished games. *storage.Store implements it.
type ResultSaver interface {
	SaveResult(r storage.GameResult) (int64, error)
}

var _ ResultSaver = (*storage.Store)(nil)

// SessionFactory builds a new session for the given seed.
type SessionFactory func(seed int64) (*minefield.Session, error)

// Options configures a Runner.
type Options struct {
	Preset   config.Preset // Recorded with results
	MarkMode minefield.MarkMode
	Runtime  core.RuntimeConfig // Board size, mine count and seed
	Prompt   bool               // Print "> " before each command (interactive terminals)

	// Factory overrides session creation; defaults to a random layout
	// sized by Runtime.
	Factory SessionFactory
	// Now overrides the clock used for game durations.
	Now func() time.Time
}

// Runner plays sessions one after another until quit or end of input.
type Runner struct {
	out    io.Writer
	store  ResultSaver
	logger *log.Logger
	opts   Options

	session *minefield.Session
	seed    int64
	started time.Time
	saved   bool
}

// NewRunner creates a runner. store may be nil to skip persistence.
func NewRunner(out io.Writer, store ResultSaver, logger *log.Logger, opts Options) *Runner {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Factory == nil {
		rc, mode := opts.Runtime, opts.MarkMode
		opts.Factory = func(seed int64) (*minefield.Session, error) {
			return minefield.NewSession(rc.Rows, rc.Cols, rc.Mines, seed, minefield.WithMarkMode(mode))
		}
	}
	return &Runner{
		out:    out,
		store:  store,
		logger: logger,
		opts:   opts,
	}
}

// Session returns the current session, or nil before Run starts.
func (r *Runner) Session() *minefield.Session {
	return r.session
}

// Run reads commands from in until quit or EOF.
func (r *Runner) Run(in io.Reader) error {
	if err := r.start(r.opts.Runtime.ResolveSeed()); err != nil {
		return err
	}
	r.printBoard()

	scanner := bufio.NewScanner(in)
	for {
		if r.opts.Prompt {
			fmt.Fprint(r.out, "> ")
		}
		if !scanner.Scan() {
			break
		}

		cmd, err := core.ParseCommand(scanner.Text())
		if err != nil {
			fmt.Fprintf(r.out, "error: %v (h for help)\n", err)
			continue
		}

		quit, err := r.handle(cmd)
		if err != nil {
			return err
		}
		if quit {
			break
		}
	}

	r.finish(storage.OutcomeAbandoned)
	return scanner.Err()
}

// handle applies one command. It returns true when the player quits.
func (r *Runner) handle(cmd core.Command) (bool, error) {
	switch cmd.Action {
	case core.ActionNone:
	case core.ActionHelp:
		r.printHelp()
	case core.ActionQuit:
		return true, nil
	case core.ActionRestart:
		r.finish(storage.OutcomeAbandoned)
		if err := r.start(r.seed + 1); err != nil {
			return false, err
		}
		r.printBoard()
	case core.ActionReveal, core.ActionMark:
		if r.session.Status().Terminal() {
			fmt.Fprintln(r.out, "game over: n for a new board, q to quit")
			return false, nil
		}
		if cmd.Action == core.ActionReveal {
			r.reveal(cmd.Row, cmd.Col)
		} else {
			r.mark(cmd.Row, cmd.Col)
		}
	}
	return false, nil
}

func (r *Runner) reveal(row, col int) {
	switch r.session.Reveal(row, col) {
	case minefield.NoOp:
		fmt.Fprintf(r.out, "nothing to reveal at %d %d\n", row, col)
	case minefield.Continue:
		r.printBoard()
	case minefield.Win:
		r.printBoard()
		fmt.Fprintf(r.out, "You cleared the field in %s!\n", r.elapsed().Round(time.Second))
		r.finish(storage.OutcomeWon)
	case minefield.Loss:
		fmt.Fprint(r.out, r.session.Dump(true))
		fmt.Fprintf(r.out, "Boom! You hit a mine at %d %d.\n", row, col)
		r.finish(storage.OutcomeLost)
	}
}

func (r *Runner) mark(row, col int) {
	before, ok := r.session.Cell(row, col)
	if !ok {
		fmt.Fprintf(r.out, "nothing to mark at %d %d\n", row, col)
		return
	}
	if after := r.session.CycleMark(row, col); after == before.State {
		fmt.Fprintf(r.out, "cell %d %d is already revealed\n", row, col)
		return
	}
	r.printBoard()
}

// start replaces the current session with a fresh one.
func (r *Runner) start(seed int64) error {
	s, err := r.opts.Factory(seed)
	if err != nil {
		return fmt.Errorf("cannot create board: %w", err)
	}
	r.session = s
	r.seed = seed
	r.started = r.opts.Now()
	r.saved = false

	r.logger.Debug("new board",
		"preset", r.opts.Preset.Name,
		"rows", s.Rows(), "cols", s.Cols(), "mines", s.MineCount(),
		"seed", seed)
	return nil
}

// finish records the current game once. Untouched boards are not recorded.
func (r *Runner) finish(outcome string) {
	if r.saved || r.session == nil {
		return
	}
	s := r.session
	if outcome == storage.OutcomeAbandoned && (s.Status().Terminal() || s.Moves() == 0) {
		return
	}
	r.saved = true

	result := storage.GameResult{
		Preset:   r.opts.Preset.Name,
		Rows:     s.Rows(),
		Cols:     s.Cols(),
		Mines:    s.MineCount(),
		Seed:     r.seed,
		Outcome:  outcome,
		Cleared:  s.Cleared(),
		Moves:    s.Moves(),
		Duration: r.elapsed(),
	}
	r.logger.Info("game finished",
		"outcome", outcome, "cleared", result.Cleared, "moves", result.Moves,
		"duration", result.Duration.Round(time.Millisecond))

	if r.store == nil {
		return
	}
	if _, err := r.store.SaveResult(result); err != nil {
		r.logger.Warn("could not save result", "error", err)
	}
}

func (r *Runner) elapsed() time.Duration {
	return r.opts.Now().Sub(r.started)
}

func (r *Runner) printBoard() {
	s := r.session
	fmt.Fprint(r.out, s.Dump(false))
	fmt.Fprintf(r.out, "%s  mines left: %d  cleared: %d/%d  moves: %d\n",
		s.Status(), s.MinesLeft(), s.Cleared(), s.Rows()*s.Cols()-s.MineCount(), s.Moves())
}

func (r *Runner) printHelp() {
	fmt.Fprintln(r.out, "commands:")
	fmt.Fprintln(r.out, "  r <row> <col>  reveal a cell")
	fmt.Fprintln(r.out, "  m <row> <col>  cycle flag / question mark")
	fmt.Fprintln(r.out, "  n              new board")
	fmt.Fprintln(r.out, "  q              quit")
}
