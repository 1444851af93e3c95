package cli

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/minefield/internal/config"
	"github.com/vovakirdan/minefield/internal/core"
	"github.com/vovakirdan/minefield/internal/minefield"
	"github.com/vovakirdan/minefield/internal/storage"
)

type fakeSaver struct {
	results []storage.GameResult
	err     error
}

func (f *fakeSaver) SaveResult(r storage.GameResult) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.results = append(f.results, r)
	return int64(len(f.results)), nil
}

// fakeClock advances by one second on every call.
func fakeClock() func() time.Time {
	t := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func newTestRunner(out io.Writer, saver ResultSaver) *Runner {
	opts := Options{
		Preset: config.Preset{Name: "tiny", Rows: 2, Cols: 2, Mines: 1},
		Factory: func(seed int64) (*minefield.Session, error) {
			return minefield.NewSessionWithLayout(2, 2, []minefield.Coord{{Row: 0, Col: 0}})
		},
		Now: fakeClock(),
	}
	opts.Runtime.Seed = 7
	return NewRunner(out, saver, log.New(io.Discard), opts)
}

func TestRunnerWin(t *testing.T) {
	var out bytes.Buffer
	saver := &fakeSaver{}
	r := newTestRunner(&out, saver)

	if err := r.Run(strings.NewReader("r 1 1\nr 0 1\nr 1 0\nq\n")); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if r.Session().Status() != minefield.Won {
		t.Errorf("status = %v, expected won", r.Session().Status())
	}
	if !strings.Contains(out.String(), "You cleared the field") {
		t.Errorf("missing win message in output:\n%s", out.String())
	}
	if len(saver.results) != 1 {
		t.Fatalf("expected 1 saved result, got %d", len(saver.results))
	}
	got := saver.results[0]
	if got.Outcome != storage.OutcomeWon || got.Preset != "tiny" || got.Seed != 7 || got.Moves != 3 || got.Cleared != 3 {
		t.Errorf("unexpected result %+v", got)
	}
	if got.Duration <= 0 {
		t.Errorf("Duration = %v, expected positive", got.Duration)
	}
}

func TestRunnerLossShowsMines(t *testing.T) {
	var out bytes.Buffer
	saver := &fakeSaver{}
	r := newTestRunner(&out, saver)

	if err := r.Run(strings.NewReader("r 0 0\nr 1 1\n")); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	text := out.String()
	if !strings.Contains(text, " 0 X#\n") {
		t.Errorf("expected exploded mine in dump:\n%s", text)
	}
	if !strings.Contains(text, "game over") {
		t.Errorf("expected game over notice after loss:\n%s", text)
	}
	if len(saver.results) != 1 || saver.results[0].Outcome != storage.OutcomeLost {
		t.Errorf("expected one lost result, got %+v", saver.results)
	}
}

func TestRunnerRestartRecordsAbandoned(t *testing.T) {
	var out bytes.Buffer
	saver := &fakeSaver{}
	r := newTestRunner(&out, saver)

	// Untouched boards are not recorded; touched ones are abandoned
	if err := r.Run(strings.NewReader("n\nm 1 1\nn\n")); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if len(saver.results) != 1 {
		t.Fatalf("expected 1 saved result, got %d: %+v", len(saver.results), saver.results)
	}
	got := saver.results[0]
	if got.Outcome != storage.OutcomeAbandoned || got.Seed != 8 {
		t.Errorf("unexpected result %+v", got)
	}
	if r.Session().Moves() != 0 {
		t.Error("restart should start a fresh session")
	}
}

func TestRunnerBadInput(t *testing.T) {
	var out bytes.Buffer
	r := newTestRunner(&out, nil)

	if err := r.Run(strings.NewReader("x\nr 9 9\nm 5 5\nr 1 1\nm 1 1\nh\n")); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	text := out.String()
	for _, want := range []string{
		"error: unknown command",
		"nothing to reveal at 9 9",
		"nothing to mark at 5 5",
		"already revealed",
		"commands:",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}
}

func TestRunnerSaveErrorIsNotFatal(t *testing.T) {
	var out bytes.Buffer
	r := newTestRunner(&out, &fakeSaver{err: errors.New("disk full")})

	if err := r.Run(strings.NewReader("r 0 0\n")); err != nil {
		t.Fatalf("Run() should ignore save errors, got %v", err)
	}
}

func TestRunnerFactoryError(t *testing.T) {
	opts := Options{
		Preset:  config.Preset{Name: "broken"},
		Runtime: core.RuntimeConfig{Rows: 2, Cols: 2, Mines: 4, Seed: 1},
	}
	r := NewRunner(io.Discard, nil, log.New(io.Discard), opts)

	err := r.Run(strings.NewReader(""))
	if !errors.Is(err, minefield.ErrConfiguration) {
		t.Errorf("Run() error = %v, expected ErrConfiguration", err)
	}
}
