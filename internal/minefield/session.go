package minefield

import "math/rand"

// Status is the session-level outcome.
type Status uint8

const (
	Active Status = iota
	Won
	Lost
)

// String returns a lowercase name for the status.
func (s Status) String() string {
	switch s {
	case Active:
		return "active"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the game has ended.
func (s Status) Terminal() bool {
	return s == Won || s == Lost
}

// Session owns one grid and the counters of a single game.
// A Session is not safe for concurrent use; restart by creating a new one.
type Session struct {
	grid     *Grid
	mines    int
	seed     int64
	markMode MarkMode

	cleared  int
	flags    int
	moves    int
	status   Status
	exploded *Coord
}

// Option configures a Session.
type Option func(*Session)

// WithMarkMode selects the mark cycle used by CycleMark.
func WithMarkMode(m MarkMode) Option {
	return func(s *Session) {
		s.markMode = m
	}
}

// NewSession creates a grid and deploys mineCount mines with an RNG seeded
// from seed. Same arguments always produce the same layout.
func NewSession(rows, cols, mineCount int, seed int64, opts ...Option) (*Session, error) {
	g, err := NewGrid(rows, cols)
	if err != nil {
		return nil, err
	}
	if err := Deploy(g, mineCount, rand.New(rand.NewSource(seed))); err != nil {
		return nil, err
	}
	return newSession(g, mineCount, seed, opts), nil
}

// NewSessionWithLayout creates a session with mines at the given positions.
// Used for replaying known boards.
func NewSessionWithLayout(rows, cols int, mines []Coord, opts ...Option) (*Session, error) {
	g, err := NewGrid(rows, cols)
	if err != nil {
		return nil, err
	}
	if err := deployLayout(g, mines); err != nil {
		return nil, err
	}
	return newSession(g, len(mines), 0, opts), nil
}

func newSession(g *Grid, mines int, seed int64, opts []Option) *Session {
	s := &Session{
		grid:     g,
		mines:    mines,
		seed:     seed,
		markMode: MarkThreeState,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Rows returns the grid height.
func (s *Session) Rows() int { return s.grid.rows }

// Cols returns the grid width.
func (s *Session) Cols() int { return s.grid.cols }

// MineCount returns the configured number of mines.
func (s *Session) MineCount() int { return s.mines }

// Seed returns the seed the mines were deployed with (0 for fixed layouts).
func (s *Session) Seed() int64 { return s.seed }

// MarkMode returns the active mark cycle.
func (s *Session) MarkMode() MarkMode { return s.markMode }

// Cleared returns the number of revealed non-mine cells.
func (s *Session) Cleared() int { return s.cleared }

// Flags returns the number of flagged cells.
func (s *Session) Flags() int { return s.flags }

// MinesLeft returns mines minus flags. It goes negative when over-flagged.
func (s *Session) MinesLeft() int { return s.mines - s.flags }

// Moves returns the number of reveal and mark calls that changed the board.
func (s *Session) Moves() int { return s.moves }

// Status returns whether the game is active, won or lost.
func (s *Session) Status() Status { return s.status }

// Exploded returns the mine that ended the game, if any.
func (s *Session) Exploded() (Coord, bool) {
	if s.exploded == nil {
		return Coord{}, false
	}
	return *s.exploded, true
}

// Cell returns a copy of the cell at (row, col) for display.
func (s *Session) Cell(row, col int) (Cell, bool) {
	c := s.grid.At(row, col)
	if c == nil {
		return Cell{}, false
	}
	return *c, true
}

// AllMinePositions returns every mine in row-major order.
func (s *Session) AllMinePositions() []Coord {
	return s.grid.Mines()
}

// safeCells is the cleared count that wins the game.
func (s *Session) safeCells() int {
	return s.grid.Size() - s.mines
}

// Snapshot is an immutable copy of the session counters.
type Snapshot struct {
	Rows    int
	Cols    int
	Mines   int
	Seed    int64
	Cleared int
	Flags   int
	Moves   int
	Status  Status
	Board   string
}

// Snapshot captures the current counters and board dump.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Rows:    s.grid.rows,
		Cols:    s.grid.cols,
		Mines:   s.mines,
		Seed:    s.seed,
		Cleared: s.cleared,
		Flags:   s.flags,
		Moves:   s.moves,
		Status:  s.status,
		Board:   s.Dump(false),
	}
}
