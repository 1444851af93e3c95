package minefield

// RevealOutcome is the result of a single Reveal call.
type RevealOutcome uint8

const (
	NoOp RevealOutcome = iota
	Continue
	Win
	Loss
)

// String returns a human-readable name for the outcome.
func (o RevealOutcome) String() string {
	switch o {
	case NoOp:
		return "NoOp"
	case Continue:
		return "Continue"
	case Win:
		return "Win"
	case Loss:
		return "Loss"
	default:
		return "Unknown"
	}
}

// Reveal opens the cell at (row, col).
//
// Out-of-bounds, flagged and already revealed cells are a NoOp, as is any
// call after the game has ended. Revealing a mine loses the game without
// touching other cells, so the board stays inspectable. Revealing a safe
// cell with no adjacent mines floods outward until numbered cells or the
// grid edge. Flagged cells stop the flood; question marks do not.
func (s *Session) Reveal(row, col int) RevealOutcome {
	if s.status.Terminal() {
		return NoOp
	}
	cell := s.grid.At(row, col)
	if cell == nil || cell.State == Flagged || cell.State == Revealed {
		return NoOp
	}

	s.moves++

	if cell.IsMine {
		at := cell.Coord()
		s.exploded = &at
		s.status = Lost
		return Loss
	}

	s.flood(cell)

	if s.cleared == s.safeCells() {
		s.status = Won
		return Win
	}
	return Continue
}

// flood reveals start and the connected zero-adjacency region around it.
// Cells are marked Revealed when pushed, so each enters the stack once.
func (s *Session) flood(start *Cell) {
	s.open(start)
	stack := []Coord{start.Coord()}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if s.grid.At(p.Row, p.Col).AdjacentMines != 0 {
			continue
		}
		for _, nb := range s.grid.Neighbors(p.Row, p.Col) {
			next := s.grid.At(nb.Row, nb.Col)
			if next.State == Revealed || next.State == Flagged || next.IsMine {
				continue
			}
			s.open(next)
			stack = append(stack, nb)
		}
	}
}

func (s *Session) open(c *Cell) {
	c.State = Revealed
	s.cleared++
}
