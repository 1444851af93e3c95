package minefield

import "fmt"

// MarkMode selects how CycleMark walks through mark states.
type MarkMode uint8

const (
	// MarkThreeState cycles Hidden -> Flagged -> Questioned -> Hidden.
	MarkThreeState MarkMode = iota
	// MarkTwoState toggles Hidden <-> Flagged.
	MarkTwoState
)

// String returns the config name of the mode.
func (m MarkMode) String() string {
	if m == MarkTwoState {
		return "two"
	}
	return "three"
}

// ParseMarkMode converts a config value ("three", "two") to a MarkMode.
// An empty string selects the three-state cycle.
func ParseMarkMode(s string) (MarkMode, error) {
	switch s {
	case "", "three":
		return MarkThreeState, nil
	case "two":
		return MarkTwoState, nil
	default:
		return MarkThreeState, fmt.Errorf("minefield: unknown mark mode %q", s)
	}
}

// next returns the state following cur in this mode's cycle.
func (m MarkMode) next(cur CellState) CellState {
	switch cur {
	case Hidden:
		return Flagged
	case Flagged:
		if m == MarkTwoState {
			return Hidden
		}
		return Questioned
	default:
		return Hidden
	}
}

// CycleMark advances the mark on the cell at (row, col) and returns the
// new state. Revealed cells and finished games are left unchanged and the
// current state is returned; out-of-bounds positions report Hidden.
func (s *Session) CycleMark(row, col int) CellState {
	cell := s.grid.At(row, col)
	if cell == nil {
		return Hidden
	}
	if cell.State == Revealed || s.status.Terminal() {
		return cell.State
	}

	prev := cell.State
	cell.State = s.markMode.next(prev)

	if prev == Flagged {
		s.flags--
	}
	if cell.State == Flagged {
		s.flags++
	}
	s.moves++

	return cell.State
}
