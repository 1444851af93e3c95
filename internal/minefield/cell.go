// Package minefield implements the Minesweeper engine: grid model, mine
// deployment, flood-fill reveal, mark cycling and win/loss detection.
// It has no rendering or input dependencies; collaborators call into a
// Session and query cell data afterwards.
package minefield

import "fmt"

// Coord is a (row, col) position on the grid.
type Coord struct {
	Row int
	Col int
}

// C is a convenience constructor for Coord.
func C(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// CellState is the visible state of a cell. Exactly one holds at any time.
type CellState uint8

const (
	Hidden CellState = iota
	Revealed
	Flagged
	Questioned
)

// String returns a human-readable name for the state.
func (s CellState) String() string {
	switch s {
	case Hidden:
		return "Hidden"
	case Revealed:
		return "Revealed"
	case Flagged:
		return "Flagged"
	case Questioned:
		return "Questioned"
	default:
		return "Unknown"
	}
}

// Cell is a single grid position.
// Row, Col, IsMine and AdjacentMines are fixed once mines are deployed;
// only State changes during play. Mine cells keep AdjacentMines at 0.
type Cell struct {
	Row           int
	Col           int
	IsMine        bool
	AdjacentMines int
	State         CellState
}

// Coord returns the cell position.
func (c Cell) Coord() Coord {
	return Coord{Row: c.Row, Col: c.Col}
}
