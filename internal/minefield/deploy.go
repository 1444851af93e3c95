package minefield

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrConfiguration matches every ConfigurationError via errors.Is.
var ErrConfiguration = errors.New("minefield: invalid configuration")

// ConfigurationError reports invalid grid dimensions or mine count.
type ConfigurationError struct {
	Rows   int
	Cols   int
	Mines  int
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("minefield: invalid configuration %dx%d with %d mines: %s",
		e.Rows, e.Cols, e.Mines, e.Reason)
}

// Is lets errors.Is(err, ErrConfiguration) match.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

func checkMineCount(rows, cols, mineCount int) error {
	if mineCount < 0 {
		return &ConfigurationError{Rows: rows, Cols: cols, Mines: mineCount, Reason: "mine count must not be negative"}
	}
	if mineCount >= rows*cols {
		return &ConfigurationError{Rows: rows, Cols: cols, Mines: mineCount, Reason: "mine count must be below cell count"}
	}
	return nil
}

// Deploy places mineCount mines on a fresh grid using rejection sampling
// and then computes adjacency counts. The result depends only on rng.
func Deploy(g *Grid, mineCount int, rng *rand.Rand) error {
	if err := checkMineCount(g.rows, g.cols, mineCount); err != nil {
		return err
	}

	placed := 0
	for placed < mineCount {
		cell := g.At(rng.Intn(g.rows), rng.Intn(g.cols))
		if cell.IsMine {
			continue
		}
		cell.IsMine = true
		placed++
	}

	g.countAdjacent()
	return nil
}

// deployLayout places mines at fixed positions and computes adjacency.
func deployLayout(g *Grid, mines []Coord) error {
	if err := checkMineCount(g.rows, g.cols, len(mines)); err != nil {
		return err
	}

	for _, m := range mines {
		cell := g.At(m.Row, m.Col)
		if cell == nil {
			return &ConfigurationError{Rows: g.rows, Cols: g.cols, Mines: len(mines),
				Reason: fmt.Sprintf("mine %s is out of bounds", m)}
		}
		if cell.IsMine {
			return &ConfigurationError{Rows: g.rows, Cols: g.cols, Mines: len(mines),
				Reason: fmt.Sprintf("mine %s listed twice", m)}
		}
		cell.IsMine = true
	}

	g.countAdjacent()
	return nil
}
