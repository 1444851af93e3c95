package minefield

// Grid is a fixed-size rows x cols matrix of cells.
// Cells are stored in row-major order: index = row*cols + col.
type Grid struct {
	rows  int
	cols  int
	cells []Cell
}

// neighborOffsets lists the Moore neighborhood deltas.
var neighborOffsets = [8]Coord{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// NewGrid creates a grid with every cell Hidden and mine-free.
// Returns a ConfigurationError for non-positive dimensions.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, &ConfigurationError{Rows: rows, Cols: cols, Reason: "dimensions must be positive"}
	}

	g := &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cell := &g.cells[g.index(r, c)]
			cell.Row = r
			cell.Col = c
		}
	}
	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.cols
}

// Size returns the total number of cells.
func (g *Grid) Size() int {
	return g.rows * g.cols
}

func (g *Grid) index(row, col int) int {
	return row*g.cols + col
}

// InBounds returns true if (row, col) lies on the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// At returns a pointer to the cell at (row, col), or nil if out of bounds.
func (g *Grid) At(row, col int) *Cell {
	if !g.InBounds(row, col) {
		return nil
	}
	return &g.cells[g.index(row, col)]
}

// Neighbors returns the in-bounds Moore neighbors of (row, col).
func (g *Grid) Neighbors(row, col int) []Coord {
	out := make([]Coord, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		r, c := row+d.Row, col+d.Col
		if g.InBounds(r, c) {
			out = append(out, Coord{Row: r, Col: c})
		}
	}
	return out
}

// Mines returns the positions of all mines in row-major order.
func (g *Grid) Mines() []Coord {
	var out []Coord
	for i := range g.cells {
		if g.cells[i].IsMine {
			out = append(out, g.cells[i].Coord())
		}
	}
	return out
}

// countAdjacent fills AdjacentMines for every non-mine cell.
func (g *Grid) countAdjacent() {
	for i := range g.cells {
		cell := &g.cells[i]
		if cell.IsMine {
			cell.AdjacentMines = 0
			continue
		}
		n := 0
		for _, nb := range g.Neighbors(cell.Row, cell.Col) {
			if g.cells[g.index(nb.Row, nb.Col)].IsMine {
				n++
			}
		}
		cell.AdjacentMines = n
	}
}
