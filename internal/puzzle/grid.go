package puzzle

import "fmt"

// MinDimension is the smallest supported grid size.
const MinDimension = 2

// Grid owns the cell to tile mapping and the empty cell.
// Cells are stored in row-major order: index = row*dim + col.
// where is the reverse index: where[tile] is the cell holding tile.
type Grid struct {
	dim   int
	cells []Tile
	where []Cell
	empty Cell
}

// NewGrid creates a grid with tiles placed left to right, top to bottom.
// The last cell is left empty.
func NewGrid(dimension int) (*Grid, error) {
	if dimension < MinDimension {
		return nil, &ConfigurationError{
			Field:  "dimension",
			Value:  dimension,
			Reason: fmt.Sprintf("must be an integer >= %d", MinDimension),
		}
	}

	n := dimension * dimension
	g := &Grid{
		dim:   dimension,
		cells: make([]Tile, n),
		where: make([]Cell, n),
		empty: Cell{Row: dimension - 1, Col: dimension - 1},
	}
	for i := 0; i < n-1; i++ {
		t := Tile(i + 1)
		c := Cell{Row: i / dimension, Col: i % dimension}
		g.cells[i] = t
		g.where[t] = c
	}
	g.cells[n-1] = NoTile
	return g, nil
}

// Dimension returns the grid size N.
func (g *Grid) Dimension() int {
	return g.dim
}

// InBounds returns true if the cell is within the grid.
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.dim && c.Col >= 0 && c.Col < g.dim
}

func (g *Grid) index(c Cell) int {
	return c.Row*g.dim + c.Col
}

// Get returns the tile at the cell, or NoTile for the empty cell.
func (g *Grid) Get(c Cell) (Tile, error) {
	if !g.InBounds(c) {
		return NoTile, outOfBounds(c, g.dim)
	}
	return g.cells[g.index(c)], nil
}

// IsEmpty returns true if c is the empty cell.
func (g *Grid) IsEmpty(c Cell) bool {
	return c == g.empty
}

// EmptyCell returns the current empty cell.
func (g *Grid) EmptyCell() Cell {
	return g.empty
}

// CellOf returns the cell currently holding the tile.
func (g *Grid) CellOf(t Tile) (Cell, bool) {
	if t <= NoTile || int(t) >= len(g.where) {
		return Cell{}, false
	}
	return g.where[t], true
}

// Home returns the cell a tile occupies when the puzzle is in order.
func (g *Grid) Home(t Tile) Cell {
	i := int(t) - 1
	return Cell{Row: i / g.dim, Col: i % g.dim}
}

// Swap moves the tile at c into the empty cell; c becomes the empty cell.
// It is the only mutator of the grid.
func (g *Grid) Swap(c Cell) error {
	if !g.InBounds(c) {
		return outOfBounds(c, g.dim)
	}
	if c == g.empty {
		return fmt.Errorf("%w: swap %v", ErrEmptyCell, c)
	}

	t := g.cells[g.index(c)]
	g.cells[g.index(g.empty)] = t
	g.where[t] = g.empty
	g.cells[g.index(c)] = NoTile
	g.empty = c
	return nil
}

// Solved returns true if every tile is on its home cell.
func (g *Grid) Solved() bool {
	for i := 0; i < len(g.cells)-1; i++ {
		if g.cells[i] != Tile(i+1) {
			return false
		}
	}
	return true
}

// Layout returns a row-major copy of the cell contents.
func (g *Grid) Layout() []Tile {
	out := make([]Tile, len(g.cells))
	copy(out, g.cells)
	return out
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{
		dim:   g.dim,
		cells: make([]Tile, len(g.cells)),
		where: make([]Cell, len(g.where)),
		empty: g.empty,
	}
	copy(c.cells, g.cells)
	copy(c.where, g.where)
	return c
}

// Validate checks the grid invariants: every non-empty cell holds a distinct
// tile, the reverse index agrees with the cells, and exactly one cell is empty
// and it is the recorded empty cell.
func (g *Grid) Validate() error {
	if !g.InBounds(g.empty) {
		return fmt.Errorf("puzzle: empty cell %v outside grid", g.empty)
	}

	seen := make([]bool, len(g.cells))
	empties := 0
	for i, t := range g.cells {
		c := Cell{Row: i / g.dim, Col: i % g.dim}
		if t == NoTile {
			empties++
			if c != g.empty {
				return fmt.Errorf("puzzle: cell %v is empty but empty cell is %v", c, g.empty)
			}
			continue
		}
		if t < 0 || int(t) >= len(g.cells) {
			return fmt.Errorf("puzzle: cell %v holds unknown %v", c, t)
		}
		if seen[t] {
			return fmt.Errorf("puzzle: %v appears twice", t)
		}
		seen[t] = true
		if g.where[t] != c {
			return fmt.Errorf("puzzle: reverse index puts %v at %v, found at %v", t, g.where[t], c)
		}
	}
	if empties != 1 {
		return fmt.Errorf("puzzle: %d empty cells", empties)
	}
	return nil
}
