// Package puzzle implements the N×N sliding-tile puzzle: the grid model, move
// resolution along the empty cell's row or column, and the drag state machine
// that turns a pointer gesture into a committed or rolled back move.
//
// The package is UI-agnostic. Rendering and pointer capture are supplied by the
// caller through the Renderer and DragHandler interfaces.
package puzzle

import "fmt"

// Cell is a (row, col) coordinate in the grid, 0-indexed.
type Cell struct {
	Row int
	Col int
}

// At is a convenience constructor for Cell.
func At(row, col int) Cell {
	return Cell{Row: row, Col: col}
}

// String returns a string representation of the cell.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Step returns the cell one offset away.
func (c Cell) Step(o Offset) Cell {
	return Cell{Row: c.Row + o.DRow, Col: c.Col + o.DCol}
}

// Axis is the screen axis a move travels along.
type Axis uint8

const (
	AxisNone Axis = iota
	AxisX         // along a row
	AxisY         // along a column
)

// String returns the string representation of an axis.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	default:
		return "none"
	}
}

// Offset is a unit step along one axis. Exactly one component is non-zero
// and it is either -1 or +1.
type Offset struct {
	DRow int
	DCol int
}

// Axis returns the axis of the non-zero component.
func (o Offset) Axis() Axis {
	switch {
	case o.DCol != 0 && o.DRow == 0:
		return AxisX
	case o.DRow != 0 && o.DCol == 0:
		return AxisY
	default:
		return AxisNone
	}
}

// Sign returns the value of the non-zero component.
func (o Offset) Sign() int {
	return o.DRow + o.DCol
}

// String returns a string representation of the offset.
func (o Offset) String() string {
	return fmt.Sprintf("(%+d,%+d)", o.DRow, o.DCol)
}

// Tile is an opaque handle for one puzzle piece. The grid only compares tiles
// by identity.
type Tile int

// NoTile marks the empty cell.
const NoTile Tile = 0

// String returns a string representation of the tile.
func (t Tile) String() string {
	if t == NoTile {
		return "empty"
	}
	return fmt.Sprintf("tile#%d", int(t))
}
