package puzzle

import "fmt"

// MoveRequest is a resolved move: the target cell, the unit offset every
// affected tile travels by, and the ordered range from the target to the
// empty cell, both ends included.
type MoveRequest struct {
	Target Cell
	Offset Offset
	Range  []Cell
}

// Tiles returns the cells of the range that hold tiles, i.e. the range
// without its final empty cell. Ordered from the target toward the empty cell.
func (r MoveRequest) Tiles() []Cell {
	if len(r.Range) == 0 {
		return nil
	}
	return r.Range[:len(r.Range)-1]
}

// Axis returns the axis of the move.
func (r MoveRequest) Axis() Axis {
	return r.Offset.Axis()
}

// ComputeOffset returns the unit step from target toward empty.
// Diagonal targets and the empty cell itself are not movable.
func ComputeOffset(target, empty Cell) (Offset, bool) {
	dRow := empty.Row - target.Row
	dCol := empty.Col - target.Col

	switch {
	case dRow != 0 && dCol != 0:
		return Offset{}, false
	case dRow == 0 && dCol == 0:
		return Offset{}, false
	case dRow != 0:
		return Offset{DRow: sign(dRow)}, true
	default:
		return Offset{DCol: sign(dCol)}, true
	}
}

func sign(v int) int {
	if v < 0 {
		return -1
	}
	return 1
}

// ComputeRange walks from target by off until it reaches empty, returning
// every visited cell including both ends. A walk that does not reach empty
// within dimension steps means the caller broke an invariant; it panics.
func ComputeRange(target, empty Cell, off Offset, dimension int) []Cell {
	cells := make([]Cell, 0, dimension)
	c := target
	for step := 0; step < dimension; step++ {
		cells = append(cells, c)
		if c == empty {
			return cells
		}
		c = c.Step(off)
	}
	panic(fmt.Sprintf("puzzle: range from %v by %v never reached empty cell %v", target, off, empty))
}

// Resolve builds the move request for target against the grid's current
// empty cell. ok is false when the target cannot move; err is set only for
// out of bounds targets.
func Resolve(g *Grid, target Cell) (req MoveRequest, ok bool, err error) {
	if !g.InBounds(target) {
		return MoveRequest{}, false, outOfBounds(target, g.Dimension())
	}

	empty := g.EmptyCell()
	off, ok := ComputeOffset(target, empty)
	if !ok {
		return MoveRequest{}, false, nil
	}

	return MoveRequest{
		Target: target,
		Offset: off,
		Range:  ComputeRange(target, empty, off, g.Dimension()),
	}, true, nil
}

// Apply performs the move on the grid. Tiles are swapped starting from the one
// next to the empty cell and working back to the target, so every swap touches
// the current empty cell. The request is checked up front; the grid is either
// fully updated or left untouched.
func Apply(g *Grid, req MoveRequest) error {
	if err := checkRequest(g, req); err != nil {
		return err
	}

	tiles := req.Tiles()
	for i := len(tiles) - 1; i >= 0; i-- {
		if err := g.Swap(tiles[i]); err != nil {
			// checkRequest rules this out
			panic(fmt.Sprintf("puzzle: swap %v failed mid-move: %v", tiles[i], err))
		}
	}
	return nil
}

// checkRequest verifies the range is a contiguous in-bounds walk by Offset
// that ends at the grid's empty cell.
func checkRequest(g *Grid, req MoveRequest) error {
	if len(req.Range) < 2 || req.Offset.Axis() == AxisNone {
		return fmt.Errorf("%w: empty or undirected range", ErrStaleMove)
	}
	if req.Range[0] != req.Target {
		return fmt.Errorf("%w: range starts at %v, target is %v", ErrStaleMove, req.Range[0], req.Target)
	}
	for i, c := range req.Range {
		if !g.InBounds(c) {
			return outOfBounds(c, g.Dimension())
		}
		if i > 0 && req.Range[i-1].Step(req.Offset) != c {
			return fmt.Errorf("%w: range breaks at %v", ErrStaleMove, c)
		}
	}
	if last := req.Range[len(req.Range)-1]; last != g.EmptyCell() {
		return fmt.Errorf("%w: ends at %v, empty cell is %v", ErrStaleMove, last, g.EmptyCell())
	}
	return nil
}
