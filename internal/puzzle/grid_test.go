package puzzle

import (
	"errors"
	"testing"
)

func TestNewGrid(t *testing.T) {
	g, err := NewGrid(3)
	if err != nil {
		t.Fatalf("NewGrid(3) failed: %v", err)
	}

	if g.Dimension() != 3 {
		t.Errorf("Dimension() = %d, expected 3", g.Dimension())
	}
	if g.EmptyCell() != At(2, 2) {
		t.Errorf("EmptyCell() = %v, expected (2,2)", g.EmptyCell())
	}

	// Tiles are placed left to right, top to bottom
	testCases := []struct {
		cell Cell
		tile Tile
	}{
		{At(0, 0), 1},
		{At(0, 2), 3},
		{At(1, 0), 4},
		{At(2, 1), 8},
		{At(2, 2), NoTile},
	}
	for _, tc := range testCases {
		got, err := g.Get(tc.cell)
		if err != nil {
			t.Fatalf("Get(%v) failed: %v", tc.cell, err)
		}
		if got != tc.tile {
			t.Errorf("Get(%v) = %v, expected %v", tc.cell, got, tc.tile)
		}
	}

	if err := g.Validate(); err != nil {
		t.Errorf("new grid should be valid: %v", err)
	}
	if !g.Solved() {
		t.Error("new grid should be in home order")
	}
}

func TestNewGridRejectsSmallDimension(t *testing.T) {
	for _, dim := range []int{-3, 0, 1} {
		_, err := NewGrid(dim)
		if !errors.Is(err, ErrConfiguration) {
			t.Errorf("NewGrid(%d) error = %v, expected ErrConfiguration", dim, err)
		}
		var cfgErr *ConfigurationError
		if !errors.As(err, &cfgErr) || cfgErr.Field != "dimension" {
			t.Errorf("NewGrid(%d) should return a dimension ConfigurationError, got %v", dim, err)
		}
	}
}

func TestGridGetOutOfBounds(t *testing.T) {
	g, _ := NewGrid(4)

	for _, c := range []Cell{At(-1, 0), At(0, -1), At(4, 0), At(0, 4), At(7, 7)} {
		if _, err := g.Get(c); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Get(%v) error = %v, expected ErrOutOfBounds", c, err)
		}
	}
}

func TestGridIsEmpty(t *testing.T) {
	g, _ := NewGrid(3)

	if !g.IsEmpty(At(2, 2)) {
		t.Error("(2,2) should be empty")
	}
	if g.IsEmpty(At(0, 0)) {
		t.Error("(0,0) should not be empty")
	}
}

func TestGridSwap(t *testing.T) {
	g, _ := NewGrid(3)

	if err := g.Swap(At(2, 1)); err != nil {
		t.Fatalf("Swap((2,1)) failed: %v", err)
	}

	if g.EmptyCell() != At(2, 1) {
		t.Errorf("EmptyCell() = %v, expected (2,1)", g.EmptyCell())
	}
	if tile, _ := g.Get(At(2, 2)); tile != 8 {
		t.Errorf("Get((2,2)) = %v, expected tile 8", tile)
	}
	if c, ok := g.CellOf(8); !ok || c != At(2, 2) {
		t.Errorf("CellOf(8) = %v, %v; expected (2,2)", c, ok)
	}
	if g.Solved() {
		t.Error("grid should not be solved after a swap")
	}
	if err := g.Validate(); err != nil {
		t.Errorf("grid invalid after swap: %v", err)
	}
}

func TestGridSwapPreconditions(t *testing.T) {
	g, _ := NewGrid(3)

	if err := g.Swap(At(2, 2)); !errors.Is(err, ErrEmptyCell) {
		t.Errorf("Swap(empty) error = %v, expected ErrEmptyCell", err)
	}
	if err := g.Swap(At(3, 0)); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Swap(out of bounds) error = %v, expected ErrOutOfBounds", err)
	}
	if g.EmptyCell() != At(2, 2) {
		t.Error("failed swaps must not change the grid")
	}
}

func TestGridClone(t *testing.T) {
	g, _ := NewGrid(3)
	clone := g.Clone()

	if err := g.Swap(At(1, 2)); err != nil {
		t.Fatal(err)
	}

	if clone.EmptyCell() != At(2, 2) {
		t.Error("clone should not follow the original")
	}
	if tile, _ := clone.Get(At(1, 2)); tile != 6 {
		t.Errorf("clone Get((1,2)) = %v, expected tile 6", tile)
	}
}

func TestGridHome(t *testing.T) {
	g, _ := NewGrid(4)

	for tile := Tile(1); tile < 16; tile++ {
		c, ok := g.CellOf(tile)
		if !ok {
			t.Fatalf("CellOf(%v) not found", tile)
		}
		if home := g.Home(tile); home != c {
			t.Errorf("Home(%v) = %v, expected %v", tile, home, c)
		}
	}

	if _, ok := g.CellOf(NoTile); ok {
		t.Error("CellOf(NoTile) should not be found")
	}
	if _, ok := g.CellOf(16); ok {
		t.Error("CellOf(16) should not be found on a 4x4 grid")
	}
}
