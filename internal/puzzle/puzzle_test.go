package puzzle

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/tui-slide/internal/core"
)

// recordingRenderer keeps the last placement and slide target of each tile.
type recordingRenderer struct {
	placed map[Tile]core.Rect
	slides map[Tile]core.Point
	count  int
}

func newRecordingRenderer() *recordingRenderer {
	return &recordingRenderer{
		placed: make(map[Tile]core.Rect),
		slides: make(map[Tile]core.Point),
	}
}

func (r *recordingRenderer) Place(t Tile, rect core.Rect) {
	r.placed[t] = rect
}

func (r *recordingRenderer) Slide(t Tile, _ time.Duration, top, left int, onComplete func()) {
	r.slides[t] = core.Pt(left, top)
	r.count++
	if onComplete != nil {
		onComplete()
	}
}

// newTestPuzzle builds a 3x3 puzzle with 10x10 tiles.
func newTestPuzzle(t *testing.T) (*Puzzle, *recordingRenderer) {
	t.Helper()
	r := newRecordingRenderer()
	p, err := New(Config{Dimension: 3, Width: 30, Height: 30}, WithRenderer(r))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return p, r
}

func tileAt(t *testing.T, p *Puzzle, c Cell) Tile {
	t.Helper()
	tile, err := p.Tile(c)
	if err != nil {
		t.Fatalf("Tile(%v) failed: %v", c, err)
	}
	return tile
}

func TestNewPlacesEveryTile(t *testing.T) {
	p, r := newTestPuzzle(t)

	if len(r.placed) != 8 {
		t.Fatalf("placed %d tiles, expected 8", len(r.placed))
	}
	if got := r.placed[5]; got != core.NewRect(10, 10, 10, 10) {
		t.Errorf("tile 5 placed at %+v, expected (10,10) 10x10", got)
	}
	if w, h := p.TileSize(); w != 10 || h != 10 {
		t.Errorf("TileSize() = %dx%d, expected 10x10", w, h)
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name  string
		cfg   Config
		field string
	}{
		{"dimension too small", Config{Dimension: 1, Width: 30, Height: 30}, "dimension"},
		{"tiles too narrow", Config{Dimension: 4, Width: 7, Height: 20}, "width"},
		{"tiles too short", Config{Dimension: 4, Width: 40, Height: 3}, "height"},
		{"negative duration", Config{Dimension: 3, Width: 30, Height: 30, SlideDuration: -time.Second}, "slide duration"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.cfg)
			var cfgErr *ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("New() error = %v, expected ConfigurationError", err)
			}
			if cfgErr.Field != tc.field {
				t.Errorf("Field = %q, expected %q", cfgErr.Field, tc.field)
			}
		})
	}
}

func TestClickMovesRow(t *testing.T) {
	p, r := newTestPuzzle(t)

	moved, err := p.HandleClick(At(2, 0))
	if err != nil || !moved {
		t.Fatalf("HandleClick((2,0)) = %v, %v; expected true, nil", moved, err)
	}

	if p.EmptyCell() != At(2, 0) {
		t.Errorf("EmptyCell() = %v, expected (2,0)", p.EmptyCell())
	}
	if tile := tileAt(t, p, At(2, 1)); tile != 7 {
		t.Errorf("(2,1) holds %v, expected tile 7", tile)
	}
	if tile := tileAt(t, p, At(2, 2)); tile != 8 {
		t.Errorf("(2,2) holds %v, expected tile 8", tile)
	}

	// Both tiles glide to their new cells
	if got := r.slides[7]; got != core.Pt(10, 20) {
		t.Errorf("tile 7 slid to %v, expected (10,20)", got)
	}
	if got := r.slides[8]; got != core.Pt(20, 20) {
		t.Errorf("tile 8 slid to %v, expected (20,20)", got)
	}
	if s := p.Stats(); s.Moves != 1 || s.Clicks != 1 {
		t.Errorf("Stats() = %+v, expected one move by click", s)
	}
}

func TestClickIgnored(t *testing.T) {
	tests := []struct {
		name string
		cell Cell
	}{
		{"diagonal", At(0, 0)},
		{"off line", At(1, 0)},
		{"empty cell", At(2, 2)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, r := newTestPuzzle(t)
			before := p.Layout()

			moved, err := p.HandleClick(tc.cell)
			if err != nil || moved {
				t.Errorf("HandleClick(%v) = %v, %v; expected false, nil", tc.cell, moved, err)
			}
			if !equalLayout(p.Layout(), before) {
				t.Error("grid should be unchanged")
			}
			if r.count != 0 {
				t.Errorf("%d slides requested, expected none", r.count)
			}
		})
	}
}

func TestClickOutOfBounds(t *testing.T) {
	p, _ := newTestPuzzle(t)

	if _, err := p.HandleClick(At(3, 2)); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("HandleClick((3,2)) error = %v, expected ErrOutOfBounds", err)
	}
}

func TestRandomClicksPreserveInvariants(t *testing.T) {
	for _, dim := range []int{2, 3, 4, 5} {
		p, err := New(Config{Dimension: dim, Width: dim * 4, Height: dim * 2})
		if err != nil {
			t.Fatalf("New(%d) failed: %v", dim, err)
		}
		rng := rand.New(rand.NewSource(int64(dim)))

		moves := 0
		for i := 0; i < 500; i++ {
			c := At(rng.Intn(dim), rng.Intn(dim))
			empty := p.EmptyCell()
			movable := c != empty && (c.Row == empty.Row || c.Col == empty.Col)

			moved, err := p.HandleClick(c)
			if err != nil {
				t.Fatalf("dim %d: HandleClick(%v) failed: %v", dim, c, err)
			}
			if moved != movable {
				t.Fatalf("dim %d: HandleClick(%v) = %v with empty %v", dim, c, moved, empty)
			}
			if moved {
				moves++
				if p.EmptyCell() != c {
					t.Fatalf("dim %d: empty cell %v, expected clicked cell %v", dim, p.EmptyCell(), c)
				}
			}
			if err := p.grid.Validate(); err != nil {
				t.Fatalf("dim %d after click %v: %v", dim, c, err)
			}
		}
		if p.Stats().Moves != moves {
			t.Errorf("dim %d: Stats().Moves = %d, expected %d", dim, p.Stats().Moves, moves)
		}
	}
}

func TestDragCommits(t *testing.T) {
	p, r := newTestPuzzle(t)

	if !p.OnDragStart(DragStart{Cell: At(1, 2), Pointer: core.Pt(25, 15), Contacts: 1}) {
		t.Fatal("OnDragStart((1,2)) should be accepted")
	}
	if !p.Dragging() {
		t.Error("Dragging() should be true")
	}
	if got := p.DraggedTiles(); len(got) != 1 || got[0] != 6 {
		t.Errorf("DraggedTiles() = %v, expected [tile 6]", got)
	}

	p.OnDragMove(DragMove{Pointer: core.Pt(25, 21), Contacts: 1})
	if got := r.placed[6]; got != core.NewRect(20, 16, 10, 10) {
		t.Errorf("tile 6 placed at %+v during drag, expected (20,16)", got)
	}

	p.OnDragEnd(DragEnd{Pointer: core.Pt(25, 21)})

	if p.Dragging() {
		t.Error("Dragging() should be false after release")
	}
	if p.EmptyCell() != At(1, 2) {
		t.Errorf("EmptyCell() = %v, expected (1,2)", p.EmptyCell())
	}
	if tile := tileAt(t, p, At(2, 2)); tile != 6 {
		t.Errorf("(2,2) holds %v, expected tile 6", tile)
	}
	if got := r.slides[6]; got != core.Pt(20, 20) {
		t.Errorf("tile 6 slid to %v, expected (20,20)", got)
	}
	if s := p.Stats(); s.Moves != 1 || s.DragsCommitted != 1 || s.Clicks != 0 {
		t.Errorf("Stats() = %+v, expected one committed drag", s)
	}
}

func TestDragRollsBack(t *testing.T) {
	p, r := newTestPuzzle(t)
	before := p.Layout()

	p.OnDragStart(DragStart{Cell: At(2, 0), Pointer: core.Pt(5, 25), Contacts: 1})
	p.OnDragMove(DragMove{Pointer: core.Pt(9, 25), Contacts: 1})

	// Both tiles in the range follow the pointer
	if got := r.placed[7]; got.X != 4 {
		t.Errorf("tile 7 at x=%d during drag, expected 4", got.X)
	}
	if got := r.placed[8]; got.X != 14 {
		t.Errorf("tile 8 at x=%d during drag, expected 14", got.X)
	}

	p.OnDragEnd(DragEnd{Pointer: core.Pt(9, 25)})

	if !equalLayout(p.Layout(), before) {
		t.Error("grid should be unchanged after a short drag")
	}
	if got := r.slides[7]; got != core.Pt(0, 20) {
		t.Errorf("tile 7 slid to %v, expected back to (0,20)", got)
	}
	if got := r.slides[8]; got != core.Pt(10, 20) {
		t.Errorf("tile 8 slid to %v, expected back to (10,20)", got)
	}
	if s := p.Stats(); s.Moves != 0 || s.DragsCancelled != 1 {
		t.Errorf("Stats() = %+v, expected one cancelled drag", s)
	}
}

func TestDragStartRejected(t *testing.T) {
	tests := []struct {
		name string
		ev   DragStart
	}{
		{"diagonal tile", DragStart{Cell: At(0, 0), Contacts: 1}},
		{"empty cell", DragStart{Cell: At(2, 2), Contacts: 1}},
		{"out of bounds", DragStart{Cell: At(5, 5), Contacts: 1}},
		{"two contacts", DragStart{Cell: At(1, 2), Contacts: 2}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, _ := newTestPuzzle(t)
			if p.OnDragStart(tc.ev) {
				t.Error("OnDragStart() should be rejected")
			}
			if p.Dragging() {
				t.Error("no session should be active")
			}
		})
	}
}

func TestDragStartIgnoredWhileActive(t *testing.T) {
	p, _ := newTestPuzzle(t)

	p.OnDragStart(DragStart{Cell: At(1, 2), Pointer: core.Pt(25, 15), Contacts: 1})
	if p.OnDragStart(DragStart{Cell: At(2, 1), Pointer: core.Pt(15, 25), Contacts: 1}) {
		t.Error("second OnDragStart() should be ignored")
	}
	if got := p.DraggedTiles(); len(got) != 1 || got[0] != 6 {
		t.Errorf("DraggedTiles() = %v, expected the first session", got)
	}
}

func TestClickIgnoredWhileDragging(t *testing.T) {
	p, _ := newTestPuzzle(t)

	p.OnDragStart(DragStart{Cell: At(1, 2), Pointer: core.Pt(25, 15), Contacts: 1})
	if moved, _ := p.HandleClick(At(2, 1)); moved {
		t.Error("HandleClick() should do nothing during a drag")
	}
	if p.EmptyCell() != At(2, 2) {
		t.Error("grid should be unchanged")
	}
}

func TestSecondContactCancelsDrag(t *testing.T) {
	p, r := newTestPuzzle(t)

	p.OnDragStart(DragStart{Cell: At(1, 2), Pointer: core.Pt(25, 15), Contacts: 1})
	p.OnDragMove(DragMove{Pointer: core.Pt(25, 22), Contacts: 1})
	p.OnDragMove(DragMove{Pointer: core.Pt(25, 23), Contacts: 2})

	if p.Dragging() {
		t.Error("a second contact should end the session")
	}
	if p.EmptyCell() != At(2, 2) {
		t.Error("grid should be unchanged")
	}
	if got := r.slides[6]; got != core.Pt(20, 10) {
		t.Errorf("tile 6 slid to %v, expected back to (20,10)", got)
	}

	// Later samples and releases have no session to act on
	p.OnDragMove(DragMove{Pointer: core.Pt(25, 28), Contacts: 1})
	p.OnDragEnd(DragEnd{Pointer: core.Pt(25, 28)})
	if p.EmptyCell() != At(2, 2) {
		t.Error("release after cancel should not move tiles")
	}
}

func TestCaptureLossCancelsDrag(t *testing.T) {
	p, r := newTestPuzzle(t)

	p.OnDragStart(DragStart{Cell: At(1, 2), Pointer: core.Pt(25, 15), Contacts: 1})
	p.OnDragMove(DragMove{Pointer: core.Pt(25, 24), Contacts: 1})
	p.OnDragCancel()

	if p.Dragging() {
		t.Error("capture loss should end the session")
	}
	if p.EmptyCell() != At(2, 2) {
		t.Error("grid should be unchanged even past midway")
	}
	if got := r.slides[6]; got != core.Pt(20, 10) {
		t.Errorf("tile 6 slid to %v, expected back to (20,10)", got)
	}
	if p.Stats().DragsCancelled != 1 {
		t.Errorf("DragsCancelled = %d, expected 1", p.Stats().DragsCancelled)
	}

	// Cancel without a session is a no-op
	p.OnDragCancel()
	if p.Stats().DragsCancelled != 1 {
		t.Error("idle cancel should not be counted")
	}
}

func TestPressReleaseWithoutMotion(t *testing.T) {
	p, _ := newTestPuzzle(t)

	p.OnDragStart(DragStart{Cell: At(1, 2), Pointer: core.Pt(25, 15), Contacts: 1})
	p.OnDragEnd(DragEnd{Pointer: core.Pt(25, 15)})

	if p.EmptyCell() != At(2, 2) {
		t.Error("a press without motion should not commit")
	}
	if p.Stats().DragsCancelled != 0 {
		t.Error("a press without motion should not count as a cancelled drag")
	}
}

func TestCellAt(t *testing.T) {
	p, err := New(Config{Dimension: 4, Width: 32, Height: 12})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		point core.Point
		cell  Cell
		ok    bool
	}{
		{core.Pt(0, 0), At(0, 0), true},
		{core.Pt(7, 2), At(0, 0), true},
		{core.Pt(8, 3), At(1, 1), true},
		{core.Pt(31, 11), At(3, 3), true},
		{core.Pt(32, 0), At(0, 4), false},
		{core.Pt(-1, 0), Cell{}, false},
	}
	for _, tc := range tests {
		c, ok := p.CellAt(tc.point)
		if ok != tc.ok || (ok && c != tc.cell) {
			t.Errorf("CellAt(%v) = %v, %v; expected %v, %v", tc.point, c, ok, tc.cell, tc.ok)
		}
	}

	if got := p.Position(At(2, 3)); got != core.NewRect(24, 6, 8, 3) {
		t.Errorf("Position((2,3)) = %+v, expected (24,6) 8x3", got)
	}
}

func TestSolvedAfterRoundTrip(t *testing.T) {
	p, _ := newTestPuzzle(t)

	p.HandleClick(At(0, 2))
	if p.Solved() {
		t.Error("puzzle should not be solved after a move")
	}
	p.HandleClick(At(2, 2))
	if !p.Solved() {
		t.Error("moving the column back should restore home order")
	}
}

func equalLayout(a, b []Tile) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
