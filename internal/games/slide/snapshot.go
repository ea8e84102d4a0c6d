package slide

import "github.com/vovakirdan/tui-slide/internal/puzzle"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateDragging    GameStateType = "dragging"
	StateSolved      GameStateType = "solved"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for tests and debugging.
type Snapshot struct {
	Tick      uint64
	Dimension int
	Layout    []puzzle.Tile // Row-major, NoTile marks the empty cell
	Empty     puzzle.Cell
	Moves     int
	Animating bool
	State     GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:      g.tick,
		Dimension: g.Dimension(),
		State:     StatePlaying,
	}
	if g.puzzle == nil {
		snap.State = StatePausedSmall
		return snap
	}

	snap.Layout = g.puzzle.Layout()
	snap.Empty = g.puzzle.EmptyCell()
	snap.Moves = g.puzzle.Stats().Moves
	snap.Animating = g.tiles.Animating()

	switch {
	case g.tooSmall:
		snap.State = StatePausedSmall
	case g.paused:
		snap.State = StatePaused
	case g.puzzle.Dragging():
		snap.State = StateDragging
	case g.puzzle.Solved():
		snap.State = StateSolved
	}
	return snap
}
