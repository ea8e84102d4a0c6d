package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Moves  int  // Committed moves since the last reset
	Solved bool // Every tile sits on its home cell
	Paused bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

// SessionStats summarizes one play session for the statistics store.
type SessionStats struct {
	Dimension      int // Tiles per row and column
	Moves          int // Committed moves
	Clicks         int // Moves made by clicking
	DragsCommitted int // Moves made by dragging
	DragsCancelled int // Drags released before the midway point or aborted
	Solved         bool
}
