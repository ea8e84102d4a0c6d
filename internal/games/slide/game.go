// Package slide is the sliding-tile puzzle game for the terminal platform.
// It wires the puzzle model to mouse input, tile animation and the screen.
package slide

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-slide/internal/config"
	"github.com/vovakirdan/tui-slide/internal/core"
	"github.com/vovakirdan/tui-slide/internal/puzzle"
	"github.com/vovakirdan/tui-slide/internal/registry"
)

// Screen layout
const (
	hudHeight    = 3 // Title, counters, status
	footerHeight = 1 // Controls hint
	maxTileH     = 5 // Fitted tiles never grow taller than this
	minFitTileW  = 4 // Narrowest fitted tile that still shows a two-digit label
)

// Package-level variables for config
var (
	configPath string
	sizePreset config.SizePreset
	logger     = log.New(io.Discard)
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetSizePreset sets the board size preset for the configurable game.
func SetSizePreset(preset string) {
	sizePreset = config.SizePreset(preset)
}

// SetLogger sets the logger used by games created afterwards.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// Game implements the sliding puzzle.
type Game struct {
	id        string
	title     string
	dimension int // 0 takes the dimension from config

	cfg    config.SlideConfig
	colors config.ThemeColors
	logger *log.Logger

	puzzle  *puzzle.Puzzle
	tiles   *tweenRenderer
	pointer *pointerService

	tick     uint64
	tickRate int
	screenW  int
	screenH  int
	boardW   int
	boardH   int
	origin   core.Point // Board top-left on screen

	paused   bool
	tooSmall bool
}

// New creates a puzzle game with a fixed dimension.
func New(id, title string, dimension int) *Game {
	return &Game{
		id:        id,
		title:     title,
		dimension: dimension,
	}
}

// NewConfigurable creates the puzzle whose dimension comes from config.
func NewConfigurable() *Game {
	return &Game{
		id:    "slide",
		title: "Sliding Puzzle",
	}
}

func init() {
	registry.Register("slide", func() registry.Game {
		return NewConfigurable()
	})
	registry.Register("8-puzzle", func() registry.Game {
		return New("8-puzzle", "8-Puzzle (3x3)", 3)
	})
	registry.Register("15-puzzle", func() registry.Game {
		return New("15-puzzle", "15-Puzzle (4x4)", 4)
	})
	registry.Register("24-puzzle", func() registry.Game {
		return New("24-puzzle", "24-Puzzle (5x5)", 5)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Dimension returns the grid size in use, or the fixed size before Reset.
func (g *Game) Dimension() int {
	if g.puzzle != nil {
		return g.puzzle.Dimension()
	}
	if g.dimension > 0 {
		return g.dimension
	}
	return g.cfg.Board.Dimension
}

// Reset loads config and builds a fresh board in the home arrangement.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.logger = logger
	g.cfg = loadConfig(g.logger)
	g.colors, _ = g.cfg.Theme.Colors() // validated by loadConfig
	if g.dimension > 0 {
		g.cfg.Board.Dimension = g.dimension
	}

	g.tick = 0
	g.tickRate = cfg.TickRate
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false
	g.puzzle = nil
	g.pointer = nil

	g.layout()
	if g.tooSmall {
		g.logger.Debug("board does not fit", "screen", fmt.Sprintf("%dx%d", g.screenW, g.screenH))
		return
	}
	if err := g.build(); err != nil {
		g.logger.Error("cannot build puzzle", "error", err)
		g.tooSmall = true
	}
}

// Resize follows a terminal resize. The board keeps its arrangement and tile
// size; it is only recentered, or paused if it no longer fits.
func (g *Game) Resize(cfg core.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	if g.puzzle == nil {
		g.Reset(cfg)
		return
	}

	g.center()
	g.tooSmall = !g.fits(g.boardW, g.boardH)
	if g.tooSmall {
		g.pointer.CaptureLost()
	}
}

// loadConfig reads the slide config, falling back to defaults on any error.
func loadConfig(l *log.Logger) config.SlideConfig {
	cfg, err := config.LoadSlide(configPath)
	if err != nil {
		l.Warn("using default config", "error", err)
		cfg = config.DefaultSlideConfig()
	}
	if err := config.ApplySizePreset(&cfg, sizePreset); err != nil {
		l.Warn("ignoring size preset", "error", err)
	}
	if err := cfg.Validate(); err != nil {
		l.Warn("using default config", "error", err)
		cfg = config.DefaultSlideConfig()
	}
	return cfg
}

// layout picks the board size and position for the current screen.
func (g *Game) layout() {
	dim := g.cfg.Board.Dimension
	w, h := g.cfg.Board.Width, g.cfg.Board.Height

	if w == 0 || h == 0 {
		tileW, tileH := fitTile(dim, g.availW(), g.availH())
		if w == 0 {
			w = tileW * dim
		}
		if h == 0 {
			h = tileH * dim
		}
	}

	g.boardW, g.boardH = w, h
	g.center()

	tileW, tileH := w/dim, h/dim
	g.tooSmall = !g.fits(w, h) || tileW < 2 || tileH < 1
	if g.cfg.Board.Width == 0 && tileW < minFitTileW {
		g.tooSmall = true
	}
}

// fitTile returns the largest tile that fits the available area with a
// roughly square look (terminal cells are about twice as tall as wide).
func fitTile(dim, availW, availH int) (w, h int) {
	h = core.Min(availH/dim, maxTileH)
	if h < 1 {
		return 0, 0
	}
	w = core.Min(availW/dim, 2*h+2)
	return w, h
}

// availW and availH leave room for the board frame, HUD and footer.
func (g *Game) availW() int {
	return g.screenW - 2
}

func (g *Game) availH() int {
	return g.screenH - hudHeight - footerHeight - 2
}

func (g *Game) fits(w, h int) bool {
	return w > 0 && h > 0 && w <= g.availW() && h <= g.availH()
}

// center places the board below the HUD, centered horizontally.
func (g *Game) center() {
	x := (g.screenW - g.boardW) / 2
	if x < 1 {
		x = 1
	}
	g.origin = core.Pt(x, hudHeight+1)
	if g.pointer != nil {
		g.pointer.SetOrigin(g.origin)
	}
}

// build creates the puzzle and its pointer and animation services.
func (g *Game) build() error {
	dim := g.cfg.Board.Dimension
	g.tiles = newTweenRenderer(dim*dim-1, g.tickRate)

	p, err := puzzle.New(puzzle.Config{
		Dimension:     dim,
		Width:         g.boardW,
		Height:        g.boardH,
		SlideDuration: g.cfg.Animation.SlideDuration(),
	}, puzzle.WithRenderer(g.tiles), puzzle.WithLogger(g.logger))
	if err != nil {
		return err
	}

	g.puzzle = p
	g.pointer = newPointerService(p, g.origin, g.logger)
	tileW, tileH := p.TileSize()
	g.logger.Info("puzzle ready", "game", g.id, "dimension", dim, "tile", fmt.Sprintf("%dx%d", tileW, tileH))
	return nil
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	// Handle window size check
	if g.tooSmall || g.puzzle == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionCaptureLost) {
		g.pointer.CaptureLost()
	}

	// Handle pause
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
		if g.paused {
			g.pointer.CaptureLost()
		}
	}

	if !g.paused {
		for _, ev := range in.Pointer {
			g.pointer.Handle(ev)
		}
	}

	g.tiles.Advance()
	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	state := core.GameState{Paused: g.paused || g.tooSmall}
	if g.puzzle != nil {
		state.Moves = g.puzzle.Stats().Moves
		state.Solved = g.puzzle.Solved()
	}
	return state
}

// Stats returns the counters of the current board.
func (g *Game) Stats() core.SessionStats {
	stats := core.SessionStats{Dimension: g.Dimension()}
	if g.puzzle == nil {
		return stats
	}
	s := g.puzzle.Stats()
	stats.Moves = s.Moves
	stats.Clicks = s.Clicks
	stats.DragsCommitted = s.DragsCommitted
	stats.DragsCancelled = s.DragsCancelled
	stats.Solved = g.puzzle.Solved()
	return stats
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Click: Move | Drag: Slide | P: Pause | R: Reset | Q: Quit"
}
