package puzzle

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-slide/internal/core"
)

// DefaultSlideDuration is how long a tile takes to glide to its rest position.
const DefaultSlideDuration = 200 * time.Millisecond

// Renderer places and animates tile visuals. Positions are in screen cells
// relative to the board's top-left corner.
type Renderer interface {
	// Place moves a tile visual immediately.
	Place(tile Tile, rect core.Rect)

	// Slide animates a tile visual toward (top, left). onComplete may be nil
	// and is never needed for the grid to stay correct.
	Slide(tile Tile, duration time.Duration, top, left int, onComplete func())
}

// DragStart is delivered when a pointer goes down over a cell.
type DragStart struct {
	Cell     Cell
	Pointer  core.Point
	Contacts int
}

// DragMove is delivered for each pointer sample while captured.
type DragMove struct {
	Pointer  core.Point
	Contacts int
}

// DragEnd is delivered when the capturing pointer is released.
type DragEnd struct {
	Pointer core.Point
}

// DragHandler receives gestures from a pointer capture service.
type DragHandler interface {
	// OnDragStart reports whether the gesture was accepted.
	OnDragStart(ev DragStart) bool
	OnDragMove(ev DragMove)
	OnDragEnd(ev DragEnd)
	// OnDragCancel reports loss of pointer capture.
	OnDragCancel()
}

// Config holds the construction parameters of a puzzle.
type Config struct {
	Dimension     int           // Tiles per row and column
	Width         int           // Board width in screen cells
	Height        int           // Board height in screen cells
	SlideDuration time.Duration // Zero means DefaultSlideDuration
}

// TileSize returns the tile width and height derived from the board size.
func (c Config) TileSize() (w, h int) {
	if c.Dimension <= 0 {
		return 0, 0
	}
	return c.Width / c.Dimension, c.Height / c.Dimension
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.Dimension < MinDimension {
		return &ConfigurationError{Field: "dimension", Value: c.Dimension, Reason: "must be an integer >= 2"}
	}
	w, h := c.TileSize()
	if w < 2 {
		return &ConfigurationError{Field: "width", Value: c.Width, Reason: "tiles must be at least 2 cells wide"}
	}
	if h < 1 {
		return &ConfigurationError{Field: "height", Value: c.Height, Reason: "tiles must be at least 1 cell tall"}
	}
	if c.SlideDuration < 0 {
		return &ConfigurationError{Field: "slide duration", Value: c.SlideDuration, Reason: "must not be negative"}
	}
	return nil
}

// Stats counts what happened to a puzzle since it was created.
type Stats struct {
	Moves          int // committed moves, by click or drag
	Clicks         int // clicks that moved tiles
	DragsCommitted int
	DragsCancelled int
}

// Puzzle routes clicks and drag gestures to the grid and asks the renderer to
// show the result. It implements DragHandler.
type Puzzle struct {
	grid          *Grid
	drag          *DragController
	tileW         int
	tileH         int
	slideDuration time.Duration
	renderer      Renderer
	logger        *log.Logger
	stats         Stats
}

var _ DragHandler = (*Puzzle)(nil)

// Option configures a Puzzle.
type Option func(*Puzzle)

// WithRenderer sets the renderer that receives Place and Slide requests.
func WithRenderer(r Renderer) Option {
	return func(p *Puzzle) {
		p.renderer = r
	}
}

// WithLogger sets the logger for gesture decisions.
func WithLogger(l *log.Logger) Option {
	return func(p *Puzzle) {
		if l != nil {
			p.logger = l
		}
	}
}

// New creates a puzzle in the home arrangement and places every tile.
func New(cfg Config, opts ...Option) (*Puzzle, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	grid, err := NewGrid(cfg.Dimension)
	if err != nil {
		return nil, err
	}

	tileW, tileH := cfg.TileSize()
	p := &Puzzle{
		grid:          grid,
		drag:          NewDragController(tileW, tileH),
		tileW:         tileW,
		tileH:         tileH,
		slideDuration: cfg.SlideDuration,
		renderer:      nopRenderer{},
		logger:        log.New(io.Discard),
	}
	if p.slideDuration == 0 {
		p.slideDuration = DefaultSlideDuration
	}
	for _, opt := range opts {
		opt(p)
	}

	for i, t := range grid.Layout() {
		if t == NoTile {
			continue
		}
		p.renderer.Place(t, p.Position(Cell{Row: i / cfg.Dimension, Col: i % cfg.Dimension}))
	}
	return p, nil
}

// Dimension returns the grid size N.
func (p *Puzzle) Dimension() int {
	return p.grid.Dimension()
}

// TileSize returns the tile width and height in screen cells.
func (p *Puzzle) TileSize() (w, h int) {
	return p.tileW, p.tileH
}

// Tile returns the tile at cell.
func (p *Puzzle) Tile(c Cell) (Tile, error) {
	return p.grid.Get(c)
}

// EmptyCell returns the current empty cell.
func (p *Puzzle) EmptyCell() Cell {
	return p.grid.EmptyCell()
}

// Layout returns a row-major copy of the grid contents.
func (p *Puzzle) Layout() []Tile {
	return p.grid.Layout()
}

// Solved returns true if every tile sits on its home cell.
func (p *Puzzle) Solved() bool {
	return p.grid.Solved()
}

// Stats returns the move counters.
func (p *Puzzle) Stats() Stats {
	return p.stats
}

// Dragging returns true while a drag session is armed or tracking.
func (p *Puzzle) Dragging() bool {
	return p.drag.Active()
}

// DraggedTiles returns the tiles moving with the active drag, or nil.
func (p *Puzzle) DraggedTiles() []Tile {
	s := p.drag.Session()
	if s == nil {
		return nil
	}
	return p.tilesAt(s.Request.Tiles())
}

// Position returns the rest rectangle of a cell on the board.
func (p *Puzzle) Position(c Cell) core.Rect {
	return core.NewRect(c.Col*p.tileW, c.Row*p.tileH, p.tileW, p.tileH)
}

// CellAt returns the cell under a board-relative point.
func (p *Puzzle) CellAt(pt core.Point) (Cell, bool) {
	if pt.X < 0 || pt.Y < 0 {
		return Cell{}, false
	}
	c := Cell{Row: pt.Y / p.tileH, Col: pt.X / p.tileW}
	return c, p.grid.InBounds(c)
}

// HandleClick moves the clicked tile and every tile between it and the empty
// cell. Clicks on the empty cell, off-line cells, or during a drag do nothing.
func (p *Puzzle) HandleClick(c Cell) (bool, error) {
	if p.drag.Active() {
		return false, nil
	}
	req, ok, err := Resolve(p.grid, c)
	if err != nil {
		return false, err
	}
	if !ok {
		p.logger.Debug("click ignored", "cell", c, "empty", p.grid.EmptyCell())
		return false, nil
	}

	if err := p.commit(req); err != nil {
		return false, err
	}
	p.stats.Clicks++
	p.logger.Debug("click moved tiles", "cell", c, "offset", req.Offset, "count", len(req.Tiles()))
	return true, nil
}

// OnDragStart arms a drag if the cell is movable and no drag is active.
func (p *Puzzle) OnDragStart(ev DragStart) bool {
	if p.drag.Active() {
		p.logger.Debug("drag start ignored, session active", "cell", ev.Cell)
		return false
	}
	if ev.Contacts > 1 {
		p.logger.Debug("drag start rejected, multiple contacts", "contacts", ev.Contacts)
		return false
	}

	req, ok, err := Resolve(p.grid, ev.Cell)
	if err != nil || !ok {
		return false
	}

	s, ok := p.drag.Begin(req, p.Position(ev.Cell).Origin(), ev.Pointer)
	if !ok {
		return false
	}
	p.logger.Debug("drag armed", "cell", ev.Cell, "axis", s.Axis, "bounds", s.Bounds)
	return true
}

// OnDragMove slides every tile of the active range by the accepted offset.
func (p *Puzzle) OnDragMove(ev DragMove) {
	if !p.drag.Active() {
		return
	}
	if ev.Contacts > 1 {
		p.logger.Debug("drag cancelled, multiple contacts", "contacts", ev.Contacts)
		p.OnDragCancel()
		return
	}
	if _, ok := p.drag.Track(ev.Pointer); !ok {
		return
	}

	s := p.drag.Session()
	dx, dy := s.Offset()
	for _, c := range s.Request.Tiles() {
		t, err := p.grid.Get(c)
		if err != nil {
			continue
		}
		p.renderer.Place(t, p.Position(c).Moved(dx, dy))
	}
}

// OnDragEnd commits or rolls back the active drag. The decision uses the last
// accepted sample, not the release position.
func (p *Puzzle) OnDragEnd(_ DragEnd) {
	if !p.drag.Active() {
		return
	}
	s := p.drag.Release()
	if s.State != DragCommitted {
		p.rollback(s, "below threshold")
		return
	}

	if err := p.commit(s.Request); err != nil {
		// The grid cannot change during a session; treat it like a cancel.
		p.logger.Error("drag commit failed", "error", err)
		p.rollback(s, "commit failed")
		return
	}
	p.stats.DragsCommitted++
	p.logger.Debug("drag committed", "cell", s.Request.Target, "displacement", s.Displacement)
}

// OnDragCancel rolls back the active drag.
func (p *Puzzle) OnDragCancel() {
	if s := p.drag.Abort(); s != nil {
		p.rollback(s, "capture lost")
	}
}

// commit applies req and slides every moved tile to its new rest position.
func (p *Puzzle) commit(req MoveRequest) error {
	if err := Apply(p.grid, req); err != nil {
		return err
	}
	for _, c := range req.Tiles() {
		dest := c.Step(req.Offset)
		t, err := p.grid.Get(dest)
		if err != nil {
			continue
		}
		p.slideTo(t, dest)
	}
	p.stats.Moves++
	return nil
}

// rollback slides the tiles of a cancelled session back to their rest cells.
func (p *Puzzle) rollback(s *DragSession, reason string) {
	for _, c := range s.Request.Tiles() {
		if t, err := p.grid.Get(c); err == nil {
			p.slideTo(t, c)
		}
	}
	if s.Samples > 0 {
		p.stats.DragsCancelled++
	}
	p.logger.Debug("drag cancelled", "cell", s.Request.Target, "displacement", s.Displacement, "reason", reason)
}

func (p *Puzzle) slideTo(t Tile, c Cell) {
	r := p.Position(c)
	p.renderer.Slide(t, p.slideDuration, r.Y, r.X, nil)
}

func (p *Puzzle) tilesAt(cells []Cell) []Tile {
	tiles := make([]Tile, 0, len(cells))
	for _, c := range cells {
		if t, err := p.grid.Get(c); err == nil && t != NoTile {
			tiles = append(tiles, t)
		}
	}
	return tiles
}

type nopRenderer struct{}

func (nopRenderer) Place(Tile, core.Rect) {}

func (nopRenderer) Slide(Tile, time.Duration, int, int, func()) {}
