package puzzle

import "github.com/vovakirdan/tui-slide/internal/core"

// DragState is the phase of a drag session.
type DragState uint8

const (
	DragIdle DragState = iota
	DragArmed
	DragTracking
	DragCommitted
	DragCancelled
)

// String returns the string representation of a drag state.
func (s DragState) String() string {
	switch s {
	case DragIdle:
		return "idle"
	case DragArmed:
		return "armed"
	case DragTracking:
		return "tracking"
	case DragCommitted:
		return "committed"
	case DragCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// DragSession is the state of one pointer gesture over a movable tile.
type DragSession struct {
	Request MoveRequest
	Axis    Axis

	// Bounds holds every allowed top-left position of the target tile.
	// It spans the rest position and one tile length toward the empty cell.
	Bounds core.Bounds

	Rest  core.Point // target tile top-left at rest
	Start core.Point // pointer position when the gesture began

	// Displacement is the last accepted offset along Axis.
	Displacement int

	// Samples counts pointer samples seen, accepted or not.
	Samples int

	State DragState
}

// Offset returns the displacement as a screen vector.
func (s *DragSession) Offset() (dx, dy int) {
	if s.Axis == AxisX {
		return s.Displacement, 0
	}
	return 0, s.Displacement
}

// DragController turns pointer samples into a provisional tile offset and,
// on release, into a commit or cancel decision. At most one session exists.
type DragController struct {
	tileW   int
	tileH   int
	session *DragSession
}

// NewDragController creates a controller for tiles of the given size.
func NewDragController(tileW, tileH int) *DragController {
	return &DragController{tileW: tileW, tileH: tileH}
}

// Active returns true while a session is armed or tracking.
func (d *DragController) Active() bool {
	return d.session != nil
}

// Session returns the active session, or nil.
func (d *DragController) Session() *DragSession {
	return d.session
}

// Begin arms a session for req. rest is the target tile's top-left corner and
// start the pointer position. Returns false if a session is already active or
// the request has no direction.
func (d *DragController) Begin(req MoveRequest, rest, start core.Point) (*DragSession, bool) {
	if d.session != nil {
		return nil, false
	}
	axis := req.Axis()
	if axis == AxisNone {
		return nil, false
	}

	d.session = &DragSession{
		Request: req,
		Axis:    axis,
		Bounds:  d.containment(rest, req.Offset),
		Rest:    rest,
		Start:   start,
		State:   DragArmed,
	}
	return d.session, true
}

// containment extends the rest position by one tile length in the direction
// of the offset. The cross axis is pinned.
func (d *DragController) containment(rest core.Point, off Offset) core.Bounds {
	b := core.Bounds{MinX: rest.X, MinY: rest.Y, MaxX: rest.X, MaxY: rest.Y}
	switch {
	case off.DCol > 0:
		b.MaxX += d.tileW
	case off.DCol < 0:
		b.MinX -= d.tileW
	case off.DRow > 0:
		b.MaxY += d.tileH
	case off.DRow < 0:
		b.MinY -= d.tileH
	}
	return b
}

// Track feeds a pointer sample. The cumulative delta since Begin is projected
// on the session axis. If the resulting tile position falls outside the
// containment bounds the sample is dropped and ok is false; the previous
// displacement stays in effect.
func (d *DragController) Track(p core.Point) (displacement int, ok bool) {
	s := d.session
	if s == nil {
		return 0, false
	}
	s.State = DragTracking
	s.Samples++

	delta := p.Sub(s.Start)
	pos := s.Rest
	var along int
	if s.Axis == AxisX {
		along = delta.X
		pos.X += along
	} else {
		along = delta.Y
		pos.Y += along
	}

	if !s.Bounds.Contains(pos) {
		return s.Displacement, false
	}
	s.Displacement = along
	return along, true
}

// Release ends the gesture. The session commits if the displacement is past
// half a tile length along its axis, otherwise it cancels. Returns nil when no
// session is active.
func (d *DragController) Release() *DragSession {
	s := d.session
	if s == nil {
		return nil
	}
	d.session = nil

	if d.pastMidway(s.Displacement, s.Axis) {
		s.State = DragCommitted
	} else {
		s.State = DragCancelled
	}
	return s
}

// Abort cancels the active session regardless of its displacement.
// Returns nil when no session is active.
func (d *DragController) Abort() *DragSession {
	s := d.session
	if s == nil {
		return nil
	}
	d.session = nil
	s.State = DragCancelled
	return s
}

// pastMidway compares in doubled units so odd tile lengths need no rounding.
func (d *DragController) pastMidway(displacement int, axis Axis) bool {
	length := d.tileW
	if axis == AxisY {
		length = d.tileH
	}
	return 2*core.Abs(displacement) > length
}
