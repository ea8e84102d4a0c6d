package slide

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-slide/internal/core"
	"github.com/vovakirdan/tui-slide/internal/puzzle"
)

// pointerTarget is what the pointer service drives. *puzzle.Puzzle satisfies it.
type pointerTarget interface {
	puzzle.DragHandler
	CellAt(pt core.Point) (puzzle.Cell, bool)
	HandleClick(c puzzle.Cell) (bool, error)
}

// pointerService turns raw terminal mouse events into gestures.
//
// A primary press over the board captures the pointer until release. Motion
// while captured is forwarded as drag samples. A release without motion is a
// click. A second press while captured counts as another contact, which
// cancels the drag. Coordinates are translated to the board origin.
type pointerService struct {
	target pointerTarget
	origin core.Point
	logger *log.Logger

	captured bool
	dragging bool // target accepted the drag start
	moved    bool
	contacts int
	cell     puzzle.Cell
	press    core.Point
	last     core.Point
}

func newPointerService(target pointerTarget, origin core.Point, logger *log.Logger) *pointerService {
	return &pointerService{
		target: target,
		origin: origin,
		logger: logger,
	}
}

// SetOrigin moves the board origin, e.g. after a terminal resize.
func (s *pointerService) SetOrigin(origin core.Point) {
	s.origin = origin
}

// Captured returns true between a press over the board and its release.
func (s *pointerService) Captured() bool {
	return s.captured
}

// Handle processes one raw pointer event.
func (s *pointerService) Handle(ev core.PointerEvent) {
	pt := ev.Point().Sub(s.origin)

	switch ev.Kind {
	case core.PointerPress:
		s.handlePress(ev.Button, pt)
	case core.PointerMotion:
		s.handleMotion(pt)
	case core.PointerRelease:
		s.handleRelease(pt)
	}
}

func (s *pointerService) handlePress(button core.PointerButton, pt core.Point) {
	if s.captured {
		s.contacts++
		s.logger.Debug("extra contact while captured", "contacts", s.contacts)
		if s.dragging {
			s.target.OnDragMove(puzzle.DragMove{Pointer: s.last, Contacts: s.contacts})
			s.dragging = false
		}
		return
	}
	if button != core.ButtonPrimary {
		return
	}

	cell, ok := s.target.CellAt(pt)
	if !ok {
		return
	}

	s.captured = true
	s.moved = false
	s.contacts = 1
	s.cell = cell
	s.press = pt
	s.last = pt
	s.dragging = s.target.OnDragStart(puzzle.DragStart{Cell: cell, Pointer: pt, Contacts: 1})
}

func (s *pointerService) handleMotion(pt core.Point) {
	if !s.captured {
		return
	}
	if pt != s.press {
		s.moved = true
	}
	s.last = pt
	if s.dragging {
		s.target.OnDragMove(puzzle.DragMove{Pointer: pt, Contacts: s.contacts})
	}
}

func (s *pointerService) handleRelease(pt core.Point) {
	if !s.captured {
		return
	}
	if pt != s.press {
		s.moved = true
	}
	s.captured = false
	wasDragging := s.dragging
	s.dragging = false

	switch {
	case s.contacts > 1:
		// The drag was cancelled when the second contact arrived.
	case !s.moved:
		if wasDragging {
			s.target.OnDragCancel()
		}
		if _, err := s.target.HandleClick(s.cell); err != nil {
			s.logger.Warn("click failed", "cell", s.cell, "error", err)
		}
	case wasDragging:
		s.target.OnDragEnd(puzzle.DragEnd{Pointer: pt})
	}
	s.contacts = 0
}

// CaptureLost ends any capture without a click or commit.
func (s *pointerService) CaptureLost() {
	if !s.captured {
		return
	}
	s.captured = false
	s.contacts = 0
	if s.dragging {
		s.dragging = false
		s.target.OnDragCancel()
	}
}
