package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone        Action = iota
	ActionConfirm            // Enter - confirm selection in menu
	ActionBack               // B, Escape - go back to menu
	ActionReset              // R key - put every tile back on its home cell
	ActionQuit               // Q, Ctrl+C - exit game/session
	ActionPause              // P - pause/unpause game
	ActionCaptureLost        // terminal lost focus, any pointer capture is void
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionReset:
		return "Reset"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionCaptureLost:
		return "CaptureLost"
	default:
		return "Unknown"
	}
}

// PointerKind is the phase of a raw pointer event.
type PointerKind int

const (
	PointerPress PointerKind = iota
	PointerMotion
	PointerRelease
)

// String returns a human-readable name for the pointer kind.
func (k PointerKind) String() string {
	switch k {
	case PointerPress:
		return "Press"
	case PointerMotion:
		return "Motion"
	case PointerRelease:
		return "Release"
	default:
		return "Unknown"
	}
}

// PointerButton identifies the button of a pointer event.
type PointerButton int

const (
	ButtonNone PointerButton = iota
	ButtonPrimary
	ButtonSecondary
	ButtonMiddle
)

// PointerEvent is a raw pointer sample in screen coordinates.
type PointerEvent struct {
	Kind   PointerKind
	Button PointerButton
	X, Y   int
}

// Point returns the event position.
func (e PointerEvent) Point() Point {
	return Point{X: e.X, Y: e.Y}
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered during this frame and the
// pointer events in arrival order.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// Pointer holds pointer events in the order they were received.
	Pointer []PointerEvent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// AddPointer appends a pointer event to this frame.
func (f *InputFrame) AddPointer(ev PointerEvent) {
	f.Pointer = append(f.Pointer, ev)
}

// Clear resets all actions and pointer events for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer = f.Pointer[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	if len(f.Pointer) > 0 {
		clone.Pointer = append([]PointerEvent(nil), f.Pointer...)
	}
	return clone
}
