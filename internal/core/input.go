package core

// EventKind tags a discrete input event delivered to the game.
type EventKind int

const (
	EventNone            EventKind = iota
	EventClose                     // Window close / quit request
	EventPointerReleased           // Mouse button released at a position
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventNone:
		return "None"
	case EventClose:
		return "Close"
	case EventPointerReleased:
		return "PointerReleased"
	default:
		return "Unknown"
	}
}

// Event is a single input event. Pos is only meaningful for pointer events.
type Event struct {
	Kind EventKind
	Pos  Point
}

// CloseEvent returns a close request event.
func CloseEvent() Event {
	return Event{Kind: EventClose}
}

// PointerReleased returns a pointer release event at (x, y).
func PointerReleased(x, y int) Event {
	return Event{Kind: EventPointerReleased, Pos: Point{X: x, Y: y}}
}

// InputFrame holds the batch of events drained from the event source for one
// frame. Events are kept in arrival order.
type InputFrame struct {
	Events []Event
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Push appends an event to the frame.
func (f *InputFrame) Push(e Event) {
	f.Events = append(f.Events, e)
}

// Has returns true if an event of the given kind was queued this frame.
func (f InputFrame) Has(kind EventKind) bool {
	for _, e := range f.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// Len returns the number of queued events.
func (f InputFrame) Len() int {
	return len(f.Events)
}

// Clear resets the frame for the next poll, keeping the backing array.
func (f *InputFrame) Clear() {
	f.Events = f.Events[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	clone.Events = append(clone.Events, f.Events...)
	return clone
}
