package gadget

import "time"

// Event is the base interface for all input events.
// Use a type switch to handle specific event types.
type Event interface {
	// isEvent is a marker method to prevent external implementations.
	isEvent()
}

// PointerAction is the kind of pointer event.
type PointerAction int

const (
	// PointerPress indicates a button was pressed.
	PointerPress PointerAction = iota
	// PointerRelease indicates a button was released.
	PointerRelease
	// PointerMove indicates motion, with or without a button held.
	PointerMove
)

func (a PointerAction) String() string {
	switch a {
	case PointerPress:
		return "press"
	case PointerRelease:
		return "release"
	case PointerMove:
		return "move"
	}
	return "unknown"
}

// PointerButton is the button involved in a pointer event.
type PointerButton int

const (
	// ButtonNone is used for motion without a button.
	ButtonNone PointerButton = iota
	// ButtonPrimary is the left (primary) button.
	ButtonPrimary
	// ButtonMiddle is the middle button.
	ButtonMiddle
	// ButtonSecondary is the right button.
	ButtonSecondary
)

// PointerEvent is a pointer-device event in surface coordinates.
type PointerEvent struct {
	Action PointerAction
	Button PointerButton
	X, Y   int
}

func (PointerEvent) isEvent() {}

// Key identifies a non-printable key. Printable characters use KeyRune.
type Key int

const (
	KeyRune Key = iota
	KeyEnter
	KeyEscape
	KeyTab
	KeyBacktab
	KeyBackspace
	KeyCtrlC
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// KeyEvent represents a keyboard input event.
type KeyEvent struct {
	Key  Key
	Rune rune // set for KeyRune
}

func (KeyEvent) isEvent() {}

// ResizeEvent is emitted when the host surface changes size.
type ResizeEvent struct {
	Width  int
	Height int
}

func (ResizeEvent) isEvent() {}

// EventReader reads events from the host.
// It is designed for polling-based event loops.
type EventReader interface {
	// PollEvent reads the next event with a timeout.
	// Returns (event, true) if an event was read, or (nil, false) on timeout.
	PollEvent(timeout time.Duration) (Event, bool)

	// Close releases resources. Must be called when done.
	Close() error
}
