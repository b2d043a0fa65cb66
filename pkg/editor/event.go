package editor

// EventKind identifies an input event.
type EventKind int

const (
	EventQuit EventKind = iota
	EventPointerDown
	EventPointerUp
	EventPointerMove
	EventKeyDown
	EventKeyUp
)

// Button is a pointer button.
type Button int

const (
	ButtonPrimary Button = iota + 1
	ButtonMiddle
	ButtonSecondary
)

// Key is a non-printable key. Printable keys use KeyRune with Event.Rune.
type Key int

const (
	KeyNone Key = iota
	KeyRune
	KeyPageUp
	KeyPageDown
	KeyEscape
	KeyF10
)

// Event is one input event from the display substrate.
type Event struct {
	Kind   EventKind
	X, Y   float64 // Pointer position in canvas units
	Button Button
	Key    Key
	Rune   rune
}

// Quit returns a window-close event.
func Quit() Event { return Event{Kind: EventQuit} }

// PointerDown returns a button press at (x, y).
func PointerDown(x, y float64, b Button) Event {
	return Event{Kind: EventPointerDown, X: x, Y: y, Button: b}
}

// PointerUp returns a button release at (x, y).
func PointerUp(x, y float64, b Button) Event {
	return Event{Kind: EventPointerUp, X: x, Y: y, Button: b}
}

// PointerMove returns a pointer motion to (x, y).
func PointerMove(x, y float64) Event {
	return Event{Kind: EventPointerMove, X: x, Y: y}
}

// KeyDown returns a press of k.
func KeyDown(k Key) Event { return Event{Kind: EventKeyDown, Key: k} }

// KeyUp returns a release of k.
func KeyUp(k Key) Event { return Event{Kind: EventKeyUp, Key: k} }

// RuneDown returns a press of a printable key.
func RuneDown(r rune) Event { return Event{Kind: EventKeyDown, Key: KeyRune, Rune: r} }

// RuneUp returns a release of a printable key.
func RuneUp(r rune) Event { return Event{Kind: EventKeyUp, Key: KeyRune, Rune: r} }
