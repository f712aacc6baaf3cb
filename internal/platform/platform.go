package platform

import "errors"

var (
	ErrWindowCreation  = errors.New("window creation failed")
	ErrGraphicsContext = errors.New("graphics context creation failed")
)

// WindowConfig describes the native window to create.
type WindowConfig struct {
	Title     string
	Width     int
	Height    int
	Resizable bool
	VSync     bool
}

// DefaultWindowConfig is an 800x600 resizable window titled "Solar System".
func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Title:     "Solar System",
		Width:     800,
		Height:    600,
		Resizable: true,
	}
}

// EventType identifies what an Event carries.
type EventType int

const (
	EventUnknown EventType = iota
	EventResize
	EventClose
)

func (t EventType) String() string {
	switch t {
	case EventResize:
		return "resize"
	case EventClose:
		return "close"
	default:
		return "unknown"
	}
}

// Event is a window event drained by Window.PollEvents.
type Event struct {
	Type   EventType
	Width  int
	Height int
	Code   int // exit payload carried by EventClose
}

// Resize is a resize to a w x h client area.
func Resize(w, h int) Event { return Event{Type: EventResize, Width: w, Height: h} }

// Close asks the loop to stop and exit with code.
func Close(code int) Event { return Event{Type: EventClose, Code: code} }

// Window is a native window with an attached drawing surface.
// PollEvents never blocks; it returns nil when nothing is pending.
type Window interface {
	PollEvents() []Event
	Size() (int, int)
	Close()
}
