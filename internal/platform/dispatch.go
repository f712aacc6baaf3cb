package platform

// Dispatcher routes typed window events to registered listeners.
type Dispatcher struct {
	resize []func(width, height int)
	close  []func(code int)
}

// OnResize adds a listener for resize events. nil is ignored.
func (d *Dispatcher) OnResize(fn func(width, height int)) {
	if fn == nil {
		return
	}
	d.resize = append(d.resize, fn)
}

// OnClose adds a listener for close events. nil is ignored.
func (d *Dispatcher) OnClose(fn func(code int)) {
	if fn == nil {
		return
	}
	d.close = append(d.close, fn)
}

// Dispatch invokes every listener for the event's type, in registration order.
// It reports false for event types nobody handles.
func (d *Dispatcher) Dispatch(ev Event) bool {
	switch ev.Type {
	case EventResize:
		for _, fn := range d.resize {
			fn(ev.Width, ev.Height)
		}
		return len(d.resize) > 0
	case EventClose:
		for _, fn := range d.close {
			fn(ev.Code)
		}
		return len(d.close) > 0
	}
	return false
}
