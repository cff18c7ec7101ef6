package cui

// EventSink receives interaction events as they happen. Attach one with
// Context.SetEventSink; the ecs package provides a Donburi-backed sink.
type EventSink interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent describes a capture or click on a widget.
type InteractionEvent struct {
	Type EventType
	// ID is the call-order id of the widget, or -1 for keyed widgets.
	ID int
	// Key is the explicit capture key, empty for call-order widgets.
	Key string
	// Label is the button label, empty for other widgets.
	Label string
	// Rect is the widget's placement this frame.
	Rect Rect
	// Button is the button that caused the event.
	Button MouseButton
	// X and Y are the pointer position.
	X, Y float64
}

// SetEventSink attaches sink to the context. Pass nil to detach.
func (c *Context) SetEventSink(sink EventSink) {
	c.sink = sink
}

func (c *Context) emit(typ EventType, k captureKey, label string, r Rect) {
	if c.sink == nil {
		return
	}
	btn := MouseButtonLeft
	if typ == EventCapture {
		btn = c.pointer.firstDown()
	}
	c.sink.EmitEvent(InteractionEvent{
		Type:   typ,
		ID:     k.seq,
		Key:    k.name,
		Label:  label,
		Rect:   r,
		Button: btn,
		X:      c.pointer.pos.X,
		Y:      c.pointer.pos.Y,
	})
}
