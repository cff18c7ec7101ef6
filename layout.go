package cui

// Layout is a layout context on the layout stack. *FlowLayout is the only
// variant Place understands; any other implementation is rejected with
// KindInvalidLayoutContext.
type Layout interface {
	LayoutKind() string
}

// FlowLayout places elements left to right and wraps to a new row when the
// next element would cross the right edge of the viewport. Its fields are
// the cursor, relative to the viewport origin.
type FlowLayout struct {
	RowStart     float64
	ColumnStart  float64
	MaxRowHeight float64
}

// LayoutKind implements Layout.
func (*FlowLayout) LayoutKind() string { return "flow" }

func (l *FlowLayout) reset() { *l = FlowLayout{} }

// place positions a w by h element offset by (x, y) from the cursor. An
// element that does not fit wraps once; a fresh row accepts anything.
func (l *FlowLayout) place(vp Rect, x, y, w, h float64) Rect {
	for {
		r := Rect{
			X:      vp.X + l.ColumnStart + x,
			Y:      vp.Y + l.RowStart + y,
			Width:  w,
			Height: h,
		}
		l.MaxRowHeight = max(l.MaxRowHeight, h)
		if r.Right() <= vp.Right() || l.ColumnStart == 0 {
			l.ColumnStart += w
			return r
		}
		l.RowStart += l.MaxRowHeight
		l.ColumnStart = 0
		l.MaxRowHeight = 0
	}
}

// PushLayout pushes l as the current layout context.
func (c *Context) PushLayout(l Layout) {
	c.layouts = append(c.layouts, l)
}

// PopLayout removes the top layout context. The base context is never
// removed.
func (c *Context) PopLayout() {
	if len(c.layouts) > 1 {
		c.layouts[len(c.layouts)-1] = nil
		c.layouts = c.layouts[:len(c.layouts)-1]
	}
}

// PopLayoutTo removes l and every context pushed after it. It panics with
// KindInvalidLayoutContext when l is not on the stack above the base, which
// happens on a double close or a close from the wrong scope.
func (c *Context) PopLayoutTo(l Layout) {
	for i := len(c.layouts) - 1; i >= 1; i-- {
		if c.layouts[i] == l {
			clear(c.layouts[i:])
			c.layouts = c.layouts[:i]
			return
		}
	}
	raise("PopLayoutTo", KindInvalidLayoutContext, "%s layout %p is not on the stack", kindOf(l), l)
}

// Layout returns the current layout context.
func (c *Context) Layout() Layout {
	return c.layouts[len(c.layouts)-1]
}

// Flow pushes a new flow context. When body is non-nil it runs immediately
// and the stack is unwound to and including the new context afterwards,
// whatever body pushed or popped; the returned closer is then a no-op.
// With a nil body the caller must invoke the returned closer.
func (c *Context) Flow(body func()) (closer func()) {
	l := &FlowLayout{}
	c.PushLayout(l)
	if body == nil {
		return func() { c.PopLayoutTo(l) }
	}
	body()
	c.PopLayoutTo(l)
	return func() {}
}

// Place computes the absolute placement of a w by h element offset by
// (x, y) in the current layout context and advances its cursor.
func (c *Context) Place(x, y, w, h float64) Rect {
	switch l := c.Layout().(type) {
	case *FlowLayout:
		return l.place(c.Viewport(), x, y, w, h)
	default:
		raise("Place", KindInvalidLayoutContext, "unsupported layout %s", kindOf(l))
		return Rect{}
	}
}

func kindOf(l Layout) string {
	if l == nil {
		return "<nil>"
	}
	return l.LayoutKind()
}
