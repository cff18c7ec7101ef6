package cui

// Visual scale applied around a button's center per interaction state.
const (
	scaleActive = 0.9
	scaleHover  = 1.05
)

// boxStyle is the resolved drawing style of a box-shaped widget. A nil
// paint is unset.
type boxStyle struct {
	radius      Radius
	fill        Paint
	stroke      Paint
	strokeWidth float64
}

// must unwraps a parser result inside a frame, aborting the frame on error.
func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func (c *Context) paintStyle(selector, pseudo, property string) Paint {
	v, ok := c.stateStyle(selector, pseudo, property)
	if !ok || v == nil {
		return nil
	}
	return must(ParsePaint(v))
}

func (c *Context) lengthStyle(selector, pseudo, property string, fallback float64) float64 {
	v, ok := c.stateStyle(selector, pseudo, property)
	if !ok || v == nil {
		return fallback
	}
	return must(ParseLength(v))
}

func (c *Context) paddingStyle(selector, pseudo string) Insets {
	v, ok := c.stateStyle(selector, pseudo, "padding")
	if !ok || v == nil {
		return Insets{}
	}
	return must(ParsePadding(v))
}

func (c *Context) radiusStyle(selector, pseudo string) Radius {
	v, ok := c.stateStyle(selector, pseudo, "radius")
	if !ok || v == nil {
		return Radius{}
	}
	return must(ParseRadius(v))
}

func (c *Context) resolveBox(selector, pseudo string) boxStyle {
	return boxStyle{
		radius:      c.radiusStyle(selector, pseudo),
		fill:        c.paintStyle(selector, pseudo, "fill"),
		stroke:      c.paintStyle(selector, pseudo, "stroke"),
		strokeWidth: c.lengthStyle(selector, pseudo, "stroke-width", 1),
	}
}

// drawBox draws r with st. Rounded boxes go through a path; square ones use
// the fast rectangle primitives.
func (c *Context) drawBox(r Rect, st boxStyle) {
	s := c.surface
	if st.fill == nil && st.stroke == nil {
		return
	}
	if !st.radius.IsZero() {
		s.BeginPath()
		s.RoundRect(r, st.radius.Clamp(r.Width, r.Height))
		if st.fill != nil {
			s.Fill(st.fill)
		}
		if st.stroke != nil {
			s.Stroke(st.stroke, st.strokeWidth)
		}
		return
	}
	if st.fill != nil {
		s.FillRect(r, st.fill)
	}
	if st.stroke != nil {
		s.StrokeRect(r, st.stroke, st.strokeWidth)
	}
}

// Box draws a w by h rectangle styled by the "box" selector at (x, y)
// relative to the current layout cursor. It is not interactive.
func (c *Context) Box(x, y, w, h float64) {
	st := c.resolveBox("box", "")
	r := c.Place(x, y, w, h)
	c.drawBox(r, st)
}

// Button draws a text button sized to its label plus the "button" padding
// and reports whether it was clicked this frame. Buttons take their capture
// id from call order; see CheckState.
func (c *Context) Button(label string) bool {
	return c.button(c.nextKey(), label)
}

// ButtonKey is Button with an explicit capture key, for buttons whose
// position in the call order is not stable between frames.
func (c *Context) ButtonKey(key, label string) bool {
	return c.button(namedKey(key), label)
}

func (c *Context) button(k captureKey, label string) bool {
	s := c.surface
	pad := c.paddingStyle("button", "")
	m := s.MeasureText(label)
	r := c.Place(0, 0, m.Advance+pad.Left+pad.Right, m.Height()+pad.Top+pad.Bottom)
	state := c.checkState(k, r, label)

	pseudo, scale := "", 1.0
	switch {
	case state.Active:
		pseudo, scale = PseudoActive, scaleActive
	case state.Hover:
		pseudo, scale = PseudoHover, scaleHover
	}
	st := c.resolveBox("button", pseudo)
	text := c.paintStyle("button", pseudo, "color")
	if text == nil {
		text = SolidPaint{ColorBlack}
	}

	ctr := r.Center()
	s.Save()
	s.Translate(ctr.X, ctr.Y)
	s.Scale(scale, scale)
	s.Translate(-ctr.X, -ctr.Y)
	c.drawBox(r, st)
	s.FillText(label, r.X+pad.Left, r.Y+pad.Top, text)
	s.Restore()
	return state.Clicked
}
