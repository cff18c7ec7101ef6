package cui

// PushViewport pushes a hit-test rectangle. Widgets are hovered only when
// the pointer lies inside both the current viewport and their own rect. The
// viewport does not clip drawing.
func (c *Context) PushViewport(x, y, w, h float64) {
	c.viewports = append(c.viewports, Rect{X: x, Y: y, Width: w, Height: h})
}

// PopViewport removes the top viewport. The base viewport is never removed.
func (c *Context) PopViewport() {
	if len(c.viewports) > 1 {
		c.viewports = c.viewports[:len(c.viewports)-1]
	}
}

// Viewport returns the current viewport.
func (c *Context) Viewport() Rect {
	return c.viewports[len(c.viewports)-1]
}

// baseViewport is the surface rectangle inset by the configured margin.
func (c *Context) baseViewport() Rect {
	w, h := c.surface.Size()
	return Rect{Width: w, Height: h}.Inset(c.margin)
}
