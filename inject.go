package cui

// injectedInput is one frame's worth of synthetic pointer input: a position
// and the buttons that go down or up at it.
type injectedInput struct {
	pos      Vec2
	down, up buttonSet
}

// applyInput feeds in through the same entry points a driver uses.
func (c *Context) applyInput(in injectedInput) {
	c.PointerMove(in.pos.X, in.pos.Y)
	for b := MouseButton(0); b < mouseButtonCount; b++ {
		switch {
		case in.down.has(b):
			c.PointerDown(b)
		case in.up.has(b):
			c.PointerUp(b)
		}
	}
}

func (c *Context) queueInput(x, y float64, down, up buttonSet) {
	c.injectQueue = append(c.injectQueue, injectedInput{pos: Vec2{x, y}, down: down, up: up})
}

func single(b MouseButton) buttonSet {
	var s buttonSet
	if validButton(b) {
		s.add(b)
	}
	return s
}

// InjectPress queues a primary-button press at (x, y). Queued input is
// applied one entry per BeginFrame, before the edge sets are reconciled.
func (c *Context) InjectPress(x, y float64) { c.InjectButtonPress(MouseButtonLeft, x, y) }

// InjectRelease queues a primary-button release at (x, y).
func (c *Context) InjectRelease(x, y float64) { c.InjectButtonRelease(MouseButtonLeft, x, y) }

// InjectClick queues a primary-button press and release at (x, y). Consumes
// two frames.
func (c *Context) InjectClick(x, y float64) { c.InjectButtonClick(MouseButtonLeft, x, y) }

// InjectButtonPress queues a press of b at (x, y).
func (c *Context) InjectButtonPress(b MouseButton, x, y float64) {
	c.queueInput(x, y, single(b), 0)
}

// InjectButtonRelease queues a release of b at (x, y).
func (c *Context) InjectButtonRelease(b MouseButton, x, y float64) {
	c.queueInput(x, y, 0, single(b))
}

// InjectButtonClick queues a press and release of b at (x, y).
func (c *Context) InjectButtonClick(b MouseButton, x, y float64) {
	c.InjectButtonPress(b, x, y)
	c.InjectButtonRelease(b, x, y)
}

// InjectMove queues a pointer move to (x, y). Buttons already down stay
// down, so moves between a press and a release make a drag.
func (c *Context) InjectMove(x, y float64) {
	c.queueInput(x, y, 0, 0)
}

// InjectDrag queues a primary-button drag; see InjectButtonDrag.
func (c *Context) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	c.InjectButtonDrag(MouseButtonLeft, fromX, fromY, toX, toY, frames)
}

// InjectButtonDrag queues a press of b at (fromX, fromY), frames-2 evenly
// spaced moves, and a release at (toX, toY). The drag consumes frames
// frames, at least two.
func (c *Context) InjectButtonDrag(b MouseButton, fromX, fromY, toX, toY float64, frames int) {
	frames = max(frames, 2)
	c.InjectButtonPress(b, fromX, fromY)
	for i := 1; i < frames-1; i++ {
		t := float64(i) / float64(frames-1)
		c.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	c.InjectButtonRelease(b, toX, toY)
}

// Injecting reports whether synthetic input is still queued. Drivers should
// not forward real pointer input while it is true.
func (c *Context) Injecting() bool { return len(c.injectQueue) > 0 }

// processInjectedInput applies the oldest queued entry.
func (c *Context) processInjectedInput() bool {
	if len(c.injectQueue) == 0 {
		return false
	}
	in := c.injectQueue[0]
	c.injectQueue = append(c.injectQueue[:0], c.injectQueue[1:]...)
	c.applyInput(in)
	return true
}
