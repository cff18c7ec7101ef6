package cui

// buttonSet is a bitmask over the mouse buttons.
type buttonSet uint8

const allButtons buttonSet = 1<<mouseButtonCount - 1

func (s buttonSet) has(b MouseButton) bool { return s&(1<<b) != 0 }
func (s *buttonSet) add(b MouseButton)    { *s |= 1 << b }
func (s *buttonSet) remove(b MouseButton) { *s &^= 1 << b }

// --- Per-pointer state ---

// pointerState holds the pointer position, the raw Down/Up sets written by
// input events, and the Pressed/Released/Repeated edge sets derived from
// them once per frame.
type pointerState struct {
	pos      Vec2
	down     buttonSet
	up       buttonSet
	pressed  buttonSet
	released buttonSet
	repeated buttonSet
}

func newPointerState() pointerState {
	return pointerState{up: allButtons}
}

func validButton(b MouseButton) bool { return b < mouseButtonCount }

// firstDown returns the lowest raw-down button, or MouseButtonLeft.
func (ps *pointerState) firstDown() MouseButton {
	for b := MouseButton(0); b < mouseButtonCount; b++ {
		if ps.down.has(b) {
			return b
		}
	}
	return MouseButtonLeft
}

// reconcile recomputes the edge sets from raw Down/Up. A held button stays
// Pressed for as long as it is down and gains Repeated after its first
// observed frame. A button that goes up after being Pressed or Repeated is
// Released until the next EndFrame.
func (ps *pointerState) reconcile() {
	for b := MouseButton(0); b < mouseButtonCount; b++ {
		switch {
		case ps.down.has(b):
			if ps.pressed.has(b) {
				ps.repeated.add(b)
			} else if !ps.repeated.has(b) {
				ps.pressed.add(b)
			}
		case ps.up.has(b):
			if ps.pressed.has(b) || ps.repeated.has(b) {
				ps.released.add(b)
			}
			ps.pressed.remove(b)
			ps.repeated.remove(b)
		}
	}
}

// --- Input events ---

// PointerMove records the pointer position. Safe to call at any time between
// or during frames.
func (c *Context) PointerMove(x, y float64) {
	c.pointer.pos = Vec2{x, y}
}

// PointerDown marks b raw-down. Edge sets update on the next BeginFrame.
func (c *Context) PointerDown(b MouseButton) {
	if !validButton(b) {
		return
	}
	c.pointer.down.add(b)
	c.pointer.up.remove(b)
}

// PointerUp marks b raw-up. Edge sets update on the next BeginFrame.
func (c *Context) PointerUp(b MouseButton) {
	if !validButton(b) {
		return
	}
	c.pointer.up.add(b)
	c.pointer.down.remove(b)
}

// --- Queries ---

// MousePosition returns the current pointer position.
func (c *Context) MousePosition() Vec2 { return c.pointer.pos }

// IsMouseDown reports whether any button is raw-down.
func (c *Context) IsMouseDown() bool { return c.pointer.down != 0 }

// IsMouseUp reports whether every button is raw-up.
func (c *Context) IsMouseUp() bool { return c.pointer.up == allButtons }

// IsButtonDown reports whether b is raw-down.
func (c *Context) IsButtonDown(b MouseButton) bool { return c.pointer.down.has(b) }

// IsButtonUp reports whether b is raw-up.
func (c *Context) IsButtonUp(b MouseButton) bool { return c.pointer.up.has(b) }

// IsMousePressed reports whether b is Pressed. Pressed stays set for every
// frame the button is held, not only the first.
func (c *Context) IsMousePressed(b MouseButton) bool { return c.pointer.pressed.has(b) }

// IsMouseRepeated reports whether b has been held past its first observed
// frame.
func (c *Context) IsMouseRepeated(b MouseButton) bool { return c.pointer.repeated.has(b) }

// IsMouseReleased reports whether b was released since the last frame.
func (c *Context) IsMouseReleased(b MouseButton) bool { return c.pointer.released.has(b) }
