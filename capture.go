package cui

import "strconv"

// WidgetState is the interaction result reported to a widget for one frame.
type WidgetState struct {
	Hover   bool
	Active  bool
	Clicked bool
}

// captureKey identifies a capture owner. Auto keys carry the call-order id;
// explicit keys carry a caller-chosen name and seq -1.
type captureKey struct {
	seq  int
	name string
}

func (k captureKey) String() string {
	if k.seq < 0 {
		return strconv.Quote(k.name)
	}
	return strconv.Itoa(k.seq)
}

// captureArbiter is the single-owner capture state machine. Idle when
// captured is false.
type captureArbiter struct {
	next     int
	captured bool
	owner    captureKey
	seen     bool // owner made a CheckState call this frame
}

func (a *captureArbiter) beginFrame() {
	a.next = 0
	a.seen = false
}

func (a *captureArbiter) capture(k captureKey) {
	if a.captured {
		raise("capture", KindCaptureConflict, "widget %s cannot capture: owned by %s", k, a.owner)
	}
	a.captured = true
	a.owner = k
	a.seen = true
}

func (a *captureArbiter) release(k captureKey) {
	if !a.captured || a.owner != k {
		raise("release", KindCaptureConflict, "widget %s does not own capture", k)
	}
	a.captured = false
	a.owner = captureKey{}
}

// CheckState assigns the next call-order id to a widget occupying r and
// reports its interaction state. The order of CheckState calls must be the
// same every frame for a widget to keep its id while it holds capture; use
// CheckStateKey for widgets whose count or order changes between frames.
func (c *Context) CheckState(r Rect) WidgetState {
	return c.checkState(c.nextKey(), r, "")
}

// CheckStateKey is CheckState with an explicit key. Keyed calls do not
// consume a call-order id.
func (c *Context) CheckStateKey(key string, r Rect) WidgetState {
	return c.checkState(namedKey(key), r, "")
}

func (c *Context) nextKey() captureKey {
	k := captureKey{seq: c.capture.next}
	c.capture.next++
	return k
}

func namedKey(name string) captureKey { return captureKey{seq: -1, name: name} }

func (c *Context) checkState(k captureKey, r Rect, label string) WidgetState {
	c.widgets++
	a := &c.capture
	if a.captured {
		if a.owner != k {
			return WidgetState{}
		}
		a.seen = true
		if c.pointer.released.has(MouseButtonLeft) {
			a.release(k)
			c.emit(EventClick, k, label, r)
			return WidgetState{Active: true, Clicked: true}
		}
		return WidgetState{Active: true}
	}

	p := c.pointer.pos
	hover := c.Viewport().Contains(p.X, p.Y) && r.Contains(p.X, p.Y)
	active := hover && c.IsMouseDown()
	if active {
		a.capture(k)
		c.emit(EventCapture, k, label, r)
	}
	return WidgetState{Hover: hover, Active: active}
}

// releaseOrphan drops a capture whose owner made no CheckState call this
// frame, provided the primary button was released.
func (c *Context) releaseOrphan() {
	a := &c.capture
	if a.captured && !a.seen && c.pointer.released.has(MouseButtonLeft) {
		c.debugf("releasing orphaned capture held by %s", a.owner)
		a.release(a.owner)
	}
}

// Captured reports whether some widget holds capture.
func (c *Context) Captured() bool { return c.capture.captured }
