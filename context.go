package cui

// Context is one immediate-mode UI: input state, capture arbiter, and the
// style, viewport, and layout stacks. The driver owns it, feeds it pointer
// events, and brackets every frame with BeginFrame and EndFrame (or Frame).
// A Context is not safe for concurrent use.
type Context struct {
	surface Surface
	margin  float64
	debug   bool

	pointer pointerState
	capture captureArbiter
	frame   uint64
	widgets int

	styles    []*styleOverlay
	viewports []Rect
	layouts   []Layout
	base      *FlowLayout

	sink EventSink

	// Synthetic input, test scripts, and screenshots.
	injectQueue     []injectedInput
	testRunner      *TestRunner
	screenshotQueue []string
	screenshotDir   string
}

// NewContext creates a Context drawing to surface. cfg.BaseStyle is layered
// over DefaultStyle; an invalid rule is reported as KindInvalidStyleRule.
func NewContext(surface Surface, cfg Config) (*Context, error) {
	defaults, err := newOverlay(nil, DefaultStyle())
	if err != nil {
		return nil, err
	}
	base, err := newOverlay(defaults, cfg.BaseStyle)
	if err != nil {
		return nil, err
	}
	flow := &FlowLayout{}
	c := &Context{
		surface:       surface,
		margin:        cfg.margin(),
		debug:         cfg.Debug,
		pointer:       newPointerState(),
		styles:        []*styleOverlay{base},
		layouts:       []Layout{flow},
		base:          flow,
		screenshotDir: cfg.ScreenshotDir,
	}
	c.viewports = []Rect{c.baseViewport()}
	return c, nil
}

// Surface returns the surface the context draws to.
func (c *Context) Surface() Surface { return c.surface }

// FrameCount returns the number of frames begun so far.
func (c *Context) FrameCount() uint64 { return c.frame }

// SetDebugMode enables or disables [cui] diagnostics on stderr.
func (c *Context) SetDebugMode(enabled bool) { c.debug = enabled }

// BeginFrame starts a frame: it resets the capture ids, applies one queued
// synthetic event, reconciles the input edge sets, resets the surface, and
// rebuilds the base viewport and base flow cursor.
func (c *Context) BeginFrame() {
	c.frame++
	c.widgets = 0
	c.capture.beginFrame()

	if c.testRunner != nil {
		c.testRunner.step(c)
	}
	c.processInjectedInput()
	c.pointer.reconcile()

	c.surface.Reset()
	c.viewports[0] = c.baseViewport()
	c.base.reset()
}

// EndFrame finishes a frame: it releases an orphaned capture, writes queued
// screenshots, unwinds every stack to its base entry, and clears the
// Released edges. It must run once per frame even when the frame aborted.
func (c *Context) EndFrame() {
	c.releaseOrphan()
	c.flushScreenshots()
	c.debugFrame()

	clear(c.styles[1:])
	c.styles = c.styles[:1]
	c.viewports = c.viewports[:1]
	clear(c.layouts[1:])
	c.layouts = c.layouts[:1]

	c.pointer.released = 0
}

// Frame runs fn between BeginFrame and EndFrame. A contract violation
// raised inside fn aborts the rest of fn; EndFrame still runs and the
// violation is returned as an *Error. Other panics propagate after
// EndFrame.
func (c *Context) Frame(fn func(*Context)) (err error) {
	c.BeginFrame()
	defer func() {
		r := recover()
		c.EndFrame()
		if r == nil {
			return
		}
		e, ok := r.(*Error)
		if !ok {
			panic(r)
		}
		c.debugf("frame %d aborted: %v", c.frame, e)
		err = e
	}()
	fn(c)
	return nil
}
