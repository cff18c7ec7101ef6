package cui

import (
	"fmt"
	"os"
	"strings"
)

// debugStats is a snapshot of the per-frame counters logged in debug mode.
type debugStats struct {
	frame     uint64
	widgets   int
	capture   string
	styles    int
	viewports int
	layouts   int
}

func (c *Context) stats() debugStats {
	st := debugStats{
		frame:     c.frame,
		widgets:   c.widgets,
		capture:   "idle",
		styles:    len(c.styles),
		viewports: len(c.viewports),
		layouts:   len(c.layouts),
	}
	if c.capture.captured {
		st.capture = c.capture.owner.String()
	}
	return st
}

// logf writes a [cui] line to stderr.
func logf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[cui] "+format+"\n", args...)
}

// debugf is logf gated on debug mode.
func (c *Context) debugf(format string, args ...any) {
	if c.debug {
		logf(format, args...)
	}
}

// debugFrame logs the frame's counters and warns about stacks the frame
// left pushed. Called from EndFrame before the stacks unwind.
func (c *Context) debugFrame() {
	if !c.debug {
		return
	}
	st := c.stats()
	logf("frame %d | widgets: %d | capture: %s", st.frame, st.widgets, st.capture)
	warnUnbalanced(st.frame, "style", st.styles)
	warnUnbalanced(st.frame, "viewport", st.viewports)
	warnUnbalanced(st.frame, "layout", st.layouts)
}

func warnUnbalanced(frame uint64, stack string, depth int) {
	if depth > 1 {
		logf("warning: frame %d ended with %d unpopped %s entries", frame, depth-1, stack)
	}
}

func (s buttonSet) String() string {
	if s == 0 {
		return "-"
	}
	var names []string
	for b := MouseButton(0); b < mouseButtonCount; b++ {
		if s.has(b) {
			names = append(names, b.String())
		}
	}
	return strings.Join(names, ",")
}

// debugLines renders the overlay text.
func (c *Context) debugLines() []string {
	st := c.stats()
	p := c.pointer
	return []string{
		fmt.Sprintf("frame %d  widgets %d", st.frame, st.widgets),
		fmt.Sprintf("pointer %.0f,%.0f", p.pos.X, p.pos.Y),
		fmt.Sprintf("down %s  pressed %s", p.down, p.pressed),
		fmt.Sprintf("repeated %s  released %s", p.repeated, p.released),
		fmt.Sprintf("capture %s", st.capture),
		fmt.Sprintf("stacks style %d  viewport %d  layout %d", st.styles, st.viewports, st.layouts),
	}
}

// DrawDebugOverlay draws the engine's internal state inside region. It
// panics with KindDebugOverflow when the text does not fit.
func (c *Context) DrawDebugOverlay(region Rect) {
	s := c.surface
	lines := c.debugLines()
	var width, lineHeight float64
	metrics := make([]TextMetrics, len(lines))
	for i, l := range lines {
		metrics[i] = s.MeasureText(l)
		width = max(width, metrics[i].Advance)
		lineHeight = max(lineHeight, metrics[i].Height())
	}
	height := lineHeight * float64(len(lines))
	if width > region.Width || height > region.Height {
		raise("DrawDebugOverlay", KindDebugOverflow,
			"overlay needs %.0fx%.0f, region is %.0fx%.0f", width, height, region.Width, region.Height)
	}

	s.FillRect(region, SolidPaint{Color{0, 0, 0, 0.5}})
	text := SolidPaint{ColorWhite}
	for i, l := range lines {
		s.FillText(l, region.X, region.Y+float64(i)*lineHeight, text)
	}
}
