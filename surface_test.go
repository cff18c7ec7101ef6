package cui

import (
	"fmt"
	"image"
	"testing"
)

// recordingSurface records draw calls as strings. Text measures 10 units
// per byte with ascent 8 and descent 2.
type recordingSurface struct {
	w, h  float64
	calls []string
	depth int
	snaps int
}

func newRecordingSurface(w, h float64) *recordingSurface {
	return &recordingSurface{w: w, h: h}
}

func (s *recordingSurface) record(format string, args ...any) {
	s.calls = append(s.calls, fmt.Sprintf(format, args...))
}

func (s *recordingSurface) Size() (float64, float64) { return s.w, s.h }
func (s *recordingSurface) Reset()                   { s.depth = 0; s.calls = s.calls[:0] }
func (s *recordingSurface) Save()                    { s.depth++; s.record("save") }
func (s *recordingSurface) Restore()                 { s.depth--; s.record("restore") }
func (s *recordingSurface) BeginPath()               { s.record("beginPath") }

func (s *recordingSurface) Translate(dx, dy float64) { s.record("translate %g %g", dx, dy) }
func (s *recordingSurface) Scale(sx, sy float64)     { s.record("scale %g %g", sx, sy) }

func (s *recordingSurface) RoundRect(r Rect, radius Radius) {
	s.record("roundRect %g %g %g %g r=%g", r.X, r.Y, r.Width, r.Height, radius.TopLeft.X)
}

func (s *recordingSurface) Fill(p Paint)              { s.record("fill %s", paintName(p)) }
func (s *recordingSurface) Stroke(p Paint, w float64) { s.record("stroke %s %g", paintName(p), w) }
func (s *recordingSurface) FillRect(r Rect, p Paint)  { s.record("fillRect %g %g %g %g %s", r.X, r.Y, r.Width, r.Height, paintName(p)) }
func (s *recordingSurface) FillText(t string, x, y float64, p Paint) {
	s.record("fillText %q %g %g %s", t, x, y, paintName(p))
}

func (s *recordingSurface) StrokeRect(r Rect, p Paint, w float64) {
	s.record("strokeRect %g %g %g %g %s %g", r.X, r.Y, r.Width, r.Height, paintName(p), w)
}

func (s *recordingSurface) MeasureText(t string) TextMetrics {
	return TextMetrics{Advance: float64(10 * len(t)), Ascent: 8, Descent: 2}
}

// snapshotSurface is a recordingSurface that can also read back pixels.
type snapshotSurface struct {
	*recordingSurface
}

func (s snapshotSurface) Snapshot() (image.Image, error) {
	s.snaps++
	return image.NewNRGBA(image.Rect(0, 0, 2, 2)), nil
}

func paintName(p Paint) string {
	switch pp := p.(type) {
	case SolidPaint:
		c := pp.Color
		return fmt.Sprintf("#%02x%02x%02x%02x",
			uint8(c.R*255+0.5), uint8(c.G*255+0.5), uint8(c.B*255+0.5), uint8(c.A*255+0.5))
	case LinearGradient:
		return "gradient"
	case PatternPaint:
		return "pattern"
	default:
		return "<nil>"
	}
}

// newTestContext returns a context on a 100x100 recording surface with no
// margin, so the base viewport is the whole surface.
func newTestContext(t *testing.T) (*Context, *recordingSurface) {
	t.Helper()
	return newTestContextSize(t, 100, 100)
}

func newTestContextSize(t *testing.T, w, h float64) (*Context, *recordingSurface) {
	t.Helper()
	s := newRecordingSurface(w, h)
	cfg := DefaultConfig()
	cfg.Margin = 0
	c, err := NewContext(s, cfg)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	return c, s
}

// frame runs one frame and fails the test on a contract violation.
func frame(t *testing.T, c *Context, fn func(*Context)) {
	t.Helper()
	if err := c.Frame(fn); err != nil {
		t.Fatalf("frame %d: %v", c.FrameCount(), err)
	}
}

func containsCall(calls []string, want string) bool {
	for _, c := range calls {
		if c == want {
			return true
		}
	}
	return false
}
