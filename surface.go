package cui

import "image"

// TextMetrics is the measured bounding box of a single line of text.
type TextMetrics struct {
	Advance float64
	Ascent  float64
	Descent float64
}

// Height returns Ascent + Descent.
func (m TextMetrics) Height() float64 { return m.Ascent + m.Descent }

// Surface is the drawing capability the engine renders through. Paths are
// built with BeginPath and RoundRect and consumed by Fill or Stroke. Text is
// positioned by the top-left corner of its line box.
type Surface interface {
	// Size returns the drawable size in surface units.
	Size() (w, h float64)
	// Reset clears the transform stack and any pending path.
	Reset()

	Save()
	Restore()
	Translate(dx, dy float64)
	Scale(sx, sy float64)

	BeginPath()
	RoundRect(r Rect, radius Radius)
	Fill(p Paint)
	Stroke(p Paint, width float64)

	FillRect(r Rect, p Paint)
	StrokeRect(r Rect, p Paint, width float64)

	MeasureText(s string) TextMetrics
	FillText(s string, x, y float64, p Paint)
}

// Snapshotter is implemented by surfaces that can read back their pixels.
// Screenshots queued with Context.Screenshot are only written when the
// surface implements it.
type Snapshotter interface {
	Snapshot() (image.Image, error)
}
