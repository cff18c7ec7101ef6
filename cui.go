package cui

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

var (
	// ColorBlack is the default text color.
	ColorBlack = Color{0, 0, 0, 1}
	// ColorWhite is opaque white.
	ColorWhite = Color{1, 1, 1, 1}
	// ColorTransparent draws nothing.
	ColorTransparent = Color{}
)

// RGBA implements color.Color. The returned values are alpha-premultiplied
// as the interface requires.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(clamp01(c.A) * 0xffff)
	r = uint32(clamp01(c.R) * clamp01(c.A) * 0xffff)
	g = uint32(clamp01(c.G) * clamp01(c.A) * 0xffff)
	b = uint32(clamp01(c.B) * clamp01(c.A) * 0xffff)
	return
}

// colorFrom converts any color.Color to a straight-alpha Color.
func colorFrom(c color.Color) Color {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return Color{
		R: float64(n.R) / 0xffff,
		G: float64(n.G) / 0xffff,
		B: float64(n.B) / 0xffff,
		A: float64(n.A) / 0xffff,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for positions, offsets, sizes, and corner radii.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// Inset shrinks the rectangle by m on every side. Width and height never go
// below zero.
func (r Rect) Inset(m float64) Rect {
	out := Rect{X: r.X + m, Y: r.Y + m, Width: r.Width - 2*m, Height: r.Height - 2*m}
	if out.Width < 0 {
		out.Width = 0
	}
	if out.Height < 0 {
		out.Height = 0
	}
	return out
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft    MouseButton = iota // primary (left) mouse button
	MouseButtonRight                      // secondary (right) mouse button
	MouseButtonMiddle                     // middle mouse button (scroll wheel click)
	MouseButtonBack                       // fourth button (browser back)
	MouseButtonForward                    // fifth button (browser forward)

	mouseButtonCount = 5
)

// String returns the button name.
func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "left"
	case MouseButtonRight:
		return "right"
	case MouseButtonMiddle:
		return "middle"
	case MouseButtonBack:
		return "back"
	case MouseButtonForward:
		return "forward"
	default:
		return "unknown"
	}
}

// Pseudo-state keys used inside style Properties.
const (
	PseudoHover  = "hover"
	PseudoActive = "active"
)

// EventType identifies a kind of interaction event.
type EventType uint8

const (
	EventCapture EventType = iota // fires when a widget takes pointer capture
	EventClick                    // fires when the captured widget sees the primary release
)

// String returns the event name.
func (e EventType) String() string {
	switch e {
	case EventCapture:
		return "capture"
	case EventClick:
		return "click"
	default:
		return "unknown"
	}
}
