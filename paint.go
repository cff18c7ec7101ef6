package cui

import (
	"image/color"
	"sort"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// Paint is what a Surface fills or strokes with: a SolidPaint, a
// LinearGradient, or a PatternPaint.
type Paint interface {
	isPaint()
}

// SolidPaint paints a single color.
type SolidPaint struct {
	Color Color
}

// GradientStop is one color stop of a gradient. Offset is in [0, 1].
type GradientStop struct {
	Offset float64
	Color  Color
}

// LinearGradient interpolates its stops along the line From→To, given in
// the coordinate space current when the paint is used.
type LinearGradient struct {
	From, To Vec2
	Stops    []GradientStop
}

// PatternPaint repeats an image across the painted area, anchored at the
// origin of the current coordinate space.
type PatternPaint struct {
	Image *ebiten.Image
}

func (SolidPaint) isPaint()     {}
func (LinearGradient) isPaint() {}
func (PatternPaint) isPaint()   {}

// At samples the gradient at parameter t along From→To.
func (g LinearGradient) At(t float64) Color {
	if len(g.Stops) == 0 {
		return ColorTransparent
	}
	stops := g.Stops
	if !sort.SliceIsSorted(stops, func(i, j int) bool { return stops[i].Offset < stops[j].Offset }) {
		stops = append([]GradientStop(nil), stops...)
		sort.SliceStable(stops, func(i, j int) bool { return stops[i].Offset < stops[j].Offset })
	}
	if t <= stops[0].Offset {
		return stops[0].Color
	}
	for i := 1; i < len(stops); i++ {
		if t <= stops[i].Offset {
			a, b := stops[i-1], stops[i]
			span := b.Offset - a.Offset
			if span <= 0 {
				return b.Color
			}
			f := (t - a.Offset) / span
			return Color{
				R: a.Color.R + (b.Color.R-a.Color.R)*f,
				G: a.Color.G + (b.Color.G-a.Color.G)*f,
				B: a.Color.B + (b.Color.B-a.Color.B)*f,
				A: a.Color.A + (b.Color.A-a.Color.A)*f,
			}
		}
	}
	return stops[len(stops)-1].Color
}

// Param projects p onto the gradient line and returns its clamped parameter.
func (g LinearGradient) Param(p Vec2) float64 {
	dx, dy := g.To.X-g.From.X, g.To.Y-g.From.Y
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return 0
	}
	return clamp01(((p.X-g.From.X)*dx + (p.Y-g.From.Y)*dy) / l2)
}

// ParsePaint converts a style value to a Paint. It accepts any Paint, a
// Color, a color.Color, or a CSS hex string (#rgb, #rgba, #rrggbb,
// #rrggbbaa) or "transparent".
func ParsePaint(v any) (Paint, error) {
	switch x := v.(type) {
	case Paint:
		return x, nil
	case Color:
		return SolidPaint{x}, nil
	case color.Color:
		return SolidPaint{colorFrom(x)}, nil
	case string:
		c, err := ParseColor(x)
		if err != nil {
			return nil, err
		}
		return SolidPaint{c}, nil
	default:
		return nil, newError("ParsePaint", KindInvalidStyleRule, "unsupported paint %v (%T)", v, v)
	}
}

// ParseColor parses a CSS hex color or "transparent".
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "transparent") {
		return ColorTransparent, nil
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return Color{}, newError("ParseColor", KindInvalidStyleRule, "%q is not a hex color", s)
	}
	switch len(hex) {
	case 3, 4:
		var b strings.Builder
		for _, r := range hex {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		hex = b.String()
	case 6, 8:
	default:
		return Color{}, newError("ParseColor", KindInvalidStyleRule, "%q has %d digits", s, len(hex))
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, newError("ParseColor", KindInvalidStyleRule, "%q is not a hex color", s)
	}
	return Color{
		R: float64(n>>24&0xff) / 255,
		G: float64(n>>16&0xff) / 255,
		B: float64(n>>8&0xff) / 255,
		A: float64(n&0xff) / 255,
	}, nil
}
