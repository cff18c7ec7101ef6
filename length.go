package cui

import (
	"math"
	"strconv"
	"strings"
)

// remSize is the pixel size of one rem.
const remSize = 16

// Insets is a normalized four-side box-model value.
type Insets struct {
	Top, Right, Bottom, Left float64
}

// Radius describes the corner radii of a rounded rectangle. Each corner
// carries independent horizontal (X) and vertical (Y) radii.
type Radius struct {
	TopLeft, TopRight, BottomRight, BottomLeft Vec2
}

// UniformRadius returns a radius with r on both axes of every corner.
func UniformRadius(r float64) Radius {
	v := Vec2{r, r}
	return Radius{v, v, v, v}
}

// IsZero reports whether every corner is square.
func (r Radius) IsZero() bool {
	return r == Radius{}
}

// Clamp scales the radii down uniformly so that adjacent corners never
// overlap within a w by h rectangle.
func (r Radius) Clamp(w, h float64) Radius {
	f := 1.0
	fit := func(span, a, b float64) {
		if a+b > span && a+b > 0 {
			f = math.Min(f, span/(a+b))
		}
	}
	fit(w, r.TopLeft.X, r.TopRight.X)
	fit(w, r.BottomLeft.X, r.BottomRight.X)
	fit(h, r.TopLeft.Y, r.BottomLeft.Y)
	fit(h, r.TopRight.Y, r.BottomRight.Y)
	if f == 1 {
		return r
	}
	scale := func(v Vec2) Vec2 { return Vec2{v.X * f, v.Y * f} }
	return Radius{scale(r.TopLeft), scale(r.TopRight), scale(r.BottomRight), scale(r.BottomLeft)}
}

// ParseLength converts a length literal to pixels. Numbers are used as-is,
// "Npx" rounds N up to a whole pixel and "Nrem" is N*16. As in CSS, a zero
// string needs no unit.
func ParseLength(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case string:
		return parseLengthString(n)
	default:
		return 0, newError("ParseLength", KindInvalidLength, "unsupported length %v (%T)", v, v)
	}
}

func parseLengthString(s string) (float64, error) {
	s = strings.TrimSpace(s)
	var num string
	var rem bool
	switch {
	case strings.HasSuffix(s, "rem"):
		num = strings.TrimSuffix(s, "rem")
		rem = true
	case strings.HasSuffix(s, "px"):
		num = strings.TrimSuffix(s, "px")
	default:
		if f, err := strconv.ParseFloat(s, 64); err == nil && f == 0 {
			return 0, nil
		}
		return 0, newError("ParseLength", KindInvalidLength, "%q has no px or rem unit", s)
	}
	f, err := strconv.ParseFloat(num, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, newError("ParseLength", KindInvalidLength, "%q is not a number", s)
	}
	if rem {
		return f * remSize, nil
	}
	return math.Ceil(f), nil
}

// splitValues turns a box-model literal into its 1–4 component values.
func splitValues(op string, v any) ([]any, error) {
	var vals []any
	switch x := v.(type) {
	case string:
		for _, f := range strings.Fields(x) {
			vals = append(vals, f)
		}
	case []any:
		vals = x
	case []float64:
		for _, f := range x {
			vals = append(vals, f)
		}
	case []int:
		for _, f := range x {
			vals = append(vals, f)
		}
	case []string:
		for _, f := range x {
			vals = append(vals, f)
		}
	default:
		vals = []any{v}
	}
	if len(vals) == 0 || len(vals) > 4 {
		return nil, newError(op, KindInvalidStyleRule, "want 1 to 4 values, got %d in %v", len(vals), v)
	}
	return vals, nil
}

// expandSides maps 1–4 values onto four slots using the CSS shorthand rules.
func expandSides[T any](vals []T) [4]T {
	switch len(vals) {
	case 1:
		return [4]T{vals[0], vals[0], vals[0], vals[0]}
	case 2:
		return [4]T{vals[0], vals[1], vals[0], vals[1]}
	case 3:
		return [4]T{vals[0], vals[1], vals[2], vals[1]}
	default:
		return [4]T{vals[0], vals[1], vals[2], vals[3]}
	}
}

// ParsePadding normalizes a padding literal into Insets. It accepts a single
// length, a space-separated string of up to four lengths, or a slice of up
// to four lengths, in top, right, bottom, left order.
func ParsePadding(v any) (Insets, error) {
	vals, err := splitValues("ParsePadding", v)
	if err != nil {
		return Insets{}, err
	}
	lengths := make([]float64, len(vals))
	for i, e := range vals {
		if lengths[i], err = ParseLength(e); err != nil {
			return Insets{}, err
		}
	}
	s := expandSides(lengths)
	return Insets{Top: s[0], Right: s[1], Bottom: s[2], Left: s[3]}, nil
}

// ParseRadius normalizes a radius literal. It accepts the padding forms in
// top-left, top-right, bottom-right, bottom-left order, where each corner
// may also be a two-axis pair ([2]float64 or a two-element slice) or a Vec2.
// A bare [2]float64 or Vec2 applies to every corner.
func ParseRadius(v any) (Radius, error) {
	switch x := v.(type) {
	case Vec2, [2]float64:
		c, err := parseCorner(x)
		if err != nil {
			return Radius{}, err
		}
		return Radius{c, c, c, c}, nil
	}
	vals, err := splitValues("ParseRadius", v)
	if err != nil {
		return Radius{}, err
	}
	corners := make([]Vec2, len(vals))
	for i, e := range vals {
		if corners[i], err = parseCorner(e); err != nil {
			return Radius{}, err
		}
	}
	s := expandSides(corners)
	return Radius{TopLeft: s[0], TopRight: s[1], BottomRight: s[2], BottomLeft: s[3]}, nil
}

func parseCorner(v any) (Vec2, error) {
	switch x := v.(type) {
	case Vec2:
		return x, nil
	case [2]float64:
		return Vec2{x[0], x[1]}, nil
	case []float64:
		if len(x) != 2 {
			return Vec2{}, newError("ParseRadius", KindInvalidStyleRule, "corner pair needs 2 values, got %d", len(x))
		}
		return Vec2{x[0], x[1]}, nil
	case []any:
		if len(x) != 2 {
			return Vec2{}, newError("ParseRadius", KindInvalidStyleRule, "corner pair needs 2 values, got %d", len(x))
		}
		rx, err := ParseLength(x[0])
		if err != nil {
			return Vec2{}, err
		}
		ry, err := ParseLength(x[1])
		if err != nil {
			return Vec2{}, err
		}
		return Vec2{rx, ry}, nil
	default:
		r, err := ParseLength(v)
		if err != nil {
			return Vec2{}, err
		}
		return Vec2{r, r}, nil
	}
}
