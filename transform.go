package cui

import "math"

// affine is a 2D affine matrix [a, b, c, d, tx, ty]:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
type affine [6]float64

var identityAffine = affine{1, 0, 0, 1, 0, 0}

// mul returns m * n, applying n first.
func (m affine) mul(n affine) affine {
	return affine{
		m[0]*n[0] + m[2]*n[1],
		m[1]*n[0] + m[3]*n[1],
		m[0]*n[2] + m[2]*n[3],
		m[1]*n[2] + m[3]*n[3],
		m[0]*n[4] + m[2]*n[5] + m[4],
		m[1]*n[4] + m[3]*n[5] + m[5],
	}
}

func (m affine) translate(dx, dy float64) affine {
	return m.mul(affine{1, 0, 0, 1, dx, dy})
}

func (m affine) scale(sx, sy float64) affine {
	return m.mul(affine{sx, 0, 0, sy, 0, 0})
}

// apply maps a local point through m.
func (m affine) apply(x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// invert returns the inverse of m, or the identity if m is singular.
func (m affine) invert() affine {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityAffine
	}
	inv := 1.0 / det
	a := m[3] * inv
	b := -m[1] * inv
	c := -m[2] * inv
	d := m[0] * inv
	return affine{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// scaleFactor returns the mean axis scale of m, used to scale stroke widths
// and font sizes.
func (m affine) scaleFactor() float64 {
	sx := m[0]*m[0] + m[1]*m[1]
	sy := m[2]*m[2] + m[3]*m[3]
	return (math.Sqrt(sx) + math.Sqrt(sy)) / 2
}

// transformStack is the Save/Restore stack of a surface. The last entry is
// the current transform and is never popped.
type transformStack struct {
	stack []affine
}

func (s *transformStack) reset() {
	s.stack = append(s.stack[:0], identityAffine)
}

func (s *transformStack) current() affine {
	if len(s.stack) == 0 {
		return identityAffine
	}
	return s.stack[len(s.stack)-1]
}

func (s *transformStack) save() {
	s.stack = append(s.stack, s.current())
}

func (s *transformStack) restore() {
	if len(s.stack) > 1 {
		s.stack = s.stack[:len(s.stack)-1]
	}
}

func (s *transformStack) set(m affine) {
	if len(s.stack) == 0 {
		s.stack = append(s.stack, m)
		return
	}
	s.stack[len(s.stack)-1] = m
}

func (s *transformStack) translate(dx, dy float64) { s.set(s.current().translate(dx, dy)) }
func (s *transformStack) scale(sx, sy float64)     { s.set(s.current().scale(sx, sy)) }
