package cui

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to four float64 values together. Immediate-mode
// code keeps the animated values in its own state and reads them back when
// it places widgets; create a group with TweenValue, TweenVec2, TweenColor,
// or TweenRect and call Update once per frame.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	Done   bool
}

func (g *TweenGroup) add(field *float64, to float64, duration float32, fn ease.TweenFunc) {
	g.tweens[g.count] = gween.New(float32(*field), float32(to), duration, fn)
	g.fields[g.count] = field
	g.count++
}

// Update advances every tween by dt seconds and writes the current values
// back. Done is set once all of them have finished.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// Reset rewinds the group to its starting values.
func (g *TweenGroup) Reset() {
	for i := 0; i < g.count; i++ {
		val, _ := g.tweens[i].Set(0)
		*g.fields[i] = float64(val)
	}
	g.Done = false
}

// TweenValue animates *v to to over duration seconds.
func TweenValue(v *float64, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{}
	g.add(v, to, duration, fn)
	return g
}

// TweenVec2 animates both components of *v.
func TweenVec2(v *Vec2, to Vec2, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{}
	g.add(&v.X, to.X, duration, fn)
	g.add(&v.Y, to.Y, duration, fn)
	return g
}

// TweenColor animates all four components of *c.
func TweenColor(c *Color, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{}
	g.add(&c.R, to.R, duration, fn)
	g.add(&c.G, to.G, duration, fn)
	g.add(&c.B, to.B, duration, fn)
	g.add(&c.A, to.A, duration, fn)
	return g
}

// TweenRect animates the position and size of *r.
func TweenRect(r *Rect, to Rect, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{}
	g.add(&r.X, to.X, duration, fn)
	g.add(&r.Y, to.Y, duration, fn)
	g.add(&r.Width, to.Width, duration, fn)
	g.add(&r.Height, to.Height, duration, fn)
	return g
}
