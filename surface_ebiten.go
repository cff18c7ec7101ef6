package cui

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

// kappa places the control points of a cubic Bézier approximating a
// quarter ellipse.
const kappa = 0.5522847498

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// DefaultFace returns Go Regular at size pixels.
func DefaultFace(size float64) (*text.GoTextFace, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load default face: %w", err)
	}
	return &text.GoTextFace{Source: src, Size: size}, nil
}

// EbitenSurface is a Surface backed by an *ebiten.Image. Solid paints use
// the vector package directly; gradients and patterns are tessellated and
// drawn with DrawTriangles.
type EbitenSurface struct {
	target *ebiten.Image
	face   text.Face
	xf     transformStack

	path    vector.Path
	hasPath bool

	verts []ebiten.Vertex
	inds  []uint16
}

// NewEbitenSurface returns a surface drawing to target with face.
func NewEbitenSurface(target *ebiten.Image, face text.Face) *EbitenSurface {
	s := &EbitenSurface{target: target, face: face}
	s.xf.reset()
	return s
}

// SetTarget changes the image drawn to, typically once per frame with the
// screen passed to Draw.
func (s *EbitenSurface) SetTarget(target *ebiten.Image) { s.target = target }

// Target returns the image drawn to.
func (s *EbitenSurface) Target() *ebiten.Image { return s.target }

// SetFace changes the text face.
func (s *EbitenSurface) SetFace(face text.Face) { s.face = face }

func (s *EbitenSurface) Size() (w, h float64) {
	if s.target == nil {
		return 0, 0
	}
	b := s.target.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (s *EbitenSurface) Reset() {
	s.xf.reset()
	s.BeginPath()
}

func (s *EbitenSurface) Save()                    { s.xf.save() }
func (s *EbitenSurface) Restore()                 { s.xf.restore() }
func (s *EbitenSurface) Translate(dx, dy float64) { s.xf.translate(dx, dy) }
func (s *EbitenSurface) Scale(sx, sy float64)     { s.xf.scale(sx, sy) }

func (s *EbitenSurface) BeginPath() {
	s.path = vector.Path{}
	s.hasPath = false
}

// RoundRect appends a closed rounded rectangle to the current path,
// transformed to device space.
func (s *EbitenSurface) RoundRect(r Rect, radius Radius) {
	appendRoundRect(&s.path, s.xf.current(), r, radius.Clamp(r.Width, r.Height))
	s.hasPath = true
}

func appendRoundRect(p *vector.Path, m affine, r Rect, rad Radius) {
	pt := func(x, y float64) (float32, float32) {
		dx, dy := m.apply(x, y)
		return float32(dx), float32(dy)
	}
	moveTo := func(x, y float64) { p.MoveTo(pt(x, y)) }
	lineTo := func(x, y float64) { p.LineTo(pt(x, y)) }
	cubicTo := func(x1, y1, x2, y2, x, y float64) {
		ax, ay := pt(x1, y1)
		bx, by := pt(x2, y2)
		cx, cy := pt(x, y)
		p.CubicTo(ax, ay, bx, by, cx, cy)
	}

	x0, y0, x1, y1 := r.X, r.Y, r.Right(), r.Bottom()
	tl, tr, br, bl := rad.TopLeft, rad.TopRight, rad.BottomRight, rad.BottomLeft

	moveTo(x0+tl.X, y0)
	lineTo(x1-tr.X, y0)
	if tr != (Vec2{}) {
		cubicTo(x1-tr.X*(1-kappa), y0, x1, y0+tr.Y*(1-kappa), x1, y0+tr.Y)
	}
	lineTo(x1, y1-br.Y)
	if br != (Vec2{}) {
		cubicTo(x1, y1-br.Y*(1-kappa), x1-br.X*(1-kappa), y1, x1-br.X, y1)
	}
	lineTo(x0+bl.X, y1)
	if bl != (Vec2{}) {
		cubicTo(x0+bl.X*(1-kappa), y1, x0, y1-bl.Y*(1-kappa), x0, y1-bl.Y)
	}
	lineTo(x0, y0+tl.Y)
	if tl != (Vec2{}) {
		cubicTo(x0, y0+tl.Y*(1-kappa), x0+tl.X*(1-kappa), y0, x0+tl.X, y0)
	}
	p.Close()
}

func (s *EbitenSurface) Fill(p Paint) {
	if !s.hasPath || s.target == nil || p == nil {
		return
	}
	if sp, ok := p.(SolidPaint); ok {
		op := &vector.DrawPathOptions{AntiAlias: true}
		op.ColorScale.ScaleWithColor(sp.Color)
		vector.FillPath(s.target, &s.path, nil, op)
		return
	}
	s.verts, s.inds = s.path.AppendVerticesAndIndicesForFilling(s.verts[:0], s.inds[:0])
	s.drawTriangles(p, ebiten.FillRuleNonZero)
}

func (s *EbitenSurface) Stroke(p Paint, width float64) {
	if !s.hasPath || s.target == nil || p == nil || width <= 0 {
		return
	}
	sop := &vector.StrokeOptions{
		Width:    float32(width * s.xf.current().scaleFactor()),
		LineJoin: vector.LineJoinRound,
	}
	if sp, ok := p.(SolidPaint); ok {
		op := &vector.DrawPathOptions{AntiAlias: true}
		op.ColorScale.ScaleWithColor(sp.Color)
		vector.StrokePath(s.target, &s.path, sop, op)
		return
	}
	s.verts, s.inds = s.path.AppendVerticesAndIndicesForStroke(s.verts[:0], s.inds[:0], sop)
	s.drawTriangles(p, ebiten.FillRuleFillAll)
}

// drawTriangles colors the tessellated vertices with a gradient or pattern
// and submits them.
func (s *EbitenSurface) drawTriangles(p Paint, rule ebiten.FillRule) {
	inv := s.xf.current().invert()
	src := whiteSubImage
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true, FillRule: rule}
	switch pp := p.(type) {
	case LinearGradient:
		shadeGradient(s.verts, inv, pp)
	case PatternPaint:
		if pp.Image == nil {
			return
		}
		src = pp.Image
		op.Address = ebiten.AddressRepeat
		mapPattern(s.verts, inv, pp.Image.Bounds().Min)
	default:
		return
	}
	s.target.DrawTriangles(s.verts, s.inds, src, op)
}

// shadeGradient assigns each device-space vertex the premultiplied gradient
// color at its local position.
func shadeGradient(vs []ebiten.Vertex, inv affine, g LinearGradient) {
	for i := range vs {
		lx, ly := inv.apply(float64(vs[i].DstX), float64(vs[i].DstY))
		c := g.At(g.Param(Vec2{lx, ly}))
		a := clamp01(c.A)
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(clamp01(c.R) * a)
		vs[i].ColorG = float32(clamp01(c.G) * a)
		vs[i].ColorB = float32(clamp01(c.B) * a)
		vs[i].ColorA = float32(a)
	}
}

// mapPattern anchors the pattern at the local origin.
func mapPattern(vs []ebiten.Vertex, inv affine, origin image.Point) {
	for i := range vs {
		lx, ly := inv.apply(float64(vs[i].DstX), float64(vs[i].DstY))
		vs[i].SrcX = float32(lx) + float32(origin.X)
		vs[i].SrcY = float32(ly) + float32(origin.Y)
		vs[i].ColorR, vs[i].ColorG, vs[i].ColorB, vs[i].ColorA = 1, 1, 1, 1
	}
}

// deviceRect maps r through the current transform. The transform only
// translates and scales, so the result stays axis-aligned.
func (s *EbitenSurface) deviceRect(r Rect) (x, y, w, h float32) {
	m := s.xf.current()
	x0, y0 := m.apply(r.X, r.Y)
	x1, y1 := m.apply(r.Right(), r.Bottom())
	return float32(min(x0, x1)), float32(min(y0, y1)), float32(math.Abs(x1 - x0)), float32(math.Abs(y1 - y0))
}

func (s *EbitenSurface) FillRect(r Rect, p Paint) {
	if s.target == nil || p == nil {
		return
	}
	if sp, ok := p.(SolidPaint); ok {
		x, y, w, h := s.deviceRect(r)
		vector.FillRect(s.target, x, y, w, h, sp.Color, true)
		return
	}
	s.BeginPath()
	s.RoundRect(r, Radius{})
	s.Fill(p)
	s.BeginPath()
}

func (s *EbitenSurface) StrokeRect(r Rect, p Paint, width float64) {
	if s.target == nil || p == nil || width <= 0 {
		return
	}
	if sp, ok := p.(SolidPaint); ok {
		x, y, w, h := s.deviceRect(r)
		vector.StrokeRect(s.target, x, y, w, h, float32(width*s.xf.current().scaleFactor()), sp.Color, true)
		return
	}
	s.BeginPath()
	s.RoundRect(r, Radius{})
	s.Stroke(p, width)
	s.BeginPath()
}

func (s *EbitenSurface) MeasureText(str string) TextMetrics {
	if s.face == nil {
		return TextMetrics{}
	}
	m := s.face.Metrics()
	return TextMetrics{
		Advance: text.Advance(str, s.face),
		Ascent:  m.HAscent,
		Descent: m.HDescent,
	}
}

// FillText draws str with the top-left of its line box at (x, y). Gradient
// paints use their midpoint color; patterns are not applied to text.
func (s *EbitenSurface) FillText(str string, x, y float64, p Paint) {
	if s.target == nil || s.face == nil || p == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.GeoM.Concat(s.xf.current().geoM())
	op.ColorScale.ScaleWithColor(textColor(p))
	text.Draw(s.target, str, s.face, op)
}

func textColor(p Paint) Color {
	switch pp := p.(type) {
	case SolidPaint:
		return pp.Color
	case LinearGradient:
		return pp.At(0.5)
	default:
		return ColorWhite
	}
}

func (m affine) geoM() ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}

// Snapshot reads the target back as a straight-alpha image.
func (s *EbitenSurface) Snapshot() (image.Image, error) {
	if s.target == nil {
		return nil, fmt.Errorf("snapshot: no target image")
	}
	b := s.target.Bounds()
	w, h := b.Dx(), b.Dy()
	pixels := make([]byte, 4*w*h)
	s.target.ReadPixels(pixels)

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(pixels); i += 4 {
		r, g, bl, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			bl = uint8(min(int(bl)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = bl
		img.Pix[i+3] = a
	}
	return img, nil
}
