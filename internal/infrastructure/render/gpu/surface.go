// Package gpu renders scenes into an offscreen ebiten image for the window.
package gpu

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/wenbian/internal/domain/geom"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Surface is a render.Surface over an offscreen *ebiten.Image. Paths are
// transformed as they are built and filled with DrawTriangles.
type Surface struct {
	img  *ebiten.Image
	xf   transform
	path *vector.Path
	// open reports whether the current subpath has a current point.
	open bool

	vertices []ebiten.Vertex
	indices  []uint16
}

// NewSurface creates a surface of the given size.
func NewSurface(w, h int) *Surface {
	return &Surface{
		img:  ebiten.NewImage(max(w, 1), max(h, 1)),
		path: &vector.Path{},
	}
}

// Image returns the offscreen image.
func (s *Surface) Image() *ebiten.Image {
	return s.img
}

// Present draws the surface onto the screen.
func (s *Surface) Present(screen *ebiten.Image) {
	screen.DrawImage(s.img, nil)
}

// Size implements canvas.Canvas.
func (s *Surface) Size() (float64, float64) {
	b := s.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// Resize implements render.Surface.
func (s *Surface) Resize(w, h int) {
	w, h = max(w, 1), max(h, 1)
	b := s.img.Bounds()
	if b.Dx() == w && b.Dy() == h {
		return
	}
	s.img.Deallocate()
	s.img = ebiten.NewImage(w, h)
}

// Reset drops the transform stack and the current path.
func (s *Surface) Reset() {
	s.xf.reset()
	s.NewPath()
}

func (s *Surface) Push()                  { s.xf.push() }
func (s *Surface) Pop()                   { s.xf.pop() }
func (s *Surface) Translate(x, y float64) { s.xf.translate(x, y) }
func (s *Surface) Rotate(angle float64)   { s.xf.rotate(angle) }
func (s *Surface) Scale(sx, sy float64)   { s.xf.scale(sx, sy) }

func (s *Surface) NewPath() {
	s.path = &vector.Path{}
	s.open = false
}

func (s *Surface) MoveTo(x, y float64) {
	s.path.MoveTo(s.xf.apply(x, y))
	s.open = true
}

func (s *Surface) LineTo(x, y float64) {
	if !s.open {
		s.MoveTo(x, y)
		return
	}
	s.path.LineTo(s.xf.apply(x, y))
}

func (s *Surface) QuadTo(cx, cy, x, y float64) {
	if !s.open {
		s.MoveTo(cx, cy)
	}
	x1, y1 := s.xf.apply(cx, cy)
	x2, y2 := s.xf.apply(x, y)
	s.path.QuadTo(x1, y1, x2, y2)
}

func (s *Surface) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	if !s.open {
		s.MoveTo(c1x, c1y)
	}
	x1, y1 := s.xf.apply(c1x, c1y)
	x2, y2 := s.xf.apply(c2x, c2y)
	x3, y3 := s.xf.apply(x, y)
	s.path.CubicTo(x1, y1, x2, y2, x3, y3)
}

// Arc is flattened in user space so non-uniform scales stay correct.
func (s *Surface) Arc(x, y, r, angle1, angle2 float64) {
	n := geom.ArcSegments(r*s.xf.lineScale(), angle2-angle1)
	pts := geom.ArcPoints(x, y, r, r, angle1, angle2, n)
	if s.open {
		s.LineTo(pts[0].X, pts[0].Y)
	} else {
		s.MoveTo(pts[0].X, pts[0].Y)
	}
	for _, p := range pts[1:] {
		s.path.LineTo(s.xf.apply(p.X, p.Y))
	}
}

func (s *Surface) Ellipse(x, y, rx, ry float64) {
	n := geom.ArcSegments(max(rx, ry)*s.xf.lineScale(), 2*math.Pi)
	pts := geom.ArcPoints(x, y, rx, ry, 0, 2*math.Pi, n)
	s.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:n] {
		s.path.LineTo(s.xf.apply(p.X, p.Y))
	}
	s.path.Close()
}

func (s *Surface) Rect(x, y, w, h float64) {
	s.rect(s.path, x, y, w, h)
	s.open = true
}

func (s *Surface) rect(p *vector.Path, x, y, w, h float64) {
	p.MoveTo(s.xf.apply(x, y))
	p.LineTo(s.xf.apply(x+w, y))
	p.LineTo(s.xf.apply(x+w, y+h))
	p.LineTo(s.xf.apply(x, y+h))
	p.Close()
}

func (s *Surface) ClosePath() {
	if s.open {
		s.path.Close()
	}
}

// Fill paints the current path with the nonzero rule and keeps it.
func (s *Surface) Fill(c color.Color) {
	s.fill(s.path, c)
}

// Stroke paints the outline of the current path and keeps it. The width is
// in user units.
func (s *Surface) Stroke(c color.Color, width float64) {
	s.stroke(s.path, c, width)
}

func (s *Surface) FillRect(x, y, w, h float64, c color.Color) {
	var p vector.Path
	s.rect(&p, x, y, w, h)
	s.fill(&p, c)
	s.NewPath()
}

func (s *Surface) StrokeRect(x, y, w, h float64, c color.Color, width float64) {
	var p vector.Path
	s.rect(&p, x, y, w, h)
	s.stroke(&p, c, width)
	s.NewPath()
}

// Clear replaces every pixel with c.
func (s *Surface) Clear(c color.Color) {
	s.img.Fill(c)
	s.NewPath()
}

func (s *Surface) fill(p *vector.Path, c color.Color) {
	s.vertices, s.indices = p.AppendVerticesAndIndicesForFilling(s.vertices[:0], s.indices[:0])
	s.draw(c, ebiten.FillRuleNonZero)
}

func (s *Surface) stroke(p *vector.Path, c color.Color, width float64) {
	op := &vector.StrokeOptions{
		Width:    float32(width * s.xf.lineScale()),
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapRound,
	}
	s.vertices, s.indices = p.AppendVerticesAndIndicesForStroke(s.vertices[:0], s.indices[:0], op)
	s.draw(c, ebiten.FillRuleFillAll)
}

func (s *Surface) draw(c color.Color, rule ebiten.FillRule) {
	if len(s.indices) == 0 {
		return
	}
	r, g, b, a := vertexColor(c)
	for i := range s.vertices {
		v := &s.vertices[i]
		v.SrcX, v.SrcY = 1, 1
		v.ColorR, v.ColorG, v.ColorB, v.ColorA = r, g, b, a
	}
	op := &ebiten.DrawTrianglesOptions{
		FillRule:  rule,
		AntiAlias: true,
	}
	s.img.DrawTriangles(s.vertices, s.indices, whiteSubImage, op)
}

// vertexColor returns straight-alpha components in 0..1.
func vertexColor(c color.Color) (r, g, b, a float32) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return float32(n.R) / 255, float32(n.G) / 255, float32(n.B) / 255, float32(n.A) / 255
}
