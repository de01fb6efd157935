// Package raster renders scenes on the CPU with gg. It backs the headless
// frame exporter and pixel-level tests.
package raster

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
)

// Surface is a render.Surface over an *image.RGBA.
type Surface struct {
	im    *image.RGBA
	dc    *gg.Context
	depth int
}

// NewSurface creates a transparent surface of the given size.
func NewSurface(w, h int) *Surface {
	s := &Surface{}
	s.alloc(max(w, 1), max(h, 1))
	return s
}

func (s *Surface) alloc(w, h int) {
	s.im = image.NewRGBA(image.Rect(0, 0, w, h))
	s.dc = gg.NewContextForRGBA(s.im)
	s.depth = 0
}

// Image returns the backing image. It is drawn into in place.
func (s *Surface) Image() *image.RGBA {
	return s.im
}

// Size implements canvas.Canvas.
func (s *Surface) Size() (float64, float64) {
	return float64(s.dc.Width()), float64(s.dc.Height())
}

// Resize implements render.Surface.
func (s *Surface) Resize(w, h int) {
	w, h = max(w, 1), max(h, 1)
	if w == s.dc.Width() && h == s.dc.Height() {
		return
	}
	s.alloc(w, h)
}

// Reset drops the transform stack and the current path.
func (s *Surface) Reset() {
	for ; s.depth > 0; s.depth-- {
		s.dc.Pop()
	}
	s.dc.Identity()
	s.dc.ClearPath()
}

func (s *Surface) Push() {
	s.dc.Push()
	s.depth++
}

// Pop with nothing pushed is ignored.
func (s *Surface) Pop() {
	if s.depth == 0 {
		return
	}
	s.dc.Pop()
	s.depth--
}

func (s *Surface) Translate(x, y float64) { s.dc.Translate(x, y) }
func (s *Surface) Rotate(angle float64)   { s.dc.Rotate(angle) }
func (s *Surface) Scale(sx, sy float64)   { s.dc.Scale(sx, sy) }

func (s *Surface) NewPath()            { s.dc.ClearPath() }
func (s *Surface) MoveTo(x, y float64) { s.dc.MoveTo(x, y) }
func (s *Surface) LineTo(x, y float64) { s.dc.LineTo(x, y) }
func (s *Surface) ClosePath()          { s.dc.ClosePath() }

func (s *Surface) QuadTo(cx, cy, x, y float64) {
	s.dc.QuadraticTo(cx, cy, x, y)
}

func (s *Surface) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	s.dc.CubicTo(c1x, c1y, c2x, c2y, x, y)
}

func (s *Surface) Arc(x, y, r, angle1, angle2 float64) {
	s.dc.DrawArc(x, y, r, angle1, angle2)
}

func (s *Surface) Ellipse(x, y, rx, ry float64) {
	s.dc.DrawEllipse(x, y, rx, ry)
}

func (s *Surface) Rect(x, y, w, h float64) {
	s.dc.DrawRectangle(x, y, w, h)
}

// Fill paints the current path and keeps it.
func (s *Surface) Fill(c color.Color) {
	s.dc.SetColor(c)
	s.dc.FillPreserve()
}

// Stroke paints the outline of the current path and keeps it. The width is
// in user units, so it scales with the transform.
func (s *Surface) Stroke(c color.Color, width float64) {
	s.dc.SetColor(c)
	s.dc.SetLineWidth(width * s.lineScale())
	s.dc.StrokePreserve()
}

func (s *Surface) FillRect(x, y, w, h float64, c color.Color) {
	s.dc.ClearPath()
	s.dc.DrawRectangle(x, y, w, h)
	s.dc.SetColor(c)
	s.dc.Fill()
}

func (s *Surface) StrokeRect(x, y, w, h float64, c color.Color, width float64) {
	s.dc.ClearPath()
	s.dc.DrawRectangle(x, y, w, h)
	s.dc.SetColor(c)
	s.dc.SetLineWidth(width * s.lineScale())
	s.dc.Stroke()
}

// Clear replaces every pixel with c.
func (s *Surface) Clear(c color.Color) {
	s.dc.ClearPath()
	s.dc.SetColor(c)
	s.dc.Clear()
}

// lineScale is the average scale factor of the current transform.
func (s *Surface) lineScale() float64 {
	x0, y0 := s.dc.TransformPoint(0, 0)
	x1, y1 := s.dc.TransformPoint(1, 0)
	x2, y2 := s.dc.TransformPoint(0, 1)
	det := (x1-x0)*(y2-y0) - (y1-y0)*(x2-x0)
	return math.Sqrt(math.Abs(det))
}
