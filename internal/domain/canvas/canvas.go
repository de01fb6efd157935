// Package canvas defines the immediate-mode drawing surface scenes render to.
//
// The API follows the HTML canvas 2D context closely so patterns read like
// the sketches they were designed as: a transform stack, a current path built
// from subpaths, and fill/stroke operations that paint the current path.
package canvas

import "image/color"

// Canvas is the drawing surface handed to scenes each frame.
//
// Path coordinates are transformed by the current matrix when they are added.
// Fill and Stroke paint the current path and keep it, so a path can be filled
// and then stroked. NewPath discards it. FillRect, StrokeRect and Clear paint
// immediately and leave the current path empty.
type Canvas interface {
	// Size returns the surface size in pixels.
	Size() (width, height float64)

	// Push saves the current transform; Pop restores the last saved one.
	Push()
	Pop()
	Translate(x, y float64)
	Rotate(angle float64)
	Scale(sx, sy float64)

	NewPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadTo(cx, cy, x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
	// Arc adds a circular arc from angle1 to angle2 (radians, clockwise on
	// screen). If a subpath is open a line joins its current point to the
	// start of the arc.
	Arc(x, y, r, angle1, angle2 float64)
	// Ellipse adds a closed axis-aligned ellipse as a new subpath.
	Ellipse(x, y, rx, ry float64)
	// Rect adds a closed rectangle as a new subpath.
	Rect(x, y, w, h float64)
	ClosePath()

	Fill(c color.Color)
	Stroke(c color.Color, width float64)
	FillRect(x, y, w, h float64, c color.Color)
	StrokeRect(x, y, w, h float64, c color.Color, width float64)

	// Clear replaces every pixel with c, ignoring the transform.
	Clear(c color.Color)
}

// Resetter is implemented by surfaces that can drop their transform stack
// and current path. The scheduler resets on every activation so a scene
// that failed mid-draw cannot leak state into the next one.
type Resetter interface {
	Reset()
}
