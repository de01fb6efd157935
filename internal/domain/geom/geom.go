// Package geom provides the small pure helpers shared by patterns and
// surfaces: random ranges, regular polygons and arc flattening.
package geom

import (
	"math"
	"math/rand"
)

// Point is a 2D point.
type Point struct {
	X, Y float64
}

// PathBuilder is the part of a canvas needed to trace a closed polygon.
type PathBuilder interface {
	NewPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
}

// RandomRange returns a uniformly distributed value in [min, max).
func RandomRange(rng *rand.Rand, min, max float64) float64 {
	return rng.Float64()*(max-min) + min
}

// PolygonVertices returns the vertices of a regular polygon centered on
// (x, y). The first vertex sits at angle rotation.
func PolygonVertices(x, y, radius float64, sides int, rotation float64) []Point {
	if sides < 3 {
		return nil
	}
	pts := make([]Point, sides)
	for i := 0; i < sides; i++ {
		angle := float64(i)/float64(sides)*math.Pi*2 + rotation
		pts[i] = Point{
			X: x + math.Cos(angle)*radius,
			Y: y + math.Sin(angle)*radius,
		}
	}
	return pts
}

// Polygon starts a new path on p and traces a closed regular polygon.
// Fewer than three sides leaves the path empty.
func Polygon(p PathBuilder, x, y, radius float64, sides int, rotation float64) {
	p.NewPath()
	pts := PolygonVertices(x, y, radius, sides, rotation)
	if len(pts) == 0 {
		return
	}
	p.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		p.LineTo(pt.X, pt.Y)
	}
	p.ClosePath()
}

// ArcSegments picks how many line segments approximate an arc of the given
// radius (in device pixels) and sweep so that each segment stays short.
func ArcSegments(radius, sweep float64) int {
	n := int(math.Ceil(math.Abs(sweep) * math.Abs(radius) / 4))
	if n < 8 {
		n = 8
	}
	if n > 256 {
		n = 256
	}
	return n
}

// ArcPoints flattens an elliptical arc centered on (x, y) into segments+1
// points running from angle1 to angle2.
func ArcPoints(x, y, rx, ry, angle1, angle2 float64, segments int) []Point {
	if segments < 1 {
		segments = 1
	}
	pts := make([]Point, segments+1)
	for i := 0; i <= segments; i++ {
		a := angle1 + (angle2-angle1)*float64(i)/float64(segments)
		pts[i] = Point{X: x + math.Cos(a)*rx, Y: y + math.Sin(a)*ry}
	}
	return pts
}
