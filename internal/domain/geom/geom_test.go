package geom

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pathCall struct {
	op   string
	x, y float64
}

type recordingPath struct {
	calls []pathCall
}

func (p *recordingPath) NewPath()            { p.calls = append(p.calls, pathCall{op: "new"}) }
func (p *recordingPath) MoveTo(x, y float64) { p.calls = append(p.calls, pathCall{"move", x, y}) }
func (p *recordingPath) LineTo(x, y float64) { p.calls = append(p.calls, pathCall{"line", x, y}) }
func (p *recordingPath) ClosePath()          { p.calls = append(p.calls, pathCall{op: "close"}) }

func TestRandomRange_StaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		v := RandomRange(rng, 50, 75)
		assert.GreaterOrEqual(t, v, 50.0)
		assert.Less(t, v, 75.0)
	}
}

func TestRandomRange_Deterministic(t *testing.T) {
	a := rand.New(rand.NewSource(42))
	b := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		assert.Equal(t, RandomRange(a, -1, 1), RandomRange(b, -1, 1))
	}
}

func TestPolygonVertices(t *testing.T) {
	pts := PolygonVertices(10, 20, 5, 6, 0)
	require.Len(t, pts, 6)

	assert.InDelta(t, 15, pts[0].X, 1e-9)
	assert.InDelta(t, 20, pts[0].Y, 1e-9)
	for _, p := range pts {
		assert.InDelta(t, 5, math.Hypot(p.X-10, p.Y-20), 1e-9)
	}
}

func TestPolygonVertices_Rotation(t *testing.T) {
	pts := PolygonVertices(0, 0, 1, 4, math.Pi/2)
	require.Len(t, pts, 4)
	assert.InDelta(t, 0, pts[0].X, 1e-9)
	assert.InDelta(t, 1, pts[0].Y, 1e-9)
}

func TestPolygonVertices_Degenerate(t *testing.T) {
	assert.Nil(t, PolygonVertices(0, 0, 1, 2, 0))
}

func TestPolygon_TracesClosedPath(t *testing.T) {
	p := &recordingPath{}
	Polygon(p, 0, 0, 50, 6, math.Pi/6)

	require.Len(t, p.calls, 8)
	assert.Equal(t, "new", p.calls[0].op)
	assert.Equal(t, "move", p.calls[1].op)
	for _, c := range p.calls[2:7] {
		assert.Equal(t, "line", c.op)
	}
	assert.Equal(t, "close", p.calls[7].op)
}

func TestPolygon_DegenerateOnlyResetsPath(t *testing.T) {
	p := &recordingPath{}
	Polygon(p, 0, 0, 50, 1, 0)
	require.Len(t, p.calls, 1)
	assert.Equal(t, "new", p.calls[0].op)
}

func TestArcSegments(t *testing.T) {
	assert.Equal(t, 8, ArcSegments(1, math.Pi*2))
	assert.Equal(t, 256, ArcSegments(10000, math.Pi*2))
	assert.Equal(t, 79, ArcSegments(50, math.Pi*2))
}

func TestArcPoints(t *testing.T) {
	pts := ArcPoints(0, 0, 10, 5, 0, math.Pi, 4)
	require.Len(t, pts, 5)

	assert.InDelta(t, 10, pts[0].X, 1e-9)
	assert.InDelta(t, 0, pts[0].Y, 1e-9)
	assert.InDelta(t, 0, pts[2].X, 1e-9)
	assert.InDelta(t, 5, pts[2].Y, 1e-9)
	assert.InDelta(t, -10, pts[4].X, 1e-9)
}
