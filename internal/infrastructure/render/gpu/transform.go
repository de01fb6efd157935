package gpu

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// transform is the current matrix plus the stack Push saves onto.
// Translate, Rotate and Scale apply in local coordinates, like a 2D canvas.
type transform struct {
	m     ebiten.GeoM
	stack []ebiten.GeoM
}

func (t *transform) push() {
	t.stack = append(t.stack, t.m)
}

// pop with nothing pushed is ignored.
func (t *transform) pop() {
	if len(t.stack) == 0 {
		return
	}
	t.m = t.stack[len(t.stack)-1]
	t.stack = t.stack[:len(t.stack)-1]
}

func (t *transform) reset() {
	t.m.Reset()
	t.stack = t.stack[:0]
}

func (t *transform) local(op ebiten.GeoM) {
	op.Concat(t.m)
	t.m = op
}

func (t *transform) translate(x, y float64) {
	var op ebiten.GeoM
	op.Translate(x, y)
	t.local(op)
}

func (t *transform) rotate(angle float64) {
	var op ebiten.GeoM
	op.Rotate(angle)
	t.local(op)
}

func (t *transform) scale(sx, sy float64) {
	var op ebiten.GeoM
	op.Scale(sx, sy)
	t.local(op)
}

func (t *transform) apply(x, y float64) (float32, float32) {
	tx, ty := t.m.Apply(x, y)
	return float32(tx), float32(ty)
}

// lineScale is the average scale factor of the current matrix.
func (t *transform) lineScale() float64 {
	a, b := t.m.Element(0, 0), t.m.Element(0, 1)
	c, d := t.m.Element(1, 0), t.m.Element(1, 1)
	return math.Sqrt(math.Abs(a*d - b*c))
}

func (t *transform) depth() int {
	return len(t.stack)
}
