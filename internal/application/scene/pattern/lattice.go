package pattern

import (
	"math"

	"github.com/younwookim/wenbian/internal/application/scene"
	"github.com/younwookim/wenbian/internal/domain/geom"
	"github.com/younwookim/wenbian/internal/domain/palette"
)

// Window frame stroke.
var latticeInk = palette.RGBA(0x55, 0x55, 0x55, 1)

// drawLattice tiles breathing diamonds with a small square in each.
func drawLattice(dc *scene.DrawContext) error {
	w, h, err := surfaceSize(dc)
	if err != nil {
		return err
	}
	c := dc.Canvas
	t := float64(dc.Frame)

	wash(c, w, h, palette.Fade(palette.White, 0.2))

	const size = 80.0
	for x := 0.0; x < w; x += size {
		for y := 0.0; y < h; y += size {
			s := math.Sin((x+y)*0.01+t*0.02)*0.2 + 0.8

			c.Push()
			c.Translate(x+size/2, y+size/2)
			c.Scale(s, s)
			c.NewPath()
			c.MoveTo(0, -size/2)
			c.LineTo(size/2, 0)
			c.LineTo(0, size/2)
			c.LineTo(-size/2, 0)
			c.ClosePath()
			c.Stroke(latticeInk, 2)

			c.NewPath()
			c.Rect(-10, -10, 20, 20)
			c.Stroke(latticeInk, 2)
			c.Pop()
		}
	}
	return nil
}

// drawTortoiseShell tiles breathing hexagons, each with a gold center.
func drawTortoiseShell(dc *scene.DrawContext) error {
	w, h, err := surfaceSize(dc)
	if err != nil {
		return err
	}
	c := dc.Canvas
	t := float64(dc.Frame)

	wash(c, w, h, palette.Fade(palette.Bg, 0.2))

	const hexRadius = 50.0
	hexHeight := math.Sqrt(3) * hexRadius
	wOffset := hexRadius * 1.5
	cols := int(math.Ceil(w/wOffset)) + 1
	rows := int(math.Ceil(h/hexHeight)) + 1

	for i := 0; i < cols; i++ {
		for j := 0; j < rows; j++ {
			fi, fj := float64(i), float64(j)
			x := fi * wOffset
			y := fj*hexHeight + float64(i%2)*(hexHeight/2)
			r := hexRadius * (0.8 + math.Sin(t*0.02+fi*0.5+fj*0.5)*0.2)

			geom.Polygon(c, x, y, r, 6, math.Pi/6)
			c.Stroke(palette.Jade, 2)

			circle(c, x, y, 5)
			c.Fill(palette.Gold)
		}
	}
	return nil
}

// drawCoins tiles staggered coins; the square holes turn slowly.
func drawCoins(dc *scene.DrawContext) error {
	w, h, err := surfaceSize(dc)
	if err != nil {
		return err
	}
	c := dc.Canvas
	t := float64(dc.Frame)

	wash(c, w, h, palette.Fade(palette.Bg, 0.2))

	const (
		r    = 40.0
		gap  = 10.0
		d    = r*2 + gap
		hole = r / 1.5
	)
	for x := 0.0; x < w; x += d {
		for row := 0; float64(row)*d < h; row++ {
			cx := x + float64(row%2)*d/2
			cy := float64(row) * d

			circle(c, cx, cy, r)
			c.Stroke(palette.Gold, 2)

			c.Push()
			c.Translate(cx, cy)
			c.Rotate(t * 0.01)
			c.FillRect(-hole/2, -hole/2, hole, hole, palette.Bg)
			c.StrokeRect(-hole/2, -hole/2, hole, hole, palette.Gold, 2)
			c.Pop()
		}
	}
	return nil
}

// drawPearls tiles rotating roundels: a ring of pearls around a pulsing core.
func drawPearls(dc *scene.DrawContext) error {
	w, h, err := surfaceSize(dc)
	if err != nil {
		return err
	}
	c := dc.Canvas
	t := float64(dc.Frame)

	wash(c, w, h, palette.Fade(palette.Bg, 0.3))

	const (
		size      = 100.0
		beadCount = 12
		radius    = 35.0
	)
	cols := int(math.Ceil(w / size))
	rows := int(math.Ceil(h / size))
	core := 15 + math.Sin(t*0.05)*5

	for i := 0; i < cols; i++ {
		for j := 0; j < rows; j++ {
			c.Push()
			c.Translate(float64(i)*size+size/2, float64(j)*size+size/2)
			c.Rotate(t*0.01 + float64(i+j)*0.5)

			c.NewPath()
			for k := 0; k < beadCount; k++ {
				angle := float64(k) / beadCount * math.Pi * 2
				dot(c, math.Cos(angle)*radius, math.Sin(angle)*radius, 3)
			}
			c.Fill(palette.White)

			fill := palette.Red
			if (i+j)%2 == 0 {
				fill = palette.Blue
			}
			circle(c, 0, 0, core)
			c.Fill(fill)
			c.Pop()
		}
	}
	return nil
}

// drawMeander tiles nested squares that grow and shrink in a diagonal wave.
func drawMeander(dc *scene.DrawContext) error {
	w, h, err := surfaceSize(dc)
	if err != nil {
		return err
	}
	c := dc.Canvas
	t := float64(dc.Frame)

	wash(c, w, h, palette.Fade(palette.Bg, 0.2))

	const cellSize = 60.0
	cols := int(math.Ceil(w / cellSize))
	rows := int(math.Ceil(h / cellSize))
	for i := 0; i < cols; i++ {
		for j := 0; j < rows; j++ {
			x := float64(i) * cellSize
			y := float64(j) * cellSize
			phase := float64(i+j)*0.2 + t*0.02
			size := (math.Sin(phase)*0.5 + 0.5) * cellSize * 0.8
			offset := (cellSize - size) / 2

			c.StrokeRect(x+offset, y+offset, size, size, palette.Gold, 2)
			if size > 15 {
				c.StrokeRect(x+offset+6, y+offset+6, size-12, size-12, palette.Gold, 2)
			}
		}
	}
	return nil
}

// drawScales rows of half-circle scales rippling in a wave.
func drawScales(dc *scene.DrawContext) error {
	w, h, err := surfaceSize(dc)
	if err != nil {
		return err
	}
	c := dc.Canvas
	t := float64(dc.Frame)

	wash(c, w, h, palette.Fade(palette.Bg, 0.2))

	const r = 30.0
	rows := int(math.Ceil(h / r))
	cols := int(math.Ceil(w / (r * 2)))
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			cx := float64(x)*r*2 + float64(y%2)*r
			cy := float64(y) * r
			offset := math.Sin(float64(x)*0.5+t*0.05+float64(y)*0.2) * 5

			col := palette.Cyan
			if (x+y)%3 == 0 {
				col = palette.Gold
			}
			c.NewPath()
			c.Arc(cx, cy-offset, r, 0, math.Pi)
			c.Stroke(col, 2)
		}
	}
	return nil
}

// drawBrocade lays a gold grid over a blue wash, crossing every other cell
// and twinkling cell centers.
func drawBrocade(dc *scene.DrawContext) error {
	w, h, err := surfaceSize(dc)
	if err != nil {
		return err
	}
	c := dc.Canvas
	t := float64(dc.Frame)

	wash(c, w, h, palette.Fade(palette.Blue, 0.2))

	const size = 60
	for xi := 0; float64(xi) < w; xi += size {
		for yi := 0; float64(yi) < h; yi += size {
			x, y := float64(xi), float64(yi)
			c.StrokeRect(x, y, size, size, palette.Gold, 1)

			if (xi+yi)%(2*size) == 0 {
				c.NewPath()
				c.MoveTo(x, y)
				c.LineTo(x+size, y+size)
				c.MoveTo(x+size, y)
				c.LineTo(x, y+size)
				c.Stroke(palette.Gold, 1)
			}

			if math.Sin(t*0.05+x*0.1) > 0.5 {
				c.FillRect(x+size/2-2, y+size/2-2, 4, 4, palette.White)
			}
		}
	}
	return nil
}
