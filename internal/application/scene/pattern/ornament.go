package pattern

import (
	"math"

	"github.com/younwookim/wenbian/internal/application/scene"
	"github.com/younwookim/wenbian/internal/domain/canvas"
	"github.com/younwookim/wenbian/internal/domain/palette"
)

// drawTaotie draws a bronze mask, one half then its mirror image.
func drawTaotie(dc *scene.DrawContext) error {
	w, h, err := surfaceSize(dc)
	if err != nil {
		return err
	}
	c := dc.Canvas
	t := float64(dc.Frame)

	wash(c, w, h, palette.Fade(palette.Bg, 0.2))

	c.Push()
	defer c.Pop()
	c.Translate(w/2, h/2)

	taotieHalf(c, t)
	c.Push()
	c.Scale(-1, 1)
	taotieHalf(c, t)
	c.Pop()
	return nil
}

func taotieHalf(c canvas.Canvas, t float64) {
	c.NewPath()
	c.MoveTo(20, -100)
	c.CubicTo(100+math.Sin(t*0.05)*20, -150, 150, -50, 200, -120)

	eye := 30 + math.Sin(t*0.1)*5
	c.MoveTo(80+eye, -20)
	c.Arc(80, -20, eye, 0, 2*math.Pi)

	c.MoveTo(20, 50)
	c.LineTo(80, 80)
	c.QuadTo(120, 150, 50, 200)
	c.Stroke(palette.Cyan, 5)

	c.NewPath()
	for i := 0; i < 10; i++ {
		x := 100 + float64(i)*10
		c.MoveTo(x, -80)
		c.LineTo(x, -60)
	}
	c.Stroke(palette.Gold, 2)
}

// drawRosette turns six layers of petals, alternating red and blue.
func drawRosette(dc *scene.DrawContext) error {
	w, h, err := surfaceSize(dc)
	if err != nil {
		return err
	}
	c := dc.Canvas
	t := float64(dc.Frame)

	wash(c, w, h, palette.Fade(palette.Bg, 0.05))

	c.Push()
	defer c.Pop()
	c.Translate(w/2, h/2)
	c.Rotate(t * 0.003)

	const layers = 6
	for l := 0; l < layers; l++ {
		fl := float64(l)
		petals := 8 + l*4
		s := 1 + math.Sin(t*0.02+fl)*0.05
		r := 60 + fl*40

		stroke, fill := palette.Blue, palette.Fade(palette.Blue, 0.1)
		if l%2 == 0 {
			stroke, fill = palette.Red, palette.Fade(palette.Red, 0.1)
		}

		c.Push()
		c.Scale(s, s)
		c.Rotate(fl * 0.1)
		for i := 0; i < petals; i++ {
			c.Rotate(math.Pi * 2 / float64(petals))
			c.NewPath()
			c.MoveTo(0, 0)
			c.QuadTo(r/2, -20, r, 0)
			c.QuadTo(r/2, 20, 0, 0)
			c.Fill(fill)
			c.Stroke(stroke, 1.5)
		}
		c.Pop()
	}
	return nil
}

// drawGrowth grows a swaying binary tree nine levels deep.
func drawGrowth(dc *scene.DrawContext) error {
	w, h, err := surfaceSize(dc)
	if err != nil {
		return err
	}
	c := dc.Canvas
	t := float64(dc.Frame)

	wash(c, w, h, palette.Fade(palette.Bg, 0.4))
	branch(c, t, w/2, h, h*0.22, 0, 9)
	return nil
}

// branch strokes one limb at angle degrees from vertical and recurses into
// two children. Trunk levels are ochre, twigs jade.
func branch(c canvas.Canvas, t, x, y, length, angle float64, depth int) {
	if depth <= 0 {
		return
	}
	rad := angle * math.Pi / 180
	endX := x + length*math.Sin(rad)
	endY := y - length*math.Cos(rad)

	col := palette.Jade
	if depth > 3 {
		col = palette.Ochre
	}
	c.NewPath()
	c.MoveTo(x, y)
	c.LineTo(endX, endY)
	c.Stroke(col, float64(depth)*0.8)

	d := float64(depth)
	swing := math.Sin(t*0.02+d*0.5) * (10 - d)
	branch(c, t, endX, endY, length*0.75, angle-25+swing, depth-1)
	branch(c, t, endX, endY, length*0.75, angle+25+swing, depth-1)
}
