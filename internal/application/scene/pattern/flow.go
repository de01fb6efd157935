package pattern

import (
	"image/color"
	"math"

	"github.com/younwookim/wenbian/internal/application/scene"
	"github.com/younwookim/wenbian/internal/domain/palette"
)

var chaosColors = [3]color.RGBA{palette.Gold, palette.White, palette.Red}

// drawChaos spins a three-turn spiral of dots whose radius breathes.
func drawChaos(dc *scene.DrawContext) error {
	w, h, err := surfaceSize(dc)
	if err != nil {
		return err
	}
	c := dc.Canvas
	t := float64(dc.Frame)

	wash(c, w, h, palette.Fade(palette.Bg, 0.15))

	c.Push()
	defer c.Pop()
	c.Translate(w/2, h/2)

	const count = 120
	maxRadius := math.Min(w, h) * 0.4
	breath := math.Sin(t*0.01)*0.5 + 1
	for i := 0; i < count; i++ {
		f := float64(i)
		angle := f/count*math.Pi*2*3 + t*0.015
		r := f / count * maxRadius * breath
		circle(c, math.Cos(angle)*r, math.Sin(angle)*r, f*0.05+1)
		c.Fill(chaosColors[i%3])
	}
	return nil
}

// drawVortex draws eight rippled rings turning in alternate directions.
func drawVortex(dc *scene.DrawContext) error {
	w, h, err := surfaceSize(dc)
	if err != nil {
		return err
	}
	c := dc.Canvas
	t := float64(dc.Frame)

	wash(c, w, h, palette.Fade(palette.Bg, 0.1))

	c.Push()
	defer c.Pop()
	c.Translate(w/2, h/2)

	const rings = 8
	for i := 0; i < rings; i++ {
		fi := float64(i)
		dir := 1.0
		col := palette.Ochre
		if i%2 != 0 {
			dir = -1
			col = palette.Gold
		}
		spin := t * 0.01 * dir
		baseR := 50 + fi*40

		c.NewPath()
		for k := 0; ; k++ {
			a := float64(k) * 0.05
			if a > math.Pi*2 {
				break
			}
			r := baseR + math.Sin(a*10+t*0.05+fi)*10
			x := r * math.Cos(a+spin)
			y := r * math.Sin(a+spin)
			if k == 0 {
				c.MoveTo(x, y)
			} else {
				c.LineTo(x, y)
			}
		}
		c.Stroke(col, 3)
	}
	return nil
}

var ribbonColors = [4]color.RGBA{palette.Ochre, palette.Green, palette.Gold, palette.Red}

// drawApsaras sweeps four ribbons built from two stacked sine waves.
func drawApsaras(dc *scene.DrawContext) error {
	w, h, err := surfaceSize(dc)
	if err != nil {
		return err
	}
	c := dc.Canvas
	t := float64(dc.Frame)

	wash(c, w, h, palette.Fade(palette.Bg, 0.1))

	for i, col := range ribbonColors {
		fi := float64(i)
		c.NewPath()
		for x := 0.0; x < w; x += 10 {
			y := h/2 + (fi-1.5)*50 +
				math.Sin(x*0.005+t*0.02+fi)*100 +
				math.Sin(x*0.02-t*0.03)*30
			if x == 0 {
				c.MoveTo(x, y)
			} else {
				c.LineTo(x, y)
			}
		}
		c.Stroke(col, 3)
	}
	return nil
}

// drawClouds layers fifteen drifting wave lines with a gold one in the middle.
func drawClouds(dc *scene.DrawContext) error {
	w, h, err := surfaceSize(dc)
	if err != nil {
		return err
	}
	c := dc.Canvas
	t := float64(dc.Frame)

	wash(c, w, h, palette.Fade(palette.Bg, 0.15))

	const lineCount = 15
	step := h / (lineCount + 2)
	for i := 0; i < lineCount; i++ {
		fi := float64(i)
		baseY := (fi + 1) * step
		col := palette.White
		switch {
		case i == lineCount/2:
			col = palette.Gold
		case i%2 == 0:
			col = palette.Jade
		}

		c.NewPath()
		for x := 0.0; x <= w; x += 20 {
			wave1 := math.Sin(x*0.005+t*0.02+fi*0.5) * 40
			wave2 := math.Sin(x*0.02-t*0.03) * 10
			y := baseY + wave1 + wave2
			if x == 0 {
				c.MoveTo(x, y)
			} else {
				c.LineTo(x, y)
			}
		}
		c.Stroke(col, 2)
	}
	return nil
}

// drawScrolls trails three vine heads along sine paths, dropping a leaf
// every tenth frame.
func drawScrolls(dc *scene.DrawContext) error {
	w, h, err := surfaceSize(dc)
	if err != nil {
		return err
	}
	c := dc.Canvas
	frame := dc.Frame

	wash(c, w, h, palette.Fade(palette.Bg, 0.05))

	const (
		amplitude = 80.0
		frequency = 0.01
		speed     = 2.0
	)
	for i := 0; i < 3; i++ {
		fi := float64(i)
		yOffset := h/2 + (fi-1)*150
		headX := math.Mod(float64(frame)*speed+fi*100, w+200) - 100
		headY := yOffset + math.Sin(headX*frequency)*amplitude

		circle(c, headX, headY, 5)
		c.Fill(palette.Green)

		if frame%10 == 0 {
			leaf := palette.Green
			if frame%20 == 0 {
				leaf = palette.Red
			}
			c.Push()
			c.Translate(headX, headY)
			c.Rotate(math.Sin(headX * 0.01))
			c.NewPath()
			c.Ellipse(0, 0, 15, 5)
			c.Fill(leaf)
			c.Pop()
		}
	}
	return nil
}
