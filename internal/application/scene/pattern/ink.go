package pattern

import (
	"math"
	"math/rand"

	"github.com/younwookim/wenbian/internal/application/scene"
	"github.com/younwookim/wenbian/internal/domain/geom"
	"github.com/younwookim/wenbian/internal/domain/palette"
)

var (
	celadon  = palette.RGBA(0xd8, 0xd8, 0xd0, 1)
	crackInk = palette.RGBA(0x33, 0x33, 0x33, 1)
)

// drawIceCrack glazes the surface and scatters cracks once per activation,
// then sweeps a faint band of light down the glaze.
func drawIceCrack(dc *scene.DrawContext) error {
	w, h, err := surfaceSize(dc)
	if err != nil {
		return err
	}
	c := dc.Canvas
	t := float64(dc.Frame)

	if dc.Elapsed() == 1 {
		c.FillRect(0, 0, w, h, celadon)

		const cell = 100.0
		c.NewPath()
		for x := 0.0; x < w; x += cell {
			for y := 0.0; y < h; y += cell {
				x1 := x + dc.Rand.Float64()*cell
				y1 := y + dc.Rand.Float64()*cell
				c.MoveTo(x1, y1)
				c.LineTo(x1+dc.Rand.Float64()*cell, y1+dc.Rand.Float64()*cell)
			}
		}
		c.Stroke(crackInk, 1.5)
	}

	scanY := math.Mod(t*5, h)
	c.FillRect(0, scanY, w, 50, palette.RGBA(255, 255, 255, 0.05))
	return nil
}

// bambooGrove is the per-activation scratch state of the bamboo scene.
type bambooGrove struct {
	// stalks are horizontal positions as fractions of the surface width.
	stalks []float64
}

const bambooCount = 5

func newBambooGrove(rng *rand.Rand) *bambooGrove {
	g := &bambooGrove{stalks: make([]float64, bambooCount)}
	for i := range g.stalks {
		g.stalks[i] = float64(i+1)/(bambooCount+1) + geom.RandomRange(rng, -0.03, 0.03)
	}
	return g
}

var (
	stalkColor = palette.RGBA(60, 80, 60, 0.8)
	leafColor  = palette.RGBA(40, 60, 40, 0.9)
)

// drawBamboo accumulates ink on paper: random shoots spring up and five
// stalks grow a section at a time, sprouting a leaf now and then.
func drawBamboo(dc *scene.DrawContext) error {
	w, h, err := surfaceSize(dc)
	if err != nil {
		return err
	}
	c := dc.Canvas

	grove, ok := dc.State.(*bambooGrove)
	if !ok {
		c.Clear(palette.White)
		grove = newBambooGrove(dc.Rand)
		dc.State = grove
	}

	if dc.Frame%10 == 0 && dc.Rand.Float64() > 0.5 {
		x := geom.RandomRange(dc.Rand, 50, w-50)
		sw := geom.RandomRange(dc.Rand, 10, 25)
		col := palette.RGBA(40, 60, 40, geom.RandomRange(dc.Rand, 0.5, 0.9))
		sh := geom.RandomRange(dc.Rand, h*0.3, h*0.8)
		c.FillRect(x, h-sh, sw, sh, col)
	}

	const (
		growthSpeed = 5.0
		sectionH    = 100.0
	)
	elapsed := float64(dc.Elapsed())
	for i, frac := range grove.stalks {
		grown := elapsed*growthSpeed + float64(i)*50
		if grown >= h {
			continue
		}
		x := w * frac
		top := h - grown

		c.FillRect(x-10, top, 20, sectionH, stalkColor)
		c.FillRect(x-12, top, 24, 3, palette.Ink)

		if math.Mod(grown, 150) < 10 {
			c.NewPath()
			c.MoveTo(x, top)
			c.QuadTo(x+40, top-20, x+80, top+10)
			c.QuadTo(x+40, top-10, x, top)
			c.Fill(leafColor)
		}
	}
	return nil
}

// drawInkWash lets random ink drops bleed into paper while a ring pulses
// out from the center.
func drawInkWash(dc *scene.DrawContext) error {
	w, h, err := surfaceSize(dc)
	if err != nil {
		return err
	}
	c := dc.Canvas
	t := float64(dc.Frame)

	wash(c, w, h, palette.Fade(palette.White, 0.02))

	if dc.Rand.Float64() > 0.8 {
		x := dc.Rand.Float64() * w
		y := dc.Rand.Float64() * h
		r := dc.Rand.Float64()*30 + 10
		circle(c, x, y, r)
		c.Fill(palette.Fade(palette.Bg, dc.Rand.Float64()*0.3))
	}

	radius := math.Mod(t, 200) * 2
	circle(c, w/2, h/2, radius)
	c.Stroke(palette.Fade(palette.Bg, 0.05), 20)
	return nil
}
