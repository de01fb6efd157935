// Package pattern provides the decorative scenes of the show.
//
// Every scene paints through canvas.Canvas and derives its phase from the
// absolute frame in the DrawContext, so a scene can be skipped (pause) or
// re-entered without drifting. Randomness always comes from dc.Rand.
package pattern

import (
	"errors"
	"image/color"
	"math"
	"math/rand"

	"github.com/younwookim/wenbian/internal/application/scene"
	"github.com/younwookim/wenbian/internal/domain/canvas"
	"github.com/younwookim/wenbian/internal/domain/palette"
)

// Opening is the scene that always plays first.
const Opening = "混沌 · 起源"

// ErrEmptySurface is returned by a draw when the surface has no area yet.
var ErrEmptySurface = errors.New("surface has zero size")

// Catalog returns every scene in declaration order.
func Catalog() []scene.Scene {
	return []scene.Scene{
		{Name: Opening, Duration: 400, Tone: palette.Dark, Draw: drawChaos},
		{Name: "宋瓷 · 冰裂", Duration: 500, Tone: palette.Light, Draw: drawIceCrack},
		{Name: "远古 · 旋涡", Duration: 500, Tone: palette.Dark, Draw: drawVortex},
		{Name: "江南 · 窗棂", Duration: 400, Tone: palette.Light, Draw: drawLattice},
		{Name: "青铜 · 饕餮", Duration: 500, Tone: palette.Dark, Draw: drawTaotie},
		{Name: "敦煌 · 飞天", Duration: 600, Tone: palette.Dark, Draw: drawApsaras},
		{Name: "盛唐 · 团花", Duration: 600, Tone: palette.Dark, Draw: drawRosette},
		{Name: "雅致 · 龟背", Duration: 500, Tone: palette.Dark, Draw: drawTortoiseShell},
		{Name: "宋韵 · 流云", Duration: 600, Tone: palette.Dark, Draw: drawClouds},
		{Name: "文人 · 墨竹", Duration: 500, Tone: palette.Light, Draw: drawBamboo},
		{Name: "吉祥 · 钱纹", Duration: 500, Tone: palette.Dark, Draw: drawCoins},
		{Name: "丝路 · 联珠", Duration: 500, Tone: palette.Dark, Draw: drawPearls},
		{Name: "明清 · 回纹", Duration: 500, Tone: palette.Dark, Draw: drawMeander},
		{Name: "锦绣 · 缠枝", Duration: 600, Tone: palette.Dark, Draw: drawScrolls},
		{Name: "自然 · 生长", Duration: 600, Tone: palette.Dark, Draw: drawGrowth},
		{Name: "祥瑞 · 鳞纹", Duration: 500, Tone: palette.Dark, Draw: drawScales},
		{Name: "水墨 · 晕染", Duration: 400, Tone: palette.Light, Draw: drawInkWash},
		{Name: "织锦 · 菱格", Duration: 500, Tone: palette.Dark, Draw: drawBrocade},
	}
}

// NewRegistry builds the catalog registry, leaving out the excluded scenes
// and scaling every duration.
func NewRegistry(exclude []string, durationScale float64) (*scene.Registry, error) {
	reg, err := scene.NewRegistry(Catalog()...)
	if err != nil {
		return nil, err
	}
	if reg, err = reg.Without(exclude...); err != nil {
		return nil, err
	}
	return reg.WithDurationScale(durationScale)
}

// NewSequence builds the playback order for one run of the show.
func NewSequence(rng *rand.Rand, opening string, exclude []string, durationScale float64) (scene.Sequence, error) {
	reg, err := NewRegistry(exclude, durationScale)
	if err != nil {
		return scene.Sequence{}, err
	}
	return scene.NewSequence(reg, opening, rng)
}

// surfaceSize reads the canvas size and rejects an empty surface.
func surfaceSize(dc *scene.DrawContext) (float64, float64, error) {
	w, h := dc.Canvas.Size()
	if w <= 0 || h <= 0 {
		return 0, 0, ErrEmptySurface
	}
	return w, h, nil
}

// wash paints a translucent full-surface rectangle; it is what leaves the
// trails behind moving shapes.
func wash(c canvas.Canvas, w, h float64, col color.Color) {
	c.FillRect(0, 0, w, h, col)
}

// circle starts a new path holding one full circle.
func circle(c canvas.Canvas, x, y, r float64) {
	c.NewPath()
	c.Arc(x, y, r, 0, 2*math.Pi)
}

// dot adds a full circle as its own subpath without discarding the path.
func dot(c canvas.Canvas, x, y, r float64) {
	c.MoveTo(x+r, y)
	c.Arc(x, y, r, 0, 2*math.Pi)
}
