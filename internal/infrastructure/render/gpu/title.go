package gpu

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/younwookim/wenbian/internal/infrastructure/render"
	"golang.org/x/image/font/gofont/goregular"
)

// TitleRenderer draws a TitleOverlay over the window every frame.
type TitleRenderer struct {
	title   *render.TitleOverlay
	face    *text.GoTextFace
	offsetY float64
}

// NewTitleRenderer builds the title face from a TTF/OTF. On a parse failure
// it falls back to Go Regular and returns the error for logging.
func NewTitleRenderer(title *render.TitleOverlay, ttf []byte, size, offsetY float64) (*TitleRenderer, error) {
	r := &TitleRenderer{title: title, offsetY: offsetY}

	src, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		fallback, ferr := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if ferr != nil {
			return nil, fmt.Errorf("failed to load fallback font: %w", ferr)
		}
		r.face = &text.GoTextFace{Source: fallback, Size: size}
		return r, fmt.Errorf("title font parse failed, using Go Regular: %w", err)
	}
	r.face = &text.GoTextFace{Source: src, Size: size}
	return r, nil
}

// Update advances the fade.
func (r *TitleRenderer) Update() {
	r.title.Update()
}

// Draw paints the title centered on screen.
func (r *TitleRenderer) Draw(screen *ebiten.Image) {
	if !r.title.Drawable() {
		return
	}
	b := screen.Bounds()
	x := float64(b.Dx()) / 2
	y := float64(b.Dy())/2 + r.offsetY
	style := r.title.Style()
	alpha := r.title.Alpha()

	if style.Glow != nil {
		for _, o := range render.GlowOffsets {
			r.drawText(screen, x+o[0], y+o[1], style.Glow, alpha)
		}
	}
	r.drawText(screen, x, y, style.Text, alpha)
}

func (r *TitleRenderer) drawText(screen *ebiten.Image, x, y float64, c color.Color, alpha float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(render.WithAlpha(c, alpha))
	text.Draw(screen, r.title.Text(), r.face, op)
}
