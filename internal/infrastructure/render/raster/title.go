package raster

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/younwookim/wenbian/internal/infrastructure/render"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// TitleRenderer paints a TitleOverlay over exported frames.
type TitleRenderer struct {
	face    font.Face
	offsetY float64
}

// NewTitleRenderer parses a TTF font. On a parse failure the renderer still
// works with basicfont and the error is returned for logging.
func NewTitleRenderer(ttf []byte, size, offsetY float64) (*TitleRenderer, error) {
	r := &TitleRenderer{face: basicfont.Face7x13, offsetY: offsetY}
	f, err := truetype.Parse(ttf)
	if err != nil {
		return r, fmt.Errorf("title font parse failed, using basicfont: %w", err)
	}
	r.face = truetype.NewFace(f, &truetype.Options{Size: size, Hinting: font.HintingFull})
	return r, nil
}

// Compose returns frame with the title drawn on top. frame itself is left
// untouched so trails keep accumulating on the surface; when nothing is
// drawable frame is returned as is.
func (r *TitleRenderer) Compose(frame *image.RGBA, title *render.TitleOverlay) *image.RGBA {
	if !title.Drawable() {
		return frame
	}
	out := image.NewRGBA(frame.Bounds())
	draw.Draw(out, out.Bounds(), frame, frame.Bounds().Min, draw.Src)

	dc := gg.NewContextForRGBA(out)
	dc.SetFontFace(r.face)
	x := float64(out.Bounds().Dx()) / 2
	y := float64(out.Bounds().Dy())/2 + r.offsetY
	style := title.Style()
	alpha := title.Alpha()

	if style.Glow != nil {
		dc.SetColor(render.WithAlpha(style.Glow, alpha))
		for _, o := range render.GlowOffsets {
			dc.DrawStringAnchored(title.Text(), x+o[0], y+o[1], 0.5, 0.5)
		}
	}
	dc.SetColor(render.WithAlpha(style.Text, alpha))
	dc.DrawStringAnchored(title.Text(), x, y, 0.5, 0.5)
	return out
}
