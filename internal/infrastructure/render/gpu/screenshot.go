package gpu

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/wenbian/internal/infrastructure/render"
)

// Screenshots saves the window contents as timestamped PNG files.
type Screenshots struct {
	Dir string
}

// Save captures screen and writes it under Dir. Must be called from Draw.
func (s Screenshots) Save(screen *ebiten.Image, label string) (string, error) {
	b := screen.Bounds()
	pixels := make([]byte, 4*b.Dx()*b.Dy())
	screen.ReadPixels(pixels)
	return render.SavePNG(s.Dir, label, toNRGBA(pixels, b.Dx(), b.Dy()))
}

// toNRGBA converts premultiplied RGBA pixels to straight alpha.
func toNRGBA(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i+3 < len(pixels) && i+3 < len(img.Pix); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img
}
