package gpu

import (
	"image/color"
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/wenbian/internal/application/game"
	"github.com/younwookim/wenbian/internal/domain/canvas"
	"github.com/younwookim/wenbian/internal/domain/palette"
	"github.com/younwookim/wenbian/internal/infrastructure/render"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	_ render.Surface     = (*Surface)(nil)
	_ canvas.Resetter    = (*Surface)(nil)
	_ game.Presenter     = (*Surface)(nil)
	_ game.Overlay       = (*TitleRenderer)(nil)
	_ game.Screenshotter = Screenshots{}
)

func assertPoint(t *testing.T, xf *transform, x, y, wantX, wantY float64) {
	t.Helper()
	gx, gy := xf.apply(x, y)
	assert.InDelta(t, wantX, float64(gx), 1e-4)
	assert.InDelta(t, wantY, float64(gy), 1e-4)
}

func TestTransform_LocalOrder(t *testing.T) {
	var xf transform
	xf.translate(100, 50)
	xf.rotate(math.Pi / 2)
	xf.scale(2, 1)

	// scale, then rotate, then translate
	assertPoint(t, &xf, 1, 0, 100, 52)
	assertPoint(t, &xf, 0, 1, 99, 50)
}

func TestTransform_PushPop(t *testing.T) {
	var xf transform
	xf.translate(10, 0)
	xf.push()
	xf.scale(3, 3)
	assert.Equal(t, 1, xf.depth())
	assertPoint(t, &xf, 1, 1, 13, 3)

	xf.pop()
	assertPoint(t, &xf, 1, 1, 11, 1)

	xf.pop()
	assert.Equal(t, 0, xf.depth(), "unbalanced pop is ignored")
	assertPoint(t, &xf, 1, 1, 11, 1)
}

func TestTransform_Reset(t *testing.T) {
	var xf transform
	xf.push()
	xf.translate(5, 5)
	xf.push()
	xf.rotate(1)

	xf.reset()

	assert.Equal(t, 0, xf.depth())
	assertPoint(t, &xf, 3, 4, 3, 4)
}

func TestTransform_LineScale(t *testing.T) {
	var xf transform
	assert.InDelta(t, 1.0, xf.lineScale(), 1e-9)

	xf.scale(4, 4)
	xf.rotate(0.3)
	xf.translate(7, 7)
	assert.InDelta(t, 4.0, xf.lineScale(), 1e-9)
}

func TestVertexColor(t *testing.T) {
	r, g, b, a := vertexColor(color.NRGBA{R: 255, G: 0, B: 51, A: 128})
	assert.InDelta(t, 1.0, r, 1e-6)
	assert.InDelta(t, 0.0, g, 1e-6)
	assert.InDelta(t, 0.2, b, 1e-6)
	assert.InDelta(t, 128.0/255, a, 1e-6)

	r, _, _, a = vertexColor(color.RGBA{R: 64, A: 128})
	assert.InDelta(t, 128.0/255, r, 0.01, "premultiplied input is unpremultiplied")
	assert.InDelta(t, 128.0/255, a, 1e-6)
}

func TestToNRGBA(t *testing.T) {
	pixels := []byte{
		10, 20, 30, 255,
		64, 32, 0, 128,
		0, 0, 0, 0,
	}

	img := toNRGBA(pixels, 3, 1)

	assert.Equal(t, color.NRGBA{10, 20, 30, 255}, img.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{127, 63, 0, 128}, img.NRGBAAt(1, 0))
	assert.Equal(t, color.NRGBA{}, img.NRGBAAt(2, 0))
}

func TestSurface_SizeAndResize(t *testing.T) {
	s := NewSurface(64, 48)
	w, h := s.Size()
	assert.Equal(t, 64.0, w)
	assert.Equal(t, 48.0, h)

	img := s.Image()
	s.Resize(64, 48)
	assert.Same(t, img, s.Image())

	s.Resize(0, 20)
	w, h = s.Size()
	assert.Equal(t, 1.0, w)
	assert.Equal(t, 20.0, h)
}

func TestNewTitleRenderer(t *testing.T) {
	title := render.NewTitleOverlay(0)

	r, err := NewTitleRenderer(title, goregular.TTF, 24, 0)
	require.NoError(t, err)
	require.NotNil(t, r)

	r, err = NewTitleRenderer(title, []byte("not a font"), 24, 0)
	assert.Error(t, err)
	require.NotNil(t, r, "falls back to Go Regular")

	title.ShowTitle("A", palette.Dark)
	r.Update()
	assert.Equal(t, 1.0, title.Alpha())
	assert.NotPanics(t, func() { r.Draw(ebiten.NewImage(32, 32)) })
}
