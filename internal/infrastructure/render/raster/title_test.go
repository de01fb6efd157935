package raster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/wenbian/internal/domain/palette"
	"github.com/younwookim/wenbian/internal/infrastructure/render"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

func TestNewTitleRenderer_Fallback(t *testing.T) {
	r, err := NewTitleRenderer([]byte("nope"), 24, 0)
	assert.Error(t, err)
	require.NotNil(t, r)
	assert.Equal(t, basicfont.Face7x13, r.face)
}

func TestTitleRenderer_Compose(t *testing.T) {
	r, err := NewTitleRenderer(goregular.TTF, 20, 0)
	require.NoError(t, err)

	s := NewSurface(120, 40)
	s.Clear(palette.Bg)
	title := render.NewTitleOverlay(0)

	assert.Same(t, s.Image(), r.Compose(s.Image(), title), "hidden title returns the frame")

	title.ShowTitle("HELLO", palette.Dark)
	out := r.Compose(s.Image(), title)

	require.NotSame(t, s.Image(), out)
	assert.True(t, isSolid(s.Image(), palette.Bg), "surface is not drawn on")
	assert.False(t, isSolid(out, palette.Bg), "title is painted")
}

func TestTitleRenderer_ComposeLight(t *testing.T) {
	r, err := NewTitleRenderer(goregular.TTF, 20, 5)
	require.NoError(t, err)

	s := NewSurface(120, 40)
	s.Clear(palette.White)
	title := render.NewTitleOverlay(0)
	title.ShowTitle("HELLO", palette.Light)

	out := r.Compose(s.Image(), title)

	assert.False(t, isSolid(out, palette.White))
	assert.True(t, isSolid(s.Image(), palette.White))
}
