package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/wenbian/internal/domain/palette"
)

func tick(t *TitleOverlay, n int) {
	for i := 0; i < n; i++ {
		t.Update()
	}
}

func TestStyleFor(t *testing.T) {
	light := StyleFor(palette.Light)
	assert.Equal(t, palette.Bg, light.Text)
	assert.Nil(t, light.Glow)

	dark := StyleFor(palette.Dark)
	assert.Equal(t, palette.White, dark.Text)
	require.NotNil(t, dark.Glow)
	assert.Equal(t, palette.RGBA(224, 216, 192, 0.3), dark.Glow)
}

func TestTitleOverlay_FadeIn(t *testing.T) {
	title := NewTitleOverlay(4)
	assert.False(t, title.Drawable())

	title.ShowTitle("宋瓷 · 冰裂", palette.Light)
	assert.True(t, title.Visible())
	assert.True(t, title.Fading())
	assert.Equal(t, 0.0, title.Alpha())

	tick(title, 2)
	assert.InDelta(t, 0.5, title.Alpha(), 1e-6)
	assert.True(t, title.Drawable())

	tick(title, 2)
	assert.Equal(t, 1.0, title.Alpha())
	assert.False(t, title.Fading())
	assert.Equal(t, "宋瓷 · 冰裂", title.Text())
	assert.Equal(t, palette.Light, title.Tone())
	assert.Equal(t, StyleFor(palette.Light), title.Style())
}

func TestTitleOverlay_FadeOutClearsText(t *testing.T) {
	title := NewTitleOverlay(4)
	title.ShowTitle("远古 · 旋涡", palette.Dark)
	tick(title, 4)

	title.HideTitle()
	assert.False(t, title.Visible())
	assert.Equal(t, "远古 · 旋涡", title.Text(), "text stays while fading out")

	tick(title, 3)
	assert.Greater(t, title.Alpha(), 0.0)

	tick(title, 1)
	assert.Equal(t, 0.0, title.Alpha())
	assert.Empty(t, title.Text())
	assert.False(t, title.Drawable())
}

func TestTitleOverlay_HideDuringFadeIn(t *testing.T) {
	title := NewTitleOverlay(10)
	title.ShowTitle("A", palette.Dark)
	tick(title, 5)
	mid := title.Alpha()

	title.HideTitle()
	title.Update()

	assert.Less(t, title.Alpha(), mid, "fade out starts from the current alpha")
	tick(title, 10)
	assert.Equal(t, 0.0, title.Alpha())
}

func TestTitleOverlay_ShowAndHideSameTick(t *testing.T) {
	title := NewTitleOverlay(6)
	title.ShowTitle("short", palette.Dark)
	title.HideTitle()

	tick(title, 6)

	assert.Equal(t, 0.0, title.Alpha())
	assert.Empty(t, title.Text())
}

func TestTitleOverlay_Instant(t *testing.T) {
	title := NewTitleOverlay(0)

	title.ShowTitle("A", palette.Light)
	assert.Equal(t, 1.0, title.Alpha())
	assert.False(t, title.Fading())
	assert.True(t, title.Drawable())

	title.HideTitle()
	assert.Equal(t, 0.0, title.Alpha())
	assert.Empty(t, title.Text())
}
