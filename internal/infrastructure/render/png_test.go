package render

import (
	"image"
	"image/color"
	_ "image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"frame-1.final", "frame-1.final"},
		{"a/b c", "a_b_c"},
		{"混沌 · 起源", "混沌___起源"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeLabel(tt.in))
		})
	}
}

func TestSavePNGAt(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.Set(1, 1, color.RGBA{255, 0, 0, 255})
	at := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)

	path, err := SavePNGAt(dir, "江南 · 窗棂", img, at)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "20240309_140507_江南___窗棂.png"), path)
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, format, err := image.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 4, cfg.Width)
	assert.Equal(t, 3, cfg.Height)
}

func TestFramePath(t *testing.T) {
	assert.Equal(t, filepath.Join("out", "frame_000042.png"), FramePath("out", 42))
}

func TestLoadFont(t *testing.T) {
	data, err := LoadFont("")
	require.NoError(t, err)
	assert.Equal(t, goregular.TTF, data)

	_, err = LoadFont(filepath.Join(t.TempDir(), "missing.ttf"))
	assert.Error(t, err)

	data, err = LoadFontOrDefault(filepath.Join(t.TempDir(), "missing.ttf"))
	assert.Error(t, err)
	assert.Equal(t, goregular.TTF, data)

	path := filepath.Join(t.TempDir(), "font.ttf")
	require.NoError(t, os.WriteFile(path, []byte("ttf"), 0o644))
	data, err = LoadFont(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("ttf"), data)
}
