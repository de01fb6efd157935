package render

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/fogleman/gg"
)

// SavePNG writes img to dir as <timestamp>_<label>.png and returns the path.
func SavePNG(dir, label string, img image.Image) (string, error) {
	return SavePNGAt(dir, label, img, time.Now())
}

// SavePNGAt is SavePNG with an explicit timestamp.
func SavePNGAt(dir, label string, img image.Image, at time.Time) (string, error) {
	if dir == "" {
		dir = "."
	}
	name := fmt.Sprintf("%s_%s.png", at.Format("20060102_150405"), SanitizeLabel(label))
	path := filepath.Join(dir, name)
	if err := WritePNG(path, img); err != nil {
		return "", err
	}
	return path, nil
}

// WritePNG writes img to path, creating its directory.
func WritePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", filepath.Dir(path), err)
	}
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

// FramePath returns the file name of an exported frame.
func FramePath(dir string, frame int) string {
	return filepath.Join(dir, fmt.Sprintf("frame_%06d.png", frame))
}

// SanitizeLabel keeps letters (any script), digits, '-' and '.', replaces
// everything else with '_' and falls back to "unlabeled".
func SanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
