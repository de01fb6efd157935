package render

import (
	"fmt"
	"os"

	"golang.org/x/image/font/gofont/goregular"
)

// LoadFont returns the bytes of the title font at path. An empty path
// selects Go Regular, which has no CJK glyphs.
func LoadFont(path string) ([]byte, error) {
	if path == "" {
		return goregular.TTF, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font %s: %w", path, err)
	}
	return data, nil
}

// LoadFontOrDefault is LoadFont falling back to Go Regular on error. The
// error is still returned so callers can log it.
func LoadFontOrDefault(path string) ([]byte, error) {
	data, err := LoadFont(path)
	if err != nil {
		return goregular.TTF, err
	}
	return data, nil
}
