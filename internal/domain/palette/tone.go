package palette

import "image/color"

// Tone classifies a scene as light or dark.
type Tone int

const (
	Dark Tone = iota
	Light
)

// String returns the string representation of the tone
func (t Tone) String() string {
	switch t {
	case Dark:
		return "dark"
	case Light:
		return "light"
	default:
		return "unknown"
	}
}

// Valid reports whether t is one of the declared tones.
func (t Tone) Valid() bool {
	return t == Dark || t == Light
}

// Background returns the solid color a surface is reset to when a scene of
// this tone becomes active.
func (t Tone) Background() color.RGBA {
	if t == Light {
		return LightBackground
	}
	return DarkBackground
}
