package config

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// SupportedVersion is the engine.yaml schema version this build reads.
const SupportedVersion = 1

// DefaultOpening is the scene that opens the show unless configured.
const DefaultOpening = "混沌 · 起源"

// EngineConfig represents engine.yaml
type EngineConfig struct {
	Version int           `yaml:"version"`
	Display DisplayConfig `yaml:"display"`
	Show    ShowConfig    `yaml:"show"`
	Title   TitleConfig   `yaml:"title"`
	Export  ExportConfig  `yaml:"export"`
}

// DisplayConfig holds window settings
type DisplayConfig struct {
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	Fullscreen  bool   `yaml:"fullscreen"`
	Resizable   bool   `yaml:"resizable"`
	TPS         int    `yaml:"tps"` // 0 ticks once per displayed frame
	WindowTitle string `yaml:"windowTitle"`
}

// ShowConfig holds playback settings
type ShowConfig struct {
	Opening       string   `yaml:"opening"`
	Seed          int64    `yaml:"seed"` // 0 picks a time based seed
	DurationScale float64  `yaml:"durationScale"`
	Exclude       []string `yaml:"exclude"`
}

// TitleConfig holds scene title overlay settings
type TitleConfig struct {
	FontPath   string  `yaml:"fontPath"` // TTF/OTF with CJK glyphs; empty uses Go Regular
	Size       float64 `yaml:"size"`
	FadeFrames int     `yaml:"fadeFrames"`
	OffsetY    float64 `yaml:"offsetY"` // from the vertical center, in pixels
}

// ExportConfig holds headless frame export settings
type ExportConfig struct {
	Frames int    `yaml:"frames"`
	Every  int    `yaml:"every"`
	Dir    string `yaml:"dir"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// Default returns the configuration used for any key engine.yaml leaves out.
func Default() EngineConfig {
	return EngineConfig{
		Version: SupportedVersion,
		Display: DisplayConfig{
			Width:       1280,
			Height:      720,
			Resizable:   true,
			WindowTitle: "纹·变",
		},
		Show: ShowConfig{
			Opening:       DefaultOpening,
			DurationScale: 1,
		},
		Title: TitleConfig{
			Size:       36,
			FadeFrames: 30,
		},
		Export: ExportConfig{
			Frames: 600,
			Every:  10,
			Dir:    "frames",
			Width:  1280,
			Height: 720,
		},
	}
}

// ErrInvalidConfig is wrapped by every validation error.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks value ranges.
func (c *EngineConfig) Validate() error {
	if c.Version != SupportedVersion {
		return fmt.Errorf("%w: unsupported engine.yaml version: %d", ErrInvalidConfig, c.Version)
	}
	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		return fmt.Errorf("%w: display size %dx%d", ErrInvalidConfig, c.Display.Width, c.Display.Height)
	}
	if c.Display.TPS < 0 {
		return fmt.Errorf("%w: display.tps %d", ErrInvalidConfig, c.Display.TPS)
	}
	s := c.Show.DurationScale
	if s <= 0 || math.IsNaN(s) || math.IsInf(s, 0) {
		return fmt.Errorf("%w: show.durationScale %v", ErrInvalidConfig, s)
	}
	if c.Show.Opening != "" && slices.Contains(c.Show.Exclude, c.Show.Opening) {
		return fmt.Errorf("%w: show.opening %q is also in show.exclude", ErrInvalidConfig, c.Show.Opening)
	}
	if c.Title.Size <= 0 {
		return fmt.Errorf("%w: title.size %v", ErrInvalidConfig, c.Title.Size)
	}
	if c.Title.FadeFrames < 0 {
		return fmt.Errorf("%w: title.fadeFrames %d", ErrInvalidConfig, c.Title.FadeFrames)
	}
	if c.Export.Frames < 0 || c.Export.Every <= 0 {
		return fmt.Errorf("%w: export frames %d every %d", ErrInvalidConfig, c.Export.Frames, c.Export.Every)
	}
	if c.Export.Width <= 0 || c.Export.Height <= 0 {
		return fmt.Errorf("%w: export size %dx%d", ErrInvalidConfig, c.Export.Width, c.Export.Height)
	}
	return nil
}
