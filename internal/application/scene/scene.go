// Package scene defines the Scene record, the draw contract every pattern
// satisfies, the Registry of available scenes and the PlaybackSequence built
// from it.
//
// A scene is data: a display name, a minimum lifetime in frames, a tone and a
// draw function. The scheduler decides when a scene is active; the scene only
// paints.
package scene

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/younwookim/wenbian/internal/domain/canvas"
	"github.com/younwookim/wenbian/internal/domain/palette"
)

// Construction errors. Malformed scenes are rejected when the Registry is
// built, never at draw time.
var (
	ErrEmptyName       = errors.New("scene name is empty")
	ErrDuplicateName   = errors.New("duplicate scene name")
	ErrInvalidDuration = errors.New("scene duration must be positive")
	ErrInvalidTone     = errors.New("invalid scene tone")
	ErrNilDraw         = errors.New("scene has no draw function")
	ErrUnknownScene    = errors.New("unknown scene")
	ErrEmptyRegistry   = errors.New("registry has no scenes")
)

// DrawFunc paints one frame of a scene. A non-nil error is a render failure;
// the render loop logs it and moves on to the next scene.
type DrawFunc func(dc *DrawContext) error

// Scene is an immutable scene definition.
type Scene struct {
	Name     string
	Duration int // frames before auto-advance is eligible
	Tone     palette.Tone
	Draw     DrawFunc
}

// Validate checks the construction contract of a single scene.
func (s Scene) Validate() error {
	if s.Name == "" {
		return ErrEmptyName
	}
	if s.Duration <= 0 {
		return fmt.Errorf("%q: %w (got %d)", s.Name, ErrInvalidDuration, s.Duration)
	}
	if !s.Tone.Valid() {
		return fmt.Errorf("%q: %w (got %d)", s.Name, ErrInvalidTone, int(s.Tone))
	}
	if s.Draw == nil {
		return fmt.Errorf("%q: %w", s.Name, ErrNilDraw)
	}
	return nil
}

// DrawContext is everything a scene sees during one draw call.
//
// Frame is the absolute frame counter, never a delta: a draw may be skipped
// (pause) and must derive its phase from Frame and Start alone. State is a
// scratch slot scoped to the current activation. It is nil on the first draw
// after every activation, and whatever the scene stores there is handed back
// on the next draw of the same activation.
type DrawContext struct {
	Canvas canvas.Canvas
	Frame  int
	Start  int
	Rand   *rand.Rand
	State  any
}

// Elapsed returns the frames since the scene became active.
func (dc *DrawContext) Elapsed() int {
	return dc.Frame - dc.Start
}
