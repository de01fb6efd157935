// Package system turns raw device input into the signals the show reacts to.
package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/wenbian/internal/domain/signal"
)

// Bindings maps device inputs to signals.
type Bindings struct {
	Pause      []ebiten.Key
	Advance    []ebiten.Key
	Screenshot []ebiten.Key
	Quit       []ebiten.Key
	// AdvanceOnClick advances on a left click or a new touch.
	AdvanceOnClick bool
}

// DefaultBindings: Space pauses, Right arrow or a click advances, F12 saves
// a screenshot, Escape quits.
func DefaultBindings() Bindings {
	return Bindings{
		Pause:          []ebiten.Key{ebiten.KeySpace},
		Advance:        []ebiten.Key{ebiten.KeyArrowRight},
		Screenshot:     []ebiten.Key{ebiten.KeyF12},
		Quit:           []ebiten.Key{ebiten.KeyEscape},
		AdvanceOnClick: true,
	}
}

// InputSystem polls ebiten input once per tick
type InputSystem struct {
	bindings Bindings
	touches  []ebiten.TouchID
}

// NewInputSystem creates a new input system
func NewInputSystem(b Bindings) *InputSystem {
	return &InputSystem{bindings: b}
}

// Poll reads the signals raised since the previous tick
func (s *InputSystem) Poll() signal.Signals {
	sig := signal.Signals{
		TogglePause: anyJustPressed(s.bindings.Pause),
		Advance:     anyJustPressed(s.bindings.Advance),
		Screenshot:  anyJustPressed(s.bindings.Screenshot),
		Quit:        anyJustPressed(s.bindings.Quit),
	}
	if s.bindings.AdvanceOnClick {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			sig.Advance = true
		}
		s.touches = inpututil.AppendJustPressedTouchIDs(s.touches[:0])
		if len(s.touches) > 0 {
			sig.Advance = true
		}
	}
	return sig
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
