// Package scheduler owns the playback state of the show: which scene is
// active, since when, and the global frame clock.
package scheduler

import (
	"errors"
	"math/rand"

	"github.com/younwookim/wenbian/internal/application/scene"
	"github.com/younwookim/wenbian/internal/application/state"
	"github.com/younwookim/wenbian/internal/domain/canvas"
)

// ErrEmptySequence is returned when the scheduler is given nothing to play.
var ErrEmptySequence = errors.New("scheduler: empty playback sequence")

// Scheduler tracks the active scene and performs transitions.
type Scheduler struct {
	seq     scene.Sequence
	canvas  canvas.Canvas
	rng     *rand.Rand
	state   state.SchedulerState
	scratch any
}

// New creates a scheduler with the first scene of seq active at frame 0 and
// paints that scene's background.
func New(seq scene.Sequence, c canvas.Canvas, rng *rand.Rand) (*Scheduler, error) {
	if seq.Len() == 0 {
		return nil, ErrEmptySequence
	}
	s := &Scheduler{seq: seq, canvas: c, rng: rng}
	s.Repaint()
	return s, nil
}

// Current returns the active scene.
func (s *Scheduler) Current() scene.Scene {
	return s.seq.At(s.state.ActiveIndex)
}

// Elapsed returns frames since the active scene was activated.
func (s *Scheduler) Elapsed() int {
	return s.state.Elapsed()
}

// Advance activates the next scene, wrapping after the last one. The scratch
// slot is dropped and the whole surface is reset to the new scene's tone.
func (s *Scheduler) Advance() {
	s.state.ActiveIndex = (s.state.ActiveIndex + 1) % s.seq.Len()
	s.state.ActiveStartFrame = s.state.GlobalFrame
	s.scratch = nil
	if r, ok := s.canvas.(canvas.Resetter); ok {
		r.Reset()
	}
	s.Repaint()
}

// Repaint fills the surface with the active scene's background.
func (s *Scheduler) Repaint() {
	s.canvas.Clear(s.Current().Tone.Background())
}

// NextFrame moves the global clock forward one frame and returns it.
func (s *Scheduler) NextFrame() int {
	s.state.GlobalFrame++
	return s.state.GlobalFrame
}

// DrawActive runs the active scene's draw for the current frame.
func (s *Scheduler) DrawActive() error {
	dc := &scene.DrawContext{
		Canvas: s.canvas,
		Frame:  s.state.GlobalFrame,
		Start:  s.state.ActiveStartFrame,
		Rand:   s.rng,
		State:  s.scratch,
	}
	err := s.Current().Draw(dc)
	s.scratch = dc.State
	return err
}

// Paused reports whether time is frozen.
func (s *Scheduler) Paused() bool {
	return s.state.Paused
}

// SetPaused freezes or resumes time.
func (s *Scheduler) SetPaused(paused bool) {
	s.state.Paused = paused
}

// State returns a copy of the playback state.
func (s *Scheduler) State() state.SchedulerState {
	return s.state
}

// Sequence returns the playback order.
func (s *Scheduler) Sequence() scene.Sequence {
	return s.seq
}
