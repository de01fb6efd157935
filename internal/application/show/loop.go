// Package show runs the scene sequence one frame at a time, independent of
// any window or device.
package show

import (
	"fmt"
	"log"

	"github.com/younwookim/wenbian/internal/application/scheduler"
	"github.com/younwookim/wenbian/internal/application/state"
	"github.com/younwookim/wenbian/internal/domain/palette"
)

// Title timing, in frames since activation.
const (
	TitleShowFrame = 10 // title appears when elapsed reaches this frame
	TitleHideLead  = 50 // title hides once fewer than this many frames remain
)

// TitleSink displays the active scene's name.
type TitleSink interface {
	ShowTitle(text string, tone palette.Tone)
	HideTitle()
}

// SceneRenderFailure reports a scene whose draw returned an error or
// panicked. It is logged, never propagated.
type SceneRenderFailure struct {
	Scene string
	Frame int
	Err   error
}

func (e *SceneRenderFailure) Error() string {
	return fmt.Sprintf("scene %q at frame %d: %v", e.Scene, e.Frame, e.Err)
}

func (e *SceneRenderFailure) Unwrap() error {
	return e.Err
}

// Status is a snapshot of the loop for HUDs and logs.
type Status struct {
	Scene        string
	Tone         palette.Tone
	Index        int
	Count        int
	Elapsed      int
	Duration     int
	Frame        int
	Mode         state.Mode
	Failures     int
	TitleVisible bool
}

// Loop is the per-frame step of the show. The host calls Tick once per
// display refresh.
type Loop struct {
	sched  *scheduler.Scheduler
	title  TitleSink
	logger *log.Logger

	shown    bool // title shown during this activation
	visible  bool // title currently on screen
	failures int
}

// NewLoop creates a loop over sched. A nil title discards title events; a
// nil logger uses the standard logger.
func NewLoop(sched *scheduler.Scheduler, title TitleSink, logger *log.Logger) *Loop {
	if title == nil {
		title = discardTitle{}
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Loop{sched: sched, title: title, logger: logger}
}

// Tick advances the show by one frame unless paused: draw the active scene,
// advance on failure or when its duration has run out, then fire title edges.
func (l *Loop) Tick() {
	if l.sched.Paused() {
		return
	}

	frame := l.sched.NextFrame()
	if err := l.drawActive(frame); err != nil {
		l.failures++
		l.logger.Printf("scene render failure: %v", err)
		l.advance()
	}

	if l.sched.Elapsed() > l.sched.Current().Duration {
		l.advance()
	}

	l.updateTitle()
}

func (l *Loop) drawActive(frame int) (err error) {
	name := l.sched.Current().Name
	defer func() {
		if r := recover(); r != nil {
			cause, ok := r.(error)
			if ok {
				cause = fmt.Errorf("panic: %w", cause)
			} else {
				cause = fmt.Errorf("panic: %v", r)
			}
			err = &SceneRenderFailure{Scene: name, Frame: frame, Err: cause}
		}
	}()

	if err := l.sched.DrawActive(); err != nil {
		return &SceneRenderFailure{Scene: name, Frame: frame, Err: err}
	}
	return nil
}

func (l *Loop) updateTitle() {
	cur := l.sched.Current()
	elapsed := l.sched.Elapsed()

	if !l.shown && elapsed == TitleShowFrame {
		l.shown = true
		l.visible = true
		l.title.ShowTitle(cur.Name, cur.Tone)
	}
	if l.visible && elapsed > cur.Duration-TitleHideLead {
		l.visible = false
		l.title.HideTitle()
	}
}

func (l *Loop) advance() {
	l.sched.Advance()
	l.shown = false
	if l.visible {
		l.visible = false
		l.title.HideTitle()
	}
}

// Advance moves to the next scene immediately, paused or not.
func (l *Loop) Advance() {
	l.advance()
}

// TogglePause freezes or resumes the show.
func (l *Loop) TogglePause() {
	l.sched.SetPaused(!l.sched.Paused())
}

// Repaint resets the surface to the active scene's background, after a
// resize for example.
func (l *Loop) Repaint() {
	l.sched.Repaint()
}

// Status returns a snapshot of the loop.
func (l *Loop) Status() Status {
	cur := l.sched.Current()
	st := l.sched.State()
	return Status{
		Scene:        cur.Name,
		Tone:         cur.Tone,
		Index:        st.ActiveIndex,
		Count:        l.sched.Sequence().Len(),
		Elapsed:      st.Elapsed(),
		Duration:     cur.Duration,
		Frame:        st.GlobalFrame,
		Mode:         st.Mode(),
		Failures:     l.failures,
		TitleVisible: l.visible,
	}
}

type discardTitle struct{}

func (discardTitle) ShowTitle(string, palette.Tone) {}
func (discardTitle) HideTitle() {}
