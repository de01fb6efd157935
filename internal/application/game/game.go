// Package game adapts a show.Loop to ebiten: input, presentation, overlays
// and screenshots.
package game

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/younwookim/wenbian/internal/application/replay"
	"github.com/younwookim/wenbian/internal/application/show"
	"github.com/younwookim/wenbian/internal/domain/signal"
)

// SignalSource supplies the input signals of one tick.
type SignalSource interface {
	Poll() signal.Signals
}

// Presenter owns the offscreen surface the scenes paint on.
type Presenter interface {
	Resize(w, h int)
	Present(screen *ebiten.Image)
}

// Overlay is drawn over the presented surface every frame.
type Overlay interface {
	Update()
	Draw(screen *ebiten.Image)
}

// Screenshotter saves the current screen.
type Screenshotter interface {
	Save(screen *ebiten.Image, label string) (string, error)
}

// Options configures a Game. Every field is optional.
type Options struct {
	Input       SignalSource
	Replay      *replay.Replayer
	Recorder    *replay.Recorder
	Overlays    []Overlay
	Screenshots Screenshotter
	Debug       bool
	Logger      *log.Logger
}

// Game implements ebiten.Game around a Loop.
type Game struct {
	loop      *show.Loop
	presenter Presenter
	opts      Options
	logger    *log.Logger

	screenW     int
	screenH     int
	pendingShot bool
}

// New creates a new Game presenting through p.
func New(loop *show.Loop, p Presenter, opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Game{loop: loop, presenter: p, opts: opts, logger: logger}
}

// Update applies this tick's signals and steps the loop.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	sig := g.poll()

	if sig.Quit {
		return ebiten.Termination
	}
	if sig.Screenshot {
		g.pendingShot = true
	}
	if g.opts.Recorder != nil {
		g.opts.Recorder.Record(sig)
	}
	if sig.TogglePause {
		g.loop.TogglePause()
	}
	if sig.Advance {
		g.loop.Advance()
	}

	g.loop.Tick()

	for _, o := range g.opts.Overlays {
		o.Update()
	}
	return nil
}

// poll reads live input, letting an active replay override the signals that
// change the show.
func (g *Game) poll() signal.Signals {
	var live signal.Signals
	if g.opts.Input != nil {
		live = g.opts.Input.Poll()
	}
	if g.opts.Replay == nil {
		return live
	}

	sig, ok := g.opts.Replay.Poll()
	if !ok {
		g.logger.Printf("replay finished after %d ticks", g.opts.Replay.TotalTicks())
		g.opts.Replay = nil
		return live
	}
	sig.Screenshot = live.Screenshot
	sig.Quit = live.Quit
	return sig
}

// Draw presents the surface and the overlays.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.presenter.Present(screen)
	for _, o := range g.opts.Overlays {
		o.Draw(screen)
	}
	if g.opts.Debug {
		ebitenutil.DebugPrint(screen, g.debugText())
	}
	if g.pendingShot {
		g.pendingShot = false
		g.saveScreenshot(screen)
	}
}

func (g *Game) saveScreenshot(screen *ebiten.Image) {
	if g.opts.Screenshots == nil {
		return
	}
	path, err := g.opts.Screenshots.Save(screen, g.loop.Status().Scene)
	if err != nil {
		g.logger.Printf("screenshot failed: %v", err)
		return
	}
	g.logger.Printf("screenshot saved: %s", path)
}

func (g *Game) debugText() string {
	st := g.loop.Status()
	text := fmt.Sprintf("FPS %.1f  TPS %.1f\n%d/%d %s (%s) %s\nelapsed %d/%d  frame %d  failures %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(),
		st.Index+1, st.Count, st.Scene, st.Tone, st.Mode,
		st.Elapsed, st.Duration, st.Frame, st.Failures)
	if rp := g.opts.Replay; rp != nil {
		text += fmt.Sprintf("\nreplay %d/%d", rp.CurrentTick(), rp.TotalTicks())
	}
	if rec := g.opts.Recorder; rec != nil && rec.IsRecording() {
		text += fmt.Sprintf("\nrec %d ticks", rec.TickCount())
	}
	return text
}

// Layout follows the window size. A change resizes the surface and repaints
// the active background.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return max(outsideWidth, 1), max(outsideHeight, 1)
	}
	if outsideWidth != g.screenW || outsideHeight != g.screenH {
		g.screenW, g.screenH = outsideWidth, outsideHeight
		g.presenter.Resize(outsideWidth, outsideHeight)
		g.loop.Repaint()
	}
	return outsideWidth, outsideHeight
}

// Loop returns the underlying loop.
func (g *Game) Loop() *show.Loop {
	return g.loop
}
