package main

import (
	"fmt"
	"log"

	"github.com/younwookim/wenbian/internal/application/replay"
	"github.com/younwookim/wenbian/internal/application/show"
	"github.com/younwookim/wenbian/internal/infrastructure/render"
	"github.com/younwookim/wenbian/internal/infrastructure/render/raster"
)

// exporter steps a show on a raster surface and writes every Nth frame.
type exporter struct {
	loop    *show.Loop
	surface *raster.Surface
	title   *render.TitleOverlay
	titles  *raster.TitleRenderer
	replay  *replay.Replayer
	logger  *log.Logger

	dir    string
	frames int
	every  int
}

// run ticks frames times and returns the number of files written.
func (e *exporter) run() (int, error) {
	if e.every <= 0 {
		return 0, fmt.Errorf("every must be positive, got %d", e.every)
	}

	written := 0
	for tick := 1; tick <= e.frames; tick++ {
		if e.replay != nil {
			if sig, ok := e.replay.Poll(); ok {
				if sig.TogglePause {
					e.loop.TogglePause()
				}
				if sig.Advance {
					e.loop.Advance()
				}
			}
		}
		e.loop.Tick()
		e.title.Update()

		if tick%e.every != 0 {
			continue
		}
		img := e.surface.Image()
		if e.titles != nil {
			img = e.titles.Compose(img, e.title)
		}
		if err := render.WritePNG(render.FramePath(e.dir, tick), img); err != nil {
			return written, err
		}
		written++
	}

	st := e.loop.Status()
	e.logger.Printf("exported %d frames to %s (last scene %q, %d render failures)", written, e.dir, st.Scene, st.Failures)
	return written, nil
}
