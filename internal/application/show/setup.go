package show

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/younwookim/wenbian/internal/application/scene/pattern"
	"github.com/younwookim/wenbian/internal/application/scheduler"
	"github.com/younwookim/wenbian/internal/domain/canvas"
)

// Config selects the scenes of a run and seeds its randomness. The same Config
// on the same surface size replays the same frames.
type Config struct {
	Seed          int64
	Opening       string
	Exclude       []string
	DurationScale float64
}

// ResolveSeed picks the first non-zero seed; now is used when all are zero.
func ResolveSeed(now func() int64, seeds ...int64) int64 {
	for _, s := range seeds {
		if s != 0 {
			return s
		}
	}
	return now()
}

// Build creates the scheduler and loop of a show drawing onto c. One seeded
// generator drives both the shuffle and the scenes.
func Build(cfg Config, c canvas.Canvas, title TitleSink, logger *log.Logger) (*Loop, error) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	seq, err := pattern.NewSequence(rng, cfg.Opening, cfg.Exclude, cfg.DurationScale)
	if err != nil {
		return nil, fmt.Errorf("failed to build sequence: %w", err)
	}
	sched, err := scheduler.New(seq, c, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}
	return NewLoop(sched, title, logger), nil
}
