package main

import (
	"flag"
	"log"
	"time"

	"github.com/younwookim/wenbian/internal/application/replay"
	"github.com/younwookim/wenbian/internal/application/show"
	"github.com/younwookim/wenbian/internal/infrastructure/config"
	"github.com/younwookim/wenbian/internal/infrastructure/render"
	"github.com/younwookim/wenbian/internal/infrastructure/render/raster"
)

func main() {
	configDir := flag.String("config", "", "Config directory holding engine.yaml (default: built-in defaults)")
	framesFlag := flag.Int("frames", 0, "Ticks to run (0: export.frames)")
	everyFlag := flag.Int("every", 0, "Write every Nth tick (0: export.every)")
	outFlag := flag.String("out", "", "Output directory (default: export.dir)")
	seedFlag := flag.Int64("seed", 0, "Random seed (0: config, then time)")
	replayFlag := flag.String("replay", "", "Apply recorded input from file")
	flag.Parse()

	cfg, err := loadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	showCfg := show.Config{
		Opening:       cfg.Show.Opening,
		Exclude:       cfg.Show.Exclude,
		DurationScale: cfg.Show.DurationScale,
	}
	var rp *replay.Replayer
	var replaySeed int64
	if *replayFlag != "" {
		data, err := replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		rp = replay.NewReplayer(*data)
		replaySeed = rp.Seed()
		showCfg.Opening = rp.Opening()
		log.Printf("Replaying %s (seed: %d, %d ticks)", *replayFlag, rp.Seed(), rp.TotalTicks())
	}
	showCfg.Seed = show.ResolveSeed(func() int64 { return time.Now().UnixNano() }, replaySeed, *seedFlag, cfg.Show.Seed)

	surface := raster.NewSurface(cfg.Export.Width, cfg.Export.Height)
	title := render.NewTitleOverlay(cfg.Title.FadeFrames)
	fontData, err := render.LoadFontOrDefault(cfg.Title.FontPath)
	if err != nil {
		log.Printf("Title font: %v", err)
	}
	titles, err := raster.NewTitleRenderer(fontData, cfg.Title.Size, cfg.Title.OffsetY)
	if err != nil {
		log.Printf("Title font: %v", err)
	}

	loop, err := show.Build(showCfg, surface, title, nil)
	if err != nil {
		log.Fatalf("Failed to build show: %v", err)
	}

	e := &exporter{
		loop:    loop,
		surface: surface,
		title:   title,
		titles:  titles,
		replay:  rp,
		logger:  log.Default(),
		dir:     pick(*outFlag, cfg.Export.Dir),
		frames:  pickInt(*framesFlag, cfg.Export.Frames),
		every:   pickInt(*everyFlag, cfg.Export.Every),
	}
	log.Printf("Exporting %d ticks every %d to %s (seed: %d)", e.frames, e.every, e.dir, showCfg.Seed)
	if _, err := e.run(); err != nil {
		log.Fatalf("Export failed: %v", err)
	}
}

// loadConfig reads engine.yaml from dir, or returns the defaults when dir
// is empty.
func loadConfig(dir string) (*config.EngineConfig, error) {
	if dir == "" {
		cfg := config.Default()
		return &cfg, nil
	}
	return config.NewLoader(dir).LoadEngine()
}

func pick(flagValue, cfgValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return cfgValue
}

func pickInt(flagValue, cfgValue int) int {
	if flagValue > 0 {
		return flagValue
	}
	return cfgValue
}
