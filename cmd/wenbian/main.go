package main

import (
	"embed"
	"errors"
	"flag"
	"io/fs"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/wenbian/internal/application/game"
	"github.com/younwookim/wenbian/internal/application/replay"
	"github.com/younwookim/wenbian/internal/application/show"
	"github.com/younwookim/wenbian/internal/application/system"
	"github.com/younwookim/wenbian/internal/infrastructure/config"
	"github.com/younwookim/wenbian/internal/infrastructure/render"
	"github.com/younwookim/wenbian/internal/infrastructure/render/gpu"
)

//go:embed configs
var configFS embed.FS

func main() {
	configDir := flag.String("config", "", "Config directory holding engine.yaml (default: embedded)")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Replay input from file")
	seedFlag := flag.Int64("seed", 0, "Random seed (0: config, then time)")
	shotDir := flag.String("shots", "screenshots", "Directory for F12 screenshots")
	debug := flag.Bool("debug", false, "Show the debug HUD")
	flag.Parse()

	cfg, err := loadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	opts := game.Options{
		Input:       system.NewInputSystem(system.DefaultBindings()),
		Screenshots: gpu.Screenshots{Dir: *shotDir},
		Debug:       *debug,
	}

	showCfg := show.Config{
		Opening:       cfg.Show.Opening,
		Exclude:       cfg.Show.Exclude,
		DurationScale: cfg.Show.DurationScale,
	}
	var replaySeed int64
	if *replayFlag != "" {
		data, err := replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		rp := replay.NewReplayer(*data)
		opts.Replay = rp
		replaySeed = rp.Seed()
		showCfg.Opening = rp.Opening()
		log.Printf("Replaying %s (seed: %d, %d ticks)", *replayFlag, rp.Seed(), rp.TotalTicks())
	}
	showCfg.Seed = show.ResolveSeed(func() int64 { return time.Now().UnixNano() }, replaySeed, *seedFlag, cfg.Show.Seed)

	if *recordFlag != "" {
		opts.Recorder = replay.NewRecorder(showCfg.Seed, showCfg.Opening)
		log.Printf("Recording enabled: %s (seed: %d)", *recordFlag, showCfg.Seed)
	}

	surface := gpu.NewSurface(cfg.Display.Width, cfg.Display.Height)
	title := render.NewTitleOverlay(cfg.Title.FadeFrames)
	fontData, err := render.LoadFontOrDefault(cfg.Title.FontPath)
	if err != nil {
		log.Printf("Title font: %v", err)
	}
	titleRenderer, err := gpu.NewTitleRenderer(title, fontData, cfg.Title.Size, cfg.Title.OffsetY)
	if err != nil {
		if titleRenderer == nil {
			log.Fatalf("Failed to create title renderer: %v", err)
		}
		log.Printf("Title font: %v", err)
	}
	opts.Overlays = []game.Overlay{titleRenderer}

	loop, err := show.Build(showCfg, surface, title, nil)
	if err != nil {
		log.Fatalf("Failed to build show: %v", err)
	}
	g := game.New(loop, surface, opts)

	ebiten.SetWindowSize(cfg.Display.Width, cfg.Display.Height)
	ebiten.SetWindowTitle(cfg.Display.WindowTitle)
	ebiten.SetFullscreen(cfg.Display.Fullscreen)
	if cfg.Display.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if cfg.Display.TPS > 0 {
		ebiten.SetTPS(cfg.Display.TPS)
	} else {
		ebiten.SetTPS(ebiten.SyncWithFPS)
	}

	runErr := ebiten.RunGame(g)

	if opts.Recorder != nil {
		saveRecording(opts.Recorder, *recordFlag)
	}
	if runErr != nil && !errors.Is(runErr, ebiten.Termination) {
		log.Fatal(runErr)
	}
}

// loadConfig reads engine.yaml from dir, or from the embedded configs when
// dir is empty.
func loadConfig(dir string) (*config.EngineConfig, error) {
	if dir != "" {
		return config.NewLoader(dir).LoadEngine()
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(fsys, "configs").LoadEngine()
}

// saveRecording saves the current recording to file
func saveRecording(rec *replay.Recorder, filename string) {
	rec.Stop()
	if filename == "" {
		filename = replay.GenerateFilename()
	}
	if err := rec.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
		return
	}
	log.Printf("Recording saved: %s (%d ticks, %d signal frames)", filename, rec.TickCount(), rec.FrameCount())
}
