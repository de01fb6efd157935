package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/wenbian/internal/application/replay"
	"github.com/younwookim/wenbian/internal/domain/signal"
	"github.com/younwookim/wenbian/internal/infrastructure/config"
)

func TestLoadConfig_Embedded(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)

	assert.Equal(t, config.DefaultOpening, cfg.Show.Opening)
	assert.Equal(t, "纹·变", cfg.Display.WindowTitle)
}

func TestLoadConfig_Directory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.EngineFile), []byte("version: 1\nshow:\n  seed: 8\n"), 0o644))

	cfg, err := loadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, int64(8), cfg.Show.Seed)

	_, err = loadConfig(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestSaveRecording(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	rec := replay.NewRecorder(4, "混沌 · 起源")
	rec.Record(signal.Signals{})
	rec.Record(signal.Signals{Advance: true})

	saveRecording(rec, path)

	assert.False(t, rec.IsRecording())
	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, int64(4), data.Seed)
	assert.Equal(t, 2, data.Ticks)
}
