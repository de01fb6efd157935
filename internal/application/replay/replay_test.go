package replay

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/wenbian/internal/domain/signal"
)

func TestSignalFrame_OmitsFalseSignals(t *testing.T) {
	data, err := json.Marshal(SignalFrame{T: 7, A: true})
	require.NoError(t, err)

	assert.JSONEq(t, `{"t":7,"a":true}`, string(data))
}

func TestRecorder_SparseFrames(t *testing.T) {
	rec := NewRecorder(42, "A")

	rec.Record(signal.Signals{})
	rec.Record(signal.Signals{Advance: true})
	rec.Record(signal.Signals{Screenshot: true})
	rec.Record(signal.Signals{TogglePause: true, Quit: true})
	rec.Record(signal.Signals{})

	assert.Equal(t, 5, rec.TickCount())
	assert.Equal(t, 2, rec.FrameCount())

	data := rec.data
	assert.Equal(t, FormatVersion, data.Version)
	assert.Equal(t, int64(42), data.Seed)
	assert.Equal(t, "A", data.Opening)
	assert.Equal(t, []SignalFrame{{T: 1, A: true}, {T: 3, P: true}}, data.Frames)
}

func TestRecorder_Stop(t *testing.T) {
	rec := NewRecorder(1, "")
	rec.Record(signal.Signals{Advance: true})
	rec.Stop()
	rec.Record(signal.Signals{Advance: true})

	assert.False(t, rec.IsRecording())
	assert.Equal(t, 1, rec.TickCount())
	assert.Equal(t, 1, rec.FrameCount())
}

func TestRecorder_SaveEmpty(t *testing.T) {
	rec := NewRecorder(1, "")
	err := rec.Save(filepath.Join(t.TempDir(), "empty.json"))
	assert.Error(t, err)
}

func TestRecorder_SaveAndLoad(t *testing.T) {
	rec := NewRecorder(777, "混沌 · 起源")
	for i := 0; i < 10; i++ {
		rec.Record(signal.Signals{Advance: i == 4, TogglePause: i == 8})
	}

	path := filepath.Join(t.TempDir(), GenerateFilename())
	require.NoError(t, rec.Save(path))

	data, err := LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, rec.data.Seed, data.Seed)
	assert.Equal(t, rec.data.Opening, data.Opening)
	assert.Equal(t, 10, data.Ticks)
	assert.Equal(t, rec.data.Frames, data.Frames)
}

func TestLoadReplay_Errors(t *testing.T) {
	_, err := LoadReplay(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o644))
	_, err = LoadReplay(bad)
	assert.Error(t, err)

	old := filepath.Join(t.TempDir(), "old.json")
	require.NoError(t, os.WriteFile(old, []byte(`{"version":"0.1","ticks":1}`), 0o644))
	_, err = LoadReplay(old)
	assert.ErrorContains(t, err, "unsupported replay version")
}

func TestReplayer_Poll(t *testing.T) {
	data := ReplayData{
		Version: FormatVersion,
		Seed:    42,
		Ticks:   4,
		Frames: []SignalFrame{
			{T: 1, A: true},
			{T: 2, P: true},
			{T: 2, A: true},
		},
	}
	r := NewReplayer(data)

	var got []signal.Signals
	for {
		sig, ok := r.Poll()
		if !ok {
			break
		}
		got = append(got, sig)
	}

	assert.Equal(t, []signal.Signals{
		{},
		{Advance: true},
		{TogglePause: true, Advance: true},
		{},
	}, got)
	assert.True(t, r.Done())
	assert.Equal(t, 4, r.CurrentTick())
}

func TestReplayer_RoundTrip(t *testing.T) {
	input := []signal.Signals{
		{}, {Advance: true}, {}, {}, {TogglePause: true}, {}, {TogglePause: true, Advance: true},
	}
	rec := NewRecorder(5, "")
	for _, sig := range input {
		rec.Record(sig)
	}

	r := NewReplayer(rec.data)
	for i, want := range input {
		sig, ok := r.Poll()
		require.True(t, ok, "tick %d", i)
		assert.Equal(t, want, sig, "tick %d", i)
	}
	_, ok := r.Poll()
	assert.False(t, ok)
}

func TestReplayer_Accessors(t *testing.T) {
	r := NewReplayer(ReplayData{Seed: 99999, Opening: "A", Ticks: 2, Frames: []SignalFrame{{T: 0, A: true}}})

	assert.Equal(t, int64(99999), r.Seed())
	assert.Equal(t, "A", r.Opening())
	assert.Equal(t, 2, r.TotalTicks())
	assert.Equal(t, 0, r.CurrentTick())

	sig, ok := r.Poll()
	assert.True(t, ok)
	assert.True(t, sig.Advance)
	assert.Equal(t, 1, r.CurrentTick())

	r.Poll()
	assert.True(t, r.Done())
	assert.Equal(t, 2, r.CurrentTick())
}
