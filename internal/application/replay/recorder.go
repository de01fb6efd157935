package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/wenbian/internal/domain/signal"
)

// Recorder handles signal recording for replay
type Recorder struct {
	data      ReplayData
	recording bool
}

// NewRecorder creates a new recorder with seed for deterministic replay
func NewRecorder(seed int64, opening string) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:   FormatVersion,
			Seed:      seed,
			Opening:   opening,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]SignalFrame, 0, 64),
		},
		recording: true,
	}
}

// Record records one tick. Only ticks that raise a show-changing signal
// produce a frame.
func (r *Recorder) Record(sig signal.Signals) {
	if !r.recording {
		return
	}

	sig = sig.Recordable()
	if sig.TogglePause || sig.Advance {
		r.data.Frames = append(r.data.Frames, SignalFrame{
			T: r.data.Ticks,
			P: sig.TogglePause,
			A: sig.Advance,
		})
	}
	r.data.Ticks++
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if r.data.Ticks == 0 {
		return fmt.Errorf("no ticks to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded signal frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// TickCount returns the number of recorded ticks
func (r *Recorder) TickCount() int {
	return r.data.Ticks
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
