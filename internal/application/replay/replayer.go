package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/younwookim/wenbian/internal/domain/signal"
)

// Replayer handles signal playback from recorded data
type Replayer struct {
	data ReplayData
	tick int
	next int // index of the next unplayed frame
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if data.Version != FormatVersion {
		return nil, fmt.Errorf("unsupported replay version %q", data.Version)
	}

	return &data, nil
}

// Poll returns the signals of the current tick and advances. It returns
// false once every recorded tick has been played.
func (r *Replayer) Poll() (signal.Signals, bool) {
	if r.Done() {
		return signal.Signals{}, false
	}

	var sig signal.Signals
	// Several frames for one tick merge; stale ones are skipped.
	for r.next < len(r.data.Frames) && r.data.Frames[r.next].T <= r.tick {
		f := r.data.Frames[r.next]
		if f.T == r.tick {
			sig.TogglePause = sig.TogglePause || f.P
			sig.Advance = sig.Advance || f.A
		}
		r.next++
	}
	r.tick++
	return sig, true
}

// Done reports whether playback has reached the end of the recording
func (r *Replayer) Done() bool {
	return r.tick >= r.data.Ticks
}

// CurrentTick returns the current tick number
func (r *Replayer) CurrentTick() int {
	return r.tick
}

// TotalTicks returns the total number of ticks
func (r *Replayer) TotalTicks() int {
	return r.data.Ticks
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// Opening returns the opening scene of the recorded session
func (r *Replayer) Opening() string {
	return r.data.Opening
}
