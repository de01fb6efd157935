// Package replay records the show-changing input of a session and plays it
// back, so a run with the same seed reproduces the same show.
package replay

// FormatVersion is written into every replay file.
const FormatVersion = "1.0"

// SignalFrame records the signals raised in one tick. Ticks without signals
// are not stored.
type SignalFrame struct {
	T int  `json:"t"`           // Tick number
	P bool `json:"p,omitempty"` // TogglePause
	A bool `json:"a,omitempty"` // Advance
}

// ReplayData contains all data needed to replay a session
type ReplayData struct {
	Version   string        `json:"version"`
	Seed      int64         `json:"seed"`
	Opening   string        `json:"opening"`
	StartTime string        `json:"startTime"`
	Ticks     int           `json:"ticks"`
	Frames    []SignalFrame `json:"frames"`
}
