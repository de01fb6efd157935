// Package signal holds the per-tick requests the show reacts to. It has no
// device dependencies so headless hosts and replays can share it.
package signal

// Signals are the edge-triggered requests raised during one tick.
type Signals struct {
	TogglePause bool
	Advance     bool
	Screenshot  bool
	Quit        bool
}

// Recordable returns only the signals that change the show. Screenshots and
// quitting are host concerns and never go into a replay.
func (s Signals) Recordable() Signals {
	return Signals{TogglePause: s.TogglePause, Advance: s.Advance}
}
