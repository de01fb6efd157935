package state

// Mode represents whether the show is advancing
type Mode int

const (
	ModePlaying Mode = iota
	ModePaused
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case ModePlaying:
		return "Playing"
	case ModePaused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// SchedulerState is the mutable playback state owned by one scheduler.
//
// ActiveIndex and ActiveStartFrame change only on a transition. GlobalFrame
// grows by one per unpaused tick and is never reset. Paused freezes time
// without discarding it.
type SchedulerState struct {
	ActiveIndex      int
	ActiveStartFrame int
	GlobalFrame      int
	Paused           bool
}

// Elapsed returns the frames since the active scene was activated.
func (s SchedulerState) Elapsed() int {
	return s.GlobalFrame - s.ActiveStartFrame
}

// Mode returns the playback mode implied by the pause flag.
func (s SchedulerState) Mode() Mode {
	if s.Paused {
		return ModePaused
	}
	return ModePlaying
}
