package player

// State is the engine state. Play works from any state and replaces the
// loaded track; Stop returns to Stopped from anywhere.
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	}
	return "Unknown"
}

// IsActive reports whether a track is loaded.
func (s State) IsActive() bool { return s == Playing || s == Paused }

// CanPause reports whether Pause has an effect.
func (s State) CanPause() bool { return s == Playing }

// CanResume reports whether Resume has an effect.
func (s State) CanResume() bool { return s == Paused }
