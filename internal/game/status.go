package game

// Status is the derived lifecycle of a session. The board itself never
// stores it; the session reconstructs it from reveal results and the
// win check.
type Status int

const (
	StatusNotStarted Status = iota
	StatusInProgress
	StatusWon
	StatusLost
)

func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "not started"
	case StatusInProgress:
		return "in progress"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "invalid"
	}
}

// Terminal reports whether the session accepts no further moves.
func (s Status) Terminal() bool {
	return s == StatusWon || s == StatusLost
}
