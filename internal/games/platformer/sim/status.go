package sim

// Status is the outcome of a level.
type Status int

const (
	Playing Status = iota
	Won
	Lost
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the level has ended.
// Once a state is terminal it never changes again.
func (s Status) Terminal() bool {
	return s != Playing
}
