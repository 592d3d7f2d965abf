package sim

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedLevel is returned when a level plan cannot be parsed.
	ErrMalformedLevel = errors.New("malformed level")

	// ErrInvariantViolation means a state no longer has exactly one player.
	// The simulation cannot continue from such a state.
	ErrInvariantViolation = errors.New("invariant violation")

	// ErrInvalidArgument is returned for time deltas that are negative or not finite.
	ErrInvalidArgument = errors.New("invalid argument")
)

// LevelError describes where a plan is malformed.
// Row and Col are zero-based; Col is -1 when the problem concerns a whole row.
type LevelError struct {
	Row    int
	Col    int
	Reason string
}

func (e *LevelError) Error() string {
	if e.Col < 0 {
		return fmt.Sprintf("%s: row %d: %s", ErrMalformedLevel, e.Row+1, e.Reason)
	}
	return fmt.Sprintf("%s: row %d col %d: %s", ErrMalformedLevel, e.Row+1, e.Col+1, e.Reason)
}

// Unwrap lets errors.Is match ErrMalformedLevel.
func (e *LevelError) Unwrap() error {
	return ErrMalformedLevel
}
