package coordinator

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned when a stage change is requested
// that the progression does not permit, including any backward move.
var ErrInvalidTransition = errors.New("invalid stage transition")

// GateNotMetError is returned when a stage transition is attempted
// before its score gate has been reached. It carries the numeric gap so
// callers can tell the student how far off they are.
type GateNotMetError struct {
	Target   Stage
	Required float64
	Actual   float64
}

func (e *GateNotMetError) Error() string {
	return fmt.Sprintf("cannot enter %s: score %.1f is %.1f points below the required %.1f",
		e.Target, e.Actual, e.Required-e.Actual, e.Required)
}

// IsGateNotMet reports whether err is a GateNotMetError.
func IsGateNotMet(err error) bool {
	var gate *GateNotMetError
	return errors.As(err, &gate)
}
