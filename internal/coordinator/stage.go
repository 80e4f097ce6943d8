package coordinator

import (
	"fmt"
	"strings"
)

// Stage is a phase of the two-stage training progression.
type Stage string

const (
	StageTheory   Stage = "theory"
	StagePractice Stage = "practice"
	StageComplete Stage = "complete"
)

// next maps each stage to the only stage reachable from it. The
// progression is forward-only; StageComplete is terminal.
var next = map[Stage]Stage{
	StageTheory:   StagePractice,
	StagePractice: StageComplete,
}

// Label returns a short human-readable name for the stage.
func (s Stage) Label() string {
	switch s {
	case StageTheory:
		return "Stage 1: Theory Study"
	case StagePractice:
		return "Stage 2: Simulated Practice"
	case StageComplete:
		return "Training Complete"
	default:
		return string(s)
	}
}

func (s Stage) valid() bool {
	switch s {
	case StageTheory, StagePractice, StageComplete:
		return true
	}
	return false
}

// ParseStage converts a stored or user-supplied label into a Stage.
func ParseStage(s string) (Stage, error) {
	st := Stage(strings.ToLower(strings.TrimSpace(s)))
	if !st.valid() {
		return "", fmt.Errorf("unknown training stage %q", s)
	}
	return st, nil
}
