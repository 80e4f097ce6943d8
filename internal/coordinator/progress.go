package coordinator

import (
	"context"
	"math"
)

// Progress is a summary view of a student's overall training state.
type Progress struct {
	Stage             Stage
	StageLabel        string
	TheoryScore       float64
	PracticeScore     float64
	TheoryCompleted   bool
	PracticeCompleted bool

	// Completion is a 0-100 percentage blending the two stage scores
	// with the same 30/70 weighting the overall evaluation uses.
	Completion float64

	CanEnterPractice bool
	NextStep         string
}

// StageStatus describes one stage from the student's point of view.
type StageStatus struct {
	Stage      Stage
	Label      string
	Score      float64
	Completed  bool
	Locked     bool
	LockReason string
}

// OverallProgress assembles the student's progress summary.
func (s *Service) OverallProgress(ctx context.Context) (*Progress, error) {
	state, err := s.State(ctx)
	if err != nil {
		return nil, err
	}
	canPractice, _, err := s.CanEnterPractice(ctx)
	if err != nil {
		return nil, err
	}

	theory := scoreOf(state.TheoryScore)
	practice := scoreOf(state.PracticeScore)
	stage := Stage(state.Stage)

	completion := 0.3*theory + 0.7*practice

	var nextStep string
	switch {
	case state.PracticeCompleted:
		nextStep = "all training complete; ready for supervised work on the real tool"
	case stage == StagePractice:
		nextStep = "continue simulated practice sessions"
	case state.TheoryCompleted:
		nextStep = "enter simulated practice"
	default:
		nextStep = "pass the theory test"
	}

	return &Progress{
		Stage:             stage,
		StageLabel:        stage.Label(),
		TheoryScore:       theory,
		PracticeScore:     practice,
		TheoryCompleted:   state.TheoryCompleted,
		PracticeCompleted: state.PracticeCompleted,
		Completion:        math.Round(completion*10) / 10,
		CanEnterPractice:  canPractice,
		NextStep:          nextStep,
	}, nil
}

// StageStatuses reports each stage's score, completion, and lock state.
func (s *Service) StageStatuses(ctx context.Context) ([]StageStatus, error) {
	state, err := s.State(ctx)
	if err != nil {
		return nil, err
	}
	canPractice, reason, err := s.CanEnterPractice(ctx)
	if err != nil {
		return nil, err
	}

	theory := StageStatus{
		Stage:     StageTheory,
		Label:     StageTheory.Label(),
		Score:     scoreOf(state.TheoryScore),
		Completed: state.TheoryCompleted,
	}

	practice := StageStatus{
		Stage:     StagePractice,
		Label:     StagePractice.Label(),
		Score:     scoreOf(state.PracticeScore),
		Completed: state.PracticeCompleted,
		Locked:    !canPractice,
	}
	if !canPractice {
		practice.LockReason = reason
	}

	return []StageStatus{theory, practice}, nil
}
