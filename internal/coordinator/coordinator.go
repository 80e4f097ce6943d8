package coordinator

import (
	"context"
	"fmt"
	"time"

	"github.com/yclin/fabtrainer/internal/store"
)

// Default score gates for stage transitions.
const (
	TheoryGateScore   = 70.0
	PracticeGateScore = 80.0
)

// Service drives one student's progression through the training stages.
// All state mutations run inside the student's lock, so concurrent
// requests for the same student cannot lose updates.
type Service struct {
	studentID    string
	states       store.StateRepo
	theoryGate   float64
	practiceGate float64
}

// Option configures a Service.
type Option func(*Service)

// WithGates overrides the default stage score gates.
func WithGates(theory, practice float64) Option {
	return func(s *Service) {
		s.theoryGate = theory
		s.practiceGate = practice
	}
}

func NewService(studentID string, states store.StateRepo, opts ...Option) *Service {
	s := &Service{
		studentID:    studentID,
		states:       states,
		theoryGate:   TheoryGateScore,
		practiceGate: PracticeGateScore,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// defaultState is the state a student starts in on first contact.
func (s *Service) defaultState() *store.TrainingStateData {
	now := time.Now()
	return &store.TrainingStateData{
		StudentID:   s.studentID,
		Stage:       string(StageTheory),
		CreatedAt:   now,
		LastUpdated: now,
	}
}

// load returns the student's current state, creating and persisting the
// default THEORY state on first contact. Callers must hold the
// student's lock.
func (s *Service) load(ctx context.Context) (*store.TrainingStateData, error) {
	state, err := s.states.Load(ctx, s.studentID)
	if err != nil {
		return nil, err
	}
	if state != nil {
		return state, nil
	}

	state = s.defaultState()
	if err := s.states.Save(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

// State returns the student's current training state, creating the
// default one if this is the student's first contact.
func (s *Service) State(ctx context.Context) (*store.TrainingStateData, error) {
	unlock := s.states.Lock(s.studentID)
	defer unlock()
	return s.load(ctx)
}

// UpdateTheoryScore records a theory test score and marks the theory
// stage completed when the gate is reached. The completion flag is
// sticky: a lower re-score updates the score but never revokes a pass.
// It never changes the current stage; advancing is always an explicit
// EnterStage call.
func (s *Service) UpdateTheoryScore(ctx context.Context, score float64) error {
	unlock := s.states.Lock(s.studentID)
	defer unlock()

	state, err := s.load(ctx)
	if err != nil {
		return err
	}
	state.TheoryScore = &score
	if score >= s.theoryGate {
		state.TheoryCompleted = true
	}
	return s.states.Save(ctx, state)
}

// UpdatePracticeScore records a practice session score and marks the
// practice stage completed when the gate is reached. Like
// UpdateTheoryScore the completion flag is sticky and the current stage
// is never changed.
func (s *Service) UpdatePracticeScore(ctx context.Context, score float64) error {
	unlock := s.states.Lock(s.studentID)
	defer unlock()

	state, err := s.load(ctx)
	if err != nil {
		return err
	}
	state.PracticeScore = &score
	if score >= s.practiceGate {
		state.PracticeCompleted = true
	}
	return s.states.Save(ctx, state)
}

// EnterStage moves the student to the target stage. Only the single
// forward transition from the current stage is legal, and it is gated
// on the corresponding score. Requesting the current stage is a no-op.
func (s *Service) EnterStage(ctx context.Context, target Stage) error {
	if !target.valid() {
		return fmt.Errorf("%w: unknown stage %q", ErrInvalidTransition, target)
	}

	unlock := s.states.Lock(s.studentID)
	defer unlock()

	state, err := s.load(ctx)
	if err != nil {
		return err
	}

	current := Stage(state.Stage)
	if target == current {
		return nil
	}
	if next[current] != target {
		return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, current, target)
	}

	switch target {
	case StagePractice:
		if score := scoreOf(state.TheoryScore); score < s.theoryGate {
			return &GateNotMetError{Target: StagePractice, Required: s.theoryGate, Actual: score}
		}
	case StageComplete:
		if score := scoreOf(state.PracticeScore); score < s.practiceGate {
			return &GateNotMetError{Target: StageComplete, Required: s.practiceGate, Actual: score}
		}
	}

	state.Stage = string(target)
	return s.states.Save(ctx, state)
}

// CanEnterPractice reports whether the theory gate has been passed,
// with a message explaining the condition. It never mutates state.
func (s *Service) CanEnterPractice(ctx context.Context) (bool, string, error) {
	state, err := s.State(ctx)
	if err != nil {
		return false, "", err
	}

	score := scoreOf(state.TheoryScore)
	if state.TheoryCompleted || score >= s.theoryGate {
		return true, fmt.Sprintf("theory test passed with %.1f (gate %.0f)", score, s.theoryGate), nil
	}
	return false, fmt.Sprintf("theory score %.1f is below the %.0f gate", score, s.theoryGate), nil
}

// CanEnterRealPractice reports whether simulated training is complete
// and the student may move to supervised work on the real tool.
func (s *Service) CanEnterRealPractice(ctx context.Context) (bool, string, error) {
	state, err := s.State(ctx)
	if err != nil {
		return false, "", err
	}

	score := scoreOf(state.PracticeScore)
	if state.PracticeCompleted || score >= s.practiceGate {
		return true, fmt.Sprintf("simulated practice passed with %.1f (gate %.0f)", score, s.practiceGate), nil
	}
	return false, fmt.Sprintf("practice score %.1f is below the %.0f gate", score, s.practiceGate), nil
}

// Reset discards the student's progress and returns them to the
// default THEORY state.
func (s *Service) Reset(ctx context.Context) error {
	unlock := s.states.Lock(s.studentID)
	defer unlock()
	return s.states.Save(ctx, s.defaultState())
}

func scoreOf(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
