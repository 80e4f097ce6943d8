package coordinator

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/yclin/fabtrainer/internal/store"
)

// fakeStateRepo is an in-memory StateRepo.
type fakeStateRepo struct {
	mu     sync.Mutex
	states map[string]store.TrainingStateData
}

func newFakeStateRepo() *fakeStateRepo {
	return &fakeStateRepo{states: make(map[string]store.TrainingStateData)}
}

func (f *fakeStateRepo) Lock(studentID string) func() {
	f.mu.Lock()
	return f.mu.Unlock
}

func (f *fakeStateRepo) Load(ctx context.Context, studentID string) (*store.TrainingStateData, error) {
	s, ok := f.states[studentID]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (f *fakeStateRepo) Save(ctx context.Context, data *store.TrainingStateData) error {
	f.states[data.StudentID] = *data
	return nil
}

func TestStateCreatedOnFirstContact(t *testing.T) {
	repo := newFakeStateRepo()
	svc := NewService("s1", repo)

	state, err := svc.State(context.Background())
	if err != nil {
		t.Fatalf("state: %v", err)
	}
	if state.Stage != string(StageTheory) {
		t.Errorf("initial stage = %q, want theory", state.Stage)
	}
	if state.TheoryScore != nil || state.PracticeScore != nil {
		t.Error("initial scores should be unset")
	}
	if _, ok := repo.states["s1"]; !ok {
		t.Error("first contact should persist the default state")
	}
}

func TestEnterPracticeGate(t *testing.T) {
	svc := NewService("s1", newFakeStateRepo())
	ctx := context.Background()

	if err := svc.UpdateTheoryScore(ctx, 69); err != nil {
		t.Fatalf("update: %v", err)
	}
	err := svc.EnterStage(ctx, StagePractice)
	if err == nil {
		t.Fatal("expected gate error at 69, got nil")
	}
	var gate *GateNotMetError
	if !errors.As(err, &gate) {
		t.Fatalf("expected GateNotMetError, got %v", err)
	}
	if gate.Required != 70 || gate.Actual != 69 {
		t.Errorf("gate = %+v, want required 70 actual 69", gate)
	}
	if !strings.Contains(err.Error(), "1.0 points below") {
		t.Errorf("error should carry the missing delta, got %q", err)
	}

	// State unchanged by the failed attempt.
	state, err := svc.State(ctx)
	if err != nil {
		t.Fatalf("state: %v", err)
	}
	if state.Stage != string(StageTheory) {
		t.Errorf("stage after failed transition = %q, want theory", state.Stage)
	}

	if err := svc.UpdateTheoryScore(ctx, 70); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := svc.EnterStage(ctx, StagePractice); err != nil {
		t.Fatalf("enter practice at 70: %v", err)
	}
	state, _ = svc.State(ctx)
	if state.Stage != string(StagePractice) {
		t.Errorf("stage = %q, want practice", state.Stage)
	}
}

func TestNoBackwardTransition(t *testing.T) {
	svc := NewService("s1", newFakeStateRepo())
	ctx := context.Background()

	if err := svc.UpdateTheoryScore(ctx, 85); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := svc.EnterStage(ctx, StagePractice); err != nil {
		t.Fatalf("enter practice: %v", err)
	}

	err := svc.EnterStage(ctx, StageTheory)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition going back to theory, got %v", err)
	}
}

func TestNoStageSkipping(t *testing.T) {
	svc := NewService("s1", newFakeStateRepo())
	ctx := context.Background()

	// Even with a perfect practice score, COMPLETE is unreachable from THEORY.
	if err := svc.UpdateTheoryScore(ctx, 100); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := svc.UpdatePracticeScore(ctx, 100); err != nil {
		t.Fatalf("update: %v", err)
	}

	err := svc.EnterStage(ctx, StageComplete)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition skipping practice, got %v", err)
	}
}

func TestScoreUpdatesNeverChangeStage(t *testing.T) {
	svc := NewService("s1", newFakeStateRepo())
	ctx := context.Background()

	if err := svc.UpdateTheoryScore(ctx, 95); err != nil {
		t.Fatalf("update: %v", err)
	}
	state, _ := svc.State(ctx)
	if state.Stage != string(StageTheory) {
		t.Errorf("stage = %q after score update, want theory", state.Stage)
	}
	if !state.TheoryCompleted {
		t.Error("theory_completed should be set at 95")
	}
}

func TestCompletionFlow(t *testing.T) {
	svc := NewService("s1", newFakeStateRepo())
	ctx := context.Background()

	if err := svc.UpdateTheoryScore(ctx, 80); err != nil {
		t.Fatal(err)
	}
	if err := svc.EnterStage(ctx, StagePractice); err != nil {
		t.Fatal(err)
	}

	// Practice gate not met at 79.
	if err := svc.UpdatePracticeScore(ctx, 79); err != nil {
		t.Fatal(err)
	}
	if err := svc.EnterStage(ctx, StageComplete); !IsGateNotMet(err) {
		t.Fatalf("expected gate error at 79, got %v", err)
	}

	if err := svc.UpdatePracticeScore(ctx, 80); err != nil {
		t.Fatal(err)
	}
	if err := svc.EnterStage(ctx, StageComplete); err != nil {
		t.Fatalf("enter complete at 80: %v", err)
	}

	state, _ := svc.State(ctx)
	if state.Stage != string(StageComplete) {
		t.Errorf("stage = %q, want complete", state.Stage)
	}
	if !state.PracticeCompleted {
		t.Error("practice_completed should be set")
	}
}

func TestCompletedFlagsAreSticky(t *testing.T) {
	svc := NewService("s1", newFakeStateRepo())
	ctx := context.Background()

	if err := svc.UpdateTheoryScore(ctx, 75); err != nil {
		t.Fatal(err)
	}
	if err := svc.EnterStage(ctx, StagePractice); err != nil {
		t.Fatal(err)
	}
	if err := svc.UpdatePracticeScore(ctx, 85); err != nil {
		t.Fatal(err)
	}

	// A lower re-score updates the score but must not revoke the pass.
	// Otherwise practice_completed could be true with theory_completed
	// false, a state the progression forbids.
	if err := svc.UpdateTheoryScore(ctx, 50); err != nil {
		t.Fatal(err)
	}

	state, err := svc.State(ctx)
	if err != nil {
		t.Fatalf("state: %v", err)
	}
	if !state.TheoryCompleted {
		t.Error("theory_completed must stay true after a lower re-score")
	}
	if !state.PracticeCompleted {
		t.Error("practice_completed should be unaffected")
	}
	if state.TheoryScore == nil || *state.TheoryScore != 50 {
		t.Error("the lower score itself should still be recorded")
	}
	if state.Stage != string(StagePractice) {
		t.Errorf("stage = %q, want practice", state.Stage)
	}

	if err := svc.UpdatePracticeScore(ctx, 40); err != nil {
		t.Fatal(err)
	}
	state, _ = svc.State(ctx)
	if !state.PracticeCompleted {
		t.Error("practice_completed must stay true after a lower re-score")
	}
}

func TestEnterStageRejectsUnknown(t *testing.T) {
	svc := NewService("s1", newFakeStateRepo())
	err := svc.EnterStage(context.Background(), Stage("graduation"))
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition for unknown stage, got %v", err)
	}
}

func TestEnterCurrentStageIsNoop(t *testing.T) {
	svc := NewService("s1", newFakeStateRepo())
	if err := svc.EnterStage(context.Background(), StageTheory); err != nil {
		t.Fatalf("re-entering current stage should succeed, got %v", err)
	}
}

func TestCanEnterPractice(t *testing.T) {
	svc := NewService("s1", newFakeStateRepo())
	ctx := context.Background()

	ok, reason, err := svc.CanEnterPractice(ctx)
	if err != nil {
		t.Fatalf("can enter: %v", err)
	}
	if ok {
		t.Error("should not be able to enter practice with no score")
	}
	if !strings.Contains(reason, "below") {
		t.Errorf("reason should explain the gate, got %q", reason)
	}

	if err := svc.UpdateTheoryScore(ctx, 75); err != nil {
		t.Fatal(err)
	}
	ok, _, err = svc.CanEnterPractice(ctx)
	if err != nil {
		t.Fatalf("can enter: %v", err)
	}
	if !ok {
		t.Error("should be able to enter practice at 75")
	}

	// The predicate never advances the stage.
	state, _ := svc.State(ctx)
	if state.Stage != string(StageTheory) {
		t.Errorf("stage = %q, want theory", state.Stage)
	}
}

func TestCanEnterRealPractice(t *testing.T) {
	svc := NewService("s1", newFakeStateRepo())
	ctx := context.Background()

	ok, _, err := svc.CanEnterRealPractice(ctx)
	if err != nil {
		t.Fatalf("can enter: %v", err)
	}
	if ok {
		t.Error("should not be ready with no practice score")
	}

	if err := svc.UpdatePracticeScore(ctx, 85); err != nil {
		t.Fatal(err)
	}
	ok, _, err = svc.CanEnterRealPractice(ctx)
	if err != nil {
		t.Fatalf("can enter: %v", err)
	}
	if !ok {
		t.Error("should be ready at 85")
	}
}

func TestCustomGates(t *testing.T) {
	svc := NewService("s1", newFakeStateRepo(), WithGates(50, 60))
	ctx := context.Background()

	if err := svc.UpdateTheoryScore(ctx, 55); err != nil {
		t.Fatal(err)
	}
	if err := svc.EnterStage(ctx, StagePractice); err != nil {
		t.Fatalf("enter practice at 55 with gate 50: %v", err)
	}
}

func TestReset(t *testing.T) {
	svc := NewService("s1", newFakeStateRepo())
	ctx := context.Background()

	if err := svc.UpdateTheoryScore(ctx, 90); err != nil {
		t.Fatal(err)
	}
	if err := svc.EnterStage(ctx, StagePractice); err != nil {
		t.Fatal(err)
	}
	if err := svc.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	state, err := svc.State(ctx)
	if err != nil {
		t.Fatalf("state: %v", err)
	}
	if state.Stage != string(StageTheory) || state.TheoryScore != nil || state.TheoryCompleted {
		t.Errorf("state after reset = %+v", state)
	}
}
