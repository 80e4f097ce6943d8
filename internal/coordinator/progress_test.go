package coordinator

import (
	"context"
	"strings"
	"testing"
)

func TestOverallProgressCompletion(t *testing.T) {
	svc := NewService("s1", newFakeStateRepo())
	ctx := context.Background()

	if err := svc.UpdateTheoryScore(ctx, 80); err != nil {
		t.Fatal(err)
	}
	if err := svc.UpdatePracticeScore(ctx, 90); err != nil {
		t.Fatal(err)
	}

	p, err := svc.OverallProgress(ctx)
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	// 0.3*80 + 0.7*90 = 87.
	if p.Completion != 87.0 {
		t.Errorf("completion = %.1f, want 87.0", p.Completion)
	}
	if p.TheoryScore != 80 || p.PracticeScore != 90 {
		t.Errorf("scores = %.1f/%.1f, want 80/90", p.TheoryScore, p.PracticeScore)
	}
	if !p.CanEnterPractice {
		t.Error("theory gate passed, CanEnterPractice should be true")
	}
}

func TestOverallProgressNextStep(t *testing.T) {
	ctx := context.Background()

	nextStep := func(t *testing.T, svc *Service) string {
		t.Helper()
		p, err := svc.OverallProgress(ctx)
		if err != nil {
			t.Fatalf("progress: %v", err)
		}
		return p.NextStep
	}

	svc := NewService("s1", newFakeStateRepo())
	if got := nextStep(t, svc); !strings.Contains(got, "theory test") {
		t.Errorf("fresh student next step = %q", got)
	}

	if err := svc.UpdateTheoryScore(ctx, 75); err != nil {
		t.Fatal(err)
	}
	if got := nextStep(t, svc); !strings.Contains(got, "enter simulated practice") {
		t.Errorf("theory passed next step = %q", got)
	}

	if err := svc.EnterStage(ctx, StagePractice); err != nil {
		t.Fatal(err)
	}
	if got := nextStep(t, svc); !strings.Contains(got, "continue simulated practice") {
		t.Errorf("in practice next step = %q", got)
	}

	if err := svc.UpdatePracticeScore(ctx, 88); err != nil {
		t.Fatal(err)
	}
	if got := nextStep(t, svc); !strings.Contains(got, "training complete") {
		t.Errorf("practice passed next step = %q", got)
	}
}

func TestStageStatusesLocking(t *testing.T) {
	svc := NewService("s1", newFakeStateRepo())
	ctx := context.Background()

	statuses, err := svc.StageStatuses(ctx)
	if err != nil {
		t.Fatalf("statuses: %v", err)
	}
	if len(statuses) != 2 {
		t.Fatalf("got %d statuses, want 2", len(statuses))
	}
	if statuses[0].Stage != StageTheory || statuses[1].Stage != StagePractice {
		t.Fatalf("unexpected stage order: %s, %s", statuses[0].Stage, statuses[1].Stage)
	}
	if statuses[0].Locked {
		t.Error("theory stage should never be locked")
	}
	if !statuses[1].Locked {
		t.Error("practice should be locked before the theory gate")
	}
	if !strings.Contains(statuses[1].LockReason, "below") {
		t.Errorf("lock reason should explain the gate, got %q", statuses[1].LockReason)
	}

	if err := svc.UpdateTheoryScore(ctx, 72); err != nil {
		t.Fatal(err)
	}
	statuses, err = svc.StageStatuses(ctx)
	if err != nil {
		t.Fatalf("statuses: %v", err)
	}
	if statuses[1].Locked {
		t.Error("practice should unlock once the theory gate is passed")
	}
	if !statuses[0].Completed {
		t.Error("theory should be completed at 72")
	}
}

func TestStageLabels(t *testing.T) {
	tests := []struct {
		stage Stage
		want  string
	}{
		{StageTheory, "Stage 1: Theory Study"},
		{StagePractice, "Stage 2: Simulated Practice"},
		{StageComplete, "Training Complete"},
	}
	for _, tt := range tests {
		if got := tt.stage.Label(); got != tt.want {
			t.Errorf("Label(%s) = %q, want %q", tt.stage, got, tt.want)
		}
	}
}

func TestParseStage(t *testing.T) {
	tests := []struct {
		in      string
		want    Stage
		wantErr bool
	}{
		{"theory", StageTheory, false},
		{"practice", StagePractice, false},
		{"complete", StageComplete, false},
		{"THEORY", StageTheory, false},
		{"graduation", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseStage(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseStage(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseStage(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
