package ledger

import (
	"context"
	"testing"
)

// recordTopic appends n attempts on a topic with the given number of
// successes.
func recordTopic(t *testing.T, svc *Service, kind Kind, topic string, attempts, correct int) {
	t.Helper()
	ctx := context.Background()
	for i := 0; i < attempts; i++ {
		ok := i < correct
		_, err := svc.Record(ctx, kind, map[string]any{"topic": topic}, RecordOpts{Success: boolPtr(ok)})
		if err != nil {
			t.Fatalf("record %s: %v", topic, err)
		}
	}
}

func TestKnowledgeGapsFlagsLowAccuracy(t *testing.T) {
	svc := NewService("s1", &fakeEventRepo{}, nil)

	// 2/6 correct (33%), 6 attempts: flagged.
	recordTopic(t, svc, KindTheoryQuestion, "vacuum-principles", 6, 2)
	// 1/2 correct (50%) but only 2 attempts: not flagged.
	recordTopic(t, svc, KindTheoryQuestion, "cooling-principles", 2, 1)
	// 5/6 correct (83%): not flagged.
	recordTopic(t, svc, KindPracticeOperation, "pid-control", 6, 5)

	gaps, err := svc.KnowledgeGaps(context.Background())
	if err != nil {
		t.Fatalf("knowledge gaps: %v", err)
	}

	if len(gaps) != 1 {
		t.Fatalf("expected 1 gap, got %d: %+v", len(gaps), gaps)
	}
	g := gaps[0]
	if g.Topic != "vacuum-principles" {
		t.Errorf("topic = %q, want vacuum-principles", g.Topic)
	}
	if g.Accuracy != 33.3 {
		t.Errorf("accuracy = %v, want 33.3", g.Accuracy)
	}
	if g.Attempts != 6 || g.Errors != 4 {
		t.Errorf("attempts/errors = %d/%d, want 6/4", g.Attempts, g.Errors)
	}
}

func TestKnowledgeGapsCustomRule(t *testing.T) {
	svc := NewService("s1", &fakeEventRepo{}, nil, WithGapRule(80, 2))

	// 1/2 correct (50%): below the 80% threshold with the lowered
	// minimum of 2 attempts, so it is flagged here where the default
	// rule would not flag it.
	recordTopic(t, svc, KindTheoryQuestion, "cooling-principles", 2, 1)
	// 3/4 correct (75%): a gap only under the raised threshold.
	recordTopic(t, svc, KindPracticeOperation, "pid-control", 4, 3)

	gaps, err := svc.KnowledgeGaps(context.Background())
	if err != nil {
		t.Fatalf("knowledge gaps: %v", err)
	}
	if len(gaps) != 2 {
		t.Fatalf("expected 2 gaps under the custom rule, got %d: %+v", len(gaps), gaps)
	}
}

func TestKnowledgeGapsExactlyAtThresholds(t *testing.T) {
	svc := NewService("s1", &fakeEventRepo{}, nil)

	// Exactly 60% accuracy: not a gap (< 60 required).
	recordTopic(t, svc, KindTheoryQuestion, "at-threshold", 5, 3)
	// Exactly 3 attempts, 0 correct: a gap.
	recordTopic(t, svc, KindPracticeOperation, "min-attempts", 3, 0)

	gaps, err := svc.KnowledgeGaps(context.Background())
	if err != nil {
		t.Fatalf("knowledge gaps: %v", err)
	}
	if len(gaps) != 1 || gaps[0].Topic != "min-attempts" {
		t.Fatalf("expected only min-attempts flagged, got %+v", gaps)
	}
}

func TestKnowledgeGapsGroupsMissingTopicAsUnknown(t *testing.T) {
	svc := NewService("s1", &fakeEventRepo{}, nil)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		if _, err := svc.Record(ctx, KindPracticeOperation, nil, RecordOpts{Success: boolPtr(false)}); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	gaps, err := svc.KnowledgeGaps(ctx)
	if err != nil {
		t.Fatalf("knowledge gaps: %v", err)
	}
	if len(gaps) != 1 || gaps[0].Topic != "unknown" {
		t.Fatalf("expected unknown topic gap, got %+v", gaps)
	}
}

func TestKnowledgeGapsIgnoresNonAttemptKinds(t *testing.T) {
	svc := NewService("s1", &fakeEventRepo{}, nil)
	ctx := context.Background()

	// Consults carry a topic but are not attempts.
	for i := 0; i < 5; i++ {
		if _, err := svc.Record(ctx, KindExpertConsult, map[string]any{"topic": "safety-regulations"}, RecordOpts{}); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	gaps, err := svc.KnowledgeGaps(ctx)
	if err != nil {
		t.Fatalf("knowledge gaps: %v", err)
	}
	if len(gaps) != 0 {
		t.Errorf("expected no gaps, got %+v", gaps)
	}
}

func TestKnowledgeGapsOrderedByErrors(t *testing.T) {
	svc := NewService("s1", &fakeEventRepo{}, nil)

	recordTopic(t, svc, KindTheoryQuestion, "few-errors", 4, 2)  // 2 errors, 50%
	recordTopic(t, svc, KindTheoryQuestion, "many-errors", 8, 2) // 6 errors, 25%

	gaps, err := svc.KnowledgeGaps(context.Background())
	if err != nil {
		t.Fatalf("knowledge gaps: %v", err)
	}
	if len(gaps) != 2 {
		t.Fatalf("expected 2 gaps, got %+v", gaps)
	}
	if gaps[0].Topic != "many-errors" {
		t.Errorf("first gap = %q, want many-errors", gaps[0].Topic)
	}
}
