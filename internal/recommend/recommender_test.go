package recommend

import (
	"testing"

	"github.com/yclin/fabtrainer/internal/ledger"
)

func TestAnalyzeFailedOperationsMatchesKeywords(t *testing.T) {
	ops := []FailedOperation{
		{Operation: "check coolant flow rate", Topic: "cooling"},
		{Operation: "inspect cooling fan", Topic: "cooling"},
		{Operation: "run vacuum pumpdown sequence", Topic: "vacuum"},
		{Operation: "completely unrelated step"},
	}

	analysis := AnalyzeFailedOperations(ops)
	if analysis.TotalFailures != 4 {
		t.Errorf("total = %d, want 4", analysis.TotalFailures)
	}
	if analysis.ByCategory["cooling"] != 2 {
		t.Errorf("cooling hits = %d, want 2", analysis.ByCategory["cooling"])
	}
	if analysis.ByCategory["vacuum"] != 1 {
		t.Errorf("vacuum hits = %d, want 1", analysis.ByCategory["vacuum"])
	}

	var hasCooling bool
	for _, topic := range analysis.Topics {
		if topic == "cooling-principles" {
			hasCooling = true
		}
	}
	if !hasCooling {
		t.Errorf("expected cooling-principles among topics, got %v", analysis.Topics)
	}
}

func TestAnalyzeKnowledgeGapsSeverity(t *testing.T) {
	gaps := []ledger.KnowledgeGap{
		{Topic: "critical-one", Accuracy: 35, Attempts: 6},
		{Topic: "moderate-one", Accuracy: 55, Attempts: 4},
		{Topic: "minor-low-attempts", Accuracy: 35, Attempts: 4},
		{Topic: "minor-high-accuracy", Accuracy: 75, Attempts: 10},
	}

	analysis := AnalyzeKnowledgeGaps(gaps)
	if len(analysis.Critical) != 1 || analysis.Critical[0].Topic != "critical-one" {
		t.Errorf("critical = %+v", analysis.Critical)
	}
	// 35% at only 4 attempts still clears the moderate bar (<60, >=3).
	if len(analysis.Moderate) != 2 {
		t.Errorf("moderate = %+v", analysis.Moderate)
	}
	if len(analysis.Minor) != 1 || analysis.Minor[0].Topic != "minor-high-accuracy" {
		t.Errorf("minor = %+v", analysis.Minor)
	}
}

func TestRecommendTopicsPriorityOrdering(t *testing.T) {
	gaps := []ledger.KnowledgeGap{
		{Topic: "vacuum-principles", Accuracy: 30, Attempts: 6},  // critical
		{Topic: "cooling-principles", Accuracy: 55, Attempts: 4}, // moderate -> high
	}

	recs := RecommendTopics(nil, gaps, 0)
	if len(recs) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(recs))
	}
	if recs[0].Topic != "vacuum-principles" || recs[0].Priority != PriorityCritical {
		t.Errorf("first = %+v, want critical vacuum-principles", recs[0])
	}
	if recs[1].Topic != "cooling-principles" || recs[1].Priority != PriorityHigh {
		t.Errorf("second = %+v, want high cooling-principles", recs[1])
	}
	if recs[0].EstimatedMinutes != 45 {
		t.Errorf("vacuum-principles minutes = %d, want 45", recs[0].EstimatedMinutes)
	}
	if recs[0].Rationale == "" {
		t.Error("expected a rationale string")
	}
}

func TestRecommendTopicsLowerAccuracyFirstWithinPriority(t *testing.T) {
	gaps := []ledger.KnowledgeGap{
		{Topic: "better", Accuracy: 55, Attempts: 4},
		{Topic: "worse", Accuracy: 45, Attempts: 4},
	}

	recs := RecommendTopics(nil, gaps, 0)
	if len(recs) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(recs))
	}
	if recs[0].Topic != "worse" {
		t.Errorf("first = %q, want worse (lower accuracy)", recs[0].Topic)
	}
}

func TestRecommendTopicsTruncatesToMax(t *testing.T) {
	ops := []FailedOperation{
		{Operation: "coolant leak during pumpdown with alarm and motor jam"},
	}
	// One operation hitting several categories expands to many topics.
	recs := RecommendTopics(ops, nil, 0)
	if len(recs) > MaxRecommendations {
		t.Errorf("got %d recommendations, cap is %d", len(recs), MaxRecommendations)
	}

	recs = RecommendTopics(ops, nil, 2)
	if len(recs) > 2 {
		t.Errorf("got %d recommendations, cap is 2", len(recs))
	}
}

func TestRecommendTopicsSafetyOutranksVolume(t *testing.T) {
	ops := []FailedOperation{
		{Operation: "skipped interlock check before opening chamber"}, // safety, critical base
		{Operation: "misread pressure regulator"},                     // pressure, medium base
		{Operation: "pressure setpoint drifted"},
		{Operation: "gas flow unstable under pressure"},
	}

	recs := RecommendTopics(ops, nil, 0)
	if len(recs) == 0 {
		t.Fatal("expected recommendations")
	}
	if CategoryForTopic(recs[0].Topic).ID != "safety" {
		t.Errorf("first topic %q should come from the safety category", recs[0].Topic)
	}
}

func TestRecommendTopicsEmptyInputs(t *testing.T) {
	if recs := RecommendTopics(nil, nil, 0); len(recs) != 0 {
		t.Errorf("expected no recommendations, got %+v", recs)
	}
}
