package recommend

import (
	"math/rand"
	"testing"

	"github.com/yclin/fabtrainer/internal/ledger"
)

// indexOf returns the position of topic in the path, or -1.
func indexOf(path []PathStep, topic string) int {
	for i, step := range path {
		if step.Topic == topic {
			return i
		}
	}
	return -1
}

func TestGenerateLearningPathInsertsPrerequisites(t *testing.T) {
	recs := []Recommendation{
		{Topic: "vacuum-pump-operation", Priority: PriorityCritical, EstimatedMinutes: 20},
	}

	path := GenerateLearningPath(recs)
	if len(path) != 2 {
		t.Fatalf("expected 2 steps, got %+v", path)
	}
	if path[0].Topic != "vacuum-principles" || path[0].Priority != PriorityPrereq {
		t.Errorf("first step = %+v, want vacuum-principles prerequisite", path[0])
	}
	if path[1].Topic != "vacuum-pump-operation" || path[1].Priority != PriorityCritical {
		t.Errorf("second step = %+v", path[1])
	}
}

func TestGenerateLearningPathKeepsRecommendationMetadata(t *testing.T) {
	// vacuum-principles is a prerequisite of the higher-ranked topic but
	// is also recommended in its own right; the step must carry its own
	// priority and rationale, not the generic prerequisite marker.
	recs := []Recommendation{
		{Topic: "vacuum-pump-operation", Priority: PriorityCritical, EstimatedMinutes: 20},
		{Topic: "vacuum-principles", Priority: PriorityHigh,
			Reasons: []string{"accuracy 35% over 6 attempts"}, EstimatedMinutes: 45},
	}

	path := GenerateLearningPath(recs)
	if len(path) != 2 {
		t.Fatalf("expected 2 steps, got %+v", path)
	}
	if path[0].Topic != "vacuum-principles" {
		t.Fatalf("first step = %+v, want vacuum-principles", path[0])
	}
	if path[0].Priority != PriorityHigh {
		t.Errorf("priority = %s, want high", path[0].Priority)
	}
	if len(path[0].Reasons) != 1 || path[0].Reasons[0] != "accuracy 35% over 6 attempts" {
		t.Errorf("reasons = %v, want the recommendation's own rationale", path[0].Reasons)
	}
	if path[0].EstimatedMinutes != 45 {
		t.Errorf("minutes = %d, want 45", path[0].EstimatedMinutes)
	}
}

func TestGenerateLearningPathExpandsChains(t *testing.T) {
	// deposition-mechanisms needs cvd-principles and gas-chemistry;
	// gas-chemistry needs chemical-reactions, which needs cvd-principles.
	recs := []Recommendation{
		{Topic: "deposition-mechanisms", Priority: PriorityHigh},
	}

	path := GenerateLearningPath(recs)
	order := map[string]int{}
	for i, step := range path {
		if _, dup := order[step.Topic]; dup {
			t.Fatalf("topic %q appears twice in %+v", step.Topic, path)
		}
		order[step.Topic] = i
	}

	for _, topic := range []string{"cvd-principles", "chemical-reactions", "gas-chemistry", "deposition-mechanisms"} {
		if _, ok := order[topic]; !ok {
			t.Fatalf("path missing %q: %+v", topic, path)
		}
	}
	if order["cvd-principles"] > order["chemical-reactions"] ||
		order["chemical-reactions"] > order["gas-chemistry"] ||
		order["gas-chemistry"] > order["deposition-mechanisms"] {
		t.Errorf("prerequisites out of order: %+v", path)
	}
}

func TestGenerateLearningPathTopologicalProperty(t *testing.T) {
	// Random recommendation sets over the real taxonomy must always put
	// every prerequisite before its dependent.
	var allTopics []string
	for _, c := range AllCategories() {
		allTopics = append(allTopics, c.Topics...)
	}

	rng := rand.New(rand.NewSource(7))
	priorities := []Priority{PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow}

	for trial := 0; trial < 100; trial++ {
		var recs []Recommendation
		for _, topic := range allTopics {
			if rng.Intn(3) == 0 {
				recs = append(recs, Recommendation{
					Topic:    topic,
					Priority: priorities[rng.Intn(len(priorities))],
				})
			}
		}

		path := GenerateLearningPath(recs)
		for _, step := range path {
			for _, dep := range Prerequisites(step.Topic) {
				di := indexOf(path, dep)
				if di == -1 || di > indexOf(path, step.Topic) {
					t.Fatalf("trial %d: %q not before %q in %+v", trial, dep, step.Topic, path)
				}
			}
		}
	}
}

func TestTotalStudyMinutes(t *testing.T) {
	recs := RecommendTopics(nil, []ledger.KnowledgeGap{
		{Topic: "vacuum-pump-operation", Accuracy: 30, Attempts: 6},
	}, 0)
	path := GenerateLearningPath(recs)

	// vacuum-principles (45) + vacuum-pump-operation (20).
	if got := TotalStudyMinutes(path); got != 65 {
		t.Errorf("total minutes = %d, want 65", got)
	}
}
