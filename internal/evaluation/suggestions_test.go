package evaluation

import (
	"strings"
	"testing"
)

func containsSubstring(suggestions []string, substr string) bool {
	for _, s := range suggestions {
		if strings.Contains(s, substr) {
			return true
		}
	}
	return false
}

func TestSuggestionsLowOverall(t *testing.T) {
	overall := EvaluateOverall(50, 55, DefaultReadiness())
	got := GenerateImprovementSuggestions(overall, nil, nil)
	if !containsSubstring(got, "substantial improvement") {
		t.Errorf("expected low-overall suggestion, got %v", got)
	}
}

func TestSuggestionsWeakSide(t *testing.T) {
	// Practice far below theory.
	overall := EvaluateOverall(95, 60, DefaultReadiness())
	got := GenerateImprovementSuggestions(overall, nil, nil)
	if !containsSubstring(got, "more practice sessions") {
		t.Errorf("expected weak-practice suggestion, got %v", got)
	}

	// Theory far below practice.
	overall = EvaluateOverall(50, 90, DefaultReadiness())
	got = GenerateImprovementSuggestions(overall, nil, nil)
	if !containsSubstring(got, "conceptual foundation") {
		t.Errorf("expected weak-theory suggestion, got %v", got)
	}
}

func TestSuggestionsPracticeDetail(t *testing.T) {
	overall := EvaluateOverall(80, 65, DefaultReadiness())
	practice := &PracticeEvaluation{
		Score:               65,
		DiagnosisScore:      50,
		OperationScore:      60,
		TimeEfficiencyScore: 40,
		TotalOperations:     10,
		ExpertConsults:      6,
	}
	got := GenerateImprovementSuggestions(overall, practice, nil)

	for _, want := range []string{"fault analysis", "standard operating procedures", "drills", "expert help"} {
		if !containsSubstring(got, want) {
			t.Errorf("expected suggestion mentioning %q, got %v", want, got)
		}
	}
}

func TestSuggestionsUnderuseOfExpert(t *testing.T) {
	overall := EvaluateOverall(80, 75, DefaultReadiness())
	practice := &PracticeEvaluation{
		Score:               75,
		DiagnosisScore:      80,
		OperationScore:      75,
		TimeEfficiencyScore: 80,
		TotalOperations:     20,
		ExpertConsults:      0,
	}
	got := GenerateImprovementSuggestions(overall, practice, nil)
	if !containsSubstring(got, "consult the expert advisor early") {
		t.Errorf("expected early-consult suggestion, got %v", got)
	}
}

func TestSuggestionsNamesWeaknessTopics(t *testing.T) {
	overall := EvaluateOverall(85, 85, DefaultReadiness())
	weaknesses := []string{"vacuum-principles", "pid-control", "leak-detection", "lens-cleaning"}
	got := GenerateImprovementSuggestions(overall, nil, weaknesses)

	if !containsSubstring(got, "vacuum-principles, pid-control, leak-detection") {
		t.Errorf("expected top-3 weakness topics, got %v", got)
	}
	if containsSubstring(got, "lens-cleaning") {
		t.Errorf("should cap at three topics, got %v", got)
	}
}

func TestSuggestionsPositiveFallback(t *testing.T) {
	overall := EvaluateOverall(90, 92, DefaultReadiness())
	got := GenerateImprovementSuggestions(overall, nil, nil)
	if len(got) != 1 || !strings.Contains(got[0], "on track") {
		t.Errorf("expected single positive suggestion, got %v", got)
	}
}
