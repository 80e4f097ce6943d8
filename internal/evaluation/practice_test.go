package evaluation

import (
	"math"
	"math/rand"
	"testing"
	"time"
)

func TestDiagnosisCredit(t *testing.T) {
	tests := []struct {
		name      string
		submitted string
		expected  string
		want      float64
	}{
		{"exact match", "cooling water flow blocked", "cooling water flow blocked", 1.0},
		{"case and spacing insensitive", "  Cooling Water Flow Blocked ", "cooling water flow blocked", 1.0},
		{"near match", "cooling water flow blockage", "cooling water flow blocked", 0.7},
		{"unrelated", "xyz", "cooling water flow blocked", 0},
		{"empty submission", "", "cooling water flow blocked", 0},
		{"empty expected", "anything", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := diagnosisCredit(Diagnosis{Submitted: tt.submitted, Expected: tt.expected})
			if got != tt.want {
				t.Errorf("credit = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOperationsCreditFirstThreeBonus(t *testing.T) {
	ops := func(pattern ...bool) []Operation {
		out := make([]Operation, len(pattern))
		for i, ok := range pattern {
			out[i] = Operation{Correct: ok}
		}
		return out
	}

	// 3/4 correct with a clean opening: 0.75 + 0.1.
	if got := operationsCredit(ops(true, true, true, false)); math.Abs(got-0.85) > 1e-9 {
		t.Errorf("credit = %v, want 0.85", got)
	}
	// Same fraction, failure up front: no bonus.
	if got := operationsCredit(ops(false, true, true, true)); math.Abs(got-0.75) > 1e-9 {
		t.Errorf("credit = %v, want 0.75", got)
	}
	// Bonus never pushes past 1.0.
	if got := operationsCredit(ops(true, true, true)); got != 1.0 {
		t.Errorf("credit = %v, want 1.0", got)
	}
	if got := operationsCredit(nil); got != 0 {
		t.Errorf("credit = %v, want 0", got)
	}
}

func TestTimeEfficiencyBands(t *testing.T) {
	tests := []struct {
		actual   float64
		expected float64
		want     float64
	}{
		{8, 10, 1.0},   // 0.8×
		{10, 10, 0.9},  // 1.0×
		{12, 10, 0.7},  // 1.2×
		{15, 10, 0.5},  // 1.5×
		{20, 10, 0.5},  // 2.0× → 1/2
		{100, 10, 0.2}, // 10× → floor
	}
	for _, tt := range tests {
		got := timeEfficiency(tt.actual, tt.expected, true)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("timeEfficiency(%v, %v) = %v, want %v", tt.actual, tt.expected, got, tt.want)
		}
	}

	// Missing timing data is neutral, not zero.
	if got := timeEfficiency(0, 10, false); got != 0.5 {
		t.Errorf("missing times = %v, want 0.5", got)
	}
	if got := timeEfficiency(10, 0, true); got != 0.5 {
		t.Errorf("zero expected = %v, want 0.5", got)
	}
}

func TestEvaluatePracticeSessionComposite(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	session := PracticeSession{
		ScenarioName:    "chamber overheating",
		ExpectedMinutes: 30,
		Diagnosis:       Diagnosis{Submitted: "coolant flow blocked", Expected: "coolant flow blocked"},
		Operations: []Operation{
			{Name: "check coolant flow", Correct: true},
			{Name: "inspect filter", Correct: true},
			{Name: "replace filter", Correct: true},
			{Name: "restart chamber", Correct: false},
		},
		StartTime:      start,
		EndTime:        start.Add(24 * time.Minute), // 0.8× expected
		ExpertConsults: 1,
	}

	eval := EvaluatePracticeSession(session)

	// 100 × (0.4×1.0 + 0.4×0.85 + 0.2×1.0) = 94.
	if eval.Score != 94 {
		t.Errorf("score = %v, want 94", eval.Score)
	}
	if eval.DiagnosisScore != 100 || eval.OperationScore != 85 || eval.TimeEfficiencyScore != 100 {
		t.Errorf("sub-scores = %v/%v/%v, want 100/85/100",
			eval.DiagnosisScore, eval.OperationScore, eval.TimeEfficiencyScore)
	}
	if eval.Grade != GradeExcellent {
		t.Errorf("grade = %q, want excellent", eval.Grade)
	}
	if eval.CompletionMinutes != 24 {
		t.Errorf("completion = %v, want 24", eval.CompletionMinutes)
	}
	if eval.CorrectOperations != 3 || eval.TotalOperations != 4 {
		t.Errorf("operations = %d/%d, want 3/4", eval.CorrectOperations, eval.TotalOperations)
	}
}

func TestEvaluatePracticeSessionEmpty(t *testing.T) {
	eval := EvaluatePracticeSession(PracticeSession{})

	// No diagnosis, no operations, neutral time: 100 × 0.2×0.5 = 10.
	if eval.Score != 10 {
		t.Errorf("score = %v, want 10", eval.Score)
	}
	if eval.Grade != GradeFail {
		t.Errorf("grade = %q, want fail", eval.Grade)
	}
}

func TestEvaluatePracticeSessionScoreRange(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	for trial := 0; trial < 200; trial++ {
		ops := make([]Operation, rng.Intn(8))
		for i := range ops {
			ops[i] = Operation{Correct: rng.Intn(2) == 0}
		}
		session := PracticeSession{
			ExpectedMinutes: float64(rng.Intn(60)),
			Diagnosis:       Diagnosis{Submitted: "pump seal worn", Expected: "vacuum pump seal degraded"},
			Operations:      ops,
			StartTime:       start,
			EndTime:         start.Add(time.Duration(rng.Intn(180)) * time.Minute),
		}
		eval := EvaluatePracticeSession(session)
		if eval.Score < 0 || eval.Score > 100 {
			t.Fatalf("score %v out of [0,100]", eval.Score)
		}
	}
}
