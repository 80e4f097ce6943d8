package evaluation

import (
	"math"
	"strings"
	"testing"
)

func TestEvaluateOverallWeighting(t *testing.T) {
	tests := []struct {
		theory   float64
		practice float64
		want     float64
	}{
		{100, 100, 100},
		{0, 0, 0},
		{80, 90, 87},
		{70, 80, 77},
		{100, 0, 30},
		{0, 100, 70},
	}
	for _, tt := range tests {
		eval := EvaluateOverall(tt.theory, tt.practice, DefaultReadiness())
		if math.Abs(eval.OverallScore-tt.want) > 0.05 {
			t.Errorf("overall(%v, %v) = %v, want %v", tt.theory, tt.practice, eval.OverallScore, tt.want)
		}
	}
}

func TestEvaluateOverallGradeBands(t *testing.T) {
	tests := []struct {
		score float64
		want  Grade
	}{
		{95, GradeExcellent},
		{90, GradeExcellent},
		{85, GradeGood},
		{75, GradePass},
		{65, GradeNeedsWork},
		{40, GradeFail},
	}
	for _, tt := range tests {
		// Equal sub-scores make the overall equal to both.
		eval := EvaluateOverall(tt.score, tt.score, DefaultReadiness())
		if eval.Grade != tt.want {
			t.Errorf("grade at %v = %q, want %q", tt.score, eval.Grade, tt.want)
		}
	}
}

func TestEvaluateOverallReadiness(t *testing.T) {
	cfg := DefaultReadiness()

	tests := []struct {
		name     string
		theory   float64
		practice float64
		want     bool
	}{
		{"both strong", 85, 90, true},
		{"exactly at gate", 80, 80, true},
		{"overall below gate", 70, 75, false},
		{"perfect theory cannot mask failed practice", 100, 70, false},
		{"strong practice cannot mask collapsed theory", 30, 100, false},
		{"theory at floor", 40, 100, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eval := EvaluateOverall(tt.theory, tt.practice, cfg)
			if eval.ReadyForRealPractice != tt.want {
				t.Errorf("ready = %v, want %v (overall %v)", eval.ReadyForRealPractice, tt.want, eval.OverallScore)
			}
		})
	}
}

func TestEvaluateOverallBalance(t *testing.T) {
	eval := EvaluateOverall(80, 85, DefaultReadiness())
	if !eval.Balanced {
		t.Error("spread of 5 should be balanced")
	}

	eval = EvaluateOverall(95, 60, DefaultReadiness())
	if eval.Balanced {
		t.Error("spread of 35 should not be balanced")
	}
	var mentionsTheoryStrong bool
	for _, c := range eval.Comments {
		if strings.Contains(c, "hands-on skills need improvement") {
			mentionsTheoryStrong = true
		}
	}
	if !mentionsTheoryStrong {
		t.Errorf("comments should call out weak practice side, got %v", eval.Comments)
	}
}

func TestCalculateLearningEfficiency(t *testing.T) {
	// 90 points in 120 minutes over 30 interactions:
	// per hour 45, per interaction 3, √135 ≈ 11.6.
	eff := CalculateLearningEfficiency(90, 120, 30)
	if eff.Score != 11.6 {
		t.Errorf("score = %v, want 11.6", eff.Score)
	}
	if eff.ScorePerHour != 45 {
		t.Errorf("per hour = %v, want 45", eff.ScorePerHour)
	}
	if eff.ScorePerInteraction != 3 {
		t.Errorf("per interaction = %v, want 3", eff.ScorePerInteraction)
	}
	if eff.Rating != RatingAverage {
		t.Errorf("rating = %q, want average", eff.Rating)
	}
}

func TestCalculateLearningEfficiencyGuards(t *testing.T) {
	if eff := CalculateLearningEfficiency(90, 0, 30); eff.Rating != RatingNoData || eff.Score != 0 {
		t.Errorf("zero minutes: %+v", eff)
	}
	if eff := CalculateLearningEfficiency(90, 120, 0); eff.Rating != RatingNoData {
		t.Errorf("zero interactions: %+v", eff)
	}
}

func TestCalculateLearningEfficiencyRatings(t *testing.T) {
	tests := []struct {
		minutes float64
		want    EfficiencyRating
	}{
		{30, RatingHigh},        // √(180×9) ≈ 40.2
		{120, RatingGood},       // √(45×9) ≈ 20.1
		{240, RatingAverage},    // √(22.5×9) ≈ 14.2
		{1200, RatingNeedsWork}, // √(4.5×9) ≈ 6.4
	}
	for _, tt := range tests {
		eff := CalculateLearningEfficiency(90, tt.minutes, 10)
		if eff.Rating != tt.want {
			t.Errorf("rating at %v minutes = %q (score %v), want %q", tt.minutes, eff.Rating, eff.Score, tt.want)
		}
	}
}

func TestComputeTrend(t *testing.T) {
	tests := []struct {
		name   string
		scores []float64
		want   Trend
	}{
		{"too short", []float64{70, 80}, TrendInsufficient},
		{"improving", []float64{60, 70, 80}, TrendImproving},
		{"declining", []float64{80, 70, 60}, TrendDeclining},
		{"fluctuating", []float64{70, 90, 60}, TrendFluctuating},
		{"flat", []float64{75, 75, 75}, TrendFluctuating},
		{"only last three count", []float64{90, 10, 20, 30}, TrendImproving},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeTrend(tt.scores); got != tt.want {
				t.Errorf("trend = %q, want %q", got, tt.want)
			}
		})
	}
}
