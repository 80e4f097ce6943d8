package evaluation

import (
	"fmt"
	"math/rand"
	"reflect"
	"testing"
)

func easyResults(total, correct int) []TestResult {
	results := make([]TestResult, total)
	for i := range results {
		results[i] = TestResult{
			Question:   fmt.Sprintf("q%d", i),
			Topic:      "vacuum-principles",
			Difficulty: DifficultyEasy,
			Correct:    i < correct,
		}
	}
	return results
}

func TestEvaluateTheoryTestAllEasy(t *testing.T) {
	eval := EvaluateTheoryTest(easyResults(10, 8))

	// 100 × (8×0.8)/(10×0.8) = 80.
	if eval.Score != 80 {
		t.Errorf("score = %v, want 80", eval.Score)
	}
	if eval.Grade != GradeGood {
		t.Errorf("grade = %q, want good", eval.Grade)
	}
	if eval.CorrectCount != 8 || eval.TotalCount != 10 {
		t.Errorf("correct/total = %d/%d, want 8/10", eval.CorrectCount, eval.TotalCount)
	}
}

func TestEvaluateTheoryTestEmpty(t *testing.T) {
	eval := EvaluateTheoryTest(nil)
	if eval.Score != 0 {
		t.Errorf("score = %v, want 0", eval.Score)
	}
	if eval.Grade != GradeFail {
		t.Errorf("grade = %q, want fail", eval.Grade)
	}
}

func TestEvaluateTheoryTestDifficultyWeighting(t *testing.T) {
	// One hard correct, one easy wrong: 1.3/(1.3+0.8) = 61.9.
	results := []TestResult{
		{Topic: "a", Difficulty: DifficultyHard, Correct: true},
		{Topic: "a", Difficulty: DifficultyEasy, Correct: false},
	}
	eval := EvaluateTheoryTest(results)
	if eval.Score != 61.9 {
		t.Errorf("score = %v, want 61.9", eval.Score)
	}

	// Swapped correctness: 0.8/(1.3+0.8) = 38.1.
	results[0].Correct = false
	results[1].Correct = true
	eval = EvaluateTheoryTest(results)
	if eval.Score != 38.1 {
		t.Errorf("score = %v, want 38.1", eval.Score)
	}
}

func TestEvaluateTheoryTestUnknownDifficultyWeighsMedium(t *testing.T) {
	results := []TestResult{
		{Difficulty: Difficulty("extreme"), Correct: true},
		{Difficulty: DifficultyMedium, Correct: false},
	}
	eval := EvaluateTheoryTest(results)
	if eval.Score != 50 {
		t.Errorf("score = %v, want 50", eval.Score)
	}
	if eval.Difficulties[DifficultyMedium].Total != 2 {
		t.Errorf("medium bucket total = %d, want 2", eval.Difficulties[DifficultyMedium].Total)
	}
}

func TestEvaluateTheoryTestStrengthsAndWeaknesses(t *testing.T) {
	var results []TestResult
	// Strength: 3/3 on cooling.
	for i := 0; i < 3; i++ {
		results = append(results, TestResult{Topic: "cooling-principles", Difficulty: DifficultyMedium, Correct: true})
	}
	// Weakness: 1/3 on vacuum.
	for i := 0; i < 3; i++ {
		results = append(results, TestResult{Topic: "vacuum-principles", Difficulty: DifficultyMedium, Correct: i == 0})
	}
	// Too small a sample to count either way: 0/2 on safety.
	for i := 0; i < 2; i++ {
		results = append(results, TestResult{Topic: "safety-regulations", Difficulty: DifficultyMedium, Correct: false})
	}

	eval := EvaluateTheoryTest(results)
	if !reflect.DeepEqual(eval.Strengths, []string{"cooling-principles"}) {
		t.Errorf("strengths = %v, want [cooling-principles]", eval.Strengths)
	}
	if !reflect.DeepEqual(eval.Weaknesses, []string{"vacuum-principles"}) {
		t.Errorf("weaknesses = %v, want [vacuum-principles]", eval.Weaknesses)
	}
}

func TestEvaluateTheoryTestScoreRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	difficulties := []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

	for trial := 0; trial < 200; trial++ {
		n := rng.Intn(20)
		results := make([]TestResult, n)
		for i := range results {
			results[i] = TestResult{
				Topic:      fmt.Sprintf("t%d", rng.Intn(4)),
				Difficulty: difficulties[rng.Intn(len(difficulties))],
				Correct:    rng.Intn(2) == 0,
			}
		}
		eval := EvaluateTheoryTest(results)
		if eval.Score < 0 || eval.Score > 100 {
			t.Fatalf("score %v out of [0,100] for %d items", eval.Score, n)
		}
	}
}
