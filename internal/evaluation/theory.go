package evaluation

import (
	"math"
	"sort"
)

// Strength/weakness bucketing thresholds over per-topic accuracy. Topics need
// a minimum sample before they count either way.
const (
	strengthAccuracy = 0.8
	weaknessAccuracy = 0.6
	bucketMinItems   = 3
)

// EvaluateTheoryTest scores a theory test with difficulty weighting:
// score = 100 × Σ weight(correct items) / Σ weight(all items). An empty item
// set scores 0 rather than dividing by zero. It also buckets topics into
// strengths and weaknesses for feedback.
func EvaluateTheoryTest(results []TestResult) TheoryEvaluation {
	if len(results) == 0 {
		return TheoryEvaluation{Grade: GradeFail, Topics: map[string]Breakdown{}, Difficulties: map[Difficulty]Breakdown{}}
	}

	eval := TheoryEvaluation{
		TotalCount:   len(results),
		Topics:       make(map[string]Breakdown),
		Difficulties: make(map[Difficulty]Breakdown),
	}

	var weightedCorrect, totalWeight float64
	for _, r := range results {
		w := r.Difficulty.Weight()
		totalWeight += w
		if r.Correct {
			eval.CorrectCount++
			weightedCorrect += w
		}

		topic := r.Topic
		if topic == "" {
			topic = "unknown"
		}
		tb := eval.Topics[topic]
		tb.Total++
		if r.Correct {
			tb.Correct++
		}
		eval.Topics[topic] = tb

		diff := r.Difficulty
		if diff != DifficultyEasy && diff != DifficultyHard {
			diff = DifficultyMedium
		}
		db := eval.Difficulties[diff]
		db.Total++
		if r.Correct {
			db.Correct++
		}
		eval.Difficulties[diff] = db
	}

	for topic, tb := range eval.Topics {
		tb.Accuracy = float64(tb.Correct) / float64(tb.Total)
		eval.Topics[topic] = tb
	}
	for diff, db := range eval.Difficulties {
		db.Accuracy = float64(db.Correct) / float64(db.Total)
		eval.Difficulties[diff] = db
	}

	eval.Score = roundScore(weightedCorrect / totalWeight * 100)
	eval.Accuracy = roundScore(float64(eval.CorrectCount) / float64(eval.TotalCount) * 100)
	eval.Grade = GradeFor(eval.Score)
	eval.Strengths = bucketTopics(eval.Topics, func(b Breakdown) bool {
		return b.Accuracy >= strengthAccuracy && b.Total >= bucketMinItems
	})
	eval.Weaknesses = bucketTopics(eval.Topics, func(b Breakdown) bool {
		return b.Accuracy < weaknessAccuracy && b.Total >= bucketMinItems
	})
	return eval
}

func bucketTopics(topics map[string]Breakdown, match func(Breakdown) bool) []string {
	var out []string
	for topic, b := range topics {
		if match(b) {
			out = append(out, topic)
		}
	}
	sort.Strings(out)
	return out
}

func roundScore(v float64) float64 {
	return math.Round(v*10) / 10
}
