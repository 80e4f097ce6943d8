package evaluation

import (
	"math"
	"strings"
	"time"
)

// EvaluatePracticeSession scores a hands-on troubleshooting session from three
// normalized sub-scores: diagnosis accuracy, operation correctness, and time
// efficiency, combined 0.4/0.4/0.2 into a 0-100 composite.
func EvaluatePracticeSession(session PracticeSession) PracticeEvaluation {
	diagnosis := diagnosisCredit(session.Diagnosis)
	operations := operationsCredit(session.Operations)

	completion := completionMinutes(session.StartTime, session.EndTime)
	timeEff := timeEfficiency(completion, session.ExpectedMinutes, !session.StartTime.IsZero() && !session.EndTime.IsZero())

	composite := (diagnosis*DiagnosisWeight + operations*OperationWeight + timeEff*TimeEfficiencyWeight) * 100

	correctOps := 0
	for _, op := range session.Operations {
		if op.Correct {
			correctOps++
		}
	}
	opAccuracy := 0.0
	if len(session.Operations) > 0 {
		opAccuracy = float64(correctOps) / float64(len(session.Operations)) * 100
	}

	return PracticeEvaluation{
		Score:               roundScore(composite),
		DiagnosisScore:      roundScore(diagnosis * 100),
		OperationScore:      roundScore(operations * 100),
		TimeEfficiencyScore: roundScore(timeEff * 100),
		Grade:               GradeFor(composite),
		CompletionMinutes:   completion,
		OperationAccuracy:   roundScore(opAccuracy),
		TotalOperations:     len(session.Operations),
		CorrectOperations:   correctOps,
		ExpertConsults:      session.ExpertConsults,
	}
}

// diagnosisCredit grades the fault call: full credit for an exact match,
// otherwise partial credit by text-similarity bands.
func diagnosisCredit(d Diagnosis) float64 {
	submitted := strings.ToLower(strings.TrimSpace(d.Submitted))
	expected := strings.ToLower(strings.TrimSpace(d.Expected))
	if expected == "" || submitted == "" {
		return 0
	}
	if submitted == expected {
		return 1.0
	}

	sim := textSimilarity(submitted, expected)
	switch {
	case sim >= 0.7:
		return 0.7
	case sim >= 0.5:
		return 0.5
	case sim >= 0.3:
		return 0.3
	default:
		return 0
	}
}

// operationsCredit is the fraction of correct operations, with a +0.1 bonus
// (capped at 1.0) when the first three steps are all correct, since
// early-stage precision matters most in fault isolation. No operations
// scores 0.
func operationsCredit(ops []Operation) float64 {
	if len(ops) == 0 {
		return 0
	}

	correct := 0
	for _, op := range ops {
		if op.Correct {
			correct++
		}
	}
	score := float64(correct) / float64(len(ops))

	if len(ops) >= 3 && ops[0].Correct && ops[1].Correct && ops[2].Correct {
		score += 0.1
	}
	return math.Min(1.0, score)
}

// timeEfficiency maps the actual/expected duration ratio onto a piecewise
// scale. Missing or non-positive timing data scores a neutral 0.5. Beyond
// 1.5× the score degrades as 1/ratio with a 0.2 floor instead of collapsing
// to zero.
func timeEfficiency(actualMinutes, expectedMinutes float64, haveTimes bool) float64 {
	if !haveTimes || actualMinutes <= 0 || expectedMinutes <= 0 {
		return 0.5
	}

	ratio := actualMinutes / expectedMinutes
	switch {
	case ratio <= 0.8:
		return 1.0
	case ratio <= 1.0:
		return 0.9
	case ratio <= 1.2:
		return 0.7
	case ratio <= 1.5:
		return 0.5
	default:
		return math.Max(0.2, 1.0/ratio)
	}
}

func completionMinutes(start, end time.Time) float64 {
	if start.IsZero() || end.IsZero() || end.Before(start) {
		return 0
	}
	return roundScore(end.Sub(start).Minutes())
}
