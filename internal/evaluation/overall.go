package evaluation

import "math"

// balanceMargin is the theory/practice spread below which the two abilities
// count as balanced.
const balanceMargin = 15.0

// EvaluateOverall blends the two stage scores 30/70, weighting hands-on
// mastery as the primary competency signal, and derives the grade band,
// balance commentary, and the real-practice readiness flag. Readiness requires the overall score
// to clear cfg.MinOverall and both sub-scores to clear their floors, so a
// near-perfect theory score cannot compensate a failed practice score (or
// vice versa).
func EvaluateOverall(theoryScore, practiceScore float64, cfg ReadinessConfig) OverallEvaluation {
	overall := theoryScore*TheoryWeight + practiceScore*PracticeWeight
	diff := math.Abs(theoryScore - practiceScore)
	balanced := diff < balanceMargin

	var comments []string
	switch {
	case overall >= 90:
		comments = append(comments, "Excellent overall performance.")
	case overall >= 80:
		comments = append(comments, "Good overall performance.")
	case overall >= 70:
		comments = append(comments, "Passing standard reached.")
	default:
		comments = append(comments, "More training is needed.")
	}
	if balanced {
		comments = append(comments, "Theory and hands-on ability are developing evenly.")
	} else if theoryScore > practiceScore {
		comments = append(comments, "Theory knowledge is solid, but hands-on skills need improvement.")
	} else {
		comments = append(comments, "Hands-on skills are solid, but the theoretical foundation needs reinforcement.")
	}

	return OverallEvaluation{
		OverallScore:    roundScore(overall),
		TheoryScore:     roundScore(theoryScore),
		PracticeScore:   roundScore(practiceScore),
		Grade:           GradeFor(overall),
		Balanced:        balanced,
		ScoreDifference: roundScore(diff),
		Comments:        comments,
		ReadyForRealPractice: overall >= cfg.MinOverall &&
			theoryScore >= cfg.TheoryFloor &&
			practiceScore >= cfg.PracticeFloor,
	}
}
