package evaluation

import "math"

// CalculateLearningEfficiency derives how efficiently a score was earned:
// the geometric mean of score-per-hour and score-per-interaction. Zero or
// negative study time or interaction count yields the zero result rather than
// a division blowup.
func CalculateLearningEfficiency(score, studyMinutes float64, interactions int) Efficiency {
	if studyMinutes <= 0 || interactions <= 0 {
		return Efficiency{Rating: RatingNoData}
	}

	perHour := score / (studyMinutes / 60)
	perInteraction := score / float64(interactions)
	efficiency := math.Sqrt(perHour * perInteraction)

	var rating EfficiencyRating
	switch {
	case efficiency >= 30:
		rating = RatingHigh
	case efficiency >= 20:
		rating = RatingGood
	case efficiency >= 10:
		rating = RatingAverage
	default:
		rating = RatingNeedsWork
	}

	return Efficiency{
		Score:               roundScore(efficiency),
		ScorePerHour:        roundScore(perHour),
		ScorePerInteraction: math.Round(perInteraction*100) / 100,
		StudyHours:          roundScore(studyMinutes / 60),
		Rating:              rating,
	}
}
