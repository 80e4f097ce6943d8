package ledger

import (
	"context"
	"iter"
)

// LearningCurve returns the moving-average curve over the student's scored
// records: for every record carrying a numeric score, the arithmetic mean of
// the trailing window scored records ending at that point (all available ones
// while fewer than window exist). The returned sequence is finite and
// restartable; it iterates a snapshot taken at call time, so each call
// recomputes from scratch and calls never mutate shared state.
// A non-positive window falls back to the ledger's configured window.
func (s *Service) LearningCurve(ctx context.Context, window int) (iter.Seq2[int, float64], error) {
	records, err := s.events.Interactions(ctx, s.studentID)
	if err != nil {
		return nil, err
	}

	var scores []float64
	for _, rec := range records {
		if rec.Score != nil {
			scores = append(scores, *rec.Score)
		}
	}
	if window <= 0 {
		window = s.curveWindow
	}
	return movingAverages(scores, window), nil
}

// movingAverages yields (index, trailing mean) for each score. A window of
// zero or less falls back to DefaultCurveWindow.
func movingAverages(scores []float64, window int) iter.Seq2[int, float64] {
	if window <= 0 {
		window = DefaultCurveWindow
	}
	return func(yield func(int, float64) bool) {
		for i := range scores {
			start := i - window + 1
			if start < 0 {
				start = 0
			}
			sum := 0.0
			for _, v := range scores[start : i+1] {
				sum += v
			}
			if !yield(i, sum/float64(i+1-start)) {
				return
			}
		}
	}
}

// curvePoints materializes a curve sequence for report assembly.
func curvePoints(seq iter.Seq2[int, float64]) []CurvePoint {
	var points []CurvePoint
	for i, avg := range seq {
		points = append(points, CurvePoint{Index: i, Average: avg})
	}
	return points
}
