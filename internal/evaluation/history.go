package evaluation

import (
	"context"

	"github.com/yclin/fabtrainer/internal/store"
)

// Evaluation audit kinds as persisted in the trail.
const (
	auditKindTheory   = "theory"
	auditKindPractice = "practice"
	auditKindOverall  = "overall"
)

// Recorder appends computed evaluation results to the per-student audit
// trail. The scoring functions themselves stay pure; persistence is an
// explicit, separate step.
type Recorder struct {
	events store.EventRepo
}

// NewRecorder creates an evaluation recorder over the event store.
func NewRecorder(events store.EventRepo) *Recorder {
	return &Recorder{events: events}
}

// RecordTheory appends a theory evaluation to the audit trail.
func (r *Recorder) RecordTheory(ctx context.Context, studentID string, eval TheoryEvaluation) error {
	return r.events.AppendEvaluation(ctx, store.EvaluationEventData{
		StudentID:   studentID,
		Kind:        auditKindTheory,
		TheoryScore: eval.Score,
		Grade:       string(eval.Grade),
	})
}

// RecordPractice appends a practice evaluation to the audit trail.
func (r *Recorder) RecordPractice(ctx context.Context, studentID string, eval PracticeEvaluation) error {
	return r.events.AppendEvaluation(ctx, store.EvaluationEventData{
		StudentID:     studentID,
		Kind:          auditKindPractice,
		PracticeScore: eval.Score,
		Grade:         string(eval.Grade),
	})
}

// RecordOverall appends an overall evaluation to the audit trail.
func (r *Recorder) RecordOverall(ctx context.Context, studentID string, eval OverallEvaluation) error {
	return r.events.AppendEvaluation(ctx, store.EvaluationEventData{
		StudentID:     studentID,
		Kind:          auditKindOverall,
		TheoryScore:   eval.TheoryScore,
		PracticeScore: eval.PracticeScore,
		OverallScore:  eval.OverallScore,
		Grade:         string(eval.Grade),
	})
}

// OverallTrend classifies the student's recent overall-score history.
func (r *Recorder) OverallTrend(ctx context.Context, studentID string) (Trend, error) {
	records, err := r.events.Evaluations(ctx, studentID)
	if err != nil {
		return TrendInsufficient, err
	}

	var scores []float64
	for _, rec := range records {
		if rec.Kind == auditKindOverall {
			scores = append(scores, rec.OverallScore)
		}
	}
	return ComputeTrend(scores), nil
}
