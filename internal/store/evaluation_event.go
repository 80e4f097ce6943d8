package store

import (
	"context"
	"fmt"

	"github.com/yclin/fabtrainer/ent"
	"github.com/yclin/fabtrainer/ent/evaluationevent"
)

func (r *eventRepo) AppendEvaluation(ctx context.Context, data EvaluationEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.EvaluationEvent.Create().
		SetSequence(seqNum).
		SetStudentID(data.StudentID).
		SetKind(data.Kind).
		SetTheoryScore(data.TheoryScore).
		SetPracticeScore(data.PracticeScore).
		SetOverallScore(data.OverallScore).
		SetGrade(data.Grade).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save evaluation event: %w", err)
	}
	return nil
}

func (r *eventRepo) Evaluations(ctx context.Context, studentID string) ([]EvaluationRecord, error) {
	events, err := r.client.EvaluationEvent.Query().
		Where(evaluationevent.StudentID(studentID)).
		Order(ent.Asc(evaluationevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query evaluations: %w", err)
	}

	records := make([]EvaluationRecord, 0, len(events))
	for _, e := range events {
		records = append(records, EvaluationRecord{
			Sequence:      e.Sequence,
			Timestamp:     e.Timestamp,
			StudentID:     e.StudentID,
			Kind:          e.Kind,
			TheoryScore:   e.TheoryScore,
			PracticeScore: e.PracticeScore,
			OverallScore:  e.OverallScore,
			Grade:         e.Grade,
		})
	}
	return records, nil
}
