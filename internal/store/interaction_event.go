package store

import (
	"context"
	"fmt"

	"github.com/yclin/fabtrainer/ent"
	"github.com/yclin/fabtrainer/ent/interactionevent"
)

// eventRepo implements EventRepo using the ent client.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendInteraction(ctx context.Context, data InteractionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.InteractionEvent.Create().
		SetSequence(seqNum).
		SetRecordID(data.RecordID).
		SetStudentID(data.StudentID).
		SetKind(data.Kind).
		SetNillableSuccess(data.Success).
		SetNillableScore(data.Score)

	if len(data.Payload) > 0 {
		builder = builder.SetPayload(data.Payload)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save interaction event: %w", err)
	}
	return nil
}

func (r *eventRepo) Interactions(ctx context.Context, studentID string) ([]InteractionRecord, error) {
	events, err := r.client.InteractionEvent.Query().
		Where(interactionevent.StudentID(studentID)).
		Order(ent.Asc(interactionevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query interactions: %w", err)
	}
	return toInteractionRecords(events), nil
}

func (r *eventRepo) InteractionsByKind(ctx context.Context, studentID, kind string) ([]InteractionRecord, error) {
	events, err := r.client.InteractionEvent.Query().
		Where(
			interactionevent.StudentID(studentID),
			interactionevent.Kind(kind),
		).
		Order(ent.Asc(interactionevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query interactions by kind: %w", err)
	}
	return toInteractionRecords(events), nil
}

func (r *eventRepo) RecentInteractions(ctx context.Context, studentID string, kinds []string, n int) ([]InteractionRecord, error) {
	q := r.client.InteractionEvent.Query().
		Where(interactionevent.StudentID(studentID))
	if len(kinds) > 0 {
		q = q.Where(interactionevent.KindIn(kinds...))
	}
	events, err := q.
		Order(ent.Desc(interactionevent.FieldSequence)).
		Limit(n).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent interactions: %w", err)
	}

	// Reverse to oldest-first.
	records := toInteractionRecords(events)
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records, nil
}

func toInteractionRecords(events []*ent.InteractionEvent) []InteractionRecord {
	records := make([]InteractionRecord, 0, len(events))
	for _, e := range events {
		records = append(records, InteractionRecord{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			RecordID:  e.RecordID,
			StudentID: e.StudentID,
			Kind:      e.Kind,
			Payload:   e.Payload,
			Success:   e.Success,
			Score:     e.Score,
		})
	}
	return records
}
