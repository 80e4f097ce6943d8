package store

import (
	"context"
	"fmt"
	"time"

	"github.com/yclin/fabtrainer/ent"
	"github.com/yclin/fabtrainer/ent/statssnapshot"
)

// StatsSnapshot is a point-in-time capture of a student's aggregate
// statistics, tagged with the event sequence it was computed at.
type StatsSnapshot struct {
	ID        int
	StudentID string
	Sequence  int64
	Timestamp time.Time
	Data      map[string]any
}

// StatsSnapshotRepo manages aggregate-statistics snapshots.
type StatsSnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *StatsSnapshot) error

	// Latest returns the student's most recent snapshot, or nil if none exist.
	Latest(ctx context.Context, studentID string) (*StatsSnapshot, error)

	// Prune deletes all but the N most recent snapshots for a student.
	Prune(ctx context.Context, studentID string, keep int) error
}

// snapshotRepo implements StatsSnapshotRepo using the ent client.
type snapshotRepo struct {
	client *ent.Client
}

func (r *snapshotRepo) Save(ctx context.Context, snap *StatsSnapshot) error {
	_, err := r.client.StatsSnapshot.Create().
		SetStudentID(snap.StudentID).
		SetSequence(snap.Sequence).
		SetTimestamp(snap.Timestamp).
		SetData(snap.Data).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save stats snapshot: %w", err)
	}
	return nil
}

func (r *snapshotRepo) Latest(ctx context.Context, studentID string) (*StatsSnapshot, error) {
	s, err := r.client.StatsSnapshot.Query().
		Where(statssnapshot.StudentID(studentID)).
		Order(ent.Desc(statssnapshot.FieldTimestamp)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest stats snapshot: %w", err)
	}

	return &StatsSnapshot{
		ID:        s.ID,
		StudentID: s.StudentID,
		Sequence:  s.Sequence,
		Timestamp: s.Timestamp,
		Data:      s.Data,
	}, nil
}

func (r *snapshotRepo) Prune(ctx context.Context, studentID string, keep int) error {
	// Find the threshold: the timestamp of the Nth most recent snapshot.
	snapshots, err := r.client.StatsSnapshot.Query().
		Where(statssnapshot.StudentID(studentID)).
		Order(ent.Desc(statssnapshot.FieldTimestamp)).
		Offset(keep).
		Limit(1).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}
	if len(snapshots) == 0 {
		return nil // fewer than keep snapshots exist
	}

	threshold := snapshots[0].Timestamp
	_, err = r.client.StatsSnapshot.Delete().
		Where(
			statssnapshot.StudentID(studentID),
			statssnapshot.TimestampLTE(threshold),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune stats snapshots: %w", err)
	}
	return nil
}
