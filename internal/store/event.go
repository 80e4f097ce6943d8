package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"
)

// sequenceCounter manages the global monotonic sequence number shared across
// all event types. Interaction and evaluation events live in separate
// ent-managed tables, so per-table auto-increment IDs can't establish
// cross-type ordering. This shared counter assigns a single increasing
// sequence to every event regardless of type, enabling:
//
//   - Cross-type ordering (e.g. did the evaluation come before or after the
//     stage switch?)
//   - Snapshot consistency (statistics snapshots reference a sequence)
//   - Append-only guarantees (events are never reordered)
//
// Uses raw SQL outside ent because ent doesn't support database-level atomic
// counters. The mutex serializes within the process; the RETURNING clause
// makes the increment atomic at the database level.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

// newSequenceCounter creates a counter and ensures the tracking table exists.
func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{db: db}, nil
}

// Next atomically returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

// InteractionEventData captures the data for a single interaction append.
type InteractionEventData struct {
	RecordID  string
	StudentID string
	Kind      string
	Payload   map[string]any
	Success   *bool
	Score     *float64
}

// InteractionRecord is an immutable interaction row as read back from the log.
type InteractionRecord struct {
	Sequence  int64
	Timestamp time.Time
	RecordID  string
	StudentID string
	Kind      string
	Payload   map[string]any
	Success   *bool
	Score     *float64
}

// EvaluationEventData captures a computed evaluation result for the audit trail.
type EvaluationEventData struct {
	StudentID     string
	Kind          string
	TheoryScore   float64
	PracticeScore float64
	OverallScore  float64
	Grade         string
}

// EvaluationRecord is an evaluation audit row as read back from the trail.
type EvaluationRecord struct {
	Sequence      int64
	Timestamp     time.Time
	StudentID     string
	Kind          string
	TheoryScore   float64
	PracticeScore float64
	OverallScore  float64
	Grade         string
}

// EventRepo provides append and query access to domain events. All methods
// return plain structs so domain packages never depend on generated ent types.
type EventRepo interface {
	// AppendInteraction records one learner interaction. The row is immutable
	// once written.
	AppendInteraction(ctx context.Context, data InteractionEventData) error

	// Interactions returns the full interaction history for a student in
	// insertion (chronological) order.
	Interactions(ctx context.Context, studentID string) ([]InteractionRecord, error)

	// InteractionsByKind returns a student's interactions of one kind in
	// insertion order.
	InteractionsByKind(ctx context.Context, studentID, kind string) ([]InteractionRecord, error)

	// RecentInteractions returns the last n interactions for a student
	// restricted to the given kinds (all kinds when empty), oldest first.
	RecentInteractions(ctx context.Context, studentID string, kinds []string, n int) ([]InteractionRecord, error)

	// AppendEvaluation records a computed evaluation result.
	AppendEvaluation(ctx context.Context, data EvaluationEventData) error

	// Evaluations returns a student's evaluation history in insertion order.
	Evaluations(ctx context.Context, studentID string) ([]EvaluationRecord, error)
}
