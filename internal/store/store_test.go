package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func boolPtr(b bool) *bool        { return &b }
func floatPtr(f float64) *float64 { return &f }

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestInteractionAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendInteraction(ctx, InteractionEventData{
		RecordID:  "rec-1",
		StudentID: "s1",
		Kind:      "practice_operation",
		Payload:   map[string]any{"operation": "replace coolant filter", "topic": "cooling-system"},
		Success:   boolPtr(true),
		Score:     floatPtr(92.5),
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	records, err := repo.Interactions(ctx, "s1")
	if err != nil {
		t.Fatalf("interactions: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}

	rec := records[0]
	if rec.RecordID != "rec-1" || rec.Kind != "practice_operation" {
		t.Errorf("record = %+v", rec)
	}
	if rec.Success == nil || !*rec.Success {
		t.Error("success should round-trip as true")
	}
	if rec.Score == nil || *rec.Score != 92.5 {
		t.Error("score should round-trip as 92.5")
	}
	if rec.Payload["operation"] != "replace coolant filter" {
		t.Errorf("payload = %v", rec.Payload)
	}
	if rec.Timestamp.IsZero() {
		t.Error("timestamp should be set on append")
	}
}

func TestSequenceMonotonicAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendInteraction(ctx, InteractionEventData{
			RecordID:  "rec",
			StudentID: "s1",
			Kind:      "expert_consult",
		})
		if err != nil {
			t.Fatalf("append interaction: %v", err)
		}
	}
	err := repo.AppendEvaluation(ctx, EvaluationEventData{
		StudentID:    "s1",
		Kind:         "theory",
		TheoryScore:  80,
		OverallScore: 80,
		Grade:        "good",
	})
	if err != nil {
		t.Fatalf("append evaluation: %v", err)
	}

	interactions, err := repo.Interactions(ctx, "s1")
	if err != nil {
		t.Fatalf("interactions: %v", err)
	}
	evals, err := repo.Evaluations(ctx, "s1")
	if err != nil {
		t.Fatalf("evaluations: %v", err)
	}

	var last int64
	for _, r := range interactions {
		if r.Sequence <= last {
			t.Fatalf("sequence not strictly increasing: %d after %d", r.Sequence, last)
		}
		last = r.Sequence
	}
	// The evaluation was appended last, so its sequence follows every
	// interaction's.
	if len(evals) != 1 || evals[0].Sequence <= last {
		t.Fatalf("evaluation sequence %d should follow interaction sequence %d", evals[0].Sequence, last)
	}
}

func TestInteractionsByKind(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	kinds := []string{"theory_question", "practice_operation", "theory_question"}
	for i, kind := range kinds {
		err := repo.AppendInteraction(ctx, InteractionEventData{
			RecordID:  "rec",
			StudentID: "s1",
			Kind:      kind,
			Payload:   map[string]any{"idx": i},
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	records, err := repo.InteractionsByKind(ctx, "s1", "theory_question")
	if err != nil {
		t.Fatalf("by kind: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d theory_question records, want 2", len(records))
	}
	for _, r := range records {
		if r.Kind != "theory_question" {
			t.Errorf("kind = %q", r.Kind)
		}
	}
}

func TestRecentInteractions(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		kind := "practice_operation"
		if i%2 == 0 {
			kind = "expert_consult"
		}
		err := repo.AppendInteraction(ctx, InteractionEventData{
			RecordID:  "rec",
			StudentID: "s1",
			Kind:      kind,
			Payload:   map[string]any{"idx": i},
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	// Last two practice operations, oldest first.
	records, err := repo.RecentInteractions(ctx, "s1", []string{"practice_operation"}, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].Sequence >= records[1].Sequence {
		t.Error("recent interactions should be returned oldest first")
	}
	for _, r := range records {
		if r.Kind != "practice_operation" {
			t.Errorf("kind = %q, want practice_operation", r.Kind)
		}
	}

	// Empty kind filter means all kinds.
	records, err = repo.RecentInteractions(ctx, "s1", nil, 10)
	if err != nil {
		t.Fatalf("recent (all kinds): %v", err)
	}
	if len(records) != 5 {
		t.Fatalf("got %d records, want 5", len(records))
	}
}

func TestInteractionsScopedToStudent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, id := range []string{"s1", "s1", "s2"} {
		err := repo.AppendInteraction(ctx, InteractionEventData{
			RecordID:  "rec",
			StudentID: id,
			Kind:      "expert_consult",
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	records, err := repo.Interactions(ctx, "s1")
	if err != nil {
		t.Fatalf("interactions: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("s1 has %d records, want 2", len(records))
	}
}

func TestEvaluationAuditTrail(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	data := []EvaluationEventData{
		{StudentID: "s1", Kind: "theory", TheoryScore: 75, OverallScore: 75, Grade: "pass"},
		{StudentID: "s1", Kind: "overall", TheoryScore: 75, PracticeScore: 85, OverallScore: 82, Grade: "good"},
	}
	for _, d := range data {
		if err := repo.AppendEvaluation(ctx, d); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	evals, err := repo.Evaluations(ctx, "s1")
	if err != nil {
		t.Fatalf("evaluations: %v", err)
	}
	if len(evals) != 2 {
		t.Fatalf("got %d evaluations, want 2", len(evals))
	}
	if evals[0].Kind != "theory" || evals[1].Kind != "overall" {
		t.Errorf("evaluation order: %s, %s", evals[0].Kind, evals[1].Kind)
	}
	if evals[1].OverallScore != 82 || evals[1].Grade != "good" {
		t.Errorf("overall row = %+v", evals[1])
	}
}

func TestStateLoadSave(t *testing.T) {
	s := openTestStore(t)
	repo := s.StateRepo()
	ctx := context.Background()

	// No state yet.
	state, err := repo.Load(ctx, "s1")
	if err != nil {
		t.Fatalf("load (empty): %v", err)
	}
	if state != nil {
		t.Fatal("expected nil state when none exists")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &TrainingStateData{
		StudentID:   "s1",
		Stage:       "theory",
		TheoryScore: floatPtr(72),
		CreatedAt:   now,
		LastUpdated: now,
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	state, err = repo.Load(ctx, "s1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if state.Stage != "theory" {
		t.Errorf("stage = %q", state.Stage)
	}
	if state.TheoryScore == nil || *state.TheoryScore != 72 {
		t.Error("theory score should round-trip as 72")
	}
	if state.PracticeScore != nil {
		t.Error("practice score should stay unset")
	}

	// Save again updates the existing row.
	state.Stage = "practice"
	state.TheoryCompleted = true
	if err := repo.Save(ctx, state); err != nil {
		t.Fatalf("save (update): %v", err)
	}
	state, err = repo.Load(ctx, "s1")
	if err != nil {
		t.Fatalf("load (after update): %v", err)
	}
	if state.Stage != "practice" || !state.TheoryCompleted {
		t.Errorf("updated state = %+v", state)
	}
}

func TestStateLockIsPerStudent(t *testing.T) {
	s := openTestStore(t)
	repo := s.StateRepo()

	unlock1 := repo.Lock("s1")
	// A different student's lock must not block.
	done := make(chan struct{})
	go func() {
		unlock2 := repo.Lock("s2")
		unlock2()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock for a different student should not block")
	}
	unlock1()

	// Re-acquiring the released lock succeeds.
	unlock1 = repo.Lock("s1")
	unlock1()
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx, "s1")
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err = repo.Save(ctx, &StatsSnapshot{
			StudentID: "s1",
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      map[string]any{"total_interactions": i + 1},
		})
		if err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	snap, err = repo.Latest(ctx, "s1")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 3 {
		t.Errorf("latest sequence = %d, want 3", snap.Sequence)
	}
	if snap.Data["total_interactions"] != float64(3) {
		t.Errorf("data = %v", snap.Data)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 5; i++ {
		err := repo.Save(ctx, &StatsSnapshot{
			StudentID: "s1",
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("save: %v", err)
		}
	}
	// Another student's snapshots survive pruning.
	err := repo.Save(ctx, &StatsSnapshot{StudentID: "s2", Sequence: 1, Timestamp: base})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := repo.Prune(ctx, "s1", 2); err != nil {
		t.Fatalf("prune: %v", err)
	}

	snap, err := repo.Latest(ctx, "s1")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 5 {
		t.Errorf("latest after prune = %d, want 5", snap.Sequence)
	}

	snap, err = repo.Latest(ctx, "s2")
	if err != nil {
		t.Fatalf("latest s2: %v", err)
	}
	if snap == nil {
		t.Fatal("other student's snapshots should survive pruning")
	}

	// Pruning with fewer than keep snapshots is a no-op.
	if err := repo.Prune(ctx, "s2", 10); err != nil {
		t.Fatalf("prune (no-op): %v", err)
	}
}
