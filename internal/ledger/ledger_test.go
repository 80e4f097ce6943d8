package ledger

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/yclin/fabtrainer/internal/store"
)

// fakeEventRepo is an in-memory EventRepo for ledger tests.
type fakeEventRepo struct {
	records []store.InteractionRecord
	evals   []store.EvaluationRecord
	seq     int64
}

func (f *fakeEventRepo) AppendInteraction(ctx context.Context, data store.InteractionEventData) error {
	f.seq++
	f.records = append(f.records, store.InteractionRecord{
		Sequence:  f.seq,
		Timestamp: time.Now(),
		RecordID:  data.RecordID,
		StudentID: data.StudentID,
		Kind:      data.Kind,
		Payload:   data.Payload,
		Success:   data.Success,
		Score:     data.Score,
	})
	return nil
}

func (f *fakeEventRepo) Interactions(ctx context.Context, studentID string) ([]store.InteractionRecord, error) {
	var out []store.InteractionRecord
	for _, r := range f.records {
		if r.StudentID == studentID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) InteractionsByKind(ctx context.Context, studentID, kind string) ([]store.InteractionRecord, error) {
	var out []store.InteractionRecord
	for _, r := range f.records {
		if r.StudentID == studentID && r.Kind == kind {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) RecentInteractions(ctx context.Context, studentID string, kinds []string, n int) ([]store.InteractionRecord, error) {
	kindSet := make(map[string]bool, len(kinds))
	for _, k := range kinds {
		kindSet[k] = true
	}
	var out []store.InteractionRecord
	for _, r := range f.records {
		if r.StudentID != studentID {
			continue
		}
		if len(kinds) > 0 && !kindSet[r.Kind] {
			continue
		}
		out = append(out, r)
	}
	if len(out) > n {
		out = out[len(out)-n:]
	}
	return out, nil
}

func (f *fakeEventRepo) AppendEvaluation(ctx context.Context, data store.EvaluationEventData) error {
	f.seq++
	f.evals = append(f.evals, store.EvaluationRecord{
		Sequence:      f.seq,
		Timestamp:     time.Now(),
		StudentID:     data.StudentID,
		Kind:          data.Kind,
		TheoryScore:   data.TheoryScore,
		PracticeScore: data.PracticeScore,
		OverallScore:  data.OverallScore,
		Grade:         data.Grade,
	})
	return nil
}

func (f *fakeEventRepo) Evaluations(ctx context.Context, studentID string) ([]store.EvaluationRecord, error) {
	var out []store.EvaluationRecord
	for _, e := range f.evals {
		if e.StudentID == studentID {
			out = append(out, e)
		}
	}
	return out, nil
}

func boolPtr(b bool) *bool        { return &b }
func floatPtr(v float64) *float64 { return &v }

func TestRecordRejectsUnknownKind(t *testing.T) {
	svc := NewService("s1", &fakeEventRepo{}, nil)
	_, err := svc.Record(context.Background(), Kind("bogus"), nil, RecordOpts{})
	if err == nil {
		t.Fatal("expected error for unknown kind, got nil")
	}
}

func TestRecordReturnsUniqueIDs(t *testing.T) {
	svc := NewService("s1", &fakeEventRepo{}, nil)
	ctx := context.Background()

	id1, err := svc.Record(ctx, KindTheoryQuestion, map[string]any{"topic": "vacuum-principles"}, RecordOpts{Success: boolPtr(true)})
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	id2, err := svc.Record(ctx, KindTheoryQuestion, nil, RecordOpts{})
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if id1 == "" || id1 == id2 {
		t.Errorf("expected distinct non-empty record IDs, got %q and %q", id1, id2)
	}
}

func TestStatisticsCounts(t *testing.T) {
	repo := &fakeEventRepo{}
	svc := NewService("s1", repo, nil)
	ctx := context.Background()

	interactions := []struct {
		kind    Kind
		success *bool
	}{
		{KindTheoryQuestion, boolPtr(true)},
		{KindTheoryQuestion, boolPtr(false)},
		{KindTheoryQuestion, boolPtr(true)},
		{KindTheoryTest, nil},
		{KindPracticeOperation, boolPtr(true)},
		{KindPracticeOperation, boolPtr(false)},
		{KindExpertConsult, nil},
		{KindStageSwitch, nil},
	}
	for _, in := range interactions {
		if _, err := svc.Record(ctx, in.kind, nil, RecordOpts{Success: in.success}); err != nil {
			t.Fatalf("record %s: %v", in.kind, err)
		}
	}

	stats, err := svc.Statistics(ctx)
	if err != nil {
		t.Fatalf("statistics: %v", err)
	}

	if stats.TotalInteractions != 8 {
		t.Errorf("total = %d, want 8", stats.TotalInteractions)
	}
	if stats.TheoryQuestionsAsked != 3 || stats.TheoryQuestionsCorrect != 2 {
		t.Errorf("theory questions = %d/%d, want 2/3", stats.TheoryQuestionsCorrect, stats.TheoryQuestionsAsked)
	}
	if stats.TheoryAccuracy != 66.7 {
		t.Errorf("theory accuracy = %v, want 66.7", stats.TheoryAccuracy)
	}
	if stats.PracticeOperations != 2 || stats.PracticeOperationsSuccess != 1 {
		t.Errorf("practice = %d/%d, want 1/2", stats.PracticeOperationsSuccess, stats.PracticeOperations)
	}
	if stats.PracticeSuccessRate != 50.0 {
		t.Errorf("practice success rate = %v, want 50.0", stats.PracticeSuccessRate)
	}
	if stats.ExpertConsults != 1 || stats.StageSwitches != 1 || stats.TheoryTestsTaken != 1 {
		t.Errorf("consults/switches/tests = %d/%d/%d, want 1/1/1",
			stats.ExpertConsults, stats.StageSwitches, stats.TheoryTestsTaken)
	}
}

func TestStatisticsIdempotent(t *testing.T) {
	repo := &fakeEventRepo{}
	svc := NewService("s1", repo, nil)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := svc.Record(ctx, KindTheoryQuestion, nil, RecordOpts{Success: boolPtr(i%2 == 0)}); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	first, err := svc.Statistics(ctx)
	if err != nil {
		t.Fatalf("statistics: %v", err)
	}
	second, err := svc.Statistics(ctx)
	if err != nil {
		t.Fatalf("statistics: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("statistics not idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestStatisticsSkipsMalformedRecords(t *testing.T) {
	repo := &fakeEventRepo{}
	// Inject rows the validating Record path would refuse.
	repo.records = append(repo.records,
		store.InteractionRecord{Sequence: 1, StudentID: "s1", Kind: ""},
		store.InteractionRecord{Sequence: 2, StudentID: "s1", Kind: "mystery"},
		store.InteractionRecord{Sequence: 3, StudentID: "s1", Kind: string(KindExpertConsult)},
	)

	stats, err := NewService("s1", repo, nil).Statistics(context.Background())
	if err != nil {
		t.Fatalf("statistics: %v", err)
	}
	if stats.SkippedRecords != 2 {
		t.Errorf("skipped = %d, want 2", stats.SkippedRecords)
	}
	if stats.TotalInteractions != 1 {
		t.Errorf("total = %d, want 1", stats.TotalInteractions)
	}
}

// fakeSnapshotRepo is an in-memory StatsSnapshotRepo.
type fakeSnapshotRepo struct {
	saved []*store.StatsSnapshot
}

func (f *fakeSnapshotRepo) Save(ctx context.Context, snap *store.StatsSnapshot) error {
	f.saved = append(f.saved, snap)
	return nil
}

func (f *fakeSnapshotRepo) Latest(ctx context.Context, studentID string) (*store.StatsSnapshot, error) {
	for i := len(f.saved) - 1; i >= 0; i-- {
		if f.saved[i].StudentID == studentID {
			return f.saved[i], nil
		}
	}
	return nil, nil
}

func (f *fakeSnapshotRepo) Prune(ctx context.Context, studentID string, keep int) error {
	return nil
}

func TestSnapshotStatisticsPersists(t *testing.T) {
	repo := &fakeEventRepo{}
	snaps := &fakeSnapshotRepo{}
	svc := NewService("s1", repo, snaps)
	ctx := context.Background()

	if _, err := svc.Record(ctx, KindTheoryQuestion, nil, RecordOpts{Success: boolPtr(true)}); err != nil {
		t.Fatalf("record: %v", err)
	}

	stats, err := svc.SnapshotStatistics(ctx)
	if err != nil {
		t.Fatalf("snapshot statistics: %v", err)
	}
	if stats.TotalInteractions != 1 {
		t.Errorf("total = %d, want 1", stats.TotalInteractions)
	}

	if len(snaps.saved) != 1 {
		t.Fatalf("expected 1 saved snapshot, got %d", len(snaps.saved))
	}
	snap := snaps.saved[0]
	if snap.StudentID != "s1" {
		t.Errorf("snapshot student = %q, want s1", snap.StudentID)
	}
	if snap.Sequence != repo.seq {
		t.Errorf("snapshot sequence = %d, want %d", snap.Sequence, repo.seq)
	}
	if snap.Data["total_interactions"] != float64(1) {
		t.Errorf("snapshot data total_interactions = %v, want 1", snap.Data["total_interactions"])
	}
}

func TestStatisticsScopedToStudent(t *testing.T) {
	repo := &fakeEventRepo{}
	ctx := context.Background()

	if _, err := NewService("alice", repo, nil).Record(ctx, KindTheoryQuestion, nil, RecordOpts{}); err != nil {
		t.Fatalf("record: %v", err)
	}
	if _, err := NewService("bob", repo, nil).Record(ctx, KindExpertConsult, nil, RecordOpts{}); err != nil {
		t.Fatalf("record: %v", err)
	}

	stats, err := NewService("alice", repo, nil).Statistics(ctx)
	if err != nil {
		t.Fatalf("statistics: %v", err)
	}
	if stats.TotalInteractions != 1 || stats.ExpertConsults != 0 {
		t.Errorf("alice sees bob's records: %+v", stats)
	}
}
