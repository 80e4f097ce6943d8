package evaluation

import (
	"context"
	"testing"
	"time"

	"github.com/yclin/fabtrainer/internal/store"
)

// fakeEventRepo captures appended evaluations for Recorder tests.
type fakeEventRepo struct {
	evals []store.EvaluationRecord
	seq   int64
}

func (f *fakeEventRepo) AppendInteraction(ctx context.Context, data store.InteractionEventData) error {
	return nil
}

func (f *fakeEventRepo) Interactions(ctx context.Context, studentID string) ([]store.InteractionRecord, error) {
	return nil, nil
}

func (f *fakeEventRepo) InteractionsByKind(ctx context.Context, studentID, kind string) ([]store.InteractionRecord, error) {
	return nil, nil
}

func (f *fakeEventRepo) RecentInteractions(ctx context.Context, studentID string, kinds []string, n int) ([]store.InteractionRecord, error) {
	return nil, nil
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

func TestRecorderAppendsAuditRows(t *testing.T) {
	repo := &fakeEventRepo{}
	rec := NewRecorder(repo)
	ctx := context.Background()

	theory := EvaluateTheoryTest(easyResults(10, 8))
	if err := rec.RecordTheory(ctx, "s1", theory); err != nil {
		t.Fatalf("record theory: %v", err)
	}

	overall := EvaluateOverall(80, 90, DefaultReadiness())
	if err := rec.RecordOverall(ctx, "s1", overall); err != nil {
		t.Fatalf("record overall: %v", err)
	}

	if len(repo.evals) != 2 {
		t.Fatalf("expected 2 audit rows, got %d", len(repo.evals))
	}
	if repo.evals[0].Kind != "theory" || repo.evals[0].TheoryScore != 80 {
		t.Errorf("theory row = %+v", repo.evals[0])
	}
	if repo.evals[1].Kind != "overall" || repo.evals[1].OverallScore != 87 {
		t.Errorf("overall row = %+v", repo.evals[1])
	}
}

func TestOverallTrendFiltersKinds(t *testing.T) {
	repo := &fakeEventRepo{}
	rec := NewRecorder(repo)
	ctx := context.Background()

	// Practice rows must not feed the overall trend.
	if err := rec.RecordPractice(ctx, "s1", PracticeEvaluation{Score: 10, Grade: GradeFail}); err != nil {
		t.Fatalf("record practice: %v", err)
	}
	for _, pair := range [][2]float64{{60, 60}, {70, 70}, {80, 80}} {
		eval := EvaluateOverall(pair[0], pair[1], DefaultReadiness())
		if err := rec.RecordOverall(ctx, "s1", eval); err != nil {
			t.Fatalf("record overall: %v", err)
		}
	}

	trend, err := rec.OverallTrend(ctx, "s1")
	if err != nil {
		t.Fatalf("trend: %v", err)
	}
	if trend != TrendImproving {
		t.Errorf("trend = %q, want improving", trend)
	}
}

func TestOverallTrendInsufficientData(t *testing.T) {
	rec := NewRecorder(&fakeEventRepo{})
	trend, err := rec.OverallTrend(context.Background(), "s1")
	if err != nil {
		t.Fatalf("trend: %v", err)
	}
	if trend != TrendInsufficient {
		t.Errorf("trend = %q, want insufficient-data", trend)
	}
}
