package ledger

import (
	"context"
	"math"
	"reflect"
	"testing"
)

func collect(seq func(yield func(int, float64) bool)) []float64 {
	var out []float64
	seq(func(_ int, avg float64) bool {
		out = append(out, avg)
		return true
	})
	return out
}

func TestMovingAveragesWindowThree(t *testing.T) {
	got := collect(movingAverages([]float64{60, 70, 80, 90}, 3))
	want := []float64{60, 65, 70, 80}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("moving averages = %v, want %v", got, want)
	}
}

func TestMovingAveragesShorterThanWindow(t *testing.T) {
	got := collect(movingAverages([]float64{50, 100}, 10))
	want := []float64{50, 75}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("moving averages = %v, want %v", got, want)
	}
}

func TestMovingAveragesEmpty(t *testing.T) {
	if got := collect(movingAverages(nil, 3)); got != nil {
		t.Errorf("expected no points for empty input, got %v", got)
	}
}

func TestMovingAveragesDefaultWindow(t *testing.T) {
	scores := make([]float64, 15)
	for i := range scores {
		scores[i] = 100
	}
	got := collect(movingAverages(scores, 0))
	if len(got) != 15 {
		t.Fatalf("expected 15 points, got %d", len(got))
	}
	for i, avg := range got {
		if math.Abs(avg-100) > 1e-9 {
			t.Errorf("point %d = %v, want 100", i, avg)
		}
	}
}

func TestLearningCurveRestartable(t *testing.T) {
	repo := &fakeEventRepo{}
	svc := NewService("s1", repo, nil)
	ctx := context.Background()

	for _, score := range []float64{60, 70, 80, 90} {
		if _, err := svc.Record(ctx, KindTheoryTest, nil, RecordOpts{Score: floatPtr(score)}); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	seq, err := svc.LearningCurve(ctx, 3)
	if err != nil {
		t.Fatalf("learning curve: %v", err)
	}

	want := []float64{60, 65, 70, 80}
	first := collect(seq)
	second := collect(seq)
	if !reflect.DeepEqual(first, want) {
		t.Errorf("first pass = %v, want %v", first, want)
	}
	if !reflect.DeepEqual(second, want) {
		t.Errorf("second pass = %v, want %v", second, want)
	}
}

func TestLearningCurveConfiguredWindow(t *testing.T) {
	repo := &fakeEventRepo{}
	svc := NewService("s1", repo, nil, WithCurveWindow(2))
	ctx := context.Background()

	for _, score := range []float64{60, 70, 80, 90} {
		if _, err := svc.Record(ctx, KindTheoryTest, nil, RecordOpts{Score: floatPtr(score)}); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	// Window 0 uses the configured window of 2.
	seq, err := svc.LearningCurve(ctx, 0)
	if err != nil {
		t.Fatalf("learning curve: %v", err)
	}
	want := []float64{60, 65, 75, 85}
	if got := collect(seq); !reflect.DeepEqual(got, want) {
		t.Errorf("curve = %v, want %v", got, want)
	}

	// An explicit window still wins over the configured one.
	seq, err = svc.LearningCurve(ctx, 4)
	if err != nil {
		t.Fatalf("learning curve: %v", err)
	}
	want = []float64{60, 65, 70, 75}
	if got := collect(seq); !reflect.DeepEqual(got, want) {
		t.Errorf("curve = %v, want %v", got, want)
	}
}

func TestLearningCurveIgnoresUnscoredRecords(t *testing.T) {
	repo := &fakeEventRepo{}
	svc := NewService("s1", repo, nil)
	ctx := context.Background()

	if _, err := svc.Record(ctx, KindExpertConsult, nil, RecordOpts{}); err != nil {
		t.Fatalf("record: %v", err)
	}
	if _, err := svc.Record(ctx, KindTheoryTest, nil, RecordOpts{Score: floatPtr(80)}); err != nil {
		t.Fatalf("record: %v", err)
	}

	seq, err := svc.LearningCurve(ctx, 3)
	if err != nil {
		t.Fatalf("learning curve: %v", err)
	}
	if got := collect(seq); len(got) != 1 || got[0] != 80 {
		t.Errorf("curve = %v, want [80]", got)
	}
}
