package ledger

import (
	"bytes"
	"context"
	"encoding/csv"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/yclin/fabtrainer/internal/store"
)

func TestReportAssemblesAllSections(t *testing.T) {
	repo := &fakeEventRepo{}
	svc := NewService("s1", repo, nil)

	recordTopic(t, svc, KindTheoryQuestion, "vacuum-principles", 6, 2)
	ctx := context.Background()
	for _, score := range []float64{60, 70, 80} {
		if _, err := svc.Record(ctx, KindTheoryTest, nil, RecordOpts{Score: floatPtr(score)}); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	report, err := svc.Report(ctx)
	if err != nil {
		t.Fatalf("report: %v", err)
	}

	if report.StudentID != "s1" {
		t.Errorf("student = %q, want s1", report.StudentID)
	}
	if report.Statistics.TheoryQuestionsAsked != 6 {
		t.Errorf("theory questions = %d, want 6", report.Statistics.TheoryQuestionsAsked)
	}
	if len(report.Curve) != 3 {
		t.Errorf("curve points = %d, want 3", len(report.Curve))
	}
	if len(report.Gaps) != 1 || report.Gaps[0].Topic != "vacuum-principles" {
		t.Errorf("gaps = %+v, want one vacuum-principles gap", report.Gaps)
	}
	if len(report.Recommendations) == 0 {
		t.Error("expected study advice in report")
	}
}

func TestStudyTimeMinutes(t *testing.T) {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	records := []store.InteractionRecord{
		{Timestamp: base},
		{Timestamp: base.Add(10 * time.Minute)},
		{Timestamp: base.Add(45 * time.Minute)},
	}
	if got := studyTimeMinutes(records); got != 45 {
		t.Errorf("study time = %v, want 45", got)
	}
	if got := studyTimeMinutes(records[:1]); got != 0 {
		t.Errorf("study time with one record = %v, want 0", got)
	}
}

func TestStudyAdvicePositiveFallback(t *testing.T) {
	stats := LearningStatistics{
		TotalInteractions:    10,
		TheoryQuestionsAsked: 5,
		TheoryAccuracy:       90,
		PracticeOperations:   4,
		PracticeSuccessRate:  100,
		ExpertConsults:       2,
		ExpertConsultRate:    0.2,
	}
	advice := studyAdvice(stats, nil, 120)
	if len(advice) != 1 || !strings.Contains(advice[0], "good") {
		t.Errorf("expected single positive advice line, got %v", advice)
	}
}

func TestStudyAdviceNamesGapTopics(t *testing.T) {
	gaps := []KnowledgeGap{
		{Topic: "vacuum-principles", Accuracy: 30, Attempts: 6, Errors: 4},
		{Topic: "pid-control", Accuracy: 50, Attempts: 4, Errors: 2},
	}
	advice := studyAdvice(LearningStatistics{TotalInteractions: 10, ExpertConsultRate: 0.2}, gaps, 60)

	var found bool
	for _, a := range advice {
		if strings.Contains(a, "vacuum-principles") && strings.Contains(a, "pid-control") {
			found = true
		}
	}
	if !found {
		t.Errorf("advice should name the gap topics, got %v", advice)
	}
}

func TestExportCSVFlattensPayload(t *testing.T) {
	repo := &fakeEventRepo{}
	svc := NewService("s1", repo, nil)
	ctx := context.Background()

	if _, err := svc.Record(ctx, KindPracticeOperation,
		map[string]any{"topic": "cooling-principles", "operation": "check coolant flow"},
		RecordOpts{Success: boolPtr(false)}); err != nil {
		t.Fatalf("record: %v", err)
	}
	if _, err := svc.Record(ctx, KindTheoryQuestion,
		map[string]any{"topic": "cooling-principles"},
		RecordOpts{Success: boolPtr(true), Score: floatPtr(100)}); err != nil {
		t.Fatalf("record: %v", err)
	}

	var buf bytes.Buffer
	if err := svc.ExportCSV(ctx, &buf); err != nil {
		t.Fatalf("export: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}

	wantHeader := []string{"record_id", "timestamp", "student_id", "kind", "success", "score", "operation", "topic"}
	if !reflect.DeepEqual(rows[0], wantHeader) {
		t.Errorf("header = %v, want %v", rows[0], wantHeader)
	}

	// First row: failed practice operation.
	if rows[1][3] != string(KindPracticeOperation) || rows[1][4] != "false" {
		t.Errorf("row 1 kind/success = %q/%q", rows[1][3], rows[1][4])
	}
	if rows[1][6] != "check coolant flow" {
		t.Errorf("row 1 operation = %q", rows[1][6])
	}
	// Second row: theory question has no operation column value.
	if rows[2][6] != "" || rows[2][7] != "cooling-principles" {
		t.Errorf("row 2 payload columns = %q/%q", rows[2][6], rows[2][7])
	}
	if rows[2][5] != "100" {
		t.Errorf("row 2 score = %q, want 100", rows[2][5])
	}
}
