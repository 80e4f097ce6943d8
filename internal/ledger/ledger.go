package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/yclin/fabtrainer/internal/store"
)

// Default gap detection thresholds. A topic is only flagged once enough
// attempts have accumulated, so single unlucky answers don't read as gaps.
const (
	GapAccuracyThreshold = 60.0 // percent
	GapMinAttempts       = 3
)

// DefaultCurveWindow is the trailing window for learning-curve averages.
const DefaultCurveWindow = 10

// Service is the interaction ledger for one student: an append-only log of
// every learner event plus derived, recomputed-on-demand analytics.
type Service struct {
	studentID string
	events    store.EventRepo
	snaps     store.StatsSnapshotRepo

	gapAccuracy    float64
	gapMinAttempts int
	curveWindow    int
}

// Option configures a Service.
type Option func(*Service)

// WithGapRule overrides the default knowledge-gap thresholds.
// Non-positive values keep the defaults.
func WithGapRule(accuracyThreshold float64, minAttempts int) Option {
	return func(s *Service) {
		if accuracyThreshold > 0 {
			s.gapAccuracy = accuracyThreshold
		}
		if minAttempts > 0 {
			s.gapMinAttempts = minAttempts
		}
	}
}

// WithCurveWindow overrides the default learning-curve window.
// Non-positive values keep the default.
func WithCurveWindow(window int) Option {
	return func(s *Service) {
		if window > 0 {
			s.curveWindow = window
		}
	}
}

// NewService creates a ledger for the given student. snaps may be nil when
// statistics snapshots are not wanted.
func NewService(studentID string, events store.EventRepo, snaps store.StatsSnapshotRepo, opts ...Option) *Service {
	s := &Service{
		studentID:      studentID,
		events:         events,
		snaps:          snaps,
		gapAccuracy:    GapAccuracyThreshold,
		gapMinAttempts: GapMinAttempts,
		curveWindow:    DefaultCurveWindow,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// StudentID returns the student this ledger is scoped to.
func (s *Service) StudentID() string {
	return s.studentID
}

// Record appends one immutable interaction and returns its record ID.
// It fails only on unrecoverable storage I/O, which is propagated unchanged.
func (s *Service) Record(ctx context.Context, kind Kind, payload map[string]any, opts RecordOpts) (string, error) {
	if !kind.valid() {
		return "", fmt.Errorf("unknown interaction kind %q", kind)
	}

	recordID := uuid.NewString()
	err := s.events.AppendInteraction(ctx, store.InteractionEventData{
		RecordID:  recordID,
		StudentID: s.studentID,
		Kind:      string(kind),
		Payload:   payload,
		Success:   opts.Success,
		Score:     opts.Score,
	})
	if err != nil {
		return "", err
	}
	return recordID, nil
}

// Statistics recomputes aggregate counters by scanning all records for the
// student. O(n) in record count; per-student volume is small by design.
func (s *Service) Statistics(ctx context.Context) (LearningStatistics, error) {
	records, err := s.events.Interactions(ctx, s.studentID)
	if err != nil {
		return LearningStatistics{}, err
	}
	return statisticsFromRecords(s.studentID, records), nil
}

// statisticsFromRecords is the pure aggregation over an interaction history.
// Records with a missing or unknown kind are skipped and counted rather than
// aborting the computation.
func statisticsFromRecords(studentID string, records []store.InteractionRecord) LearningStatistics {
	stats := LearningStatistics{StudentID: studentID}

	for _, rec := range records {
		kind := Kind(rec.Kind)
		if !kind.valid() {
			stats.SkippedRecords++
			continue
		}
		stats.TotalInteractions++

		switch kind {
		case KindTheoryQuestion:
			stats.TheoryQuestionsAsked++
			if rec.Success != nil && *rec.Success {
				stats.TheoryQuestionsCorrect++
			}
		case KindTheoryTest:
			stats.TheoryTestsTaken++
		case KindPracticeOperation:
			stats.PracticeOperations++
			if rec.Success != nil && *rec.Success {
				stats.PracticeOperationsSuccess++
			}
		case KindExpertConsult:
			stats.ExpertConsults++
		case KindStageSwitch:
			stats.StageSwitches++
		}
	}

	if stats.TheoryQuestionsAsked > 0 {
		stats.TheoryAccuracy = round1(float64(stats.TheoryQuestionsCorrect) / float64(stats.TheoryQuestionsAsked) * 100)
	}
	if stats.PracticeOperations > 0 {
		stats.PracticeSuccessRate = round1(float64(stats.PracticeOperationsSuccess) / float64(stats.PracticeOperations) * 100)
	}
	if stats.TotalInteractions > 0 {
		stats.ExpertConsultRate = float64(stats.ExpertConsults) / float64(stats.TotalInteractions)
	}

	return stats
}

// SnapshotStatistics recomputes statistics and persists them as a snapshot
// keyed by the latest event sequence. Recomputation from the log remains the
// source of truth; snapshots serve external readers.
func (s *Service) SnapshotStatistics(ctx context.Context) (LearningStatistics, error) {
	records, err := s.events.Interactions(ctx, s.studentID)
	if err != nil {
		return LearningStatistics{}, err
	}
	stats := statisticsFromRecords(s.studentID, records)

	if s.snaps == nil {
		return stats, nil
	}

	var seq int64
	if len(records) > 0 {
		seq = records[len(records)-1].Sequence
	}
	snap := &store.StatsSnapshot{
		StudentID: s.studentID,
		Sequence:  seq,
		Timestamp: time.Now(),
		Data:      statsToMap(stats),
	}
	if err := s.snaps.Save(ctx, snap); err != nil {
		return LearningStatistics{}, fmt.Errorf("snapshot statistics: %w", err)
	}
	return stats, nil
}

// statsToMap converts statistics to map[string]any for ent JSON storage.
func statsToMap(stats LearningStatistics) map[string]any {
	b, err := json.Marshal(stats)
	if err != nil {
		return nil
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil
	}
	return m
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
