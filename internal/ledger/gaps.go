package ledger

import (
	"context"
	"sort"

	"github.com/yclin/fabtrainer/internal/store"
)

// KnowledgeGaps groups the student's theory questions and practice operations
// by topic and returns every topic whose accuracy is below the ledger's
// accuracy threshold over at least its minimum attempt count (defaults
// GapAccuracyThreshold / GapMinAttempts). Topics with too few attempts are
// excluded to avoid false positives from small samples. Ordering carries no
// meaning beyond determinism; ranking is the planner's job.
func (s *Service) KnowledgeGaps(ctx context.Context) ([]KnowledgeGap, error) {
	records, err := s.events.Interactions(ctx, s.studentID)
	if err != nil {
		return nil, err
	}
	return gapsFromRecords(records, s.gapAccuracy, s.gapMinAttempts), nil
}

// gapsFromRecords is the pure gap computation over an interaction history.
func gapsFromRecords(records []store.InteractionRecord, accuracyThreshold float64, minAttempts int) []KnowledgeGap {
	type topicStats struct {
		attempts int
		correct  int
	}
	byTopic := make(map[string]*topicStats)

	for _, rec := range records {
		kind := Kind(rec.Kind)
		if kind != KindTheoryQuestion && kind != KindPracticeOperation {
			continue
		}
		topic := topicOf(rec)
		ts := byTopic[topic]
		if ts == nil {
			ts = &topicStats{}
			byTopic[topic] = ts
		}
		ts.attempts++
		if rec.Success != nil && *rec.Success {
			ts.correct++
		}
	}

	var gaps []KnowledgeGap
	for topic, ts := range byTopic {
		if ts.attempts < minAttempts {
			continue
		}
		accuracy := float64(ts.correct) / float64(ts.attempts) * 100
		if accuracy >= accuracyThreshold {
			continue
		}
		gaps = append(gaps, KnowledgeGap{
			Topic:    topic,
			Accuracy: round1(accuracy),
			Attempts: ts.attempts,
			Errors:   ts.attempts - ts.correct,
		})
	}

	// Stable output: most errors first, topic name as tiebreaker.
	sort.Slice(gaps, func(i, j int) bool {
		if gaps[i].Errors != gaps[j].Errors {
			return gaps[i].Errors > gaps[j].Errors
		}
		return gaps[i].Topic < gaps[j].Topic
	})
	return gaps
}

// topicOf extracts the topic from a record payload; records without one are
// grouped under "unknown".
func topicOf(rec store.InteractionRecord) string {
	if rec.Payload == nil {
		return "unknown"
	}
	if t, ok := rec.Payload["topic"].(string); ok && t != "" {
		return t
	}
	return "unknown"
}
