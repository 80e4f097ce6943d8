package ledger

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/yclin/fabtrainer/internal/store"
)

// Report assembles statistics, the materialized learning curve, knowledge
// gaps, elapsed study time, and rule-based study advice into one composite
// structure for presentation.
func (s *Service) Report(ctx context.Context) (*Report, error) {
	records, err := s.events.Interactions(ctx, s.studentID)
	if err != nil {
		return nil, err
	}

	stats := statisticsFromRecords(s.studentID, records)
	gaps := gapsFromRecords(records, s.gapAccuracy, s.gapMinAttempts)

	var scores []float64
	for _, rec := range records {
		if rec.Score != nil {
			scores = append(scores, *rec.Score)
		}
	}

	report := &Report{
		StudentID:        s.studentID,
		GeneratedAt:      time.Now(),
		StudyTimeMinutes: studyTimeMinutes(records),
		Statistics:       stats,
		Curve:            curvePoints(movingAverages(scores, s.curveWindow)),
		Gaps:             gaps,
	}
	report.Recommendations = studyAdvice(stats, gaps, report.StudyTimeMinutes)
	return report, nil
}

// studyTimeMinutes is the elapsed time between the first and last record.
// Fewer than two records means no measurable study time yet.
func studyTimeMinutes(records []store.InteractionRecord) float64 {
	if len(records) < 2 {
		return 0
	}
	first := records[0].Timestamp
	last := records[len(records)-1].Timestamp
	return round1(last.Sub(first).Minutes())
}

// studyAdvice maps aggregate performance to canned study guidance.
func studyAdvice(stats LearningStatistics, gaps []KnowledgeGap, studyMinutes float64) []string {
	var advice []string

	if stats.TheoryQuestionsAsked > 0 {
		switch {
		case stats.TheoryAccuracy < 60:
			advice = append(advice, "Theory accuracy is low; spend more time on fundamental concepts before testing again.")
		case stats.TheoryAccuracy < 80:
			advice = append(advice, "Theory fundamentals are solid but leave room to improve; review the questions you missed.")
		}
	}

	if stats.PracticeOperations > 0 && stats.PracticeSuccessRate < 60 {
		advice = append(advice, "Practice operations need work; rehearse the common troubleshooting procedures.")
	}

	if len(gaps) > 0 {
		n := len(gaps)
		if n > 3 {
			n = 3
		}
		topics := make([]string, 0, n)
		for _, g := range gaps[:n] {
			topics = append(topics, g.Topic)
		}
		advice = append(advice, fmt.Sprintf("Knowledge gaps detected in: %s. Review these topics first.", strings.Join(topics, ", ")))
	}

	switch {
	case stats.TotalInteractions > 0 && stats.ExpertConsultRate < 0.1:
		advice = append(advice, "Consider consulting the expert advisor when stuck instead of struggling alone.")
	case stats.ExpertConsultRate > 0.5:
		advice = append(advice, "Try reasoning through problems independently before asking the expert advisor.")
	}

	if studyMinutes > 0 && studyMinutes < 30 {
		advice = append(advice, "Study time is short so far; schedule more practice to consolidate what you've learned.")
	}

	if len(advice) == 0 {
		advice = append(advice, "Performance looks good. Keep up the current study habits.")
	}
	return advice
}
