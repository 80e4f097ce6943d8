package ledger

import "time"

// Kind classifies a learner interaction.
type Kind string

const (
	KindTheoryQuestion    Kind = "theory_question"
	KindTheoryTest        Kind = "theory_test"
	KindPracticeOperation Kind = "practice_operation"
	KindExpertConsult     Kind = "expert_consult"
	KindStageSwitch       Kind = "stage_switch"
)

// AllKinds returns every interaction kind.
func AllKinds() []Kind {
	return []Kind{
		KindTheoryQuestion,
		KindTheoryTest,
		KindPracticeOperation,
		KindExpertConsult,
		KindStageSwitch,
	}
}

// valid reports whether k is a known interaction kind.
func (k Kind) valid() bool {
	switch k {
	case KindTheoryQuestion, KindTheoryTest, KindPracticeOperation,
		KindExpertConsult, KindStageSwitch:
		return true
	}
	return false
}

// RecordOpts carries the optional fields of an interaction append.
type RecordOpts struct {
	// Success marks the outcome; leave nil for kinds where success is
	// undefined (e.g. expert_consult, stage_switch).
	Success *bool
	// Score attaches a numeric score to the interaction.
	Score *float64
}

// LearningStatistics are aggregate counters recomputed from the full
// interaction history on every query.
type LearningStatistics struct {
	StudentID                 string  `json:"student_id"`
	TotalInteractions         int     `json:"total_interactions"`
	TheoryQuestionsAsked      int     `json:"theory_questions_asked"`
	TheoryQuestionsCorrect    int     `json:"theory_questions_correct"`
	TheoryTestsTaken          int     `json:"theory_tests_taken"`
	PracticeOperations        int     `json:"practice_operations_count"`
	PracticeOperationsSuccess int     `json:"practice_operations_success"`
	ExpertConsults            int     `json:"expert_consults"`
	StageSwitches             int     `json:"stage_switches"`
	SkippedRecords            int     `json:"skipped_records"`
	TheoryAccuracy            float64 `json:"theory_accuracy"`       // percent
	PracticeSuccessRate       float64 `json:"practice_success_rate"` // percent
	ExpertConsultRate         float64 `json:"expert_consult_rate"`   // consults per interaction
}

// KnowledgeGap is a topic where the learner's accuracy is below the gap
// threshold over at least GapMinAttempts attempts.
type KnowledgeGap struct {
	Topic    string  `json:"topic"`
	Accuracy float64 `json:"accuracy"` // percent
	Attempts int     `json:"total_attempts"`
	Errors   int     `json:"error_count"`
}

// CurvePoint is one materialized point of the learning curve.
type CurvePoint struct {
	Index   int     `json:"index"`
	Average float64 `json:"moving_average"`
}

// Report is the composite learning report assembled for presentation.
type Report struct {
	StudentID        string             `json:"student_id"`
	GeneratedAt      time.Time          `json:"generated_at"`
	StudyTimeMinutes float64            `json:"study_time_minutes"`
	Statistics       LearningStatistics `json:"statistics"`
	Curve            []CurvePoint       `json:"learning_curve"`
	Gaps             []KnowledgeGap     `json:"knowledge_gaps"`
	Recommendations  []string           `json:"recommendations"`
}
