package evaluation

import "time"

// Component weights for the composite scores.
const (
	TheoryWeight   = 0.3
	PracticeWeight = 0.7

	DiagnosisWeight      = 0.4
	OperationWeight      = 0.4
	TimeEfficiencyWeight = 0.2
)

// Difficulty tiers a theory test item.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Weight returns the scoring weight of the tier. Unknown tiers weigh as
// medium.
func (d Difficulty) Weight() float64 {
	switch d {
	case DifficultyEasy:
		return 0.8
	case DifficultyHard:
		return 1.3
	default:
		return 1.0
	}
}

// TestResult is one answered theory test item.
type TestResult struct {
	Question      string     `json:"question"`
	StudentAnswer string     `json:"student_answer"`
	CorrectAnswer string     `json:"correct_answer"`
	Correct       bool       `json:"is_correct"`
	Topic         string     `json:"topic"`
	Difficulty    Difficulty `json:"difficulty"`
}

// Breakdown is per-topic or per-difficulty item accounting.
type Breakdown struct {
	Correct  int     `json:"correct"`
	Total    int     `json:"total"`
	Accuracy float64 `json:"accuracy"` // 0-1
}

// Grade is one of the five grade bands.
type Grade string

const (
	GradeExcellent Grade = "excellent"
	GradeGood      Grade = "good"
	GradePass      Grade = "pass"
	GradeNeedsWork Grade = "needs-improvement"
	GradeFail      Grade = "fail"
)

// GradeFor maps a 0-100 score to its grade band.
func GradeFor(score float64) Grade {
	switch {
	case score >= 90:
		return GradeExcellent
	case score >= 80:
		return GradeGood
	case score >= 70:
		return GradePass
	case score >= 60:
		return GradeNeedsWork
	default:
		return GradeFail
	}
}

// TheoryEvaluation is the result of scoring a theory test.
type TheoryEvaluation struct {
	Score        float64                  `json:"score"` // 0-100, difficulty weighted
	CorrectCount int                      `json:"correct_count"`
	TotalCount   int                      `json:"total_count"`
	Accuracy     float64                  `json:"accuracy"` // percent, unweighted
	Topics       map[string]Breakdown     `json:"topic_breakdown"`
	Difficulties map[Difficulty]Breakdown `json:"difficulty_breakdown"`
	Grade        Grade                    `json:"grade"`
	Strengths    []string                 `json:"strengths"`
	Weaknesses   []string                 `json:"weaknesses"`
}

// Diagnosis is the learner's fault call for a practice scenario.
type Diagnosis struct {
	Submitted string `json:"student_diagnosis"`
	Expected  string `json:"correct_diagnosis"`
}

// Operation is one executed step of a practice session.
type Operation struct {
	Name      string    `json:"operation"`
	Correct   bool      `json:"is_correct"`
	Timestamp time.Time `json:"timestamp,omitzero"`
}

// PracticeSession is the raw payload of one hands-on troubleshooting run,
// produced upstream by the simulation layer.
type PracticeSession struct {
	ScenarioName    string      `json:"scenario_name"`
	ExpectedMinutes float64     `json:"expected_time_minutes"`
	Diagnosis       Diagnosis   `json:"diagnosis"`
	Operations      []Operation `json:"operations"`
	StartTime       time.Time   `json:"start_time,omitzero"`
	EndTime         time.Time   `json:"end_time,omitzero"`
	ExpertConsults  int         `json:"expert_consults"`
}

// PracticeEvaluation is the result of scoring a practice session.
type PracticeEvaluation struct {
	Score               float64 `json:"score"`                 // 0-100 composite
	DiagnosisScore      float64 `json:"diagnosis_score"`       // 0-100
	OperationScore      float64 `json:"operation_score"`       // 0-100
	TimeEfficiencyScore float64 `json:"time_efficiency_score"` // 0-100
	Grade               Grade   `json:"grade"`
	CompletionMinutes   float64 `json:"completion_time_minutes"`
	OperationAccuracy   float64 `json:"operation_accuracy"` // percent
	TotalOperations     int     `json:"total_operations"`
	CorrectOperations   int     `json:"correct_operations"`
	ExpertConsults      int     `json:"expert_consults"`
}

// ReadinessConfig sets the floors for the real-practice readiness signal.
// The floors keep one very strong sub-score from masking a failed one.
type ReadinessConfig struct {
	MinOverall    float64
	TheoryFloor   float64
	PracticeFloor float64
}

// DefaultReadiness matches the PRACTICE→COMPLETE gate.
func DefaultReadiness() ReadinessConfig {
	return ReadinessConfig{MinOverall: 80, TheoryFloor: 40, PracticeFloor: 80}
}

// OverallEvaluation combines theory and practice into the final result.
type OverallEvaluation struct {
	OverallScore         float64  `json:"overall_score"`
	TheoryScore          float64  `json:"theory_score"`
	PracticeScore        float64  `json:"practice_score"`
	Grade                Grade    `json:"grade"`
	Balanced             bool     `json:"is_balanced"`
	ScoreDifference      float64  `json:"score_difference"`
	Comments             []string `json:"comments"`
	ReadyForRealPractice bool     `json:"ready_for_real_practice"`
}

// EfficiencyRating buckets the learning-efficiency score.
type EfficiencyRating string

const (
	RatingHigh      EfficiencyRating = "high"
	RatingGood      EfficiencyRating = "good"
	RatingAverage   EfficiencyRating = "average"
	RatingNeedsWork EfficiencyRating = "needs-improvement"
	RatingNoData    EfficiencyRating = "no-data"
)

// Efficiency is the learning-efficiency metric set.
type Efficiency struct {
	Score               float64          `json:"efficiency_score"`
	ScorePerHour        float64          `json:"score_per_hour"`
	ScorePerInteraction float64          `json:"score_per_interaction"`
	StudyHours          float64          `json:"study_time_hours"`
	Rating              EfficiencyRating `json:"efficiency_rating"`
}
