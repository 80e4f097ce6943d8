// Code generated by ent, DO NOT EDIT.

package evaluationevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/yclin/fabtrainer/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEQ(FieldTimestamp, v))
}

// StudentID applies equality check predicate on the "student_id" field. It's identical to StudentIDEQ.
func StudentID(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEQ(FieldStudentID, v))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEQ(FieldKind, v))
}

// TheoryScore applies equality check predicate on the "theory_score" field. It's identical to TheoryScoreEQ.
func TheoryScore(v float64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEQ(FieldTheoryScore, v))
}

// PracticeScore applies equality check predicate on the "practice_score" field. It's identical to PracticeScoreEQ.
func PracticeScore(v float64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEQ(FieldPracticeScore, v))
}

// OverallScore applies equality check predicate on the "overall_score" field. It's identical to OverallScoreEQ.
func OverallScore(v float64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEQ(FieldOverallScore, v))
}

// Grade applies equality check predicate on the "grade" field. It's identical to GradeEQ.
func Grade(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEQ(FieldGrade, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldLTE(FieldTimestamp, v))
}

// StudentIDEQ applies the EQ predicate on the "student_id" field.
func StudentIDEQ(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEQ(FieldStudentID, v))
}

// StudentIDNEQ applies the NEQ predicate on the "student_id" field.
func StudentIDNEQ(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldNEQ(FieldStudentID, v))
}

// StudentIDIn applies the In predicate on the "student_id" field.
func StudentIDIn(vs ...string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldIn(FieldStudentID, vs...))
}

// StudentIDNotIn applies the NotIn predicate on the "student_id" field.
func StudentIDNotIn(vs ...string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldNotIn(FieldStudentID, vs...))
}

// StudentIDGT applies the GT predicate on the "student_id" field.
func StudentIDGT(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldGT(FieldStudentID, v))
}

// StudentIDGTE applies the GTE predicate on the "student_id" field.
func StudentIDGTE(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldGTE(FieldStudentID, v))
}

// StudentIDLT applies the LT predicate on the "student_id" field.
func StudentIDLT(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldLT(FieldStudentID, v))
}

// StudentIDLTE applies the LTE predicate on the "student_id" field.
func StudentIDLTE(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldLTE(FieldStudentID, v))
}

// StudentIDContains applies the Contains predicate on the "student_id" field.
func StudentIDContains(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldContains(FieldStudentID, v))
}

// StudentIDHasPrefix applies the HasPrefix predicate on the "student_id" field.
func StudentIDHasPrefix(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldHasPrefix(FieldStudentID, v))
}

// StudentIDHasSuffix applies the HasSuffix predicate on the "student_id" field.
func StudentIDHasSuffix(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldHasSuffix(FieldStudentID, v))
}

// StudentIDEqualFold applies the EqualFold predicate on the "student_id" field.
func StudentIDEqualFold(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEqualFold(FieldStudentID, v))
}

// StudentIDContainsFold applies the ContainsFold predicate on the "student_id" field.
func StudentIDContainsFold(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldContainsFold(FieldStudentID, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldHasSuffix(FieldKind, v))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldContainsFold(FieldKind, v))
}

// TheoryScoreEQ applies the EQ predicate on the "theory_score" field.
func TheoryScoreEQ(v float64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEQ(FieldTheoryScore, v))
}

// TheoryScoreNEQ applies the NEQ predicate on the "theory_score" field.
func TheoryScoreNEQ(v float64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldNEQ(FieldTheoryScore, v))
}

// TheoryScoreIn applies the In predicate on the "theory_score" field.
func TheoryScoreIn(vs ...float64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldIn(FieldTheoryScore, vs...))
}

// TheoryScoreNotIn applies the NotIn predicate on the "theory_score" field.
func TheoryScoreNotIn(vs ...float64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldNotIn(FieldTheoryScore, vs...))
}

// TheoryScoreGT applies the GT predicate on the "theory_score" field.
func TheoryScoreGT(v float64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldGT(FieldTheoryScore, v))
}

// TheoryScoreGTE applies the GTE predicate on the "theory_score" field.
func TheoryScoreGTE(v float64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldGTE(FieldTheoryScore, v))
}

// TheoryScoreLT applies the LT predicate on the "theory_score" field.
func TheoryScoreLT(v float64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldLT(FieldTheoryScore, v))
}

// TheoryScoreLTE applies the LTE predicate on the "theory_score" field.
func TheoryScoreLTE(v float64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldLTE(FieldTheoryScore, v))
}

// PracticeScoreEQ applies the EQ predicate on the "practice_score" field.
func PracticeScoreEQ(v float64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEQ(FieldPracticeScore, v))
}

// PracticeScoreNEQ applies the NEQ predicate on the "practice_score" field.
func PracticeScoreNEQ(v float64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldNEQ(FieldPracticeScore, v))
}

// PracticeScoreIn applies the In predicate on the "practice_score" field.
func PracticeScoreIn(vs ...float64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldIn(FieldPracticeScore, vs...))
}

// PracticeScoreNotIn applies the NotIn predicate on the "practice_score" field.
func PracticeScoreNotIn(vs ...float64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldNotIn(FieldPracticeScore, vs...))
}

// PracticeScoreGT applies the GT predicate on the "practice_score" field.
func PracticeScoreGT(v float64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldGT(FieldPracticeScore, v))
}

// PracticeScoreGTE applies the GTE predicate on the "practice_score" field.
func PracticeScoreGTE(v float64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldGTE(FieldPracticeScore, v))
}

// PracticeScoreLT applies the LT predicate on the "practice_score" field.
func PracticeScoreLT(v float64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldLT(FieldPracticeScore, v))
}

// PracticeScoreLTE applies the LTE predicate on the "practice_score" field.
func PracticeScoreLTE(v float64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldLTE(FieldPracticeScore, v))
}

// OverallScoreEQ applies the EQ predicate on the "overall_score" field.
func OverallScoreEQ(v float64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEQ(FieldOverallScore, v))
}

// OverallScoreNEQ applies the NEQ predicate on the "overall_score" field.
func OverallScoreNEQ(v float64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldNEQ(FieldOverallScore, v))
}

// OverallScoreIn applies the In predicate on the "overall_score" field.
func OverallScoreIn(vs ...float64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldIn(FieldOverallScore, vs...))
}

// OverallScoreNotIn applies the NotIn predicate on the "overall_score" field.
func OverallScoreNotIn(vs ...float64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldNotIn(FieldOverallScore, vs...))
}

// OverallScoreGT applies the GT predicate on the "overall_score" field.
func OverallScoreGT(v float64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldGT(FieldOverallScore, v))
}

// OverallScoreGTE applies the GTE predicate on the "overall_score" field.
func OverallScoreGTE(v float64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldGTE(FieldOverallScore, v))
}

// OverallScoreLT applies the LT predicate on the "overall_score" field.
func OverallScoreLT(v float64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldLT(FieldOverallScore, v))
}

// OverallScoreLTE applies the LTE predicate on the "overall_score" field.
func OverallScoreLTE(v float64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldLTE(FieldOverallScore, v))
}

// GradeEQ applies the EQ predicate on the "grade" field.
func GradeEQ(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEQ(FieldGrade, v))
}

// GradeNEQ applies the NEQ predicate on the "grade" field.
func GradeNEQ(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldNEQ(FieldGrade, v))
}

// GradeIn applies the In predicate on the "grade" field.
func GradeIn(vs ...string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldIn(FieldGrade, vs...))
}

// GradeNotIn applies the NotIn predicate on the "grade" field.
func GradeNotIn(vs ...string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldNotIn(FieldGrade, vs...))
}

// GradeGT applies the GT predicate on the "grade" field.
func GradeGT(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldGT(FieldGrade, v))
}

// GradeGTE applies the GTE predicate on the "grade" field.
func GradeGTE(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldGTE(FieldGrade, v))
}

// GradeLT applies the LT predicate on the "grade" field.
func GradeLT(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldLT(FieldGrade, v))
}

// GradeLTE applies the LTE predicate on the "grade" field.
func GradeLTE(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldLTE(FieldGrade, v))
}

// GradeContains applies the Contains predicate on the "grade" field.
func GradeContains(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldContains(FieldGrade, v))
}

// GradeHasPrefix applies the HasPrefix predicate on the "grade" field.
func GradeHasPrefix(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldHasPrefix(FieldGrade, v))
}

// GradeHasSuffix applies the HasSuffix predicate on the "grade" field.
func GradeHasSuffix(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldHasSuffix(FieldGrade, v))
}

// GradeEqualFold applies the EqualFold predicate on the "grade" field.
func GradeEqualFold(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEqualFold(FieldGrade, v))
}

// GradeContainsFold applies the ContainsFold predicate on the "grade" field.
func GradeContainsFold(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldContainsFold(FieldGrade, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EvaluationEvent) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EvaluationEvent) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EvaluationEvent) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.NotPredicates(p))
}
