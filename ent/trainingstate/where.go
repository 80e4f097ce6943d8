// Code generated by ent, DO NOT EDIT.

package trainingstate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/yclin/fabtrainer/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldLTE(FieldID, id))
}

// StudentID applies equality check predicate on the "student_id" field. It's identical to StudentIDEQ.
func StudentID(v string) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldEQ(FieldStudentID, v))
}

// Stage applies equality check predicate on the "stage" field. It's identical to StageEQ.
func Stage(v string) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldEQ(FieldStage, v))
}

// TheoryScore applies equality check predicate on the "theory_score" field. It's identical to TheoryScoreEQ.
func TheoryScore(v float64) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldEQ(FieldTheoryScore, v))
}

// PracticeScore applies equality check predicate on the "practice_score" field. It's identical to PracticeScoreEQ.
func PracticeScore(v float64) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldEQ(FieldPracticeScore, v))
}

// TheoryCompleted applies equality check predicate on the "theory_completed" field. It's identical to TheoryCompletedEQ.
func TheoryCompleted(v bool) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldEQ(FieldTheoryCompleted, v))
}

// PracticeCompleted applies equality check predicate on the "practice_completed" field. It's identical to PracticeCompletedEQ.
func PracticeCompleted(v bool) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldEQ(FieldPracticeCompleted, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldEQ(FieldCreatedAt, v))
}

// LastUpdated applies equality check predicate on the "last_updated" field. It's identical to LastUpdatedEQ.
func LastUpdated(v time.Time) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldEQ(FieldLastUpdated, v))
}

// StudentIDEQ applies the EQ predicate on the "student_id" field.
func StudentIDEQ(v string) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldEQ(FieldStudentID, v))
}

// StudentIDNEQ applies the NEQ predicate on the "student_id" field.
func StudentIDNEQ(v string) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldNEQ(FieldStudentID, v))
}

// StudentIDIn applies the In predicate on the "student_id" field.
func StudentIDIn(vs ...string) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldIn(FieldStudentID, vs...))
}

// StudentIDNotIn applies the NotIn predicate on the "student_id" field.
func StudentIDNotIn(vs ...string) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldNotIn(FieldStudentID, vs...))
}

// StudentIDGT applies the GT predicate on the "student_id" field.
func StudentIDGT(v string) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldGT(FieldStudentID, v))
}

// StudentIDGTE applies the GTE predicate on the "student_id" field.
func StudentIDGTE(v string) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldGTE(FieldStudentID, v))
}

// StudentIDLT applies the LT predicate on the "student_id" field.
func StudentIDLT(v string) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldLT(FieldStudentID, v))
}

// StudentIDLTE applies the LTE predicate on the "student_id" field.
func StudentIDLTE(v string) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldLTE(FieldStudentID, v))
}

// StudentIDContains applies the Contains predicate on the "student_id" field.
func StudentIDContains(v string) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldContains(FieldStudentID, v))
}

// StudentIDHasPrefix applies the HasPrefix predicate on the "student_id" field.
func StudentIDHasPrefix(v string) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldHasPrefix(FieldStudentID, v))
}

// StudentIDHasSuffix applies the HasSuffix predicate on the "student_id" field.
func StudentIDHasSuffix(v string) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldHasSuffix(FieldStudentID, v))
}

// StudentIDEqualFold applies the EqualFold predicate on the "student_id" field.
func StudentIDEqualFold(v string) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldEqualFold(FieldStudentID, v))
}

// StudentIDContainsFold applies the ContainsFold predicate on the "student_id" field.
func StudentIDContainsFold(v string) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldContainsFold(FieldStudentID, v))
}

// StageEQ applies the EQ predicate on the "stage" field.
func StageEQ(v string) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldEQ(FieldStage, v))
}

// StageNEQ applies the NEQ predicate on the "stage" field.
func StageNEQ(v string) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldNEQ(FieldStage, v))
}

// StageIn applies the In predicate on the "stage" field.
func StageIn(vs ...string) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldIn(FieldStage, vs...))
}

// StageNotIn applies the NotIn predicate on the "stage" field.
func StageNotIn(vs ...string) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldNotIn(FieldStage, vs...))
}

// StageGT applies the GT predicate on the "stage" field.
func StageGT(v string) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldGT(FieldStage, v))
}

// StageGTE applies the GTE predicate on the "stage" field.
func StageGTE(v string) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldGTE(FieldStage, v))
}

// StageLT applies the LT predicate on the "stage" field.
func StageLT(v string) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldLT(FieldStage, v))
}

// StageLTE applies the LTE predicate on the "stage" field.
func StageLTE(v string) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldLTE(FieldStage, v))
}

// StageContains applies the Contains predicate on the "stage" field.
func StageContains(v string) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldContains(FieldStage, v))
}

// StageHasPrefix applies the HasPrefix predicate on the "stage" field.
func StageHasPrefix(v string) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldHasPrefix(FieldStage, v))
}

// StageHasSuffix applies the HasSuffix predicate on the "stage" field.
func StageHasSuffix(v string) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldHasSuffix(FieldStage, v))
}

// StageEqualFold applies the EqualFold predicate on the "stage" field.
func StageEqualFold(v string) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldEqualFold(FieldStage, v))
}

// StageContainsFold applies the ContainsFold predicate on the "stage" field.
func StageContainsFold(v string) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldContainsFold(FieldStage, v))
}

// TheoryScoreEQ applies the EQ predicate on the "theory_score" field.
func TheoryScoreEQ(v float64) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldEQ(FieldTheoryScore, v))
}

// TheoryScoreNEQ applies the NEQ predicate on the "theory_score" field.
func TheoryScoreNEQ(v float64) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldNEQ(FieldTheoryScore, v))
}

// TheoryScoreIn applies the In predicate on the "theory_score" field.
func TheoryScoreIn(vs ...float64) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldIn(FieldTheoryScore, vs...))
}

// TheoryScoreNotIn applies the NotIn predicate on the "theory_score" field.
func TheoryScoreNotIn(vs ...float64) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldNotIn(FieldTheoryScore, vs...))
}

// TheoryScoreGT applies the GT predicate on the "theory_score" field.
func TheoryScoreGT(v float64) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldGT(FieldTheoryScore, v))
}

// TheoryScoreGTE applies the GTE predicate on the "theory_score" field.
func TheoryScoreGTE(v float64) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldGTE(FieldTheoryScore, v))
}

// TheoryScoreLT applies the LT predicate on the "theory_score" field.
func TheoryScoreLT(v float64) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldLT(FieldTheoryScore, v))
}

// TheoryScoreLTE applies the LTE predicate on the "theory_score" field.
func TheoryScoreLTE(v float64) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldLTE(FieldTheoryScore, v))
}

// TheoryScoreIsNil applies the IsNil predicate on the "theory_score" field.
func TheoryScoreIsNil() predicate.TrainingState {
	return predicate.TrainingState(sql.FieldIsNull(FieldTheoryScore))
}

// TheoryScoreNotNil applies the NotNil predicate on the "theory_score" field.
func TheoryScoreNotNil() predicate.TrainingState {
	return predicate.TrainingState(sql.FieldNotNull(FieldTheoryScore))
}

// PracticeScoreEQ applies the EQ predicate on the "practice_score" field.
func PracticeScoreEQ(v float64) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldEQ(FieldPracticeScore, v))
}

// PracticeScoreNEQ applies the NEQ predicate on the "practice_score" field.
func PracticeScoreNEQ(v float64) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldNEQ(FieldPracticeScore, v))
}

// PracticeScoreIn applies the In predicate on the "practice_score" field.
func PracticeScoreIn(vs ...float64) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldIn(FieldPracticeScore, vs...))
}

// PracticeScoreNotIn applies the NotIn predicate on the "practice_score" field.
func PracticeScoreNotIn(vs ...float64) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldNotIn(FieldPracticeScore, vs...))
}

// PracticeScoreGT applies the GT predicate on the "practice_score" field.
func PracticeScoreGT(v float64) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldGT(FieldPracticeScore, v))
}

// PracticeScoreGTE applies the GTE predicate on the "practice_score" field.
func PracticeScoreGTE(v float64) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldGTE(FieldPracticeScore, v))
}

// PracticeScoreLT applies the LT predicate on the "practice_score" field.
func PracticeScoreLT(v float64) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldLT(FieldPracticeScore, v))
}

// PracticeScoreLTE applies the LTE predicate on the "practice_score" field.
func PracticeScoreLTE(v float64) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldLTE(FieldPracticeScore, v))
}

// PracticeScoreIsNil applies the IsNil predicate on the "practice_score" field.
func PracticeScoreIsNil() predicate.TrainingState {
	return predicate.TrainingState(sql.FieldIsNull(FieldPracticeScore))
}

// PracticeScoreNotNil applies the NotNil predicate on the "practice_score" field.
func PracticeScoreNotNil() predicate.TrainingState {
	return predicate.TrainingState(sql.FieldNotNull(FieldPracticeScore))
}

// TheoryCompletedEQ applies the EQ predicate on the "theory_completed" field.
func TheoryCompletedEQ(v bool) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldEQ(FieldTheoryCompleted, v))
}

// TheoryCompletedNEQ applies the NEQ predicate on the "theory_completed" field.
func TheoryCompletedNEQ(v bool) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldNEQ(FieldTheoryCompleted, v))
}

// PracticeCompletedEQ applies the EQ predicate on the "practice_completed" field.
func PracticeCompletedEQ(v bool) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldEQ(FieldPracticeCompleted, v))
}

// PracticeCompletedNEQ applies the NEQ predicate on the "practice_completed" field.
func PracticeCompletedNEQ(v bool) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldNEQ(FieldPracticeCompleted, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldLTE(FieldCreatedAt, v))
}

// LastUpdatedEQ applies the EQ predicate on the "last_updated" field.
func LastUpdatedEQ(v time.Time) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldEQ(FieldLastUpdated, v))
}

// LastUpdatedNEQ applies the NEQ predicate on the "last_updated" field.
func LastUpdatedNEQ(v time.Time) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldNEQ(FieldLastUpdated, v))
}

// LastUpdatedIn applies the In predicate on the "last_updated" field.
func LastUpdatedIn(vs ...time.Time) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldIn(FieldLastUpdated, vs...))
}

// LastUpdatedNotIn applies the NotIn predicate on the "last_updated" field.
func LastUpdatedNotIn(vs ...time.Time) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldNotIn(FieldLastUpdated, vs...))
}

// LastUpdatedGT applies the GT predicate on the "last_updated" field.
func LastUpdatedGT(v time.Time) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldGT(FieldLastUpdated, v))
}

// LastUpdatedGTE applies the GTE predicate on the "last_updated" field.
func LastUpdatedGTE(v time.Time) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldGTE(FieldLastUpdated, v))
}

// LastUpdatedLT applies the LT predicate on the "last_updated" field.
func LastUpdatedLT(v time.Time) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldLT(FieldLastUpdated, v))
}

// LastUpdatedLTE applies the LTE predicate on the "last_updated" field.
func LastUpdatedLTE(v time.Time) predicate.TrainingState {
	return predicate.TrainingState(sql.FieldLTE(FieldLastUpdated, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TrainingState) predicate.TrainingState {
	return predicate.TrainingState(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TrainingState) predicate.TrainingState {
	return predicate.TrainingState(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TrainingState) predicate.TrainingState {
	return predicate.TrainingState(sql.NotPredicates(p))
}
