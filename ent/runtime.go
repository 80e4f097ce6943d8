// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/yclin/fabtrainer/ent/evaluationevent"
	"github.com/yclin/fabtrainer/ent/interactionevent"
	"github.com/yclin/fabtrainer/ent/schema"
	"github.com/yclin/fabtrainer/ent/statssnapshot"
	"github.com/yclin/fabtrainer/ent/trainingstate"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	evaluationeventMixin := schema.EvaluationEvent{}.Mixin()
	evaluationeventMixinFields0 := evaluationeventMixin[0].Fields()
	_ = evaluationeventMixinFields0
	evaluationeventFields := schema.EvaluationEvent{}.Fields()
	_ = evaluationeventFields
	// evaluationeventDescTimestamp is the schema descriptor for timestamp field.
	evaluationeventDescTimestamp := evaluationeventMixinFields0[1].Descriptor()
	// evaluationevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	evaluationevent.DefaultTimestamp = evaluationeventDescTimestamp.Default.(func() time.Time)
	// evaluationeventDescStudentID is the schema descriptor for student_id field.
	evaluationeventDescStudentID := evaluationeventFields[0].Descriptor()
	// evaluationevent.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	evaluationevent.StudentIDValidator = evaluationeventDescStudentID.Validators[0].(func(string) error)
	// evaluationeventDescKind is the schema descriptor for kind field.
	evaluationeventDescKind := evaluationeventFields[1].Descriptor()
	// evaluationevent.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	evaluationevent.KindValidator = evaluationeventDescKind.Validators[0].(func(string) error)
	// evaluationeventDescTheoryScore is the schema descriptor for theory_score field.
	evaluationeventDescTheoryScore := evaluationeventFields[2].Descriptor()
	// evaluationevent.DefaultTheoryScore holds the default value on creation for the theory_score field.
	evaluationevent.DefaultTheoryScore = evaluationeventDescTheoryScore.Default.(float64)
	// evaluationeventDescPracticeScore is the schema descriptor for practice_score field.
	evaluationeventDescPracticeScore := evaluationeventFields[3].Descriptor()
	// evaluationevent.DefaultPracticeScore holds the default value on creation for the practice_score field.
	evaluationevent.DefaultPracticeScore = evaluationeventDescPracticeScore.Default.(float64)
	// evaluationeventDescOverallScore is the schema descriptor for overall_score field.
	evaluationeventDescOverallScore := evaluationeventFields[4].Descriptor()
	// evaluationevent.DefaultOverallScore holds the default value on creation for the overall_score field.
	evaluationevent.DefaultOverallScore = evaluationeventDescOverallScore.Default.(float64)
	// evaluationeventDescGrade is the schema descriptor for grade field.
	evaluationeventDescGrade := evaluationeventFields[5].Descriptor()
	// evaluationevent.GradeValidator is a validator for the "grade" field. It is called by the builders before save.
	evaluationevent.GradeValidator = evaluationeventDescGrade.Validators[0].(func(string) error)
	interactioneventMixin := schema.InteractionEvent{}.Mixin()
	interactioneventMixinFields0 := interactioneventMixin[0].Fields()
	_ = interactioneventMixinFields0
	interactioneventFields := schema.InteractionEvent{}.Fields()
	_ = interactioneventFields
	// interactioneventDescTimestamp is the schema descriptor for timestamp field.
	interactioneventDescTimestamp := interactioneventMixinFields0[1].Descriptor()
	// interactionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	interactionevent.DefaultTimestamp = interactioneventDescTimestamp.Default.(func() time.Time)
	// interactioneventDescRecordID is the schema descriptor for record_id field.
	interactioneventDescRecordID := interactioneventFields[0].Descriptor()
	// interactionevent.RecordIDValidator is a validator for the "record_id" field. It is called by the builders before save.
	interactionevent.RecordIDValidator = interactioneventDescRecordID.Validators[0].(func(string) error)
	// interactioneventDescStudentID is the schema descriptor for student_id field.
	interactioneventDescStudentID := interactioneventFields[1].Descriptor()
	// interactionevent.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	interactionevent.StudentIDValidator = interactioneventDescStudentID.Validators[0].(func(string) error)
	// interactioneventDescKind is the schema descriptor for kind field.
	interactioneventDescKind := interactioneventFields[2].Descriptor()
	// interactionevent.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	interactionevent.KindValidator = interactioneventDescKind.Validators[0].(func(string) error)
	statssnapshotFields := schema.StatsSnapshot{}.Fields()
	_ = statssnapshotFields
	// statssnapshotDescStudentID is the schema descriptor for student_id field.
	statssnapshotDescStudentID := statssnapshotFields[0].Descriptor()
	// statssnapshot.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	statssnapshot.StudentIDValidator = statssnapshotDescStudentID.Validators[0].(func(string) error)
	// statssnapshotDescTimestamp is the schema descriptor for timestamp field.
	statssnapshotDescTimestamp := statssnapshotFields[2].Descriptor()
	// statssnapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	statssnapshot.DefaultTimestamp = statssnapshotDescTimestamp.Default.(func() time.Time)
	trainingstateFields := schema.TrainingState{}.Fields()
	_ = trainingstateFields
	// trainingstateDescStudentID is the schema descriptor for student_id field.
	trainingstateDescStudentID := trainingstateFields[0].Descriptor()
	// trainingstate.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	trainingstate.StudentIDValidator = trainingstateDescStudentID.Validators[0].(func(string) error)
	// trainingstateDescStage is the schema descriptor for stage field.
	trainingstateDescStage := trainingstateFields[1].Descriptor()
	// trainingstate.DefaultStage holds the default value on creation for the stage field.
	trainingstate.DefaultStage = trainingstateDescStage.Default.(string)
	// trainingstateDescTheoryCompleted is the schema descriptor for theory_completed field.
	trainingstateDescTheoryCompleted := trainingstateFields[4].Descriptor()
	// trainingstate.DefaultTheoryCompleted holds the default value on creation for the theory_completed field.
	trainingstate.DefaultTheoryCompleted = trainingstateDescTheoryCompleted.Default.(bool)
	// trainingstateDescPracticeCompleted is the schema descriptor for practice_completed field.
	trainingstateDescPracticeCompleted := trainingstateFields[5].Descriptor()
	// trainingstate.DefaultPracticeCompleted holds the default value on creation for the practice_completed field.
	trainingstate.DefaultPracticeCompleted = trainingstateDescPracticeCompleted.Default.(bool)
	// trainingstateDescCreatedAt is the schema descriptor for created_at field.
	trainingstateDescCreatedAt := trainingstateFields[6].Descriptor()
	// trainingstate.DefaultCreatedAt holds the default value on creation for the created_at field.
	trainingstate.DefaultCreatedAt = trainingstateDescCreatedAt.Default.(func() time.Time)
	// trainingstateDescLastUpdated is the schema descriptor for last_updated field.
	trainingstateDescLastUpdated := trainingstateFields[7].Descriptor()
	// trainingstate.DefaultLastUpdated holds the default value on creation for the last_updated field.
	trainingstate.DefaultLastUpdated = trainingstateDescLastUpdated.Default.(func() time.Time)
	// trainingstate.UpdateDefaultLastUpdated holds the default value on update for the last_updated field.
	trainingstate.UpdateDefaultLastUpdated = trainingstateDescLastUpdated.UpdateDefault.(func() time.Time)
}
