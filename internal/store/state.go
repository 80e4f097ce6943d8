package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/yclin/fabtrainer/ent"
	"github.com/yclin/fabtrainer/ent/trainingstate"
)

// TrainingStateData is the persisted per-student stage state.
type TrainingStateData struct {
	StudentID         string
	Stage             string
	TheoryScore       *float64
	PracticeScore     *float64
	TheoryCompleted   bool
	PracticeCompleted bool
	CreatedAt         time.Time
	LastUpdated       time.Time
}

// StateRepo manages per-student training state. A student's state row is the
// only mutable record in the system, so every read-modify-write cycle must run
// inside Lock/unlock for that student.
type StateRepo interface {
	// Lock acquires the exclusive per-student lock and returns its release
	// function. Callers must release on every exit path.
	Lock(studentID string) (unlock func())

	// Load returns the student's state, or nil if none has been created yet.
	Load(ctx context.Context, studentID string) (*TrainingStateData, error)

	// Save upserts the student's state.
	Save(ctx context.Context, data *TrainingStateData) error
}

// studentLocks serializes state access per student across all stateRepo
// instances in the process. Cross-student operations are independent.
var studentLocks sync.Map // studentID -> *sync.Mutex

// stateRepo implements StateRepo using the ent client.
type stateRepo struct {
	client *ent.Client
}

func (r *stateRepo) Lock(studentID string) func() {
	mu, _ := studentLocks.LoadOrStore(studentID, &sync.Mutex{})
	m := mu.(*sync.Mutex)
	m.Lock()
	return m.Unlock
}

func (r *stateRepo) Load(ctx context.Context, studentID string) (*TrainingStateData, error) {
	st, err := r.client.TrainingState.Query().
		Where(trainingstate.StudentID(studentID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query training state: %w", err)
	}

	return &TrainingStateData{
		StudentID:         st.StudentID,
		Stage:             st.Stage,
		TheoryScore:       st.TheoryScore,
		PracticeScore:     st.PracticeScore,
		TheoryCompleted:   st.TheoryCompleted,
		PracticeCompleted: st.PracticeCompleted,
		CreatedAt:         st.CreatedAt,
		LastUpdated:       st.LastUpdated,
	}, nil
}

func (r *stateRepo) Save(ctx context.Context, data *TrainingStateData) error {
	existing, err := r.client.TrainingState.Query().
		Where(trainingstate.StudentID(data.StudentID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query training state: %w", err)
	}

	if existing == nil {
		_, err = r.client.TrainingState.Create().
			SetStudentID(data.StudentID).
			SetStage(data.Stage).
			SetNillableTheoryScore(data.TheoryScore).
			SetNillablePracticeScore(data.PracticeScore).
			SetTheoryCompleted(data.TheoryCompleted).
			SetPracticeCompleted(data.PracticeCompleted).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create training state: %w", err)
		}
		return nil
	}

	upd := existing.Update().
		SetStage(data.Stage).
		SetTheoryCompleted(data.TheoryCompleted).
		SetPracticeCompleted(data.PracticeCompleted).
		SetLastUpdated(time.Now())

	if data.TheoryScore != nil {
		upd = upd.SetTheoryScore(*data.TheoryScore)
	} else {
		upd = upd.ClearTheoryScore()
	}
	if data.PracticeScore != nil {
		upd = upd.SetPracticeScore(*data.PracticeScore)
	} else {
		upd = upd.ClearPracticeScore()
	}

	if _, err := upd.Save(ctx); err != nil {
		return fmt.Errorf("update training state: %w", err)
	}
	return nil
}
