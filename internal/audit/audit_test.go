package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avisbal23/LiftWithAlex-sub000/internal/models"
)

func TestWeightUpdated(t *testing.T) {
	prev := &models.WeightEntry{ID: "w1", Weight: 160, BodyFatPct: 20, MuscleMass: 130, BMI: 24}
	next := &models.WeightEntry{ID: "w1", Weight: 165, BodyFatPct: 20, MuscleMass: 130, BMI: 24}

	a := WeightUpdated(prev, next, models.AuditSourceManual)
	require.NotNil(t, a)
	assert.Equal(t, "w1", a.WeightEntryID)
	assert.Equal(t, models.AuditActionUpdate, a.Action)

	require.NotNil(t, a.WeightDelta)
	assert.Equal(t, 5.0, *a.WeightDelta)
	require.NotNil(t, a.WeightPct)
	assert.InDelta(t, 3.125, *a.WeightPct, 1e-9)

	// untouched fields stay nil
	assert.Nil(t, a.PreviousBodyFat)
	assert.Nil(t, a.BMIDelta)
}

func TestWeightUpdatedNoChange(t *testing.T) {
	e := &models.WeightEntry{ID: "w1", Weight: 160, BodyFatPct: 20}
	assert.Nil(t, WeightUpdated(e, e, models.AuditSourceManual))
}

func TestWeightUpdatedZeroBaseline(t *testing.T) {
	prev := &models.WeightEntry{ID: "w1", Weight: 0}
	next := &models.WeightEntry{ID: "w1", Weight: 180}

	a := WeightUpdated(prev, next, models.AuditSourceManual)
	require.NotNil(t, a)
	require.NotNil(t, a.WeightDelta)
	assert.Equal(t, 180.0, *a.WeightDelta)
	assert.Nil(t, a.WeightPct, "percentage has no meaning against a zero baseline")
}

func TestWeightDeleted(t *testing.T) {
	prev := &models.WeightEntry{ID: "w1", Weight: 160, BodyFatPct: 20, MuscleMass: 130, BMI: 24}
	a := WeightDeleted(prev, models.AuditSourceManual)

	assert.Equal(t, models.AuditActionDelete, a.Action)
	require.NotNil(t, a.PreviousWeight)
	assert.Equal(t, 160.0, *a.PreviousWeight)
	assert.Nil(t, a.NewWeight)
}

func TestExerciseUpdated(t *testing.T) {
	prev := &models.Exercise{ID: "e1", Name: "Bench Press", Weight: 135}
	next := &models.Exercise{ID: "e1", Name: "Bench Press", Weight: 140}

	a := ExerciseUpdated(prev, next, models.AuditSourceManual)
	require.NotNil(t, a)
	assert.Equal(t, "Bench Press", a.ExerciseName)
	require.NotNil(t, a.WeightDelta)
	assert.Equal(t, 5.0, *a.WeightDelta)

	assert.Nil(t, ExerciseUpdated(next, next, models.AuditSourceManual))
}

func TestExerciseImported(t *testing.T) {
	e := &models.Exercise{ID: "e1", Name: "Bench Press", Weight: 145}

	// increase over prior max gets flagged
	a := ExerciseImported(e, 140, true)
	require.NotNil(t, a)
	assert.Equal(t, models.AuditActionImport, a.Action)
	require.NotNil(t, a.WeightDelta)
	assert.Equal(t, 5.0, *a.WeightDelta)

	// equal or lower weight is not flagged on the import path
	assert.Nil(t, ExerciseImported(e, 145, true))
	assert.Nil(t, ExerciseImported(e, 150, true))

	// a name never seen before has no baseline to compare against
	assert.Nil(t, ExerciseImported(e, 0, false))
}

func TestPRUpdated(t *testing.T) {
	prev := &models.PersonalRecord{ID: "r1", ExerciseName: "Deadlift", Weight: 405, Reps: 1, TimeSeconds: 0}
	next := &models.PersonalRecord{ID: "r1", ExerciseName: "Deadlift", Weight: 415, Reps: 2, TimeSeconds: 0}

	rows := PRUpdated(prev, next, models.AuditSourceManual)
	require.Len(t, rows, 2)

	byField := map[string]*models.PRChangesAudit{}
	for _, r := range rows {
		byField[r.Field] = r
	}
	require.Contains(t, byField, "weight")
	require.Contains(t, byField, "reps")
	assert.Equal(t, 10.0, *byField["weight"].Delta)
	assert.Equal(t, 1.0, *byField["reps"].Delta)

	assert.Empty(t, PRUpdated(next, next, models.AuditSourceManual))
}

func TestPRDeleted(t *testing.T) {
	prev := &models.PersonalRecord{ID: "r1", ExerciseName: "Plank", Weight: 0, Reps: 0, TimeSeconds: 180}
	rows := PRDeleted(prev, models.AuditSourceManual)

	require.Len(t, rows, 1, "only populated fields get a delete row")
	assert.Equal(t, "time", rows[0].Field)
	assert.Equal(t, 180.0, *rows[0].PreviousValue)
	assert.Nil(t, rows[0].NewValue)
}
