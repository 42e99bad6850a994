// Package audit computes the immutable change-ledger rows written as a side
// effect of weight, exercise and personal-record mutations. Rows are built
// here and inserted by the caller; nothing in this package ever updates or
// deletes one.
package audit

import "github.com/avisbal23/LiftWithAlex-sub000/internal/models"

func ptr(v float64) *float64 { return &v }

// pctChange returns the percentage change from prev to next, or nil when the
// previous value is not positive. A zero or negative baseline has no
// meaningful percentage; returning 0 or +Inf would both be wrong.
func pctChange(prev, next float64) *float64 {
	if prev <= 0 {
		return nil
	}
	return ptr((next - prev) / prev * 100)
}

// WeightCreated builds the ledger row for a brand-new weight entry. Only the
// new values are populated.
func WeightCreated(e *models.WeightEntry, action, source string) *models.WeightAudit {
	return &models.WeightAudit{
		WeightEntryID: e.ID,
		Action:        action,
		Source:        source,
		NewWeight:     ptr(e.Weight),
		NewBodyFat:    ptr(e.BodyFatPct),
		NewMuscleMass: ptr(e.MuscleMass),
		NewBMI:        ptr(e.BMI),
	}
}

// WeightUpdated builds the ledger row for an update, covering the tracked
// fields (weight, body fat, muscle mass, BMI) that actually changed. A no-op
// update returns nil: no row is written when nothing moved.
func WeightUpdated(prev, next *models.WeightEntry, source string) *models.WeightAudit {
	a := &models.WeightAudit{
		WeightEntryID: next.ID,
		Action:        models.AuditActionUpdate,
		Source:        source,
	}
	changed := false

	if prev.Weight != next.Weight {
		a.PreviousWeight = ptr(prev.Weight)
		a.NewWeight = ptr(next.Weight)
		a.WeightDelta = ptr(next.Weight - prev.Weight)
		a.WeightPct = pctChange(prev.Weight, next.Weight)
		changed = true
	}
	if prev.BodyFatPct != next.BodyFatPct {
		a.PreviousBodyFat = ptr(prev.BodyFatPct)
		a.NewBodyFat = ptr(next.BodyFatPct)
		a.BodyFatDelta = ptr(next.BodyFatPct - prev.BodyFatPct)
		a.BodyFatPct = pctChange(prev.BodyFatPct, next.BodyFatPct)
		changed = true
	}
	if prev.MuscleMass != next.MuscleMass {
		a.PreviousMuscleMass = ptr(prev.MuscleMass)
		a.NewMuscleMass = ptr(next.MuscleMass)
		a.MuscleMassDelta = ptr(next.MuscleMass - prev.MuscleMass)
		a.MuscleMassPct = pctChange(prev.MuscleMass, next.MuscleMass)
		changed = true
	}
	if prev.BMI != next.BMI {
		a.PreviousBMI = ptr(prev.BMI)
		a.NewBMI = ptr(next.BMI)
		a.BMIDelta = ptr(next.BMI - prev.BMI)
		a.BMIPct = pctChange(prev.BMI, next.BMI)
		changed = true
	}

	if !changed {
		return nil
	}
	return a
}

// WeightDeleted builds the ledger row for a deletion. Only the previous
// values are populated; there is no "new" state to record.
func WeightDeleted(prev *models.WeightEntry, source string) *models.WeightAudit {
	return &models.WeightAudit{
		WeightEntryID:      prev.ID,
		Action:             models.AuditActionDelete,
		Source:             source,
		PreviousWeight:     ptr(prev.Weight),
		PreviousBodyFat:    ptr(prev.BodyFatPct),
		PreviousMuscleMass: ptr(prev.MuscleMass),
		PreviousBMI:        ptr(prev.BMI),
	}
}

// ExerciseUpdated builds the ledger row for an exercise whose weight changed.
// Returns nil when the weight is unchanged.
func ExerciseUpdated(prev, next *models.Exercise, source string) *models.ChangesAudit {
	if prev.Weight == next.Weight {
		return nil
	}
	return &models.ChangesAudit{
		ExerciseID:     next.ID,
		ExerciseName:   next.Name,
		Action:         models.AuditActionUpdate,
		Source:         source,
		PreviousWeight: ptr(prev.Weight),
		NewWeight:      ptr(next.Weight),
		WeightDelta:    ptr(next.Weight - prev.Weight),
		WeightPct:      pctChange(prev.Weight, next.Weight),
	}
}

// ExerciseDeleted builds the delete row for an exercise.
func ExerciseDeleted(prev *models.Exercise, source string) *models.ChangesAudit {
	return &models.ChangesAudit{
		ExerciseID:     prev.ID,
		ExerciseName:   prev.Name,
		Action:         models.AuditActionDelete,
		Source:         source,
		PreviousWeight: ptr(prev.Weight),
	}
}

// ExerciseImported builds the ledger row for a bulk-imported exercise, but
// only when its weight exceeds the prior maximum recorded under the same
// name. Decreases are deliberately not flagged on the import path; manual
// edits flag any change. That asymmetry is long-standing behavior and is kept
// for compatibility.
func ExerciseImported(e *models.Exercise, priorMax float64, hadPrior bool) *models.ChangesAudit {
	if !hadPrior || e.Weight <= priorMax {
		return nil
	}
	return &models.ChangesAudit{
		ExerciseID:     e.ID,
		ExerciseName:   e.Name,
		Action:         models.AuditActionImport,
		Source:         models.AuditSourceCSV,
		PreviousWeight: ptr(priorMax),
		NewWeight:      ptr(e.Weight),
		WeightDelta:    ptr(e.Weight - priorMax),
		WeightPct:      pctChange(priorMax, e.Weight),
	}
}

// PRUpdated builds one ledger row per tracked PR field (weight, reps, time)
// that changed. A no-op update returns an empty slice.
func PRUpdated(prev, next *models.PersonalRecord, source string) []*models.PRChangesAudit {
	var out []*models.PRChangesAudit

	add := func(field string, p, n float64) {
		if p == n {
			return
		}
		out = append(out, &models.PRChangesAudit{
			RecordID:      next.ID,
			ExerciseName:  next.ExerciseName,
			Field:         field,
			Action:        models.AuditActionUpdate,
			Source:        source,
			PreviousValue: ptr(p),
			NewValue:      ptr(n),
			Delta:         ptr(n - p),
			Pct:           pctChange(p, n),
		})
	}

	add("weight", prev.Weight, next.Weight)
	add("reps", float64(prev.Reps), float64(next.Reps))
	add("time", prev.TimeSeconds, next.TimeSeconds)
	return out
}

// PRDeleted builds the delete rows for a PR, one per populated tracked field.
func PRDeleted(prev *models.PersonalRecord, source string) []*models.PRChangesAudit {
	var out []*models.PRChangesAudit

	add := func(field string, p float64) {
		if p == 0 {
			return
		}
		out = append(out, &models.PRChangesAudit{
			RecordID:      prev.ID,
			ExerciseName:  prev.ExerciseName,
			Field:         field,
			Action:        models.AuditActionDelete,
			Source:        source,
			PreviousValue: ptr(p),
		})
	}

	add("weight", prev.Weight)
	add("reps", float64(prev.Reps))
	add("time", prev.TimeSeconds)
	return out
}
