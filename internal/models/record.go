package models

import "time"

// PersonalRecord is a user-curated best-ever fact. It is independent of the
// Exercise table and never derived from logged sets.
type PersonalRecord struct {
	ID           string  `gorm:"primaryKey;size:36" json:"id"`
	ExerciseName string  `gorm:"size:128;not null" json:"exerciseName"`
	Weight       float64 `json:"weight"`
	Reps         int     `json:"reps"`
	TimeSeconds  float64 `json:"timeSeconds"`
	Category     string  `gorm:"size:16;index" json:"category"`
	Order        int     `gorm:"column:sort_order;index" json:"order"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PersonalRecordInsert is the request shape for creating a PR.
type PersonalRecordInsert struct {
	ExerciseName string  `json:"exerciseName" binding:"required,max=128"`
	Weight       float64 `json:"weight" binding:"min=0"`
	Reps         int     `json:"reps" binding:"min=0"`
	TimeSeconds  float64 `json:"timeSeconds" binding:"min=0"`
	Category     string  `json:"category"`
	Order        int     `json:"order"`
}

// PersonalRecordUpdate carries a partial update; nil fields are left untouched.
type PersonalRecordUpdate struct {
	ExerciseName *string  `json:"exerciseName" binding:"omitempty,max=128"`
	Weight       *float64 `json:"weight" binding:"omitempty,min=0"`
	Reps         *int     `json:"reps" binding:"omitempty,min=0"`
	TimeSeconds  *float64 `json:"timeSeconds" binding:"omitempty,min=0"`
	Category     *string  `json:"category"`
	Order        *int     `json:"order"`
}

// Apply merges the non-nil fields onto r.
func (u *PersonalRecordUpdate) Apply(r *PersonalRecord) {
	if u.ExerciseName != nil {
		r.ExerciseName = *u.ExerciseName
	}
	if u.Weight != nil {
		r.Weight = *u.Weight
	}
	if u.Reps != nil {
		r.Reps = *u.Reps
	}
	if u.TimeSeconds != nil {
		r.TimeSeconds = *u.TimeSeconds
	}
	if u.Category != nil {
		r.Category = *u.Category
	}
	if u.Order != nil {
		r.Order = *u.Order
	}
}

// ChangesAudit is one immutable row in the exercise weight-change ledger.
type ChangesAudit struct {
	ID           string `gorm:"primaryKey;size:36" json:"id"`
	ExerciseID   string `gorm:"size:36;index" json:"exerciseId"`
	ExerciseName string `gorm:"size:128" json:"exerciseName"`
	Action       string `gorm:"size:16;not null" json:"action"`
	Source       string `gorm:"size:16;not null" json:"source"`

	PreviousWeight *float64 `json:"previousWeight"`
	NewWeight      *float64 `json:"newWeight"`
	WeightDelta    *float64 `json:"weightDelta"`
	WeightPct      *float64 `json:"weightPct"`

	CreatedAt time.Time `json:"createdAt"`
}

// PRChangesAudit is one immutable row in the personal-record change ledger.
// Field names which tracked value changed: weight, reps or time.
type PRChangesAudit struct {
	ID           string `gorm:"primaryKey;size:36" json:"id"`
	RecordID     string `gorm:"size:36;index" json:"recordId"`
	ExerciseName string `gorm:"size:128" json:"exerciseName"`
	Field        string `gorm:"size:16;not null" json:"field"`
	Action       string `gorm:"size:16;not null" json:"action"`
	Source       string `gorm:"size:16;not null" json:"source"`

	PreviousValue *float64 `json:"previousValue"`
	NewValue      *float64 `json:"newValue"`
	Delta         *float64 `json:"delta"`
	Pct           *float64 `json:"pct"`

	CreatedAt time.Time `json:"createdAt"`
}
