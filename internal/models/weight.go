package models

import "time"

// WeightEntry is one body-composition snapshot, matching the fields a
// RENPHO scale exports.
type WeightEntry struct {
	ID   string    `gorm:"primaryKey;size:36" json:"id"`
	Date time.Time `gorm:"index;not null" json:"date"`

	Weight             float64 `json:"weight"`
	BMI                float64 `gorm:"column:bmi" json:"bmi"`
	BodyFatPct         float64 `json:"bodyFatPct"`
	FatFreeWeight      float64 `json:"fatFreeWeight"`
	SubcutaneousFatPct float64 `json:"subcutaneousFatPct"`
	VisceralFat        float64 `json:"visceralFat"`
	BodyWaterPct       float64 `json:"bodyWaterPct"`
	SkeletalMusclePct  float64 `json:"skeletalMusclePct"`
	MuscleMass         float64 `json:"muscleMass"`
	BoneMass           float64 `json:"boneMass"`
	ProteinPct         float64 `json:"proteinPct"`
	BMR                float64 `gorm:"column:bmr" json:"bmr"`
	MetabolicAge       float64 `json:"metabolicAge"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// WeightEntryInsert is the request shape for recording a weigh-in.
type WeightEntryInsert struct {
	Date   string  `json:"date" binding:"required"`
	Weight float64 `json:"weight" binding:"required,gt=0"`

	BMI                float64 `json:"bmi"`
	BodyFatPct         float64 `json:"bodyFatPct"`
	FatFreeWeight      float64 `json:"fatFreeWeight"`
	SubcutaneousFatPct float64 `json:"subcutaneousFatPct"`
	VisceralFat        float64 `json:"visceralFat"`
	BodyWaterPct       float64 `json:"bodyWaterPct"`
	SkeletalMusclePct  float64 `json:"skeletalMusclePct"`
	MuscleMass         float64 `json:"muscleMass"`
	BoneMass           float64 `json:"boneMass"`
	ProteinPct         float64 `json:"proteinPct"`
	BMR                float64 `json:"bmr"`
	MetabolicAge       float64 `json:"metabolicAge"`
}

// WeightEntryUpdate carries a partial update; nil fields are left untouched.
type WeightEntryUpdate struct {
	Date   *string  `json:"date"`
	Weight *float64 `json:"weight" binding:"omitempty,gt=0"`

	// ParsedDate is set by the handler once Date passes normalization.
	ParsedDate *time.Time `json:"-"`

	BMI                *float64 `json:"bmi"`
	BodyFatPct         *float64 `json:"bodyFatPct"`
	FatFreeWeight      *float64 `json:"fatFreeWeight"`
	SubcutaneousFatPct *float64 `json:"subcutaneousFatPct"`
	VisceralFat        *float64 `json:"visceralFat"`
	BodyWaterPct       *float64 `json:"bodyWaterPct"`
	SkeletalMusclePct  *float64 `json:"skeletalMusclePct"`
	MuscleMass         *float64 `json:"muscleMass"`
	BoneMass           *float64 `json:"boneMass"`
	ProteinPct         *float64 `json:"proteinPct"`
	BMR                *float64 `json:"bmr"`
	MetabolicAge       *float64 `json:"metabolicAge"`
}

// Apply merges the non-nil fields onto e.
func (u *WeightEntryUpdate) Apply(e *WeightEntry) {
	if u.ParsedDate != nil {
		e.Date = *u.ParsedDate
	}
	if u.Weight != nil {
		e.Weight = *u.Weight
	}
	if u.BMI != nil {
		e.BMI = *u.BMI
	}
	if u.BodyFatPct != nil {
		e.BodyFatPct = *u.BodyFatPct
	}
	if u.FatFreeWeight != nil {
		e.FatFreeWeight = *u.FatFreeWeight
	}
	if u.SubcutaneousFatPct != nil {
		e.SubcutaneousFatPct = *u.SubcutaneousFatPct
	}
	if u.VisceralFat != nil {
		e.VisceralFat = *u.VisceralFat
	}
	if u.BodyWaterPct != nil {
		e.BodyWaterPct = *u.BodyWaterPct
	}
	if u.SkeletalMusclePct != nil {
		e.SkeletalMusclePct = *u.SkeletalMusclePct
	}
	if u.MuscleMass != nil {
		e.MuscleMass = *u.MuscleMass
	}
	if u.BoneMass != nil {
		e.BoneMass = *u.BoneMass
	}
	if u.ProteinPct != nil {
		e.ProteinPct = *u.ProteinPct
	}
	if u.BMR != nil {
		e.BMR = *u.BMR
	}
	if u.MetabolicAge != nil {
		e.MetabolicAge = *u.MetabolicAge
	}
}

// Audit actions and sources.
const (
	AuditActionCreate = "create"
	AuditActionUpdate = "update"
	AuditActionDelete = "delete"
	AuditActionImport = "import"

	AuditSourceManual = "manual"
	AuditSourceCSV    = "csv"
)

// WeightAudit is one immutable row in the weight-change ledger. Rows are
// only ever inserted, never updated or deleted.
type WeightAudit struct {
	ID            string `gorm:"primaryKey;size:36" json:"id"`
	WeightEntryID string `gorm:"size:36;index" json:"weightEntryId"`
	Action        string `gorm:"size:16;not null" json:"action"`
	Source        string `gorm:"size:16;not null" json:"source"`

	PreviousWeight *float64 `json:"previousWeight"`
	NewWeight      *float64 `json:"newWeight"`
	WeightDelta    *float64 `json:"weightDelta"`
	WeightPct      *float64 `json:"weightPct"`

	PreviousBodyFat *float64 `json:"previousBodyFat"`
	NewBodyFat      *float64 `json:"newBodyFat"`
	BodyFatDelta    *float64 `json:"bodyFatDelta"`
	BodyFatPct      *float64 `json:"bodyFatPct"`

	PreviousMuscleMass *float64 `json:"previousMuscleMass"`
	NewMuscleMass      *float64 `json:"newMuscleMass"`
	MuscleMassDelta    *float64 `json:"muscleMassDelta"`
	MuscleMassPct      *float64 `json:"muscleMassPct"`

	PreviousBMI *float64 `gorm:"column:previous_bmi" json:"previousBmi"`
	NewBMI      *float64 `gorm:"column:new_bmi" json:"newBmi"`
	BMIDelta    *float64 `gorm:"column:bmi_delta" json:"bmiDelta"`
	BMIPct      *float64 `gorm:"column:bmi_pct" json:"bmiPct"`

	CreatedAt time.Time `json:"createdAt"`
}
