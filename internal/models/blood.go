package models

import "time"

// BloodEntry is one lab panel. Markers are pointers: a nil marker was not
// part of the panel, which is different from a measured zero.
type BloodEntry struct {
	ID   string    `gorm:"primaryKey;size:36" json:"id"`
	Date time.Time `gorm:"index;not null" json:"date"`

	// hormones
	TestosteroneTotal *float64 `json:"testosteroneTotal"`
	TestosteroneFree  *float64 `json:"testosteroneFree"`
	Estradiol         *float64 `json:"estradiol"`
	SHBG              *float64 `gorm:"column:shbg" json:"shbg"`
	LH                *float64 `gorm:"column:lh" json:"lh"`
	FSH               *float64 `gorm:"column:fsh" json:"fsh"`
	Prolactin         *float64 `json:"prolactin"`
	Cortisol          *float64 `json:"cortisol"`
	DHEAS             *float64 `gorm:"column:dhea_s" json:"dheaS"`
	IGF1              *float64 `gorm:"column:igf_1" json:"igf1"`

	// thyroid
	TSH    *float64 `gorm:"column:tsh" json:"tsh"`
	FreeT4 *float64 `json:"freeT4"`
	FreeT3 *float64 `json:"freeT3"`

	// lipids
	CholesterolTotal *float64 `json:"cholesterolTotal"`
	HDL              *float64 `gorm:"column:hdl" json:"hdl"`
	LDL              *float64 `gorm:"column:ldl" json:"ldl"`
	Triglycerides    *float64 `json:"triglycerides"`

	// metabolic
	Glucose *float64 `json:"glucose"`
	HbA1c   *float64 `gorm:"column:hba1c" json:"hba1c"`
	Insulin *float64 `json:"insulin"`

	// vitamins and minerals
	VitaminD   *float64 `json:"vitaminD"`
	VitaminB12 *float64 `json:"vitaminB12"`
	Folate     *float64 `json:"folate"`
	Ferritin   *float64 `json:"ferritin"`
	Iron       *float64 `json:"iron"`
	Magnesium  *float64 `json:"magnesium"`
	Zinc       *float64 `json:"zinc"`

	// liver and kidney
	ALT        *float64 `gorm:"column:alt" json:"alt"`
	AST        *float64 `gorm:"column:ast" json:"ast"`
	Creatinine *float64 `json:"creatinine"`
	EGFR       *float64 `gorm:"column:egfr" json:"egfr"`

	// blood counts and inflammation
	Hemoglobin *float64 `json:"hemoglobin"`
	Hematocrit *float64 `json:"hematocrit"`
	WBC        *float64 `gorm:"column:wbc" json:"wbc"`
	CRP        *float64 `gorm:"column:crp" json:"crp"`
	PSA        *float64 `gorm:"column:psa" json:"psa"`

	// free-form unit / out-of-range annotations keyed by marker json name
	Units      string `gorm:"type:text" json:"units"`
	OutOfRange string `gorm:"type:text" json:"outOfRange"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BloodEntryInsert is the request shape for recording a lab panel. Marker
// values arrive as a name -> value map so structured JSON import and the CSV
// importer share one path.
type BloodEntryInsert struct {
	Date       string             `json:"date" binding:"required"`
	Markers    map[string]float64 `json:"markers" binding:"required"`
	Units      map[string]string  `json:"units"`
	OutOfRange []string           `json:"outOfRange"`
}

// BloodEntryUpdate carries a partial update over the marker map.
type BloodEntryUpdate struct {
	Date       *string            `json:"date"`
	Markers    map[string]float64 `json:"markers"`
	Units      map[string]string  `json:"units"`
	OutOfRange []string           `json:"outOfRange"`

	ParsedDate *time.Time `json:"-"`
}
