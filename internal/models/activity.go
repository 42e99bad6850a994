package models

import "time"

// StepEntry is one day's step count.
type StepEntry struct {
	ID    string    `gorm:"primaryKey;size:36" json:"id"`
	Date  time.Time `gorm:"index;not null" json:"date"`
	Steps int       `gorm:"not null" json:"steps"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type StepEntryInsert struct {
	Date  string `json:"date" binding:"required"`
	Steps int    `json:"steps" binding:"required,gt=0"`
}

type StepEntryUpdate struct {
	Date  *string `json:"date"`
	Steps *int    `json:"steps" binding:"omitempty,gt=0"`

	ParsedDate *time.Time `json:"-"`
}

func (u *StepEntryUpdate) Apply(s *StepEntry) {
	if u.ParsedDate != nil {
		s.Date = *u.ParsedDate
	}
	if u.Steps != nil {
		s.Steps = *u.Steps
	}
}

// CardioLogEntry is one cardio session. DistanceText keeps the free-text
// distance as entered ("3.1 miles", "5 km"); unit normalization happens at
// read time.
type CardioLogEntry struct {
	ID              string    `gorm:"primaryKey;size:36" json:"id"`
	Date            time.Time `gorm:"index;not null" json:"date"`
	ActivityType    string    `gorm:"size:64;not null" json:"activityType"`
	DurationMinutes float64   `json:"durationMinutes"`
	DistanceText    string    `gorm:"size:64" json:"distance"`
	Calories        float64   `json:"calories"`
	Notes           string    `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CardioLogEntryInsert struct {
	Date            string  `json:"date" binding:"required"`
	ActivityType    string  `json:"activityType" binding:"required,max=64"`
	DurationMinutes float64 `json:"durationMinutes" binding:"min=0"`
	Distance        string  `json:"distance"`
	Calories        float64 `json:"calories" binding:"min=0"`
	Notes           string  `json:"notes"`
}

type CardioLogEntryUpdate struct {
	Date            *string  `json:"date"`
	ActivityType    *string  `json:"activityType" binding:"omitempty,max=64"`
	DurationMinutes *float64 `json:"durationMinutes" binding:"omitempty,min=0"`
	Distance        *string  `json:"distance"`
	Calories        *float64 `json:"calories" binding:"omitempty,min=0"`
	Notes           *string  `json:"notes"`

	ParsedDate *time.Time `json:"-"`
}

func (u *CardioLogEntryUpdate) Apply(e *CardioLogEntry) {
	if u.ParsedDate != nil {
		e.Date = *u.ParsedDate
	}
	if u.ActivityType != nil {
		e.ActivityType = *u.ActivityType
	}
	if u.DurationMinutes != nil {
		e.DurationMinutes = *u.DurationMinutes
	}
	if u.Distance != nil {
		e.DistanceText = *u.Distance
	}
	if u.Calories != nil {
		e.Calories = *u.Calories
	}
	if u.Notes != nil {
		e.Notes = *u.Notes
	}
}
