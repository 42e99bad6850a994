package models

import "time"

// WorkoutCategories is the fixed training-day cycle, in rotation order.
var WorkoutCategories = []string{"push", "pull", "legs", "cardio"}

// IsWorkoutCategory reports whether c is one of the fixed training-day tags.
func IsWorkoutCategory(c string) bool {
	for _, wc := range WorkoutCategories {
		if wc == c {
			return true
		}
	}
	return false
}

// NextWorkoutCategory returns the category that follows c in the cycle.
// An unknown or empty category starts the cycle over.
func NextWorkoutCategory(c string) string {
	for i, wc := range WorkoutCategories {
		if wc == c {
			return WorkoutCategories[(i+1)%len(WorkoutCategories)]
		}
	}
	return WorkoutCategories[0]
}

// Exercise represents one exercise slot within a workout day.
type Exercise struct {
	ID       string  `gorm:"primaryKey;size:36" json:"id"`
	Name     string  `gorm:"size:128;not null" json:"name"`
	Weight   float64 `json:"weight"`
	Reps     int     `json:"reps"`
	Notes    string  `gorm:"type:text" json:"notes"`
	Category string  `gorm:"size:16;index;not null" json:"category"`
	Order    int     `gorm:"column:sort_order;index" json:"order"`

	// cardio-only fields, zero for strength work
	DurationMinutes float64 `json:"durationMinutes"`
	Distance        string  `gorm:"size:64" json:"distance"`
	Pace            string  `gorm:"size:64" json:"pace"`
	Calories        float64 `json:"calories"`
	RPE             float64 `gorm:"column:rpe" json:"rpe"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ExerciseInsert is the request shape for creating an exercise.
type ExerciseInsert struct {
	Name     string  `json:"name" binding:"required,max=128"`
	Weight   float64 `json:"weight" binding:"min=0"`
	Reps     int     `json:"reps" binding:"min=0"`
	Notes    string  `json:"notes"`
	Category string  `json:"category" binding:"required"`
	Order    int     `json:"order"`

	DurationMinutes float64 `json:"durationMinutes"`
	Distance        string  `json:"distance"`
	Pace            string  `json:"pace"`
	Calories        float64 `json:"calories"`
	RPE             float64 `json:"rpe"`
}

// ExerciseUpdate carries a partial update; nil fields are left untouched.
type ExerciseUpdate struct {
	Name     *string  `json:"name" binding:"omitempty,max=128"`
	Weight   *float64 `json:"weight" binding:"omitempty,min=0"`
	Reps     *int     `json:"reps" binding:"omitempty,min=0"`
	Notes    *string  `json:"notes"`
	Category *string  `json:"category"`
	Order    *int     `json:"order"`

	DurationMinutes *float64 `json:"durationMinutes"`
	Distance        *string  `json:"distance"`
	Pace            *string  `json:"pace"`
	Calories        *float64 `json:"calories"`
	RPE             *float64 `json:"rpe"`
}

// Apply merges the non-nil fields onto e.
func (u *ExerciseUpdate) Apply(e *Exercise) {
	if u.Name != nil {
		e.Name = *u.Name
	}
	if u.Weight != nil {
		e.Weight = *u.Weight
	}
	if u.Reps != nil {
		e.Reps = *u.Reps
	}
	if u.Notes != nil {
		e.Notes = *u.Notes
	}
	if u.Category != nil {
		e.Category = *u.Category
	}
	if u.Order != nil {
		e.Order = *u.Order
	}
	if u.DurationMinutes != nil {
		e.DurationMinutes = *u.DurationMinutes
	}
	if u.Distance != nil {
		e.Distance = *u.Distance
	}
	if u.Pace != nil {
		e.Pace = *u.Pace
	}
	if u.Calories != nil {
		e.Calories = *u.Calories
	}
	if u.RPE != nil {
		e.RPE = *u.RPE
	}
}

// WorkoutLog marks a workout day as completed. Append-only.
type WorkoutLog struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Category    string    `gorm:"size:16;index;not null" json:"category"`
	CompletedAt time.Time `gorm:"index;not null" json:"completedAt"`
	CreatedAt   time.Time `json:"createdAt"`
}

// WorkoutLogInsert is the request shape for logging a completed workout.
type WorkoutLogInsert struct {
	Category    string `json:"category" binding:"required"`
	CompletedAt string `json:"completedAt"`
}
