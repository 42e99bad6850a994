package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/avisbal23/LiftWithAlex-sub000/internal/models"
)

// AutoMigrate runs database schema migrations for all models.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Exercise{},
		&models.WorkoutLog{},
		&models.WeightEntry{},
		&models.WeightAudit{},
		&models.BloodEntry{},
		&models.PersonalRecord{},
		&models.ChangesAudit{},
		&models.PRChangesAudit{},
		&models.Quote{},
		&models.Affirmation{},
		&models.Thought{},
		&models.Supplement{},
		&models.PhotoProgress{},
		&models.StepEntry{},
		&models.CardioLogEntry{},
		&models.ShortcutSetting{},
		&models.TabSetting{},
		&models.UserSettings{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
