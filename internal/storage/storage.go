package storage

import (
	"time"

	"github.com/avisbal23/LiftWithAlex-sub000/internal/models"
)

// Storage is the uniform persistence contract, implemented by MemStorage
// (maps, for tests and fallback) and DBStorage (GORM/SQLite, for production).
// Both implementations behave identically:
//
//   - Create assigns a fresh uuid and server timestamps.
//   - Update performs a partial merge; omitted fields are left untouched.
//   - Get/Update on an unknown id return (nil, nil); Delete returns false.
//     Callers map that to 404 — missing rows are not errors.
//   - List orders are fixed per entity and documented on each method group.
type Storage interface {
	// Exercises, ordered by sort order asc then createdAt desc.
	ListExercises() ([]models.Exercise, error)
	ListExercisesByCategory(category string) ([]models.Exercise, error)
	GetExercise(id string) (*models.Exercise, error)
	CreateExercise(e *models.Exercise) error
	UpdateExercise(id string, upd *models.ExerciseUpdate) (*models.Exercise, error)
	DeleteExercise(id string) (bool, error)
	// DeleteExercisesByCategory clears a training day before a bulk import
	// replaces it. Returns the number of rows removed.
	DeleteExercisesByCategory(category string) (int, error)

	// Workout logs, append-only, ordered by completedAt desc.
	CreateWorkoutLog(l *models.WorkoutLog) error
	ListWorkoutLogs() ([]models.WorkoutLog, error)
	LatestWorkoutLog() (*models.WorkoutLog, error)

	// Weight entries, ordered by date asc.
	ListWeightEntries() ([]models.WeightEntry, error)
	ListWeightEntriesInRange(start, end time.Time) ([]models.WeightEntry, error)
	GetWeightEntry(id string) (*models.WeightEntry, error)
	CreateWeightEntry(e *models.WeightEntry) error
	UpdateWeightEntry(id string, upd *models.WeightEntryUpdate) (*models.WeightEntry, error)
	DeleteWeightEntry(id string) (bool, error)

	// Audit ledgers, append-only, ordered by createdAt desc. There are no
	// update or delete operations on audit rows on purpose.
	CreateWeightAudit(a *models.WeightAudit) error
	ListWeightAudits() ([]models.WeightAudit, error)
	CreateChangesAudit(a *models.ChangesAudit) error
	ListChangesAudits() ([]models.ChangesAudit, error)
	CreatePRChangesAudit(a *models.PRChangesAudit) error
	ListPRChangesAudits() ([]models.PRChangesAudit, error)
	// MaxExerciseWeightByName returns the highest weight ever recorded for an
	// exercise name across current rows, and whether any row matched. The
	// import audit path compares against this prior maximum.
	MaxExerciseWeightByName(name string) (float64, bool, error)

	// Blood entries, ordered by date asc.
	ListBloodEntries() ([]models.BloodEntry, error)
	GetBloodEntry(id string) (*models.BloodEntry, error)
	CreateBloodEntry(e *models.BloodEntry) error
	UpdateBloodEntry(id string, upd *models.BloodEntryUpdate) (*models.BloodEntry, error)
	DeleteBloodEntry(id string) (bool, error)

	// Personal records, ordered by sort order asc then createdAt desc.
	ListPersonalRecords() ([]models.PersonalRecord, error)
	GetPersonalRecord(id string) (*models.PersonalRecord, error)
	CreatePersonalRecord(r *models.PersonalRecord) error
	UpdatePersonalRecord(id string, upd *models.PersonalRecordUpdate) (*models.PersonalRecord, error)
	DeletePersonalRecord(id string) (bool, error)

	// Quotes, ordered by createdAt desc. RandomActiveQuote returns (nil, nil)
	// when no quote has isActive == 1.
	ListQuotes() ([]models.Quote, error)
	ListActiveQuotes() ([]models.Quote, error)
	RandomActiveQuote() (*models.Quote, error)
	GetQuote(id string) (*models.Quote, error)
	CreateQuote(q *models.Quote) error
	UpdateQuote(id string, upd *models.QuoteUpdate) (*models.Quote, error)
	DeleteQuote(id string) (bool, error)

	// Affirmations, ordered by createdAt desc.
	ListAffirmations() ([]models.Affirmation, error)
	ListActiveAffirmations() ([]models.Affirmation, error)
	GetAffirmation(id string) (*models.Affirmation, error)
	CreateAffirmation(a *models.Affirmation) error
	UpdateAffirmation(id string, upd *models.AffirmationUpdate) (*models.Affirmation, error)
	DeleteAffirmation(id string) (bool, error)

	// Thoughts, ordered by createdAt desc.
	ListThoughts() ([]models.Thought, error)
	GetThought(id string) (*models.Thought, error)
	CreateThought(t *models.Thought) error
	UpdateThought(id string, upd *models.ThoughtUpdate) (*models.Thought, error)
	DeleteThought(id string) (bool, error)

	// Supplements, ordered by createdAt asc (stack order is entry order).
	ListSupplements() ([]models.Supplement, error)
	GetSupplement(id string) (*models.Supplement, error)
	CreateSupplement(s *models.Supplement) error
	UpdateSupplement(id string, upd *models.SupplementUpdate) (*models.Supplement, error)
	DeleteSupplement(id string) (bool, error)

	// Progress photos, ordered by date desc (newest first).
	ListPhotoProgress() ([]models.PhotoProgress, error)
	GetPhotoProgress(id string) (*models.PhotoProgress, error)
	CreatePhotoProgress(p *models.PhotoProgress) error
	UpdatePhotoProgress(id string, upd *models.PhotoProgressUpdate) (*models.PhotoProgress, error)
	DeletePhotoProgress(id string) (bool, error)

	// Step entries, ordered by date asc.
	ListStepEntries() ([]models.StepEntry, error)
	GetStepEntry(id string) (*models.StepEntry, error)
	CreateStepEntry(s *models.StepEntry) error
	UpdateStepEntry(id string, upd *models.StepEntryUpdate) (*models.StepEntry, error)
	DeleteStepEntry(id string) (bool, error)

	// Cardio log entries, ordered by date desc.
	ListCardioLogEntries() ([]models.CardioLogEntry, error)
	GetCardioLogEntry(id string) (*models.CardioLogEntry, error)
	CreateCardioLogEntry(e *models.CardioLogEntry) error
	UpdateCardioLogEntry(id string, upd *models.CardioLogEntryUpdate) (*models.CardioLogEntry, error)
	DeleteCardioLogEntry(id string) (bool, error)

	// Navigation settings, ordered by sort order asc.
	ListShortcutSettings() ([]models.ShortcutSetting, error)
	CreateShortcutSetting(s *models.ShortcutSetting) error
	UpdateShortcutSetting(id string, upd *models.NavSettingUpdate) (*models.ShortcutSetting, error)
	ListTabSettings() ([]models.TabSetting, error)
	CreateTabSetting(t *models.TabSetting) error
	UpdateTabSetting(id string, upd *models.NavSettingUpdate) (*models.TabSetting, error)

	// UserSettings is a singleton; Get creates the default row on first use.
	GetUserSettings() (*models.UserSettings, error)
	UpdateUserSettings(upd *models.UserSettingsUpdate) (*models.UserSettings, error)
}
