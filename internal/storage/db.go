package storage

import (
	"database/sql"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/avisbal23/LiftWithAlex-sub000/internal/models"
)

// DBStorage is the relational Storage implementation over GORM/SQLite.
type DBStorage struct {
	db *gorm.DB
}

// NewDBStorage wraps an initialized GORM connection.
func NewDBStorage(db *gorm.DB) *DBStorage {
	return &DBStorage{db: db}
}

// stamp fills in id and server timestamps before an insert.
func stamp(id *string, created, updated *time.Time) {
	*id = newID()
	now := time.Now()
	*created = now
	if updated != nil {
		*updated = now
	}
}

func notFoundNil(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}

// ---------- exercises ----------

const exerciseOrder = "sort_order ASC, created_at DESC, id DESC"

func (s *DBStorage) ListExercises() ([]models.Exercise, error) {
	var out []models.Exercise
	err := s.db.Order(exerciseOrder).Find(&out).Error
	return out, err
}

func (s *DBStorage) ListExercisesByCategory(category string) ([]models.Exercise, error) {
	var out []models.Exercise
	err := s.db.Where("category = ?", category).Order(exerciseOrder).Find(&out).Error
	return out, err
}

func (s *DBStorage) GetExercise(id string) (*models.Exercise, error) {
	var e models.Exercise
	if err := s.db.First(&e, "id = ?", id).Error; err != nil {
		return nil, notFoundNil(err)
	}
	return &e, nil
}

func (s *DBStorage) CreateExercise(e *models.Exercise) error {
	stamp(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	return s.db.Create(e).Error
}

func (s *DBStorage) UpdateExercise(id string, upd *models.ExerciseUpdate) (*models.Exercise, error) {
	var e models.Exercise
	if err := s.db.First(&e, "id = ?", id).Error; err != nil {
		return nil, notFoundNil(err)
	}
	upd.Apply(&e)
	e.UpdatedAt = time.Now()
	if err := s.db.Save(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *DBStorage) DeleteExercise(id string) (bool, error) {
	res := s.db.Delete(&models.Exercise{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

func (s *DBStorage) DeleteExercisesByCategory(category string) (int, error) {
	res := s.db.Delete(&models.Exercise{}, "category = ?", category)
	return int(res.RowsAffected), res.Error
}

// ---------- workout logs ----------

func (s *DBStorage) CreateWorkoutLog(l *models.WorkoutLog) error {
	stamp(&l.ID, &l.CreatedAt, nil)
	if l.CompletedAt.IsZero() {
		l.CompletedAt = l.CreatedAt
	}
	return s.db.Create(l).Error
}

func (s *DBStorage) ListWorkoutLogs() ([]models.WorkoutLog, error) {
	var out []models.WorkoutLog
	err := s.db.Order("completed_at DESC, id DESC").Find(&out).Error
	return out, err
}

func (s *DBStorage) LatestWorkoutLog() (*models.WorkoutLog, error) {
	var l models.WorkoutLog
	if err := s.db.Order("completed_at DESC, id DESC").First(&l).Error; err != nil {
		return nil, notFoundNil(err)
	}
	return &l, nil
}

// ---------- weight entries ----------

func (s *DBStorage) ListWeightEntries() ([]models.WeightEntry, error) {
	var out []models.WeightEntry
	err := s.db.Order("date ASC, id ASC").Find(&out).Error
	return out, err
}

func (s *DBStorage) ListWeightEntriesInRange(start, end time.Time) ([]models.WeightEntry, error) {
	var out []models.WeightEntry
	err := s.db.Where("date >= ? AND date <= ?", start, end).
		Order("date ASC, id ASC").Find(&out).Error
	return out, err
}

func (s *DBStorage) GetWeightEntry(id string) (*models.WeightEntry, error) {
	var e models.WeightEntry
	if err := s.db.First(&e, "id = ?", id).Error; err != nil {
		return nil, notFoundNil(err)
	}
	return &e, nil
}

func (s *DBStorage) CreateWeightEntry(e *models.WeightEntry) error {
	stamp(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	return s.db.Create(e).Error
}

func (s *DBStorage) UpdateWeightEntry(id string, upd *models.WeightEntryUpdate) (*models.WeightEntry, error) {
	var e models.WeightEntry
	if err := s.db.First(&e, "id = ?", id).Error; err != nil {
		return nil, notFoundNil(err)
	}
	upd.Apply(&e)
	e.UpdatedAt = time.Now()
	if err := s.db.Save(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *DBStorage) DeleteWeightEntry(id string) (bool, error) {
	res := s.db.Delete(&models.WeightEntry{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

// ---------- audit ledgers ----------

func (s *DBStorage) CreateWeightAudit(a *models.WeightAudit) error {
	stamp(&a.ID, &a.CreatedAt, nil)
	return s.db.Create(a).Error
}

func (s *DBStorage) ListWeightAudits() ([]models.WeightAudit, error) {
	var out []models.WeightAudit
	err := s.db.Order("created_at DESC, id DESC").Find(&out).Error
	return out, err
}

func (s *DBStorage) CreateChangesAudit(a *models.ChangesAudit) error {
	stamp(&a.ID, &a.CreatedAt, nil)
	return s.db.Create(a).Error
}

func (s *DBStorage) ListChangesAudits() ([]models.ChangesAudit, error) {
	var out []models.ChangesAudit
	err := s.db.Order("created_at DESC, id DESC").Find(&out).Error
	return out, err
}

func (s *DBStorage) CreatePRChangesAudit(a *models.PRChangesAudit) error {
	stamp(&a.ID, &a.CreatedAt, nil)
	return s.db.Create(a).Error
}

func (s *DBStorage) ListPRChangesAudits() ([]models.PRChangesAudit, error) {
	var out []models.PRChangesAudit
	err := s.db.Order("created_at DESC, id DESC").Find(&out).Error
	return out, err
}

func (s *DBStorage) MaxExerciseWeightByName(name string) (float64, bool, error) {
	var max sql.NullFloat64
	row := s.db.Model(&models.Exercise{}).Where("name = ?", name).
		Select("MAX(weight)").Row()
	if err := row.Scan(&max); err != nil {
		return 0, false, err
	}
	if !max.Valid {
		return 0, false, nil
	}
	return max.Float64, true, nil
}

// ---------- blood entries ----------

func (s *DBStorage) ListBloodEntries() ([]models.BloodEntry, error) {
	var out []models.BloodEntry
	err := s.db.Order("date ASC, id ASC").Find(&out).Error
	return out, err
}

func (s *DBStorage) GetBloodEntry(id string) (*models.BloodEntry, error) {
	var e models.BloodEntry
	if err := s.db.First(&e, "id = ?", id).Error; err != nil {
		return nil, notFoundNil(err)
	}
	return &e, nil
}

func (s *DBStorage) CreateBloodEntry(e *models.BloodEntry) error {
	stamp(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	return s.db.Create(e).Error
}

func (s *DBStorage) UpdateBloodEntry(id string, upd *models.BloodEntryUpdate) (*models.BloodEntry, error) {
	var e models.BloodEntry
	if err := s.db.First(&e, "id = ?", id).Error; err != nil {
		return nil, notFoundNil(err)
	}
	upd.Apply(&e)
	e.UpdatedAt = time.Now()
	if err := s.db.Save(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *DBStorage) DeleteBloodEntry(id string) (bool, error) {
	res := s.db.Delete(&models.BloodEntry{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

// ---------- personal records ----------

func (s *DBStorage) ListPersonalRecords() ([]models.PersonalRecord, error) {
	var out []models.PersonalRecord
	err := s.db.Order("sort_order ASC, created_at DESC, id DESC").Find(&out).Error
	return out, err
}

func (s *DBStorage) GetPersonalRecord(id string) (*models.PersonalRecord, error) {
	var r models.PersonalRecord
	if err := s.db.First(&r, "id = ?", id).Error; err != nil {
		return nil, notFoundNil(err)
	}
	return &r, nil
}

func (s *DBStorage) CreatePersonalRecord(r *models.PersonalRecord) error {
	stamp(&r.ID, &r.CreatedAt, &r.UpdatedAt)
	return s.db.Create(r).Error
}

func (s *DBStorage) UpdatePersonalRecord(id string, upd *models.PersonalRecordUpdate) (*models.PersonalRecord, error) {
	var r models.PersonalRecord
	if err := s.db.First(&r, "id = ?", id).Error; err != nil {
		return nil, notFoundNil(err)
	}
	upd.Apply(&r)
	r.UpdatedAt = time.Now()
	if err := s.db.Save(&r).Error; err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *DBStorage) DeletePersonalRecord(id string) (bool, error) {
	res := s.db.Delete(&models.PersonalRecord{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

// ---------- quotes ----------

func (s *DBStorage) ListQuotes() ([]models.Quote, error) {
	var out []models.Quote
	err := s.db.Order("created_at DESC, id DESC").Find(&out).Error
	return out, err
}

func (s *DBStorage) ListActiveQuotes() ([]models.Quote, error) {
	var out []models.Quote
	err := s.db.Where("is_active = 1").Order("created_at DESC, id DESC").Find(&out).Error
	return out, err
}

func (s *DBStorage) RandomActiveQuote() (*models.Quote, error) {
	var q models.Quote
	if err := s.db.Where("is_active = 1").Order("RANDOM()").First(&q).Error; err != nil {
		return nil, notFoundNil(err)
	}
	return &q, nil
}

func (s *DBStorage) GetQuote(id string) (*models.Quote, error) {
	var q models.Quote
	if err := s.db.First(&q, "id = ?", id).Error; err != nil {
		return nil, notFoundNil(err)
	}
	return &q, nil
}

func (s *DBStorage) CreateQuote(q *models.Quote) error {
	stamp(&q.ID, &q.CreatedAt, &q.UpdatedAt)
	return s.db.Create(q).Error
}

func (s *DBStorage) UpdateQuote(id string, upd *models.QuoteUpdate) (*models.Quote, error) {
	var q models.Quote
	if err := s.db.First(&q, "id = ?", id).Error; err != nil {
		return nil, notFoundNil(err)
	}
	upd.Apply(&q)
	q.UpdatedAt = time.Now()
	if err := s.db.Save(&q).Error; err != nil {
		return nil, err
	}
	return &q, nil
}

func (s *DBStorage) DeleteQuote(id string) (bool, error) {
	res := s.db.Delete(&models.Quote{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

// ---------- affirmations ----------

func (s *DBStorage) ListAffirmations() ([]models.Affirmation, error) {
	var out []models.Affirmation
	err := s.db.Order("created_at DESC, id DESC").Find(&out).Error
	return out, err
}

func (s *DBStorage) ListActiveAffirmations() ([]models.Affirmation, error) {
	var out []models.Affirmation
	err := s.db.Where("is_active = 1").Order("created_at DESC, id DESC").Find(&out).Error
	return out, err
}

func (s *DBStorage) GetAffirmation(id string) (*models.Affirmation, error) {
	var a models.Affirmation
	if err := s.db.First(&a, "id = ?", id).Error; err != nil {
		return nil, notFoundNil(err)
	}
	return &a, nil
}

func (s *DBStorage) CreateAffirmation(a *models.Affirmation) error {
	stamp(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	return s.db.Create(a).Error
}

func (s *DBStorage) UpdateAffirmation(id string, upd *models.AffirmationUpdate) (*models.Affirmation, error) {
	var a models.Affirmation
	if err := s.db.First(&a, "id = ?", id).Error; err != nil {
		return nil, notFoundNil(err)
	}
	upd.Apply(&a)
	a.UpdatedAt = time.Now()
	if err := s.db.Save(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *DBStorage) DeleteAffirmation(id string) (bool, error) {
	res := s.db.Delete(&models.Affirmation{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

// ---------- thoughts ----------

func (s *DBStorage) ListThoughts() ([]models.Thought, error) {
	var out []models.Thought
	err := s.db.Order("created_at DESC, id DESC").Find(&out).Error
	return out, err
}

func (s *DBStorage) GetThought(id string) (*models.Thought, error) {
	var t models.Thought
	if err := s.db.First(&t, "id = ?", id).Error; err != nil {
		return nil, notFoundNil(err)
	}
	return &t, nil
}

func (s *DBStorage) CreateThought(t *models.Thought) error {
	stamp(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	return s.db.Create(t).Error
}

func (s *DBStorage) UpdateThought(id string, upd *models.ThoughtUpdate) (*models.Thought, error) {
	var t models.Thought
	if err := s.db.First(&t, "id = ?", id).Error; err != nil {
		return nil, notFoundNil(err)
	}
	upd.Apply(&t)
	t.UpdatedAt = time.Now()
	if err := s.db.Save(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *DBStorage) DeleteThought(id string) (bool, error) {
	res := s.db.Delete(&models.Thought{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

// ---------- supplements ----------

func (s *DBStorage) ListSupplements() ([]models.Supplement, error) {
	var out []models.Supplement
	err := s.db.Order("created_at ASC, id ASC").Find(&out).Error
	return out, err
}

func (s *DBStorage) GetSupplement(id string) (*models.Supplement, error) {
	var sp models.Supplement
	if err := s.db.First(&sp, "id = ?", id).Error; err != nil {
		return nil, notFoundNil(err)
	}
	return &sp, nil
}

func (s *DBStorage) CreateSupplement(sp *models.Supplement) error {
	stamp(&sp.ID, &sp.CreatedAt, &sp.UpdatedAt)
	return s.db.Create(sp).Error
}

func (s *DBStorage) UpdateSupplement(id string, upd *models.SupplementUpdate) (*models.Supplement, error) {
	var sp models.Supplement
	if err := s.db.First(&sp, "id = ?", id).Error; err != nil {
		return nil, notFoundNil(err)
	}
	upd.Apply(&sp)
	sp.UpdatedAt = time.Now()
	if err := s.db.Save(&sp).Error; err != nil {
		return nil, err
	}
	return &sp, nil
}

func (s *DBStorage) DeleteSupplement(id string) (bool, error) {
	res := s.db.Delete(&models.Supplement{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

// ---------- progress photos ----------

func (s *DBStorage) ListPhotoProgress() ([]models.PhotoProgress, error) {
	var out []models.PhotoProgress
	err := s.db.Order("date DESC, id DESC").Find(&out).Error
	return out, err
}

func (s *DBStorage) GetPhotoProgress(id string) (*models.PhotoProgress, error) {
	var p models.PhotoProgress
	if err := s.db.First(&p, "id = ?", id).Error; err != nil {
		return nil, notFoundNil(err)
	}
	return &p, nil
}

func (s *DBStorage) CreatePhotoProgress(p *models.PhotoProgress) error {
	stamp(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	return s.db.Create(p).Error
}

func (s *DBStorage) UpdatePhotoProgress(id string, upd *models.PhotoProgressUpdate) (*models.PhotoProgress, error) {
	var p models.PhotoProgress
	if err := s.db.First(&p, "id = ?", id).Error; err != nil {
		return nil, notFoundNil(err)
	}
	upd.Apply(&p)
	p.UpdatedAt = time.Now()
	if err := s.db.Save(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *DBStorage) DeletePhotoProgress(id string) (bool, error) {
	res := s.db.Delete(&models.PhotoProgress{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

// ---------- step entries ----------

func (s *DBStorage) ListStepEntries() ([]models.StepEntry, error) {
	var out []models.StepEntry
	err := s.db.Order("date ASC, id ASC").Find(&out).Error
	return out, err
}

func (s *DBStorage) GetStepEntry(id string) (*models.StepEntry, error) {
	var e models.StepEntry
	if err := s.db.First(&e, "id = ?", id).Error; err != nil {
		return nil, notFoundNil(err)
	}
	return &e, nil
}

func (s *DBStorage) CreateStepEntry(e *models.StepEntry) error {
	stamp(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	return s.db.Create(e).Error
}

func (s *DBStorage) UpdateStepEntry(id string, upd *models.StepEntryUpdate) (*models.StepEntry, error) {
	var e models.StepEntry
	if err := s.db.First(&e, "id = ?", id).Error; err != nil {
		return nil, notFoundNil(err)
	}
	upd.Apply(&e)
	e.UpdatedAt = time.Now()
	if err := s.db.Save(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *DBStorage) DeleteStepEntry(id string) (bool, error) {
	res := s.db.Delete(&models.StepEntry{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

// ---------- cardio log entries ----------

func (s *DBStorage) ListCardioLogEntries() ([]models.CardioLogEntry, error) {
	var out []models.CardioLogEntry
	err := s.db.Order("date DESC, id DESC").Find(&out).Error
	return out, err
}

func (s *DBStorage) GetCardioLogEntry(id string) (*models.CardioLogEntry, error) {
	var e models.CardioLogEntry
	if err := s.db.First(&e, "id = ?", id).Error; err != nil {
		return nil, notFoundNil(err)
	}
	return &e, nil
}

func (s *DBStorage) CreateCardioLogEntry(e *models.CardioLogEntry) error {
	stamp(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	return s.db.Create(e).Error
}

func (s *DBStorage) UpdateCardioLogEntry(id string, upd *models.CardioLogEntryUpdate) (*models.CardioLogEntry, error) {
	var e models.CardioLogEntry
	if err := s.db.First(&e, "id = ?", id).Error; err != nil {
		return nil, notFoundNil(err)
	}
	upd.Apply(&e)
	e.UpdatedAt = time.Now()
	if err := s.db.Save(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *DBStorage) DeleteCardioLogEntry(id string) (bool, error) {
	res := s.db.Delete(&models.CardioLogEntry{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

// ---------- navigation settings ----------

func (s *DBStorage) ListShortcutSettings() ([]models.ShortcutSetting, error) {
	var out []models.ShortcutSetting
	err := s.db.Order("sort_order ASC, key ASC").Find(&out).Error
	return out, err
}

func (s *DBStorage) CreateShortcutSetting(sc *models.ShortcutSetting) error {
	stamp(&sc.ID, &sc.CreatedAt, &sc.UpdatedAt)
	return s.db.Create(sc).Error
}

func (s *DBStorage) UpdateShortcutSetting(id string, upd *models.NavSettingUpdate) (*models.ShortcutSetting, error) {
	var sc models.ShortcutSetting
	if err := s.db.First(&sc, "id = ?", id).Error; err != nil {
		return nil, notFoundNil(err)
	}
	upd.ApplyShortcut(&sc)
	sc.UpdatedAt = time.Now()
	if err := s.db.Save(&sc).Error; err != nil {
		return nil, err
	}
	return &sc, nil
}

func (s *DBStorage) ListTabSettings() ([]models.TabSetting, error) {
	var out []models.TabSetting
	err := s.db.Order("sort_order ASC, key ASC").Find(&out).Error
	return out, err
}

func (s *DBStorage) CreateTabSetting(t *models.TabSetting) error {
	stamp(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	return s.db.Create(t).Error
}

func (s *DBStorage) UpdateTabSetting(id string, upd *models.NavSettingUpdate) (*models.TabSetting, error) {
	var t models.TabSetting
	if err := s.db.First(&t, "id = ?", id).Error; err != nil {
		return nil, notFoundNil(err)
	}
	upd.ApplyTab(&t)
	t.UpdatedAt = time.Now()
	if err := s.db.Save(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// ---------- user settings ----------

func (s *DBStorage) GetUserSettings() (*models.UserSettings, error) {
	var us models.UserSettings
	err := s.db.First(&us).Error
	if err == nil {
		return &us, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	us = models.UserSettings{WeightUnit: "lbs", DistanceUnit: "miles"}
	stamp(&us.ID, &us.CreatedAt, &us.UpdatedAt)
	if err := s.db.Create(&us).Error; err != nil {
		return nil, err
	}
	return &us, nil
}

func (s *DBStorage) UpdateUserSettings(upd *models.UserSettingsUpdate) (*models.UserSettings, error) {
	us, err := s.GetUserSettings()
	if err != nil {
		return nil, err
	}
	upd.Apply(us)
	us.UpdatedAt = time.Now()
	if err := s.db.Save(us).Error; err != nil {
		return nil, err
	}
	return us, nil
}
