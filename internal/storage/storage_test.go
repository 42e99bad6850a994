package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/avisbal23/LiftWithAlex-sub000/internal/database"
	"github.com/avisbal23/LiftWithAlex-sub000/internal/models"
)

// runBackends runs the same behavioral suite against both Storage
// implementations; the two must be indistinguishable to callers.
func runBackends(t *testing.T, fn func(t *testing.T, s Storage)) {
	t.Run("memory", func(t *testing.T) {
		fn(t, NewMemStorage())
	})
	t.Run("sqlite", func(t *testing.T) {
		db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		require.NoError(t, err)
		require.NoError(t, database.AutoMigrate(db))
		fn(t, NewDBStorage(db))
	})
}

func strPtr(s string) *string   { return &s }
func intPtr(i int) *int         { return &i }
func f64Ptr(f float64) *float64 { return &f }

func TestExerciseCRUD(t *testing.T) {
	runBackends(t, func(t *testing.T, s Storage) {
		e := &models.Exercise{Name: "Bench Press", Weight: 135, Reps: 8, Category: "push", Order: 1}
		require.NoError(t, s.CreateExercise(e))
		assert.NotEmpty(t, e.ID)
		assert.False(t, e.CreatedAt.IsZero())

		got, err := s.GetExercise(e.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Bench Press", got.Name)

		// partial update leaves omitted fields alone
		upd := &models.ExerciseUpdate{Weight: f64Ptr(140)}
		next, err := s.UpdateExercise(e.ID, upd)
		require.NoError(t, err)
		require.NotNil(t, next)
		assert.Equal(t, 140.0, next.Weight)
		assert.Equal(t, "Bench Press", next.Name)
		assert.Equal(t, 8, next.Reps)

		deleted, err := s.DeleteExercise(e.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		got, err = s.GetExercise(e.ID)
		require.NoError(t, err)
		assert.Nil(t, got, "missing rows are (nil, nil), not errors")

		deleted, err = s.DeleteExercise(e.ID)
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}

func TestExerciseUnknownID(t *testing.T) {
	runBackends(t, func(t *testing.T, s Storage) {
		got, err := s.GetExercise("nope")
		require.NoError(t, err)
		assert.Nil(t, got)

		next, err := s.UpdateExercise("nope", &models.ExerciseUpdate{Weight: f64Ptr(1)})
		require.NoError(t, err)
		assert.Nil(t, next)
	})
}

func TestExerciseListOrdering(t *testing.T) {
	runBackends(t, func(t *testing.T, s Storage) {
		for _, e := range []models.Exercise{
			{Name: "C", Category: "push", Order: 3},
			{Name: "A", Category: "push", Order: 1},
			{Name: "B", Category: "pull", Order: 2},
		} {
			e := e
			require.NoError(t, s.CreateExercise(&e))
		}

		all, err := s.ListExercises()
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, []string{"A", "B", "C"}, []string{all[0].Name, all[1].Name, all[2].Name})

		push, err := s.ListExercisesByCategory("push")
		require.NoError(t, err)
		require.Len(t, push, 2)
		assert.Equal(t, "A", push[0].Name)
	})
}

func TestDeleteExercisesByCategory(t *testing.T) {
	runBackends(t, func(t *testing.T, s Storage) {
		for _, e := range []models.Exercise{
			{Name: "A", Category: "push"},
			{Name: "B", Category: "push"},
			{Name: "C", Category: "pull"},
		} {
			e := e
			require.NoError(t, s.CreateExercise(&e))
		}

		n, err := s.DeleteExercisesByCategory("push")
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		rest, err := s.ListExercises()
		require.NoError(t, err)
		require.Len(t, rest, 1)
		assert.Equal(t, "C", rest[0].Name)
	})
}

func TestMaxExerciseWeightByName(t *testing.T) {
	runBackends(t, func(t *testing.T, s Storage) {
		_, found, err := s.MaxExerciseWeightByName("Bench Press")
		require.NoError(t, err)
		assert.False(t, found)

		for _, w := range []float64{135, 155, 145} {
			e := models.Exercise{Name: "Bench Press", Weight: w, Category: "push"}
			require.NoError(t, s.CreateExercise(&e))
		}
		other := models.Exercise{Name: "Squat", Weight: 500, Category: "legs"}
		require.NoError(t, s.CreateExercise(&other))

		max, found, err := s.MaxExerciseWeightByName("Bench Press")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, 155.0, max)
	})
}

func TestWorkoutLogLatest(t *testing.T) {
	runBackends(t, func(t *testing.T, s Storage) {
		latest, err := s.LatestWorkoutLog()
		require.NoError(t, err)
		assert.Nil(t, latest)

		older := models.WorkoutLog{Category: "push", CompletedAt: time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)}
		newer := models.WorkoutLog{Category: "pull", CompletedAt: time.Date(2025, 8, 2, 0, 0, 0, 0, time.UTC)}
		require.NoError(t, s.CreateWorkoutLog(&older))
		require.NoError(t, s.CreateWorkoutLog(&newer))

		latest, err = s.LatestWorkoutLog()
		require.NoError(t, err)
		require.NotNil(t, latest)
		assert.Equal(t, "pull", latest.Category)

		logs, err := s.ListWorkoutLogs()
		require.NoError(t, err)
		require.Len(t, logs, 2)
		assert.Equal(t, "pull", logs[0].Category)
	})
}

func TestWeightEntriesRange(t *testing.T) {
	runBackends(t, func(t *testing.T, s Storage) {
		for _, d := range []string{"2025-07-01", "2025-07-15", "2025-08-01"} {
			day, err := time.Parse("2006-01-02", d)
			require.NoError(t, err)
			e := models.WeightEntry{Date: day, Weight: 180}
			require.NoError(t, s.CreateWeightEntry(&e))
		}

		start, _ := time.Parse("2006-01-02", "2025-07-01")
		end, _ := time.Parse("2006-01-02", "2025-07-31")
		got, err := s.ListWeightEntriesInRange(start, end)
		require.NoError(t, err)
		require.Len(t, got, 2, "range is inclusive on both ends")
		assert.True(t, got[0].Date.Before(got[1].Date), "entries come back date ascending")
	})
}

func TestAuditLedgersAppendOnly(t *testing.T) {
	runBackends(t, func(t *testing.T, s Storage) {
		w := &models.WeightAudit{WeightEntryID: "w1", Action: models.AuditActionCreate, Source: models.AuditSourceManual, NewWeight: f64Ptr(180)}
		require.NoError(t, s.CreateWeightAudit(w))
		assert.NotEmpty(t, w.ID)

		rows, err := s.ListWeightAudits()
		require.NoError(t, err)
		require.Len(t, rows, 1)
		require.NotNil(t, rows[0].NewWeight)
		assert.Equal(t, 180.0, *rows[0].NewWeight)
		assert.Nil(t, rows[0].PreviousWeight)

		c := &models.ChangesAudit{ExerciseID: "e1", ExerciseName: "Bench Press", Action: models.AuditActionUpdate, Source: models.AuditSourceManual}
		require.NoError(t, s.CreateChangesAudit(c))
		crows, err := s.ListChangesAudits()
		require.NoError(t, err)
		assert.Len(t, crows, 1)

		p := &models.PRChangesAudit{RecordID: "r1", ExerciseName: "Deadlift", Field: "weight", Action: models.AuditActionUpdate, Source: models.AuditSourceManual}
		require.NoError(t, s.CreatePRChangesAudit(p))
		prows, err := s.ListPRChangesAudits()
		require.NoError(t, err)
		assert.Len(t, prows, 1)
	})
}

func TestQuoteActiveFiltering(t *testing.T) {
	runBackends(t, func(t *testing.T, s Storage) {
		random, err := s.RandomActiveQuote()
		require.NoError(t, err)
		assert.Nil(t, random, "no active quotes yields nil, not an error")

		active := models.Quote{Text: "Fear = Fuel", Author: "Me", IsActive: 1}
		inactive := models.Quote{Text: "Retired", Author: "Unknown", IsActive: 0}
		require.NoError(t, s.CreateQuote(&active))
		require.NoError(t, s.CreateQuote(&inactive))

		all, err := s.ListQuotes()
		require.NoError(t, err)
		assert.Len(t, all, 2)

		got, err := s.ListActiveQuotes()
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Fear = Fuel", got[0].Text)

		random, err = s.RandomActiveQuote()
		require.NoError(t, err)
		require.NotNil(t, random)
		assert.Equal(t, "Fear = Fuel", random.Text)
	})
}

func TestSupplementOrdering(t *testing.T) {
	runBackends(t, func(t *testing.T, s Storage) {
		first := models.Supplement{Name: "Creatine", IsActive: 1}
		require.NoError(t, s.CreateSupplement(&first))
		time.Sleep(5 * time.Millisecond)
		second := models.Supplement{Name: "Vitamin D", IsActive: 1}
		require.NoError(t, s.CreateSupplement(&second))

		got, err := s.ListSupplements()
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Creatine", got[0].Name, "stack order is entry order")
	})
}

func TestNavSettingsUpdate(t *testing.T) {
	runBackends(t, func(t *testing.T, s Storage) {
		sc := models.ShortcutSetting{Key: "log-weight", Label: "Log Weight", Visible: 1, Order: 1}
		require.NoError(t, s.CreateShortcutSetting(&sc))

		got, err := s.UpdateShortcutSetting(sc.ID, &models.NavSettingUpdate{Visible: intPtr(0), Order: intPtr(5)})
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, 0, got.Visible)
		assert.Equal(t, 5, got.Order)
		assert.Equal(t, "Log Weight", got.Label)

		missing, err := s.UpdateShortcutSetting("nope", &models.NavSettingUpdate{Visible: intPtr(1)})
		require.NoError(t, err)
		assert.Nil(t, missing)

		tab := models.TabSetting{Key: "cardio", Label: "Cardio", Visible: 1, Order: 3}
		require.NoError(t, s.CreateTabSetting(&tab))
		tgot, err := s.UpdateTabSetting(tab.ID, &models.NavSettingUpdate{Label: strPtr("Cardio Log")})
		require.NoError(t, err)
		require.NotNil(t, tgot)
		assert.Equal(t, "Cardio Log", tgot.Label)
	})
}

func TestUserSettingsSingleton(t *testing.T) {
	runBackends(t, func(t *testing.T, s Storage) {
		got, err := s.GetUserSettings()
		require.NoError(t, err)
		require.NotNil(t, got, "first read creates the default row")
		assert.Equal(t, "lbs", got.WeightUnit)
		assert.Equal(t, "miles", got.DistanceUnit)

		again, err := s.GetUserSettings()
		require.NoError(t, err)
		assert.Equal(t, got.ID, again.ID, "reads always hit the same row")

		updated, err := s.UpdateUserSettings(&models.UserSettingsUpdate{
			CurrentBodyWeight: f64Ptr(172.5),
			WeightUnit:        strPtr("kg"),
		})
		require.NoError(t, err)
		assert.Equal(t, 172.5, updated.CurrentBodyWeight)
		assert.Equal(t, "kg", updated.WeightUnit)
		assert.Equal(t, "miles", updated.DistanceUnit)
	})
}

func TestSeedIsIdempotent(t *testing.T) {
	runBackends(t, func(t *testing.T, s Storage) {
		require.NoError(t, Seed(s))
		quotes, err := s.ListQuotes()
		require.NoError(t, err)
		require.NotEmpty(t, quotes)

		tabs, err := s.ListTabSettings()
		require.NoError(t, err)
		require.NotEmpty(t, tabs)

		require.NoError(t, Seed(s))
		again, err := s.ListQuotes()
		require.NoError(t, err)
		assert.Len(t, again, len(quotes), "reseeding must not duplicate rows")
	})
}

func TestPersonalRecordReorderOrdering(t *testing.T) {
	runBackends(t, func(t *testing.T, s Storage) {
		a := models.PersonalRecord{ExerciseName: "Deadlift", Weight: 405, Order: 1}
		b := models.PersonalRecord{ExerciseName: "Squat", Weight: 315, Order: 2}
		require.NoError(t, s.CreatePersonalRecord(&a))
		require.NoError(t, s.CreatePersonalRecord(&b))

		_, err := s.UpdatePersonalRecord(a.ID, &models.PersonalRecordUpdate{Order: intPtr(3)})
		require.NoError(t, err)

		got, err := s.ListPersonalRecords()
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Squat", got[0].ExerciseName)
		assert.Equal(t, "Deadlift", got[1].ExerciseName)
	})
}

func TestZeroFlagsRoundTrip(t *testing.T) {
	runBackends(t, func(t *testing.T, s Storage) {
		// inactive from the start, never active
		q := models.Quote{Text: "Benched", Author: "Unknown", IsActive: 0}
		require.NoError(t, s.CreateQuote(&q))

		got, err := s.GetQuote(q.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, 0, got.IsActive)

		active, err := s.ListActiveQuotes()
		require.NoError(t, err)
		assert.Empty(t, active)

		sc := models.ShortcutSetting{Key: "photos", Label: "Photos", Visible: 0, Order: 4}
		require.NoError(t, s.CreateShortcutSetting(&sc))

		shortcuts, err := s.ListShortcutSettings()
		require.NoError(t, err)
		require.Len(t, shortcuts, 1)
		assert.Equal(t, 0, shortcuts[0].Visible, "a shortcut hidden at creation stays hidden")
	})
}
