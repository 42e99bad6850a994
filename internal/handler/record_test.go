package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/avisbal23/LiftWithAlex-sub000/internal/models"
	"github.com/avisbal23/LiftWithAlex-sub000/internal/storage"
)

func f64Ptr(f float64) *float64 { return &f }

func newRecordRouter(store storage.Storage) *gin.Engine {
	h := NewRecordHandler(store, zap.NewNop())
	r := gin.New()
	r.GET("/personal-records", h.List)
	r.POST("/personal-records", h.Create)
	r.POST("/personal-records/reorder", h.Reorder)
	r.PATCH("/personal-records/:id", h.Update)
	r.DELETE("/personal-records/:id", h.Delete)
	return r
}

func TestRecordListComputesBodyWeightPct(t *testing.T) {
	store := storage.NewMemStorage()
	_, err := store.UpdateUserSettings(&models.UserSettingsUpdate{CurrentBodyWeight: f64Ptr(170)})
	require.NoError(t, err)

	pr := models.PersonalRecord{ExerciseName: "Bench Press", Weight: 185, Reps: 1}
	require.NoError(t, store.CreatePersonalRecord(&pr))

	r := newRecordRouter(store)
	w, env := doJSON(t, r, http.MethodGet, "/personal-records", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var items []struct {
		models.PersonalRecord
		BodyWeightPct *string `json:"bodyWeightPct"`
	}
	require.NoError(t, json.Unmarshal(env.Data["personalRecords"], &items))
	require.Len(t, items, 1)
	require.NotNil(t, items[0].BodyWeightPct)
	assert.Equal(t, "108.8", *items[0].BodyWeightPct)
}

func TestRecordListNilPctWithoutBodyWeight(t *testing.T) {
	store := storage.NewMemStorage()
	pr := models.PersonalRecord{ExerciseName: "Bench Press", Weight: 185}
	require.NoError(t, store.CreatePersonalRecord(&pr))

	r := newRecordRouter(store)
	_, env := doJSON(t, r, http.MethodGet, "/personal-records", nil)

	var items []struct {
		BodyWeightPct *string `json:"bodyWeightPct"`
	}
	require.NoError(t, json.Unmarshal(env.Data["personalRecords"], &items))
	require.Len(t, items, 1)
	assert.Nil(t, items[0].BodyWeightPct, "no body weight on file means no percentage")
}

func TestRecordUpdateAuditsPerField(t *testing.T) {
	store := storage.NewMemStorage()
	pr := models.PersonalRecord{ExerciseName: "Deadlift", Weight: 405, Reps: 1}
	require.NoError(t, store.CreatePersonalRecord(&pr))

	r := newRecordRouter(store)
	w, _ := doJSON(t, r, http.MethodPatch, "/personal-records/"+pr.ID, gin.H{"weight": 415, "reps": 2})
	require.Equal(t, http.StatusOK, w.Code)

	audits, err := store.ListPRChangesAudits()
	require.NoError(t, err)
	require.Len(t, audits, 2, "one row per changed field")
}

func TestRecordReorderBestEffort(t *testing.T) {
	store := storage.NewMemStorage()
	a := models.PersonalRecord{ExerciseName: "Deadlift", Order: 1}
	b := models.PersonalRecord{ExerciseName: "Squat", Order: 2}
	require.NoError(t, store.CreatePersonalRecord(&a))
	require.NoError(t, store.CreatePersonalRecord(&b))

	r := newRecordRouter(store)
	w, env := doJSON(t, r, http.MethodPost, "/personal-records/reorder", gin.H{
		"items": []gin.H{
			{"id": a.ID, "order": 2},
			{"id": "missing", "order": 9},
			{"id": b.ID, "order": 1},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated int
	require.NoError(t, json.Unmarshal(env.Data["updated"], &updated))
	assert.Equal(t, 2, updated)

	var errs []string
	require.NoError(t, json.Unmarshal(env.Data["errors"], &errs))
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "missing")

	got, err := store.ListPersonalRecords()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Squat", got[0].ExerciseName)
}

func TestRecordDeleteNotFound(t *testing.T) {
	r := newRecordRouter(storage.NewMemStorage())
	w, _ := doJSON(t, r, http.MethodDelete, "/personal-records/none", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
