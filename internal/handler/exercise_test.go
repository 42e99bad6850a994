package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/avisbal23/LiftWithAlex-sub000/internal/models"
	"github.com/avisbal23/LiftWithAlex-sub000/internal/storage"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type envelope struct {
	Code    int                        `json:"code"`
	Message string                     `json:"message"`
	Data    map[string]json.RawMessage `json:"data"`
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func newExerciseRouter(store storage.Storage) *gin.Engine {
	h := NewExerciseHandler(store, zap.NewNop())
	r := gin.New()
	r.GET("/exercises", h.List)
	r.GET("/exercises/:category", h.ListByCategory)
	r.POST("/exercises", h.Create)
	r.PATCH("/exercises/:id", h.Update)
	r.DELETE("/exercises/:id", h.Delete)
	r.POST("/exercises/import", h.Import)
	return r
}

func TestExerciseCreateAndList(t *testing.T) {
	store := storage.NewMemStorage()
	r := newExerciseRouter(store)

	w, env := doJSON(t, r, http.MethodPost, "/exercises", gin.H{
		"name": "Bench Press", "weight": 135, "reps": 8, "category": "push", "order": 1,
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, env.Code)

	w, env = doJSON(t, r, http.MethodGet, "/exercises", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var exercises []models.Exercise
	require.NoError(t, json.Unmarshal(env.Data["exercises"], &exercises))
	require.Len(t, exercises, 1)
	assert.Equal(t, "Bench Press", exercises[0].Name)
	assert.NotEmpty(t, exercises[0].ID)
}

func TestExerciseCreateValidation(t *testing.T) {
	r := newExerciseRouter(storage.NewMemStorage())

	// missing name
	w, _ := doJSON(t, r, http.MethodPost, "/exercises", gin.H{"category": "push"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// unknown category
	w, _ = doJSON(t, r, http.MethodPost, "/exercises", gin.H{"name": "Curl", "category": "arms"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExerciseListByUnknownCategory(t *testing.T) {
	r := newExerciseRouter(storage.NewMemStorage())
	w, env := doJSON(t, r, http.MethodGet, "/exercises/arms", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NotEqual(t, 0, env.Code)
}

func TestExerciseUpdateNotFound(t *testing.T) {
	r := newExerciseRouter(storage.NewMemStorage())
	w, _ := doJSON(t, r, http.MethodPatch, "/exercises/does-not-exist", gin.H{"weight": 140})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestExerciseUpdateWritesAudit(t *testing.T) {
	store := storage.NewMemStorage()
	r := newExerciseRouter(store)

	e := models.Exercise{Name: "Bench Press", Weight: 135, Category: "push"}
	require.NoError(t, store.CreateExercise(&e))

	w, _ := doJSON(t, r, http.MethodPatch, "/exercises/"+e.ID, gin.H{"weight": 140})
	require.Equal(t, http.StatusOK, w.Code)

	audits, err := store.ListChangesAudits()
	require.NoError(t, err)
	require.Len(t, audits, 1)
	assert.Equal(t, models.AuditActionUpdate, audits[0].Action)
	require.NotNil(t, audits[0].WeightDelta)
	assert.Equal(t, 5.0, *audits[0].WeightDelta)

	// a no-weight-change update must not add a ledger row
	w, _ = doJSON(t, r, http.MethodPatch, "/exercises/"+e.ID, gin.H{"notes": "tempo work"})
	require.Equal(t, http.StatusOK, w.Code)
	audits, err = store.ListChangesAudits()
	require.NoError(t, err)
	assert.Len(t, audits, 1)
}

func TestExerciseImportReplacesCategory(t *testing.T) {
	store := storage.NewMemStorage()
	r := newExerciseRouter(store)

	old := models.Exercise{Name: "Bench Press", Weight: 135, Category: "push"}
	require.NoError(t, store.CreateExercise(&old))

	w, env := doJSON(t, r, http.MethodPost, "/exercises/import", gin.H{
		"category": "push",
		"text":     "ORDER|TITLE|WEIGHT|REPS|NOTES\n1|Bench Press|145|8|pr attempt\n2|Dips|0|12|bodyweight\nbad line",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var summary struct {
		Imported int      `json:"imported"`
		Failed   int      `json:"failed"`
		Errors   []string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(env.Data["summary"], &summary))
	assert.Equal(t, 2, summary.Imported)
	assert.Equal(t, 1, summary.Failed)

	push, err := store.ListExercisesByCategory("push")
	require.NoError(t, err)
	require.Len(t, push, 2, "import replaces the category wholesale")

	// 135 -> 145 is an increase over the prior max, so it gets a ledger row
	audits, err := store.ListChangesAudits()
	require.NoError(t, err)
	require.Len(t, audits, 1)
	assert.Equal(t, models.AuditActionImport, audits[0].Action)
	assert.Equal(t, "Bench Press", audits[0].ExerciseName)
}

func TestExerciseImportNoAuditOnDecrease(t *testing.T) {
	store := storage.NewMemStorage()
	r := newExerciseRouter(store)

	old := models.Exercise{Name: "Bench Press", Weight: 150, Category: "push"}
	require.NoError(t, store.CreateExercise(&old))

	w, _ := doJSON(t, r, http.MethodPost, "/exercises/import", gin.H{
		"category": "push",
		"text":     "1|Bench Press|145|8|deload",
	})
	require.Equal(t, http.StatusOK, w.Code)

	audits, err := store.ListChangesAudits()
	require.NoError(t, err)
	assert.Empty(t, audits, "decreases are not flagged on the import path")
}
