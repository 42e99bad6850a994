package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/avisbal23/LiftWithAlex-sub000/internal/storage"
)

func newWorkoutLogRouter(store storage.Storage) *gin.Engine {
	h := NewWorkoutLogHandler(store, zap.NewNop())
	r := gin.New()
	r.POST("/workout-logs", h.Create)
	r.GET("/workout-logs", h.List)
	r.GET("/workout-logs/latest", h.Latest)
	return r
}

func TestWorkoutLogCycle(t *testing.T) {
	store := storage.NewMemStorage()
	r := newWorkoutLogRouter(store)

	// empty log: the cycle starts at the beginning
	_, env := doJSON(t, r, http.MethodGet, "/workout-logs/latest", nil)
	var next string
	require.NoError(t, json.Unmarshal(env.Data["nextCategory"], &next))
	assert.Equal(t, "push", next)
	assert.Equal(t, "null", string(env.Data["workoutLog"]))

	w, _ := doJSON(t, r, http.MethodPost, "/workout-logs", gin.H{"category": "push", "completedAt": "2025-08-18"})
	require.Equal(t, http.StatusOK, w.Code)

	_, env = doJSON(t, r, http.MethodGet, "/workout-logs/latest", nil)
	require.NoError(t, json.Unmarshal(env.Data["nextCategory"], &next))
	assert.Equal(t, "pull", next)

	// cardio wraps back around to push
	doJSON(t, r, http.MethodPost, "/workout-logs", gin.H{"category": "cardio", "completedAt": "2025-08-19"})
	_, env = doJSON(t, r, http.MethodGet, "/workout-logs/latest", nil)
	require.NoError(t, json.Unmarshal(env.Data["nextCategory"], &next))
	assert.Equal(t, "push", next)
}

func TestWorkoutLogRejectsUnknownCategory(t *testing.T) {
	r := newWorkoutLogRouter(storage.NewMemStorage())
	w, _ := doJSON(t, r, http.MethodPost, "/workout-logs", gin.H{"category": "arms"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
