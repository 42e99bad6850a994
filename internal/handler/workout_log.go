package handler

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/avisbal23/LiftWithAlex-sub000/internal/models"
	"github.com/avisbal23/LiftWithAlex-sub000/internal/storage"
	"github.com/avisbal23/LiftWithAlex-sub000/internal/util"
)

// WorkoutLogHandler serves the append-only workout completion log.
type WorkoutLogHandler struct {
	Store storage.Storage
	Log   *zap.Logger
}

func NewWorkoutLogHandler(store storage.Storage, log *zap.Logger) *WorkoutLogHandler {
	return &WorkoutLogHandler{Store: store, Log: log}
}

func (h *WorkoutLogHandler) Create(c *gin.Context) {
	var req models.WorkoutLogInsert
	if !bindJSON(c, &req) {
		return
	}
	if !models.IsWorkoutCategory(req.Category) {
		util.ValidationError(c, []util.FieldError{{Field: "category", Message: "must be one of: " + strings.Join(models.WorkoutCategories, " ")}})
		return
	}

	l := models.WorkoutLog{Category: req.Category}
	if req.CompletedAt != "" {
		t, err := util.ParseDate(req.CompletedAt)
		if err != nil {
			util.ValidationError(c, []util.FieldError{{Field: "completedAt", Message: err.Error()}})
			return
		}
		l.CompletedAt = t
	}

	if err := h.Store.CreateWorkoutLog(&l); err != nil {
		h.Log.Error("create workout log", zap.Error(err))
		util.ServerError(c)
		return
	}
	util.Success(c, util.Response{"workoutLog": l})
}

func (h *WorkoutLogHandler) List(c *gin.Context) {
	logs, err := h.Store.ListWorkoutLogs()
	if err != nil {
		h.Log.Error("list workout logs", zap.Error(err))
		util.ServerError(c)
		return
	}
	util.Success(c, util.Response{"workoutLogs": logs})
}

// Latest returns the most recent completion plus the next day in the fixed
// category cycle. With no logs at all, the cycle starts from the beginning.
func (h *WorkoutLogHandler) Latest(c *gin.Context) {
	latest, err := h.Store.LatestWorkoutLog()
	if err != nil {
		h.Log.Error("latest workout log", zap.Error(err))
		util.ServerError(c)
		return
	}

	next := models.WorkoutCategories[0]
	if latest != nil {
		next = models.NextWorkoutCategory(latest.Category)
	}

	util.Success(c, util.Response{
		"workoutLog":   latest,
		"nextCategory": next,
	})
}
