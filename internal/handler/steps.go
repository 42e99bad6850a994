package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/avisbal23/LiftWithAlex-sub000/internal/models"
	"github.com/avisbal23/LiftWithAlex-sub000/internal/stats"
	"github.com/avisbal23/LiftWithAlex-sub000/internal/storage"
	"github.com/avisbal23/LiftWithAlex-sub000/internal/util"
)

// StepsHandler serves daily step counts and their rolling totals.
type StepsHandler struct {
	Store storage.Storage
	Log   *zap.Logger
	// Now is swappable for tests; defaults to time.Now.
	Now func() time.Time
}

func NewStepsHandler(store storage.Storage, log *zap.Logger) *StepsHandler {
	return &StepsHandler{Store: store, Log: log, Now: time.Now}
}

func (h *StepsHandler) List(c *gin.Context) {
	entries, err := h.Store.ListStepEntries()
	if err != nil {
		h.Log.Error("list step entries", zap.Error(err))
		util.ServerError(c)
		return
	}
	util.Success(c, util.Response{"stepEntries": entries})
}

// Stats returns rolling 7/30/365-day totals, recomputed on every call.
func (h *StepsHandler) Stats(c *gin.Context) {
	entries, err := h.Store.ListStepEntries()
	if err != nil {
		h.Log.Error("list step entries", zap.Error(err))
		util.ServerError(c)
		return
	}
	util.Success(c, util.Response{"stats": stats.StepTotals(entries, h.Now())})
}

func (h *StepsHandler) Create(c *gin.Context) {
	var req models.StepEntryInsert
	if !bindJSON(c, &req) {
		return
	}
	t, err := util.ParseDate(req.Date)
	if err != nil {
		util.ValidationError(c, []util.FieldError{{Field: "date", Message: err.Error()}})
		return
	}

	e := models.StepEntry{Date: t, Steps: req.Steps}
	if err := h.Store.CreateStepEntry(&e); err != nil {
		h.Log.Error("create step entry", zap.Error(err))
		util.ServerError(c)
		return
	}
	util.Success(c, util.Response{"stepEntry": e})
}

func (h *StepsHandler) Update(c *gin.Context) {
	id := c.Param("id")
	var req models.StepEntryUpdate
	if !bindJSON(c, &req) {
		return
	}
	if req.Date != nil {
		t, err := util.ParseDate(*req.Date)
		if err != nil {
			util.ValidationError(c, []util.FieldError{{Field: "date", Message: err.Error()}})
			return
		}
		req.ParsedDate = &t
	}

	e, err := h.Store.UpdateStepEntry(id, &req)
	if err != nil {
		h.Log.Error("update step entry", zap.String("id", id), zap.Error(err))
		util.ServerError(c)
		return
	}
	if e == nil {
		util.NotFound(c, "step entry not found")
		return
	}
	util.Success(c, util.Response{"stepEntry": e})
}

func (h *StepsHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	deleted, err := h.Store.DeleteStepEntry(id)
	if err != nil {
		h.Log.Error("delete step entry", zap.String("id", id), zap.Error(err))
		util.ServerError(c)
		return
	}
	if !deleted {
		util.NotFound(c, "step entry not found")
		return
	}
	util.Success(c, util.Response{"deleted": true})
}
