package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/avisbal23/LiftWithAlex-sub000/internal/audit"
	"github.com/avisbal23/LiftWithAlex-sub000/internal/models"
	"github.com/avisbal23/LiftWithAlex-sub000/internal/stats"
	"github.com/avisbal23/LiftWithAlex-sub000/internal/storage"
	"github.com/avisbal23/LiftWithAlex-sub000/internal/util"
)

// RecordHandler serves personal records and their change ledger.
type RecordHandler struct {
	Store storage.Storage
	Log   *zap.Logger
}

func NewRecordHandler(store storage.Storage, log *zap.Logger) *RecordHandler {
	return &RecordHandler{Store: store, Log: log}
}

type recordResp struct {
	models.PersonalRecord
	// BodyWeightPct is the PR weight as a percentage of current body weight,
	// recomputed on every read; nil when either operand is non-positive.
	BodyWeightPct *string `json:"bodyWeightPct"`
}

func (h *RecordHandler) List(c *gin.Context) {
	records, err := h.Store.ListPersonalRecords()
	if err != nil {
		h.Log.Error("list personal records", zap.Error(err))
		util.ServerError(c)
		return
	}

	settings, err := h.Store.GetUserSettings()
	if err != nil {
		h.Log.Error("get user settings", zap.Error(err))
		util.ServerError(c)
		return
	}

	items := make([]recordResp, 0, len(records))
	for _, r := range records {
		items = append(items, recordResp{
			PersonalRecord: r,
			BodyWeightPct:  stats.BodyWeightPct(r.Weight, settings.CurrentBodyWeight),
		})
	}
	util.Success(c, util.Response{"personalRecords": items})
}

func (h *RecordHandler) Create(c *gin.Context) {
	var req models.PersonalRecordInsert
	if !bindJSON(c, &req) {
		return
	}

	r := models.PersonalRecord{
		ExerciseName: req.ExerciseName,
		Weight:       req.Weight,
		Reps:         req.Reps,
		TimeSeconds:  req.TimeSeconds,
		Category:     req.Category,
		Order:        req.Order,
	}
	if err := h.Store.CreatePersonalRecord(&r); err != nil {
		h.Log.Error("create personal record", zap.Error(err))
		util.ServerError(c)
		return
	}
	util.Success(c, util.Response{"personalRecord": r})
}

func (h *RecordHandler) Update(c *gin.Context) {
	id := c.Param("id")
	var req models.PersonalRecordUpdate
	if !bindJSON(c, &req) {
		return
	}

	prev, err := h.Store.GetPersonalRecord(id)
	if err != nil {
		h.Log.Error("get personal record", zap.String("id", id), zap.Error(err))
		util.ServerError(c)
		return
	}
	if prev == nil {
		util.NotFound(c, "personal record not found")
		return
	}

	next, err := h.Store.UpdatePersonalRecord(id, &req)
	if err != nil {
		h.Log.Error("update personal record", zap.String("id", id), zap.Error(err))
		util.ServerError(c)
		return
	}
	if next == nil {
		util.NotFound(c, "personal record not found")
		return
	}

	for _, row := range audit.PRUpdated(prev, next, models.AuditSourceManual) {
		if err := h.Store.CreatePRChangesAudit(row); err != nil {
			h.Log.Error("write pr audit", zap.String("id", id), zap.Error(err))
		}
	}

	util.Success(c, util.Response{"personalRecord": next})
}

func (h *RecordHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	prev, err := h.Store.GetPersonalRecord(id)
	if err != nil {
		h.Log.Error("get personal record", zap.String("id", id), zap.Error(err))
		util.ServerError(c)
		return
	}
	if prev == nil {
		util.NotFound(c, "personal record not found")
		return
	}

	deleted, err := h.Store.DeletePersonalRecord(id)
	if err != nil {
		h.Log.Error("delete personal record", zap.String("id", id), zap.Error(err))
		util.ServerError(c)
		return
	}
	if !deleted {
		util.NotFound(c, "personal record not found")
		return
	}

	for _, row := range audit.PRDeleted(prev, models.AuditSourceManual) {
		if err := h.Store.CreatePRChangesAudit(row); err != nil {
			h.Log.Error("write pr audit", zap.String("id", id), zap.Error(err))
		}
	}

	util.Success(c, util.Response{"deleted": true})
}

type reorderReq struct {
	Items []struct {
		ID    string `json:"id" binding:"required"`
		Order int    `json:"order"`
	} `json:"items" binding:"required,dive"`
}

// Reorder applies a drag-and-drop ordering as a sequential loop of
// single-row updates. Consistency across the batch is best-effort: a failure
// partway through leaves earlier rows already moved.
func (h *RecordHandler) Reorder(c *gin.Context) {
	var req reorderReq
	if !bindJSON(c, &req) {
		return
	}

	updated := 0
	var errs []string
	for _, item := range req.Items {
		order := item.Order
		r, err := h.Store.UpdatePersonalRecord(item.ID, &models.PersonalRecordUpdate{Order: &order})
		if err != nil {
			h.Log.Error("reorder personal record", zap.String("id", item.ID), zap.Error(err))
			errs = append(errs, item.ID+": update failed")
			continue
		}
		if r == nil {
			errs = append(errs, item.ID+": not found")
			continue
		}
		updated++
	}

	util.Success(c, util.Response{"updated": updated, "errors": errs})
}
