package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/avisbal23/LiftWithAlex-sub000/internal/models"
	"github.com/avisbal23/LiftWithAlex-sub000/internal/storage"
	"github.com/avisbal23/LiftWithAlex-sub000/internal/util"
)

// SupplementHandler serves the supplement stack.
type SupplementHandler struct {
	Store storage.Storage
	Log   *zap.Logger
}

func NewSupplementHandler(store storage.Storage, log *zap.Logger) *SupplementHandler {
	return &SupplementHandler{Store: store, Log: log}
}

func (h *SupplementHandler) List(c *gin.Context) {
	supplements, err := h.Store.ListSupplements()
	if err != nil {
		h.Log.Error("list supplements", zap.Error(err))
		util.ServerError(c)
		return
	}
	util.Success(c, util.Response{"supplements": supplements})
}

func supplementFromInsert(req *models.SupplementInsert) models.Supplement {
	s := models.Supplement{
		Name:      req.Name,
		Dosage:    req.Dosage,
		Unit:      req.Unit,
		TimeOfDay: req.TimeOfDay,
		Notes:     req.Notes,
		IsActive:  1,
	}
	if req.IsActive != nil {
		s.IsActive = *req.IsActive
	}
	return s
}

func (h *SupplementHandler) Create(c *gin.Context) {
	var req models.SupplementInsert
	if !bindJSON(c, &req) {
		return
	}

	s := supplementFromInsert(&req)
	if err := h.Store.CreateSupplement(&s); err != nil {
		h.Log.Error("create supplement", zap.Error(err))
		util.ServerError(c)
		return
	}
	util.Success(c, util.Response{"supplement": s})
}

type supplementBulkReq struct {
	Items []models.SupplementInsert `json:"items" binding:"required,min=1,dive"`
}

// CreateBulk inserts a whole stack in one call, preserving item order.
func (h *SupplementHandler) CreateBulk(c *gin.Context) {
	var req supplementBulkReq
	if !bindJSON(c, &req) {
		return
	}

	created := make([]models.Supplement, 0, len(req.Items))
	var errs []string
	for i, item := range req.Items {
		s := supplementFromInsert(&item)
		if err := h.Store.CreateSupplement(&s); err != nil {
			h.Log.Error("create supplement", zap.Int("index", i), zap.Error(err))
			errs = append(errs, fmt.Sprintf("item %d: insert failed", i))
			continue
		}
		created = append(created, s)
	}

	util.Success(c, util.Response{"supplements": created, "errors": errs})
}

func (h *SupplementHandler) Update(c *gin.Context) {
	id := c.Param("id")
	var req models.SupplementUpdate
	if !bindJSON(c, &req) {
		return
	}

	s, err := h.Store.UpdateSupplement(id, &req)
	if err != nil {
		h.Log.Error("update supplement", zap.String("id", id), zap.Error(err))
		util.ServerError(c)
		return
	}
	if s == nil {
		util.NotFound(c, "supplement not found")
		return
	}
	util.Success(c, util.Response{"supplement": s})
}

func (h *SupplementHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	deleted, err := h.Store.DeleteSupplement(id)
	if err != nil {
		h.Log.Error("delete supplement", zap.String("id", id), zap.Error(err))
		util.ServerError(c)
		return
	}
	if !deleted {
		util.NotFound(c, "supplement not found")
		return
	}
	util.Success(c, util.Response{"deleted": true})
}
