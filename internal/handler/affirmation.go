package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/avisbal23/LiftWithAlex-sub000/internal/models"
	"github.com/avisbal23/LiftWithAlex-sub000/internal/storage"
	"github.com/avisbal23/LiftWithAlex-sub000/internal/util"
)

// AffirmationHandler serves affirmations.
type AffirmationHandler struct {
	Store storage.Storage
	Log   *zap.Logger
}

func NewAffirmationHandler(store storage.Storage, log *zap.Logger) *AffirmationHandler {
	return &AffirmationHandler{Store: store, Log: log}
}

func (h *AffirmationHandler) List(c *gin.Context) {
	items, err := h.Store.ListAffirmations()
	if err != nil {
		h.Log.Error("list affirmations", zap.Error(err))
		util.ServerError(c)
		return
	}
	util.Success(c, util.Response{"affirmations": items})
}

func (h *AffirmationHandler) ListActive(c *gin.Context) {
	items, err := h.Store.ListActiveAffirmations()
	if err != nil {
		h.Log.Error("list active affirmations", zap.Error(err))
		util.ServerError(c)
		return
	}
	util.Success(c, util.Response{"affirmations": items})
}

func affirmationFromInsert(req *models.AffirmationInsert) models.Affirmation {
	a := models.Affirmation{
		Text:     req.Text,
		Category: req.Category,
		IsActive: 1,
		AudioURL: req.AudioURL,
	}
	if req.IsActive != nil {
		a.IsActive = *req.IsActive
	}
	return a
}

func (h *AffirmationHandler) Create(c *gin.Context) {
	var req models.AffirmationInsert
	if !bindJSON(c, &req) {
		return
	}

	a := affirmationFromInsert(&req)
	if err := h.Store.CreateAffirmation(&a); err != nil {
		h.Log.Error("create affirmation", zap.Error(err))
		util.ServerError(c)
		return
	}
	util.Success(c, util.Response{"affirmation": a})
}

type affirmationBulkReq struct {
	Items []models.AffirmationInsert `json:"items" binding:"required,min=1,dive"`
}

// CreateBulk inserts a batch of affirmations in one call. Rows are
// independent; a failed insert is reported and the rest continue.
func (h *AffirmationHandler) CreateBulk(c *gin.Context) {
	var req affirmationBulkReq
	if !bindJSON(c, &req) {
		return
	}

	created := make([]models.Affirmation, 0, len(req.Items))
	var errs []string
	for i, item := range req.Items {
		a := affirmationFromInsert(&item)
		if err := h.Store.CreateAffirmation(&a); err != nil {
			h.Log.Error("create affirmation", zap.Int("index", i), zap.Error(err))
			errs = append(errs, fmt.Sprintf("item %d: insert failed", i))
			continue
		}
		created = append(created, a)
	}

	util.Success(c, util.Response{"affirmations": created, "errors": errs})
}

func (h *AffirmationHandler) Update(c *gin.Context) {
	id := c.Param("id")
	var req models.AffirmationUpdate
	if !bindJSON(c, &req) {
		return
	}

	a, err := h.Store.UpdateAffirmation(id, &req)
	if err != nil {
		h.Log.Error("update affirmation", zap.String("id", id), zap.Error(err))
		util.ServerError(c)
		return
	}
	if a == nil {
		util.NotFound(c, "affirmation not found")
		return
	}
	util.Success(c, util.Response{"affirmation": a})
}

func (h *AffirmationHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	deleted, err := h.Store.DeleteAffirmation(id)
	if err != nil {
		h.Log.Error("delete affirmation", zap.String("id", id), zap.Error(err))
		util.ServerError(c)
		return
	}
	if !deleted {
		util.NotFound(c, "affirmation not found")
		return
	}
	util.Success(c, util.Response{"deleted": true})
}
