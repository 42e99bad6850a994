package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/avisbal23/LiftWithAlex-sub000/internal/models"
	"github.com/avisbal23/LiftWithAlex-sub000/internal/storage"
	"github.com/avisbal23/LiftWithAlex-sub000/internal/util"
)

// PhotoHandler serves progress photo references.
type PhotoHandler struct {
	Store storage.Storage
	Log   *zap.Logger
}

func NewPhotoHandler(store storage.Storage, log *zap.Logger) *PhotoHandler {
	return &PhotoHandler{Store: store, Log: log}
}

func (h *PhotoHandler) List(c *gin.Context) {
	photos, err := h.Store.ListPhotoProgress()
	if err != nil {
		h.Log.Error("list progress photos", zap.Error(err))
		util.ServerError(c)
		return
	}
	util.Success(c, util.Response{"photos": photos})
}

func (h *PhotoHandler) Create(c *gin.Context) {
	var req models.PhotoProgressInsert
	if !bindJSON(c, &req) {
		return
	}
	t, err := util.ParseDate(req.Date)
	if err != nil {
		util.ValidationError(c, []util.FieldError{{Field: "date", Message: err.Error()}})
		return
	}

	p := models.PhotoProgress{
		Date:     t,
		PhotoURL: req.PhotoURL,
		Weight:   req.Weight,
		Notes:    req.Notes,
	}
	if err := h.Store.CreatePhotoProgress(&p); err != nil {
		h.Log.Error("create progress photo", zap.Error(err))
		util.ServerError(c)
		return
	}
	util.Success(c, util.Response{"photo": p})
}

func (h *PhotoHandler) Update(c *gin.Context) {
	id := c.Param("id")
	var req models.PhotoProgressUpdate
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

	p, err := h.Store.UpdatePhotoProgress(id, &req)
	if err != nil {
		h.Log.Error("update progress photo", zap.String("id", id), zap.Error(err))
		util.ServerError(c)
		return
	}
	if p == nil {
		util.NotFound(c, "progress photo not found")
		return
	}
	util.Success(c, util.Response{"photo": p})
}

func (h *PhotoHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	deleted, err := h.Store.DeletePhotoProgress(id)
	if err != nil {
		h.Log.Error("delete progress photo", zap.String("id", id), zap.Error(err))
		util.ServerError(c)
		return
	}
	if !deleted {
		util.NotFound(c, "progress photo not found")
		return
	}
	util.Success(c, util.Response{"deleted": true})
}
