package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/avisbal23/LiftWithAlex-sub000/internal/models"
	"github.com/avisbal23/LiftWithAlex-sub000/internal/storage"
	"github.com/avisbal23/LiftWithAlex-sub000/internal/util"
)

// ThoughtHandler serves journal thoughts.
type ThoughtHandler struct {
	Store storage.Storage
	Log   *zap.Logger
}

func NewThoughtHandler(store storage.Storage, log *zap.Logger) *ThoughtHandler {
	return &ThoughtHandler{Store: store, Log: log}
}

func (h *ThoughtHandler) List(c *gin.Context) {
	thoughts, err := h.Store.ListThoughts()
	if err != nil {
		h.Log.Error("list thoughts", zap.Error(err))
		util.ServerError(c)
		return
	}
	util.Success(c, util.Response{"thoughts": thoughts})
}

func (h *ThoughtHandler) Create(c *gin.Context) {
	var req models.ThoughtInsert
	if !bindJSON(c, &req) {
		return
	}

	t := models.Thought{Content: req.Content}
	if err := h.Store.CreateThought(&t); err != nil {
		h.Log.Error("create thought", zap.Error(err))
		util.ServerError(c)
		return
	}
	util.Success(c, util.Response{"thought": t})
}

func (h *ThoughtHandler) Update(c *gin.Context) {
	id := c.Param("id")
	var req models.ThoughtUpdate
	if !bindJSON(c, &req) {
		return
	}

	t, err := h.Store.UpdateThought(id, &req)
	if err != nil {
		h.Log.Error("update thought", zap.String("id", id), zap.Error(err))
		util.ServerError(c)
		return
	}
	if t == nil {
		util.NotFound(c, "thought not found")
		return
	}
	util.Success(c, util.Response{"thought": t})
}

func (h *ThoughtHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	deleted, err := h.Store.DeleteThought(id)
	if err != nil {
		h.Log.Error("delete thought", zap.String("id", id), zap.Error(err))
		util.ServerError(c)
		return
	}
	if !deleted {
		util.NotFound(c, "thought not found")
		return
	}
	util.Success(c, util.Response{"deleted": true})
}
