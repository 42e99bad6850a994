package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/avisbal23/LiftWithAlex-sub000/internal/models"
	"github.com/avisbal23/LiftWithAlex-sub000/internal/storage"
	"github.com/avisbal23/LiftWithAlex-sub000/internal/util"
)

// SettingsHandler serves navigation settings and the user settings singleton.
type SettingsHandler struct {
	Store storage.Storage
	Log   *zap.Logger
}

func NewSettingsHandler(store storage.Storage, log *zap.Logger) *SettingsHandler {
	return &SettingsHandler{Store: store, Log: log}
}

func (h *SettingsHandler) ListShortcuts(c *gin.Context) {
	items, err := h.Store.ListShortcutSettings()
	if err != nil {
		h.Log.Error("list shortcut settings", zap.Error(err))
		util.ServerError(c)
		return
	}
	util.Success(c, util.Response{"shortcuts": items})
}

func (h *SettingsHandler) UpdateShortcut(c *gin.Context) {
	id := c.Param("id")
	var req models.NavSettingUpdate
	if !bindJSON(c, &req) {
		return
	}

	s, err := h.Store.UpdateShortcutSetting(id, &req)
	if err != nil {
		h.Log.Error("update shortcut setting", zap.String("id", id), zap.Error(err))
		util.ServerError(c)
		return
	}
	if s == nil {
		util.NotFound(c, "shortcut setting not found")
		return
	}
	util.Success(c, util.Response{"shortcut": s})
}

func (h *SettingsHandler) ListTabs(c *gin.Context) {
	items, err := h.Store.ListTabSettings()
	if err != nil {
		h.Log.Error("list tab settings", zap.Error(err))
		util.ServerError(c)
		return
	}
	util.Success(c, util.Response{"tabs": items})
}

func (h *SettingsHandler) UpdateTab(c *gin.Context) {
	id := c.Param("id")
	var req models.NavSettingUpdate
	if !bindJSON(c, &req) {
		return
	}

	t, err := h.Store.UpdateTabSetting(id, &req)
	if err != nil {
		h.Log.Error("update tab setting", zap.String("id", id), zap.Error(err))
		util.ServerError(c)
		return
	}
	if t == nil {
		util.NotFound(c, "tab setting not found")
		return
	}
	util.Success(c, util.Response{"tab": t})
}

// GetUserSettings returns the singleton, creating the default row on first use.
func (h *SettingsHandler) GetUserSettings(c *gin.Context) {
	s, err := h.Store.GetUserSettings()
	if err != nil {
		h.Log.Error("get user settings", zap.Error(err))
		util.ServerError(c)
		return
	}
	util.Success(c, util.Response{"settings": s})
}

func (h *SettingsHandler) UpdateUserSettings(c *gin.Context) {
	var req models.UserSettingsUpdate
	if !bindJSON(c, &req) {
		return
	}

	s, err := h.Store.UpdateUserSettings(&req)
	if err != nil {
		h.Log.Error("update user settings", zap.Error(err))
		util.ServerError(c)
		return
	}
	util.Success(c, util.Response{"settings": s})
}
