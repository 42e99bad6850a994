package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/avisbal23/LiftWithAlex-sub000/internal/storage"
	"github.com/avisbal23/LiftWithAlex-sub000/internal/util"
)

// AuditLogHandler serves the three read-only change ledgers. There are no
// write endpoints here: ledger rows only appear as side effects of weight,
// exercise and PR mutations, and are never edited afterwards.
type AuditLogHandler struct {
	Store storage.Storage
	Log   *zap.Logger
}

func NewAuditLogHandler(store storage.Storage, log *zap.Logger) *AuditLogHandler {
	return &AuditLogHandler{Store: store, Log: log}
}

// pageParams reads ?page / ?page_size with the usual clamps.
func pageParams(c *gin.Context) (page, size int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}
	size, _ = strconv.Atoi(c.DefaultQuery("page_size", "50"))
	if size <= 0 || size > 200 {
		size = 50
	}
	return page, size
}

func paginate(total, page, size int) (start, end int) {
	start = (page - 1) * size
	if start > total {
		return total, total
	}
	end = start + size
	if end > total {
		end = total
	}
	return start, end
}

func (h *AuditLogHandler) ListWeightAudits(c *gin.Context) {
	rows, err := h.Store.ListWeightAudits()
	if err != nil {
		h.Log.Error("list weight audits", zap.Error(err))
		util.ServerError(c)
		return
	}
	page, size := pageParams(c)
	start, end := paginate(len(rows), page, size)
	util.Success(c, util.Response{
		"items": rows[start:end],
		"total": len(rows),
		"page":  page,
		"size":  size,
	})
}

func (h *AuditLogHandler) ListChangesAudits(c *gin.Context) {
	rows, err := h.Store.ListChangesAudits()
	if err != nil {
		h.Log.Error("list exercise audits", zap.Error(err))
		util.ServerError(c)
		return
	}
	page, size := pageParams(c)
	start, end := paginate(len(rows), page, size)
	util.Success(c, util.Response{
		"items": rows[start:end],
		"total": len(rows),
		"page":  page,
		"size":  size,
	})
}

func (h *AuditLogHandler) ListPRChangesAudits(c *gin.Context) {
	rows, err := h.Store.ListPRChangesAudits()
	if err != nil {
		h.Log.Error("list pr audits", zap.Error(err))
		util.ServerError(c)
		return
	}
	page, size := pageParams(c)
	start, end := paginate(len(rows), page, size)
	util.Success(c, util.Response{
		"items": rows[start:end],
		"total": len(rows),
		"page":  page,
		"size":  size,
	})
}
