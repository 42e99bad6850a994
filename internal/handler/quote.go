package handler

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/avisbal23/LiftWithAlex-sub000/internal/importer"
	"github.com/avisbal23/LiftWithAlex-sub000/internal/models"
	"github.com/avisbal23/LiftWithAlex-sub000/internal/storage"
	"github.com/avisbal23/LiftWithAlex-sub000/internal/util"
)

// QuoteHandler serves motivational quotes.
type QuoteHandler struct {
	Store storage.Storage
	Log   *zap.Logger
}

func NewQuoteHandler(store storage.Storage, log *zap.Logger) *QuoteHandler {
	return &QuoteHandler{Store: store, Log: log}
}

func (h *QuoteHandler) List(c *gin.Context) {
	quotes, err := h.Store.ListQuotes()
	if err != nil {
		h.Log.Error("list quotes", zap.Error(err))
		util.ServerError(c)
		return
	}
	util.Success(c, util.Response{"quotes": quotes})
}

func (h *QuoteHandler) ListActive(c *gin.Context) {
	quotes, err := h.Store.ListActiveQuotes()
	if err != nil {
		h.Log.Error("list active quotes", zap.Error(err))
		util.ServerError(c)
		return
	}
	util.Success(c, util.Response{"quotes": quotes})
}

// Random picks one active quote at random. With zero active quotes the
// response carries a null quote rather than a 404: the dashboard treats an
// empty pool as "nothing to show", not an error.
func (h *QuoteHandler) Random(c *gin.Context) {
	q, err := h.Store.RandomActiveQuote()
	if err != nil {
		h.Log.Error("random quote", zap.Error(err))
		util.ServerError(c)
		return
	}
	util.Success(c, util.Response{"quote": q})
}

func (h *QuoteHandler) Create(c *gin.Context) {
	var req models.QuoteInsert
	if !bindJSON(c, &req) {
		return
	}

	q := models.Quote{Text: req.Text, Author: req.Author, IsActive: 1}
	if req.IsActive != nil {
		q.IsActive = *req.IsActive
	}
	if err := h.Store.CreateQuote(&q); err != nil {
		h.Log.Error("create quote", zap.Error(err))
		util.ServerError(c)
		return
	}
	util.Success(c, util.Response{"quote": q})
}

func (h *QuoteHandler) Update(c *gin.Context) {
	id := c.Param("id")
	var req models.QuoteUpdate
	if !bindJSON(c, &req) {
		return
	}

	q, err := h.Store.UpdateQuote(id, &req)
	if err != nil {
		h.Log.Error("update quote", zap.String("id", id), zap.Error(err))
		util.ServerError(c)
		return
	}
	if q == nil {
		util.NotFound(c, "quote not found")
		return
	}
	util.Success(c, util.Response{"quote": q})
}

func (h *QuoteHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	deleted, err := h.Store.DeleteQuote(id)
	if err != nil {
		h.Log.Error("delete quote", zap.String("id", id), zap.Error(err))
		util.ServerError(c)
		return
	}
	if !deleted {
		util.NotFound(c, "quote not found")
		return
	}
	util.Success(c, util.Response{"deleted": true})
}

type quoteImportReq struct {
	Text string `json:"text" binding:"required"`
}

// Import parses one quote per line, splitting text from author on the last
// " - " separator. Accepts a multipart "file" upload or inline JSON text.
func (h *QuoteHandler) Import(c *gin.Context) {
	var text string
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		file, _, err := c.Request.FormFile("file")
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "missing file")
			return
		}
		defer file.Close()
		var b strings.Builder
		if _, err := io.Copy(&b, file); err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "unreadable file")
			return
		}
		text = b.String()
	} else {
		var req quoteImportReq
		if !bindJSON(c, &req) {
			return
		}
		text = req.Text
	}

	parsed := importer.ParseQuoteLines(text)
	imported := 0
	var errs []string
	for _, p := range parsed {
		q := models.Quote{Text: p.Text, Author: p.Author, IsActive: 1}
		if err := h.Store.CreateQuote(&q); err != nil {
			errs = append(errs, p.Text+": insert failed")
			continue
		}
		imported++
	}

	util.Success(c, util.Response{
		"summary": importer.Summary{Imported: imported, Failed: len(errs), Errors: errs},
	})
}
