package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/avisbal23/LiftWithAlex-sub000/internal/models"
	"github.com/avisbal23/LiftWithAlex-sub000/internal/stats"
	"github.com/avisbal23/LiftWithAlex-sub000/internal/storage"
	"github.com/avisbal23/LiftWithAlex-sub000/internal/util"
)

// CardioHandler serves cardio sessions, their rolling totals, and the
// voice-transcript parsing proxy.
type CardioHandler struct {
	Store storage.Storage
	Log   *zap.Logger
	// ParserURL is the external voice-parser endpoint; empty means the
	// feature is not configured and /parse-voice answers 503.
	ParserURL string
	Client    *http.Client
	Now       func() time.Time
}

func NewCardioHandler(store storage.Storage, log *zap.Logger, parserURL string) *CardioHandler {
	return &CardioHandler{
		Store:     store,
		Log:       log,
		ParserURL: parserURL,
		Client:    &http.Client{Timeout: 15 * time.Second},
		Now:       time.Now,
	}
}

func (h *CardioHandler) List(c *gin.Context) {
	entries, err := h.Store.ListCardioLogEntries()
	if err != nil {
		h.Log.Error("list cardio entries", zap.Error(err))
		util.ServerError(c)
		return
	}
	util.Success(c, util.Response{"cardioEntries": entries})
}

// Stats returns rolling 7/30/365-day totals with distances normalized to miles.
func (h *CardioHandler) Stats(c *gin.Context) {
	entries, err := h.Store.ListCardioLogEntries()
	if err != nil {
		h.Log.Error("list cardio entries", zap.Error(err))
		util.ServerError(c)
		return
	}
	util.Success(c, util.Response{"stats": stats.CardioTotals(entries, h.Now())})
}

func (h *CardioHandler) Create(c *gin.Context) {
	var req models.CardioLogEntryInsert
	if !bindJSON(c, &req) {
		return
	}
	t, err := util.ParseDate(req.Date)
	if err != nil {
		util.ValidationError(c, []util.FieldError{{Field: "date", Message: err.Error()}})
		return
	}

	e := models.CardioLogEntry{
		Date:            t,
		ActivityType:    req.ActivityType,
		DurationMinutes: req.DurationMinutes,
		DistanceText:    req.Distance,
		Calories:        req.Calories,
		Notes:           req.Notes,
	}
	if err := h.Store.CreateCardioLogEntry(&e); err != nil {
		h.Log.Error("create cardio entry", zap.Error(err))
		util.ServerError(c)
		return
	}
	util.Success(c, util.Response{"cardioEntry": e})
}

func (h *CardioHandler) Update(c *gin.Context) {
	id := c.Param("id")
	var req models.CardioLogEntryUpdate
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

	e, err := h.Store.UpdateCardioLogEntry(id, &req)
	if err != nil {
		h.Log.Error("update cardio entry", zap.String("id", id), zap.Error(err))
		util.ServerError(c)
		return
	}
	if e == nil {
		util.NotFound(c, "cardio entry not found")
		return
	}
	util.Success(c, util.Response{"cardioEntry": e})
}

func (h *CardioHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	deleted, err := h.Store.DeleteCardioLogEntry(id)
	if err != nil {
		h.Log.Error("delete cardio entry", zap.String("id", id), zap.Error(err))
		util.ServerError(c)
		return
	}
	if !deleted {
		util.NotFound(c, "cardio entry not found")
		return
	}
	util.Success(c, util.Response{"deleted": true})
}

type parseVoiceReq struct {
	Transcript string `json:"transcript" binding:"required"`
}

// ParseVoice forwards a spoken-workout transcript to the configured external
// parser and relays its structured result. Nothing is persisted here; the
// client reviews the parse and submits a normal create afterwards.
func (h *CardioHandler) ParseVoice(c *gin.Context) {
	if h.ParserURL == "" {
		util.Error(c, http.StatusServiceUnavailable, util.CodeUnavailable, "voice parser not configured")
		return
	}

	var req parseVoiceReq
	if !bindJSON(c, &req) {
		return
	}

	body, _ := json.Marshal(gin.H{"transcript": req.Transcript})
	httpReq, err := http.NewRequestWithContext(c.Request.Context(), http.MethodPost, h.ParserURL, bytes.NewReader(body))
	if err != nil {
		h.Log.Error("build voice parser request", zap.Error(err))
		util.ServerError(c)
		return
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := h.Client.Do(httpReq)
	if err != nil {
		h.Log.Error("voice parser unreachable", zap.Error(err))
		util.Error(c, http.StatusBadGateway, util.CodeUnavailable, "voice parser unreachable")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		h.Log.Error("voice parser failed", zap.Int("status", resp.StatusCode))
		util.Error(c, http.StatusBadGateway, util.CodeUnavailable, "voice parser failed")
		return
	}

	var parsed map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		h.Log.Error("decode voice parser response", zap.Error(err))
		util.Error(c, http.StatusBadGateway, util.CodeUnavailable, "voice parser returned malformed output")
		return
	}

	util.Success(c, util.Response{"parsed": parsed})
}
