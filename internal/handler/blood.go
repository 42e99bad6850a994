package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/avisbal23/LiftWithAlex-sub000/internal/importer"
	"github.com/avisbal23/LiftWithAlex-sub000/internal/models"
	"github.com/avisbal23/LiftWithAlex-sub000/internal/storage"
	"github.com/avisbal23/LiftWithAlex-sub000/internal/util"
)

// BloodHandler serves lab-panel entries.
type BloodHandler struct {
	Store storage.Storage
	Log   *zap.Logger
}

func NewBloodHandler(store storage.Storage, log *zap.Logger) *BloodHandler {
	return &BloodHandler{Store: store, Log: log}
}

func bloodEntryFrom(date string, markers map[string]float64, units map[string]string, outOfRange []string) (*models.BloodEntry, *util.FieldError) {
	t, err := util.ParseDate(date)
	if err != nil {
		return nil, &util.FieldError{Field: "date", Message: err.Error()}
	}
	e := &models.BloodEntry{Date: t}
	for name, v := range markers {
		e.SetMarker(name, v) // unknown names are dropped, matching the importer
	}
	e.Units = models.EncodeJSONField(units)
	e.OutOfRange = models.EncodeJSONField(outOfRange)
	return e, nil
}

func (h *BloodHandler) Create(c *gin.Context) {
	var req models.BloodEntryInsert
	if !bindJSON(c, &req) {
		return
	}
	e, ferr := bloodEntryFrom(req.Date, req.Markers, req.Units, req.OutOfRange)
	if ferr != nil {
		util.ValidationError(c, []util.FieldError{*ferr})
		return
	}
	if err := h.Store.CreateBloodEntry(e); err != nil {
		h.Log.Error("create blood entry", zap.Error(err))
		util.ServerError(c)
		return
	}
	util.Success(c, util.Response{"bloodEntry": e})
}

func (h *BloodHandler) Update(c *gin.Context) {
	id := c.Param("id")
	var req models.BloodEntryUpdate
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

	e, err := h.Store.UpdateBloodEntry(id, &req)
	if err != nil {
		h.Log.Error("update blood entry", zap.String("id", id), zap.Error(err))
		util.ServerError(c)
		return
	}
	if e == nil {
		util.NotFound(c, "blood entry not found")
		return
	}
	util.Success(c, util.Response{"bloodEntry": e})
}

func (h *BloodHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	deleted, err := h.Store.DeleteBloodEntry(id)
	if err != nil {
		h.Log.Error("delete blood entry", zap.String("id", id), zap.Error(err))
		util.ServerError(c)
		return
	}
	if !deleted {
		util.NotFound(c, "blood entry not found")
		return
	}
	util.Success(c, util.Response{"deleted": true})
}

func (h *BloodHandler) List(c *gin.Context) {
	entries, err := h.Store.ListBloodEntries()
	if err != nil {
		h.Log.Error("list blood entries", zap.Error(err))
		util.ServerError(c)
		return
	}
	util.Success(c, util.Response{"bloodEntries": entries})
}

func (h *BloodHandler) Get(c *gin.Context) {
	id := c.Param("id")
	e, err := h.Store.GetBloodEntry(id)
	if err != nil {
		h.Log.Error("get blood entry", zap.String("id", id), zap.Error(err))
		util.ServerError(c)
		return
	}
	if e == nil {
		util.NotFound(c, "blood entry not found")
		return
	}
	util.Success(c, util.Response{"bloodEntry": e})
}

type bloodImportReq struct {
	Text string `json:"text" binding:"required"`
}

// Import ingests `marker,value,unit,reference_range,status,time` CSV rows,
// grouped into one entry per distinct draw time. Accepts a multipart "file"
// upload or inline text in a JSON body.
func (h *BloodHandler) Import(c *gin.Context) {
	var (
		panels   []importer.BloodPanel
		lineErrs []string
		err      error
	)

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		file, _, ferr := c.Request.FormFile("file")
		if ferr != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "missing file")
			return
		}
		defer file.Close()
		panels, lineErrs, err = importer.ParseBloodCSV(file)
	} else {
		var req bloodImportReq
		if !bindJSON(c, &req) {
			return
		}
		panels, lineErrs, err = importer.ParseBloodCSV(strings.NewReader(req.Text))
	}
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}

	imported := 0
	for _, p := range panels {
		e, ferr := bloodEntryFrom(p.Time, p.Markers, p.Units, p.OutOfRange)
		if ferr != nil {
			lineErrs = append(lineErrs, fmt.Sprintf("%s: %s", p.Time, ferr.Message))
			continue
		}
		if err := h.Store.CreateBloodEntry(e); err != nil {
			lineErrs = append(lineErrs, fmt.Sprintf("%s: %v", p.Time, err))
			continue
		}
		imported++
	}

	util.Success(c, util.Response{
		"summary": importer.Summary{Imported: imported, Failed: len(lineErrs), Errors: lineErrs},
	})
}
