package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/avisbal23/LiftWithAlex-sub000/internal/audit"
	"github.com/avisbal23/LiftWithAlex-sub000/internal/importer"
	"github.com/avisbal23/LiftWithAlex-sub000/internal/models"
	"github.com/avisbal23/LiftWithAlex-sub000/internal/storage"
	"github.com/avisbal23/LiftWithAlex-sub000/internal/util"
)

// WeightHandler serves weight entries and their audit ledger. Every mutation
// appends a ledger row via the audit package; the ledger itself is read-only.
type WeightHandler struct {
	Store storage.Storage
	Log   *zap.Logger
}

func NewWeightHandler(store storage.Storage, log *zap.Logger) *WeightHandler {
	return &WeightHandler{Store: store, Log: log}
}

func (h *WeightHandler) entryFromInsert(req *models.WeightEntryInsert) (*models.WeightEntry, *util.FieldError) {
	t, err := util.ParseDate(req.Date)
	if err != nil {
		return nil, &util.FieldError{Field: "date", Message: err.Error()}
	}
	return &models.WeightEntry{
		Date:               t,
		Weight:             req.Weight,
		BMI:                req.BMI,
		BodyFatPct:         req.BodyFatPct,
		FatFreeWeight:      req.FatFreeWeight,
		SubcutaneousFatPct: req.SubcutaneousFatPct,
		VisceralFat:        req.VisceralFat,
		BodyWaterPct:       req.BodyWaterPct,
		SkeletalMusclePct:  req.SkeletalMusclePct,
		MuscleMass:         req.MuscleMass,
		BoneMass:           req.BoneMass,
		ProteinPct:         req.ProteinPct,
		BMR:                req.BMR,
		MetabolicAge:       req.MetabolicAge,
	}, nil
}

func (h *WeightHandler) Create(c *gin.Context) {
	var req models.WeightEntryInsert
	if !bindJSON(c, &req) {
		return
	}
	e, ferr := h.entryFromInsert(&req)
	if ferr != nil {
		util.ValidationError(c, []util.FieldError{*ferr})
		return
	}

	if err := h.Store.CreateWeightEntry(e); err != nil {
		h.Log.Error("create weight entry", zap.Error(err))
		util.ServerError(c)
		return
	}
	if err := h.Store.CreateWeightAudit(audit.WeightCreated(e, models.AuditActionCreate, models.AuditSourceManual)); err != nil {
		h.Log.Error("write weight audit", zap.String("id", e.ID), zap.Error(err))
	}
	util.Success(c, util.Response{"weightEntry": e})
}

func (h *WeightHandler) Update(c *gin.Context) {
	id := c.Param("id")
	var req models.WeightEntryUpdate
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

	prev, err := h.Store.GetWeightEntry(id)
	if err != nil {
		h.Log.Error("get weight entry", zap.String("id", id), zap.Error(err))
		util.ServerError(c)
		return
	}
	if prev == nil {
		util.NotFound(c, "weight entry not found")
		return
	}

	next, err := h.Store.UpdateWeightEntry(id, &req)
	if err != nil {
		h.Log.Error("update weight entry", zap.String("id", id), zap.Error(err))
		util.ServerError(c)
		return
	}
	if next == nil {
		util.NotFound(c, "weight entry not found")
		return
	}

	if row := audit.WeightUpdated(prev, next, models.AuditSourceManual); row != nil {
		if err := h.Store.CreateWeightAudit(row); err != nil {
			h.Log.Error("write weight audit", zap.String("id", id), zap.Error(err))
		}
	}

	util.Success(c, util.Response{"weightEntry": next})
}

func (h *WeightHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	prev, err := h.Store.GetWeightEntry(id)
	if err != nil {
		h.Log.Error("get weight entry", zap.String("id", id), zap.Error(err))
		util.ServerError(c)
		return
	}
	if prev == nil {
		util.NotFound(c, "weight entry not found")
		return
	}

	deleted, err := h.Store.DeleteWeightEntry(id)
	if err != nil {
		h.Log.Error("delete weight entry", zap.String("id", id), zap.Error(err))
		util.ServerError(c)
		return
	}
	if !deleted {
		util.NotFound(c, "weight entry not found")
		return
	}

	if err := h.Store.CreateWeightAudit(audit.WeightDeleted(prev, models.AuditSourceManual)); err != nil {
		h.Log.Error("write weight audit", zap.String("id", id), zap.Error(err))
	}

	util.Success(c, util.Response{"deleted": true})
}

func (h *WeightHandler) List(c *gin.Context) {
	entries, err := h.Store.ListWeightEntries()
	if err != nil {
		h.Log.Error("list weight entries", zap.Error(err))
		util.ServerError(c)
		return
	}
	util.Success(c, util.Response{"weightEntries": entries})
}

func (h *WeightHandler) ListRange(c *gin.Context) {
	startStr := c.Query("startDate")
	endStr := c.Query("endDate")
	if startStr == "" || endStr == "" {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "startDate and endDate are required")
		return
	}
	start, err := util.ParseDate(startStr)
	if err != nil {
		util.ValidationError(c, []util.FieldError{{Field: "startDate", Message: err.Error()}})
		return
	}
	end, err := util.ParseDate(endStr)
	if err != nil {
		util.ValidationError(c, []util.FieldError{{Field: "endDate", Message: err.Error()}})
		return
	}

	entries, err := h.Store.ListWeightEntriesInRange(start, end)
	if err != nil {
		h.Log.Error("list weight entries in range", zap.Error(err))
		util.ServerError(c)
		return
	}
	util.Success(c, util.Response{"weightEntries": entries})
}

// Import ingests a RENPHO body-composition CSV upload. Each parsed row is
// inserted individually with an "import" ledger row; failed rows are
// reported line by line and skipped.
func (h *WeightHandler) Import(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "missing file")
		return
	}
	defer file.Close()

	rows, lineErrs, err := importer.ParseWeightCSV(file)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}

	imported := 0
	for _, row := range rows {
		t, err := util.ParseDate(row.Date)
		if err != nil {
			lineErrs = append(lineErrs, fmt.Sprintf("%s: %v", row.Date, err))
			continue
		}
		e := models.WeightEntry{
			Date:               t,
			Weight:             row.Fields["weight"],
			BMI:                row.Fields["bmi"],
			BodyFatPct:         row.Fields["bodyFatPct"],
			FatFreeWeight:      row.Fields["fatFreeWeight"],
			SubcutaneousFatPct: row.Fields["subcutaneousFatPct"],
			VisceralFat:        row.Fields["visceralFat"],
			BodyWaterPct:       row.Fields["bodyWaterPct"],
			SkeletalMusclePct:  row.Fields["skeletalMusclePct"],
			MuscleMass:         row.Fields["muscleMass"],
			BoneMass:           row.Fields["boneMass"],
			ProteinPct:         row.Fields["proteinPct"],
			BMR:                row.Fields["bmr"],
			MetabolicAge:       row.Fields["metabolicAge"],
		}
		if err := h.Store.CreateWeightEntry(&e); err != nil {
			lineErrs = append(lineErrs, fmt.Sprintf("%s: %v", row.Date, err))
			continue
		}
		imported++

		if err := h.Store.CreateWeightAudit(audit.WeightCreated(&e, models.AuditActionImport, models.AuditSourceCSV)); err != nil {
			h.Log.Error("write weight audit", zap.String("id", e.ID), zap.Error(err))
		}
	}

	util.Success(c, util.Response{
		"summary": importer.Summary{Imported: imported, Failed: len(lineErrs), Errors: lineErrs},
	})
}
