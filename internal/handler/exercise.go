package handler

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/avisbal23/LiftWithAlex-sub000/internal/audit"
	"github.com/avisbal23/LiftWithAlex-sub000/internal/importer"
	"github.com/avisbal23/LiftWithAlex-sub000/internal/models"
	"github.com/avisbal23/LiftWithAlex-sub000/internal/storage"
	"github.com/avisbal23/LiftWithAlex-sub000/internal/util"
)

// ExerciseHandler serves the workout-day exercise endpoints.
type ExerciseHandler struct {
	Store storage.Storage
	Log   *zap.Logger
}

func NewExerciseHandler(store storage.Storage, log *zap.Logger) *ExerciseHandler {
	return &ExerciseHandler{Store: store, Log: log}
}

func (h *ExerciseHandler) List(c *gin.Context) {
	exercises, err := h.Store.ListExercises()
	if err != nil {
		h.Log.Error("list exercises", zap.Error(err))
		util.ServerError(c)
		return
	}
	util.Success(c, util.Response{"exercises": exercises})
}

func (h *ExerciseHandler) ListByCategory(c *gin.Context) {
	category := c.Param("category")
	if !models.IsWorkoutCategory(category) {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam,
			fmt.Sprintf("unknown category %q, expected one of %s", category, strings.Join(models.WorkoutCategories, ", ")))
		return
	}
	exercises, err := h.Store.ListExercisesByCategory(category)
	if err != nil {
		h.Log.Error("list exercises by category", zap.String("category", category), zap.Error(err))
		util.ServerError(c)
		return
	}
	util.Success(c, util.Response{"exercises": exercises})
}

func (h *ExerciseHandler) Create(c *gin.Context) {
	var req models.ExerciseInsert
	if !bindJSON(c, &req) {
		return
	}
	if !models.IsWorkoutCategory(req.Category) {
		util.ValidationError(c, []util.FieldError{{Field: "category", Message: "must be one of: " + strings.Join(models.WorkoutCategories, " ")}})
		return
	}

	e := models.Exercise{
		Name:            req.Name,
		Weight:          req.Weight,
		Reps:            req.Reps,
		Notes:           req.Notes,
		Category:        req.Category,
		Order:           req.Order,
		DurationMinutes: req.DurationMinutes,
		Distance:        req.Distance,
		Pace:            req.Pace,
		Calories:        req.Calories,
		RPE:             req.RPE,
	}
	if err := h.Store.CreateExercise(&e); err != nil {
		h.Log.Error("create exercise", zap.Error(err))
		util.ServerError(c)
		return
	}
	util.Success(c, util.Response{"exercise": e})
}

func (h *ExerciseHandler) Update(c *gin.Context) {
	id := c.Param("id")
	var req models.ExerciseUpdate
	if !bindJSON(c, &req) {
		return
	}
	if req.Category != nil && !models.IsWorkoutCategory(*req.Category) {
		util.ValidationError(c, []util.FieldError{{Field: "category", Message: "must be one of: " + strings.Join(models.WorkoutCategories, " ")}})
		return
	}

	prev, err := h.Store.GetExercise(id)
	if err != nil {
		h.Log.Error("get exercise", zap.String("id", id), zap.Error(err))
		util.ServerError(c)
		return
	}
	if prev == nil {
		util.NotFound(c, "exercise not found")
		return
	}

	next, err := h.Store.UpdateExercise(id, &req)
	if err != nil {
		h.Log.Error("update exercise", zap.String("id", id), zap.Error(err))
		util.ServerError(c)
		return
	}
	if next == nil {
		util.NotFound(c, "exercise not found")
		return
	}

	if row := audit.ExerciseUpdated(prev, next, models.AuditSourceManual); row != nil {
		if err := h.Store.CreateChangesAudit(row); err != nil {
			h.Log.Error("write exercise audit", zap.String("id", id), zap.Error(err))
		}
	}

	util.Success(c, util.Response{"exercise": next})
}

func (h *ExerciseHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	prev, err := h.Store.GetExercise(id)
	if err != nil {
		h.Log.Error("get exercise", zap.String("id", id), zap.Error(err))
		util.ServerError(c)
		return
	}
	if prev == nil {
		util.NotFound(c, "exercise not found")
		return
	}

	deleted, err := h.Store.DeleteExercise(id)
	if err != nil {
		h.Log.Error("delete exercise", zap.String("id", id), zap.Error(err))
		util.ServerError(c)
		return
	}
	if !deleted {
		util.NotFound(c, "exercise not found")
		return
	}

	if err := h.Store.CreateChangesAudit(audit.ExerciseDeleted(prev, models.AuditSourceManual)); err != nil {
		h.Log.Error("write exercise audit", zap.String("id", id), zap.Error(err))
	}

	util.Success(c, util.Response{"deleted": true})
}

type exerciseImportReq struct {
	Category string `json:"category" binding:"required"`
	Text     string `json:"text"`
}

// Import replaces one category's exercises from pipe-delimited rows. The
// body may carry the rows inline as text, or the request may be a multipart
// upload (CSV/TXT/XLSX under the "file" field with category as a form value).
// Existing exercises in the target category are deleted before the new rows
// go in; row failures are collected per line, not fatal to the batch.
func (h *ExerciseHandler) Import(c *gin.Context) {
	var (
		rows     []importer.WorkoutRow
		lineErrs []string
		category string
	)

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		category = c.PostForm("category")
		file, header, err := c.Request.FormFile("file")
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "missing file")
			return
		}
		defer file.Close()

		if strings.HasSuffix(strings.ToLower(header.Filename), ".xlsx") {
			rows, lineErrs, err = importer.ParseWorkoutXLSX(file)
			if err != nil {
				util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "unreadable workbook")
				return
			}
		} else {
			raw, err := io.ReadAll(file)
			if err != nil {
				util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "unreadable file")
				return
			}
			rows, lineErrs = importer.ParseWorkoutText(string(raw))
		}
	} else {
		var req exerciseImportReq
		if !bindJSON(c, &req) {
			return
		}
		category = req.Category
		rows, lineErrs = importer.ParseWorkoutText(req.Text)
	}

	if !models.IsWorkoutCategory(category) {
		util.ValidationError(c, []util.FieldError{{Field: "category", Message: "must be one of: " + strings.Join(models.WorkoutCategories, " ")}})
		return
	}

	// prior max per name must be captured before the category is cleared,
	// since the import audit compares against what was there before
	priorMax := make(map[string]float64)
	hadPrior := make(map[string]bool)
	for _, row := range rows {
		if _, seen := hadPrior[row.Title]; seen {
			continue
		}
		max, found, err := h.Store.MaxExerciseWeightByName(row.Title)
		if err != nil {
			h.Log.Error("prior max lookup", zap.String("name", row.Title), zap.Error(err))
			util.ServerError(c)
			return
		}
		priorMax[row.Title] = max
		hadPrior[row.Title] = found
	}

	if _, err := h.Store.DeleteExercisesByCategory(category); err != nil {
		h.Log.Error("clear category", zap.String("category", category), zap.Error(err))
		util.ServerError(c)
		return
	}

	imported := 0
	for _, row := range rows {
		e := models.Exercise{
			Name:     row.Title,
			Weight:   row.Weight,
			Reps:     row.Reps,
			Notes:    row.Notes,
			Category: category,
			Order:    row.Order,
		}
		if err := h.Store.CreateExercise(&e); err != nil {
			lineErrs = append(lineErrs, fmt.Sprintf("%s: %v", row.Title, err))
			continue
		}
		imported++

		if a := audit.ExerciseImported(&e, priorMax[row.Title], hadPrior[row.Title]); a != nil {
			if err := h.Store.CreateChangesAudit(a); err != nil {
				h.Log.Error("write import audit", zap.String("name", e.Name), zap.Error(err))
			}
		}
	}

	util.Success(c, util.Response{
		"summary": importer.Summary{Imported: imported, Failed: len(lineErrs), Errors: lineErrs},
	})
}
