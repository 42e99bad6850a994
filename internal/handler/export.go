package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/avisbal23/LiftWithAlex-sub000/internal/models"
	"github.com/avisbal23/LiftWithAlex-sub000/internal/storage"
	"github.com/avisbal23/LiftWithAlex-sub000/internal/util"
)

// ExportHandler streams the exercise catalog back out in the same shape the
// bulk importer accepts, so an export can be re-imported unchanged.
type ExportHandler struct {
	Store storage.Storage
	Log   *zap.Logger
}

func NewExportHandler(store storage.Storage, log *zap.Logger) *ExportHandler {
	return &ExportHandler{Store: store, Log: log}
}

var exportHeaders = []string{"ORDER", "TITLE", "WEIGHT", "REPS", "NOTES", "CATEGORY"}

func (h *ExportHandler) fetch(c *gin.Context) ([]models.Exercise, bool) {
	category := c.Query("category")
	var (
		exercises []models.Exercise
		err       error
	)
	if category != "" {
		if !models.IsWorkoutCategory(category) {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "unknown category")
			return nil, false
		}
		exercises, err = h.Store.ListExercisesByCategory(category)
	} else {
		exercises, err = h.Store.ListExercises()
	}
	if err != nil {
		h.Log.Error("list exercises for export", zap.Error(err))
		util.ServerError(c)
		return nil, false
	}
	return exercises, true
}

func exerciseRow(e *models.Exercise) []string {
	return []string{
		strconv.Itoa(e.Order),
		e.Name,
		strconv.FormatFloat(e.Weight, 'f', -1, 64),
		strconv.Itoa(e.Reps),
		e.Notes,
		e.Category,
	}
}

func (h *ExportHandler) ExportCSV(c *gin.Context) {
	exercises, ok := h.fetch(c)
	if !ok {
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"exercises_%s.csv\"",
		time.Now().Format("20060102")))

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write(exportHeaders)
	for i := range exercises {
		writer.Write(exerciseRow(&exercises[i]))
	}
}

func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	exercises, ok := h.fetch(c)
	if !ok {
		return
	}

	f := excelize.NewFile()
	sheetName := "Exercises"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		h.Log.Error("create export sheet", zap.Error(err))
		util.ServerError(c)
		return
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for i, header := range exportHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}
	for idx := range exercises {
		row := idx + 2
		for col, v := range exerciseRow(&exercises[idx]) {
			f.SetCellValue(sheetName, fmt.Sprintf("%c%d", 'A'+col, row), v)
		}
	}

	f.SetColWidth(sheetName, "A", "A", 8)
	f.SetColWidth(sheetName, "B", "B", 28)
	f.SetColWidth(sheetName, "C", "D", 10)
	f.SetColWidth(sheetName, "E", "E", 36)
	f.SetColWidth(sheetName, "F", "F", 12)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"exercises_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		h.Log.Error("write export workbook", zap.Error(err))
	}
}
