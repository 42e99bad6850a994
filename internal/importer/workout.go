package importer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// WorkoutRow is one validated exercise row from a bulk workout import.
type WorkoutRow struct {
	Order  int
	Title  string
	Weight float64
	Reps   int
	Notes  string
}

// Summary reports a partial-success import: how many rows landed, how many
// were rejected, and one message per rejected line.
type Summary struct {
	Imported int      `json:"imported"`
	Failed   int      `json:"failed"`
	Errors   []string `json:"errors"`
}

// ParseWorkoutText parses pipe-delimited ORDER|TITLE|WEIGHT|REPS|NOTES rows
// from pasted text or an uploaded CSV/TXT file. An optional header row is
// detected and skipped. Rows are validated individually; a bad row yields an
// error message and does not stop the rest of the batch.
func ParseWorkoutText(input string) ([]WorkoutRow, []string) {
	var (
		rows []WorkoutRow
		errs []string
	)
	lineNo := 0
	for _, raw := range strings.Split(input, "\n") {
		lineNo++
		line := strings.TrimSpace(strings.TrimSuffix(raw, "\r"))
		if line == "" {
			continue
		}
		if isWorkoutHeader(line) {
			continue
		}
		row, err := parseWorkoutLine(line)
		if err != nil {
			errs = append(errs, fmt.Sprintf("line %d: %v", lineNo, err))
			continue
		}
		rows = append(rows, row)
	}
	return rows, errs
}

// ParseWorkoutXLSX reads the first sheet of an uploaded workbook through the
// same row pipeline as the text importer.
func ParseWorkoutXLSX(r io.Reader) ([]WorkoutRow, []string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	cells, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	var (
		rows []WorkoutRow
		errs []string
	)
	for i, rec := range cells {
		line := strings.TrimSpace(strings.Join(rec, "|"))
		if line == "" {
			continue
		}
		if isWorkoutHeader(line) {
			continue
		}
		row, err := parseWorkoutLine(line)
		if err != nil {
			errs = append(errs, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}
		rows = append(rows, row)
	}
	return rows, errs, nil
}

func isWorkoutHeader(line string) bool {
	return strings.HasPrefix(strings.ToUpper(line), "ORDER|")
}

func parseWorkoutLine(line string) (WorkoutRow, error) {
	parts := strings.Split(line, "|")
	if len(parts) < 5 {
		return WorkoutRow{}, fmt.Errorf("expected 5 fields (ORDER|TITLE|WEIGHT|REPS|NOTES), got %d", len(parts))
	}

	title := strings.TrimSpace(parts[1])
	if title == "" {
		return WorkoutRow{}, fmt.Errorf("title is blank")
	}

	order, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return WorkoutRow{}, fmt.Errorf("invalid order %q", parts[0])
	}

	weight := 0.0
	if w := strings.TrimSpace(parts[2]); w != "" {
		weight, err = strconv.ParseFloat(w, 64)
		if err != nil {
			return WorkoutRow{}, fmt.Errorf("invalid weight %q", parts[2])
		}
	}

	reps := 0
	if r := strings.TrimSpace(parts[3]); r != "" {
		reps, err = strconv.Atoi(r)
		if err != nil {
			return WorkoutRow{}, fmt.Errorf("invalid reps %q", parts[3])
		}
	}

	// notes may themselves contain pipes; rejoin everything past REPS
	notes := strings.TrimSpace(strings.Join(parts[4:], "|"))

	return WorkoutRow{
		Order:  order,
		Title:  title,
		Weight: weight,
		Reps:   reps,
		Notes:  notes,
	}, nil
}
