package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WeightRow is one body-composition row from a RENPHO export.
type WeightRow struct {
	Date   string
	Fields map[string]float64
}

// renphoHeaders maps export column headers (lowercased, units stripped) to
// the weight-entry field names. RENPHO has renamed columns across app
// versions, so several spellings map to the same field.
var renphoHeaders = map[string]string{
	"weight":               "weight",
	"bmi":                  "bmi",
	"body fat":             "bodyFatPct",
	"fat-free body weight": "fatFreeWeight",
	"fat free body weight": "fatFreeWeight",
	"subcutaneous fat":     "subcutaneousFatPct",
	"visceral fat":         "visceralFat",
	"body water":           "bodyWaterPct",
	"skeletal muscle":      "skeletalMusclePct",
	"muscle mass":          "muscleMass",
	"bone mass":            "boneMass",
	"protein":              "proteinPct",
	"bmr":                  "bmr",
	"metabolic age":        "metabolicAge",
}

var renphoDateHeaders = map[string]bool{
	"time of measurement": true,
	"date":                true,
	"time":                true,
}

// ParseWeightCSV parses a RENPHO body-composition export. The first row must
// be a header; columns are matched by name so column order does not matter.
// Each data row becomes one WeightRow; rows without a parsable date or weight
// are reported and skipped.
func ParseWeightCSV(r io.Reader) ([]WeightRow, []string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("empty file")
	}

	dateCol := -1
	fieldCols := make(map[int]string)
	for i, h := range records[0] {
		key := normalizeHeader(h)
		if renphoDateHeaders[key] {
			dateCol = i
			continue
		}
		if field, ok := renphoHeaders[key]; ok {
			fieldCols[i] = field
		}
	}
	if dateCol < 0 {
		return nil, nil, fmt.Errorf("no date column found in header")
	}

	var (
		rows []WeightRow
		errs []string
	)
	for i, rec := range records[1:] {
		lineNo := i + 2
		if len(rec) <= dateCol {
			errs = append(errs, fmt.Sprintf("line %d: too few fields", lineNo))
			continue
		}
		date := strings.TrimSpace(rec[dateCol])
		if date == "" {
			errs = append(errs, fmt.Sprintf("line %d: missing date", lineNo))
			continue
		}

		fields := make(map[string]float64)
		for col, field := range fieldCols {
			if col >= len(rec) {
				continue
			}
			raw := strings.TrimSpace(rec[col])
			if raw == "" || raw == "--" {
				continue
			}
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				continue // non-numeric cell, skip the field not the row
			}
			fields[field] = v
		}

		if fields["weight"] <= 0 {
			errs = append(errs, fmt.Sprintf("line %d: missing or invalid weight", lineNo))
			continue
		}
		rows = append(rows, WeightRow{Date: date, Fields: fields})
	}
	return rows, errs, nil
}

// normalizeHeader lower-cases a header and strips a trailing unit suffix
// like "(lb)" or "(%)".
func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	if i := strings.Index(h, "("); i > 0 {
		h = strings.TrimSpace(h[:i])
	}
	return h
}
