package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// BloodPanel is one group of markers sharing a draw time.
type BloodPanel struct {
	Time       string
	Markers    map[string]float64
	Units      map[string]string
	OutOfRange []string
}

// markerDictionary maps lab-report marker labels (lowercased) to the
// canonical panel field names. Labels not in the dictionary are silently
// ignored: lab exports carry plenty of markers the panel does not track.
var markerDictionary = map[string]string{
	"testosterone, total":    "testosteroneTotal",
	"total testosterone":     "testosteroneTotal",
	"testosterone":           "testosteroneTotal",
	"testosterone, free":     "testosteroneFree",
	"free testosterone":      "testosteroneFree",
	"estradiol":              "estradiol",
	"shbg":                   "shbg",
	"lh":                     "lh",
	"fsh":                    "fsh",
	"prolactin":              "prolactin",
	"cortisol":               "cortisol",
	"dhea-s":                 "dheaS",
	"dhea sulfate":           "dheaS",
	"igf-1":                  "igf1",
	"tsh":                    "tsh",
	"t4, free":               "freeT4",
	"free t4":                "freeT4",
	"t3, free":               "freeT3",
	"free t3":                "freeT3",
	"cholesterol, total":     "cholesterolTotal",
	"total cholesterol":      "cholesterolTotal",
	"hdl cholesterol":        "hdl",
	"hdl":                    "hdl",
	"ldl cholesterol":        "ldl",
	"ldl-cholesterol":        "ldl",
	"ldl":                    "ldl",
	"triglycerides":          "triglycerides",
	"glucose":                "glucose",
	"hemoglobin a1c":         "hba1c",
	"hba1c":                  "hba1c",
	"insulin":                "insulin",
	"vitamin d, 25-oh":       "vitaminD",
	"vitamin d":              "vitaminD",
	"vitamin b12":            "vitaminB12",
	"folate":                 "folate",
	"ferritin":               "ferritin",
	"iron":                   "iron",
	"magnesium":              "magnesium",
	"zinc":                   "zinc",
	"alt":                    "alt",
	"ast":                    "ast",
	"creatinine":             "creatinine",
	"egfr":                   "egfr",
	"hemoglobin":             "hemoglobin",
	"hematocrit":             "hematocrit",
	"wbc":                    "wbc",
	"white blood cell count": "wbc",
	"crp":                    "crp",
	"c-reactive protein":     "crp",
	"psa":                    "psa",
}

// ParseBloodCSV parses `marker,value,unit,reference_range,status,time` rows
// and groups them into one panel per distinct time value, ordered by time.
// Rows with a malformed shape or value are reported and skipped.
func ParseBloodCSV(r io.Reader) ([]BloodPanel, []string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read csv: %w", err)
	}

	groups := make(map[string]*BloodPanel)
	var errs []string

	for i, rec := range records {
		lineNo := i + 1
		if len(rec) == 0 {
			continue
		}
		if i == 0 && strings.EqualFold(strings.TrimSpace(rec[0]), "marker") {
			continue // header
		}
		if len(rec) < 6 {
			errs = append(errs, fmt.Sprintf("line %d: expected 6 fields, got %d", lineNo, len(rec)))
			continue
		}

		label := strings.ToLower(strings.TrimSpace(rec[0]))
		field, ok := markerDictionary[label]
		if !ok {
			continue // untracked marker, ignored by design
		}

		value, err := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if err != nil {
			errs = append(errs, fmt.Sprintf("line %d: invalid value %q for %s", lineNo, rec[1], rec[0]))
			continue
		}

		drawTime := strings.TrimSpace(rec[5])
		if drawTime == "" {
			errs = append(errs, fmt.Sprintf("line %d: missing time", lineNo))
			continue
		}

		g, ok := groups[drawTime]
		if !ok {
			g = &BloodPanel{
				Time:    drawTime,
				Markers: make(map[string]float64),
				Units:   make(map[string]string),
			}
			groups[drawTime] = g
		}
		g.Markers[field] = value
		if unit := strings.TrimSpace(rec[2]); unit != "" {
			g.Units[field] = unit
		}
		if status := strings.TrimSpace(rec[4]); status != "" && !strings.EqualFold(status, "normal") {
			g.OutOfRange = append(g.OutOfRange, field)
		}
	}

	out := make([]BloodPanel, 0, len(groups))
	for _, g := range groups {
		sort.Strings(g.OutOfRange)
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	return out, errs, nil
}
