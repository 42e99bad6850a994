// Package stats holds the derived numeric views. Everything here is a pure
// function over a snapshot of persisted entries and is recomputed per call;
// nothing is cached because the underlying rows can change at any time.
package stats

import (
	"strconv"
	"strings"
	"time"

	"github.com/avisbal23/LiftWithAlex-sub000/internal/models"
)

const kmPerMile = 1.609344

// BodyWeightPct returns a personal record's weight as a percentage of
// current body weight, formatted to one decimal ("108.8"). Either operand
// being non-positive yields nil rather than a divide-by-zero artifact.
func BodyWeightPct(prWeight, bodyWeight float64) *string {
	if prWeight <= 0 || bodyWeight <= 0 {
		return nil
	}
	s := strconv.FormatFloat(prWeight/bodyWeight*100, 'f', 1, 64)
	return &s
}

// ParseDistanceMiles sniffs a free-text distance ("3.1 miles", "5 km",
// "2.5mi", bare "4") into a canonical mile value. Bare numbers are assumed
// to already be miles. Returns false when no number can be recovered.
func ParseDistanceMiles(text string) (float64, bool) {
	s := strings.ToLower(strings.TrimSpace(text))
	if s == "" {
		return 0, false
	}

	unit := ""
	for _, suffix := range []string{"miles", "mile", "mi", "kms", "km", "k"} {
		if strings.HasSuffix(s, suffix) {
			unit = suffix
			s = strings.TrimSpace(strings.TrimSuffix(s, suffix))
			break
		}
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0, false
	}

	switch unit {
	case "km", "kms", "k":
		return v / kmPerMile, true
	default:
		return v, true
	}
}

// StepSummary is the rolling step totals for the trailing 7/30/365 days.
type StepSummary struct {
	WeekSteps  int     `json:"weekSteps"`
	MonthSteps int     `json:"monthSteps"`
	YearSteps  int     `json:"yearSteps"`
	WeekAvg    float64 `json:"weekAvg"`
	MonthAvg   float64 `json:"monthAvg"`
}

// StepTotals computes rolling totals over the full entry list as of now.
func StepTotals(entries []models.StepEntry, now time.Time) StepSummary {
	var s StepSummary
	weekStart := now.AddDate(0, 0, -7)
	monthStart := now.AddDate(0, 0, -30)
	yearStart := now.AddDate(-1, 0, 0)

	for _, e := range entries {
		if e.Date.After(now) {
			continue
		}
		if e.Date.After(yearStart) {
			s.YearSteps += e.Steps
		}
		if e.Date.After(monthStart) {
			s.MonthSteps += e.Steps
		}
		if e.Date.After(weekStart) {
			s.WeekSteps += e.Steps
		}
	}
	s.WeekAvg = float64(s.WeekSteps) / 7
	s.MonthAvg = float64(s.MonthSteps) / 30
	return s
}

// CardioSummary is the rolling cardio totals for the trailing 7/30/365 days.
type CardioSummary struct {
	WeekMinutes  float64 `json:"weekMinutes"`
	MonthMinutes float64 `json:"monthMinutes"`
	YearMinutes  float64 `json:"yearMinutes"`
	WeekMiles    float64 `json:"weekMiles"`
	MonthMiles   float64 `json:"monthMiles"`
	YearMiles    float64 `json:"yearMiles"`
	WeekCalories float64 `json:"weekCalories"`
}

// CardioTotals computes rolling totals; distances run through
// ParseDistanceMiles and unparsable distances contribute zero miles.
func CardioTotals(entries []models.CardioLogEntry, now time.Time) CardioSummary {
	var s CardioSummary
	weekStart := now.AddDate(0, 0, -7)
	monthStart := now.AddDate(0, 0, -30)
	yearStart := now.AddDate(-1, 0, 0)

	for _, e := range entries {
		if e.Date.After(now) {
			continue
		}
		miles, _ := ParseDistanceMiles(e.DistanceText)
		if e.Date.After(yearStart) {
			s.YearMinutes += e.DurationMinutes
			s.YearMiles += miles
		}
		if e.Date.After(monthStart) {
			s.MonthMinutes += e.DurationMinutes
			s.MonthMiles += miles
		}
		if e.Date.After(weekStart) {
			s.WeekMinutes += e.DurationMinutes
			s.WeekMiles += miles
			s.WeekCalories += e.Calories
		}
	}
	return s
}
