package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avisbal23/LiftWithAlex-sub000/internal/models"
)

func TestBodyWeightPct(t *testing.T) {
	got := BodyWeightPct(185, 170)
	require.NotNil(t, got)
	assert.Equal(t, "108.8", *got)

	assert.Nil(t, BodyWeightPct(185, 0))
	assert.Nil(t, BodyWeightPct(0, 170))
	assert.Nil(t, BodyWeightPct(-5, 170))
}

func TestParseDistanceMiles(t *testing.T) {
	tests := []struct {
		input string
		want  float64
		ok    bool
	}{
		{"3.1 miles", 3.1, true},
		{"2.5mi", 2.5, true},
		{"1 mile", 1, true},
		{"5 km", 5 / 1.609344, true},
		{"10k", 10 / 1.609344, true},
		{"4", 4, true},
		{"", 0, false},
		{"fast", 0, false},
		{"-2 miles", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseDistanceMiles(tt.input)
		assert.Equal(t, tt.ok, ok, "input %q", tt.input)
		if tt.ok {
			assert.InDelta(t, tt.want, got, 1e-9, "input %q", tt.input)
		}
	}
}

func TestStepTotals(t *testing.T) {
	now := time.Date(2025, 8, 20, 12, 0, 0, 0, time.UTC)
	entries := []models.StepEntry{
		{Date: now.AddDate(0, 0, -1), Steps: 10000},
		{Date: now.AddDate(0, 0, -10), Steps: 8000},
		{Date: now.AddDate(0, 0, -100), Steps: 6000},
		{Date: now.AddDate(0, 0, -400), Steps: 5000}, // outside the year
		{Date: now.AddDate(0, 0, 1), Steps: 9000},    // future, ignored
	}

	s := StepTotals(entries, now)
	assert.Equal(t, 10000, s.WeekSteps)
	assert.Equal(t, 18000, s.MonthSteps)
	assert.Equal(t, 24000, s.YearSteps)
	assert.InDelta(t, 10000.0/7, s.WeekAvg, 1e-9)
	assert.InDelta(t, 18000.0/30, s.MonthAvg, 1e-9)
}

func TestCardioTotals(t *testing.T) {
	now := time.Date(2025, 8, 20, 12, 0, 0, 0, time.UTC)
	entries := []models.CardioLogEntry{
		{Date: now.AddDate(0, 0, -2), DurationMinutes: 30, DistanceText: "3.1 miles", Calories: 300},
		{Date: now.AddDate(0, 0, -20), DurationMinutes: 45, DistanceText: "5 km", Calories: 400},
		{Date: now.AddDate(0, 0, -200), DurationMinutes: 60, DistanceText: "not a distance", Calories: 500},
	}

	s := CardioTotals(entries, now)
	assert.Equal(t, 30.0, s.WeekMinutes)
	assert.Equal(t, 75.0, s.MonthMinutes)
	assert.Equal(t, 135.0, s.YearMinutes)
	assert.InDelta(t, 3.1, s.WeekMiles, 1e-9)
	assert.InDelta(t, 3.1+5/1.609344, s.MonthMiles, 1e-9)
	// unparsable distance contributes zero miles, not an error
	assert.InDelta(t, 3.1+5/1.609344, s.YearMiles, 1e-9)
	assert.Equal(t, 300.0, s.WeekCalories)
}
