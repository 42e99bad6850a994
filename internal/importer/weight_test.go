package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWeightCSV(t *testing.T) {
	input := strings.Join([]string{
		"Time of Measurement,Weight(lb),BMI,Body Fat(%),Muscle Mass(lb),BMR(kcal)",
		"2025-08-01 07:12:00,185.2,24.1,18.5,148.3,1810",
		"2025-08-02 07:05:00,184.8,24.0,--,148.1,1805",
	}, "\n")

	rows, errs, err := ParseWeightCSV(strings.NewReader(input))
	require.NoError(t, err)
	assert.Empty(t, errs)
	require.Len(t, rows, 2)

	assert.Equal(t, "2025-08-01 07:12:00", rows[0].Date)
	assert.Equal(t, 185.2, rows[0].Fields["weight"])
	assert.Equal(t, 18.5, rows[0].Fields["bodyFatPct"])
	assert.Equal(t, 148.3, rows[0].Fields["muscleMass"])
	assert.Equal(t, 1810.0, rows[0].Fields["bmr"])

	// "--" cells are skipped per-field, not per-row
	_, hasBodyFat := rows[1].Fields["bodyFatPct"]
	assert.False(t, hasBodyFat)
	assert.Equal(t, 184.8, rows[1].Fields["weight"])
}

func TestParseWeightCSVMissingWeight(t *testing.T) {
	input := "Date,Weight(lb)\n2025-08-01,\n2025-08-02,0\n2025-08-03,180\n"

	rows, errs, err := ParseWeightCSV(strings.NewReader(input))
	require.NoError(t, err)
	assert.Len(t, errs, 2)
	require.Len(t, rows, 1)
	assert.Equal(t, 180.0, rows[0].Fields["weight"])
}

func TestParseWeightCSVNoDateColumn(t *testing.T) {
	_, _, err := ParseWeightCSV(strings.NewReader("Weight(lb)\n180\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no date column")
}

func TestNormalizeHeader(t *testing.T) {
	assert.Equal(t, "weight", normalizeHeader("Weight(lb)"))
	assert.Equal(t, "body fat", normalizeHeader("Body Fat (%)"))
	assert.Equal(t, "bmi", normalizeHeader(" BMI "))
}
