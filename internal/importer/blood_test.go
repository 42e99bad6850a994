package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBloodCSV(t *testing.T) {
	input := strings.Join([]string{
		"marker,value,unit,reference_range,status,time",
		`"Testosterone, Total",650,ng/dL,264-916,normal,2025-06-01`,
		"HDL,45,mg/dL,40-60,low,2025-06-01",
		"Glucose,92,mg/dL,70-99,normal,2025-07-15",
		"Some Unknown Marker,5,x,1-10,normal,2025-06-01",
	}, "\n")

	panels, errs, err := ParseBloodCSV(strings.NewReader(input))
	require.NoError(t, err)
	assert.Empty(t, errs)
	require.Len(t, panels, 2)

	first := panels[0]
	assert.Equal(t, "2025-06-01", first.Time)
	assert.Equal(t, 650.0, first.Markers["testosteroneTotal"])
	assert.Equal(t, 45.0, first.Markers["hdl"])
	assert.Equal(t, "ng/dL", first.Units["testosteroneTotal"])
	assert.Equal(t, []string{"hdl"}, first.OutOfRange)
	assert.NotContains(t, first.Markers, "someUnknownMarker")

	second := panels[1]
	assert.Equal(t, "2025-07-15", second.Time)
	assert.Equal(t, 92.0, second.Markers["glucose"])
	assert.Empty(t, second.OutOfRange)
}

func TestParseBloodCSVBadRows(t *testing.T) {
	input := strings.Join([]string{
		"marker,value,unit,reference_range,status,time",
		"Glucose,not-a-number,mg/dL,70-99,normal,2025-07-15",
		"HDL,45,mg/dL,40-60,normal,",
		"LDL,100",
	}, "\n")

	panels, errs, err := ParseBloodCSV(strings.NewReader(input))
	require.NoError(t, err)
	assert.Empty(t, panels)
	assert.Len(t, errs, 3)
}

func TestParseBloodCSVMarkerAliases(t *testing.T) {
	input := "Total Testosterone,700,ng/dL,264-916,normal,2025-06-01\n" +
		"free t4,1.2,ng/dL,0.8-1.8,normal,2025-06-01\n"

	panels, errs, err := ParseBloodCSV(strings.NewReader(input))
	require.NoError(t, err)
	assert.Empty(t, errs)
	require.Len(t, panels, 1)
	assert.Equal(t, 700.0, panels[0].Markers["testosteroneTotal"])
	assert.Equal(t, 1.2, panels[0].Markers["freeT4"])
}
