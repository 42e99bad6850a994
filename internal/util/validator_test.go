package util

import (
	"errors"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"2025-12-03T00:00:00Z", time.Date(2025, 12, 3, 0, 0, 0, 0, time.UTC)},
		{"2025-12-03T15:04:05", time.Date(2025, 12, 3, 15, 4, 5, 0, time.UTC)},
		{"2025-12-03", time.Date(2025, 12, 3, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.input)
		require.NoError(t, err, "input %q", tt.input)
		assert.True(t, got.Equal(tt.want), "input %q: got %v", tt.input, got)
	}
}

func TestParseDateInvalid(t *testing.T) {
	for _, input := range []string{"", "12/03/2025", "yesterday"} {
		_, err := ParseDate(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestFlattenValidationErrors(t *testing.T) {
	type payload struct {
		Name   string `validate:"required"`
		Weight int    `validate:"min=0"`
	}

	v := validator.New()
	err := v.Struct(payload{Weight: -1})
	require.Error(t, err)

	out := FlattenValidationErrors(err)
	require.Len(t, out, 2)
	assert.Equal(t, "name", out[0].Field)
	assert.Equal(t, "is required", out[0].Message)
	assert.Equal(t, "weight", out[1].Field)
}

func TestFlattenValidationErrorsNonValidator(t *testing.T) {
	out := FlattenValidationErrors(errors.New("unexpected EOF"))
	require.Len(t, out, 1)
	assert.Equal(t, "body", out[0].Field)
}
