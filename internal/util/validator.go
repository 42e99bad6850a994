package util

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// FieldError describes a single violated field in a request body.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FlattenValidationErrors turns a binding error into one FieldError per
// violated field, so the client sees every problem at once rather than just
// the first.
func FlattenValidationErrors(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: "body", Message: "malformed request body"}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		field := jsonFieldName(fe.Field())
		var msg string
		switch fe.Tag() {
		case "required":
			msg = "is required"
		case "max":
			msg = fmt.Sprintf("must be at most %s characters", fe.Param())
		case "min":
			msg = fmt.Sprintf("must be at least %s", fe.Param())
		case "gt":
			msg = fmt.Sprintf("must be greater than %s", fe.Param())
		case "oneof":
			msg = fmt.Sprintf("must be one of: %s", fe.Param())
		default:
			msg = fmt.Sprintf("failed %q validation", fe.Tag())
		}
		out = append(out, FieldError{Field: field, Message: msg})
	}
	return out
}

// jsonFieldName lower-cases the first rune of a struct field name, matching
// the camelCase json tags used across the models.
func jsonFieldName(structField string) string {
	if structField == "" {
		return structField
	}
	return strings.ToLower(structField[:1]) + structField[1:]
}

// dateLayouts are the accepted wire formats for date-like fields, tried in
// order.
var dateLayouts = []string{
	time.RFC3339,          // 2025-12-03T00:00:00Z
	"2006-01-02T15:04:05", // 2025-12-03T00:00:00
	"2006-01-02",          // 2025-12-03
}

// ParseDate normalizes a date-like string to time.Time.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q, expected ISO format", s)
}
