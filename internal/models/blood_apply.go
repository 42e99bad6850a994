package models

import "encoding/json"

// EncodeJSONField serializes a units map or out-of-range list for the text
// columns on BloodEntry. Nil or empty input stores the empty string.
func EncodeJSONField(v interface{}) string {
	switch x := v.(type) {
	case map[string]string:
		if len(x) == 0 {
			return ""
		}
	case []string:
		if len(x) == 0 {
			return ""
		}
	case nil:
		return ""
	}
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// Apply merges the update onto e. Markers present in the map overwrite the
// matching panel field; everything else is left untouched.
func (u *BloodEntryUpdate) Apply(e *BloodEntry) {
	if u.ParsedDate != nil {
		e.Date = *u.ParsedDate
	}
	for name, v := range u.Markers {
		e.SetMarker(name, v)
	}
	if u.Units != nil {
		e.Units = EncodeJSONField(u.Units)
	}
	if u.OutOfRange != nil {
		e.OutOfRange = EncodeJSONField(u.OutOfRange)
	}
}
