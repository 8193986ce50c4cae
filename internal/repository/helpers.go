package repository

import (
	"database/sql"
	"encoding/json"
	"time"
)

const dateLayout = "2006-01-02"

// parseNullableTime parses a sql.NullString into a *time.Time using the given layout.
// Returns nil if the value is NULL, empty, or fails to parse.
func parseNullableTime(s sql.NullString, layout string) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.Parse(layout, s.String)
	if err != nil {
		return nil
	}
	return &t
}

// nullableTimeToString converts a *time.Time to a value suitable for SQLite storage.
// Returns nil (SQL NULL) if the pointer is nil, otherwise the formatted string.
func nullableTimeToString(t *time.Time, layout string) interface{} {
	if t == nil {
		return nil
	}
	return t.Format(layout)
}

// encodeStrings serializes a string slice as a JSON array column value.
// A nil slice encodes as "[]".
func encodeStrings(vals []string) string {
	if len(vals) == 0 {
		return "[]"
	}
	b, err := json.Marshal(vals)
	if err != nil {
		return "[]"
	}
	return string(b)
}

// decodeStrings deserializes a JSON array column value. Malformed or empty
// input decodes as nil rather than failing the scan.
func decodeStrings(raw string) []string {
	if raw == "" || raw == "[]" {
		return nil
	}
	var vals []string
	if err := json.Unmarshal([]byte(raw), &vals); err != nil {
		return nil
	}
	return vals
}

// encodeFloatMap serializes a string-to-float map as a JSON object column value.
func encodeFloatMap(m map[string]float64) string {
	if len(m) == 0 {
		return "{}"
	}
	b, err := json.Marshal(m)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// decodeFloatMap deserializes a JSON object column value.
func decodeFloatMap(raw string) map[string]float64 {
	if raw == "" || raw == "{}" {
		return nil
	}
	var m map[string]float64
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return nil
	}
	return m
}
