package store

import (
	"encoding/json"
	"time"
)

// Accessors for decoding stored field maps back into typed models.
// Missing or NULL fields decode to zero values.

// String returns a string field.
func (f Fields) String(key string) string {
	val, _ := f[key].(string)
	return val
}

// Bool returns a boolean field, tolerating the integer form SQLite
// stores booleans in.
func (f Fields) Bool(key string) bool {
	switch v := f[key].(type) {
	case bool:
		return v
	case int64:
		return v != 0
	default:
		return false
	}
}

// Int returns an integer field.
func (f Fields) Int(key string) int64 {
	n, _ := asInt(f[key])
	return n
}

// Float returns a numeric field, or nil when absent.
func (f Fields) Float(key string) *float64 {
	v, ok := f[key]
	if !ok || v == nil {
		return nil
	}
	n, ok := asFloat(v)
	if !ok {
		return nil
	}
	return &n
}

// StringList decodes a JSON-encoded list field.
func (f Fields) StringList(key string) []string {
	raw, ok := f[key].(string)
	if !ok || raw == "" {
		return nil
	}
	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil
	}
	return list
}

// Time parses a timestamp field. Store-written timestamps are RFC
// 3339 text; the SQLite CURRENT_TIMESTAMP form is tolerated too.
func (f Fields) Time(key string) time.Time {
	switch v := f[key].(type) {
	case time.Time:
		return v
	case string:
		if ts, err := time.Parse(time.RFC3339Nano, v); err == nil {
			return ts
		}
		if ts, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return ts
		}
	}
	return time.Time{}
}

// TimePtr is like Time but keeps absence distinct from the zero time.
func (f Fields) TimePtr(key string) *time.Time {
	v, ok := f[key]
	if !ok || v == nil {
		return nil
	}
	ts := f.Time(key)
	if ts.IsZero() {
		return nil
	}
	return &ts
}
