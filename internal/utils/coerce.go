// internal/utils/coerce.go
package utils

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Malformed client input never fails a request on its own: every lenient
// field goes through one of the helpers below and falls back to a default.

// IntOr parses s as a base-10 integer, ignoring surrounding whitespace.
func IntOr(s string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fallback
	}
	return n
}

// StringOr returns s, or fallback when s is blank.
func StringOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// JSONObject is a decoded request body whose fields are converted on access.
type JSONObject map[string]json.RawMessage

// Float reads key as a number. JSON numbers, numeric strings and booleans are
// accepted; anything else (including a missing key or null) yields fallback.
func (o JSONObject) Float(key string, fallback float64) float64 {
	raw, ok := o.lookup(key)
	if !ok {
		return fallback
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return fallback
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return fallback
		}
		return f
	case 't':
		return 1
	case 'f':
		return 0
	case '{', '[':
		return fallback
	}
	f, err := strconv.ParseFloat(string(raw), 64)
	if err != nil {
		return fallback
	}
	return f
}

// Int reads key as an integer. Fractional JSON numbers are truncated toward
// zero, strings must hold a whole number.
func (o JSONObject) Int(key string, fallback int) int {
	raw, ok := o.lookup(key)
	if !ok {
		return fallback
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return fallback
		}
		n := IntOr(s, fallback)
		if n > math.MaxInt32 || n < math.MinInt32 {
			return fallback
		}
		return n
	case 't':
		return 1
	case 'f':
		return 0
	case '{', '[':
		return fallback
	}
	f, err := strconv.ParseFloat(string(raw), 64)
	if err != nil || math.IsNaN(f) || math.Abs(f) > math.MaxInt32 {
		return fallback
	}
	return int(math.Trunc(f))
}

// String reads key as text. Numbers keep their literal form, booleans become
// "true"/"false", objects and arrays keep their raw JSON. Missing and null
// values are empty.
func (o JSONObject) String(key string) string {
	raw, ok := o.lookup(key)
	if !ok {
		return ""
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ""
		}
		return s
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}

func (o JSONObject) lookup(key string) (json.RawMessage, bool) {
	raw, ok := o[key]
	if !ok {
		return nil, false
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, false
	}
	return raw, true
}
