package normalize

import (
	"strconv"
	"strings"
)

// Helpers for reading decoded JSON objects without ever failing
// structurally. Missing keys, nulls and wrong types all read as the
// zero value.

// stringField returns the first key holding a non-empty string. Numeric
// values are formatted, since some schema versions send ids as numbers.
func stringField(m map[string]any, keys ...string) string {
	for _, key := range keys {
		switch v := m[key].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return formatNumber(v)
		}
	}
	return ""
}

// intField returns the first key holding a number, floored at zero.
func intField(m map[string]any, keys ...string) int {
	for _, key := range keys {
		switch v := m[key].(type) {
		case float64:
			if v < 0 {
				return 0
			}
			return int(v)
		case string:
			if n, err := strconv.Atoi(v); err == nil && n >= 0 {
				return n
			}
		}
	}
	return 0
}

// objectField returns the first key holding a JSON object, or an empty
// map when none is present.
func objectField(m map[string]any, keys ...string) map[string]any {
	for _, key := range keys {
		if obj, ok := m[key].(map[string]any); ok {
			return obj
		}
	}
	return map[string]any{}
}

func formatNumber(f float64) string {
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// emailLocal returns the part of an email address before the "@".
func emailLocal(email string) string {
	if email == "" {
		return ""
	}
	local, _, _ := strings.Cut(email, "@")
	return local
}
