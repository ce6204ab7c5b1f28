package supadata

import (
	"log/slog"
	"time"
)

// Helpers for building typed values out of normalized response mappings.
// The remote contract evolves: fields appear, disappear, or change shape
// between deployments, so every accessor tolerates absent or wrong-typed
// values and substitutes the zero value instead of failing.

func getString(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func getStringOr(m map[string]any, key, def string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return def
}

func getInt(m map[string]any, key string) int {
	switch v := m[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return 0
}

func getBool(m map[string]any, key string) bool {
	b, _ := m[key].(bool)
	return b
}

func getMap(m map[string]any, key string) map[string]any {
	v, _ := m[key].(map[string]any)
	return v
}

func getStringSlice(m map[string]any, key string) []string {
	raw, ok := m[key].([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(raw))
	for _, e := range raw {
		if s, ok := e.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func getMapSlice(m map[string]any, key string) []map[string]any {
	raw, ok := m[key].([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(raw))
	for _, e := range raw {
		if em, ok := e.(map[string]any); ok {
			out = append(out, em)
		}
	}
	return out
}

// timestampLayouts covers the ISO-8601 shapes the API has been observed to
// emit: full RFC 3339 with or without fractional seconds, naive datetimes,
// and bare dates.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseTimestamp(s string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// getTime parses an ISO-8601 field, substituting the current time when the
// field is absent or malformed.
func getTime(m map[string]any, key string) time.Time {
	s, ok := m[key].(string)
	if !ok {
		return time.Now()
	}
	t, ok := parseTimestamp(s)
	if !ok {
		slog.Warn("unparseable timestamp, substituting current time",
			slog.String("field", key), slog.String("value", s))
		return time.Now()
	}
	return t
}

// getTimePtr parses an ISO-8601 field, returning nil when it is absent or
// malformed. Used for fields that are only meaningful in some states.
func getTimePtr(m map[string]any, key string) *time.Time {
	s, ok := m[key].(string)
	if !ok {
		return nil
	}
	t, ok := parseTimestamp(s)
	if !ok {
		return nil
	}
	return &t
}
