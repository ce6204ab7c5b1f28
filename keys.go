package supadata

import (
	"regexp"
	"strings"
)

// The wire contract uses camelCase field names; everything past the
// dispatcher works with snake_case. The two-pass rewrite keeps acronym and
// digit boundaries intact ("ogUrl" -> "og_url", "videoIds" -> "video_ids")
// and is a no-op on keys that are already snake_case.
var (
	camelHumpRE     = regexp.MustCompile(`(.)([A-Z][a-z]+)`)
	camelBoundaryRE = regexp.MustCompile(`([a-z0-9])([A-Z])`)
)

func snakeKey(k string) string {
	k = camelHumpRE.ReplaceAllString(k, "${1}_${2}")
	k = camelBoundaryRE.ReplaceAllString(k, "${1}_${2}")
	return strings.ToLower(k)
}

// normalizeKeys rewrites every object key in a JSON-decoded value from
// camelCase to snake_case, recursing through objects and arrays. Scalars
// pass through unchanged.
func normalizeKeys(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[snakeKey(k)] = normalizeKeys(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = normalizeKeys(e)
		}
		return out
	default:
		return v
	}
}
