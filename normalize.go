package polydub

import (
	"strings"
	"time"
)

// timestampKey reports whether a JSON object key names a timestamp by
// the API's convention: "createdAt", "processedOn", "finishedOn" and so
// on. The suffix check alone is deliberately loose; the value must also
// look like an ISO-8601 date-time before conversion happens.
func timestampKey(key string) bool {
	return strings.HasSuffix(key, "At") || strings.HasSuffix(key, "On")
}

// isoTimestampPrefix reports whether s starts with an ISO-8601
// date-time prefix (YYYY-MM-DDT...). Only the prefix is inspected;
// time.Parse does the real validation.
func isoTimestampPrefix(s string) bool {
	if len(s) < 11 {
		return false
	}
	for i := 0; i < 4; i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	if s[4] != '-' || s[7] != '-' || s[10] != 'T' {
		return false
	}
	return (s[5] >= '0' && s[5] <= '9') && (s[6] >= '0' && s[6] <= '9') &&
		(s[8] >= '0' && s[8] <= '9') && (s[9] >= '0' && s[9] <= '9')
}

// timestampLayouts covers the wire formats the API has been seen to
// emit: RFC3339 with or without fractional seconds, and zone-less
// date-times.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

func parseTimestamp(s string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// normalizeTimestamps walks a decoded JSON value and converts string
// fields whose key matches the timestamp convention and whose value has
// an ISO-8601 prefix into time.Time. Objects and arrays are recursed
// into; everything else passes through unchanged. The walk is schema
// independent so new endpoints need no changes here.
func normalizeTimestamps(v any) any {
	switch val := v.(type) {
	case map[string]any:
		for key, child := range val {
			if s, ok := child.(string); ok && timestampKey(key) && isoTimestampPrefix(s) {
				if t, ok := parseTimestamp(s); ok {
					val[key] = t
					continue
				}
			}
			val[key] = normalizeTimestamps(child)
		}
		return val
	case []any:
		for i, child := range val {
			val[i] = normalizeTimestamps(child)
		}
		return val
	default:
		return v
	}
}
