package polydub

import (
	"encoding/json"
	"testing"
	"time"
)

func TestIsoTimestampPrefix(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"2024-03-01T12:00:00Z", true},
		{"2024-03-01T12:00:00.000Z", true},
		{"2024-03-01T12:00:00", true},
		{"2024-03-01", false},
		{"not a date", false},
		{"2024-3-01T12:00:00Z", false},
		{"20240301T120000Z", false},
		{"", false},
		{"abcd-03-01T12:00:00Z", false},
	}
	for _, tt := range tests {
		if got := isoTimestampPrefix(tt.input); got != tt.want {
			t.Errorf("isoTimestampPrefix(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeTimestampsConvertsMatchingFields(t *testing.T) {
	var decoded any
	raw := `{
		"createdAt": "2024-03-01T12:00:00Z",
		"processedOn": "2024-03-01T12:00:05.500Z",
		"name": "2024-03-01T12:00:00Z",
		"updatedAt": "not a date",
		"format": "wav"
	}`
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	result := normalizeTimestamps(decoded).(map[string]any)

	created, ok := result["createdAt"].(time.Time)
	if !ok {
		t.Fatalf("createdAt not converted: %T", result["createdAt"])
	}
	if !created.Equal(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)) {
		t.Errorf("createdAt = %v", created)
	}
	if _, ok := result["processedOn"].(time.Time); !ok {
		t.Errorf("processedOn not converted: %T", result["processedOn"])
	}
	// Key does not match the suffix convention: stays a string even
	// though the value looks like a date.
	if _, ok := result["name"].(string); !ok {
		t.Errorf("name should remain a string: %T", result["name"])
	}
	// Key matches but value is not date-like: stays a string.
	if _, ok := result["updatedAt"].(string); !ok {
		t.Errorf("updatedAt should remain a string: %T", result["updatedAt"])
	}
	if result["format"] != "wav" {
		t.Errorf("format changed: %v", result["format"])
	}
}

func TestNormalizeTimestampsRecursesNestedStructures(t *testing.T) {
	var decoded any
	raw := `{
		"job": {"finishedOn": "2024-03-01T12:03:00Z"},
		"data": [
			{"createdAt": "2024-03-01T12:00:00Z"},
			{"createdAt": "2024-03-02T12:00:00Z"}
		]
	}`
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	result := normalizeTimestamps(decoded).(map[string]any)

	job := result["job"].(map[string]any)
	if _, ok := job["finishedOn"].(time.Time); !ok {
		t.Errorf("nested finishedOn not converted: %T", job["finishedOn"])
	}
	items := result["data"].([]any)
	for i, item := range items {
		record := item.(map[string]any)
		if _, ok := record["createdAt"].(time.Time); !ok {
			t.Errorf("element %d createdAt not converted: %T", i, record["createdAt"])
		}
	}
}

func TestNormalizeTimestampsLeavesScalars(t *testing.T) {
	for _, v := range []any{nil, true, 42.0, "plain"} {
		if got := normalizeTimestamps(v); got != v {
			t.Errorf("normalizeTimestamps(%v) = %v, want unchanged", v, got)
		}
	}
}
