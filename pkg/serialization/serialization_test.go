package serialization

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

var testStatus = &TypeInfo{EnumValues: map[string]int{
	"none":       0,
	"inProgress": 1,
	"completed":  2,
	"cancelling": 4,
}}

var testStep = &TypeInfo{Fields: map[string]*FieldInfo{
	"startTime": Date(),
	"state":     Enum(testStatus),
}}

var testRecord = &TypeInfo{Fields: map[string]*FieldInfo{
	"finishTime": Date(),
	"status":     Enum(testStatus),
	"steps":      ArrayOf(testStep),
	"history":    DateArray(),
	"byStatus": {
		IsDictionary:            true,
		DictionaryKeyEnumType:   testStatus,
		DictionaryValueTypeInfo: testStep,
	},
}}

func TestParseDate(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Time
	}{
		{"2024-03-01T10:20:30Z", time.Date(2024, 3, 1, 10, 20, 30, 0, time.UTC)},
		{"2024-03-01T10:20:30.5Z", time.Date(2024, 3, 1, 10, 20, 30, 500000000, time.UTC)},
		{"2024-03-01T10:20:30.1234567", time.Date(2024, 3, 1, 10, 20, 30, 123456700, time.UTC)},
		{"2024-03-01", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"/Date(1709288430000)/", time.Date(2024, 3, 1, 10, 20, 30, 0, time.UTC)},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			got, err := ParseDate(test.input)
			if err != nil {
				t.Fatalf("ParseDate(%q) error: %v", test.input, err)
			}
			if !got.Equal(test.expected) {
				t.Errorf("ParseDate(%q) = %v, expected %v", test.input, got, test.expected)
			}
		})
	}

	if _, err := ParseDate("yesterday"); err == nil {
		t.Error("ParseDate(\"yesterday\") expected an error")
	}
}

func TestEnumValue(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
		ok       bool
	}{
		{"exact", "completed", 2, true},
		{"case insensitive", "InProgress", 1, true},
		{"flags", "inProgress, completed", 3, true},
		{"numeric", "4", 4, true},
		{"unknown", "postponed", 0, false},
		{"unknown flag", "completed,postponed", 0, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, ok := EnumValue(testStatus, test.input)
			if got != test.expected || ok != test.ok {
				t.Errorf("EnumValue(%q) = %d, %v, expected %d, %v", test.input, got, ok, test.expected, test.ok)
			}
		})
	}
}

func TestEnumString(t *testing.T) {
	tests := []struct {
		value    int
		expected string
	}{
		{0, "none"},
		{2, "completed"},
		{3, "inProgress, completed"},
		{8, "8"},
	}
	for _, test := range tests {
		if got := EnumString(testStatus, test.value); got != test.expected {
			t.Errorf("EnumString(%d) = %q, expected %q", test.value, got, test.expected)
		}
	}
}

func TestDeserialize(t *testing.T) {
	raw, err := Decode([]byte(`{
		"count": 1,
		"value": [{
			"name": "ci",
			"finishTime": "/Date(1709288430000)/",
			"status": "Completed",
			"steps": [{"startTime": "2024-03-01T10:00:00Z", "state": "inProgress"}, null],
			"history": ["2024-03-01T10:00:00Z"],
			"byStatus": {"completed": {"state": "completed"}, "bogus": {}}
		}]
	}`))
	if err != nil {
		t.Fatal(err)
	}

	got := Deserialize(raw, testRecord, true)

	ts := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	want := []any{map[string]any{
		"name":       "ci",
		"finishTime": time.Date(2024, 3, 1, 10, 20, 30, 0, time.UTC),
		"status":     2,
		"steps": []any{
			map[string]any{"startTime": ts, "state": 1},
			nil,
		},
		"history":  []any{ts},
		"byStatus": map[string]any{"2": map[string]any{"state": 2}},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Deserialize mismatch (-want +got):\n%s", diff)
	}
}

func TestDeserializeDropsUnknownEnum(t *testing.T) {
	raw := map[string]any{"status": "postponed", "name": "x"}
	got := Deserialize(raw, testRecord, false)
	want := map[string]any{"name": "x"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Deserialize mismatch (-want +got):\n%s", diff)
	}
}

func TestDeserializeDropsUnparseableDate(t *testing.T) {
	raw := map[string]any{
		"finishTime": "next tuesday",
		"history":    []any{"2024-03-01T10:00:00Z", "soon"},
		"name":       "x",
	}
	got := Deserialize(raw, testRecord, false)
	want := map[string]any{
		"history": []any{time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)},
		"name":    "x",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Deserialize mismatch (-want +got):\n%s", diff)
	}
}

func TestDeserializeNullCollection(t *testing.T) {
	tests := []struct {
		name string
		ti   *TypeInfo
	}{
		{"typed", testRecord},
		{"untyped", nil},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			raw := map[string]any{"count": json.Number("0"), "value": nil}
			got := Deserialize(raw, test.ti, true)
			if diff := cmp.Diff([]any{}, got); diff != "" {
				t.Errorf("Deserialize mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDeserializeWithoutTypeInfo(t *testing.T) {
	raw := map[string]any{"finishTime": "2024-03-01T10:00:00Z"}
	got := Deserialize(raw, nil, false)
	if diff := cmp.Diff(raw, got); diff != "" {
		t.Errorf("Deserialize mismatch (-want +got):\n%s", diff)
	}
}

type status int

type step struct {
	StartTime time.Time `json:"startTime,omitzero"`
	State     status    `json:"state,omitempty"`
}

type record struct {
	Name       string         `json:"name,omitempty"`
	FinishTime time.Time      `json:"finishTime,omitzero"`
	Status     status         `json:"status,omitempty"`
	Steps      []*step        `json:"steps,omitempty"`
	ByStatus   map[status]any `json:"byStatus,omitempty"`
}

func TestFormatResponse(t *testing.T) {
	body := []byte(`{"name":"ci","finishTime":"/Date(1709288430000)/","status":"completed","steps":[{"state":"cancelling"}]}`)

	got, err := FormatResponse[*record](body, testRecord, false)
	if err != nil {
		t.Fatalf("FormatResponse error: %v", err)
	}
	want := &record{
		Name:       "ci",
		FinishTime: time.Date(2024, 3, 1, 10, 20, 30, 0, time.UTC),
		Status:     2,
		Steps:      []*step{{State: 4}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FormatResponse mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatResponseCollection(t *testing.T) {
	body := []byte(`{"count":2,"value":["a","b"]}`)
	got, err := FormatResponse[[]string](body, nil, true)
	if err != nil {
		t.Fatalf("FormatResponse error: %v", err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, got); diff != "" {
		t.Errorf("FormatResponse mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatResponseNullCollection(t *testing.T) {
	got, err := FormatResponse[[]string]([]byte(`{"count":0,"value":null}`), nil, true)
	if err != nil {
		t.Fatalf("FormatResponse error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("FormatResponse = %#v, expected an empty slice", got)
	}
}

func TestFormatResponseEmpty(t *testing.T) {
	got, err := FormatResponse[*record](nil, testRecord, false)
	if err != nil {
		t.Fatalf("FormatResponse error: %v", err)
	}
	if got != nil {
		t.Errorf("FormatResponse(nil) = %+v, expected nil", got)
	}
}

func TestFormatResponseUntyped(t *testing.T) {
	got, err := FormatResponse[any]([]byte(`{"a":{"$type":"System.String","$value":"b"}}`), nil, false)
	if err != nil {
		t.Fatalf("FormatResponse error: %v", err)
	}
	m, ok := got.(map[string]any)
	if !ok {
		t.Fatalf("FormatResponse returned %T, expected map", got)
	}
	if _, ok := m["a"]; !ok {
		t.Errorf("FormatResponse lost key %q: %v", "a", m)
	}
}

func TestSerialize(t *testing.T) {
	in := &record{
		Name:       "ci",
		FinishTime: time.Date(2024, 3, 1, 10, 20, 30, 0, time.UTC),
		Status:     3,
	}
	got, err := Serialize(in, testRecord)
	if err != nil {
		t.Fatalf("Serialize error: %v", err)
	}
	want := map[string]any{
		"name":       "ci",
		"finishTime": "2024-03-01T10:20:30Z",
		"status":     "inProgress, completed",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Serialize mismatch (-want +got):\n%s", diff)
	}
}
