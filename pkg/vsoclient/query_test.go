package vsoclient

import (
	"encoding/json"
	"testing"
	"time"
)

type buildReference struct {
	ID     int    `json:"id"`
	Number string `json:"buildNumber,omitempty"`
}

func TestQueryString(t *testing.T) {
	top := 5
	zero := 0
	var unset *string

	tests := []struct {
		name   string
		values Values
		want   string
	}{
		{"nil", nil, ""},
		{"empty", Values{}, ""},
		{"sorted keys", Values{"b": "x", "a": "y"}, "?a=y&b=x"},
		{"dollar keys", Values{"$top": 10}, "?%24top=10"},
		{"skips nil and empty", Values{"a": nil, "b": "", "c": []string{}, "d": unset}, ""},
		{"skips zero and false", Values{"n": 0, "f": false, "x": 0.0, "j": json.Number("0")}, ""},
		{"keeps true and non-zero", Values{"n": 3, "f": true}, "?f=true&n=3"},
		{"skips zero pointer", Values{"$top": &zero}, ""},
		{"pointer", Values{"$top": &top}, "?%24top=5"},
		{"slice", Values{"definitions": []int{1, 2, 3}}, "?definitions=1%2C2%2C3"},
		{"string slice", Values{"tagFilters": []string{"a b", "c"}}, "?tagFilters=a%20b%2Cc"},
		{
			name:   "date",
			values: Values{"minTime": time.Date(2018, 1, 2, 3, 4, 5, 0, time.UTC)},
			want:   "?minTime=Tue%2C%2002%20Jan%202018%2003%3A04%3A05%20GMT",
		},
		{
			name:   "nested map",
			values: Values{"buildToCompare": map[string]any{"id": 3, "number": "x"}},
			want:   "?buildToCompare.id=3&buildToCompare.number=x",
		},
		{
			name:   "struct",
			values: Values{"buildToCompare": buildReference{ID: 2}},
			want:   "?buildToCompare.id=2",
		},
		{
			name:   "struct zero field",
			values: Values{"buildToCompare": buildReference{Number: "7"}},
			want:   "?buildToCompare.buildNumber=7",
		},
		{"json number", Values{"id": json.Number("12")}, "?id=12"},
		{"encodes values", Values{"branchName": "refs/heads/main"}, "?branchName=refs%2Fheads%2Fmain"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := QueryString(test.values); got != test.want {
				t.Errorf("QueryString() = %q, want %q", got, test.want)
			}
		})
	}
}
