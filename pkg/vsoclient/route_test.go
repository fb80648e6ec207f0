package vsoclient

import (
	"testing"
	"time"
)

func TestReplaceRouteValues(t *testing.T) {
	buildID := 7
	var missing *int

	tests := []struct {
		name     string
		template string
		values   Values
		want     string
	}{
		{
			name:     "all values",
			template: "{project}/_apis/build/builds/{buildId}",
			values:   Values{"project": "proj", "buildId": 42},
			want:     "proj/_apis/build/builds/42",
		},
		{
			name:     "optional segment dropped",
			template: "{project}/_apis/build/builds/{buildId}",
			values:   Values{"project": "proj"},
			want:     "proj/_apis/build/builds",
		},
		{
			name:     "leading segment dropped",
			template: "{project}/_apis/build/tags",
			values:   Values{},
			want:     "_apis/build/tags",
		},
		{
			name:     "area and resource",
			template: "_apis/{area}/{resource}",
			values:   Values{"area": "build", "resource": "builds"},
			want:     "_apis/build/builds",
		},
		{
			name:     "values are encoded",
			template: "{project}/_apis/build/builds/{buildId}/tags/{tag}",
			values:   Values{"project": "my project", "buildId": 1, "tag": "a/b"},
			want:     "my%20project/_apis/build/builds/1/tags/a%2Fb",
		},
		{
			name:     "wildcard",
			template: "{project}/_apis/build/Folders/{*path}",
			values:   Values{"project": "p", "path": `\Release\Nightly`},
			want:     "p/_apis/build/Folders/%5CRelease%5CNightly",
		},
		{
			name:     "zero and false are skipped",
			template: "_apis/{a}/{b}/{c}",
			values:   Values{"a": 0, "b": false, "c": "x"},
			want:     "_apis/x",
		},
		{
			name:     "pointers",
			template: "_apis/builds/{buildId}/{other}",
			values:   Values{"buildId": &buildID, "other": missing},
			want:     "_apis/builds/7",
		},
		{
			name:     "escaped braces",
			template: "a/{{literal}}/b",
			values:   Values{},
			want:     "a/{literal}/b",
		},
		{
			name:     "value inside segment",
			template: "_apis/test/Runs/{runId}.{format}",
			values:   Values{"runId": 3, "format": "zip"},
			want:     "_apis/test/Runs/3.zip",
		},
		{
			name:     "date",
			template: "_apis/{when}",
			values:   Values{"when": time.Date(2018, 1, 2, 3, 4, 5, 0, time.UTC)},
			want:     "_apis/2018-01-02T03%3A04%3A05Z",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := ReplaceRouteValues(test.template, test.values); got != test.want {
				t.Errorf("ReplaceRouteValues(%q) = %q, want %q", test.template, got, test.want)
			}
		})
	}
}

func TestEncodeURIComponent(t *testing.T) {
	tests := map[string]string{
		"abc-_.!~*'()": "abc-_.!~*'()",
		"$top":         "%24top",
		"a b&c=d":      "a%20b%26c%3Dd",
		"ü":            "%C3%BC",
	}
	for in, want := range tests {
		if got := encodeURIComponent(in); got != want {
			t.Errorf("encodeURIComponent(%q) = %q, want %q", in, got, want)
		}
	}
}
