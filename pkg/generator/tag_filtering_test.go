package generator

import (
	"regexp"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/blimu-dev/devops-sdk/pkg/config"
	"github.com/blimu-dev/devops-sdk/pkg/ir"
)

func TestShouldIncludeOperation(t *testing.T) {
	tests := []struct {
		name        string
		tags        []string
		includeTags []string
		excludeTags []string
		expected    bool
	}{
		{"no filters", []string{"builds", "tags"}, nil, nil, true},
		{"include matches first tag", []string{"builds", "tags"}, []string{"builds"}, nil, true},
		{"include matches second tag", []string{"tags", "builds"}, []string{"builds"}, nil, true},
		{"include matches nothing", []string{"definitions"}, []string{"builds"}, nil, false},
		{"exclude matches", []string{"builds", "tags"}, nil, []string{"tags"}, false},
		{"exclude wins over include", []string{"builds", "tags"}, []string{"builds"}, []string{"tags"}, false},
		{"anchored pattern", []string{"buildsettings"}, []string{"^builds$"}, nil, false},
		{"any of several include patterns", []string{"runs"}, []string{"results", "runs"}, nil, true},
		{"no tags never match include", nil, []string{"builds"}, nil, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var include, exclude []*regexp.Regexp
			for _, p := range test.includeTags {
				include = append(include, regexp.MustCompile(p))
			}
			for _, p := range test.excludeTags {
				exclude = append(exclude, regexp.MustCompile(p))
			}

			result := shouldIncludeOperation(test.tags, include, exclude)
			if result != test.expected {
				t.Errorf("shouldIncludeOperation(%v, %v, %v) = %v, expected %v",
					test.tags, test.includeTags, test.excludeTags, result, test.expected)
			}
		})
	}
}

func testIR() ir.IR {
	return ir.IR{
		Area:    "build",
		Package: "build",
		Services: []ir.IRService{
			{Tag: "builds", Operations: []ir.IROperation{
				{Name: "GetBuild", Tags: []string{"builds"}},
				{Name: "GetBuildLogs", Tags: []string{"builds", "logs"}},
			}},
			{Tag: "tags", Operations: []ir.IROperation{
				{Name: "AddBuildTag", Tags: []string{"tags"}},
			}},
			{Tag: "misc", Operations: []ir.IROperation{
				{Name: "GetBadge"},
			}},
		},
	}
}

func operationNames(in ir.IR) []string {
	var names []string
	for _, op := range in.Operations() {
		names = append(names, op.Name)
	}
	return names
}

func TestFilterIR(t *testing.T) {
	tests := []struct {
		name    string
		include []string
		exclude []string
		want    []string
	}{
		{"unfiltered", nil, nil, []string{"GetBuild", "GetBuildLogs", "AddBuildTag", "GetBadge"}},
		{"include", []string{"^builds$"}, nil, []string{"GetBuild", "GetBuildLogs"}},
		{"exclude any tag", nil, []string{"logs"}, []string{"GetBuild", "AddBuildTag", "GetBadge"}},
		{"untagged is misc", []string{"misc"}, nil, []string{"GetBadge"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			target := config.Target{Name: "build", IncludeTags: test.include, ExcludeTags: test.exclude}
			got, err := filterIR(testIR(), target)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(test.want, operationNames(got)); diff != "" {
				t.Errorf("filterIR() mismatch (-want +got):\n%s", diff)
			}
			if got.Area != "build" {
				t.Errorf("filterIR() dropped area header: %+v", got)
			}
		})
	}
}

func TestFilterIRDropsEmptyServices(t *testing.T) {
	got, err := filterIR(testIR(), config.Target{IncludeTags: []string{"tags"}})
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Services) != 1 || got.Services[0].Tag != "tags" {
		t.Errorf("services = %+v, want only tags", got.Services)
	}
}

func TestFilterIRInvalidPattern(t *testing.T) {
	if _, err := filterIR(testIR(), config.Target{ExcludeTags: []string{"("}}); err == nil {
		t.Error("expected an error for an invalid pattern")
	}
}
