package openapi

import (
	"net/http"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/blimu-dev/devops-sdk/pkg/ir"
)

func loadArea(t *testing.T, name string) ir.IR {
	t.Helper()
	in, err := ir.Load(filepath.Join("..", "..", "areas", name+".yaml"))
	if err != nil {
		t.Fatal(err)
	}
	return in
}

func TestExportValidates(t *testing.T) {
	for _, area := range []string{"build", "test"} {
		t.Run(area, func(t *testing.T) {
			in := loadArea(t, area)
			doc := Export(in)
			if err := Validate(doc); err != nil {
				t.Fatalf("Validate() = %v", err)
			}
			if got := doc.Info.Extensions["x-devops-resource-area-id"]; got != in.ResourceAreaID {
				t.Errorf("resource area extension = %v, want %s", got, in.ResourceAreaID)
			}
		})
	}
}

func TestExportBuildOperation(t *testing.T) {
	doc := Export(loadArea(t, "build"))

	item := doc.Paths.Value("/{project}/_apis/build/builds/{buildId}/tags/{tag}")
	if item == nil || item.Put == nil {
		t.Fatal("missing PUT for build tags")
	}
	op := item.Put
	if op.OperationID != "addBuildTag" {
		t.Errorf("OperationID = %q, want addBuildTag", op.OperationID)
	}
	if got := op.Extensions["x-go-name"]; got != "AddBuildTag" {
		t.Errorf("x-go-name = %v, want AddBuildTag", got)
	}
	var pathParams []string
	for _, p := range op.Parameters {
		pathParams = append(pathParams, p.Value.In+":"+p.Value.Name)
	}
	if diff := cmp.Diff([]string{"path:project", "path:buildId", "path:tag"}, pathParams); diff != "" {
		t.Errorf("parameters mismatch (-want +got):\n%s", diff)
	}
	if got := op.Extensions["x-devops-location-id"]; got != "6e6114b2-8161-44c8-8f6c-c5505782427f" {
		t.Errorf("location extension = %v", got)
	}

	resp := op.Responses.Status(http.StatusOK)
	schema := resp.Value.Content.Get("application/json").Schema.Value
	if schema.Properties["value"] == nil || schema.Properties["count"] == nil {
		t.Errorf("collection response is not wrapped in count/value: %+v", schema.Properties)
	}
}

func TestExportMergesOverloads(t *testing.T) {
	doc := Export(loadArea(t, "build"))

	get := doc.Paths.Value("/{project}/_apis/build/builds/{buildId}/artifacts").Get
	if get == nil {
		t.Fatal("missing GET for artifacts")
	}
	if get.OperationID != "getArtifact" {
		t.Errorf("OperationID = %q, want getArtifact", get.OperationID)
	}
	if diff := cmp.Diff([]string{"getArtifactContentZip", "getArtifacts"}, get.Extensions["x-devops-overloads"]); diff != "" {
		t.Errorf("overloads mismatch (-want +got):\n%s", diff)
	}
	content := get.Responses.Status(http.StatusOK).Value.Content
	for _, mediaType := range []string{"application/json", "application/zip"} {
		if content.Get(mediaType) == nil {
			t.Errorf("response has no %s content", mediaType)
		}
	}
}

func TestExportOperationIDsAreCamelCase(t *testing.T) {
	doc := Export(loadArea(t, "test"))

	get := doc.Paths.Value("/{project}/_apis/test/Runs/{runId}/results/{testCaseResultId}").Get
	if get == nil {
		t.Fatal("missing GET for test results")
	}
	if get.OperationID != "getTestResultById" {
		t.Errorf("OperationID = %q, want getTestResultById", get.OperationID)
	}
	if got := get.Extensions["x-go-name"]; got != "GetTestResultByID" {
		t.Errorf("x-go-name = %v, want GetTestResultByID", got)
	}
}

func TestWriteDocumentRoundTrip(t *testing.T) {
	doc := Export(loadArea(t, "test"))
	for _, name := range []string{"test.openapi.yaml", "test.openapi.json"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			if err := WriteDocument(doc, path); err != nil {
				t.Fatal(err)
			}
			if err := ValidateDocument(path); err != nil {
				t.Fatalf("ValidateDocument() = %v", err)
			}
			loaded, err := LoadDocument(path)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(Operations(doc), Operations(loaded)); diff != "" {
				t.Errorf("operations mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLatestVersion(t *testing.T) {
	tests := []struct {
		name     string
		versions []string
		want     string
	}{
		{"none", nil, "1.0"},
		{"previews", []string{"4.1-preview.3", "5.0-preview.2", "5.0-preview.5"}, "5.0-preview.5"},
		{"released wins", []string{"5.0-preview.5", "5.0", "4.1"}, "5.0"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var ops []ir.IROperation
			for _, v := range test.versions {
				ops = append(ops, ir.IROperation{APIVersion: v})
			}
			if got := latestVersion(ops); got != test.want {
				t.Errorf("latestVersion() = %q, want %q", got, test.want)
			}
		})
	}
}
