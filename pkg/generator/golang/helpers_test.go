package golang

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/blimu-dev/devops-sdk/pkg/config"
	"github.com/blimu-dev/devops-sdk/pkg/ir"
)

func TestArgFields(t *testing.T) {
	op := ir.IROperation{
		Body:   &ir.IRField{Field: "Document", Type: "api.JSONPatchDocument", Description: "The patch"},
		Fields: []ir.IRField{{Field: "TeamContext", Type: "*TeamContext", Description: "The team context"}},
		Params: []ir.IRParam{
			{Name: "project", In: ir.InRoute, Type: "string", Description: "Project"},
			{Name: "action", In: ir.InRoute, Value: `"testcases"`, TFSOnly: true},
			{Name: "$top", In: ir.InQuery, Type: "*int", Description: "Page size"},
			{Name: "definitionIds", In: ir.InQuery, Type: "[]int", Description: "Definitions"},
		},
		CustomHeaders: true,
	}

	want := []argField{
		{"Document", "api.JSONPatchDocument", "The patch"},
		{"TeamContext", "*TeamContext", "The team context"},
		{"Project", "string", "Project"},
		{"Top", "*int", "Page size"},
		{"DefinitionIDs", "[]int", "Definitions"},
		{"CustomHeaders", "map[string]string", "Extra headers sent with the request"},
	}
	if diff := cmp.Diff(want, argFields(op)); diff != "" {
		t.Errorf("argFields() mismatch (-want +got):\n%s", diff)
	}
}

func TestParamValue(t *testing.T) {
	tests := []struct {
		param    ir.IRParam
		expected string
	}{
		{ir.IRParam{Name: "buildId"}, "args.BuildID"},
		{ir.IRParam{Name: "$top"}, "args.Top"},
		{ir.IRParam{Name: "project", Value: "args.TeamContext.RouteProject()"}, "args.TeamContext.RouteProject()"},
	}

	for _, test := range tests {
		result := paramValue(test.param)
		if result != test.expected {
			t.Errorf("paramValue(%+v) = %q, expected %q", test.param, result, test.expected)
		}
	}
}

func TestReturnType(t *testing.T) {
	tests := []struct {
		response ir.IRResponse
		expected string
	}{
		{ir.IRResponse{}, "error"},
		{ir.IRResponse{Stream: true}, "(io.ReadCloser, error)"},
		{ir.IRResponse{Type: "*Build"}, "(*Build, error)"},
		{ir.IRResponse{Type: "[]Build", Collection: true}, "([]Build, error)"},
	}

	for _, test := range tests {
		result := returnType(ir.IROperation{Response: test.response})
		if result != test.expected {
			t.Errorf("returnType(%+v) = %q, expected %q", test.response, result, test.expected)
		}
	}
}

func TestFileImports(t *testing.T) {
	plain := ir.IROperation{Name: "GetBuild"}
	stream := ir.IROperation{Name: "GetBuildLog", Response: ir.IRResponse{Stream: true}}
	timed := ir.IROperation{Name: "GetBuilds", Params: []ir.IRParam{{Name: "minTime", In: ir.InQuery, Type: "*time.Time"}}}

	tests := []struct {
		name string
		ops  []ir.IROperation
		want []string
	}{
		{"plain", []ir.IROperation{plain}, []string{"context", "net/http"}},
		{"stream", []ir.IROperation{plain, stream}, []string{"context", "io", "net/http"}},
		{"time", []ir.IROperation{timed}, []string{"context", "net/http", "time"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if diff := cmp.Diff(test.want, fileImports(test.ops)); diff != "" {
				t.Errorf("fileImports() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSanitizePackageName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"build", "build"},
		{"Test", "test"},
		{"github.com/blimu-dev/devops-sdk/pkg/build", "build"},
		{"devops-sdk", "devopssdk"},
		{"2build", "pkg2build"},
		{"", "client"},
	}

	for _, test := range tests {
		result := sanitizePackageName(test.input)
		if result != test.expected {
			t.Errorf("sanitizePackageName(%q) = %q, expected %q", test.input, result, test.expected)
		}
	}
}

func TestRenderOperation(t *testing.T) {
	in := ir.IR{
		Area:    "Test",
		Package: "test",
		Source:  "areas/test.yaml",
		Module:  "example.com/sdk",
		Services: []ir.IRService{{
			Tag: "results",
			Operations: []ir.IROperation{{
				Name:        "GetTestResultByID",
				Description: "Gets a test result",
				Tags:        []string{"results"},
				Method:      "GET",
				LocationID:  "4637d869-3a76-4468-8057-0bb02aa385cf",
				APIVersion:  "5.0-preview.5",
				Params: []ir.IRParam{
					{Name: "project", In: ir.InRoute, Type: "string", Description: "Project ID or project name"},
					{Name: "runId", In: ir.InRoute, Type: "int", Description: "ID of the test run"},
					{Name: "detailsToInclude", In: ir.InQuery, Type: "*ResultDetails", Description: "Details to include"},
				},
				TFSQuery: map[string]string{"includeIterationDetails": "true"},
				Response: ir.IRResponse{Type: "*TestCaseResult", TypeInfo: "TestCaseResultTypeInfo"},
			}},
		}},
	}

	src, err := Render(in, in.Package)
	if err != nil {
		t.Fatal(err)
	}
	got := string(src)
	for _, want := range []string{
		"// Code generated by devops-gen from areas/test.yaml. DO NOT EDIT.\n\npackage test\n",
		"\t\"example.com/sdk/pkg/api\"\n",
		"type GetTestResultByIDArgs struct {\n\t// Project ID or project name\n\tProject string\n",
		"// GetTestResultByID gets a test result\nfunc (c *Client) GetTestResultByID(ctx context.Context, args GetTestResultByIDArgs) (*TestCaseResult, error) {\n",
		"\tif c.IsTFS {\n\t\tqueryValues = vsoclient.Values{\n\t\t\t\"includeIterationDetails\": true,\n\t\t}\n\t}\n",
		"\t\t\t\"runId\":   args.RunID,\n",
		"\t\tQueryValues: queryValues,\n",
		"\treturn api.Do[*TestCaseResult](ctx, c.Base, req, TestCaseResultTypeInfo, false)\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Render() output missing %q\n%s", want, got)
		}
	}
	if strings.Contains(got, `"io"`) {
		t.Errorf("Render() imports io without a stream response\n%s", got)
	}
}

// The checked-in client_gen.go files must match what the generator renders
// from the area descriptions.
func TestGeneratedFilesUpToDate(t *testing.T) {
	for _, area := range []string{"build", "test"} {
		t.Run(area, func(t *testing.T) {
			in, err := ir.Load(filepath.Join("..", "..", "..", "areas", area+".yaml"))
			if err != nil {
				t.Fatal(err)
			}
			in.Source = "areas/" + area + ".yaml"

			got, err := Render(in, in.Package)
			if err != nil {
				t.Fatal(err)
			}
			want, err := os.ReadFile(filepath.Join("..", "..", area, FileName))
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(string(want), string(got)); diff != "" {
				t.Errorf("%s/%s is stale, run go generate (-want +got):\n%s", area, FileName, diff)
			}
		})
	}
}

func TestGenerateHonoursExclude(t *testing.T) {
	dir := t.TempDir()
	in, err := ir.Load(filepath.Join("..", "..", "..", "areas", "build.yaml"))
	if err != nil {
		t.Fatal(err)
	}

	target := config.Target{Name: "build", Type: "go", OutDir: dir, ExcludeFiles: []string{FileName}}
	if err := NewGoGenerator().Generate(target, in); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, FileName)); !os.IsNotExist(err) {
		t.Errorf("excluded %s was written (stat err = %v)", FileName, err)
	}

	target.ExcludeFiles = nil
	target.PackageName = "buildclient"
	if err := NewGoGenerator().Generate(target, in); err != nil {
		t.Fatal(err)
	}
	src, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(src), "\npackage buildclient\n") {
		t.Errorf("generated file does not use the target package name")
	}
}
