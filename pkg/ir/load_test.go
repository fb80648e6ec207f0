package ir

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const validDoc = `
area: build
package: build
resourceAreaId: 965220d5-5bb9-42cf-8d67-9b146df2a5a4
userAgent: go-Build-api
operations:
  - name: GetBuild
    description: Gets a build
    tags: [builds]
    method: get
    locationId: 0cd358e1-9217-4d94-8269-1c1ee6f93dcf
    apiVersion: 4.1-preview.3
    routeTemplate: "{project}/_apis/build/builds/{buildId}"
    params:
      - {name: project, in: route, type: string, description: Project ID or project name}
      - {name: buildId, in: route, type: int, description: The ID of the build}
      - {name: propertyFilters, in: query, type: "[]string", description: Property filters}
    response: {type: "*Build", typeInfo: BuildTypeInfo}
  - name: AddBuildTag
    description: Adds a tag to a build
    tags: [tags, builds]
    method: PUT
    locationId: 6e6114b2-8161-44c8-8f6c-c5505782427f
    apiVersion: 4.1-preview.2
    routeTemplate: "{project}/_apis/build/builds/{buildId}/tags/{*tag}"
    params:
      - {name: tag, in: route, type: string, description: The tag to add}
    response: {type: "[]string", collection: true}
  - name: GetBuildLog
    description: Gets a build log
    tags: [builds]
    method: GET
    locationId: 35a80daf-7f30-45fc-86e8-6b813d9c90df
    apiVersion: "4.1"
    params:
      - {name: action, in: route, value: '"testcases"', tfsOnly: true}
    response: {stream: true}
`

func TestParse(t *testing.T) {
	in, err := Parse([]byte(validDoc))
	if err != nil {
		t.Fatal(err)
	}
	if in.Area != "build" || in.Package != "build" || in.UserAgent != "go-Build-api" {
		t.Errorf("header = %q %q %q", in.Area, in.Package, in.UserAgent)
	}

	var got []string
	for _, s := range in.Services {
		for _, op := range s.Operations {
			got = append(got, s.Tag+"/"+op.Name)
		}
	}
	want := []string{"builds/GetBuild", "builds/GetBuildLog", "tags/AddBuildTag"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("services mismatch (-want +got):\n%s", diff)
	}

	op := in.Services[0].Operations[0]
	if op.Method != "GET" {
		t.Errorf("Method = %q, want GET", op.Method)
	}
	if diff := cmp.Diff([]IRParam{
		{Name: "project", In: InRoute, Type: "string", Description: "Project ID or project name"},
		{Name: "buildId", In: InRoute, Type: "int", Description: "The ID of the build"},
	}, op.RouteParams()); diff != "" {
		t.Errorf("RouteParams() mismatch (-want +got):\n%s", diff)
	}
	if got := op.QueryParams(); len(got) != 1 || got[0].Name != "propertyFilters" || !got[0].IsPointer() {
		t.Errorf("QueryParams() = %+v", got)
	}
	if diff := cmp.Diff(IRResponse{Type: "*Build", TypeInfo: "BuildTypeInfo"}, op.Response); diff != "" {
		t.Errorf("Response mismatch (-want +got):\n%s", diff)
	}

	logOp := in.Services[0].Operations[1]
	if got := logOp.TFSRouteParams(); len(got) != 1 || got[0].Value != `"testcases"` {
		t.Errorf("TFSRouteParams() = %+v", got)
	}
	if got := logOp.RouteParams(); len(got) != 0 {
		t.Errorf("RouteParams() = %+v, want none", got)
	}
}

func TestParseErrors(t *testing.T) {
	const header = "area: build\npackage: build\noperations:\n"
	const op = "  - {name: GetBuild, method: GET, locationId: 0cd358e1-9217-4d94-8269-1c1ee6f93dcf, apiVersion: 4.1-preview.3, routeTemplate: '{project}'"

	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{
			name:    "missing header",
			doc:     "operations: []\n",
			wantErr: "missing required fields (area, package)",
		},
		{
			name:    "no operations",
			doc:     "area: build\npackage: build\n",
			wantErr: "has no operations",
		},
		{
			name:    "bad resource area",
			doc:     "area: build\npackage: build\nresourceAreaId: nope\n",
			wantErr: `invalid resourceAreaId "nope"`,
		},
		{
			name:    "unknown field",
			doc:     header + op + ", bogus: 1}\n",
			wantErr: "field bogus not found",
		},
		{
			name:    "missing operation fields",
			doc:     header + "  - {name: GetBuild}\n",
			wantErr: "operations[0] GetBuild: missing required fields (method, locationId, apiVersion)",
		},
		{
			name:    "bad method",
			doc:     header + "  - {name: GetBuild, method: HEAD, locationId: 0cd358e1-9217-4d94-8269-1c1ee6f93dcf, apiVersion: '4.1'}\n",
			wantErr: "unsupported method HEAD",
		},
		{
			name:    "bad location",
			doc:     header + "  - {name: GetBuild, method: GET, locationId: builds, apiVersion: '4.1'}\n",
			wantErr: `invalid locationId "builds"`,
		},
		{
			name:    "bad version",
			doc:     header + "  - {name: GetBuild, method: GET, locationId: 0cd358e1-9217-4d94-8269-1c1ee6f93dcf, apiVersion: 4.1-beta}\n",
			wantErr: `invalid apiVersion "4.1-beta"`,
		},
		{
			name:    "bad param location",
			doc:     header + op + ", params: [{name: project, in: header, type: string}]}\n",
			wantErr: `in must be route or query, got "header"`,
		},
		{
			name:    "param without type",
			doc:     header + op + ", params: [{name: project, in: route}]}\n",
			wantErr: "one of type or value is required",
		},
		{
			name:    "param missing from template",
			doc:     header + op + ", params: [{name: buildId, in: route, type: int}]}\n",
			wantErr: "buildId: not in route template {project}",
		},
		{
			name:    "duplicate param",
			doc:     header + op + ", params: [{name: top, in: query, type: int}, {name: top, in: query, type: int}]}\n",
			wantErr: "duplicate query value top",
		},
		{
			name:    "stream with type",
			doc:     header + op + ", response: {stream: true, type: string}}\n",
			wantErr: "both a stream and a typed value",
		},
		{
			name:    "duplicate operation",
			doc:     header + op + "}\n" + op + "}\n",
			wantErr: "operations[1] duplicate operation name GetBuild",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Parse([]byte(test.doc))
			if err == nil {
				t.Fatalf("Parse() succeeded, want error containing %q", test.wantErr)
			}
			if !strings.Contains(err.Error(), test.wantErr) {
				t.Errorf("Parse() error = %q, want it to contain %q", err, test.wantErr)
			}
		})
	}
}

func TestLoadAreaDescriptions(t *testing.T) {
	tests := []struct {
		path    string
		area    string
		wantOps int
	}{
		{"../../areas/build.yaml", "build", 64},
		{"../../areas/test.yaml", "Test", 105},
	}

	for _, test := range tests {
		t.Run(test.area, func(t *testing.T) {
			in, err := Load(test.path)
			if err != nil {
				t.Fatal(err)
			}
			if in.Area != test.area {
				t.Errorf("Area = %q, want %q", in.Area, test.area)
			}
			if in.Source != test.path {
				t.Errorf("Source = %q, want %q", in.Source, test.path)
			}
			if got := len(in.Operations()); got != test.wantOps {
				t.Errorf("len(Operations()) = %d, want %d", got, test.wantOps)
			}
		})
	}
}
