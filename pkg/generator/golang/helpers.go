package golang

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/blimu-dev/devops-sdk/pkg/ir"
	"github.com/blimu-dev/devops-sdk/pkg/utils"
)

var httpMethodConsts = map[string]string{
	"GET":    "http.MethodGet",
	"POST":   "http.MethodPost",
	"PUT":    "http.MethodPut",
	"PATCH":  "http.MethodPatch",
	"DELETE": "http.MethodDelete",
}

// argField is one field of a generated Args struct
type argField struct {
	Name        string
	Type        string
	Description string
}

// argFields lists an operation's Args struct fields: the body, extra fields,
// then every param backed by an argument, then custom headers
func argFields(op ir.IROperation) []argField {
	var out []argField
	if op.Body != nil {
		out = append(out, argField{op.Body.Field, op.Body.Type, op.Body.Description})
	}
	for _, f := range op.Fields {
		out = append(out, argField{f.Field, f.Type, f.Description})
	}
	for _, p := range op.Params {
		if p.Value != "" {
			continue
		}
		out = append(out, argField{utils.ToGoName(p.Name), p.Type, p.Description})
	}
	if op.CustomHeaders {
		out = append(out, argField{"CustomHeaders", "map[string]string", "Extra headers sent with the request"})
	}
	return out
}

// paramValue is the Go expression a route or query value takes
func paramValue(p ir.IRParam) string {
	if p.Value != "" {
		return p.Value
	}
	return "args." + utils.ToGoName(p.Name)
}

// returnType is the method's result list
func returnType(op ir.IROperation) string {
	switch {
	case op.Response.Stream:
		return "(io.ReadCloser, error)"
	case op.Response.Type != "":
		return "(" + op.Response.Type + ", error)"
	}
	return "error"
}

func httpMethod(method string) string {
	if c, ok := httpMethodConsts[strings.ToUpper(method)]; ok {
		return c
	}
	return fmt.Sprintf("%q", method)
}

var timeTypePattern = regexp.MustCompile(`\btime\.`)

// fileImports returns the standard library imports client_gen.go needs
func fileImports(ops []ir.IROperation) []string {
	imports := []string{"context"}
	var stream, usesTime bool
	for _, op := range ops {
		stream = stream || op.Response.Stream
		for _, f := range argFields(op) {
			usesTime = usesTime || timeTypePattern.MatchString(f.Type)
		}
	}
	if stream {
		imports = append(imports, "io")
	}
	imports = append(imports, "net/http")
	if usesTime {
		imports = append(imports, "time")
	}
	return imports
}

// formatGoComment formats a string as a Go comment, handling multiline descriptions
func formatGoComment(s string) string {
	if s == "" {
		return ""
	}

	lines := strings.Split(s, "\n")
	var result []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			result = append(result, "//")
		} else {
			result = append(result, "// "+line)
		}
	}
	return strings.Join(result, "\n")
}

// sanitizePackageName ensures the package name is valid for Go
func sanitizePackageName(name string) string {
	// Extract the last part of the package name if it looks like a module path
	parts := strings.Split(name, "/")
	if len(parts) > 0 {
		name = parts[len(parts)-1]
	}

	name = strings.ToLower(name)
	name = regexp.MustCompile(`[^a-z0-9_]`).ReplaceAllString(name, "")

	if len(name) > 0 && name[0] >= '0' && name[0] <= '9' {
		name = "pkg" + name
	}
	if name == "" {
		name = "client"
	}
	return name
}
