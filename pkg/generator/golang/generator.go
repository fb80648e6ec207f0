// Package golang renders the client_gen.go file of an area package
package golang

import (
	"bytes"
	"embed"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/blimu-dev/devops-sdk/pkg/config"
	"github.com/blimu-dev/devops-sdk/pkg/ir"
	"github.com/blimu-dev/devops-sdk/pkg/utils"
)

// FileName is the file written into the target's output directory
const FileName = "client_gen.go"

//go:embed templates/*
var templatesFS embed.FS

// GoGenerator implements the Generator interface for Go
type GoGenerator struct{}

// NewGoGenerator creates a new Go generator
func NewGoGenerator() *GoGenerator {
	return &GoGenerator{}
}

// GetType returns the generator type identifier
func (g *GoGenerator) GetType() string {
	return "go"
}

// Generate writes client_gen.go for in into the target's output directory
func (g *GoGenerator) Generate(target config.Target, in ir.IR) error {
	if err := os.MkdirAll(target.OutDir, 0o755); err != nil {
		return err
	}
	targetPath := filepath.Join(target.OutDir, FileName)
	if target.ShouldExcludeFile(targetPath) {
		return nil
	}

	packageName := target.PackageName
	if packageName == "" {
		packageName = in.Package
	}
	src, err := Render(in, packageName)
	if err != nil {
		return err
	}
	if err := os.WriteFile(targetPath, src, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", targetPath, err)
	}
	return nil
}

// Render returns the gofmt-formatted client_gen.go source for in
func Render(in ir.IR, packageName string) ([]byte, error) {
	module := in.Module
	if module == "" {
		module = config.DefaultModule
	}
	ops := in.Operations()
	data := map[string]any{
		"IR":         in,
		"Package":    sanitizePackageName(packageName),
		"Module":     module,
		"Imports":    fileImports(ops),
		"Operations": ops,
	}

	var buf bytes.Buffer
	if err := renderTemplate(&buf, "client_gen.go.gotmpl", funcMap(), data); err != nil {
		return nil, err
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to format generated code for %s: %w", in.Area, err)
	}
	return src, nil
}

func funcMap() template.FuncMap {
	funcMap := sprig.TxtFuncMap()
	for k, v := range (template.FuncMap{
		"argFields":       argFields,
		"paramValue":      paramValue,
		"returnType":      returnType,
		"httpMethod":      httpMethod,
		"lowerFirst":      utils.LowerFirst,
		"formatGoComment": formatGoComment,
	}) {
		funcMap[k] = v
	}
	return funcMap
}

// renderTemplate renders an embedded template into buf
func renderTemplate(buf *bytes.Buffer, templateName string, funcMap template.FuncMap, data any) error {
	tmplContent, err := templatesFS.ReadFile("templates/" + templateName)
	if err != nil {
		return fmt.Errorf("failed to read template %s: %w", templateName, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcMap).Parse(string(tmplContent))
	if err != nil {
		return fmt.Errorf("failed to parse template %s: %w", templateName, err)
	}

	if err := tmpl.Execute(buf, data); err != nil {
		return fmt.Errorf("failed to execute template %s: %w", templateName, err)
	}
	return nil
}
