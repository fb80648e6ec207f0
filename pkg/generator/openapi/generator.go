// Package openapi writes an area description as an OpenAPI 3 document
package openapi

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/blimu-dev/devops-sdk/pkg/config"
	"github.com/blimu-dev/devops-sdk/pkg/ir"
	"github.com/blimu-dev/devops-sdk/pkg/openapi"
	"github.com/blimu-dev/devops-sdk/pkg/utils"
)

// OpenAPIGenerator implements the Generator interface for OpenAPI documents
type OpenAPIGenerator struct{}

// NewOpenAPIGenerator creates a new OpenAPI generator
func NewOpenAPIGenerator() *OpenAPIGenerator {
	return &OpenAPIGenerator{}
}

// GetType returns the generator type identifier
func (g *OpenAPIGenerator) GetType() string {
	return "openapi"
}

// FileName is the document written for in: <area>.openapi.yaml with the area
// in kebab case
func FileName(in ir.IR) string {
	return utils.ToKebabCase(in.Area) + ".openapi.yaml"
}

// Generate exports in, validates the document and writes it into the
// target's output directory
func (g *OpenAPIGenerator) Generate(target config.Target, in ir.IR) error {
	if err := os.MkdirAll(target.OutDir, 0o755); err != nil {
		return err
	}
	targetPath := filepath.Join(target.OutDir, FileName(in))
	if target.ShouldExcludeFile(targetPath) {
		return nil
	}

	doc := openapi.Export(in)
	if err := openapi.Validate(doc); err != nil {
		return fmt.Errorf("failed to validate exported document: %w", err)
	}
	return openapi.WriteDocument(doc, targetPath)
}
