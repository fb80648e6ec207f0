package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/blimu-dev/devops-sdk/pkg/ir"
	"github.com/blimu-dev/devops-sdk/pkg/openapi"
	"github.com/blimu-dev/devops-sdk/pkg/utils"
)

// OpenAPIParams selects the area to export and where to
type OpenAPIParams struct {
	Area string
	// Output is a .yaml or .json file, or a directory to write
	// <area>.openapi.yaml into; empty prints to the command output.
	// --json switches the directory and stdout forms to JSON.
	Output string
}

// RunOpenAPI exports an area description as a validated OpenAPI document
func RunOpenAPI(g *Globals, p OpenAPIParams) error {
	in, err := ir.Load(p.Area)
	if err != nil {
		return err
	}
	doc := openapi.Export(in)
	if err := openapi.Validate(doc); err != nil {
		return fmt.Errorf("failed to validate exported document: %w", err)
	}
	g.logger().Debug("exported", "document", openapi.Describe(doc))

	ext := ".yaml"
	if g.JSON {
		ext = ".json"
	}

	if p.Output != "" {
		path := p.Output
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			path = filepath.Join(path, utils.ToKebabCase(in.Area)+".openapi"+ext)
		}
		if err := openapi.WriteDocument(doc, path); err != nil {
			return err
		}
		g.logger().Info("wrote OpenAPI document", "path", path, "operations", len(openapi.Operations(doc)))
		return nil
	}

	data, err := openapi.Marshal(doc, ext)
	if err != nil {
		return err
	}
	_, err = g.out().Write(data)
	return err
}
