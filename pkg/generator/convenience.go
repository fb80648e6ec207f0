package generator

import (
	"path/filepath"

	"github.com/blimu-dev/devops-sdk/pkg/config"
	"github.com/blimu-dev/devops-sdk/pkg/ir"
)

// GenerateAreaOptions generates one area without a config file
type GenerateAreaOptions struct {
	// Area is the area description file
	Area string
	// Type is the generator: go or openapi
	Type   string
	OutDir string
	// Module is the import path of the SDK, config.DefaultModule when empty
	Module string
	// PackageName overrides the package named in the area description
	PackageName string
	IncludeTags []string // Regex patterns for tags to include
	ExcludeTags []string // Regex patterns for tags to exclude
}

// GenerateArea is a convenience function for generating a single area
func GenerateArea(opts GenerateAreaOptions) error {
	area, err := filepath.Abs(opts.Area)
	if err != nil {
		return err
	}
	outDir, err := filepath.Abs(opts.OutDir)
	if err != nil {
		return err
	}
	module := opts.Module
	if module == "" {
		module = config.DefaultModule
	}

	cfg := &config.Config{
		Module: module,
		Targets: []config.Target{{
			Name:        filepath.Base(outDir),
			Area:        area,
			Type:        opts.Type,
			OutDir:      outDir,
			PackageName: opts.PackageName,
			IncludeTags: opts.IncludeTags,
			ExcludeTags: opts.ExcludeTags,
		}},
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	return NewService().GenerateFromConfig(cfg, "")
}

// GenerateFromConfig is a convenience function for generating from a config file
func GenerateFromConfig(configPath string, onlyTarget ...string) error {
	target := ""
	if len(onlyTarget) > 0 {
		target = onlyTarget[0]
	}
	return NewService().Generate(GenerateOptions{ConfigPath: configPath, Target: target})
}

// ValidateArea loads and validates an area description
func ValidateArea(path string) error {
	_, err := ir.Load(path)
	return err
}
