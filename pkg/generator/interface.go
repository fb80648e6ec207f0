package generator

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/blimu-dev/devops-sdk/pkg/config"
	"github.com/blimu-dev/devops-sdk/pkg/generator/golang"
	"github.com/blimu-dev/devops-sdk/pkg/generator/openapi"
	"github.com/blimu-dev/devops-sdk/pkg/ir"
)

// Generator renders an area description for a target
type Generator interface {
	// Generate writes the target's output for in
	Generate(target config.Target, in ir.IR) error
	// GetType returns the type identifier for this generator (e.g., "go")
	GetType() string
}

// Registry manages available generators
type Registry struct {
	generators map[string]Generator
}

// NewRegistry creates a new generator registry
func NewRegistry() *Registry {
	return &Registry{
		generators: make(map[string]Generator),
	}
}

// Register adds a generator to the registry
func (r *Registry) Register(gen Generator) {
	r.generators[gen.GetType()] = gen
}

// Get retrieves a generator by type
func (r *Registry) Get(genType string) (Generator, bool) {
	gen, exists := r.generators[genType]
	return gen, exists
}

// GetAvailableTypes returns all registered generator types, sorted
func (r *Registry) GetAvailableTypes() []string {
	types := make([]string, 0, len(r.generators))
	for t := range r.generators {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// GenerateOptions contains options for generation
type GenerateOptions struct {
	ConfigPath string
	// Target limits generation to one named target
	Target string
}

// Service loads area descriptions, filters them per target and runs the
// target's generator between its pre and post commands
type Service struct {
	registry *Registry
	logger   *slog.Logger
}

// NewService creates a new generator service with the go and openapi generators
func NewService() *Service {
	registry := NewRegistry()
	registry.Register(golang.NewGoGenerator())
	registry.Register(openapi.NewOpenAPIGenerator())
	return NewServiceWithRegistry(registry)
}

// NewServiceWithRegistry creates a new generator service with a custom registry
func NewServiceWithRegistry(registry *Registry) *Service {
	return &Service{
		registry: registry,
		logger:   slog.Default(),
	}
}

// SetLogger replaces the service logger
func (s *Service) SetLogger(logger *slog.Logger) {
	if logger != nil {
		s.logger = logger
	}
}

// Generate loads the config at opts.ConfigPath and generates its targets
func (s *Service) Generate(opts GenerateOptions) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}
	return s.GenerateFromConfig(cfg, opts.Target)
}

// GenerateFromConfig generates every target of cfg, or only onlyTarget when set
func (s *Service) GenerateFromConfig(cfg *config.Config, onlyTarget string) error {
	if onlyTarget != "" {
		if _, err := cfg.Target(onlyTarget); err != nil {
			return err
		}
	}

	for _, target := range cfg.Targets {
		if onlyTarget != "" && target.Name != onlyTarget {
			continue
		}
		if err := s.generateTarget(cfg, target); err != nil {
			return fmt.Errorf("target %s: %w", target.Name, err)
		}
	}
	return nil
}

func (s *Service) generateTarget(cfg *config.Config, target config.Target) error {
	generator, exists := s.registry.Get(target.Type)
	if !exists {
		return fmt.Errorf("unsupported target type: %s (available: %s)", target.Type, strings.Join(s.registry.GetAvailableTypes(), ", "))
	}

	in, err := ir.Load(target.Area)
	if err != nil {
		return err
	}
	in.Module = cfg.Module
	in.Source = sourceName(cfg.Dir, target.Area)

	filtered, err := filterIR(in, target)
	if err != nil {
		return err
	}
	if len(filtered.Services) == 0 {
		s.logger.Warn("no operations left after tag filtering", "target", target.Name, "area", in.Area)
	}

	// Ensure output directory exists before pre-commands
	if err := os.MkdirAll(target.OutDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := s.executeCommand(target.PreCommand, target.OutDir, "pre-command"); err != nil {
		return err
	}

	if err := generator.Generate(target, filtered); err != nil {
		return err
	}
	s.logger.Info("generated", "target", target.Name, "type", target.Type, "operations", len(filtered.Operations()), "outDir", target.OutDir)

	return s.executeCommand(target.PostCommand, target.OutDir, "post-command")
}

// GetRegistry returns the generator registry
func (s *Service) GetRegistry() *Registry {
	return s.registry
}

// sourceName is the area path recorded in generated headers: relative to the
// config directory with forward slashes, so output is stable across machines
func sourceName(dir, area string) string {
	if dir != "" {
		if rel, err := filepath.Rel(dir, area); err == nil && !strings.HasPrefix(rel, "..") {
			return filepath.ToSlash(rel)
		}
	}
	return filepath.ToSlash(area)
}

// executeCommand runs command (executable first, then arguments) in workDir
func (s *Service) executeCommand(command []string, workDir, commandLabel string) error {
	if len(command) == 0 {
		return nil
	}

	cmd := exec.Command(command[0], command[1:]...)
	cmd.Dir = workDir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	cmdDescription := strings.Join(command, " ")
	s.logger.Debug("running "+commandLabel, "command", cmdDescription, "dir", workDir)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s (%s) failed: %w", commandLabel, cmdDescription, err)
	}
	return nil
}
