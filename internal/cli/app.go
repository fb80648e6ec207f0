// Package cli implements the devops commands. cmd/devops wires them to cobra.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/blimu-dev/devops-sdk/pkg/api"
	"github.com/blimu-dev/devops-sdk/pkg/build"
	"github.com/blimu-dev/devops-sdk/pkg/config"
	"github.com/blimu-dev/devops-sdk/pkg/test"
)

// Globals are the persistent flags of the root command
type Globals struct {
	ConfigPath string
	// Org overrides organization.url
	Org string
	// Token overrides organization.auth.token
	Token   string
	Verbose bool
	// JSON prints raw results instead of tables
	JSON bool

	Out    io.Writer
	Logger *slog.Logger
}

func (g *Globals) out() io.Writer {
	if g.Out == nil {
		return os.Stdout
	}
	return g.Out
}

func (g *Globals) logger() *slog.Logger {
	if g.Logger == nil {
		return slog.Default()
	}
	return g.Logger
}

// configPath returns --config, or the first default config file in the
// working directory, or "" when there is none
func (g *Globals) configPath() (string, error) {
	if g.ConfigPath != "" {
		return g.ConfigPath, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	path, err := config.Find(wd)
	if err != nil {
		return "", nil
	}
	return path, nil
}

// LoadConfig loads the config file. required reports whether a missing file
// is an error; otherwise an empty config is returned.
func (g *Globals) LoadConfig(required bool) (*config.Config, error) {
	path, err := g.configPath()
	if err != nil {
		return nil, err
	}
	if path == "" {
		if required {
			return nil, fmt.Errorf("no config file: pass --config or create one of %s", strings.Join(config.DefaultFiles, ", "))
		}
		return &config.Config{Module: config.DefaultModule}, nil
	}
	return config.Load(path)
}

// Organization returns the configured organization with flag overrides applied
func (g *Globals) Organization() (config.Organization, error) {
	cfg, err := g.LoadConfig(false)
	if err != nil {
		return config.Organization{}, err
	}
	org := cfg.Organization
	if g.Org != "" {
		org.URL = g.Org
	}
	if g.Token != "" {
		org.Auth.Token = g.Token
		if org.Auth.Type == config.AuthBasic {
			org.Auth.Type = config.AuthPAT
		}
	}
	if org.URL == "" {
		return config.Organization{}, errors.New("no organization: pass --org or set organization.url in the config file")
	}
	if err := org.Validate(); err != nil {
		return config.Organization{}, err
	}
	return org, nil
}

// Connect opens a connection to the organization
func (g *Globals) Connect() (*api.Connection, error) {
	org, err := g.Organization()
	if err != nil {
		return nil, err
	}
	opts, err := org.RestOptions()
	if err != nil {
		return nil, err
	}
	opts.Logger = g.logger()
	return api.NewConnection(strings.TrimRight(org.URL, "/"), org.Handlers(), opts)
}

func (g *Globals) buildClient(ctx context.Context) (*build.Client, error) {
	conn, err := g.Connect()
	if err != nil {
		return nil, err
	}
	client, err := build.NewClient(ctx, conn)
	if err != nil {
		return nil, fmt.Errorf("failed to create build client: %w", err)
	}
	return client, nil
}

func (g *Globals) testClient(ctx context.Context) (*test.Client, error) {
	conn, err := g.Connect()
	if err != nil {
		return nil, err
	}
	client, err := test.NewClient(ctx, conn)
	if err != nil {
		return nil, fmt.Errorf("failed to create test client: %w", err)
	}
	return client, nil
}
