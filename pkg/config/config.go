// Package config loads devops-gen configuration: the organization the CLI talks
// to and the generation targets built from area descriptions.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/blimu-dev/devops-sdk/pkg/rest"
)

// DefaultModule is the import path generated code refers to
const DefaultModule = "github.com/blimu-dev/devops-sdk"

// DefaultFiles are looked up, in order, when no config path is given
var DefaultFiles = []string{"devops-gen.yaml", "devops-gen.yml", "devops-gen.toml"}

// Auth types
const (
	AuthPAT    = "pat"
	AuthBearer = "bearer"
	AuthBasic  = "basic"
)

// Config represents the complete configuration
type Config struct {
	Organization Organization `yaml:"organization" toml:"organization"`
	// Module is the import path of the SDK packages generated code lives in
	Module  string   `yaml:"module" toml:"module"`
	Targets []Target `yaml:"targets" toml:"targets"`

	// Dir is the absolute directory of the loaded file, empty after Parse
	Dir string `yaml:"-" toml:"-"`
}

// Organization describes the server the CLI connects to
type Organization struct {
	URL  string `yaml:"url" toml:"url"`
	Auth Auth   `yaml:"auth" toml:"auth"`
	// Timeout bounds each request, e.g. "30s"
	Timeout        string `yaml:"timeout" toml:"timeout"`
	IgnoreSSLError bool   `yaml:"ignoreSslError" toml:"ignoreSslError"`
	MaxRetries     int    `yaml:"maxRetries" toml:"maxRetries"`
	Proxy          *Proxy `yaml:"proxy" toml:"proxy"`
	Cert           *Cert  `yaml:"cert" toml:"cert"`
}

// Auth selects the request handler. Type is one of pat, bearer or basic.
type Auth struct {
	Type     string `yaml:"type" toml:"type"`
	Token    string `yaml:"token" toml:"token"`
	Username string `yaml:"username" toml:"username"`
	Password string `yaml:"password" toml:"password"`
}

type Proxy struct {
	URL         string   `yaml:"url" toml:"url"`
	Username    string   `yaml:"username" toml:"username"`
	Password    string   `yaml:"password" toml:"password"`
	BypassHosts []string `yaml:"bypassHosts" toml:"bypassHosts"`
}

type Cert struct {
	CAFile     string `yaml:"caFile" toml:"caFile"`
	CertFile   string `yaml:"certFile" toml:"certFile"`
	KeyFile    string `yaml:"keyFile" toml:"keyFile"`
	Passphrase string `yaml:"passphrase" toml:"passphrase"`
}

// Target represents one generated output
type Target struct {
	Name string `yaml:"name" toml:"name"`
	// Area is the area description file
	Area string `yaml:"area" toml:"area"`
	// Type is the generator: go or openapi
	Type   string `yaml:"type" toml:"type"`
	OutDir string `yaml:"outDir" toml:"outDir"`
	// PackageName overrides the package named in the area description
	PackageName string   `yaml:"packageName" toml:"packageName"`
	IncludeTags []string `yaml:"includeTags" toml:"includeTags"`
	ExcludeTags []string `yaml:"excludeTags" toml:"excludeTags"`
	// PreCommand runs in OutDir before generation, e.g. ["go", "mod", "tidy"]
	PreCommand []string `yaml:"preCommand" toml:"preCommand"`
	// PostCommand runs in OutDir after generation, e.g. ["gofmt", "-w", "."]
	PostCommand []string `yaml:"postCommand" toml:"postCommand"`
	// ExcludeFiles lists paths relative to OutDir that are never written
	ExcludeFiles []string `yaml:"exclude" toml:"exclude"`
}

// ShouldExcludeFile checks if a file path should be excluded based on the ExcludeFiles list.
// targetPath should be an absolute path, and the comparison is done relative to OutDir.
func (t *Target) ShouldExcludeFile(targetPath string) bool {
	if len(t.ExcludeFiles) == 0 {
		return false
	}

	relPath, err := filepath.Rel(t.OutDir, targetPath)
	if err != nil {
		return false
	}
	relPath = filepath.ToSlash(relPath)
	if relPath == "." {
		relPath = ""
	}

	for _, excludePattern := range t.ExcludeFiles {
		normalizedExclude := strings.TrimSuffix(filepath.ToSlash(excludePattern), "/")
		if relPath == normalizedExclude {
			return true
		}
		// "dir/" excludes everything below dir
		if normalizedExclude != "" && strings.HasPrefix(relPath, normalizedExclude+"/") {
			return true
		}
	}
	return false
}

// Find returns the first of DefaultFiles present in dir
func Find(dir string) (string, error) {
	for _, name := range DefaultFiles {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no config file found in %s (looked for %s)", dir, strings.Join(DefaultFiles, ", "))
}

// Load loads configuration from a YAML or TOML file, chosen by extension.
// Environment variables in string values are expanded and relative paths are
// resolved against the config file's directory.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	dir, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, err
	}
	cfg.Dir = dir
	cfg.resolvePaths(dir)
	return cfg, nil
}

// Parse decodes and validates configuration. ext selects the format; ".toml"
// is TOML and anything else YAML.
func Parse(data []byte, ext string) (*Config, error) {
	var cfg Config
	switch strings.ToLower(ext) {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}
	cfg.expandEnv()
	if cfg.Module == "" {
		cfg.Module = DefaultModule
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks targets and, when set, the organization
func (c *Config) Validate() error {
	names := map[string]bool{}
	for i := range c.Targets {
		t := &c.Targets[i]
		if t.Name == "" || t.Area == "" || t.Type == "" || t.OutDir == "" {
			return fmt.Errorf("targets[%d] missing required fields (name, area, type, outDir)", i)
		}
		if names[t.Name] {
			return fmt.Errorf("targets[%d] duplicate target name %s", i, t.Name)
		}
		names[t.Name] = true
	}
	if c.Organization.URL != "" {
		return c.Organization.Validate()
	}
	return nil
}

// Target returns the target called name
func (c *Config) Target(name string) (*Target, error) {
	for i := range c.Targets {
		if c.Targets[i].Name == name {
			return &c.Targets[i], nil
		}
	}
	return nil, fmt.Errorf("unknown target %s", name)
}

// Validate checks the organization is usable for live requests
func (o *Organization) Validate() error {
	if o.URL == "" {
		return errors.New("organization.url is required")
	}
	switch o.Auth.Type {
	case "", AuthPAT, AuthBearer:
	case AuthBasic:
		if o.Auth.Username == "" {
			return errors.New("organization.auth.username is required for basic auth")
		}
	default:
		return fmt.Errorf("unsupported organization.auth.type %q (want %s, %s or %s)", o.Auth.Type, AuthPAT, AuthBearer, AuthBasic)
	}
	if _, err := o.timeout(); err != nil {
		return err
	}
	return nil
}

func (o *Organization) timeout() (time.Duration, error) {
	if o.Timeout == "" {
		return 0, nil
	}
	d, err := cast.ToDurationE(o.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid organization.timeout %q: %w", o.Timeout, err)
	}
	return d, nil
}

// Handlers returns the request handlers for the configured auth. A personal
// access token is the default when only a token is set.
func (o *Organization) Handlers() []rest.Handler {
	switch o.Auth.Type {
	case AuthBasic:
		return []rest.Handler{rest.Basic(o.Auth.Username, o.Auth.Password)}
	case AuthBearer:
		return []rest.Handler{rest.BearerToken(o.Auth.Token)}
	}
	if o.Auth.Token == "" {
		return nil
	}
	return []rest.Handler{rest.PersonalAccessToken(o.Auth.Token)}
}

// RestOptions converts the organization's request settings
func (o *Organization) RestOptions() (rest.Options, error) {
	timeout, err := o.timeout()
	if err != nil {
		return rest.Options{}, err
	}
	opts := rest.Options{
		SocketTimeout:  timeout,
		IgnoreSSLError: o.IgnoreSSLError,
		MaxRetries:     o.MaxRetries,
	}
	if o.Proxy != nil {
		opts.Proxy = &rest.ProxyConfig{
			URL:         o.Proxy.URL,
			Username:    o.Proxy.Username,
			Password:    o.Proxy.Password,
			BypassHosts: o.Proxy.BypassHosts,
		}
	}
	if o.Cert != nil {
		opts.Cert = &rest.CertConfig{
			CAFile:     o.Cert.CAFile,
			CertFile:   o.Cert.CertFile,
			KeyFile:    o.Cert.KeyFile,
			Passphrase: o.Cert.Passphrase,
		}
	}
	return opts, nil
}

func (c *Config) expandEnv() {
	o := &c.Organization
	for _, s := range []*string{&o.URL, &o.Auth.Token, &o.Auth.Username, &o.Auth.Password, &c.Module} {
		*s = os.ExpandEnv(*s)
	}
	if o.Proxy != nil {
		for _, s := range []*string{&o.Proxy.URL, &o.Proxy.Username, &o.Proxy.Password} {
			*s = os.ExpandEnv(*s)
		}
	}
	if o.Cert != nil {
		for _, s := range []*string{&o.Cert.CAFile, &o.Cert.CertFile, &o.Cert.KeyFile, &o.Cert.Passphrase} {
			*s = os.ExpandEnv(*s)
		}
	}
	for i := range c.Targets {
		t := &c.Targets[i]
		t.Area = os.ExpandEnv(t.Area)
		t.OutDir = os.ExpandEnv(t.OutDir)
	}
}

func (c *Config) resolvePaths(dir string) {
	abs := func(p *string) {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(dir, *p)
		}
	}
	for i := range c.Targets {
		abs(&c.Targets[i].Area)
		abs(&c.Targets[i].OutDir)
	}
	if cert := c.Organization.Cert; cert != nil {
		abs(&cert.CAFile)
		abs(&cert.CertFile)
		abs(&cert.KeyFile)
	}
}
