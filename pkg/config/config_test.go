package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

const yamlConfig = `
module: example.com/sdk
organization:
  url: https://dev.example.com/${DEVOPS_TEST_ORG}
  auth:
    token: ${DEVOPS_TEST_TOKEN}
  timeout: 45s
  maxRetries: 2
  proxy:
    url: http://proxy:8080
    bypassHosts: [localhost, .internal]
  cert:
    caFile: certs/ca.pem
targets:
  - name: build
    area: areas/build.yaml
    type: go
    outDir: pkg/build
    excludeTags: ["^sourceProviders$"]
    postCommand: ["gofmt", "-w", "."]
  - name: build-openapi
    area: areas/build.yaml
    type: openapi
    outDir: /tmp/openapi
    exclude: ["docs/"]
`

const tomlConfig = `
[organization]
url = "https://dev.example.com/fabrikam"
timeout = "10s"

[organization.auth]
type = "basic"
username = "ci"
password = "secret"

[[targets]]
name = "test"
area = "areas/test.yaml"
type = "go"
outDir = "pkg/test"
includeTags = ["runs", "results"]
`

func TestLoadYAML(t *testing.T) {
	t.Setenv("DEVOPS_TEST_ORG", "fabrikam")
	t.Setenv("DEVOPS_TEST_TOKEN", "pat-123")

	dir := t.TempDir()
	path := filepath.Join(dir, "devops-gen.yaml")
	if err := os.WriteFile(path, []byte(yamlConfig), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Module != "example.com/sdk" {
		t.Errorf("Module = %q", cfg.Module)
	}
	if got, want := cfg.Organization.URL, "https://dev.example.com/fabrikam"; got != want {
		t.Errorf("Organization.URL = %q, want %q", got, want)
	}
	if got, want := cfg.Organization.Auth.Token, "pat-123"; got != want {
		t.Errorf("Auth.Token = %q, want %q", got, want)
	}

	want := []Target{
		{
			Name:        "build",
			Area:        filepath.Join(dir, "areas/build.yaml"),
			Type:        "go",
			OutDir:      filepath.Join(dir, "pkg/build"),
			ExcludeTags: []string{"^sourceProviders$"},
			PostCommand: []string{"gofmt", "-w", "."},
		},
		{
			Name:         "build-openapi",
			Area:         filepath.Join(dir, "areas/build.yaml"),
			Type:         "openapi",
			OutDir:       "/tmp/openapi",
			ExcludeFiles: []string{"docs/"},
		},
	}
	if diff := cmp.Diff(want, cfg.Targets); diff != "" {
		t.Errorf("Targets mismatch (-want +got):\n%s", diff)
	}

	opts, err := cfg.Organization.RestOptions()
	if err != nil {
		t.Fatal(err)
	}
	if opts.SocketTimeout != 45*time.Second || opts.MaxRetries != 2 {
		t.Errorf("RestOptions() timeout = %v retries = %d", opts.SocketTimeout, opts.MaxRetries)
	}
	if diff := cmp.Diff([]string{"localhost", ".internal"}, opts.Proxy.BypassHosts); diff != "" {
		t.Errorf("BypassHosts mismatch (-want +got):\n%s", diff)
	}
	if got, want := opts.Cert.CAFile, filepath.Join(dir, "certs/ca.pem"); got != want {
		t.Errorf("Cert.CAFile = %q, want %q", got, want)
	}
	if got := len(cfg.Organization.Handlers()); got != 1 {
		t.Errorf("len(Handlers()) = %d, want 1", got)
	}
}

func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "devops-gen.toml")
	if err := os.WriteFile(path, []byte(tomlConfig), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Module != DefaultModule {
		t.Errorf("Module = %q, want %q", cfg.Module, DefaultModule)
	}
	if diff := cmp.Diff(Auth{Type: AuthBasic, Username: "ci", Password: "secret"}, cfg.Organization.Auth); diff != "" {
		t.Errorf("Auth mismatch (-want +got):\n%s", diff)
	}
	target, err := cfg.Target("test")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"runs", "results"}, target.IncludeTags); diff != "" {
		t.Errorf("IncludeTags mismatch (-want +got):\n%s", diff)
	}
	if got, want := target.OutDir, filepath.Join(dir, "pkg/test"); got != want {
		t.Errorf("OutDir = %q, want %q", got, want)
	}
	if _, err := cfg.Target("build"); err == nil {
		t.Error("Target(build) succeeded, want error")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		ext     string
		data    string
		wantErr string
	}{
		{
			name:    "missing target fields",
			ext:     ".yaml",
			data:    "targets:\n  - name: build\n    type: go\n",
			wantErr: "targets[0] missing required fields (name, area, type, outDir)",
		},
		{
			name:    "duplicate target",
			ext:     ".yaml",
			data:    "targets:\n  - {name: b, area: a.yaml, type: go, outDir: out}\n  - {name: b, area: a.yaml, type: go, outDir: out}\n",
			wantErr: "targets[1] duplicate target name b",
		},
		{
			name:    "unknown yaml field",
			ext:     ".yml",
			data:    "schema: openapi.yaml\n",
			wantErr: "field schema not found",
		},
		{
			name:    "unknown toml field",
			ext:     ".toml",
			data:    "schema = \"openapi.yaml\"\n",
			wantErr: "failed to parse config",
		},
		{
			name:    "bad auth type",
			ext:     ".yaml",
			data:    "organization:\n  url: https://dev.example.com/x\n  auth: {type: ntlm}\n",
			wantErr: `unsupported organization.auth.type "ntlm"`,
		},
		{
			name:    "basic auth without user",
			ext:     ".yaml",
			data:    "organization:\n  url: https://dev.example.com/x\n  auth: {type: basic}\n",
			wantErr: "username is required for basic auth",
		},
		{
			name:    "bad timeout",
			ext:     ".yaml",
			data:    "organization:\n  url: https://dev.example.com/x\n  timeout: soon\n",
			wantErr: `invalid organization.timeout "soon"`,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Parse([]byte(test.data), test.ext)
			if err == nil {
				t.Fatalf("Parse() succeeded, want error containing %q", test.wantErr)
			}
			if !strings.Contains(err.Error(), test.wantErr) {
				t.Errorf("Parse() error = %q, want it to contain %q", err, test.wantErr)
			}
		})
	}
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(nil, ".yaml")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Module != DefaultModule || len(cfg.Targets) != 0 {
		t.Errorf("Parse(nil) = %+v", cfg)
	}
}

func TestFind(t *testing.T) {
	dir := t.TempDir()
	if _, err := Find(dir); err == nil {
		t.Fatal("Find() on empty dir succeeded, want error")
	}
	want := filepath.Join(dir, "devops-gen.toml")
	if err := os.WriteFile(want, []byte(tomlConfig), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := Find(dir)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("Find() = %q, want %q", got, want)
	}
}

func TestShouldExcludeFile(t *testing.T) {
	target := Target{OutDir: "/out", ExcludeFiles: []string{"client.go", "docs/"}}
	tests := []struct {
		path string
		want bool
	}{
		{"/out/client.go", true},
		{"/out/client_gen.go", false},
		{"/out/docs/index.md", true},
		{"/out/docsx/index.md", false},
		{"/elsewhere/client.go", false},
	}

	for _, test := range tests {
		if got := target.ShouldExcludeFile(test.path); got != test.want {
			t.Errorf("ShouldExcludeFile(%q) = %v, want %v", test.path, got, test.want)
		}
	}
}

func TestLoadRepositoryConfig(t *testing.T) {
	t.Setenv("DEVOPS_ORG_URL", "")
	t.Setenv("DEVOPS_TOKEN", "")

	cfg, err := Load(filepath.Join("..", "..", "devops-gen.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Module != DefaultModule {
		t.Errorf("Module = %q, want %q", cfg.Module, DefaultModule)
	}
	for _, name := range []string{"build", "test"} {
		target, err := cfg.Target(name)
		if err != nil {
			t.Fatal(err)
		}
		if target.Type != "go" {
			t.Errorf("%s type = %q, want go", name, target.Type)
		}
		if want := filepath.Join(cfg.Dir, "pkg", name); target.OutDir != want {
			t.Errorf("%s outDir = %q, want %q", name, target.OutDir, want)
		}
		if _, err := os.Stat(target.Area); err != nil {
			t.Errorf("%s area: %v", name, err)
		}
	}
}
