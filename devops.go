// Package devops is the entry point to the build and test clients and to the
// generator that produces them.
//
// Quick Start:
//
//	import "github.com/blimu-dev/devops-sdk"
//
//	conn, err := devops.Connect("https://dev.azure.com/fabrikam", os.Getenv("DEVOPS_TOKEN"))
//	if err != nil {
//		return err
//	}
//	builds, err := devops.NewBuildClient(ctx, conn)
//	if err != nil {
//		return err
//	}
//	latest, err := builds.GetBuilds(ctx, build.GetBuildsArgs{Project: "Fabrikam-Fiber", Top: &top})
//
// The area clients live in pkg/build and pkg/test. Their methods are generated
// from the area descriptions in areas/ with `devops generate`.
package devops

import (
	"context"

	"github.com/blimu-dev/devops-sdk/pkg/api"
	"github.com/blimu-dev/devops-sdk/pkg/build"
	"github.com/blimu-dev/devops-sdk/pkg/generator"
	"github.com/blimu-dev/devops-sdk/pkg/rest"
	"github.com/blimu-dev/devops-sdk/pkg/test"
)

// Connect opens a connection to an organization or collection URL,
// authenticating with a personal access token
func Connect(url, token string, opts ...rest.Options) (*api.Connection, error) {
	var o rest.Options
	if len(opts) > 0 {
		o = opts[0]
	}
	var handlers []rest.Handler
	if token != "" {
		handlers = append(handlers, rest.PersonalAccessToken(token))
	}
	return api.NewConnection(url, handlers, o)
}

// NewBuildClient creates a client for the build area
func NewBuildClient(ctx context.Context, conn *api.Connection) (*build.Client, error) {
	return build.NewClient(ctx, conn)
}

// NewTestClient creates a client for the test area. isTFS selects the
// on-premises request shapes.
func NewTestClient(ctx context.Context, conn *api.Connection, isTFS bool) (*test.Client, error) {
	client, err := test.NewClient(ctx, conn)
	if err != nil {
		return nil, err
	}
	client.IsTFS = isTFS
	return client, nil
}

// GenerateFromConfig generates the targets of a devops-gen.yaml or
// devops-gen.toml file. Optionally, only the named target is generated.
//
// Example:
//
//	err := devops.GenerateFromConfig("./devops-gen.yaml", "build")
func GenerateFromConfig(configPath string, onlyTarget ...string) error {
	return generator.GenerateFromConfig(configPath, onlyTarget...)
}

// GenerateArea generates one area description without a config file.
//
// Example:
//
//	err := devops.GenerateArea(devops.GenerateAreaOptions{
//		Area:        "./areas/build.yaml",
//		Type:        "openapi",
//		OutDir:      "./docs",
//		ExcludeTags: []string{"xaml"},
//	})
func GenerateArea(opts GenerateAreaOptions) error {
	return generator.GenerateArea(opts)
}

// GenerateAreaOptions contains options for GenerateArea
type GenerateAreaOptions = generator.GenerateAreaOptions

// ValidateArea validates an area description file
func ValidateArea(path string) error {
	return generator.ValidateArea(path)
}
