// Package build is the client for the build resource area: definitions, builds,
// their logs, artifacts and timelines.
package build

import (
	"context"

	"github.com/blimu-dev/devops-sdk/pkg/api"
)

//go:generate go run ../../cmd/devops generate --config ../../devops-gen.yaml --target build

const (
	Area           = "build"
	ResourceAreaID = "965220d5-5bb9-42cf-8d67-9b146df2a5a4"
	UserAgent      = "go-Build-api"
)

// Client calls the build area. Its methods live in client_gen.go.
type Client struct {
	*api.Base
}

// NewClient creates a build client on the host that serves the area for conn
func NewClient(ctx context.Context, conn *api.Connection) (*Client, error) {
	base, err := conn.NewBase(ctx, ResourceAreaID, UserAgent)
	if err != nil {
		return nil, err
	}
	return &Client{Base: base}, nil
}
