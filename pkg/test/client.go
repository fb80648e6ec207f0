// Package test is the client for the test management area: plans, suites,
// points, runs, results and their attachments.
package test

import (
	"context"

	"github.com/blimu-dev/devops-sdk/pkg/api"
)

//go:generate go run ../../cmd/devops generate --config ../../devops-gen.yaml --target test

const (
	Area           = "Test"
	ResourceAreaID = "c2aa639c-3ccc-4740-b3b6-ce2a1e1d984e"
	UserAgent      = "go-Test-api"
)

// Client calls the test area. Its methods live in client_gen.go.
type Client struct {
	*api.Base

	// IsTFS selects the on-premises behavior: plan and suite routes send their
	// api version unchanged, suite test case lookups add the testcases action
	// and result lookups always include iteration details.
	IsTFS bool
}

// NewClient creates a test client on the host that serves the area for conn
func NewClient(ctx context.Context, conn *api.Connection) (*Client, error) {
	base, err := conn.NewBase(ctx, ResourceAreaID, UserAgent)
	if err != nil {
		return nil, err
	}
	return &Client{Base: base}, nil
}

// TeamContext names the project and team a team-scoped call acts on. IDs win
// over names when both are set.
type TeamContext struct {
	Project   string
	ProjectID string
	Team      string
	TeamID    string
}

// RouteProject is the project route value
func (tc *TeamContext) RouteProject() string {
	if tc == nil {
		return ""
	}
	if tc.ProjectID != "" {
		return tc.ProjectID
	}
	return tc.Project
}

// RouteTeam is the team route value
func (tc *TeamContext) RouteTeam() string {
	if tc == nil {
		return ""
	}
	if tc.TeamID != "" {
		return tc.TeamID
	}
	return tc.Team
}
