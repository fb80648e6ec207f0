package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/blimu-dev/devops-sdk/pkg/test"
)

// RunsListParams filters `runs list`
type RunsListParams struct {
	Project   string
	BuildURI  string
	Automated *bool
	Top       int
}

// RunRunsList prints the test runs of a project
func RunRunsList(ctx context.Context, g *Globals, p RunsListParams) error {
	args := test.GetTestRunsArgs{
		Project:   p.Project,
		BuildURI:  p.BuildURI,
		Automated: p.Automated,
	}
	if p.Top > 0 {
		args.Top = &p.Top
	}

	client, err := g.testClient(ctx)
	if err != nil {
		return err
	}
	runs, err := client.GetTestRuns(ctx, args)
	if err != nil {
		return fmt.Errorf("failed to list test runs: %w", err)
	}
	if g.JSON {
		return writeJSON(g.out(), runs, test.TestRunTypeInfo)
	}

	t := newTable(g.out(), "ID", "NAME", "STATE", "PASSED", "TOTAL", "BUILD", "STARTED")
	for _, r := range runs {
		t.row(strconv.Itoa(r.ID), orDash(r.Name), orDash(r.State), strconv.Itoa(r.PassedTests), strconv.Itoa(r.TotalTests), referenceName(r.Build), formatTime(r.StartedDate))
	}
	return t.flush()
}

// RunRunGet prints one test run
func RunRunGet(ctx context.Context, g *Globals, project string, runID int) error {
	client, err := g.testClient(ctx)
	if err != nil {
		return err
	}
	includeDetails := true
	r, err := client.GetTestRunByID(ctx, test.GetTestRunByIDArgs{Project: project, RunID: runID, IncludeDetails: &includeDetails})
	if err != nil {
		return fmt.Errorf("failed to get test run %d: %w", runID, err)
	}
	if r == nil {
		return fmt.Errorf("test run %d not found in project %s", runID, project)
	}
	if g.JSON {
		return writeJSON(g.out(), r, test.TestRunTypeInfo)
	}

	t := newTable(g.out(), "FIELD", "VALUE")
	t.row("id", strconv.Itoa(r.ID))
	t.row("name", orDash(r.Name))
	t.row("state", orDash(r.State))
	t.row("substate", r.Substate.String())
	t.row("automated", strconv.FormatBool(r.IsAutomated))
	t.row("build", referenceName(r.Build))
	t.row("passed", strconv.Itoa(r.PassedTests))
	t.row("unanalyzed", strconv.Itoa(r.UnanalyzedTests))
	t.row("incomplete", strconv.Itoa(r.IncompleteTests))
	t.row("total", strconv.Itoa(r.TotalTests))
	t.row("started", formatTime(r.StartedDate))
	t.row("completed", formatTime(r.CompletedDate))
	if r.ErrorMessage != "" {
		t.row("error", r.ErrorMessage)
	}
	return t.flush()
}

func referenceName(ref *test.ShallowReference) string {
	if ref == nil {
		return "-"
	}
	if ref.Name != "" {
		return ref.Name
	}
	return orDash(ref.ID)
}
