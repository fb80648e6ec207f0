package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/blimu-dev/devops-sdk/pkg/build"
	"github.com/blimu-dev/devops-sdk/pkg/serialization"
)

// BuildsListParams filters `builds list`
type BuildsListParams struct {
	Project     string
	Definitions []int
	Branch      string
	// Status and Result are enum names, e.g. inProgress or failed
	Status string
	Result string
	Top    int
}

// RunBuildsList prints the builds of a project, newest first
func RunBuildsList(ctx context.Context, g *Globals, p BuildsListParams) error {
	args := build.GetBuildsArgs{
		Project:     p.Project,
		Definitions: p.Definitions,
		BranchName:  p.Branch,
	}
	if p.Status != "" {
		v, ok := serialization.EnumValue(build.BuildStatusEnum, p.Status)
		if !ok {
			return fmt.Errorf("unknown build status %q", p.Status)
		}
		status := build.BuildStatus(v)
		args.StatusFilter = &status
	}
	if p.Result != "" {
		v, ok := serialization.EnumValue(build.BuildResultEnum, p.Result)
		if !ok {
			return fmt.Errorf("unknown build result %q", p.Result)
		}
		result := build.BuildResult(v)
		args.ResultFilter = &result
	}
	if p.Top > 0 {
		args.Top = &p.Top
	}

	client, err := g.buildClient(ctx)
	if err != nil {
		return err
	}
	builds, err := client.GetBuilds(ctx, args)
	if err != nil {
		return fmt.Errorf("failed to list builds: %w", err)
	}
	if g.JSON {
		return writeJSON(g.out(), builds, build.BuildTypeInfo)
	}

	t := newTable(g.out(), "ID", "NUMBER", "DEFINITION", "STATUS", "RESULT", "BRANCH", "QUEUED")
	for _, b := range builds {
		t.row(strconv.Itoa(b.ID), b.BuildNumber, definitionName(b.Definition), b.Status.String(), resultName(b), orDash(b.SourceBranch), formatTime(b.QueueTime))
	}
	return t.flush()
}

// RunBuildGet prints one build
func RunBuildGet(ctx context.Context, g *Globals, project string, buildID int) error {
	client, err := g.buildClient(ctx)
	if err != nil {
		return err
	}
	b, err := client.GetBuild(ctx, build.GetBuildArgs{Project: project, BuildID: buildID})
	if err != nil {
		return fmt.Errorf("failed to get build %d: %w", buildID, err)
	}
	if b == nil {
		return fmt.Errorf("build %d not found in project %s", buildID, project)
	}
	if g.JSON {
		return writeJSON(g.out(), b, build.BuildTypeInfo)
	}

	t := newTable(g.out(), "FIELD", "VALUE")
	t.row("id", strconv.Itoa(b.ID))
	t.row("number", b.BuildNumber)
	t.row("definition", definitionName(b.Definition))
	t.row("status", b.Status.String())
	t.row("result", resultName(*b))
	t.row("reason", b.Reason.String())
	t.row("branch", orDash(b.SourceBranch))
	t.row("version", orDash(b.SourceVersion))
	t.row("queued", formatTime(b.QueueTime))
	t.row("started", formatTime(b.StartTime))
	t.row("finished", formatTime(b.FinishTime))
	t.row("duration", formatDuration(b.Duration()))
	if b.RequestedFor != nil {
		t.row("requestedFor", b.RequestedFor.DisplayName)
	}
	return t.flush()
}

// BuildLogsParams selects `builds logs` output. LogID zero lists the logs;
// otherwise the log's content is copied to the output.
type BuildLogsParams struct {
	Project   string
	BuildID   int
	LogID     int
	StartLine int
	EndLine   int
}

// RunBuildLogs lists the logs of a build or prints one of them
func RunBuildLogs(ctx context.Context, g *Globals, p BuildLogsParams) error {
	client, err := g.buildClient(ctx)
	if err != nil {
		return err
	}

	if p.LogID == 0 {
		logs, err := client.GetBuildLogs(ctx, build.GetBuildLogsArgs{Project: p.Project, BuildID: p.BuildID})
		if err != nil {
			return fmt.Errorf("failed to list logs of build %d: %w", p.BuildID, err)
		}
		if g.JSON {
			return writeJSON(g.out(), logs, build.BuildLogTypeInfo)
		}
		t := newTable(g.out(), "ID", "TYPE", "LINES", "CREATED")
		for _, l := range logs {
			t.row(strconv.Itoa(l.ID), orDash(l.Type), strconv.FormatInt(l.LineCount, 10), formatTime(l.CreatedOn))
		}
		return t.flush()
	}

	args := build.GetBuildLogArgs{Project: p.Project, BuildID: p.BuildID, LogID: p.LogID}
	if p.StartLine > 0 {
		args.StartLine = &p.StartLine
	}
	if p.EndLine > 0 {
		args.EndLine = &p.EndLine
	}
	rc, err := client.GetBuildLog(ctx, args)
	if err != nil {
		return fmt.Errorf("failed to get log %d of build %d: %w", p.LogID, p.BuildID, err)
	}
	defer rc.Close()
	_, err = io.Copy(g.out(), rc)
	return err
}

func definitionName(d *build.DefinitionReference) string {
	if d == nil {
		return "-"
	}
	return orDash(d.Name)
}

func resultName(b build.Build) string {
	if b.Status != build.BuildStatusCompleted {
		return "-"
	}
	return b.Result.String()
}
