package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/blimu-dev/devops-sdk/internal/cli"
	"github.com/blimu-dev/devops-sdk/internal/logging"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	g := &cli.Globals{}
	root := &cobra.Command{
		Use:           "devops",
		Short:         "Generate and use build and test clients for Azure DevOps and TFS",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			g.Out = cmd.OutOrStdout()
			g.Logger = logging.Init(g.Verbose)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&g.ConfigPath, "config", "c", "", "Path to devops-gen.yaml or devops-gen.toml (default: look in the working directory)")
	flags.StringVar(&g.Org, "org", os.Getenv("DEVOPS_ORG_URL"), "Organization or collection URL [$DEVOPS_ORG_URL]")
	flags.StringVar(&g.Token, "token", os.Getenv("DEVOPS_TOKEN"), "Personal access token [$DEVOPS_TOKEN]")
	flags.BoolVarP(&g.Verbose, "verbose", "v", false, "Log debug output, including requests")
	flags.BoolVar(&g.JSON, "json", false, "Print JSON instead of tables")

	root.AddCommand(newGenerateCmd(g))
	root.AddCommand(newValidateCmd(g))
	root.AddCommand(newOpenAPICmd(g))
	root.AddCommand(newLocationsCmd(g))
	root.AddCommand(newBuildsCmd(g))
	root.AddCommand(newRunsCmd(g))
	root.AddCommand(newWhoamiCmd(g))
	return root
}

func newGenerateCmd(g *cli.Globals) *cobra.Command {
	var p cli.GenerateParams
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the clients of the config's targets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunGenerate(cmd.Context(), g, p)
		},
	}
	cmd.Flags().StringVar(&p.Target, "target", "", "Generate only the named target")
	cmd.Flags().BoolVarP(&p.Watch, "watch", "w", false, "Regenerate when the config or an area description changes")
	return cmd
}

func newValidateCmd(g *cli.Globals) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [area.yaml...]",
		Short: "Validate area descriptions (default: the config's targets)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunValidate(g, args)
		},
	}
}

func newOpenAPICmd(g *cli.Globals) *cobra.Command {
	var p cli.OpenAPIParams
	cmd := &cobra.Command{
		Use:   "openapi <area.yaml>",
		Short: "Export an area description as an OpenAPI 3 document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p.Area = args[0]
			return cli.RunOpenAPI(g, p)
		},
	}
	cmd.Flags().StringVarP(&p.Output, "output", "o", "", "Write to a .yaml or .json file, or into a directory, instead of stdout")
	return cmd
}

func newLocationsCmd(g *cli.Globals) *cobra.Command {
	return &cobra.Command{
		Use:   "locations <area>",
		Short: "List the resource locations the server advertises for an area",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunLocations(cmd.Context(), g, args[0])
		},
	}
}

func projectFlag(cmd *cobra.Command, project *string) {
	cmd.PersistentFlags().StringVarP(project, "project", "p", os.Getenv("DEVOPS_PROJECT"), "Project ID or name [$DEVOPS_PROJECT]")
}

func requireProject(project string) error {
	if project == "" {
		return errors.New("--project is required")
	}
	return nil
}

func intArg(name, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, value, err)
	}
	return n, nil
}

func newBuildsCmd(g *cli.Globals) *cobra.Command {
	var project string
	cmd := &cobra.Command{
		Use:   "builds",
		Short: "Query builds",
	}
	projectFlag(cmd, &project)

	var list cli.BuildsListParams
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List builds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireProject(project); err != nil {
				return err
			}
			list.Project = project
			return cli.RunBuildsList(cmd.Context(), g, list)
		},
	}
	listCmd.Flags().IntSliceVar(&list.Definitions, "definition", nil, "Definition IDs")
	listCmd.Flags().StringVar(&list.Branch, "branch", "", "Source branch, e.g. refs/heads/main")
	listCmd.Flags().StringVar(&list.Status, "status", "", "Status, e.g. inProgress or completed")
	listCmd.Flags().StringVar(&list.Result, "result", "", "Result, e.g. succeeded or failed")
	listCmd.Flags().IntVar(&list.Top, "top", 25, "Maximum number of builds")

	getCmd := &cobra.Command{
		Use:   "get <buildId>",
		Short: "Show a build",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireProject(project); err != nil {
				return err
			}
			id, err := intArg("build id", args[0])
			if err != nil {
				return err
			}
			return cli.RunBuildGet(cmd.Context(), g, project, id)
		},
	}

	var logs cli.BuildLogsParams
	logsCmd := &cobra.Command{
		Use:   "logs <buildId>",
		Short: "List the logs of a build, or print one with --log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireProject(project); err != nil {
				return err
			}
			id, err := intArg("build id", args[0])
			if err != nil {
				return err
			}
			logs.Project = project
			logs.BuildID = id
			return cli.RunBuildLogs(cmd.Context(), g, logs)
		},
	}
	logsCmd.Flags().IntVar(&logs.LogID, "log", 0, "Print the content of this log")
	logsCmd.Flags().IntVar(&logs.StartLine, "start-line", 0, "First line to print")
	logsCmd.Flags().IntVar(&logs.EndLine, "end-line", 0, "Last line to print")

	cmd.AddCommand(listCmd, getCmd, logsCmd)
	return cmd
}

func newRunsCmd(g *cli.Globals) *cobra.Command {
	var project string
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Query test runs",
	}
	projectFlag(cmd, &project)

	var list cli.RunsListParams
	var automated, manual bool
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List test runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireProject(project); err != nil {
				return err
			}
			if automated && manual {
				return errors.New("--automated and --manual are exclusive")
			}
			if automated || manual {
				list.Automated = &automated
			}
			list.Project = project
			return cli.RunRunsList(cmd.Context(), g, list)
		},
	}
	listCmd.Flags().StringVar(&list.BuildURI, "build-uri", "", "Only runs of this build, e.g. vstfs:///Build/Build/42")
	listCmd.Flags().BoolVar(&automated, "automated", false, "Only automated runs")
	listCmd.Flags().BoolVar(&manual, "manual", false, "Only manual runs")
	listCmd.Flags().IntVar(&list.Top, "top", 25, "Maximum number of runs")

	getCmd := &cobra.Command{
		Use:   "get <runId>",
		Short: "Show a test run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireProject(project); err != nil {
				return err
			}
			id, err := intArg("run id", args[0])
			if err != nil {
				return err
			}
			return cli.RunRunGet(cmd.Context(), g, project, id)
		},
	}

	cmd.AddCommand(listCmd, getCmd)
	return cmd
}

func newWhoamiCmd(g *cli.Globals) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the identity the server sees for your credentials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunWhoami(cmd.Context(), g)
		},
	}
}
