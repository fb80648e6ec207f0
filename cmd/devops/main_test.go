package main

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCommands(t *testing.T) {
	var got []string
	for _, cmd := range newRootCmd().Commands() {
		got = append(got, cmd.Name())
		for _, sub := range cmd.Commands() {
			got = append(got, cmd.Name()+" "+sub.Name())
		}
	}
	want := []string{
		"builds", "builds get", "builds list", "builds logs",
		"generate", "locations", "openapi",
		"runs", "runs get", "runs list",
		"validate", "whoami",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateAreas(t *testing.T) {
	wd := mustWd(t)
	out, err := execute(t, "validate", wd+"/../../areas/build.yaml", wd+"/../../areas/test.yaml")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"area build, 64 operations", "area Test, 105 operations"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}

func TestOpenAPIToStdout(t *testing.T) {
	wd := mustWd(t)
	out, err := execute(t, "openapi", "--json", wd+"/../../areas/build.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `"title": "build API"`) {
		t.Errorf("unexpected output\n%.400s", out)
	}
}

func TestProjectRequired(t *testing.T) {
	t.Setenv("DEVOPS_PROJECT", "")
	_, err := execute(t, "builds", "list", "--org", "https://tfs.example.com/DefaultCollection")
	if err == nil || err.Error() != "--project is required" {
		t.Errorf("error = %v", err)
	}
}

func TestInvalidBuildID(t *testing.T) {
	_, err := execute(t, "builds", "get", "-p", "p", "latest")
	if err == nil || !strings.Contains(err.Error(), `invalid build id "latest"`) {
		t.Errorf("error = %v", err)
	}
}

func mustWd(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	return wd
}
