package openapi

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/blimu-dev/devops-sdk/pkg/config"
	"github.com/blimu-dev/devops-sdk/pkg/ir"
	"github.com/blimu-dev/devops-sdk/pkg/openapi"
)

func TestGenerate(t *testing.T) {
	in, err := ir.Load(filepath.Join("..", "..", "..", "areas", "test.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	if err := NewOpenAPIGenerator().Generate(config.Target{Name: "test-openapi", OutDir: dir}, in); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(dir, "test.openapi.yaml")
	doc, err := openapi.LoadDocument(path)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Info.Title != "Test API" {
		t.Errorf("Title = %q, want Test API", doc.Info.Title)
	}
	if len(openapi.Operations(doc)) == 0 {
		t.Error("document has no operations")
	}
}

func TestGenerateExcluded(t *testing.T) {
	in := ir.IR{Area: "Build", Package: "build"}
	dir := t.TempDir()
	target := config.Target{OutDir: dir, ExcludeFiles: []string{"build.openapi.yaml"}}
	if err := NewOpenAPIGenerator().Generate(target, in); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "build.openapi.yaml")); !os.IsNotExist(err) {
		t.Errorf("excluded document was written (stat err = %v)", err)
	}
}

func TestFileName(t *testing.T) {
	tests := []struct {
		area string
		want string
	}{
		{"Test", "test.openapi.yaml"},
		{"build", "build.openapi.yaml"},
		{"ExtensionManagement", "extension-management.openapi.yaml"},
	}
	for _, test := range tests {
		if got := FileName(ir.IR{Area: test.area}); got != test.want {
			t.Errorf("FileName(%q) = %q, want %q", test.area, got, test.want)
		}
	}
}
