package devops

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/blimu-dev/devops-sdk/internal/testhelper"
	"github.com/blimu-dev/devops-sdk/pkg/test"
)

func TestNewTestClient(t *testing.T) {
	srv := testhelper.NewServer(t)
	srv.OnPremises()
	srv.AddLocations(test.Area, testhelper.Location{
		ID:              "cadb3810-d47d-4a3c-a234-fe5f3be50138",
		Area:            test.Area,
		ResourceName:    "Runs",
		RouteTemplate:   "{project}/_apis/test/Runs/{runId}",
		ResourceVersion: 2,
		MinVersion:      "1.0",
		MaxVersion:      "5.0",
		ReleasedVersion: "4.1",
	})
	srv.HandleJSON(http.MethodGet, "/p/_apis/test/Runs/3", http.StatusOK, map[string]any{"id": 3, "name": "Smoke"})

	ctx := context.Background()
	conn, err := Connect(srv.URL, "secret")
	if err != nil {
		t.Fatal(err)
	}
	client, err := NewTestClient(ctx, conn, true)
	if err != nil {
		t.Fatal(err)
	}
	if !client.IsTFS {
		t.Error("IsTFS not set")
	}

	run, err := client.GetTestRunByID(ctx, test.GetTestRunByIDArgs{Project: "p", RunID: 3})
	if err != nil {
		t.Fatal(err)
	}
	if run == nil || run.Name != "Smoke" {
		t.Errorf("run = %+v", run)
	}
	if auth := srv.LastRequest(t).Header.Get("Authorization"); !strings.HasPrefix(auth, "Basic ") {
		t.Errorf("Authorization = %q", auth)
	}
}

func TestValidateArea(t *testing.T) {
	if err := ValidateArea("areas/test.yaml"); err != nil {
		t.Errorf("ValidateArea() = %v", err)
	}
}
