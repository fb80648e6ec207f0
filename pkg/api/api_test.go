package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"github.com/blimu-dev/devops-sdk/internal/testhelper"
	"github.com/blimu-dev/devops-sdk/pkg/rest"
	"github.com/blimu-dev/devops-sdk/pkg/serialization"
	"github.com/blimu-dev/devops-sdk/pkg/vsoclient"
)

const (
	buildAreaID      = "965220d5-5bb9-42cf-8d67-9b146df2a5a4"
	widgetLocationID = "a906531b-d2da-4f55-bda7-f3e676cc50d9"
)

var resourceAreasLocation = testhelper.Location{
	ID:              resourceAreasLocationID,
	Area:            "Location",
	ResourceName:    "ResourceAreas",
	RouteTemplate:   "_apis/{resource}/{areaId}",
	ResourceVersion: 1,
	MinVersion:      "3.2",
	MaxVersion:      "5.0",
	ReleasedVersion: "0.0",
}

var widgetLocation = testhelper.Location{
	ID:              widgetLocationID,
	Area:            "widgets",
	ResourceName:    "widgets",
	RouteTemplate:   "{project}/_apis/widgets/{widgetId}",
	ResourceVersion: 2,
	MinVersion:      "1.0",
	MaxVersion:      "4.1",
	ReleasedVersion: "4.0",
}

type widgetState int

const (
	widgetStateIdle widgetState = iota
	widgetStateBusy
)

type widget struct {
	ID       int         `json:"id"`
	State    widgetState `json:"state"`
	Modified time.Time   `json:"modified,omitzero"`
}

var widgetTypeInfo = &serialization.TypeInfo{Fields: map[string]*serialization.FieldInfo{
	"state":    serialization.Enum(&serialization.TypeInfo{EnumValues: map[string]int{"idle": 0, "busy": 1}}),
	"modified": serialization.Date(),
}}

func newTestBase(t *testing.T, srv *testhelper.Server) *Base {
	t.Helper()
	b, err := NewBase(srv.URL, "go-Widget-api", []rest.Handler{rest.BearerToken("tok")}, rest.Options{})
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestCreateAcceptHeader(t *testing.T) {
	b := &Base{}
	if got, want := b.CreateAcceptHeader("application/json", "4.1-preview.2"), "application/json;api-version=4.1-preview.2"; got != want {
		t.Errorf("CreateAcceptHeader() = %q, want %q", got, want)
	}
}

func TestDo(t *testing.T) {
	srv := testhelper.NewServer(t)
	srv.AddLocations("widgets", widgetLocation)
	srv.HandleText(http.MethodGet, "/proj/_apis/widgets/3", "application/json",
		`{"id":3,"state":"Busy","modified":"2018-03-04T05:06:07.123Z"}`)
	b := newTestBase(t, srv)

	got, err := Do[*widget](context.Background(), b, &Request{
		Area:        "widgets",
		LocationID:  widgetLocationID,
		APIVersion:  "4.1-preview.2",
		RouteValues: vsoclient.Values{"project": "proj", "widgetId": 3},
	}, widgetTypeInfo, false)
	if err != nil {
		t.Fatal(err)
	}
	want := &widget{ID: 3, State: widgetStateBusy, Modified: time.Date(2018, 3, 4, 5, 6, 7, 123e6, time.UTC)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Do() mismatch (-want +got):\n%s", diff)
	}

	req := srv.LastRequest(t)
	if got, want := req.Header.Get("Accept"), "application/json;api-version=4.1-preview.2"; got != want {
		t.Errorf("Accept = %q, want %q", got, want)
	}
	if got, want := req.Header.Get("User-Agent"), "go-Widget-api"; got != want {
		t.Errorf("User-Agent = %q, want %q", got, want)
	}
	if got, want := req.Header.Get("Authorization"), "Bearer tok"; got != want {
		t.Errorf("Authorization = %q, want %q", got, want)
	}
}

func TestDoCollection(t *testing.T) {
	srv := testhelper.NewServer(t)
	srv.AddLocations("widgets", widgetLocation)
	srv.HandleText(http.MethodGet, "/proj/_apis/widgets", "application/json",
		`{"count":2,"value":[{"id":1,"state":"idle"},{"id":2,"state":"busy"}]}`)
	b := newTestBase(t, srv)

	got, err := Do[[]widget](context.Background(), b, &Request{
		Area:        "widgets",
		LocationID:  widgetLocationID,
		APIVersion:  "4.1-preview.2",
		RouteValues: vsoclient.Values{"project": "proj"},
		QueryValues: vsoclient.Values{"$top": 2},
	}, widgetTypeInfo, true)
	if err != nil {
		t.Fatal(err)
	}
	want := []widget{{ID: 1, State: widgetStateIdle}, {ID: 2, State: widgetStateBusy}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Do() mismatch (-want +got):\n%s", diff)
	}
	if got, want := srv.LastRequest(t).RawQuery, "%24top=2"; got != want {
		t.Errorf("query = %q, want %q", got, want)
	}
}

func TestDoNotFound(t *testing.T) {
	srv := testhelper.NewServer(t)
	srv.AddLocations("widgets", widgetLocation)
	b := newTestBase(t, srv)

	got, err := Do[*widget](context.Background(), b, &Request{
		Area:        "widgets",
		LocationID:  widgetLocationID,
		APIVersion:  "4.1-preview.2",
		RouteValues: vsoclient.Values{"project": "proj", "widgetId": 9},
	}, widgetTypeInfo, false)
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Errorf("Do() = %+v, want nil", got)
	}
}

func TestDoError(t *testing.T) {
	srv := testhelper.NewServer(t)
	srv.AddLocations("widgets", widgetLocation)
	srv.HandleJSON(http.MethodPost, "/proj/_apis/widgets", http.StatusBadRequest, map[string]string{
		"message": "widget is invalid",
		"typeKey": "InvalidWidgetException",
	})
	b := newTestBase(t, srv)

	_, err := Do[*widget](context.Background(), b, &Request{
		Method:      http.MethodPost,
		Area:        "widgets",
		LocationID:  widgetLocationID,
		APIVersion:  "4.1-preview.2",
		RouteValues: vsoclient.Values{"project": "proj"},
		Body:        &widget{ID: 1},
	}, widgetTypeInfo, false)

	var restErr *rest.Error
	if !errors.As(err, &restErr) {
		t.Fatalf("Do() error = %v, want *rest.Error", err)
	}
	if restErr.StatusCode != http.StatusBadRequest || restErr.Message != "widget is invalid" || restErr.TypeKey != "InvalidWidgetException" {
		t.Errorf("Do() error = %+v", restErr)
	}
	if got, want := srv.LastRequest(t).Header.Get("Content-Type"), "application/json; charset=utf-8"; got != want {
		t.Errorf("Content-Type = %q, want %q", got, want)
	}
}

func TestLegacyRequest(t *testing.T) {
	srv := testhelper.NewServer(t)
	srv.AddLocations("widgets", widgetLocation)
	srv.HandleText(http.MethodGet, "/proj/_apis/widgets/1", "application/json", `{"id":1}`)
	b := newTestBase(t, srv)

	req := &Request{
		Area:        "widgets",
		LocationID:  widgetLocationID,
		APIVersion:  "5.0-preview.4",
		RouteValues: vsoclient.Values{"project": "proj", "widgetId": 1},
	}
	ctx := context.Background()

	if _, err := Do[*widget](ctx, b, req, widgetTypeInfo, false); err != nil {
		t.Fatal(err)
	}
	if got, want := srv.LastRequest(t).Header.Get("Accept"), "application/json;api-version=4.1-preview.2"; got != want {
		t.Errorf("negotiated Accept = %q, want %q", got, want)
	}

	req.Legacy = true
	if _, err := Do[*widget](ctx, b, req, widgetTypeInfo, false); err != nil {
		t.Fatal(err)
	}
	if got, want := srv.LastRequest(t).Header.Get("Accept"), "application/json;api-version=5.0-preview.4"; got != want {
		t.Errorf("legacy Accept = %q, want %q", got, want)
	}
}

func TestStreamAndExec(t *testing.T) {
	srv := testhelper.NewServer(t)
	srv.AddLocations("widgets", widgetLocation)
	srv.HandleText(http.MethodGet, "/proj/_apis/widgets/1", "text/plain", "line one\nline two\n")
	srv.Handle(http.MethodDelete, "/proj/_apis/widgets/1", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	b := newTestBase(t, srv)
	ctx := context.Background()
	routeValues := vsoclient.Values{"project": "proj", "widgetId": 1}

	rc, err := b.Stream(ctx, &Request{
		Area:        "widgets",
		LocationID:  widgetLocationID,
		APIVersion:  "4.0",
		RouteValues: routeValues,
		Accept:      "text/plain",
	})
	if err != nil {
		t.Fatal(err)
	}
	data, err := io.ReadAll(rc)
	rc.Close()
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(data), "line one\nline two\n"; got != want {
		t.Errorf("Stream() = %q, want %q", got, want)
	}
	if got, want := srv.LastRequest(t).Header.Get("Accept"), "text/plain;api-version=4.0"; got != want {
		t.Errorf("Accept = %q, want %q", got, want)
	}

	if err := b.Exec(ctx, &Request{
		Method:      http.MethodDelete,
		Area:        "widgets",
		LocationID:  widgetLocationID,
		APIVersion:  "4.0",
		RouteValues: routeValues,
	}); err != nil {
		t.Fatal(err)
	}
	if got := srv.LastRequest(t).Method; got != http.MethodDelete {
		t.Errorf("method = %s, want DELETE", got)
	}
}

func TestResourceAreaURL(t *testing.T) {
	tests := []struct {
		name    string
		areas   []ResourceArea
		want    func(serverURL string) string
		wantErr error
	}{
		{
			name:  "on premises",
			areas: []ResourceArea{},
			want:  func(serverURL string) string { return serverURL },
		},
		{
			// Served as {"count":0,"value":null}
			name:  "on premises null value",
			areas: nil,
			want:  func(serverURL string) string { return serverURL },
		},
		{
			name: "routed",
			areas: []ResourceArea{
				{ID: uuid.MustParse(buildAreaID), Name: "build", LocationURL: "https://build.example.com/org"},
			},
			want: func(string) string { return "https://build.example.com/org" },
		},
		{
			name: "missing",
			areas: []ResourceArea{
				{ID: uuid.New(), Name: "other", LocationURL: "https://other.example.com"},
			},
			wantErr: ErrAreaNotFound,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			srv := testhelper.NewServer(t)
			srv.AddLocations("Location", resourceAreasLocation)
			srv.HandleJSON(http.MethodGet, "/_apis/ResourceAreas", http.StatusOK, map[string]any{
				"count": len(test.areas),
				"value": test.areas,
			})
			conn, err := NewConnection(srv.URL, nil, rest.Options{})
			if err != nil {
				t.Fatal(err)
			}
			ctx := context.Background()

			// Twice to exercise the cache
			for range 2 {
				got, err := conn.ResourceAreaURL(ctx, buildAreaID)
				if test.wantErr != nil {
					if !errors.Is(err, test.wantErr) {
						t.Fatalf("ResourceAreaURL() error = %v, want %v", err, test.wantErr)
					}
					continue
				}
				if err != nil {
					t.Fatal(err)
				}
				if want := test.want(srv.URL); got != want {
					t.Errorf("ResourceAreaURL() = %q, want %q", got, want)
				}
			}
			if got := len(srv.Requests()); got != 1 {
				t.Errorf("resource area requests = %d, want 1", got)
			}
		})
	}
}

func TestConnectionData(t *testing.T) {
	srv := testhelper.NewServer(t)
	userID := uuid.New()
	srv.HandleText(http.MethodGet, "/_apis/connectionData", "application/json",
		`{"authenticatedUser":{"id":"`+userID.String()+`","providerDisplayName":"Jamie","isActive":true},"deploymentType":"hosted"}`)

	conn, err := NewConnection(srv.URL, []rest.Handler{rest.PersonalAccessToken("pat")}, rest.Options{})
	if err != nil {
		t.Fatal(err)
	}
	got, err := conn.ConnectionData(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	want := &ConnectionData{
		AuthenticatedUser: &Identity{ID: userID, ProviderDisplayName: "Jamie", IsActive: true},
		DeploymentType:    "hosted",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ConnectionData() mismatch (-want +got):\n%s", diff)
	}
}
