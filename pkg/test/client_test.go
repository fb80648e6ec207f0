package test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"

	"github.com/blimu-dev/devops-sdk/internal/testhelper"
	"github.com/blimu-dev/devops-sdk/pkg/api"
	"github.com/blimu-dev/devops-sdk/pkg/rest"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("net/http.(*persistConn).readLoop"),
		goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
		goleak.IgnoreTopFunction("internal/poll.runtime_pollWait"),
	)
}

var locations = []testhelper.Location{
	{
		ID:              "4637d869-3a76-4468-8057-0bb02aa385cf",
		Area:            "Test",
		ResourceName:    "Results",
		RouteTemplate:   "{project}/_apis/test/Runs/{runId}/results/{testCaseResultId}",
		ResourceVersion: 6,
		MinVersion:      "1.0",
		MaxVersion:      "5.0",
		ReleasedVersion: "4.1",
	},
	{
		ID:              "a4a1ec1c-b03f-41ca-8857-704594ecf58e",
		Area:            "Test",
		ResourceName:    "Suites",
		RouteTemplate:   "{project}/_apis/test/Plans/{planId}/Suites/{suiteId}/{action}/{testCaseIds}",
		ResourceVersion: 3,
		MinVersion:      "1.0",
		MaxVersion:      "5.0",
		ReleasedVersion: "4.1",
	},
	{
		ID:              "51712106-7278-4208-8563-1c96f40cf5e4",
		Area:            "Test",
		ResourceName:    "Plans",
		RouteTemplate:   "{project}/_apis/test/plans/{planId}",
		ResourceVersion: 2,
		MinVersion:      "1.0",
		MaxVersion:      "4.1",
		ReleasedVersion: "4.1",
	},
	{
		ID:              "1500b4b4-6c69-4ca6-9b18-35e9e97fe2ac",
		Area:            "Test",
		ResourceName:    "Session",
		RouteTemplate:   "{project}/{team}/_apis/test/session",
		ResourceVersion: 1,
		MinVersion:      "4.1",
		MaxVersion:      "5.0",
		ReleasedVersion: "0.0",
	},
	{
		ID:              "000ef77b-fea2-498d-a10d-ad1a037f559f",
		Area:            "Test",
		ResourceName:    "ResultSummaryByBuild",
		RouteTemplate:   "{project}/_apis/test/ResultSummaryByBuild",
		ResourceVersion: 2,
		MinVersion:      "3.0",
		MaxVersion:      "5.0",
		ReleasedVersion: "4.1",
	},
	{
		ID:              "2bffebe9-2f0f-4639-9af8-56129e9fed2d",
		Area:            "Test",
		ResourceName:    "Attachments",
		RouteTemplate:   "{project}/_apis/test/Runs/{runId}/Results/{testCaseResultId}/attachments/{attachmentId}",
		ResourceVersion: 1,
		MinVersion:      "2.0",
		MaxVersion:      "5.0",
		ReleasedVersion: "4.1",
	},
	{
		ID:              "5b9d6320-abed-47a5-a151-cd6dc3798be6",
		Area:            "Test",
		ResourceName:    "CloneOperation",
		RouteTemplate:   "{project}/_apis/test/CloneOperation/{cloneOperationId}",
		ResourceVersion: 2,
		MinVersion:      "3.0",
		MaxVersion:      "5.0",
		ReleasedVersion: "4.1",
	},
	{
		ID:              "fbc82a85-0786-4442-88bb-eb0fda6b01b0",
		Area:            "Test",
		ResourceName:    "ResultTrendByBuild",
		RouteTemplate:   "{project}/_apis/test/ResultTrendByBuild",
		ResourceVersion: 1,
		MinVersion:      "3.0",
		MaxVersion:      "5.0",
		ReleasedVersion: "4.1",
	},
	{
		ID:              "7b0bdee3-a354-47f9-a42c-89018d7808d5",
		Area:            "Test",
		ResourceName:    "TestMethodWorkItems",
		RouteTemplate:   "{project}/_apis/test/TestMethods/WorkItems",
		ResourceVersion: 1,
		MinVersion:      "3.0",
		MaxVersion:      "5.0",
		ReleasedVersion: "4.1",
	},
	{
		ID:              "bf8b7f78-0c1f-49cb-89e9-d1a17bcaaad3",
		Area:            "Test",
		ResourceName:    "SuiteEntry",
		RouteTemplate:   "{project}/_apis/test/SuiteEntry/{suiteId}",
		ResourceVersion: 1,
		MinVersion:      "3.0",
		MaxVersion:      "4.1",
		ReleasedVersion: "4.1",
	},
}

func newTestClient(t *testing.T, isTFS bool) (*Client, *testhelper.Server) {
	t.Helper()
	srv := testhelper.NewServer(t)
	srv.OnPremises()
	srv.AddLocations(Area, locations...)

	conn, err := api.NewConnection(srv.URL, []rest.Handler{rest.BearerToken("tok")}, rest.Options{})
	if err != nil {
		t.Fatal(err)
	}
	c, err := NewClient(context.Background(), conn)
	if err != nil {
		t.Fatal(err)
	}
	c.IsTFS = isTFS
	return c, srv
}

func ptr[T any](v T) *T { return &v }

func TestGetTestResultByID(t *testing.T) {
	tests := []struct {
		name      string
		isTFS     bool
		wantQuery string
	}{
		{"hosted", false, "detailsToInclude=1"},
		{"tfs", true, "includeIterationDetails=true"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c, srv := newTestClient(t, test.isTFS)
			srv.HandleText(http.MethodGet, "/p/_apis/test/Runs/5/results/100000", "application/json", `{
				"id": 100000,
				"outcome": "Passed",
				"startedDate": "2018-03-04T05:06:07Z",
				"completedDate": "2018-03-04T05:06:09.25Z",
				"iterationDetails": [{"id": 1, "outcome": "Passed", "startedDate": "2018-03-04T05:06:07Z"}]
			}`)

			got, err := c.GetTestResultByID(context.Background(), GetTestResultByIDArgs{
				Project:          "p",
				RunID:            5,
				TestCaseResultID: 100000,
				DetailsToInclude: ptr(ResultDetailsIterations),
			})
			if err != nil {
				t.Fatal(err)
			}
			want := &TestCaseResult{
				ID:            100000,
				Outcome:       "Passed",
				StartedDate:   time.Date(2018, 3, 4, 5, 6, 7, 0, time.UTC),
				CompletedDate: time.Date(2018, 3, 4, 5, 6, 9, 25e7, time.UTC),
				IterationDetails: []TestIterationDetailsModel{
					{ID: 1, Outcome: "Passed", StartedDate: time.Date(2018, 3, 4, 5, 6, 7, 0, time.UTC)},
				},
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("GetTestResultByID() mismatch (-want +got):\n%s", diff)
			}
			if got := srv.LastRequest(t).RawQuery; got != test.wantQuery {
				t.Errorf("query = %q, want %q", got, test.wantQuery)
			}
		})
	}
}

func TestGetTestCaseByID(t *testing.T) {
	tests := []struct {
		name     string
		isTFS    bool
		wantPath string
	}{
		{"hosted", false, "/p/_apis/test/Plans/1/Suites/2/7"},
		{"tfs", true, "/p/_apis/test/Plans/1/Suites/2/testcases/7"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c, srv := newTestClient(t, test.isTFS)
			srv.HandleText(http.MethodGet, test.wantPath, "application/json",
				`{"testCase":{"id":"7","url":"https://example.com/wit/7"},"pointAssignments":[{"configuration":{"id":"1","name":"Windows"}}]}`)

			got, err := c.GetTestCaseByID(context.Background(), GetTestCaseByIDArgs{
				Project:     "p",
				PlanID:      1,
				SuiteID:     2,
				TestCaseIDs: 7,
			})
			if err != nil {
				t.Fatal(err)
			}
			want := &SuiteTestCase{
				TestCase:         &WorkItemReference{ID: "7", URL: "https://example.com/wit/7"},
				PointAssignments: []PointAssignment{{Configuration: &ShallowReference{ID: "1", Name: "Windows"}}},
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("GetTestCaseByID() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGetTestCasesSendsAction(t *testing.T) {
	c, srv := newTestClient(t, false)
	srv.HandleText(http.MethodGet, "/p/_apis/test/Plans/1/Suites/2/testcases", "application/json",
		`{"count":1,"value":[{"testCase":{"id":"7"}}]}`)

	got, err := c.GetTestCases(context.Background(), GetTestCasesArgs{Project: "p", PlanID: 1, SuiteID: 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].TestCase.ID != "7" {
		t.Errorf("GetTestCases() = %+v, want one test case 7", got)
	}
}

func TestGetPlanByIDVersioning(t *testing.T) {
	tests := []struct {
		name       string
		isTFS      bool
		wantAccept string
	}{
		{"negotiated", false, "application/json;api-version=4.1"},
		{"legacy", true, "application/json;api-version=5.0-preview.2"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c, srv := newTestClient(t, test.isTFS)
			srv.HandleText(http.MethodGet, "/p/_apis/test/plans/3", "application/json",
				`{"id":3,"name":"Sprint 1","startDate":"2018-03-01T00:00:00Z","endDate":"2018-03-14T00:00:00Z"}`)

			got, err := c.GetPlanByID(context.Background(), GetPlanByIDArgs{Project: "p", PlanID: 3})
			if err != nil {
				t.Fatal(err)
			}
			if got.Name != "Sprint 1" || !got.EndDate.Equal(time.Date(2018, 3, 14, 0, 0, 0, 0, time.UTC)) {
				t.Errorf("GetPlanByID() = %+v", got)
			}
			if got := srv.LastRequest(t).Header.Get("Accept"); got != test.wantAccept {
				t.Errorf("Accept = %q, want %q", got, test.wantAccept)
			}
		})
	}
}

func TestSessionsUseTeamContext(t *testing.T) {
	tests := []struct {
		name     string
		tc       *TeamContext
		wantPath string
	}{
		{"names", &TeamContext{Project: "Fabrikam", Team: "Web Team"}, "/Fabrikam/Web%20Team/_apis/test/session"},
		{"ids win", &TeamContext{Project: "Fabrikam", ProjectID: "p-1", Team: "Web", TeamID: "t-1"}, "/p-1/t-1/_apis/test/session"},
		{"project only", &TeamContext{Project: "Fabrikam"}, "/Fabrikam/_apis/test/session"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c, srv := newTestClient(t, false)
			srv.HandleText(http.MethodPost, test.wantPath, "application/json",
				`{"id":9,"title":"Checkout","source":"xtWeb","state":"inProgress","startDate":"2018-03-04T05:06:07Z"}`)

			got, err := c.CreateTestSession(context.Background(), CreateTestSessionArgs{
				TestSession: &TestSession{Title: "Checkout", Source: TestSessionSourceXTWeb},
				TeamContext: test.tc,
			})
			if err != nil {
				t.Fatal(err)
			}
			want := &TestSession{
				ID:        9,
				Title:     "Checkout",
				Source:    TestSessionSourceXTWeb,
				State:     TestSessionStateInProgress,
				StartDate: time.Date(2018, 3, 4, 5, 6, 7, 0, time.UTC),
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("CreateTestSession() mismatch (-want +got):\n%s", diff)
			}

			var sent map[string]any
			if err := json.Unmarshal(srv.LastRequest(t).Body, &sent); err != nil {
				t.Fatal(err)
			}
			if sent["source"] != float64(TestSessionSourceXTWeb) {
				t.Errorf("sent source = %v, want %d", sent["source"], TestSessionSourceXTWeb)
			}
		})
	}
}

func TestQueryTestResultsReportForBuild(t *testing.T) {
	c, srv := newTestClient(t, false)
	srv.HandleText(http.MethodGet, "/p/_apis/test/ResultSummaryByBuild", "application/json", `{
		"aggregatedResultsAnalysis": {
			"totalTests": 12,
			"resultsByOutcome": {
				"passed": {"outcome": "passed", "count": 10},
				"Failed": {"outcome": "failed", "count": 2}
			},
			"runSummaryByState": {
				"completed": {"state": "completed", "runsCount": 1}
			}
		},
		"testResultsContext": {"contextType": "build", "build": {"id": 42}},
		"teamProject": {"name": "p", "lastUpdateTime": "2018-01-01T00:00:00Z"}
	}`)

	got, err := c.QueryTestResultsReportForBuild(context.Background(), QueryTestResultsReportForBuildArgs{
		Project:               "p",
		BuildID:               42,
		IncludeFailureDetails: ptr(true),
		BuildToCompare:        &BuildReference{ID: 41, Number: "20180303.2"},
	})
	if err != nil {
		t.Fatal(err)
	}
	want := &TestResultSummary{
		AggregatedResultsAnalysis: &AggregatedResultsAnalysis{
			TotalTests: 12,
			ResultsByOutcome: map[TestOutcome]AggregatedResultsByOutcome{
				TestOutcomePassed: {Outcome: TestOutcomePassed, Count: 10},
				TestOutcomeFailed: {Outcome: TestOutcomeFailed, Count: 2},
			},
			RunSummaryByState: map[TestRunState]AggregatedRunsByState{
				TestRunStateCompleted: {State: TestRunStateCompleted, RunsCount: 1},
			},
		},
		TestResultsContext: &TestResultsContext{
			ContextType: TestResultsContextTypeBuild,
			Build:       &BuildReference{ID: 42},
		},
		TeamProject: &api.TeamProjectReference{
			Name:           "p",
			LastUpdateTime: time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("QueryTestResultsReportForBuild() mismatch (-want +got):\n%s", diff)
	}

	query, err := url.ParseQuery(srv.LastRequest(t).RawQuery)
	if err != nil {
		t.Fatal(err)
	}
	wantQuery := url.Values{
		"buildId":               {"42"},
		"includeFailureDetails": {"true"},
		"buildToCompare.id":     {"41"},
		"buildToCompare.number": {"20180303.2"},
	}
	if diff := cmp.Diff(wantQuery, query); diff != "" {
		t.Errorf("query mismatch (-want +got):\n%s", diff)
	}
}

func TestGetTestResultAttachmentContent(t *testing.T) {
	c, srv := newTestClient(t, false)
	srv.HandleText(http.MethodGet, "/p/_apis/test/Runs/5/Results/100000/attachments/3", "application/octet-stream", "\x00\x01binary")

	rc, err := c.GetTestResultAttachmentContent(context.Background(), GetTestResultAttachmentContentArgs{
		Project:          "p",
		RunID:            5,
		TestCaseResultID: 100000,
		AttachmentID:     3,
	})
	if err != nil {
		t.Fatal(err)
	}
	defer rc.Close()
	body, err := io.ReadAll(rc)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(body), "\x00\x01binary"; got != want {
		t.Errorf("body = %q, want %q", got, want)
	}
	if got, want := srv.LastRequest(t).Header.Get("Accept"), "application/octet-stream;api-version=5.0-preview.1"; got != want {
		t.Errorf("Accept = %q, want %q", got, want)
	}
}

func TestGetCloneInformation(t *testing.T) {
	c, srv := newTestClient(t, false)
	srv.HandleText(http.MethodGet, "/p/_apis/test/CloneOperation/12", "application/json", `{
		"opId": 12,
		"state": "succeeded",
		"resultObjectType": "testPlan",
		"creationDate": "2018-05-01T08:00:00Z",
		"completionDate": "2018-05-01T08:02:30Z",
		"sourcePlan": {"id": "3", "name": "Sprint 1"},
		"destinationPlan": {"id": "4", "name": "Sprint 2"},
		"cloneStatistics": {"totalTestCasesCount": 20, "clonedTestCasesCount": 20}
	}`)

	got, err := c.GetCloneInformation(context.Background(), GetCloneInformationArgs{
		Project:          "p",
		CloneOperationID: 12,
		IncludeDetails:   ptr(true),
	})
	if err != nil {
		t.Fatal(err)
	}
	want := &CloneOperationInformation{
		OpID:             12,
		State:            CloneOperationStateSucceeded,
		ResultObjectType: ResultObjectTypeTestPlan,
		CreationDate:     time.Date(2018, 5, 1, 8, 0, 0, 0, time.UTC),
		CompletionDate:   time.Date(2018, 5, 1, 8, 2, 30, 0, time.UTC),
		SourcePlan:       &ShallowReference{ID: "3", Name: "Sprint 1"},
		DestinationPlan:  &ShallowReference{ID: "4", Name: "Sprint 2"},
		CloneStatistics:  &CloneStatistics{TotalTestCasesCount: 20, ClonedTestCasesCount: 20},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("GetCloneInformation() mismatch (-want +got):\n%s", diff)
	}
	if got, want := srv.LastRequest(t).RawQuery, "%24includeDetails=true"; got != want {
		t.Errorf("query = %q, want %q", got, want)
	}
}

func TestQueryResultTrendForBuild(t *testing.T) {
	c, srv := newTestClient(t, false)
	srv.HandleText(http.MethodPost, "/p/_apis/test/ResultTrendByBuild", "application/json", `{
		"count": 1,
		"value": [{
			"totalTests": 4,
			"duration": "00:01:00",
			"resultsByOutcome": {"Passed": {"outcome": "Passed", "count": 3}, "failed": {"outcome": "failed", "count": 1}},
			"runSummaryByState": {"Completed": {"state": "completed", "runsCount": 2}},
			"testResultsContext": {"contextType": "build", "build": {"id": 42}}
		}]
	}`)

	got, err := c.QueryResultTrendForBuild(context.Background(), QueryResultTrendForBuildArgs{
		Project: "p",
		Filter:  &TestResultTrendFilter{DefinitionIDs: []int{7}, BuildCount: 5},
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []AggregatedDataForResultTrend{{
		TotalTests: 4,
		Duration:   "00:01:00",
		ResultsByOutcome: map[TestOutcome]AggregatedResultsByOutcome{
			TestOutcomePassed: {Outcome: TestOutcomePassed, Count: 3},
			TestOutcomeFailed: {Outcome: TestOutcomeFailed, Count: 1},
		},
		RunSummaryByState: map[TestRunState]AggregatedRunsByState{
			TestRunStateCompleted: {State: TestRunStateCompleted, RunsCount: 2},
		},
		TestResultsContext: &TestResultsContext{
			ContextType: TestResultsContextTypeBuild,
			Build:       &BuildReference{ID: 42},
		},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("QueryResultTrendForBuild() mismatch (-want +got):\n%s", diff)
	}

	var sent map[string]any
	if err := json.Unmarshal(srv.LastRequest(t).Body, &sent); err != nil {
		t.Fatal(err)
	}
	wantSent := map[string]any{"buildCount": float64(5), "definitionIds": []any{float64(7)}}
	if diff := cmp.Diff(wantSent, sent); diff != "" {
		t.Errorf("request body mismatch (-want +got):\n%s", diff)
	}
}

func TestGetTestSubResultAttachmentZip(t *testing.T) {
	c, srv := newTestClient(t, false)
	srv.HandleText(http.MethodGet, "/p/_apis/test/Runs/5/Results/100000/attachments/3", "application/zip", "PK\x03\x04")

	rc, err := c.GetTestSubResultAttachmentZip(context.Background(), GetTestSubResultAttachmentZipArgs{
		Project:          "p",
		RunID:            5,
		TestCaseResultID: 100000,
		AttachmentID:     3,
		TestSubResultID:  8,
	})
	if err != nil {
		t.Fatal(err)
	}
	defer rc.Close()
	body, err := io.ReadAll(rc)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(body), "PK\x03\x04"; got != want {
		t.Errorf("body = %q, want %q", got, want)
	}
	req := srv.LastRequest(t)
	if got, want := req.Header.Get("Accept"), "application/zip;api-version=5.0-preview.1"; got != want {
		t.Errorf("Accept = %q, want %q", got, want)
	}
	if got, want := req.RawQuery, "testSubResultId=8"; got != want {
		t.Errorf("query = %q, want %q", got, want)
	}
}

func TestDeleteTestMethodToWorkItemLink(t *testing.T) {
	c, srv := newTestClient(t, false)
	srv.HandleText(http.MethodDelete, "/p/_apis/test/TestMethods/WorkItems", "application/json", "true")

	got, err := c.DeleteTestMethodToWorkItemLink(context.Background(), DeleteTestMethodToWorkItemLinkArgs{
		Project:    "p",
		TestName:   "Fabrikam.Tests.Checkout",
		WorkItemID: 77,
	})
	if err != nil {
		t.Fatal(err)
	}
	if !got {
		t.Error("DeleteTestMethodToWorkItemLink() = false, want true")
	}
	query, err := url.ParseQuery(srv.LastRequest(t).RawQuery)
	if err != nil {
		t.Fatal(err)
	}
	wantQuery := url.Values{"testName": {"Fabrikam.Tests.Checkout"}, "workItemId": {"77"}}
	if diff := cmp.Diff(wantQuery, query); diff != "" {
		t.Errorf("query mismatch (-want +got):\n%s", diff)
	}
}

func TestGetSuiteEntries(t *testing.T) {
	tests := []struct {
		name       string
		isTFS      bool
		wantAccept string
	}{
		{"negotiated", false, "application/json;api-version=4.1"},
		{"legacy", true, "application/json;api-version=5.0-preview.1"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c, srv := newTestClient(t, test.isTFS)
			srv.HandleText(http.MethodGet, "/p/_apis/test/SuiteEntry/2", "application/json",
				`{"count":2,"value":[{"suiteId":2,"childSuiteId":6,"sequenceNumber":0},{"suiteId":2,"testCaseId":7,"sequenceNumber":1}]}`)

			got, err := c.GetSuiteEntries(context.Background(), GetSuiteEntriesArgs{Project: "p", SuiteID: 2})
			if err != nil {
				t.Fatal(err)
			}
			want := []SuiteEntry{
				{SuiteID: 2, ChildSuiteID: 6, SequenceNumber: 0},
				{SuiteID: 2, TestCaseID: 7, SequenceNumber: 1},
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("GetSuiteEntries() mismatch (-want +got):\n%s", diff)
			}
			if got := srv.LastRequest(t).Header.Get("Accept"); got != test.wantAccept {
				t.Errorf("Accept = %q, want %q", got, test.wantAccept)
			}
		})
	}
}

func TestTeamContextNil(t *testing.T) {
	var tc *TeamContext
	if got := tc.RouteProject(); got != "" {
		t.Errorf("RouteProject() = %q, want empty", got)
	}
	if got := tc.RouteTeam(); got != "" {
		t.Errorf("RouteTeam() = %q, want empty", got)
	}
}
