package test

import (
	"time"

	"github.com/blimu-dev/devops-sdk/pkg/api"
)

// ShallowReference identifies a resource by id, name and url
type ShallowReference struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
	URL  string `json:"url,omitempty"`
}

// WorkItemReference is a work item such as a test case or a bug
type WorkItemReference struct {
	ID     string `json:"id,omitempty"`
	Name   string `json:"name,omitempty"`
	Type   string `json:"type,omitempty"`
	URL    string `json:"url,omitempty"`
	WebURL string `json:"webUrl,omitempty"`
}

type NameValuePair struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// BuildReference identifies the build a run or result came from
type BuildReference struct {
	ID           int    `json:"id,omitempty"`
	Number       string `json:"number,omitempty"`
	URI          string `json:"uri,omitempty"`
	DefinitionID int    `json:"definitionId,omitempty"`
	BranchName   string `json:"branchName,omitempty"`
	BuildSystem  string `json:"buildSystem,omitempty"`
	RepositoryID string `json:"repositoryId,omitempty"`
}

type BuildConfiguration struct {
	ID                int               `json:"id,omitempty"`
	Number            string            `json:"number,omitempty"`
	URI               string            `json:"uri,omitempty"`
	BuildDefinitionID int               `json:"buildDefinitionId,omitempty"`
	BranchName        string            `json:"branchName,omitempty"`
	BuildSystem       string            `json:"buildSystem,omitempty"`
	CreationDate      time.Time         `json:"creationDate,omitzero"`
	Flavor            string            `json:"flavor,omitempty"`
	Platform          string            `json:"platform,omitempty"`
	Project           *ShallowReference `json:"project,omitempty"`
	RepositoryGUID    string            `json:"repositoryGuid,omitempty"`
	RepositoryType    string            `json:"repositoryType,omitempty"`
	SourceVersion     string            `json:"sourceVersion,omitempty"`
	TargetBranchName  string            `json:"targetBranchName,omitempty"`
}

// ReleaseReference identifies the release a run or result came from
type ReleaseReference struct {
	ID                        int       `json:"id,omitempty"`
	Name                      string    `json:"name,omitempty"`
	Attempt                   int       `json:"attempt,omitempty"`
	CreationDate              time.Time `json:"creationDate,omitzero"`
	DefinitionID              int       `json:"definitionId,omitempty"`
	EnvironmentCreationDate   time.Time `json:"environmentCreationDate,omitzero"`
	EnvironmentDefinitionID   int       `json:"environmentDefinitionId,omitempty"`
	EnvironmentDefinitionName string    `json:"environmentDefinitionName,omitempty"`
	EnvironmentID             int       `json:"environmentId,omitempty"`
	EnvironmentName           string    `json:"environmentName,omitempty"`
}

// TestAttachment describes a file attached to a run or result
type TestAttachment struct {
	ID             int            `json:"id,omitempty"`
	FileName       string         `json:"fileName,omitempty"`
	AttachmentType AttachmentType `json:"attachmentType"`
	Comment        string         `json:"comment,omitempty"`
	CreatedDate    time.Time      `json:"createdDate,omitzero"`
	Size           int64          `json:"size,omitempty"`
	URL            string         `json:"url,omitempty"`
}

type TestAttachmentReference struct {
	ID  int    `json:"id,omitempty"`
	URL string `json:"url,omitempty"`
}

// TestAttachmentRequestModel uploads an attachment. Stream holds the base64
// encoded content.
type TestAttachmentRequestModel struct {
	AttachmentType string `json:"attachmentType,omitempty"`
	Comment        string `json:"comment,omitempty"`
	FileName       string `json:"fileName"`
	Stream         string `json:"stream"`
}

type CoverageStatistics struct {
	BlocksCovered         int `json:"blocksCovered"`
	BlocksNotCovered      int `json:"blocksNotCovered"`
	LinesCovered          int `json:"linesCovered"`
	LinesNotCovered       int `json:"linesNotCovered"`
	LinesPartiallyCovered int `json:"linesPartiallyCovered"`
}

type FunctionCoverage struct {
	Class      string              `json:"class,omitempty"`
	Name       string              `json:"name,omitempty"`
	Namespace  string              `json:"namespace,omitempty"`
	SourceFile string              `json:"sourceFile,omitempty"`
	Statistics *CoverageStatistics `json:"statistics,omitempty"`
}

type ModuleCoverage struct {
	Name         string              `json:"name,omitempty"`
	BlockCount   int                 `json:"blockCount,omitempty"`
	BlockData    []int               `json:"blockData,omitempty"`
	Functions    []FunctionCoverage  `json:"functions,omitempty"`
	Signature    string              `json:"signature,omitempty"`
	SignatureAge int                 `json:"signatureAge,omitempty"`
	Statistics   *CoverageStatistics `json:"statistics,omitempty"`
}

// BuildCoverage is the module coverage recorded for one build configuration
type BuildCoverage struct {
	CodeCoverageFileURL string              `json:"codeCoverageFileUrl,omitempty"`
	Configuration       *BuildConfiguration `json:"configuration,omitempty"`
	LastError           string              `json:"lastError,omitempty"`
	Modules             []ModuleCoverage    `json:"modules,omitempty"`
	State               string              `json:"state,omitempty"`
}

// TestRunCoverage is the module coverage recorded for a test run
type TestRunCoverage struct {
	LastError string            `json:"lastError,omitempty"`
	Modules   []ModuleCoverage  `json:"modules,omitempty"`
	State     string            `json:"state,omitempty"`
	TestRun   *ShallowReference `json:"testRun,omitempty"`
}

type CodeCoverageStatistics struct {
	Label            string  `json:"label,omitempty"`
	Position         int     `json:"position,omitempty"`
	Covered          int     `json:"covered"`
	Total            int     `json:"total"`
	Delta            float64 `json:"delta,omitempty"`
	IsDeltaAvailable bool    `json:"isDeltaAvailable,omitempty"`
}

// CodeCoverageData is the coverage of one flavor and platform
type CodeCoverageData struct {
	BuildFlavor   string                   `json:"buildFlavor,omitempty"`
	BuildPlatform string                   `json:"buildPlatform,omitempty"`
	CoverageStats []CodeCoverageStatistics `json:"coverageStats,omitempty"`
}

// CodeCoverageSummary aggregates the coverage of a build, optionally against a delta build
type CodeCoverageSummary struct {
	Build        *ShallowReference     `json:"build,omitempty"`
	CoverageData []CodeCoverageData    `json:"coverageData,omitempty"`
	DeltaBuild   *ShallowReference     `json:"deltaBuild,omitempty"`
	Status       CoverageSummaryStatus `json:"status,omitempty"`
}

// TestConfiguration is a named set of environment values tests run against
type TestConfiguration struct {
	ID              int                    `json:"id,omitempty"`
	Name            string                 `json:"name,omitempty"`
	Description     string                 `json:"description,omitempty"`
	Area            *ShallowReference      `json:"area,omitempty"`
	IsDefault       bool                   `json:"isDefault,omitempty"`
	LastUpdatedBy   *api.IdentityRef       `json:"lastUpdatedBy,omitempty"`
	LastUpdatedDate time.Time              `json:"lastUpdatedDate,omitzero"`
	Project         *ShallowReference      `json:"project,omitempty"`
	Revision        int                    `json:"revision,omitempty"`
	State           TestConfigurationState `json:"state,omitempty"`
	URL             string                 `json:"url,omitempty"`
	Values          []NameValuePair        `json:"values,omitempty"`
}

type TestActionResultModel struct {
	ActionPath     string    `json:"actionPath,omitempty"`
	IterationID    int       `json:"iterationId,omitempty"`
	StepIdentifier string    `json:"stepIdentifier,omitempty"`
	Outcome        string    `json:"outcome,omitempty"`
	Comment        string    `json:"comment,omitempty"`
	ErrorMessage   string    `json:"errorMessage,omitempty"`
	DurationInMs   float64   `json:"durationInMs,omitempty"`
	StartedDate    time.Time `json:"startedDate,omitzero"`
	CompletedDate  time.Time `json:"completedDate,omitzero"`
	URL            string    `json:"url,omitempty"`
}

type TestResultParameterModel struct {
	ActionPath     string `json:"actionPath,omitempty"`
	IterationID    int    `json:"iterationId,omitempty"`
	ParameterName  string `json:"parameterName,omitempty"`
	StepIdentifier string `json:"stepIdentifier,omitempty"`
	Value          string `json:"value,omitempty"`
	URL            string `json:"url,omitempty"`
}

// TestIterationDetailsModel is one iteration of a data driven test result
type TestIterationDetailsModel struct {
	ID            int                        `json:"id,omitempty"`
	Outcome       string                     `json:"outcome,omitempty"`
	Comment       string                     `json:"comment,omitempty"`
	ErrorMessage  string                     `json:"errorMessage,omitempty"`
	DurationInMs  float64                    `json:"durationInMs,omitempty"`
	StartedDate   time.Time                  `json:"startedDate,omitzero"`
	CompletedDate time.Time                  `json:"completedDate,omitzero"`
	ActionResults []TestActionResultModel    `json:"actionResults,omitempty"`
	Parameters    []TestResultParameterModel `json:"parameters,omitempty"`
	URL           string                     `json:"url,omitempty"`
}

// TestMessageLogDetails is one entry of a run's message log
type TestMessageLogDetails struct {
	EntryID     int       `json:"entryId,omitempty"`
	Message     string    `json:"message,omitempty"`
	DateCreated time.Time `json:"dateCreated,omitzero"`
}

type TestOutcomeSettings struct {
	SyncOutcomeAcrossSuites bool `json:"syncOutcomeAcrossSuites"`
}

// TestPlan groups suites of test cases for an iteration
type TestPlan struct {
	ID                  int                  `json:"id,omitempty"`
	Name                string               `json:"name,omitempty"`
	Description         string               `json:"description,omitempty"`
	Area                *ShallowReference    `json:"area,omitempty"`
	Build               *ShallowReference    `json:"build,omitempty"`
	BuildDefinition     *ShallowReference    `json:"buildDefinition,omitempty"`
	ClientURL           string               `json:"clientUrl,omitempty"`
	StartDate           time.Time            `json:"startDate,omitzero"`
	EndDate             time.Time            `json:"endDate,omitzero"`
	Iteration           string               `json:"iteration,omitempty"`
	Owner               *api.IdentityRef     `json:"owner,omitempty"`
	PreviousBuild       *ShallowReference    `json:"previousBuild,omitempty"`
	Project             *ShallowReference    `json:"project,omitempty"`
	Revision            int                  `json:"revision,omitempty"`
	RootSuite           *ShallowReference    `json:"rootSuite,omitempty"`
	State               string               `json:"state,omitempty"`
	TestOutcomeSettings *TestOutcomeSettings `json:"testOutcomeSettings,omitempty"`
	UpdatedBy           *api.IdentityRef     `json:"updatedBy,omitempty"`
	UpdatedDate         time.Time            `json:"updatedDate,omitzero"`
	URL                 string               `json:"url,omitempty"`
}

// PlanUpdateModel creates or updates a plan. Dates are sent as strings.
type PlanUpdateModel struct {
	Name                string               `json:"name,omitempty"`
	Description         string               `json:"description,omitempty"`
	Area                *ShallowReference    `json:"area,omitempty"`
	Build               *ShallowReference    `json:"build,omitempty"`
	BuildDefinition     *ShallowReference    `json:"buildDefinition,omitempty"`
	ConfigurationIDs    []int                `json:"configurationIds,omitempty"`
	StartDate           string               `json:"startDate,omitempty"`
	EndDate             string               `json:"endDate,omitempty"`
	Iteration           string               `json:"iteration,omitempty"`
	Owner               *api.IdentityRef     `json:"owner,omitempty"`
	State               string               `json:"state,omitempty"`
	Status              string               `json:"status,omitempty"`
	TestOutcomeSettings *TestOutcomeSettings `json:"testOutcomeSettings,omitempty"`
}

type LastResultDetails struct {
	DateCompleted time.Time        `json:"dateCompleted,omitzero"`
	Duration      int64            `json:"duration,omitempty"`
	RunBy         *api.IdentityRef `json:"runBy,omitempty"`
}

// TestPoint is a test case paired with a configuration in a suite
type TestPoint struct {
	ID                 int                `json:"id,omitempty"`
	AssignedTo         *api.IdentityRef   `json:"assignedTo,omitempty"`
	Automated          bool               `json:"automated,omitempty"`
	Comment            string             `json:"comment,omitempty"`
	Configuration      *ShallowReference  `json:"configuration,omitempty"`
	FailureType        string             `json:"failureType,omitempty"`
	LastResult         *ShallowReference  `json:"lastResult,omitempty"`
	LastResultDetails  *LastResultDetails `json:"lastResultDetails,omitempty"`
	LastResultState    string             `json:"lastResultState,omitempty"`
	LastRunBuildNumber string             `json:"lastRunBuildNumber,omitempty"`
	LastTestRun        *ShallowReference  `json:"lastTestRun,omitempty"`
	LastUpdatedBy      *api.IdentityRef   `json:"lastUpdatedBy,omitempty"`
	LastUpdatedDate    time.Time          `json:"lastUpdatedDate,omitzero"`
	Outcome            string             `json:"outcome,omitempty"`
	Revision           int                `json:"revision,omitempty"`
	State              string             `json:"state,omitempty"`
	Suite              *ShallowReference  `json:"suite,omitempty"`
	TestCase           *WorkItemReference `json:"testCase,omitempty"`
	TestPlan           *ShallowReference  `json:"testPlan,omitempty"`
	URL                string             `json:"url,omitempty"`
	WorkItemProperties []any              `json:"workItemProperties,omitempty"`
}

// PointUpdateModel changes the outcome, tester or active state of points
type PointUpdateModel struct {
	Outcome       string           `json:"outcome,omitempty"`
	ResetToActive bool             `json:"resetToActive,omitempty"`
	Tester        *api.IdentityRef `json:"tester,omitempty"`
}

type PointsFilter struct {
	ConfigurationNames []string          `json:"configurationNames,omitempty"`
	TestcaseIDs        []int             `json:"testcaseIds,omitempty"`
	Testers            []api.IdentityRef `json:"testers,omitempty"`
}

// TestPointsQuery finds points across plans. The server fills Points.
type TestPointsQuery struct {
	OrderBy      string        `json:"orderBy,omitempty"`
	PointsFilter *PointsFilter `json:"pointsFilter,omitempty"`
	Points       []TestPoint   `json:"points,omitempty"`
	WitFields    []string      `json:"witFields,omitempty"`
}

type FailingSince struct {
	Date    time.Time         `json:"date,omitzero"`
	Build   *BuildReference   `json:"build,omitempty"`
	Release *ReleaseReference `json:"release,omitempty"`
}

type CustomTestField struct {
	FieldName string `json:"fieldName"`
	Value     any    `json:"value"`
}

// TestCaseResult is the result of one test case in a run
type TestCaseResult struct {
	ID                   int                         `json:"id,omitempty"`
	AfnStripID           int                         `json:"afnStripId,omitempty"`
	Area                 *ShallowReference           `json:"area,omitempty"`
	AssociatedBugs       []ShallowReference          `json:"associatedBugs,omitempty"`
	AutomatedTestID      string                      `json:"automatedTestId,omitempty"`
	AutomatedTestName    string                      `json:"automatedTestName,omitempty"`
	AutomatedTestStorage string                      `json:"automatedTestStorage,omitempty"`
	AutomatedTestType    string                      `json:"automatedTestType,omitempty"`
	Build                *ShallowReference           `json:"build,omitempty"`
	BuildReference       *BuildReference             `json:"buildReference,omitempty"`
	Comment              string                      `json:"comment,omitempty"`
	CompletedDate        time.Time                   `json:"completedDate,omitzero"`
	ComputerName         string                      `json:"computerName,omitempty"`
	Configuration        *ShallowReference           `json:"configuration,omitempty"`
	CreatedDate          time.Time                   `json:"createdDate,omitzero"`
	CustomFields         []CustomTestField           `json:"customFields,omitempty"`
	DurationInMs         float64                     `json:"durationInMs,omitempty"`
	ErrorMessage         string                      `json:"errorMessage,omitempty"`
	FailingSince         *FailingSince               `json:"failingSince,omitempty"`
	FailureType          string                      `json:"failureType,omitempty"`
	IterationDetails     []TestIterationDetailsModel `json:"iterationDetails,omitempty"`
	LastUpdatedBy        *api.IdentityRef            `json:"lastUpdatedBy,omitempty"`
	LastUpdatedDate      time.Time                   `json:"lastUpdatedDate,omitzero"`
	Outcome              string                      `json:"outcome,omitempty"`
	Owner                *api.IdentityRef            `json:"owner,omitempty"`
	Priority             int                         `json:"priority,omitempty"`
	Project              *ShallowReference           `json:"project,omitempty"`
	Release              *ShallowReference           `json:"release,omitempty"`
	ReleaseReference     *ReleaseReference           `json:"releaseReference,omitempty"`
	ResetCount           int                         `json:"resetCount,omitempty"`
	ResolutionState      string                      `json:"resolutionState,omitempty"`
	Revision             int                         `json:"revision,omitempty"`
	RunBy                *api.IdentityRef            `json:"runBy,omitempty"`
	StackTrace           string                      `json:"stackTrace,omitempty"`
	StartedDate          time.Time                   `json:"startedDate,omitzero"`
	State                string                      `json:"state,omitempty"`
	TestCase             *ShallowReference           `json:"testCase,omitempty"`
	TestCaseReferenceID  int                         `json:"testCaseReferenceId,omitempty"`
	TestCaseTitle        string                      `json:"testCaseTitle,omitempty"`
	TestPlan             *ShallowReference           `json:"testPlan,omitempty"`
	TestPoint            *ShallowReference           `json:"testPoint,omitempty"`
	TestRun              *ShallowReference           `json:"testRun,omitempty"`
	TestSuite            *ShallowReference           `json:"testSuite,omitempty"`
	URL                  string                      `json:"url,omitempty"`
}

// ShallowTestCaseResult is the compact result listed per build
type ShallowTestCaseResult struct {
	ID                   int     `json:"id,omitempty"`
	RunID                int     `json:"runId,omitempty"`
	RefID                int     `json:"refId,omitempty"`
	AutomatedTestStorage string  `json:"automatedTestStorage,omitempty"`
	DurationInMs         float64 `json:"durationInMs,omitempty"`
	IsReRun              bool    `json:"isReRun,omitempty"`
	Outcome              string  `json:"outcome,omitempty"`
	Owner                string  `json:"owner,omitempty"`
	Priority             int     `json:"priority,omitempty"`
	TestCaseTitle        string  `json:"testCaseTitle,omitempty"`
}

type TestResultsContext struct {
	ContextType TestResultsContextType `json:"contextType,omitempty"`
	Build       *BuildReference        `json:"build,omitempty"`
	Release     *ReleaseReference      `json:"release,omitempty"`
}

type ResultsFilter struct {
	AutomatedTestName    string              `json:"automatedTestName,omitempty"`
	Branch               string              `json:"branch,omitempty"`
	GroupBy              string              `json:"groupBy,omitempty"`
	MaxCompleteDate      time.Time           `json:"maxCompleteDate,omitzero"`
	ResultsCount         int                 `json:"resultsCount,omitempty"`
	TestCaseReferenceIDs []int               `json:"testCaseReferenceIds,omitempty"`
	TestResultsContext   *TestResultsContext `json:"testResultsContext,omitempty"`
	TrendDays            int                 `json:"trendDays,omitempty"`
}

// TestResultsQuery fetches results by id or filter. The server fills Results.
type TestResultsQuery struct {
	Fields        []string         `json:"fields,omitempty"`
	Results       []TestCaseResult `json:"results,omitempty"`
	ResultsFilter *ResultsFilter   `json:"resultsFilter,omitempty"`
}

// AggregatedResultsByOutcome counts results of one outcome. Duration is a
// .NET TimeSpan string such as "00:01:30.5".
type AggregatedResultsByOutcome struct {
	Count            int         `json:"count"`
	Duration         string      `json:"duration,omitempty"`
	GroupByField     string      `json:"groupByField,omitempty"`
	GroupByValue     any         `json:"groupByValue,omitempty"`
	Outcome          TestOutcome `json:"outcome"`
	RerunResultCount int         `json:"rerunResultCount,omitempty"`
}

type AggregatedRunsByState struct {
	ResultsByOutcome map[TestOutcome]AggregatedResultsByOutcome `json:"resultsByOutcome,omitempty"`
	RunsCount        int                                        `json:"runsCount"`
	State            TestRunState                               `json:"state"`
}

type AggregatedResultsDifference struct {
	IncreaseInDuration    string `json:"increaseInDuration,omitempty"`
	IncreaseInFailures    int    `json:"increaseInFailures"`
	IncreaseInOtherTests  int    `json:"increaseInOtherTests"`
	IncreaseInPassedTests int    `json:"increaseInPassedTests"`
	IncreaseInTotalTests  int    `json:"increaseInTotalTests"`
}

type AggregatedResultsAnalysis struct {
	Duration                    string                                     `json:"duration,omitempty"`
	NotReportedResultsByOutcome map[TestOutcome]AggregatedResultsByOutcome `json:"notReportedResultsByOutcome,omitempty"`
	PreviousContext             *TestResultsContext                        `json:"previousContext,omitempty"`
	ResultsByOutcome            map[TestOutcome]AggregatedResultsByOutcome `json:"resultsByOutcome,omitempty"`
	ResultsDifference           *AggregatedResultsDifference               `json:"resultsDifference,omitempty"`
	RunSummaryByState           map[TestRunState]AggregatedRunsByState     `json:"runSummaryByState,omitempty"`
	TotalTests                  int                                        `json:"totalTests"`
}

type TestCaseResultIdentifier struct {
	TestResultID int `json:"testResultId"`
	TestRunID    int `json:"testRunId"`
}

type TestFailureDetails struct {
	Count       int                        `json:"count"`
	TestResults []TestCaseResultIdentifier `json:"testResults,omitempty"`
}

type TestFailuresAnalysis struct {
	ExistingFailures *TestFailureDetails `json:"existingFailures,omitempty"`
	FixedTests       *TestFailureDetails `json:"fixedTests,omitempty"`
	NewFailures      *TestFailureDetails `json:"newFailures,omitempty"`
	PreviousContext  *TestResultsContext `json:"previousContext,omitempty"`
}

// TestResultSummary is the build or release level report of test results
type TestResultSummary struct {
	AggregatedResultsAnalysis *AggregatedResultsAnalysis `json:"aggregatedResultsAnalysis,omitempty"`
	TeamProject               *api.TeamProjectReference  `json:"teamProject,omitempty"`
	TestFailures              *TestFailuresAnalysis      `json:"testFailures,omitempty"`
	TestResultsContext        *TestResultsContext        `json:"testResultsContext,omitempty"`
}

type TestResultsDetailsForGroup struct {
	GroupByValue          any                                        `json:"groupByValue,omitempty"`
	Results               []TestCaseResult                           `json:"results,omitempty"`
	ResultsCountByOutcome map[TestOutcome]AggregatedResultsByOutcome `json:"resultsCountByOutcome,omitempty"`
}

// TestResultsDetails groups the results of a build by a field
type TestResultsDetails struct {
	GroupByField    string                       `json:"groupByField,omitempty"`
	ResultsForGroup []TestResultsDetailsForGroup `json:"resultsForGroup,omitempty"`
}

type RunStatistic struct {
	Count           int    `json:"count"`
	Outcome         string `json:"outcome,omitempty"`
	ResolutionState any    `json:"resolutionState,omitempty"`
	State           string `json:"state,omitempty"`
}

// TestRunStatistic counts the results of a run by outcome and state
type TestRunStatistic struct {
	Run           *ShallowReference `json:"run,omitempty"`
	RunStatistics []RunStatistic    `json:"runStatistics,omitempty"`
}

// TestRun is one execution of a set of tests
type TestRun struct {
	ID                    int                 `json:"id,omitempty"`
	Name                  string              `json:"name,omitempty"`
	Build                 *ShallowReference   `json:"build,omitempty"`
	BuildConfiguration    *BuildConfiguration `json:"buildConfiguration,omitempty"`
	Comment               string              `json:"comment,omitempty"`
	CompletedDate         time.Time           `json:"completedDate,omitzero"`
	CreatedDate           time.Time           `json:"createdDate,omitzero"`
	DropLocation          string              `json:"dropLocation,omitempty"`
	DueDate               time.Time           `json:"dueDate,omitzero"`
	ErrorMessage          string              `json:"errorMessage,omitempty"`
	IncompleteTests       int                 `json:"incompleteTests,omitempty"`
	IsAutomated           bool                `json:"isAutomated,omitempty"`
	Iteration             string              `json:"iteration,omitempty"`
	LastUpdatedBy         *api.IdentityRef    `json:"lastUpdatedBy,omitempty"`
	LastUpdatedDate       time.Time           `json:"lastUpdatedDate,omitzero"`
	NotApplicableTests    int                 `json:"notApplicableTests,omitempty"`
	Owner                 *api.IdentityRef    `json:"owner,omitempty"`
	PassedTests           int                 `json:"passedTests,omitempty"`
	Phase                 string              `json:"phase,omitempty"`
	Plan                  *ShallowReference   `json:"plan,omitempty"`
	PostProcessState      string              `json:"postProcessState,omitempty"`
	Project               *ShallowReference   `json:"project,omitempty"`
	Release               *ReleaseReference   `json:"release,omitempty"`
	ReleaseEnvironmentURI string              `json:"releaseEnvironmentUri,omitempty"`
	ReleaseURI            string              `json:"releaseUri,omitempty"`
	Revision              int                 `json:"revision,omitempty"`
	RunStatistics         []RunStatistic      `json:"runStatistics,omitempty"`
	StartedDate           time.Time           `json:"startedDate,omitzero"`
	State                 string              `json:"state,omitempty"`
	Substate              TestRunSubstate     `json:"substate,omitempty"`
	TestSettings          *ShallowReference   `json:"testSettings,omitempty"`
	TotalTests            int                 `json:"totalTests,omitempty"`
	UnanalyzedTests       int                 `json:"unanalyzedTests,omitempty"`
	URL                   string              `json:"url,omitempty"`
	WebAccessURL          string              `json:"webAccessUrl,omitempty"`
}

// RunCreateModel starts a run. Dates are sent as strings.
type RunCreateModel struct {
	Name                  string            `json:"name"`
	Automated             bool              `json:"automated,omitempty"`
	Build                 *ShallowReference `json:"build,omitempty"`
	BuildDropLocation     string            `json:"buildDropLocation,omitempty"`
	BuildFlavor           string            `json:"buildFlavor,omitempty"`
	BuildPlatform         string            `json:"buildPlatform,omitempty"`
	Comment               string            `json:"comment,omitempty"`
	CompleteDate          string            `json:"completeDate,omitempty"`
	ConfigurationIDs      []int             `json:"configurationIds,omitempty"`
	Controller            string            `json:"controller,omitempty"`
	DueDate               string            `json:"dueDate,omitempty"`
	ErrorMessage          string            `json:"errorMessage,omitempty"`
	Iteration             string            `json:"iteration,omitempty"`
	Owner                 *api.IdentityRef  `json:"owner,omitempty"`
	Plan                  *ShallowReference `json:"plan,omitempty"`
	PointIDs              []int             `json:"pointIds,omitempty"`
	ReleaseEnvironmentURI string            `json:"releaseEnvironmentUri,omitempty"`
	ReleaseURI            string            `json:"releaseUri,omitempty"`
	RunTimeout            string            `json:"runTimeout,omitempty"`
	SourceWorkflow        string            `json:"sourceWorkflow,omitempty"`
	StartDate             string            `json:"startDate,omitempty"`
	State                 string            `json:"state,omitempty"`
	TestEnvironmentID     string            `json:"testEnvironmentId,omitempty"`
	TestSettings          *ShallowReference `json:"testSettings,omitempty"`
	Type                  string            `json:"type,omitempty"`
}

// RunUpdateModel changes a run, typically to complete it
type RunUpdateModel struct {
	Name                    string                  `json:"name,omitempty"`
	Build                   *ShallowReference       `json:"build,omitempty"`
	Comment                 string                  `json:"comment,omitempty"`
	CompletedDate           string                  `json:"completedDate,omitempty"`
	Controller              string                  `json:"controller,omitempty"`
	DeleteInProgressResults bool                    `json:"deleteInProgressResults,omitempty"`
	ErrorMessage            string                  `json:"errorMessage,omitempty"`
	Iteration               string                  `json:"iteration,omitempty"`
	LogEntries              []TestMessageLogDetails `json:"logEntries,omitempty"`
	StartedDate             string                  `json:"startedDate,omitempty"`
	State                   string                  `json:"state,omitempty"`
	Substate                TestRunSubstate         `json:"substate,omitempty"`
	TestSettings            *ShallowReference       `json:"testSettings,omitempty"`
}

type PropertyBag struct {
	Bag map[string]string `json:"bag,omitempty"`
}

// TestSession is an exploratory testing session
type TestSession struct {
	ID              int               `json:"id,omitempty"`
	Title           string            `json:"title,omitempty"`
	Area            *ShallowReference `json:"area,omitempty"`
	Comment         string            `json:"comment,omitempty"`
	StartDate       time.Time         `json:"startDate,omitzero"`
	EndDate         time.Time         `json:"endDate,omitzero"`
	LastUpdatedBy   *api.IdentityRef  `json:"lastUpdatedBy,omitempty"`
	LastUpdatedDate time.Time         `json:"lastUpdatedDate,omitzero"`
	Owner           *api.IdentityRef  `json:"owner,omitempty"`
	Project         *ShallowReference `json:"project,omitempty"`
	PropertyBag     *PropertyBag      `json:"propertyBag,omitempty"`
	Revision        int               `json:"revision,omitempty"`
	Source          TestSessionSource `json:"source,omitempty"`
	State           TestSessionState  `json:"state,omitempty"`
	URL             string            `json:"url,omitempty"`
}

// TestSettings holds the run settings document of a project
type TestSettings struct {
	TestSettingsID      int    `json:"testSettingsId,omitempty"`
	TestSettingsName    string `json:"testSettingsName,omitempty"`
	TestSettingsContent string `json:"testSettingsContent,omitempty"`
	AreaPath            string `json:"areaPath,omitempty"`
	Description         string `json:"description,omitempty"`
	IsPublic            bool   `json:"isPublic,omitempty"`
	MachineRoles        string `json:"machineRoles,omitempty"`
}

// TestSuite is a static, query based or requirement based group of test cases
type TestSuite struct {
	ID                           int                `json:"id,omitempty"`
	Name                         string             `json:"name,omitempty"`
	AreaURI                      string             `json:"areaUri,omitempty"`
	Children                     []TestSuite        `json:"children,omitempty"`
	DefaultConfigurations        []ShallowReference `json:"defaultConfigurations,omitempty"`
	DefaultTesters               []ShallowReference `json:"defaultTesters,omitempty"`
	InheritDefaultConfigurations bool               `json:"inheritDefaultConfigurations,omitempty"`
	LastError                    string             `json:"lastError,omitempty"`
	LastPopulatedDate            time.Time          `json:"lastPopulatedDate,omitzero"`
	LastUpdatedBy                *api.IdentityRef   `json:"lastUpdatedBy,omitempty"`
	LastUpdatedDate              time.Time          `json:"lastUpdatedDate,omitzero"`
	Parent                       *ShallowReference  `json:"parent,omitempty"`
	Plan                         *ShallowReference  `json:"plan,omitempty"`
	Project                      *ShallowReference  `json:"project,omitempty"`
	QueryString                  string             `json:"queryString,omitempty"`
	RequirementID                int                `json:"requirementId,omitempty"`
	Revision                     int                `json:"revision,omitempty"`
	State                        string             `json:"state,omitempty"`
	Suites                       []ShallowReference `json:"suites,omitempty"`
	SuiteType                    string             `json:"suiteType,omitempty"`
	TestCaseCount                int                `json:"testCaseCount,omitempty"`
	TestCasesURL                 string             `json:"testCasesUrl,omitempty"`
	Text                         string             `json:"text,omitempty"`
	URL                          string             `json:"url,omitempty"`
}

// SuiteCreateModel creates a child suite
type SuiteCreateModel struct {
	Name                         string             `json:"name"`
	SuiteType                    string             `json:"suiteType"`
	DefaultConfigurations        []ShallowReference `json:"defaultConfigurations,omitempty"`
	DefaultTesters               []ShallowReference `json:"defaultTesters,omitempty"`
	InheritDefaultConfigurations bool               `json:"inheritDefaultConfigurations,omitempty"`
	QueryString                  string             `json:"queryString,omitempty"`
	RequirementIDs               []int              `json:"requirementIds,omitempty"`
}

type SuiteUpdateModel struct {
	Name                         string             `json:"name,omitempty"`
	DefaultConfigurations        []ShallowReference `json:"defaultConfigurations,omitempty"`
	DefaultTesters               []ShallowReference `json:"defaultTesters,omitempty"`
	InheritDefaultConfigurations bool               `json:"inheritDefaultConfigurations,omitempty"`
	Parent                       *ShallowReference  `json:"parent,omitempty"`
	QueryString                  string             `json:"queryString,omitempty"`
}

type PointAssignment struct {
	Configuration *ShallowReference `json:"configuration,omitempty"`
	Tester        *api.IdentityRef  `json:"tester,omitempty"`
}

// SuiteTestCase is a test case in a suite with its point assignments
type SuiteTestCase struct {
	PointAssignments []PointAssignment  `json:"pointAssignments,omitempty"`
	TestCase         *WorkItemReference `json:"testCase,omitempty"`
}

type SuiteTestCaseUpdateModel struct {
	Configurations []ShallowReference `json:"configurations,omitempty"`
}

// TestVariable is a named list of values configurations draw from
type TestVariable struct {
	ID          int               `json:"id,omitempty"`
	Name        string            `json:"name,omitempty"`
	Description string            `json:"description,omitempty"`
	Project     *ShallowReference `json:"project,omitempty"`
	Revision    int               `json:"revision,omitempty"`
	URL         string            `json:"url,omitempty"`
	Values      []string          `json:"values,omitempty"`
}

// AfnStrip is an action recording attached to a test case
type AfnStrip struct {
	AuxiliaryURL string    `json:"auxiliaryUrl,omitempty"`
	CreatedDate  time.Time `json:"createdDate,omitzero"`
	FileName     string    `json:"fileName,omitempty"`
	ID           int       `json:"id,omitempty"`
	Length       int64     `json:"length,omitempty"`
	// Stream is the base64 encoded recording
	Stream     string `json:"stream,omitempty"`
	TestCaseID int    `json:"testCaseId,omitempty"`
}

type CloneOptions struct {
	CloneRequirements       bool              `json:"cloneRequirements,omitempty"`
	CopyAllSuites           bool              `json:"copyAllSuites,omitempty"`
	CopyAncestorHierarchy   bool              `json:"copyAncestorHierarchy,omitempty"`
	DestinationWorkItemType string            `json:"destinationWorkItemType,omitempty"`
	OverrideParameters      map[string]string `json:"overrideParameters,omitempty"`
	RelatedLinkComment      string            `json:"relatedLinkComment,omitempty"`
}

type CloneStatistics struct {
	ClonedRequirementsCount int `json:"clonedRequirementsCount"`
	ClonedSharedStepsCount  int `json:"clonedSharedStepsCount"`
	ClonedTestCasesCount    int `json:"clonedTestCasesCount"`
	TotalRequirementsCount  int `json:"totalRequirementsCount"`
	TotalTestCasesCount     int `json:"totalTestCasesCount"`
}

// CloneOperationInformation tracks a queued plan or suite clone
type CloneOperationInformation struct {
	CloneStatistics    *CloneStatistics    `json:"cloneStatistics,omitempty"`
	CompletionDate     time.Time           `json:"completionDate,omitzero"`
	CreationDate       time.Time           `json:"creationDate,omitzero"`
	DestinationObject  *ShallowReference   `json:"destinationObject,omitempty"`
	DestinationPlan    *ShallowReference   `json:"destinationPlan,omitempty"`
	DestinationProject *ShallowReference   `json:"destinationProject,omitempty"`
	Message            string              `json:"message,omitempty"`
	OpID               int                 `json:"opId,omitempty"`
	ResultObjectType   ResultObjectType    `json:"resultObjectType"`
	SourceObject       *ShallowReference   `json:"sourceObject,omitempty"`
	SourcePlan         *ShallowReference   `json:"sourcePlan,omitempty"`
	SourceProject      *ShallowReference   `json:"sourceProject,omitempty"`
	State              CloneOperationState `json:"state"`
	URL                string              `json:"url,omitempty"`
}

type TestPlanCloneRequest struct {
	DestinationTestPlan *TestPlan     `json:"destinationTestPlan,omitempty"`
	Options             *CloneOptions `json:"options,omitempty"`
	SuiteIDs            []int         `json:"suiteIds,omitempty"`
}

type TestSuiteCloneRequest struct {
	CloneOptions                *CloneOptions `json:"cloneOptions,omitempty"`
	DestinationSuiteID          int           `json:"destinationSuiteId,omitempty"`
	DestinationSuiteProjectName string        `json:"destinationSuiteProjectName,omitempty"`
}

// CustomTestFieldDefinition declares a custom field runs or results can carry
type CustomTestFieldDefinition struct {
	FieldID   int                  `json:"fieldId,omitempty"`
	FieldName string               `json:"fieldName,omitempty"`
	FieldType CustomTestFieldType  `json:"fieldType"`
	Scope     CustomTestFieldScope `json:"scope"`
}

type TestResultHistoryDetailsForGroup struct {
	GroupByValue any             `json:"groupByValue,omitempty"`
	LatestResult *TestCaseResult `json:"latestResult,omitempty"`
}

// TestResultHistory is the latest result of a test per group, such as per branch
type TestResultHistory struct {
	GroupByField    string                             `json:"groupByField,omitempty"`
	ResultsForGroup []TestResultHistoryDetailsForGroup `json:"resultsForGroup,omitempty"`
}

type TestResultHistoryForGroup struct {
	DisplayName  string           `json:"displayName,omitempty"`
	GroupByValue string           `json:"groupByValue,omitempty"`
	Results      []TestCaseResult `json:"results,omitempty"`
}

// TestHistoryQuery asks for the history of one automated test. The server fills
// ResultsForGroup and ContinuationToken.
type TestHistoryQuery struct {
	AutomatedTestName      string                      `json:"automatedTestName,omitempty"`
	Branch                 string                      `json:"branch,omitempty"`
	BuildDefinitionID      int                         `json:"buildDefinitionId,omitempty"`
	ContinuationToken      string                      `json:"continuationToken,omitempty"`
	GroupBy                TestResultGroupBy           `json:"groupBy,omitempty"`
	MaxCompleteDate        time.Time                   `json:"maxCompleteDate,omitzero"`
	ReleaseEnvDefinitionID int                         `json:"releaseEnvDefinitionId,omitempty"`
	ResultsForGroup        []TestResultHistoryForGroup `json:"resultsForGroup,omitempty"`
	TestCaseID             int                         `json:"testCaseId,omitempty"`
	TrendDays              int                         `json:"trendDays,omitempty"`
}

type LinkedWorkItemsQuery struct {
	AutomatedTestNames []string `json:"automatedTestNames,omitempty"`
	PlanID             int      `json:"planId,omitempty"`
	PointIDs           []int    `json:"pointIds,omitempty"`
	SuiteIDs           []int    `json:"suiteIds,omitempty"`
	TestCaseIDs        []int    `json:"testCaseIds,omitempty"`
	WorkItemCategory   string   `json:"workItemCategory,omitempty"`
}

type LinkedWorkItemsQueryResult struct {
	AutomatedTestName string              `json:"automatedTestName,omitempty"`
	PlanID            int                 `json:"planId,omitempty"`
	PointID           int                 `json:"pointId,omitempty"`
	SuiteID           int                 `json:"suiteId,omitempty"`
	TestCaseID        int                 `json:"testCaseId,omitempty"`
	WorkItems         []WorkItemReference `json:"workItems,omitempty"`
}

type TestOperationReference struct {
	ID     string `json:"id,omitempty"`
	Status string `json:"status,omitempty"`
	URL    string `json:"url,omitempty"`
}

type TestResultPayload struct {
	Comment string `json:"comment,omitempty"`
	Name    string `json:"name,omitempty"`
	Stream  string `json:"stream,omitempty"`
}

// TestResultDocument uploads a results file for the server to parse into a run
type TestResultDocument struct {
	OperationReference *TestOperationReference `json:"operationReference,omitempty"`
	Payload            *TestResultPayload      `json:"payload,omitempty"`
}

// FieldDetailsForTestResults lists the distinct values of one result field
type FieldDetailsForTestResults struct {
	FieldName      string `json:"fieldName,omitempty"`
	GroupsForField []any  `json:"groupsForField,omitempty"`
}

// ResultRetentionSettings holds how many days results are kept. Durations are in days.
type ResultRetentionSettings struct {
	AutomatedResultsRetentionDuration int              `json:"automatedResultsRetentionDuration"`
	LastUpdatedBy                     *api.IdentityRef `json:"lastUpdatedBy,omitempty"`
	LastUpdatedDate                   time.Time        `json:"lastUpdatedDate,omitzero"`
	ManualResultsRetentionDuration    int              `json:"manualResultsRetentionDuration"`
}

// AggregatedDataForResultTrend summarizes the results of one build or release
// for trend charts
type AggregatedDataForResultTrend struct {
	Duration           string                                     `json:"duration,omitempty"`
	ResultsByOutcome   map[TestOutcome]AggregatedResultsByOutcome `json:"resultsByOutcome,omitempty"`
	RunSummaryByState  map[TestRunState]AggregatedRunsByState     `json:"runSummaryByState,omitempty"`
	TestResultsContext *TestResultsContext                        `json:"testResultsContext,omitempty"`
	TotalTests         int                                        `json:"totalTests"`
}

type TestResultTrendFilter struct {
	BranchNames      []string  `json:"branchNames,omitempty"`
	BuildCount       int       `json:"buildCount,omitempty"`
	DefinitionIDs    []int     `json:"definitionIds,omitempty"`
	EnvDefinitionIDs []int     `json:"envDefinitionIds,omitempty"`
	MaxCompleteDate  time.Time `json:"maxCompleteDate,omitzero"`
	PublishContext   string    `json:"publishContext,omitempty"`
	TestRunTitles    []string  `json:"testRunTitles,omitempty"`
	TrendDays        int       `json:"trendDays,omitempty"`
}

type TestSummaryForWorkItem struct {
	Summary  *AggregatedDataForResultTrend `json:"summary,omitempty"`
	WorkItem *WorkItemReference            `json:"workItem,omitempty"`
}

// TestMethod names an automated test by container and name
type TestMethod struct {
	Container string `json:"container,omitempty"`
	Name      string `json:"name,omitempty"`
}

// WorkItemToTestLinks associates automated tests with a work item
type WorkItemToTestLinks struct {
	Tests    []TestMethod       `json:"tests,omitempty"`
	WorkItem *WorkItemReference `json:"workItem,omitempty"`
}

type TestToWorkItemLinks struct {
	Test      *TestMethod         `json:"test,omitempty"`
	WorkItems []WorkItemReference `json:"workItems,omitempty"`
}

// SuiteEntry is a child suite or test case of a suite in display order
type SuiteEntry struct {
	ChildSuiteID   int `json:"childSuiteId,omitempty"`
	SequenceNumber int `json:"sequenceNumber"`
	SuiteID        int `json:"suiteId,omitempty"`
	TestCaseID     int `json:"testCaseId,omitempty"`
}

type SuiteEntryUpdateModel struct {
	ChildSuiteID   int `json:"childSuiteId,omitempty"`
	SequenceNumber int `json:"sequenceNumber"`
	TestCaseID     int `json:"testCaseId,omitempty"`
}
