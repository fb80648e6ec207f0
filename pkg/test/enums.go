package test

import "github.com/blimu-dev/devops-sdk/pkg/serialization"

type AttachmentType int

const (
	AttachmentTypeGeneralAttachment                AttachmentType = 0
	AttachmentTypeAfnStrip                         AttachmentType = 1
	AttachmentTypeBugFilingData                    AttachmentType = 2
	AttachmentTypeCodeCoverage                     AttachmentType = 3
	AttachmentTypeIntermediateCollectorData        AttachmentType = 4
	AttachmentTypeRunConfig                        AttachmentType = 5
	AttachmentTypeTestImpactDetails                AttachmentType = 6
	AttachmentTypeTmiTestRunDeploymentFiles        AttachmentType = 7
	AttachmentTypeTmiTestRunReverseDeploymentFiles AttachmentType = 8
	AttachmentTypeTmiTestResultDetail              AttachmentType = 9
	AttachmentTypeTmiTestRunSummary                AttachmentType = 10
	AttachmentTypeConsoleLog                       AttachmentType = 11
)

func (t AttachmentType) String() string { return serialization.EnumString(AttachmentTypeEnum, int(t)) }

// CloneOperationState is the progress of a plan or suite clone
type CloneOperationState int

const (
	CloneOperationStateQueued     CloneOperationState = 0
	CloneOperationStateInProgress CloneOperationState = 1
	CloneOperationStateFailed     CloneOperationState = 2
	CloneOperationStateSucceeded  CloneOperationState = 3
)

func (s CloneOperationState) String() string {
	return serialization.EnumString(CloneOperationStateEnum, int(s))
}

// CoverageSummaryStatus is the processing state of a coverage summary
type CoverageSummaryStatus int

const (
	CoverageSummaryStatusNone       CoverageSummaryStatus = 0
	CoverageSummaryStatusInProgress CoverageSummaryStatus = 1
	CoverageSummaryStatusCompleted  CoverageSummaryStatus = 2
	CoverageSummaryStatusFinalized  CoverageSummaryStatus = 3
	CoverageSummaryStatusPending    CoverageSummaryStatus = 4
)

func (s CoverageSummaryStatus) String() string {
	return serialization.EnumString(CoverageSummaryStatusEnum, int(s))
}

// CustomTestFieldScope is a set of flags naming where a custom field applies
type CustomTestFieldScope int

const (
	CustomTestFieldScopeNone       CustomTestFieldScope = 0
	CustomTestFieldScopeTestRun    CustomTestFieldScope = 1
	CustomTestFieldScopeTestResult CustomTestFieldScope = 2
	CustomTestFieldScopeSystem     CustomTestFieldScope = 4
	CustomTestFieldScopeAll        CustomTestFieldScope = 7
)

func (s CustomTestFieldScope) String() string {
	return serialization.EnumString(CustomTestFieldScopeEnum, int(s))
}

type CustomTestFieldType int

const (
	CustomTestFieldTypeBit      CustomTestFieldType = 2
	CustomTestFieldTypeDateTime CustomTestFieldType = 4
	CustomTestFieldTypeFloat    CustomTestFieldType = 6
	CustomTestFieldTypeInt      CustomTestFieldType = 8
	CustomTestFieldTypeString   CustomTestFieldType = 12
	CustomTestFieldTypeGUID     CustomTestFieldType = 14
)

func (t CustomTestFieldType) String() string {
	return serialization.EnumString(CustomTestFieldTypeEnum, int(t))
}

// ResultDetails selects the extra data returned with a test result
type ResultDetails int

const (
	ResultDetailsNone       ResultDetails = 0
	ResultDetailsIterations ResultDetails = 1
	ResultDetailsWorkItems  ResultDetails = 2
)

func (d ResultDetails) String() string { return serialization.EnumString(ResultDetailsEnum, int(d)) }

// ResultObjectType is the kind of object a clone produced
type ResultObjectType int

const (
	ResultObjectTypeTestSuite ResultObjectType = 0
	ResultObjectTypeTestPlan  ResultObjectType = 1
)

func (t ResultObjectType) String() string { return serialization.EnumString(ResultObjectTypeEnum, int(t)) }

type TestConfigurationState int

const (
	TestConfigurationStateActive   TestConfigurationState = 1
	TestConfigurationStateInactive TestConfigurationState = 2
)

func (s TestConfigurationState) String() string {
	return serialization.EnumString(TestConfigurationStateEnum, int(s))
}

// TestOutcome is the verdict of a test result
type TestOutcome int

const (
	TestOutcomeUnspecified   TestOutcome = 0
	TestOutcomeNone          TestOutcome = 1
	TestOutcomePassed        TestOutcome = 2
	TestOutcomeFailed        TestOutcome = 3
	TestOutcomeInconclusive  TestOutcome = 4
	TestOutcomeTimeout       TestOutcome = 5
	TestOutcomeAborted       TestOutcome = 6
	TestOutcomeBlocked       TestOutcome = 7
	TestOutcomeNotExecuted   TestOutcome = 8
	TestOutcomeWarning       TestOutcome = 9
	TestOutcomeError         TestOutcome = 10
	TestOutcomeNotApplicable TestOutcome = 11
	TestOutcomePaused        TestOutcome = 12
	TestOutcomeInProgress    TestOutcome = 13
	TestOutcomeNotImpacted   TestOutcome = 14
)

func (o TestOutcome) String() string { return serialization.EnumString(TestOutcomeEnum, int(o)) }

// TestResultGroupBy groups test history by branch or release environment
type TestResultGroupBy int

const (
	TestResultGroupByBranch      TestResultGroupBy = 1
	TestResultGroupByEnvironment TestResultGroupBy = 2
)

func (g TestResultGroupBy) String() string { return serialization.EnumString(TestResultGroupByEnum, int(g)) }

// TestResultsContextType tells build from release result contexts
type TestResultsContextType int

const (
	TestResultsContextTypeBuild   TestResultsContextType = 1
	TestResultsContextTypeRelease TestResultsContextType = 2
)

func (t TestResultsContextType) String() string {
	return serialization.EnumString(TestResultsContextTypeEnum, int(t))
}

// TestRunPublishContext filters runs by the pipeline that published them
type TestRunPublishContext int

const (
	TestRunPublishContextBuild   TestRunPublishContext = 1
	TestRunPublishContextRelease TestRunPublishContext = 2
	TestRunPublishContextAll     TestRunPublishContext = 3
)

func (c TestRunPublishContext) String() string {
	return serialization.EnumString(TestRunPublishContextEnum, int(c))
}

// TestRunState is the lifecycle state of a test run
type TestRunState int

const (
	TestRunStateUnspecified        TestRunState = 0
	TestRunStateNotStarted         TestRunState = 1
	TestRunStateInProgress         TestRunState = 2
	TestRunStateCompleted          TestRunState = 3
	TestRunStateAborted            TestRunState = 4
	TestRunStateWaiting            TestRunState = 5
	TestRunStateNeedsInvestigation TestRunState = 6
)

func (s TestRunState) String() string { return serialization.EnumString(TestRunStateEnum, int(s)) }

type TestRunSubstate int

const (
	TestRunSubstateNone                   TestRunSubstate = 0
	TestRunSubstateCreatingEnvironment    TestRunSubstate = 1
	TestRunSubstateRunningTests           TestRunSubstate = 2
	TestRunSubstateCanceledByUser         TestRunSubstate = 3
	TestRunSubstateAbortedBySystem        TestRunSubstate = 4
	TestRunSubstateTimedOut               TestRunSubstate = 5
	TestRunSubstatePendingAnalysis        TestRunSubstate = 6
	TestRunSubstateAnalyzed               TestRunSubstate = 7
	TestRunSubstateCancellationInProgress TestRunSubstate = 8
)

func (s TestRunSubstate) String() string { return serialization.EnumString(TestRunSubstateEnum, int(s)) }

// TestSessionSource is the client that recorded an exploratory session
type TestSessionSource int

const (
	TestSessionSourceUnknown               TestSessionSource = 0
	TestSessionSourceXTDesktop             TestSessionSource = 1
	TestSessionSourceFeedbackDesktop       TestSessionSource = 2
	TestSessionSourceXTWeb                 TestSessionSource = 3
	TestSessionSourceFeedbackWeb           TestSessionSource = 4
	TestSessionSourceXTDesktop2            TestSessionSource = 5
	TestSessionSourceSessionInsightsForAll TestSessionSource = 6
)

func (s TestSessionSource) String() string { return serialization.EnumString(TestSessionSourceEnum, int(s)) }

type TestSessionState int

const (
	TestSessionStateUnspecified TestSessionState = 0
	TestSessionStateNotStarted  TestSessionState = 1
	TestSessionStateInProgress  TestSessionState = 2
	TestSessionStatePaused      TestSessionState = 3
	TestSessionStateCompleted   TestSessionState = 4
	TestSessionStateDeclined    TestSessionState = 5
)

func (s TestSessionState) String() string { return serialization.EnumString(TestSessionStateEnum, int(s)) }
