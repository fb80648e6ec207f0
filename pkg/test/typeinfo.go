package test

import (
	"github.com/blimu-dev/devops-sdk/pkg/api"
	"github.com/blimu-dev/devops-sdk/pkg/serialization"
)

var (
	AttachmentTypeEnum = &serialization.TypeInfo{EnumValues: map[string]int{
		"generalAttachment":                0,
		"afnStrip":                         1,
		"bugFilingData":                    2,
		"codeCoverage":                     3,
		"intermediateCollectorData":        4,
		"runConfig":                        5,
		"testImpactDetails":                6,
		"tmiTestRunDeploymentFiles":        7,
		"tmiTestRunReverseDeploymentFiles": 8,
		"tmiTestResultDetail":              9,
		"tmiTestRunSummary":                10,
		"consoleLog":                       11,
	}}
	CloneOperationStateEnum = &serialization.TypeInfo{EnumValues: map[string]int{
		"queued":     0,
		"inProgress": 1,
		"failed":     2,
		"succeeded":  3,
	}}
	CoverageSummaryStatusEnum = &serialization.TypeInfo{EnumValues: map[string]int{
		"none":       0,
		"inProgress": 1,
		"completed":  2,
		"finalized":  3,
		"pending":    4,
	}}
	CustomTestFieldScopeEnum = &serialization.TypeInfo{EnumValues: map[string]int{
		"none":       0,
		"testRun":    1,
		"testResult": 2,
		"system":     4,
		"all":        7,
	}}
	CustomTestFieldTypeEnum = &serialization.TypeInfo{EnumValues: map[string]int{
		"bit":      2,
		"dateTime": 4,
		"float":    6,
		"int":      8,
		"string":   12,
		"guid":     14,
	}}
	ResultDetailsEnum = &serialization.TypeInfo{EnumValues: map[string]int{
		"none":       0,
		"iterations": 1,
		"workItems":  2,
	}}
	ResultObjectTypeEnum = &serialization.TypeInfo{EnumValues: map[string]int{
		"testSuite": 0,
		"testPlan":  1,
	}}
	TestConfigurationStateEnum = &serialization.TypeInfo{EnumValues: map[string]int{
		"active":   1,
		"inactive": 2,
	}}
	TestOutcomeEnum = &serialization.TypeInfo{EnumValues: map[string]int{
		"unspecified":   0,
		"none":          1,
		"passed":        2,
		"failed":        3,
		"inconclusive":  4,
		"timeout":       5,
		"aborted":       6,
		"blocked":       7,
		"notExecuted":   8,
		"warning":       9,
		"error":         10,
		"notApplicable": 11,
		"paused":        12,
		"inProgress":    13,
		"notImpacted":   14,
	}}
	TestResultGroupByEnum = &serialization.TypeInfo{EnumValues: map[string]int{
		"branch":      1,
		"environment": 2,
	}}
	TestResultsContextTypeEnum = &serialization.TypeInfo{EnumValues: map[string]int{
		"build":   1,
		"release": 2,
	}}
	TestRunPublishContextEnum = &serialization.TypeInfo{EnumValues: map[string]int{
		"build":   1,
		"release": 2,
		"all":     3,
	}}
	TestRunStateEnum = &serialization.TypeInfo{EnumValues: map[string]int{
		"unspecified":        0,
		"notStarted":         1,
		"inProgress":         2,
		"completed":          3,
		"aborted":            4,
		"waiting":            5,
		"needsInvestigation": 6,
	}}
	TestRunSubstateEnum = &serialization.TypeInfo{EnumValues: map[string]int{
		"none":                   0,
		"creatingEnvironment":    1,
		"runningTests":           2,
		"canceledByUser":         3,
		"abortedBySystem":        4,
		"timedOut":               5,
		"pendingAnalysis":        6,
		"analyzed":               7,
		"cancellationInProgress": 8,
	}}
	TestSessionSourceEnum = &serialization.TypeInfo{EnumValues: map[string]int{
		"unknown":               0,
		"xtDesktop":             1,
		"feedbackDesktop":       2,
		"xtWeb":                 3,
		"feedbackWeb":           4,
		"xtDesktop2":            5,
		"sessionInsightsForAll": 6,
	}}
	TestSessionStateEnum = &serialization.TypeInfo{EnumValues: map[string]int{
		"unspecified": 0,
		"notStarted":  1,
		"inProgress":  2,
		"paused":      3,
		"completed":   4,
		"declined":    5,
	}}
)

var (
	AfnStripTypeInfo                         = &serialization.TypeInfo{}
	AggregatedDataForResultTrendTypeInfo     = &serialization.TypeInfo{}
	AggregatedResultsAnalysisTypeInfo        = &serialization.TypeInfo{}
	AggregatedResultsByOutcomeTypeInfo       = &serialization.TypeInfo{}
	AggregatedRunsByStateTypeInfo            = &serialization.TypeInfo{}
	BuildConfigurationTypeInfo               = &serialization.TypeInfo{}
	BuildCoverageTypeInfo                    = &serialization.TypeInfo{}
	CloneOperationInformationTypeInfo        = &serialization.TypeInfo{}
	CodeCoverageSummaryTypeInfo              = &serialization.TypeInfo{}
	CustomTestFieldDefinitionTypeInfo        = &serialization.TypeInfo{}
	FailingSinceTypeInfo                     = &serialization.TypeInfo{}
	LastResultDetailsTypeInfo                = &serialization.TypeInfo{}
	ReleaseReferenceTypeInfo                 = &serialization.TypeInfo{}
	ResultRetentionSettingsTypeInfo          = &serialization.TypeInfo{}
	ResultsFilterTypeInfo                    = &serialization.TypeInfo{}
	TestActionResultModelTypeInfo            = &serialization.TypeInfo{}
	TestAttachmentTypeInfo                   = &serialization.TypeInfo{}
	TestCaseResultTypeInfo                   = &serialization.TypeInfo{}
	TestConfigurationTypeInfo                = &serialization.TypeInfo{}
	TestFailuresAnalysisTypeInfo             = &serialization.TypeInfo{}
	TestHistoryQueryTypeInfo                 = &serialization.TypeInfo{}
	TestIterationDetailsModelTypeInfo        = &serialization.TypeInfo{}
	TestMessageLogDetailsTypeInfo            = &serialization.TypeInfo{}
	TestPlanTypeInfo                         = &serialization.TypeInfo{}
	TestPointTypeInfo                        = &serialization.TypeInfo{}
	TestPointsQueryTypeInfo                  = &serialization.TypeInfo{}
	TestResultHistoryDetailsForGroupTypeInfo = &serialization.TypeInfo{}
	TestResultHistoryForGroupTypeInfo        = &serialization.TypeInfo{}
	TestResultHistoryTypeInfo                = &serialization.TypeInfo{}
	TestResultSummaryTypeInfo                = &serialization.TypeInfo{}
	TestResultTrendFilterTypeInfo            = &serialization.TypeInfo{}
	TestResultsContextTypeInfo               = &serialization.TypeInfo{}
	TestResultsDetailsForGroupTypeInfo       = &serialization.TypeInfo{}
	TestResultsDetailsTypeInfo               = &serialization.TypeInfo{}
	TestResultsQueryTypeInfo                 = &serialization.TypeInfo{}
	TestRunTypeInfo                          = &serialization.TypeInfo{}
	TestSessionTypeInfo                      = &serialization.TypeInfo{}
	TestSuiteTypeInfo                        = &serialization.TypeInfo{}
	TestSummaryForWorkItemTypeInfo           = &serialization.TypeInfo{}
)

// outcomeDictionary is a map keyed by outcome name whose values carry an outcome
func outcomeDictionary() *serialization.FieldInfo {
	return &serialization.FieldInfo{
		IsDictionary:            true,
		DictionaryKeyEnumType:   TestOutcomeEnum,
		DictionaryValueTypeInfo: AggregatedResultsByOutcomeTypeInfo,
	}
}

func init() {
	ReleaseReferenceTypeInfo.Fields = map[string]*serialization.FieldInfo{
		"creationDate":            serialization.Date(),
		"environmentCreationDate": serialization.Date(),
	}
	BuildConfigurationTypeInfo.Fields = map[string]*serialization.FieldInfo{
		"creationDate": serialization.Date(),
	}
	BuildCoverageTypeInfo.Fields = map[string]*serialization.FieldInfo{
		"configuration": serialization.Object(BuildConfigurationTypeInfo),
	}
	CodeCoverageSummaryTypeInfo.Fields = map[string]*serialization.FieldInfo{
		"status": serialization.Enum(CoverageSummaryStatusEnum),
	}
	TestAttachmentTypeInfo.Fields = map[string]*serialization.FieldInfo{
		"attachmentType": serialization.Enum(AttachmentTypeEnum),
		"createdDate":    serialization.Date(),
	}
	TestConfigurationTypeInfo.Fields = map[string]*serialization.FieldInfo{
		"lastUpdatedDate": serialization.Date(),
		"state":           serialization.Enum(TestConfigurationStateEnum),
	}
	TestActionResultModelTypeInfo.Fields = map[string]*serialization.FieldInfo{
		"completedDate": serialization.Date(),
		"startedDate":   serialization.Date(),
	}
	TestIterationDetailsModelTypeInfo.Fields = map[string]*serialization.FieldInfo{
		"actionResults": serialization.ArrayOf(TestActionResultModelTypeInfo),
		"completedDate": serialization.Date(),
		"startedDate":   serialization.Date(),
	}
	TestMessageLogDetailsTypeInfo.Fields = map[string]*serialization.FieldInfo{
		"dateCreated": serialization.Date(),
	}
	TestPlanTypeInfo.Fields = map[string]*serialization.FieldInfo{
		"endDate":     serialization.Date(),
		"startDate":   serialization.Date(),
		"updatedDate": serialization.Date(),
	}
	LastResultDetailsTypeInfo.Fields = map[string]*serialization.FieldInfo{
		"dateCompleted": serialization.Date(),
	}
	TestPointTypeInfo.Fields = map[string]*serialization.FieldInfo{
		"lastResultDetails": serialization.Object(LastResultDetailsTypeInfo),
		"lastUpdatedDate":   serialization.Date(),
	}
	TestPointsQueryTypeInfo.Fields = map[string]*serialization.FieldInfo{
		"points": serialization.ArrayOf(TestPointTypeInfo),
	}
	FailingSinceTypeInfo.Fields = map[string]*serialization.FieldInfo{
		"date":    serialization.Date(),
		"release": serialization.Object(ReleaseReferenceTypeInfo),
	}
	TestCaseResultTypeInfo.Fields = map[string]*serialization.FieldInfo{
		"completedDate":    serialization.Date(),
		"createdDate":      serialization.Date(),
		"failingSince":     serialization.Object(FailingSinceTypeInfo),
		"iterationDetails": serialization.ArrayOf(TestIterationDetailsModelTypeInfo),
		"lastUpdatedDate":  serialization.Date(),
		"releaseReference": serialization.Object(ReleaseReferenceTypeInfo),
		"startedDate":      serialization.Date(),
	}
	TestResultsContextTypeInfo.Fields = map[string]*serialization.FieldInfo{
		"contextType": serialization.Enum(TestResultsContextTypeEnum),
		"release":     serialization.Object(ReleaseReferenceTypeInfo),
	}
	ResultsFilterTypeInfo.Fields = map[string]*serialization.FieldInfo{
		"maxCompleteDate":    serialization.Date(),
		"testResultsContext": serialization.Object(TestResultsContextTypeInfo),
	}
	TestResultsQueryTypeInfo.Fields = map[string]*serialization.FieldInfo{
		"results":       serialization.ArrayOf(TestCaseResultTypeInfo),
		"resultsFilter": serialization.Object(ResultsFilterTypeInfo),
	}
	AggregatedResultsByOutcomeTypeInfo.Fields = map[string]*serialization.FieldInfo{
		"outcome": serialization.Enum(TestOutcomeEnum),
	}
	AggregatedRunsByStateTypeInfo.Fields = map[string]*serialization.FieldInfo{
		"resultsByOutcome": outcomeDictionary(),
		"state":            serialization.Enum(TestRunStateEnum),
	}
	AggregatedResultsAnalysisTypeInfo.Fields = map[string]*serialization.FieldInfo{
		"notReportedResultsByOutcome": outcomeDictionary(),
		"previousContext":             serialization.Object(TestResultsContextTypeInfo),
		"resultsByOutcome":            outcomeDictionary(),
		"runSummaryByState": {
			IsDictionary:            true,
			DictionaryKeyEnumType:   TestRunStateEnum,
			DictionaryValueTypeInfo: AggregatedRunsByStateTypeInfo,
		},
	}
	TestFailuresAnalysisTypeInfo.Fields = map[string]*serialization.FieldInfo{
		"previousContext": serialization.Object(TestResultsContextTypeInfo),
	}
	TestResultSummaryTypeInfo.Fields = map[string]*serialization.FieldInfo{
		"aggregatedResultsAnalysis": serialization.Object(AggregatedResultsAnalysisTypeInfo),
		"teamProject":               serialization.Object(api.TeamProjectReferenceTypeInfo),
		"testFailures":              serialization.Object(TestFailuresAnalysisTypeInfo),
		"testResultsContext":        serialization.Object(TestResultsContextTypeInfo),
	}
	TestResultsDetailsForGroupTypeInfo.Fields = map[string]*serialization.FieldInfo{
		"results":               serialization.ArrayOf(TestCaseResultTypeInfo),
		"resultsCountByOutcome": outcomeDictionary(),
	}
	TestResultsDetailsTypeInfo.Fields = map[string]*serialization.FieldInfo{
		"resultsForGroup": serialization.ArrayOf(TestResultsDetailsForGroupTypeInfo),
	}
	TestRunTypeInfo.Fields = map[string]*serialization.FieldInfo{
		"buildConfiguration": serialization.Object(BuildConfigurationTypeInfo),
		"completedDate":      serialization.Date(),
		"createdDate":        serialization.Date(),
		"dueDate":            serialization.Date(),
		"lastUpdatedDate":    serialization.Date(),
		"release":            serialization.Object(ReleaseReferenceTypeInfo),
		"startedDate":        serialization.Date(),
		"substate":           serialization.Enum(TestRunSubstateEnum),
	}
	TestSessionTypeInfo.Fields = map[string]*serialization.FieldInfo{
		"endDate":         serialization.Date(),
		"lastUpdatedDate": serialization.Date(),
		"source":          serialization.Enum(TestSessionSourceEnum),
		"startDate":       serialization.Date(),
		"state":           serialization.Enum(TestSessionStateEnum),
	}
	TestSuiteTypeInfo.Fields = map[string]*serialization.FieldInfo{
		"children":          serialization.ArrayOf(TestSuiteTypeInfo),
		"lastPopulatedDate": serialization.Date(),
		"lastUpdatedDate":   serialization.Date(),
	}
	AfnStripTypeInfo.Fields = map[string]*serialization.FieldInfo{
		"createdDate": serialization.Date(),
	}
	CloneOperationInformationTypeInfo.Fields = map[string]*serialization.FieldInfo{
		"completionDate":   serialization.Date(),
		"creationDate":     serialization.Date(),
		"resultObjectType": serialization.Enum(ResultObjectTypeEnum),
		"state":            serialization.Enum(CloneOperationStateEnum),
	}
	CustomTestFieldDefinitionTypeInfo.Fields = map[string]*serialization.FieldInfo{
		"fieldType": serialization.Enum(CustomTestFieldTypeEnum),
		"scope":     serialization.Enum(CustomTestFieldScopeEnum),
	}
	ResultRetentionSettingsTypeInfo.Fields = map[string]*serialization.FieldInfo{
		"lastUpdatedDate": serialization.Date(),
	}
	TestResultHistoryDetailsForGroupTypeInfo.Fields = map[string]*serialization.FieldInfo{
		"latestResult": serialization.Object(TestCaseResultTypeInfo),
	}
	TestResultHistoryTypeInfo.Fields = map[string]*serialization.FieldInfo{
		"resultsForGroup": serialization.ArrayOf(TestResultHistoryDetailsForGroupTypeInfo),
	}
	TestResultHistoryForGroupTypeInfo.Fields = map[string]*serialization.FieldInfo{
		"results": serialization.ArrayOf(TestCaseResultTypeInfo),
	}
	TestHistoryQueryTypeInfo.Fields = map[string]*serialization.FieldInfo{
		"groupBy":         serialization.Enum(TestResultGroupByEnum),
		"maxCompleteDate": serialization.Date(),
		"resultsForGroup": serialization.ArrayOf(TestResultHistoryForGroupTypeInfo),
	}
	TestResultTrendFilterTypeInfo.Fields = map[string]*serialization.FieldInfo{
		"maxCompleteDate": serialization.Date(),
	}
	AggregatedDataForResultTrendTypeInfo.Fields = map[string]*serialization.FieldInfo{
		"resultsByOutcome": outcomeDictionary(),
		"runSummaryByState": {
			IsDictionary:            true,
			DictionaryKeyEnumType:   TestRunStateEnum,
			DictionaryValueTypeInfo: AggregatedRunsByStateTypeInfo,
		},
		"testResultsContext": serialization.Object(TestResultsContextTypeInfo),
	}
	TestSummaryForWorkItemTypeInfo.Fields = map[string]*serialization.FieldInfo{
		"summary": serialization.Object(AggregatedDataForResultTrendTypeInfo),
	}
}
