package build

import "github.com/blimu-dev/devops-sdk/pkg/serialization"

// AuditAction is the kind of change recorded in a definition revision
type AuditAction int

const (
	AuditActionAdd    AuditAction = 1
	AuditActionUpdate AuditAction = 2
	AuditActionDelete AuditAction = 3
)

func (a AuditAction) String() string { return serialization.EnumString(AuditActionEnum, int(a)) }

// BuildAuthorizationScope is the scope the job access token is issued for
type BuildAuthorizationScope int

const (
	BuildAuthorizationScopeProjectCollection BuildAuthorizationScope = 1
	BuildAuthorizationScopeProject           BuildAuthorizationScope = 2
)

func (s BuildAuthorizationScope) String() string {
	return serialization.EnumString(BuildAuthorizationScopeEnum, int(s))
}

// BuildOptionInputType is the editor shown for a build option input
type BuildOptionInputType int

const (
	BuildOptionInputTypeString       BuildOptionInputType = 0
	BuildOptionInputTypeBoolean      BuildOptionInputType = 1
	BuildOptionInputTypeStringList   BuildOptionInputType = 2
	BuildOptionInputTypeRadio        BuildOptionInputType = 3
	BuildOptionInputTypePickList     BuildOptionInputType = 4
	BuildOptionInputTypeMultiLine    BuildOptionInputType = 5
	BuildOptionInputTypeBranchFilter BuildOptionInputType = 6
)

func (t BuildOptionInputType) String() string {
	return serialization.EnumString(BuildOptionInputTypeEnum, int(t))
}

// BuildQueryOrder sorts build listings
type BuildQueryOrder int

const (
	BuildQueryOrderFinishTimeAscending  BuildQueryOrder = 2
	BuildQueryOrderFinishTimeDescending BuildQueryOrder = 3
	BuildQueryOrderQueueTimeDescending  BuildQueryOrder = 4
	BuildQueryOrderQueueTimeAscending   BuildQueryOrder = 5
	BuildQueryOrderStartTimeDescending  BuildQueryOrder = 6
	BuildQueryOrderStartTimeAscending   BuildQueryOrder = 7
)

func (o BuildQueryOrder) String() string { return serialization.EnumString(BuildQueryOrderEnum, int(o)) }

// BuildReason is a flag set describing why a build was queued
type BuildReason int

const (
	BuildReasonNone              BuildReason = 0
	BuildReasonManual            BuildReason = 1
	BuildReasonIndividualCI      BuildReason = 2
	BuildReasonBatchedCI         BuildReason = 4
	BuildReasonSchedule          BuildReason = 8
	BuildReasonUserCreated       BuildReason = 32
	BuildReasonValidateShelveset BuildReason = 64
	BuildReasonCheckInShelveset  BuildReason = 128
	BuildReasonPullRequest       BuildReason = 256
	BuildReasonBuildCompletion   BuildReason = 512
	BuildReasonTriggered         BuildReason = 943
	BuildReasonAll               BuildReason = 1023
)

func (r BuildReason) String() string { return serialization.EnumString(BuildReasonEnum, int(r)) }

// BuildResult is the outcome of a completed build
type BuildResult int

const (
	BuildResultNone               BuildResult = 0
	BuildResultSucceeded          BuildResult = 2
	BuildResultPartiallySucceeded BuildResult = 4
	BuildResultFailed             BuildResult = 8
	BuildResultCanceled           BuildResult = 32
)

func (r BuildResult) String() string { return serialization.EnumString(BuildResultEnum, int(r)) }

// BuildStatus is the lifecycle state of a build
type BuildStatus int

const (
	BuildStatusNone       BuildStatus = 0
	BuildStatusInProgress BuildStatus = 1
	BuildStatusCompleted  BuildStatus = 2
	BuildStatusCancelling BuildStatus = 4
	BuildStatusPostponed  BuildStatus = 8
	BuildStatusNotStarted BuildStatus = 32
	BuildStatusAll        BuildStatus = 47
)

func (s BuildStatus) String() string { return serialization.EnumString(BuildStatusEnum, int(s)) }

// ControllerStatus is the availability of a XAML build controller
type ControllerStatus int

const (
	ControllerStatusUnavailable ControllerStatus = 0
	ControllerStatusAvailable   ControllerStatus = 1
	ControllerStatusOffline     ControllerStatus = 2
)

func (s ControllerStatus) String() string { return serialization.EnumString(ControllerStatusEnum, int(s)) }

// DefinitionQuality tells saved definitions from drafts
type DefinitionQuality int

const (
	DefinitionQualityDefinition DefinitionQuality = 1
	DefinitionQualityDraft      DefinitionQuality = 2
)

func (q DefinitionQuality) String() string { return serialization.EnumString(DefinitionQualityEnum, int(q)) }

// DefinitionQueryOrder sorts definition listings
type DefinitionQueryOrder int

const (
	DefinitionQueryOrderNone                     DefinitionQueryOrder = 0
	DefinitionQueryOrderLastModifiedAscending    DefinitionQueryOrder = 1
	DefinitionQueryOrderLastModifiedDescending   DefinitionQueryOrder = 2
	DefinitionQueryOrderDefinitionNameAscending  DefinitionQueryOrder = 3
	DefinitionQueryOrderDefinitionNameDescending DefinitionQueryOrder = 4
)

func (o DefinitionQueryOrder) String() string {
	return serialization.EnumString(DefinitionQueryOrderEnum, int(o))
}

// DefinitionQueueStatus controls whether new builds of a definition are queued
type DefinitionQueueStatus int

const (
	DefinitionQueueStatusEnabled  DefinitionQueueStatus = 0
	DefinitionQueueStatusPaused   DefinitionQueueStatus = 1
	DefinitionQueueStatusDisabled DefinitionQueueStatus = 2
)

func (s DefinitionQueueStatus) String() string {
	return serialization.EnumString(DefinitionQueueStatusEnum, int(s))
}

// DefinitionTriggerType is a flag set of trigger kinds
type DefinitionTriggerType int

const (
	DefinitionTriggerTypeNone                         DefinitionTriggerType = 1
	DefinitionTriggerTypeContinuousIntegration        DefinitionTriggerType = 2
	DefinitionTriggerTypeBatchedContinuousIntegration DefinitionTriggerType = 4
	DefinitionTriggerTypeSchedule                     DefinitionTriggerType = 8
	DefinitionTriggerTypeGatedCheckIn                 DefinitionTriggerType = 16
	DefinitionTriggerTypeBatchedGatedCheckIn          DefinitionTriggerType = 32
	DefinitionTriggerTypePullRequest                  DefinitionTriggerType = 64
	DefinitionTriggerTypeBuildCompletion              DefinitionTriggerType = 128
	DefinitionTriggerTypeAll                          DefinitionTriggerType = 255
)

func (t DefinitionTriggerType) String() string {
	return serialization.EnumString(DefinitionTriggerTypeEnum, int(t))
}

// DefinitionType tells XAML definitions from current ones
type DefinitionType int

const (
	DefinitionTypeXaml  DefinitionType = 1
	DefinitionTypeBuild DefinitionType = 2
)

func (t DefinitionType) String() string { return serialization.EnumString(DefinitionTypeEnum, int(t)) }

// FolderQueryOrder sorts folder listings
type FolderQueryOrder int

const (
	FolderQueryOrderNone             FolderQueryOrder = 0
	FolderQueryOrderFolderAscending  FolderQueryOrder = 1
	FolderQueryOrderFolderDescending FolderQueryOrder = 2
)

func (o FolderQueryOrder) String() string { return serialization.EnumString(FolderQueryOrderEnum, int(o)) }

// IssueType is the severity of a timeline issue
type IssueType int

const (
	IssueTypeError   IssueType = 1
	IssueTypeWarning IssueType = 2
)

func (t IssueType) String() string { return serialization.EnumString(IssueTypeEnum, int(t)) }

// QueryDeletedOption selects deleted builds in listings
type QueryDeletedOption int

const (
	QueryDeletedOptionExcludeDeleted QueryDeletedOption = 0
	QueryDeletedOptionIncludeDeleted QueryDeletedOption = 1
	QueryDeletedOptionOnlyDeleted    QueryDeletedOption = 2
)

func (o QueryDeletedOption) String() string {
	return serialization.EnumString(QueryDeletedOptionEnum, int(o))
}

// QueueOptions are flags applied when a build is queued
type QueueOptions int

const (
	QueueOptionsNone     QueueOptions = 0
	QueueOptionsDoNotRun QueueOptions = 1
)

func (o QueueOptions) String() string { return serialization.EnumString(QueueOptionsEnum, int(o)) }

// QueuePriority orders queued builds, lower runs first
type QueuePriority int

const (
	QueuePriorityLow         QueuePriority = 5
	QueuePriorityBelowNormal QueuePriority = 4
	QueuePriorityNormal      QueuePriority = 3
	QueuePriorityAboveNormal QueuePriority = 2
	QueuePriorityHigh        QueuePriority = 1
)

func (p QueuePriority) String() string { return serialization.EnumString(QueuePriorityEnum, int(p)) }

// SupportLevel tells whether a source provider supports a trigger capability
type SupportLevel int

const (
	SupportLevelUnsupported SupportLevel = 0
	SupportLevelSupported   SupportLevel = 1
	SupportLevelRequired    SupportLevel = 2
)

func (l SupportLevel) String() string { return serialization.EnumString(SupportLevelEnum, int(l)) }

// TaskResult is the outcome of a timeline record
type TaskResult int

const (
	TaskResultSucceeded           TaskResult = 0
	TaskResultSucceededWithIssues TaskResult = 1
	TaskResultFailed              TaskResult = 2
	TaskResultCanceled            TaskResult = 3
	TaskResultSkipped             TaskResult = 4
	TaskResultAbandoned           TaskResult = 5
)

func (r TaskResult) String() string { return serialization.EnumString(TaskResultEnum, int(r)) }

// TimelineRecordState is the progress of a timeline record
type TimelineRecordState int

const (
	TimelineRecordStatePending    TimelineRecordState = 0
	TimelineRecordStateInProgress TimelineRecordState = 1
	TimelineRecordStateCompleted  TimelineRecordState = 2
)

func (s TimelineRecordState) String() string {
	return serialization.EnumString(TimelineRecordStateEnum, int(s))
}

// ValidationResult is the severity of a queue-time validation message
type ValidationResult int

const (
	ValidationResultOK      ValidationResult = 0
	ValidationResultWarning ValidationResult = 1
	ValidationResultError   ValidationResult = 2
)

func (r ValidationResult) String() string { return serialization.EnumString(ValidationResultEnum, int(r)) }
