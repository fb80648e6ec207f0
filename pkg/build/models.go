package build

import (
	"time"

	"github.com/blimu-dev/devops-sdk/pkg/api"
	"github.com/blimu-dev/devops-sdk/pkg/serialization"
)

// AgentPoolQueue is the queue a build runs on
type AgentPoolQueue struct {
	ID    int                     `json:"id,omitempty"`
	Name  string                  `json:"name,omitempty"`
	Pool  *TaskAgentPoolReference `json:"pool,omitempty"`
	URL   string                  `json:"url,omitempty"`
	Links map[string]any          `json:"_links,omitempty"`
}

type TaskAgentPoolReference struct {
	ID       int    `json:"id,omitempty"`
	Name     string `json:"name,omitempty"`
	IsHosted bool   `json:"isHosted,omitempty"`
}

// ArtifactResource locates the content of an artifact
type ArtifactResource struct {
	Data        string            `json:"data,omitempty"`
	DownloadURL string            `json:"downloadUrl,omitempty"`
	Properties  map[string]string `json:"properties,omitempty"`
	Type        string            `json:"type,omitempty"`
	URL         string            `json:"url,omitempty"`
	Links       map[string]any    `json:"_links,omitempty"`
}

// BuildArtifact is a named output associated with a build
type BuildArtifact struct {
	ID       int               `json:"id,omitempty"`
	Name     string            `json:"name,omitempty"`
	Resource *ArtifactResource `json:"resource,omitempty"`
}

// BuildBadge links to the status image of a definition's latest build
type BuildBadge struct {
	BuildID  int    `json:"buildId,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
}

type BuildLogReference struct {
	ID   int    `json:"id,omitempty"`
	Type string `json:"type,omitempty"`
	URL  string `json:"url,omitempty"`
}

// BuildLog describes one log of a build. The content is fetched with GetBuildLog.
type BuildLog struct {
	BuildLogReference
	CreatedOn     time.Time `json:"createdOn,omitzero"`
	LastChangedOn time.Time `json:"lastChangedOn,omitzero"`
	LineCount     int64     `json:"lineCount,omitempty"`
}

type TaskOrchestrationPlanReference struct {
	OrchestrationType int    `json:"orchestrationType,omitempty"`
	PlanID            string `json:"planId,omitempty"`
}

type BuildRequestValidationResult struct {
	Message string           `json:"message,omitempty"`
	Result  ValidationResult `json:"result"`
}

// BuildRepository is the source repository a definition builds
type BuildRepository struct {
	ID                 string            `json:"id,omitempty"`
	Name               string            `json:"name,omitempty"`
	Type               string            `json:"type,omitempty"`
	URL                string            `json:"url,omitempty"`
	DefaultBranch      string            `json:"defaultBranch,omitempty"`
	RootFolder         string            `json:"rootFolder,omitempty"`
	Clean              string            `json:"clean,omitempty"`
	CheckoutSubmodules bool              `json:"checkoutSubmodules,omitempty"`
	Properties         map[string]string `json:"properties,omitempty"`
}

// Build is a single run of a definition
type Build struct {
	ID                  int                              `json:"id,omitempty"`
	BuildNumber         string                           `json:"buildNumber,omitempty"`
	BuildNumberRevision int                              `json:"buildNumberRevision,omitempty"`
	Controller          *BuildController                 `json:"controller,omitempty"`
	Definition          *DefinitionReference             `json:"definition,omitempty"`
	Deleted             bool                             `json:"deleted,omitempty"`
	DeletedBy           *api.IdentityRef                 `json:"deletedBy,omitempty"`
	DeletedDate         time.Time                        `json:"deletedDate,omitzero"`
	DeletedReason       string                           `json:"deletedReason,omitempty"`
	Demands             []map[string]any                 `json:"demands,omitempty"`
	FinishTime          time.Time                        `json:"finishTime,omitzero"`
	KeepForever         bool                             `json:"keepForever,omitempty"`
	LastChangedBy       *api.IdentityRef                 `json:"lastChangedBy,omitempty"`
	LastChangedDate     time.Time                        `json:"lastChangedDate,omitzero"`
	Logs                *BuildLogReference               `json:"logs,omitempty"`
	OrchestrationPlan   *TaskOrchestrationPlanReference  `json:"orchestrationPlan,omitempty"`
	Parameters          string                           `json:"parameters,omitempty"`
	Plans               []TaskOrchestrationPlanReference `json:"plans,omitempty"`
	Priority            QueuePriority                    `json:"priority,omitempty"`
	Project             *api.TeamProjectReference        `json:"project,omitempty"`
	Properties          map[string]any                   `json:"properties,omitempty"`
	Quality             string                           `json:"quality,omitempty"`
	Queue               *AgentPoolQueue                  `json:"queue,omitempty"`
	QueueOptions        QueueOptions                     `json:"queueOptions,omitempty"`
	QueuePosition       *int                             `json:"queuePosition,omitempty"`
	QueueTime           time.Time                        `json:"queueTime,omitzero"`
	Reason              BuildReason                      `json:"reason,omitempty"`
	Repository          *BuildRepository                 `json:"repository,omitempty"`
	RequestedBy         *api.IdentityRef                 `json:"requestedBy,omitempty"`
	RequestedFor        *api.IdentityRef                 `json:"requestedFor,omitempty"`
	Result              BuildResult                      `json:"result,omitempty"`
	RetainedByRelease   bool                             `json:"retainedByRelease,omitempty"`
	SourceBranch        string                           `json:"sourceBranch,omitempty"`
	SourceVersion       string                           `json:"sourceVersion,omitempty"`
	StartTime           time.Time                        `json:"startTime,omitzero"`
	Status              BuildStatus                      `json:"status,omitempty"`
	Tags                []string                         `json:"tags,omitempty"`
	TriggerInfo         map[string]string                `json:"triggerInfo,omitempty"`
	TriggeredByBuild    *Build                           `json:"triggeredByBuild,omitempty"`
	URI                 string                           `json:"uri,omitempty"`
	URL                 string                           `json:"url,omitempty"`
	ValidationResults   []BuildRequestValidationResult   `json:"validationResults,omitempty"`
	Links               map[string]any                   `json:"_links,omitempty"`
}

// Duration is how long the build ran, zero until it has both started and finished
func (b *Build) Duration() time.Duration {
	if b.StartTime.IsZero() || b.FinishTime.IsZero() {
		return 0
	}
	return b.FinishTime.Sub(b.StartTime)
}

// BuildController is a XAML build controller
type BuildController struct {
	ID          int              `json:"id,omitempty"`
	Name        string           `json:"name,omitempty"`
	Description string           `json:"description,omitempty"`
	Enabled     bool             `json:"enabled,omitempty"`
	Status      ControllerStatus `json:"status"`
	CreatedDate time.Time        `json:"createdDate,omitzero"`
	UpdatedDate time.Time        `json:"updatedDate,omitzero"`
	URI         string           `json:"uri,omitempty"`
	URL         string           `json:"url,omitempty"`
	Links       map[string]any   `json:"_links,omitempty"`
}

// DefinitionReference is the shallow form of a definition
type DefinitionReference struct {
	ID          int                       `json:"id,omitempty"`
	Name        string                    `json:"name,omitempty"`
	Path        string                    `json:"path,omitempty"`
	Project     *api.TeamProjectReference `json:"project,omitempty"`
	QueueStatus DefinitionQueueStatus     `json:"queueStatus,omitempty"`
	Revision    int                       `json:"revision,omitempty"`
	Type        DefinitionType            `json:"type,omitempty"`
	CreatedDate time.Time                 `json:"createdDate,omitzero"`
	URI         string                    `json:"uri,omitempty"`
	URL         string                    `json:"url,omitempty"`
}

// BuildDefinitionReference is a definition as listed by GetDefinitions
type BuildDefinitionReference struct {
	DefinitionReference
	AuthoredBy           *api.IdentityRef      `json:"authoredBy,omitempty"`
	DraftOf              *DefinitionReference  `json:"draftOf,omitempty"`
	Drafts               []DefinitionReference `json:"drafts,omitempty"`
	LatestBuild          *Build                `json:"latestBuild,omitempty"`
	LatestCompletedBuild *Build                `json:"latestCompletedBuild,omitempty"`
	Metrics              []BuildMetric         `json:"metrics,omitempty"`
	Quality              DefinitionQuality     `json:"quality,omitempty"`
	Queue                *AgentPoolQueue       `json:"queue,omitempty"`
	Links                map[string]any        `json:"_links,omitempty"`
}

// BuildDefinitionVariable is a variable defined on a definition
type BuildDefinitionVariable struct {
	Value         string `json:"value,omitempty"`
	AllowOverride bool   `json:"allowOverride,omitempty"`
	IsSecret      bool   `json:"isSecret,omitempty"`
}

// BuildDefinition is a full definition. Process, triggers, options and retention
// rules vary by definition type and are kept as raw JSON so updates send back
// what the server returned.
type BuildDefinition struct {
	BuildDefinitionReference
	BadgeEnabled              bool                               `json:"badgeEnabled,omitempty"`
	Build                     []map[string]any                   `json:"build,omitempty"`
	BuildNumberFormat         string                             `json:"buildNumberFormat,omitempty"`
	Comment                   string                             `json:"comment,omitempty"`
	Demands                   []map[string]any                   `json:"demands,omitempty"`
	Description               string                             `json:"description,omitempty"`
	DropLocation              string                             `json:"dropLocation,omitempty"`
	JobAuthorizationScope     BuildAuthorizationScope            `json:"jobAuthorizationScope,omitempty"`
	JobCancelTimeoutInMinutes int                                `json:"jobCancelTimeoutInMinutes,omitempty"`
	JobTimeoutInMinutes       int                                `json:"jobTimeoutInMinutes,omitempty"`
	Options                   []map[string]any                   `json:"options,omitempty"`
	Process                   map[string]any                     `json:"process,omitempty"`
	ProcessParameters         map[string]any                     `json:"processParameters,omitempty"`
	Properties                map[string]any                     `json:"properties,omitempty"`
	Repository                *BuildRepository                   `json:"repository,omitempty"`
	RetentionRules            []map[string]any                   `json:"retentionRules,omitempty"`
	Tags                      []string                           `json:"tags,omitempty"`
	Triggers                  []map[string]any                   `json:"triggers,omitempty"`
	VariableGroups            []map[string]any                   `json:"variableGroups,omitempty"`
	Variables                 map[string]BuildDefinitionVariable `json:"variables,omitempty"`
}

// TriggerTypes reports the kinds of the definition's triggers. Entries whose
// triggerType is missing or unknown are skipped.
func (d *BuildDefinition) TriggerTypes() []DefinitionTriggerType {
	var out []DefinitionTriggerType
	for _, trigger := range d.Triggers {
		switch v := trigger["triggerType"].(type) {
		case string:
			if n, ok := serialization.EnumValue(DefinitionTriggerTypeEnum, v); ok {
				out = append(out, DefinitionTriggerType(n))
			}
		case float64:
			out = append(out, DefinitionTriggerType(int(v)))
		}
	}
	return out
}

// BuildDefinitionRevision records one saved change to a definition
type BuildDefinitionRevision struct {
	Revision      int              `json:"revision,omitempty"`
	Name          string           `json:"name,omitempty"`
	ChangedBy     *api.IdentityRef `json:"changedBy,omitempty"`
	ChangedDate   time.Time        `json:"changedDate,omitzero"`
	ChangeType    AuditAction      `json:"changeType,omitempty"`
	Comment       string           `json:"comment,omitempty"`
	DefinitionURL string           `json:"definitionUrl,omitempty"`
}

// BuildDefinitionTemplate is a starting point for new definitions
type BuildDefinitionTemplate struct {
	ID                 string            `json:"id,omitempty"`
	Name               string            `json:"name,omitempty"`
	Description        string            `json:"description,omitempty"`
	Category           string            `json:"category,omitempty"`
	CanDelete          bool              `json:"canDelete,omitempty"`
	DefaultHostedQueue string            `json:"defaultHostedQueue,omitempty"`
	IconTaskID         string            `json:"iconTaskId,omitempty"`
	Icons              map[string]string `json:"icons,omitempty"`
	Template           *BuildDefinition  `json:"template,omitempty"`
}

// BuildMetric is a named count, optionally scoped and dated
type BuildMetric struct {
	Name     string    `json:"name,omitempty"`
	Scope    string    `json:"scope,omitempty"`
	IntValue int       `json:"intValue,omitempty"`
	Date     time.Time `json:"date,omitzero"`
}

// BuildReportMetadata describes a build report
type BuildReportMetadata struct {
	BuildID int    `json:"buildId,omitempty"`
	Content string `json:"content,omitempty"`
	Type    string `json:"type,omitempty"`
}

// BuildResourceUsage reports pipeline and agent consumption for the collection
type BuildResourceUsage struct {
	DistributedTaskAgents int `json:"distributedTaskAgents,omitempty"`
	PaidPrivateAgentSlots int `json:"paidPrivateAgentSlots,omitempty"`
	TotalUsage            int `json:"totalUsage,omitempty"`
	XamlControllers       int `json:"xamlControllers,omitempty"`
}

type RetentionPolicy struct {
	Artifacts             []string `json:"artifacts,omitempty"`
	ArtifactTypesToDelete []string `json:"artifactTypesToDelete,omitempty"`
	Branches              []string `json:"branches,omitempty"`
	DaysToKeep            int      `json:"daysToKeep,omitempty"`
	DeleteBuildRecord     bool     `json:"deleteBuildRecord,omitempty"`
	DeleteTestResults     bool     `json:"deleteTestResults,omitempty"`
	MinimumToKeep         int      `json:"minimumToKeep,omitempty"`
}

// BuildSettings are the collection wide retention settings
type BuildSettings struct {
	DaysToKeepDeletedBuildsBeforeDestroy int              `json:"daysToKeepDeletedBuildsBeforeDestroy,omitempty"`
	DefaultRetentionPolicy               *RetentionPolicy `json:"defaultRetentionPolicy,omitempty"`
	MaximumRetentionPolicy               *RetentionPolicy `json:"maximumRetentionPolicy,omitempty"`
}

// Change is a commit or changeset associated with a build
type Change struct {
	ID               string           `json:"id,omitempty"`
	Author           *api.IdentityRef `json:"author,omitempty"`
	DisplayURI       string           `json:"displayUri,omitempty"`
	Location         string           `json:"location,omitempty"`
	Message          string           `json:"message,omitempty"`
	MessageTruncated bool             `json:"messageTruncated,omitempty"`
	Pusher           string           `json:"pusher,omitempty"`
	Timestamp        time.Time        `json:"timestamp,omitzero"`
	Type             string           `json:"type,omitempty"`
}

// Folder groups definitions under a path
type Folder struct {
	Path            string                    `json:"path,omitempty"`
	Description     string                    `json:"description,omitempty"`
	CreatedBy       *api.IdentityRef          `json:"createdBy,omitempty"`
	CreatedOn       time.Time                 `json:"createdOn,omitzero"`
	LastChangedBy   *api.IdentityRef          `json:"lastChangedBy,omitempty"`
	LastChangedDate time.Time                 `json:"lastChangedDate,omitzero"`
	Project         *api.TeamProjectReference `json:"project,omitempty"`
}

// Issue is an error or warning logged by a timeline record
type Issue struct {
	Category string            `json:"category,omitempty"`
	Data     map[string]string `json:"data,omitempty"`
	Message  string            `json:"message,omitempty"`
	Type     IssueType         `json:"type,omitempty"`
}

type TimelineReference struct {
	ChangeID int    `json:"changeId,omitempty"`
	ID       string `json:"id,omitempty"`
	URL      string `json:"url,omitempty"`
}

// TimelineRecord is one stage, job or task of a build
type TimelineRecord struct {
	ID               string              `json:"id,omitempty"`
	ParentID         string              `json:"parentId,omitempty"`
	Type             string              `json:"type,omitempty"`
	Name             string              `json:"name,omitempty"`
	Order            int                 `json:"order,omitempty"`
	ChangeID         int                 `json:"changeId,omitempty"`
	CurrentOperation string              `json:"currentOperation,omitempty"`
	Details          *TimelineReference  `json:"details,omitempty"`
	ErrorCount       int                 `json:"errorCount,omitempty"`
	WarningCount     int                 `json:"warningCount,omitempty"`
	FinishTime       time.Time           `json:"finishTime,omitzero"`
	StartTime        time.Time           `json:"startTime,omitzero"`
	LastModified     time.Time           `json:"lastModified,omitzero"`
	Issues           []Issue             `json:"issues,omitempty"`
	Log              *BuildLogReference  `json:"log,omitempty"`
	PercentComplete  int                 `json:"percentComplete,omitempty"`
	Result           *TaskResult         `json:"result,omitempty"`
	ResultCode       string              `json:"resultCode,omitempty"`
	State            TimelineRecordState `json:"state"`
	WorkerName       string              `json:"workerName,omitempty"`
	URL              string              `json:"url,omitempty"`
}

// Timeline is the tree of records describing a build's progress
type Timeline struct {
	TimelineReference
	LastChangedBy string           `json:"lastChangedBy,omitempty"`
	LastChangedOn time.Time        `json:"lastChangedOn,omitzero"`
	Records       []TimelineRecord `json:"records,omitempty"`
}

type BuildOptionGroupDefinition struct {
	DisplayName string `json:"displayName,omitempty"`
	IsExpanded  bool   `json:"isExpanded,omitempty"`
	Name        string `json:"name,omitempty"`
}

type BuildOptionInputDefinition struct {
	DefaultValue string               `json:"defaultValue,omitempty"`
	GroupName    string               `json:"groupName,omitempty"`
	Help         map[string]string    `json:"help,omitempty"`
	Label        string               `json:"label,omitempty"`
	Name         string               `json:"name,omitempty"`
	Options      map[string]string    `json:"options,omitempty"`
	Required     bool                 `json:"required,omitempty"`
	Type         BuildOptionInputType `json:"type"`
	VisibleRule  string               `json:"visibleRule,omitempty"`
}

// BuildOptionDefinition describes an option that can be enabled on a definition
type BuildOptionDefinition struct {
	ID          string                       `json:"id,omitempty"`
	Description string                       `json:"description,omitempty"`
	Groups      []BuildOptionGroupDefinition `json:"groups,omitempty"`
	Inputs      []BuildOptionInputDefinition `json:"inputs,omitempty"`
	Name        string                       `json:"name,omitempty"`
	Ordinal     int                          `json:"ordinal,omitempty"`
}

type SourceRepository struct {
	DefaultBranch      string            `json:"defaultBranch,omitempty"`
	FullName           string            `json:"fullName,omitempty"`
	ID                 string            `json:"id,omitempty"`
	Name               string            `json:"name,omitempty"`
	Properties         map[string]string `json:"properties,omitempty"`
	SourceProviderName string            `json:"sourceProviderName,omitempty"`
	URL                string            `json:"url,omitempty"`
}

// SourceRepositories is one page of repositories from a source provider
type SourceRepositories struct {
	ContinuationToken string             `json:"continuationToken,omitempty"`
	PageLength        int                `json:"pageLength,omitempty"`
	Repositories      []SourceRepository `json:"repositories,omitempty"`
	TotalPageCount    int                `json:"totalPageCount,omitempty"`
}

type SupportedTrigger struct {
	DefaultPollingInterval int                     `json:"defaultPollingInterval,omitempty"`
	NotificationType       string                  `json:"notificationType,omitempty"`
	SupportedCapabilities  map[string]SupportLevel `json:"supportedCapabilities,omitempty"`
	Type                   DefinitionTriggerType   `json:"type"`
}

// SourceProviderAttributes lists what a source provider can do
type SourceProviderAttributes struct {
	Name                  string             `json:"name,omitempty"`
	SupportedCapabilities map[string]bool    `json:"supportedCapabilities,omitempty"`
	SupportedTriggers     []SupportedTrigger `json:"supportedTriggers,omitempty"`
}

// RepositoryWebhook is a webhook a source provider delivers build triggers through
type RepositoryWebhook struct {
	Name  string                  `json:"name,omitempty"`
	Types []DefinitionTriggerType `json:"types,omitempty"`
	URL   string                  `json:"url,omitempty"`
}
