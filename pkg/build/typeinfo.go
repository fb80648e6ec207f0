package build

import (
	"github.com/blimu-dev/devops-sdk/pkg/api"
	"github.com/blimu-dev/devops-sdk/pkg/serialization"
)

var (
	AuditActionEnum = &serialization.TypeInfo{EnumValues: map[string]int{
		"add":    1,
		"update": 2,
		"delete": 3,
	}}
	BuildAuthorizationScopeEnum = &serialization.TypeInfo{EnumValues: map[string]int{
		"projectCollection": 1,
		"project":           2,
	}}
	BuildOptionInputTypeEnum = &serialization.TypeInfo{EnumValues: map[string]int{
		"string":       0,
		"boolean":      1,
		"stringList":   2,
		"radio":        3,
		"pickList":     4,
		"multiLine":    5,
		"branchFilter": 6,
	}}
	BuildQueryOrderEnum = &serialization.TypeInfo{EnumValues: map[string]int{
		"finishTimeAscending":  2,
		"finishTimeDescending": 3,
		"queueTimeDescending":  4,
		"queueTimeAscending":   5,
		"startTimeDescending":  6,
		"startTimeAscending":   7,
	}}
	BuildReasonEnum = &serialization.TypeInfo{EnumValues: map[string]int{
		"none":              0,
		"manual":            1,
		"individualCI":      2,
		"batchedCI":         4,
		"schedule":          8,
		"userCreated":       32,
		"validateShelveset": 64,
		"checkInShelveset":  128,
		"pullRequest":       256,
		"buildCompletion":   512,
		"triggered":         943,
		"all":               1023,
	}}
	BuildResultEnum = &serialization.TypeInfo{EnumValues: map[string]int{
		"none":               0,
		"succeeded":          2,
		"partiallySucceeded": 4,
		"failed":             8,
		"canceled":           32,
	}}
	BuildStatusEnum = &serialization.TypeInfo{EnumValues: map[string]int{
		"none":       0,
		"inProgress": 1,
		"completed":  2,
		"cancelling": 4,
		"postponed":  8,
		"notStarted": 32,
		"all":        47,
	}}
	ControllerStatusEnum = &serialization.TypeInfo{EnumValues: map[string]int{
		"unavailable": 0,
		"available":   1,
		"offline":     2,
	}}
	DefinitionQualityEnum = &serialization.TypeInfo{EnumValues: map[string]int{
		"definition": 1,
		"draft":      2,
	}}
	DefinitionQueryOrderEnum = &serialization.TypeInfo{EnumValues: map[string]int{
		"none":                     0,
		"lastModifiedAscending":    1,
		"lastModifiedDescending":   2,
		"definitionNameAscending":  3,
		"definitionNameDescending": 4,
	}}
	DefinitionQueueStatusEnum = &serialization.TypeInfo{EnumValues: map[string]int{
		"enabled":  0,
		"paused":   1,
		"disabled": 2,
	}}
	DefinitionTriggerTypeEnum = &serialization.TypeInfo{EnumValues: map[string]int{
		"none":                         1,
		"continuousIntegration":        2,
		"batchedContinuousIntegration": 4,
		"schedule":                     8,
		"gatedCheckIn":                 16,
		"batchedGatedCheckIn":          32,
		"pullRequest":                  64,
		"buildCompletion":              128,
		"all":                          255,
	}}
	DefinitionTypeEnum = &serialization.TypeInfo{EnumValues: map[string]int{
		"xaml":  1,
		"build": 2,
	}}
	FolderQueryOrderEnum = &serialization.TypeInfo{EnumValues: map[string]int{
		"none":             0,
		"folderAscending":  1,
		"folderDescending": 2,
	}}
	IssueTypeEnum = &serialization.TypeInfo{EnumValues: map[string]int{
		"error":   1,
		"warning": 2,
	}}
	QueryDeletedOptionEnum = &serialization.TypeInfo{EnumValues: map[string]int{
		"excludeDeleted": 0,
		"includeDeleted": 1,
		"onlyDeleted":    2,
	}}
	QueueOptionsEnum = &serialization.TypeInfo{EnumValues: map[string]int{
		"none":     0,
		"doNotRun": 1,
	}}
	QueuePriorityEnum = &serialization.TypeInfo{EnumValues: map[string]int{
		"low":         5,
		"belowNormal": 4,
		"normal":      3,
		"aboveNormal": 2,
		"high":        1,
	}}
	SupportLevelEnum = &serialization.TypeInfo{EnumValues: map[string]int{
		"unsupported": 0,
		"supported":   1,
		"required":    2,
	}}
	TaskResultEnum = &serialization.TypeInfo{EnumValues: map[string]int{
		"succeeded":           0,
		"succeededWithIssues": 1,
		"failed":              2,
		"canceled":            3,
		"skipped":             4,
		"abandoned":           5,
	}}
	TimelineRecordStateEnum = &serialization.TypeInfo{EnumValues: map[string]int{
		"pending":    0,
		"inProgress": 1,
		"completed":  2,
	}}
	ValidationResultEnum = &serialization.TypeInfo{EnumValues: map[string]int{
		"ok":      0,
		"warning": 1,
		"error":   2,
	}}
)

// Type info for the contracts whose payloads carry dates or enum names. The
// fields are filled in init because several contracts refer to each other.
var (
	BuildTypeInfo                        = &serialization.TypeInfo{}
	BuildControllerTypeInfo              = &serialization.TypeInfo{}
	BuildDefinitionTypeInfo              = &serialization.TypeInfo{}
	BuildDefinitionReferenceTypeInfo     = &serialization.TypeInfo{}
	BuildDefinitionRevisionTypeInfo      = &serialization.TypeInfo{}
	BuildDefinitionTemplateTypeInfo      = &serialization.TypeInfo{}
	BuildLogTypeInfo                     = &serialization.TypeInfo{}
	BuildMetricTypeInfo                  = &serialization.TypeInfo{}
	BuildOptionDefinitionTypeInfo        = &serialization.TypeInfo{}
	BuildOptionInputDefinitionTypeInfo   = &serialization.TypeInfo{}
	BuildRequestValidationResultTypeInfo = &serialization.TypeInfo{}
	ChangeTypeInfo                       = &serialization.TypeInfo{}
	DefinitionReferenceTypeInfo          = &serialization.TypeInfo{}
	FolderTypeInfo                       = &serialization.TypeInfo{}
	IssueTypeInfo                        = &serialization.TypeInfo{}
	RepositoryWebhookTypeInfo            = &serialization.TypeInfo{}
	SourceProviderAttributesTypeInfo     = &serialization.TypeInfo{}
	SupportedTriggerTypeInfo             = &serialization.TypeInfo{}
	TimelineTypeInfo                     = &serialization.TypeInfo{}
	TimelineRecordTypeInfo               = &serialization.TypeInfo{}
)

func init() {
	BuildControllerTypeInfo.Fields = map[string]*serialization.FieldInfo{
		"createdDate": serialization.Date(),
		"status":      serialization.Enum(ControllerStatusEnum),
		"updatedDate": serialization.Date(),
	}
	DefinitionReferenceTypeInfo.Fields = map[string]*serialization.FieldInfo{
		"createdDate": serialization.Date(),
		"project":     serialization.Object(api.TeamProjectReferenceTypeInfo),
		"queueStatus": serialization.Enum(DefinitionQueueStatusEnum),
		"type":        serialization.Enum(DefinitionTypeEnum),
	}
	BuildRequestValidationResultTypeInfo.Fields = map[string]*serialization.FieldInfo{
		"result": serialization.Enum(ValidationResultEnum),
	}
	BuildTypeInfo.Fields = map[string]*serialization.FieldInfo{
		"controller":        serialization.Object(BuildControllerTypeInfo),
		"definition":        serialization.Object(DefinitionReferenceTypeInfo),
		"deletedDate":       serialization.Date(),
		"finishTime":        serialization.Date(),
		"lastChangedDate":   serialization.Date(),
		"priority":          serialization.Enum(QueuePriorityEnum),
		"project":           serialization.Object(api.TeamProjectReferenceTypeInfo),
		"queueOptions":      serialization.Enum(QueueOptionsEnum),
		"queueTime":         serialization.Date(),
		"reason":            serialization.Enum(BuildReasonEnum),
		"result":            serialization.Enum(BuildResultEnum),
		"startTime":         serialization.Date(),
		"status":            serialization.Enum(BuildStatusEnum),
		"triggeredByBuild":  serialization.Object(BuildTypeInfo),
		"validationResults": serialization.ArrayOf(BuildRequestValidationResultTypeInfo),
	}
	BuildMetricTypeInfo.Fields = map[string]*serialization.FieldInfo{
		"date": serialization.Date(),
	}
	BuildOptionInputDefinitionTypeInfo.Fields = map[string]*serialization.FieldInfo{
		"type": serialization.Enum(BuildOptionInputTypeEnum),
	}
	BuildOptionDefinitionTypeInfo.Fields = map[string]*serialization.FieldInfo{
		"inputs": serialization.ArrayOf(BuildOptionInputDefinitionTypeInfo),
	}
	BuildDefinitionReferenceTypeInfo.Fields = serialization.Extends(DefinitionReferenceTypeInfo, map[string]*serialization.FieldInfo{
		"draftOf":              serialization.Object(DefinitionReferenceTypeInfo),
		"drafts":               serialization.ArrayOf(DefinitionReferenceTypeInfo),
		"latestBuild":          serialization.Object(BuildTypeInfo),
		"latestCompletedBuild": serialization.Object(BuildTypeInfo),
		"metrics":              serialization.ArrayOf(BuildMetricTypeInfo),
		"quality":              serialization.Enum(DefinitionQualityEnum),
	}).Fields
	BuildDefinitionTypeInfo.Fields = serialization.Extends(BuildDefinitionReferenceTypeInfo, map[string]*serialization.FieldInfo{
		"jobAuthorizationScope": serialization.Enum(BuildAuthorizationScopeEnum),
	}).Fields
	BuildDefinitionRevisionTypeInfo.Fields = map[string]*serialization.FieldInfo{
		"changedDate": serialization.Date(),
		"changeType":  serialization.Enum(AuditActionEnum),
	}
	BuildDefinitionTemplateTypeInfo.Fields = map[string]*serialization.FieldInfo{
		"template": serialization.Object(BuildDefinitionTypeInfo),
	}
	BuildLogTypeInfo.Fields = map[string]*serialization.FieldInfo{
		"createdOn":     serialization.Date(),
		"lastChangedOn": serialization.Date(),
	}
	ChangeTypeInfo.Fields = map[string]*serialization.FieldInfo{
		"timestamp": serialization.Date(),
	}
	FolderTypeInfo.Fields = map[string]*serialization.FieldInfo{
		"createdOn":       serialization.Date(),
		"lastChangedDate": serialization.Date(),
		"project":         serialization.Object(api.TeamProjectReferenceTypeInfo),
	}
	IssueTypeInfo.Fields = map[string]*serialization.FieldInfo{
		"type": serialization.Enum(IssueTypeEnum),
	}
	RepositoryWebhookTypeInfo.Fields = map[string]*serialization.FieldInfo{
		"types": serialization.EnumArray(DefinitionTriggerTypeEnum),
	}
	SupportedTriggerTypeInfo.Fields = map[string]*serialization.FieldInfo{
		"supportedCapabilities": {
			IsDictionary:            true,
			DictionaryValueEnumType: SupportLevelEnum,
		},
		"type": serialization.Enum(DefinitionTriggerTypeEnum),
	}
	SourceProviderAttributesTypeInfo.Fields = map[string]*serialization.FieldInfo{
		"supportedTriggers": serialization.ArrayOf(SupportedTriggerTypeInfo),
	}
	TimelineRecordTypeInfo.Fields = map[string]*serialization.FieldInfo{
		"finishTime":   serialization.Date(),
		"issues":       serialization.ArrayOf(IssueTypeInfo),
		"lastModified": serialization.Date(),
		"result":       serialization.Enum(TaskResultEnum),
		"startTime":    serialization.Date(),
		"state":        serialization.Enum(TimelineRecordStateEnum),
	}
	TimelineTypeInfo.Fields = map[string]*serialization.FieldInfo{
		"lastChangedOn": serialization.Date(),
		"records":       serialization.ArrayOf(TimelineRecordTypeInfo),
	}
}
