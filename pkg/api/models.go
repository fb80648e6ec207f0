package api

import (
	"time"

	"github.com/blimu-dev/devops-sdk/pkg/serialization"
)

// IdentityRef is a reference to a user or group
type IdentityRef struct {
	ID          string         `json:"id,omitempty"`
	DisplayName string         `json:"displayName,omitempty"`
	UniqueName  string         `json:"uniqueName,omitempty"`
	Descriptor  string         `json:"descriptor,omitempty"`
	ImageURL    string         `json:"imageUrl,omitempty"`
	URL         string         `json:"url,omitempty"`
	IsContainer bool           `json:"isContainer,omitempty"`
	Inactive    bool           `json:"inactive,omitempty"`
	Links       map[string]any `json:"_links,omitempty"`
}

// ResourceRef points at a resource in another area, typically a work item
type ResourceRef struct {
	ID  string `json:"id,omitempty"`
	URL string `json:"url,omitempty"`
}

// TeamProjectReference is the shallow form of a project
type TeamProjectReference struct {
	ID             string    `json:"id,omitempty"`
	Name           string    `json:"name,omitempty"`
	Abbreviation   string    `json:"abbreviation,omitempty"`
	Description    string    `json:"description,omitempty"`
	State          string    `json:"state,omitempty"`
	Visibility     string    `json:"visibility,omitempty"`
	Revision       int64     `json:"revision,omitempty"`
	LastUpdateTime time.Time `json:"lastUpdateTime,omitzero"`
	URL            string    `json:"url,omitempty"`
}

var TeamProjectReferenceTypeInfo = &serialization.TypeInfo{Fields: map[string]*serialization.FieldInfo{
	"lastUpdateTime": serialization.Date(),
}}

// Operation is a JSON patch verb
type Operation string

const (
	OperationAdd     Operation = "add"
	OperationRemove  Operation = "remove"
	OperationReplace Operation = "replace"
	OperationMove    Operation = "move"
	OperationCopy    Operation = "copy"
	OperationTest    Operation = "test"
)

// JSONPatchOperation is one RFC 6902 operation
type JSONPatchOperation struct {
	Op    Operation `json:"op"`
	Path  string    `json:"path"`
	From  string    `json:"from,omitempty"`
	Value any       `json:"value,omitempty"`
}

// JSONPatchDocument is sent with the application/json-patch+json content type
type JSONPatchDocument []JSONPatchOperation
