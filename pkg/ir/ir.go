// Package ir holds the intermediate representation the generators render: one
// area of the service API, its operations grouped into services by tag.
package ir

import "strings"

// IR represents one area description
type IR struct {
	Area           string `yaml:"area"`
	Package        string `yaml:"package"`
	ResourceAreaID string `yaml:"resourceAreaId"`
	UserAgent      string `yaml:"userAgent"`
	// Source is the path the description was loaded from
	Source string `yaml:"-"`
	// Module is the import path of the SDK generated code belongs to
	Module   string      `yaml:"-"`
	Services []IRService `yaml:"-"`
}

// IRService represents a group of operations, grouped by first tag
type IRService struct {
	Tag        string
	Operations []IROperation
}

// IROperation represents a single generated method
type IROperation struct {
	Name          string   `yaml:"name"`
	Description   string   `yaml:"description"`
	Tags          []string `yaml:"tags"`
	Method        string   `yaml:"method"`
	LocationID    string   `yaml:"locationId"`
	APIVersion    string   `yaml:"apiVersion"`
	RouteTemplate string   `yaml:"routeTemplate"`
	// Body is the request payload argument, nil when the request has none
	Body *IRField `yaml:"body"`
	// Fields are extra argument fields that are neither route nor query values
	Fields   []IRField  `yaml:"fields"`
	Params   []IRParam  `yaml:"params"`
	Response IRResponse `yaml:"response"`
	// Accept and ContentType override the JSON defaults
	Accept        string `yaml:"accept"`
	ContentType   string `yaml:"contentType"`
	CustomHeaders bool   `yaml:"customHeaders"`
	// LegacyWhenTFS skips version negotiation against on-premises servers
	LegacyWhenTFS bool `yaml:"legacyWhenTFS"`
	// TFSQuery replaces the query values entirely against on-premises servers
	TFSQuery map[string]string `yaml:"tfsQuery"`
}

// Param locations
const (
	InRoute = "route"
	InQuery = "query"
)

// IRParam represents a route or query value
type IRParam struct {
	// Name is the wire name substituted into the route template or query string
	Name        string `yaml:"name"`
	In          string `yaml:"in"`
	Type        string `yaml:"type"`
	Description string `yaml:"description"`
	// Value is a Go expression used instead of an argument field
	Value string `yaml:"value"`
	// TFSOnly route values are only sent to on-premises servers
	TFSOnly bool `yaml:"tfsOnly"`
}

// IRField represents an argument struct field
type IRField struct {
	Field       string `yaml:"field"`
	Type        string `yaml:"type"`
	Description string `yaml:"description"`
}

// IRResponse describes what the method returns
type IRResponse struct {
	// Type is the Go result type, empty for methods that only return an error
	Type string `yaml:"type"`
	// TypeInfo names the serialization.TypeInfo variable that coerces the result
	TypeInfo   string `yaml:"typeInfo"`
	Collection bool   `yaml:"collection"`
	// Stream returns the raw body as an io.ReadCloser
	Stream bool `yaml:"stream"`
}

// Operations returns every operation in service order
func (in IR) Operations() []IROperation {
	var out []IROperation
	for _, s := range in.Services {
		out = append(out, s.Operations...)
	}
	return out
}

// Tag returns the operation's primary tag
func (op IROperation) Tag() string {
	if len(op.Tags) == 0 {
		return "misc"
	}
	return op.Tags[0]
}

// RouteParams returns the route values always sent
func (op IROperation) RouteParams() []IRParam {
	var out []IRParam
	for _, p := range op.Params {
		if p.In == InRoute && !p.TFSOnly {
			out = append(out, p)
		}
	}
	return out
}

// TFSRouteParams returns the route values only sent to on-premises servers
func (op IROperation) TFSRouteParams() []IRParam {
	var out []IRParam
	for _, p := range op.Params {
		if p.In == InRoute && p.TFSOnly {
			out = append(out, p)
		}
	}
	return out
}

// QueryParams returns the query values
func (op IROperation) QueryParams() []IRParam {
	var out []IRParam
	for _, p := range op.Params {
		if p.In == InQuery {
			out = append(out, p)
		}
	}
	return out
}

// IsPointer reports whether the Go type is a pointer, slice or map and may be nil
func (p IRParam) IsPointer() bool {
	return strings.HasPrefix(p.Type, "*") || strings.HasPrefix(p.Type, "[]") || strings.HasPrefix(p.Type, "map[")
}
