package openapi

import (
	"fmt"
	"net/http"
	"regexp"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/getkin/kin-openapi/openapi3"

	"github.com/blimu-dev/devops-sdk/pkg/ir"
	"github.com/blimu-dev/devops-sdk/pkg/utils"
)

var routeKeyPattern = regexp.MustCompile(`\{\*?([^}]+)\}`)

// Export describes an area as an OpenAPI 3 document.
//
// Route templates become paths, so every template key is a required path
// parameter. Operation ids are the camelCase REST names ("getBuild") and
// x-go-name holds the generated method name. Operations sharing a method and
// route are merged into the first one, with the others listed under
// x-devops-overloads.
func Export(in ir.IR) *openapi3.T {
	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:   in.Area + " API",
			Version: latestVersion(in.Operations()),
		},
		Paths: openapi3.NewPaths(),
		Components: &openapi3.Components{
			Schemas:         openapi3.Schemas{},
			SecuritySchemes: openapi3.SecuritySchemes{},
		},
		Security: openapi3.SecurityRequirements{{"basic": []string{}}, {"bearer": []string{}}},
	}
	if in.ResourceAreaID != "" {
		doc.Info.Extensions = map[string]any{"x-devops-resource-area-id": in.ResourceAreaID}
	}
	doc.Components.SecuritySchemes["basic"] = &openapi3.SecuritySchemeRef{Value: openapi3.NewSecurityScheme().WithType("http").WithScheme("basic")}
	doc.Components.SecuritySchemes["bearer"] = &openapi3.SecuritySchemeRef{Value: openapi3.NewJWTSecurityScheme()}

	for _, s := range in.Services {
		doc.Tags = append(doc.Tags, &openapi3.Tag{Name: s.Tag})
		for _, op := range s.Operations {
			addOperation(doc, op)
		}
	}
	return doc
}

func addOperation(doc *openapi3.T, op ir.IROperation) {
	path := "/" + routeKeyPattern.ReplaceAllString(op.RouteTemplate, "{$1}")
	item := doc.Paths.Value(path)
	if item == nil {
		item = &openapi3.PathItem{}
		doc.Paths.Set(path, item)
	}

	method := strings.ToUpper(op.Method)
	if existing := item.GetOperation(method); existing != nil {
		mergeOverload(doc, existing, op)
		return
	}

	operation := openapi3.NewOperation()
	operation.OperationID = utils.ToCamelCase(op.Name)
	operation.Summary = op.Description
	operation.Tags = op.Tags
	operation.Extensions = map[string]any{
		"x-go-name":            op.Name,
		"x-devops-location-id": op.LocationID,
		"x-devops-api-version": op.APIVersion,
	}

	paramTypes := map[string]ir.IRParam{}
	for _, p := range op.RouteParams() {
		paramTypes[p.Name] = p
	}
	for _, m := range routeKeyPattern.FindAllStringSubmatch(op.RouteTemplate, -1) {
		p, ok := paramTypes[m[1]]
		if !ok {
			p = ir.IRParam{Name: m[1], Type: "string"}
		}
		param := openapi3.NewPathParameter(m[1])
		param.Schema = schemaFor(doc, p.Type)
		param.Description = p.Description
		operation.AddParameter(param)
	}
	for _, p := range op.QueryParams() {
		operation.AddParameter(queryParameter(doc, p))
	}

	if op.Body != nil {
		contentType := op.ContentType
		if contentType == "" {
			contentType = "application/json"
		}
		body := openapi3.NewRequestBody().
			WithDescription(op.Body.Description).
			WithRequired(true).
			WithContent(openapi3.NewContentWithSchemaRef(schemaFor(doc, op.Body.Type), []string{contentType}))
		operation.RequestBody = &openapi3.RequestBodyRef{Value: body}
	}

	operation.AddResponse(http.StatusOK, responseFor(doc, op))
	item.SetOperation(method, operation)
}

func mergeOverload(doc *openapi3.T, existing *openapi3.Operation, op ir.IROperation) {
	overloads, _ := existing.Extensions["x-devops-overloads"].([]string)
	existing.Extensions["x-devops-overloads"] = append(overloads, utils.ToCamelCase(op.Name))
	for _, p := range op.QueryParams() {
		if existing.Parameters.GetByInAndName(openapi3.ParameterInQuery, p.Name) == nil {
			existing.AddParameter(queryParameter(doc, p))
		}
	}
	// an overload may answer with a different media type, e.g. a zip download
	resp := existing.Responses.Status(http.StatusOK)
	if resp == nil || resp.Value == nil {
		return
	}
	for mediaType, content := range responseFor(doc, op).Content {
		if resp.Value.Content == nil {
			resp.Value.Content = openapi3.Content{}
		}
		if _, ok := resp.Value.Content[mediaType]; !ok {
			resp.Value.Content[mediaType] = content
		}
	}
}

func queryParameter(doc *openapi3.T, p ir.IRParam) *openapi3.Parameter {
	typ := p.Type
	if typ == "" {
		typ = "string"
	}
	param := openapi3.NewQueryParameter(p.Name)
	param.Schema = schemaFor(doc, typ)
	param.Description = p.Description
	if strings.HasPrefix(strings.TrimPrefix(typ, "*"), "[]") {
		// lists are sent comma separated
		explode := false
		param.Explode = &explode
	}
	return param
}

func responseFor(doc *openapi3.T, op ir.IROperation) *openapi3.Response {
	resp := openapi3.NewResponse().WithDescription("Success")
	switch {
	case op.Response.Stream:
		accept := op.Accept
		if accept == "" {
			accept = "application/octet-stream"
		}
		resp.WithContent(openapi3.NewContentWithSchema(openapi3.NewStringSchema().WithFormat("binary"), []string{accept}))
	case op.Response.Type != "":
		schema := schemaFor(doc, op.Response.Type)
		if op.Response.Collection {
			schema = openapi3.NewObjectSchema().
				WithProperty("count", openapi3.NewInt32Schema()).
				WithPropertyRef("value", schema).
				NewRef()
		}
		resp.WithJSONSchemaRef(schema)
	}
	return resp
}

// schemaFor maps a Go type expression to a schema. Named types become
// component references; their component is an open object since area
// descriptions do not describe model fields.
func schemaFor(doc *openapi3.T, goType string) *openapi3.SchemaRef {
	goType = strings.TrimPrefix(goType, "*")
	switch {
	case strings.HasPrefix(goType, "[]"):
		schema := openapi3.NewArraySchema()
		schema.Items = schemaFor(doc, goType[2:])
		return schema.NewRef()
	case strings.HasPrefix(goType, "map[string]"):
		return openapi3.NewObjectSchema().WithAnyAdditionalProperties().NewRef()
	}

	switch goType {
	case "string":
		return openapi3.NewStringSchema().NewRef()
	case "int", "int32":
		return openapi3.NewInt32Schema().NewRef()
	case "int64":
		return openapi3.NewInt64Schema().NewRef()
	case "float32", "float64":
		return openapi3.NewFloat64Schema().NewRef()
	case "bool":
		return openapi3.NewBoolSchema().NewRef()
	case "time.Time":
		return openapi3.NewDateTimeSchema().NewRef()
	case "any":
		return openapi3.NewSchema().NewRef()
	}

	name := goType
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	component, ok := doc.Components.Schemas[name]
	if !ok {
		component = openapi3.NewObjectSchema().WithAnyAdditionalProperties().NewRef()
		component.Value.Extensions = map[string]any{"x-go-type": goType}
		doc.Components.Schemas[name] = component
	}
	return openapi3.NewSchemaRef("#/components/schemas/"+name, component.Value)
}

// latestVersion returns the highest api version the area's operations request
func latestVersion(ops []ir.IROperation) string {
	var versions []*semver.Version
	raw := map[*semver.Version]string{}
	for _, op := range ops {
		v, err := semver.NewVersion(op.APIVersion)
		if err != nil {
			continue
		}
		versions = append(versions, v)
		raw[v] = op.APIVersion
	}
	if len(versions) == 0 {
		return "1.0"
	}
	sort.Sort(semver.Collection(versions))
	return raw[versions[len(versions)-1]]
}

// Operations lists the operation ids in doc, sorted
func Operations(doc *openapi3.T) []string {
	var ids []string
	for _, item := range doc.Paths.Map() {
		for _, op := range item.Operations() {
			ids = append(ids, op.OperationID)
		}
	}
	sort.Strings(ids)
	return ids
}

// Describe summarises doc for logs
func Describe(doc *openapi3.T) string {
	return fmt.Sprintf("%s %s: %d paths, %d schemas", doc.Info.Title, doc.Info.Version, doc.Paths.Len(), len(doc.Components.Schemas))
}
