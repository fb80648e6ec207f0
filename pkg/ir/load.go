package ir

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

var (
	apiVersionPattern = regexp.MustCompile(`^\d+\.\d+(-preview(\.\d+)?)?$`)
	routeKeyPattern   = regexp.MustCompile(`\{\*?([^}]+)\}`)
	goIdentPattern    = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

var httpMethods = map[string]bool{
	"GET":    true,
	"POST":   true,
	"PUT":    true,
	"PATCH":  true,
	"DELETE": true,
}

// document is the on-disk shape of an area description
type document struct {
	IR         `yaml:",inline"`
	Operations []IROperation `yaml:"operations"`
}

// Load reads and validates the area description at path
func Load(path string) (IR, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return IR{}, err
	}
	in, err := Parse(data)
	if err != nil {
		return IR{}, fmt.Errorf("%s: %w", path, err)
	}
	in.Source = path
	return in, nil
}

// Parse decodes and validates an area description, grouping its operations
// into services by first tag in order of appearance
func Parse(data []byte) (IR, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var doc document
	if err := dec.Decode(&doc); err != nil {
		return IR{}, fmt.Errorf("failed to parse area description: %w", err)
	}
	if err := validate(&doc); err != nil {
		return IR{}, err
	}

	in := doc.IR
	index := map[string]int{}
	for _, op := range doc.Operations {
		tag := op.Tag()
		i, ok := index[tag]
		if !ok {
			i = len(in.Services)
			index[tag] = i
			in.Services = append(in.Services, IRService{Tag: tag})
		}
		in.Services[i].Operations = append(in.Services[i].Operations, op)
	}
	return in, nil
}

func validate(doc *document) error {
	var missing []string
	if doc.Area == "" {
		missing = append(missing, "area")
	}
	if doc.Package == "" {
		missing = append(missing, "package")
	}
	if len(missing) > 0 {
		return fmt.Errorf("area description missing required fields (%s)", strings.Join(missing, ", "))
	}
	if doc.ResourceAreaID != "" {
		if _, err := uuid.Parse(doc.ResourceAreaID); err != nil {
			return fmt.Errorf("invalid resourceAreaId %q: %w", doc.ResourceAreaID, err)
		}
	}
	if len(doc.Operations) == 0 {
		return errors.New("area description has no operations")
	}

	names := map[string]bool{}
	var errs []error
	for i := range doc.Operations {
		op := &doc.Operations[i]
		if err := validateOperation(op); err != nil {
			errs = append(errs, fmt.Errorf("operations[%d] %s: %w", i, op.Name, err))
			continue
		}
		if names[op.Name] {
			errs = append(errs, fmt.Errorf("operations[%d] duplicate operation name %s", i, op.Name))
		}
		names[op.Name] = true
	}
	return errors.Join(errs...)
}

func validateOperation(op *IROperation) error {
	var missing []string
	for _, f := range []struct{ name, value string }{
		{"name", op.Name},
		{"method", op.Method},
		{"locationId", op.LocationID},
		{"apiVersion", op.APIVersion},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required fields (%s)", strings.Join(missing, ", "))
	}

	if !goIdentPattern.MatchString(op.Name) {
		return fmt.Errorf("name %q is not a Go identifier", op.Name)
	}
	op.Method = strings.ToUpper(op.Method)
	if !httpMethods[op.Method] {
		return fmt.Errorf("unsupported method %s", op.Method)
	}
	if _, err := uuid.Parse(op.LocationID); err != nil {
		return fmt.Errorf("invalid locationId %q: %w", op.LocationID, err)
	}
	if !apiVersionPattern.MatchString(op.APIVersion) {
		return fmt.Errorf("invalid apiVersion %q", op.APIVersion)
	}
	if op.Response.Stream && op.Response.Type != "" {
		return errors.New("response cannot be both a stream and a typed value")
	}
	if op.Body != nil && (op.Body.Field == "" || op.Body.Type == "") {
		return errors.New("body missing required fields (field, type)")
	}

	routeKeys := map[string]bool{}
	for _, m := range routeKeyPattern.FindAllStringSubmatch(op.RouteTemplate, -1) {
		routeKeys[m[1]] = true
	}
	seen := map[string]bool{}
	for j, p := range op.Params {
		switch {
		case p.Name == "":
			return fmt.Errorf("params[%d] missing name", j)
		case p.In != InRoute && p.In != InQuery:
			return fmt.Errorf("params[%d] %s: in must be %s or %s, got %q", j, p.Name, InRoute, InQuery, p.In)
		case p.Type == "" && p.Value == "":
			return fmt.Errorf("params[%d] %s: one of type or value is required", j, p.Name)
		case p.TFSOnly && (p.In != InRoute || p.Value == ""):
			return fmt.Errorf("params[%d] %s: tfsOnly requires a route value", j, p.Name)
		case p.In == InRoute && op.RouteTemplate != "" && !routeKeys[p.Name]:
			return fmt.Errorf("params[%d] %s: not in route template %s", j, p.Name, op.RouteTemplate)
		}
		key := p.In + ":" + p.Name
		if seen[key] {
			return fmt.Errorf("params[%d] duplicate %s value %s", j, p.In, p.Name)
		}
		seen[key] = true
	}
	return nil
}
