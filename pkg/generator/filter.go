package generator

import (
	"fmt"
	"regexp"

	"github.com/blimu-dev/devops-sdk/pkg/config"
	"github.com/blimu-dev/devops-sdk/pkg/ir"
)

// filterIR keeps the operations of in that pass the target's tag filters.
// Services left without operations are dropped.
func filterIR(in ir.IR, target config.Target) (ir.IR, error) {
	include, exclude, err := compileTagFilters(target.IncludeTags, target.ExcludeTags)
	if err != nil {
		return ir.IR{}, err
	}
	if len(include) == 0 && len(exclude) == 0 {
		return in, nil
	}

	filtered := in
	filtered.Services = make([]ir.IRService, 0, len(in.Services))
	for _, service := range in.Services {
		ops := make([]ir.IROperation, 0, len(service.Operations))
		for _, op := range service.Operations {
			tags := op.Tags
			if len(tags) == 0 {
				tags = []string{op.Tag()}
			}
			if shouldIncludeOperation(tags, include, exclude) {
				ops = append(ops, op)
			}
		}
		if len(ops) > 0 {
			service.Operations = ops
			filtered.Services = append(filtered.Services, service)
		}
	}
	return filtered, nil
}

// compileTagFilters compiles regex patterns for tag filtering
func compileTagFilters(include, exclude []string) ([]*regexp.Regexp, []*regexp.Regexp, error) {
	inc := make([]*regexp.Regexp, 0, len(include))
	for _, p := range include {
		r, err := regexp.Compile(p)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid includeTags pattern %q: %w", p, err)
		}
		inc = append(inc, r)
	}
	exc := make([]*regexp.Regexp, 0, len(exclude))
	for _, p := range exclude {
		r, err := regexp.Compile(p)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid excludeTags pattern %q: %w", p, err)
		}
		exc = append(exc, r)
	}
	return inc, exc, nil
}

// shouldIncludeOperation reports whether any tag matches an include pattern
// (or there are none) and no tag matches an exclude pattern
func shouldIncludeOperation(tags []string, include, exclude []*regexp.Regexp) bool {
	if len(include) > 0 && !anyMatch(tags, include) {
		return false
	}
	return !anyMatch(tags, exclude)
}

func anyMatch(tags []string, patterns []*regexp.Regexp) bool {
	for _, tag := range tags {
		for _, r := range patterns {
			if r.MatchString(tag) {
				return true
			}
		}
	}
	return false
}
