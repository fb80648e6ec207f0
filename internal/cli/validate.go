package cli

import (
	"errors"
	"fmt"

	"github.com/blimu-dev/devops-sdk/pkg/ir"
)

// RunValidate checks area description files, or the areas of the config's
// targets when paths is empty. Every file is checked; the errors are joined.
func RunValidate(g *Globals, paths []string) error {
	if len(paths) == 0 {
		cfg, err := g.LoadConfig(true)
		if err != nil {
			return err
		}
		seen := map[string]bool{}
		for _, t := range cfg.Targets {
			if !seen[t.Area] {
				seen[t.Area] = true
				paths = append(paths, t.Area)
			}
		}
		if len(paths) == 0 {
			return errors.New("config has no targets to validate")
		}
	}

	var errs []error
	for _, path := range paths {
		in, err := ir.Load(path)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		fmt.Fprintf(g.out(), "ok %s: area %s, %d operations\n", path, in.Area, len(in.Operations()))
	}
	return errors.Join(errs...)
}
