package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/blimu-dev/devops-sdk/pkg/config"
	"github.com/blimu-dev/devops-sdk/pkg/generator"
)

// GenerateParams selects what `generate` builds
type GenerateParams struct {
	// Target limits generation to one named target
	Target string
	// Watch regenerates whenever the config or an area description changes,
	// until ctx is done
	Watch bool
}

const watchDebounce = 200 * time.Millisecond

// RunGenerate generates the config's targets
func RunGenerate(ctx context.Context, g *Globals, p GenerateParams) error {
	path, err := g.configPath()
	if err != nil {
		return err
	}
	cfg, err := g.LoadConfig(true)
	if err != nil {
		return err
	}

	svc := generator.NewService()
	svc.SetLogger(g.logger())
	if err := svc.GenerateFromConfig(cfg, p.Target); err != nil {
		return err
	}
	if !p.Watch {
		return nil
	}
	return watch(ctx, g, svc, path, cfg, p.Target)
}

// watchedFiles is the config file plus the area files of the selected targets
func watchedFiles(path string, cfg *config.Config, onlyTarget string) (map[string]bool, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	files := map[string]bool{abs: true}
	for _, t := range cfg.Targets {
		if onlyTarget == "" || t.Name == onlyTarget {
			files[filepath.Clean(t.Area)] = true
		}
	}
	return files, nil
}

// watch follows the directories holding the watched files, since editors often
// replace a file instead of writing it in place
func watch(ctx context.Context, g *Globals, svc *generator.Service, path string, cfg *config.Config, onlyTarget string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = w.Close() }()

	files, err := watchedFiles(path, cfg, onlyTarget)
	if err != nil {
		return err
	}
	dirs := map[string]bool{}
	for f := range files {
		dir := filepath.Dir(f)
		if dirs[dir] {
			continue
		}
		if err := w.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		dirs[dir] = true
	}
	logger := g.logger()
	logger.Info("watching for changes", "files", len(files))

	timer := time.NewTimer(watchDebounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !files[filepath.Clean(event.Name)] || !event.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			logger.Debug("change detected", "file", event.Name, "op", event.Op.String())
			timer.Reset(watchDebounce)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("error watching files", "err", err)
		case <-timer.C:
			next, err := config.Load(path)
			if err != nil {
				logger.Error("failed to reload config", "err", err)
				continue
			}
			if err := svc.GenerateFromConfig(next, onlyTarget); err != nil {
				logger.Error("generation failed", "err", err)
				continue
			}
			// a target may now read a different area file
			if updated, err := watchedFiles(path, next, onlyTarget); err == nil {
				for f := range updated {
					if dir := filepath.Dir(f); !dirs[dir] && w.Add(dir) == nil {
						dirs[dir] = true
					}
				}
				files = updated
			}
		}
	}
}
