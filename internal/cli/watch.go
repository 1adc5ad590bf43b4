package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/example/optgen/internal/generator"
	"github.com/fsnotify/fsnotify"
)

// watchInput regenerates the output every time the input file is written or
// recreated. The input's directory is watched rather than the file itself so
// that editors replacing the file atomically are still noticed. Failed runs
// are logged and watching continues.
func watchInput(ctx context.Context, config *GenerateConfig, gen *generator.Generator, env *Env) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	input, err := filepath.Abs(config.InputPath)
	if err != nil {
		return fmt.Errorf("resolve input: %w", err)
	}
	if err := watcher.Add(filepath.Dir(input)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(input), err)
	}
	env.Log.Infof("watching %s for changes", config.InputPath)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isInputChange(event, input) {
				continue
			}
			env.Log.Debugf("input changed: %s", event)
			if err := generateOnce(config, gen, env); err != nil {
				env.Log.Warnf("regenerate failed: %v", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			env.Log.Warnf("watcher error: %v", err)
		}
	}
}

// isInputChange reports whether event is a write or create of input.
func isInputChange(event fsnotify.Event, input string) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
		return false
	}
	name, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	return name == input
}
