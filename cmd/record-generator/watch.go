package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// debounce collapses the burst of events editors emit on save.
const debounce = 300 * time.Millisecond

// runWatch generates once, then again after every change to the schema file,
// until ctx is done. Generation failures are logged and do not stop the watch.
func runWatch(ctx context.Context, opts *options, logger *zap.Logger) error {
	target, err := filepath.Abs(opts.Schema)
	if err != nil {
		return fmt.Errorf("bad schema path %q: %w", opts.Schema, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	// Editors often replace the file, so the directory is watched instead.
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(target), err)
	}

	regenerate := func() {
		if _, err := runGen(opts, logger); err != nil {
			logger.Error("generation failed", zap.String("schema", opts.Schema), zap.Error(err))
		}
	}

	regenerate()
	logger.Info("watching", zap.String("schema", target), zap.String("out", opts.Out))

	timer := time.NewTimer(debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			if abs, _ := filepath.Abs(event.Name); abs != target {
				continue
			}

			logger.Debug("schema changed", zap.Stringer("op", event.Op))
			timer.Reset(debounce)
		case <-timer.C:
			regenerate()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			logger.Warn("watcher error", zap.Error(err))
		}
	}
}
