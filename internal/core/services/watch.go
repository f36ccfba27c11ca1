package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/otzar-labs/ketav-cli/internal/core/domain"
	"github.com/otzar-labs/ketav-cli/internal/core/ports/driving"
	"github.com/otzar-labs/ketav-cli/internal/logger"
)

// debounceWindow batches the burst of events an editor or copy
// produces for one file into a single reconversion.
const debounceWindow = 500 * time.Millisecond

// Watcher re-runs directory conversion when files change. Output
// files the watcher itself produced are remembered and their events
// ignored, otherwise a conversion inside the watched tree would
// trigger the next one forever.
type Watcher struct {
	converter driving.Converter
	opts      driving.ConvertOptions
	outputs   map[string]struct{}
}

// NewWatcher creates a watcher that feeds changed directories back
// into the converter.
func NewWatcher(converter driving.Converter, opts driving.ConvertOptions) *Watcher {
	return &Watcher{
		converter: converter,
		opts:      opts,
		outputs:   make(map[string]struct{}),
	}
}

// Run watches root and its subdirectories until the context is
// cancelled. Conversion failures are logged and watching continues;
// a broken file must not stop the watch.
func (w *Watcher) Run(ctx context.Context, root string) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsw.Close()

	if err := addRecursive(fsw, root); err != nil {
		return err
	}
	logger.Info("watching %s", root)

	pending := make(map[string]struct{})
	timer := time.NewTimer(debounceWindow)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}
			// New subdirectories join the watch.
			if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
				if event.Op&fsnotify.Create != 0 {
					if err := addRecursive(fsw, event.Name); err != nil {
						logger.Warn("watch %s: %v", event.Name, err)
					}
				}
				continue
			}
			if _, ours := w.outputs[event.Name]; ours {
				continue
			}
			pending[filepath.Dir(event.Name)] = struct{}{}
			timer.Reset(debounceWindow)

		case <-timer.C:
			for dir := range pending {
				w.reconvert(ctx, dir)
			}
			pending = make(map[string]struct{})

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)
		}
	}
}

// reconvert runs one directory through the pipeline, logging failures.
// The output path of a successful run is recorded so the write events
// it raised are not mistaken for source changes.
func (w *Watcher) reconvert(ctx context.Context, dir string) {
	result, err := w.converter.ConvertDir(ctx, dir, w.opts)
	switch {
	case err == nil:
		if result != nil && result.OutputPath != "" {
			w.outputs[result.OutputPath] = struct{}{}
		}
		logger.Info("reconverted %s", dir)
	case errors.Is(err, domain.ErrNoConvertibleFile):
		logger.Debug("nothing convertible in %s", dir)
	default:
		logger.Warn("reconvert %s: %v", dir, err)
	}
}

// addRecursive registers dir and every subdirectory with the watcher.
func addRecursive(fsw *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return fsw.Add(path)
		}
		return nil
	})
}
