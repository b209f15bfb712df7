// SPDX-License-Identifier: MIT
// Package: subdiv/shape
//
// watch.go — Watch: reload a shape file whenever it changes on disk.

package shape

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch loads path once, then reloads it after every write or re-create
// and hands each result to onLoad. Load errors are passed to onLoad rather
// than ending the watch. The parent directory is watched so editors that
// save by rename keep triggering reloads. Watch blocks until ctx is done
// and returns ctx.Err(), or the watcher's own error.
func Watch(ctx context.Context, path string, onLoad func(Shape, error)) error {
	const method = "Watch"
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	defer w.Close()
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}

	onLoad(Load(abs))
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case e, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(e.Name) != abs || !(e.Has(fsnotify.Write) || e.Has(fsnotify.Create)) {
				continue
			}
			onLoad(Load(abs))
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("%s: %w", method, err)
		}
	}
}
