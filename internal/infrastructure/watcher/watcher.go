package watcher

import (
	"context"
	"path/filepath"

	alogger "fry.org/qft/trail/internal/application/logger"
	"github.com/fsnotify/fsnotify"
	"github.com/speijnik/go-errortree"
)

// Watch signals on the returned channel whenever the named path is
// written, created or renamed. The parent directory is watched rather
// than the file itself, so rotations keep being observed after the
// original inode goes away. The signal is a latency hint only; polling
// remains the source of truth for correctness.
func Watch(ctx context.Context, path string, logger alogger.Logger) (<-chan struct{}, error) {
	var rcerror error

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errortree.Add(rcerror, "watcher.Watch", err)
	}
	if err = w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, errortree.Add(rcerror, "watcher.Watch", err)
	}
	ch := make(chan struct{}, 1)
	target := filepath.Clean(path)

	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				select {
				case ch <- struct{}{}:
				default:
					// a wakeup is already queued
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				logger.Debugf("watcher: %v", err)
			}
		}
	}()

	return ch, nil
}
