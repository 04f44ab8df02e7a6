package file

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/quickfind/internal/debounce"
	"github.com/custodia-labs/quickfind/internal/logger"
)

// DefaultWatchDelay coalesces the burst of events editors emit on save.
const DefaultWatchDelay = 100 * time.Millisecond

// Watch reloads the configuration whenever the file changes on disk and
// then calls onChange. It blocks until ctx is cancelled.
//
// The parent directory is watched rather than the file so that editors
// replacing the file atomically are still observed.
func (s *ConfigStore) Watch(ctx context.Context, delay time.Duration, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(s.filePath)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	reload := debounce.New(delay, func() {
		if err := s.Load(); err != nil {
			logger.Warn("Config reload failed: %v", err)
			return
		}
		logger.Debug("Config reloaded from %s", s.filePath)
		if onChange != nil {
			onChange()
		}
	})
	defer reload.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(s.filePath) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) != 0 {
				reload.Trigger()
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Config watcher error: %v", err)
		}
	}
}
