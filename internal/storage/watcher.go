package storage

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const defaultWatchDebounce = 250 * time.Millisecond

// Watcher reports changes to a single file. Editors often replace files by
// rename, so the parent directory is watched and events are filtered by name.
type Watcher struct {
	path     string
	debounce time.Duration
	onChange func()
	logger   *slog.Logger
	notifier *fsnotify.Watcher
}

// NewWatcher starts watching path. onChange runs on the Run goroutine after
// a burst of events settles.
func NewWatcher(path string, onChange func(), logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve watch path: %w", err)
	}

	notifier, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}
	if err := notifier.Add(filepath.Dir(absPath)); err != nil {
		_ = notifier.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(absPath), err)
	}

	return &Watcher{
		path:     absPath,
		debounce: defaultWatchDebounce,
		onChange: onChange,
		logger:   logger,
		notifier: notifier,
	}, nil
}

// Run dispatches change notifications until ctx is cancelled.
func (watcher *Watcher) Run(ctx context.Context) error {
	defer watcher.notifier.Close()

	var settle <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.notifier.Events:
			if !ok {
				return nil
			}
			if !watcher.relevant(event) {
				continue
			}
			settle = time.After(watcher.debounce)
		case err, ok := <-watcher.notifier.Errors:
			if !ok {
				return nil
			}
			watcher.logger.Warn("items watcher error", slog.Any("error", err))
		case <-settle:
			settle = nil
			watcher.logger.Debug("items file changed", slog.String("path", watcher.path))
			if watcher.onChange != nil {
				watcher.onChange()
			}
		}
	}
}

func (watcher *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != watcher.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}
