package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"

	"ticks/internal/core/model"
	"ticks/internal/storage"
)

// itemsFile tracks the items document backing the catalog panel and
// reloads it when it changes on disk. onReload runs on the watcher goroutine.
type itemsFile struct {
	logger   *slog.Logger
	group    *errgroup.Group
	ctx      context.Context
	onReload func(model.Catalog)

	mu          sync.Mutex
	path        string
	stopWatcher context.CancelFunc
}

func newItemsFile(ctx context.Context, group *errgroup.Group, logger *slog.Logger, onReload func(model.Catalog)) *itemsFile {
	return &itemsFile{
		logger:   logger,
		group:    group,
		ctx:      ctx,
		onReload: onReload,
	}
}

// Open loads path and switches the watcher to it. A missing file yields an
// empty catalog and no error so the first save creates it.
func (file *itemsFile) Open(path string) (model.Catalog, error) {
	file.mu.Lock()
	file.path = path
	file.mu.Unlock()

	catalog, err := file.load(path)
	file.watch(path)
	return catalog, err
}

// Path returns the current document path.
func (file *itemsFile) Path() string {
	file.mu.Lock()
	defer file.mu.Unlock()
	return file.path
}

// Save writes catalog to the current document.
func (file *itemsFile) Save(catalog model.Catalog) error {
	path := file.Path()
	if err := storage.SaveItems(path, catalog.Items()); err != nil {
		return err
	}
	file.logger.Debug("items saved", slog.String("path", path), slog.Int("count", catalog.Len()))
	return nil
}

func (file *itemsFile) load(path string) (model.Catalog, error) {
	items, err := storage.LoadItems(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			file.logger.Info("items file not found, starting empty", slog.String("path", path))
			return model.NewCatalog(nil), nil
		}
		return model.NewCatalog(nil), fmt.Errorf("load %s: %w", path, err)
	}
	file.logger.Info("items loaded", slog.String("path", path), slog.Int("count", len(items)))
	return model.NewCatalog(items), nil
}

func (file *itemsFile) watch(path string) {
	file.mu.Lock()
	if file.stopWatcher != nil {
		file.stopWatcher()
		file.stopWatcher = nil
	}
	file.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		file.logger.Warn("items file is not watched", slog.String("path", path), slog.Any("error", err))
		return
	}
	watcher, err := storage.NewWatcher(path, func() { file.reload(path) }, file.logger)
	if err != nil {
		file.logger.Warn("items file is not watched", slog.String("path", path), slog.Any("error", err))
		return
	}

	ctx, cancel := context.WithCancel(file.ctx)
	file.mu.Lock()
	file.stopWatcher = cancel
	file.mu.Unlock()

	file.group.Go(func() error {
		return watcher.Run(ctx)
	})
}

func (file *itemsFile) reload(path string) {
	if path != file.Path() {
		return
	}
	catalog, err := file.load(path)
	if err != nil {
		file.logger.Warn("reload items", slog.Any("error", err))
		return
	}
	file.onReload(catalog)
}
