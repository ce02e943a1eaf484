package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"golang.org/x/sync/errgroup"

	"ticks/internal/core/model"
	"ticks/internal/core/timekeeper"
	"ticks/internal/i18n"
	"ticks/internal/notify"
	"ticks/internal/platform"
	"ticks/internal/storage"
	"ticks/internal/ui/active"
	"ticks/internal/ui/alert"
	"ticks/internal/ui/catalog"
	"ticks/internal/ui/dnd"
	"ticks/internal/ui/preferences"
	"ticks/internal/ui/tray"
)

const (
	appName = "Ticks"
	appID   = "com.ticks.app"

	bellFrequency = 880
	bellLength    = 600 * time.Millisecond
	queueSize     = 16
	eventBuffer   = 32
)

func main() {
	itemsFlag := flag.String("items", "", "items file to load instead of the configured one")
	flag.Parse()

	logLevel := new(slog.LevelVar)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		logger.Warn("load settings, using defaults", slog.Any("error", err))
	}
	logLevel.Set(settings.SlogLevel())

	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		logger.Info("single instance", slog.Any("error", err))
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	i18n.SetLang(i18n.Detect(settings.Language))

	var current atomic.Pointer[preferences.Settings]
	current.Store(&settings)

	fyneApp := app.NewWithID(appID)
	fyneApp.SetIcon(theme.HistoryIcon())
	mainWindow := fyneApp.NewWindow(appName)

	alertWindow := alert.New(fyneApp, func() bool { return current.Load().AlertWindow })
	bell := notify.NewBell(bellFrequency, bellLength)
	bell.SetEnabled(func() bool { return current.Load().Sound })
	queue := notify.NewQueue(queueSize, logger,
		alertSink(alertWindow),
		notify.NewDesktop(fyneApp, func() bool { return current.Load().DesktopNotifications }),
		bell,
	)

	keeper := timekeeper.New(timekeeper.Config{
		TickInterval: settings.TickInterval,
		Logger:       logger,
		OnComplete: func(item model.Item) {
			queue.Enqueue(notify.Notification{
				Title: item.Name(),
				Body:  item.Action(),
				At:    time.Now(),
			})
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	group, ctx := errgroup.WithContext(ctx)

	router := dnd.NewRouter()
	activePanel := active.New(mainWindow, keeper, logger)
	router.Register(dnd.ObjectRegion(activePanel.Content()), activePanel)

	var catalogPanel *catalog.Panel
	items := newItemsFile(ctx, group, logger, func(reloaded model.Catalog) {
		fyne.Do(func() {
			catalogPanel.SetCatalog(reloaded)
		})
	})
	catalogPanel = catalog.New(mainWindow, router, func(changed model.Catalog) {
		if err := items.Save(changed); err != nil {
			logger.Error("save items", slog.Any("error", err))
			dialog.ShowError(err, mainWindow)
		}
	})

	explicit := *itemsFlag
	if explicit == "" {
		explicit = settings.ItemsPath
	}
	initial, loadErr := items.Open(storage.ResolveItemsPath(appName, explicit))
	catalogPanel.SetCatalog(initial)

	openItems := func(path string) {
		loaded, err := items.Open(path)
		if err != nil {
			logger.Warn("open items", slog.Any("error", err))
			dialog.ShowError(err, mainWindow)
			return
		}
		catalogPanel.SetCatalog(loaded)
		rememberItemsPath(&current, path, logger)
	}

	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		updated.ItemsPath = current.Load().ItemsPath
		current.Store(&updated)
		logLevel.Set(updated.SlogLevel())
		keeper.SetTickInterval(updated.TickInterval)
		if err := storage.SaveSettings(appName, updated); err != nil {
			logger.Error("save settings", slog.Any("error", err))
		}
	})

	split := container.NewHSplit(catalogPanel.Content(), activePanel.Content())
	split.Offset = 0.35
	mainWindow.SetContent(split)
	mainWindow.Resize(fyne.NewSize(960, 480))

	callbacks := tray.Callbacks{
		OnShow: func() {
			mainWindow.Show()
			mainWindow.RequestFocus()
		},
		OnOpenItems: func() {
			showOpenItems(mainWindow, openItems)
		},
		OnSaveItems: func() {
			showSaveItems(mainWindow, catalogPanel.Catalog(), openItems, logger)
		},
		OnPreferences: prefsWindow.Show,
		OnQuit:        fyneApp.Quit,
	}
	mainWindow.SetMainMenu(newMainMenu(callbacks, func() {
		dialog.ShowInformation(i18n.T("About"), appName+"\n"+i18n.T("Drag an item onto the timers panel to start a countdown."), mainWindow)
	}))

	var trayManager *tray.Manager
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		desktopApp.SetSystemTrayIcon(theme.HistoryIcon())
		trayManager = tray.New(desktopApp, callbacks)
		mainWindow.SetCloseIntercept(mainWindow.Hide)
	} else {
		logger.Info("system tray unsupported on this platform")
		mainWindow.SetMaster()
	}

	guard.SetOnActivate(func() {
		fyne.Do(func() {
			mainWindow.Show()
			mainWindow.RequestFocus()
		})
	})

	events := keeper.Subscribe(eventBuffer)
	go func() {
		for range events {
			fyne.Do(func() {
				activePanel.Refresh()
				if trayManager != nil {
					trayManager.SetStatus(keeper.Counts())
				}
			})
		}
	}()

	group.Go(func() error {
		return queue.Run(ctx)
	})
	group.Go(func() error {
		keeper.Start()
		<-ctx.Done()
		keeper.Stop()
		return nil
	})

	mainWindow.Show()
	if loadErr != nil {
		logger.Warn("load items", slog.Any("error", loadErr))
		if errors.Is(loadErr, storage.ErrNoConfiguration) {
			dialog.ShowInformation(appName, i18n.T("Failed to load configuration. Using empty configuration."), mainWindow)
		}
	}

	fyneApp.Run()

	cancel()
	if err := group.Wait(); err != nil {
		logger.Error("shutdown", slog.Any("error", err))
	}
}

func rememberItemsPath(current *atomic.Pointer[preferences.Settings], path string, logger *slog.Logger) {
	updated := *current.Load()
	updated.ItemsPath = path
	current.Store(&updated)
	if err := storage.SaveSettings(appName, updated); err != nil {
		logger.Error("save settings", slog.Any("error", err))
	}
}

func showOpenItems(parent fyne.Window, open func(path string)) {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, parent)
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		_ = reader.Close()
		open(path)
	}, parent)
}

func showSaveItems(parent fyne.Window, catalog model.Catalog, open func(path string), logger *slog.Logger) {
	dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, parent)
			return
		}
		if writer == nil {
			return
		}
		path := writer.URI().Path()
		if err := writeItems(writer, catalog); err != nil {
			logger.Error("save items as", slog.String("path", path), slog.Any("error", err))
			dialog.ShowError(err, parent)
			return
		}
		open(path)
	}, parent)
}

func writeItems(writer io.WriteCloser, catalog model.Catalog) error {
	data, err := storage.MarshalItems(catalog.Items())
	if err != nil {
		_ = writer.Close()
		return err
	}
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return err
	}
	return writer.Close()
}
