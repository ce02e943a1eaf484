package tray

import (
	"fmt"

	"fyne.io/fyne/v2"

	"ticks/internal/i18n"
)

const menuTitle = "Ticks"

// MenuHost installs a tray menu. desktop.App satisfies it.
type MenuHost interface {
	SetSystemTrayMenu(menu *fyne.Menu)
}

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow        func()
	OnOpenItems   func()
	OnSaveItems   func()
	OnPreferences func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app        MenuHost
	callbacks  Callbacks
	statusItem *fyne.MenuItem
	running    int
	completed  int
}

// New creates a tray manager with the provided callbacks and installs its menu.
func New(app MenuHost, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
	}
	manager.statusItem = fyne.NewMenuItem(StatusText(0, 0), nil)
	manager.statusItem.Disabled = true
	manager.refreshMenu()
	return manager
}

// SetStatus updates the timer counts shown in the menu.
func (manager *Manager) SetStatus(running, completed int) {
	if running == manager.running && completed == manager.completed {
		return
	}
	manager.running = running
	manager.completed = completed
	manager.statusItem.Label = StatusText(running, completed)
	manager.refreshMenu()
}

// StatusText renders the tray status line.
func StatusText(running, completed int) string {
	return fmt.Sprintf(i18n.T("%d running / %d done"), running, completed)
}

func (manager *Manager) menu() *fyne.Menu {
	return fyne.NewMenu(menuTitle,
		manager.statusItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(i18n.T("Show"), call(manager.callbacks.OnShow)),
		fyne.NewMenuItem(i18n.T("Open items..."), call(manager.callbacks.OnOpenItems)),
		fyne.NewMenuItem(i18n.T("Save items..."), call(manager.callbacks.OnSaveItems)),
		fyne.NewMenuItem(i18n.T("Preferences"), call(manager.callbacks.OnPreferences)),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(i18n.T("Quit"), call(manager.callbacks.OnQuit)),
	)
}

func (manager *Manager) refreshMenu() {
	if manager.app != nil {
		manager.app.SetSystemTrayMenu(manager.menu())
	}
}

func call(handler func()) func() {
	return func() {
		if handler != nil {
			handler()
		}
	}
}
