package main

import (
	"time"

	"fyne.io/fyne/v2"

	"ticks/internal/i18n"
	"ticks/internal/notify"
	"ticks/internal/ui/tray"
)

// alertShower is satisfied by alert.Window.
type alertShower interface {
	Show(name, action string, at time.Time)
}

func alertSink(shower alertShower) notify.Sink {
	return notify.Func(func(notification notify.Notification) error {
		shower.Show(notification.Title, notification.Body, notification.At)
		return nil
	})
}

// newMainMenu builds the window menu bar from the tray actions.
func newMainMenu(callbacks tray.Callbacks, onAbout func()) *fyne.MainMenu {
	quit := fyne.NewMenuItem(i18n.T("Quit"), menuAction(callbacks.OnQuit))
	quit.IsQuit = true

	file := fyne.NewMenu(i18n.T("File"),
		fyne.NewMenuItem(i18n.T("Open items..."), menuAction(callbacks.OnOpenItems)),
		fyne.NewMenuItem(i18n.T("Save items..."), menuAction(callbacks.OnSaveItems)),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(i18n.T("Preferences"), menuAction(callbacks.OnPreferences)),
		fyne.NewMenuItemSeparator(),
		quit,
	)
	help := fyne.NewMenu(i18n.T("Help"),
		fyne.NewMenuItem(i18n.T("About"), menuAction(onAbout)),
	)
	return fyne.NewMainMenu(file, help)
}

func menuAction(handler func()) func() {
	return func() {
		if handler != nil {
			handler()
		}
	}
}
