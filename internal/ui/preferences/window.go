package preferences

import (
	"fmt"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"ticks/internal/i18n"
)

// Window handles the preferences UI.
type Window struct {
	window   fyne.Window
	settings Settings
	onSave   func(Settings)
	tick     *widget.Entry
	sound    *widget.Check
	desktop  *widget.Check
	alert    *widget.Check
	language *widget.Select
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow(i18n.T("Preferences"))

	tick := widget.NewEntry()
	sound := widget.NewCheck(i18n.T("Play sound"), nil)
	desktop := widget.NewCheck(i18n.T("Desktop notifications"), nil)
	alert := widget.NewCheck(i18n.T("Show alert window"), nil)
	language := widget.NewSelect(append([]string{""}, i18n.Supported()...), nil)

	form := container.NewVBox(
		widget.NewLabelWithStyle(i18n.T("Preferences"), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel(i18n.T("Tick interval (ms)")), tick),
		sound,
		desktop,
		alert,
		container.NewHBox(widget.NewLabel(i18n.T("Language (restart required)")), language),
	)

	saveButton := widget.NewButton(i18n.T("Save"), nil)
	cancelButton := widget.NewButton(i18n.T("Cancel"), nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(380, 260))
	window.SetCloseIntercept(window.Hide)

	prefs := &Window{
		window:   window,
		onSave:   onSave,
		tick:     tick,
		sound:    sound,
		desktop:  desktop,
		alert:    alert,
		language: language,
	}
	prefs.UpdateSettings(settings)

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = window.Hide

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.tick.SetText(fmt.Sprintf("%d", settings.TickInterval.Milliseconds()))
	prefs.sound.SetChecked(settings.Sound)
	prefs.desktop.SetChecked(settings.DesktopNotifications)
	prefs.alert.SetChecked(settings.AlertWindow)
	prefs.language.SetSelected(settings.Language)
}

func (prefs *Window) handleSave() {
	settings := prefs.settings

	if millis, ok := parsePositiveInt(prefs.tick.Text); ok {
		settings.TickInterval = ClampTickInterval(time.Duration(millis) * time.Millisecond)
	}
	settings.Sound = prefs.sound.Checked
	settings.DesktopNotifications = prefs.desktop.Checked
	settings.AlertWindow = prefs.alert.Checked
	settings.Language = prefs.language.Selected

	prefs.UpdateSettings(settings)
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
