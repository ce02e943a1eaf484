// Package alert shows an undecorated window when a timer completes.
package alert

import (
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"ticks/internal/core/timekeeper"
	"ticks/internal/i18n"
)

const (
	widthFraction       = float32(0.18)
	heightFraction      = float32(0.16)
	defaultScreenWidth  = float32(1920)
	defaultScreenHeight = float32(1080)
)

var (
	backgroundColor = color.NRGBA{R: 24, G: 24, B: 28, A: 235}
	accentColor     = color.NRGBA{R: 232, G: 190, B: 66, A: 255}
	textColor       = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

type splashWindowDriver interface {
	CreateSplashWindow() fyne.Window
}

// Window is the completion alert.
type Window struct {
	window  fyne.Window
	enabled func() bool
	heading *canvas.Text
	name    *canvas.Text
	action  *canvas.Text
	at      *canvas.Text
}

// New creates a hidden alert window. enabled is consulted on every Show.
func New(app fyne.App, enabled func() bool) *Window {
	var window fyne.Window
	if driver, ok := app.Driver().(splashWindowDriver); ok {
		window = driver.CreateSplashWindow()
	} else {
		window = app.NewWindow(i18n.T("Time is up"))
	}
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}
	window.SetPadded(false)

	heading := newText(i18n.T("Time is up"), accentColor, 14, true)
	name := newText("", textColor, 21, true)
	action := newText("", textColor, 16, false)
	at := newText("", accentColor, 14, false)

	alert := &Window{
		window:  window,
		enabled: enabled,
		heading: heading,
		name:    name,
		action:  action,
		at:      at,
	}

	dismiss := widget.NewButton(i18n.T("Dismiss"), alert.Hide)
	body := container.NewPadded(container.NewVBox(
		heading,
		name,
		action,
		layout.NewSpacer(),
		container.NewHBox(at, layout.NewSpacer(), dismiss),
	))
	window.SetContent(container.NewStack(canvas.NewRectangle(backgroundColor), body))
	window.SetCloseIntercept(alert.Hide)
	return alert
}

// Show presents a completed timer. It is safe to call from any goroutine.
func (alert *Window) Show(name, action string, at time.Time) {
	if alert.enabled != nil && !alert.enabled() {
		return
	}
	fyne.Do(func() {
		alert.show(name, action, at)
	})
}

// Hide closes the alert.
func (alert *Window) Hide() {
	alert.window.Hide()
}

func (alert *Window) show(name, action string, at time.Time) {
	alert.name.Text = name
	alert.action.Text = action
	alert.at.Text = at.Local().Format(timekeeper.ETALayout)
	alert.name.Refresh()
	alert.action.Refresh()
	alert.at.Refresh()

	alert.resizeToScreenFraction()
	alert.window.Show()
	alert.window.RequestFocus()
}

func (alert *Window) resizeToScreenFraction() {
	screenSize := fyne.NewSize(defaultScreenWidth, defaultScreenHeight)
	canvasSize := alert.window.Canvas().Size()
	if canvasSize.Width >= 1024 && canvasSize.Height >= 720 {
		screenSize = canvasSize
	}

	minSize := alert.window.Content().MinSize()
	width := max(screenSize.Width*widthFraction, minSize.Width)
	height := max(screenSize.Height*heightFraction, minSize.Height)

	alert.window.Resize(fyne.NewSize(width, height))
	alert.window.CenterOnScreen()
}

func newText(text string, fill color.Color, size float32, bold bool) *canvas.Text {
	label := canvas.NewText(text, fill)
	label.Alignment = fyne.TextAlignLeading
	label.TextStyle = fyne.TextStyle{Bold: bold}
	label.TextSize = size
	return label
}
