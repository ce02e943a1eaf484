// Package active renders the running timers table and accepts dropped items.
package active

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"ticks/internal/core/model"
	"ticks/internal/core/timekeeper"
	"ticks/internal/i18n"
	"ticks/internal/ui/itemdialog"
)

// Timers is the part of timekeeper.Keeper the panel drives.
type Timers interface {
	AddStarted(item model.Item) timekeeper.Handle
	Toggle(index int) error
	Reset(index int) error
	Remove(index int) error
	Rows() []timekeeper.Row
}

const (
	columnName = iota
	columnType
	columnAction
	columnRemaining
	columnETA
	columnCount
)

var columnWidths = [columnCount]float32{140, 90, 160, 90, 90}

// Panel shows one table row per active timer. Methods must run on the UI
// goroutine.
type Panel struct {
	window      fyne.Window
	timers      Timers
	logger      *slog.Logger
	rows        []timekeeper.Row
	selected    int
	table       *widget.Table
	placeholder *widget.Label
	content     fyne.CanvasObject
}

// New creates the panel.
func New(window fyne.Window, timers Timers, logger *slog.Logger) *Panel {
	if logger == nil {
		logger = slog.Default()
	}
	panel := &Panel{
		window:   window,
		timers:   timers,
		logger:   logger,
		selected: -1,
	}

	panel.table = widget.NewTableWithHeaders(
		func() (int, int) { return len(panel.rows), columnCount },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		panel.updateCell,
	)
	panel.table.ShowHeaderColumn = false
	panel.table.CreateHeader = func() fyne.CanvasObject {
		return widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	}
	panel.table.UpdateHeader = func(id widget.TableCellID, object fyne.CanvasObject) {
		object.(*widget.Label).SetText(columnTitle(id.Col))
	}
	for column, width := range columnWidths {
		panel.table.SetColumnWidth(column, width)
	}
	panel.table.OnSelected = panel.onSelected

	panel.placeholder = widget.NewLabelWithStyle(i18n.T("Drag an item here to start a timer"), fyne.TextAlignCenter, fyne.TextStyle{Italic: true})

	header := widget.NewLabelWithStyle(i18n.T("Active timers"), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	resetButton := widget.NewButtonWithIcon(i18n.T("Reset"), theme.MediaReplayIcon(), panel.resetSelected)
	removeButton := widget.NewButtonWithIcon(i18n.T("Remove"), theme.DeleteIcon(), panel.removeSelected)
	buttons := container.NewHBox(layout.NewSpacer(), resetButton, removeButton)

	panel.content = container.NewBorder(header, buttons, nil, nil, container.NewStack(panel.table, panel.placeholder))
	panel.Refresh()
	return panel
}

// Content returns the panel's canvas object.
func (panel *Panel) Content() fyne.CanvasObject {
	return panel.content
}

// OnItemDropped opens the item form pre-filled with item and starts a timer
// for the confirmed result.
func (panel *Panel) OnItemDropped(item model.Item, _ fyne.Position) {
	itemdialog.Show(panel.window, item, panel.start)
}

// Refresh reloads the rows from the timers.
func (panel *Panel) Refresh() {
	panel.rows = panel.timers.Rows()
	if panel.selected >= len(panel.rows) {
		panel.selected = -1
	}
	if len(panel.rows) == 0 {
		panel.placeholder.Show()
	} else {
		panel.placeholder.Hide()
	}
	panel.table.Refresh()
}

func (panel *Panel) start(item model.Item) {
	handle := panel.timers.AddStarted(item)
	panel.selected = handle.Index
	panel.Refresh()
}

func (panel *Panel) onSelected(id widget.TableCellID) {
	panel.table.UnselectAll()
	panel.selected = id.Row
	if err := panel.timers.Toggle(id.Row); err != nil {
		panel.logger.Warn("toggle timer", slog.Int("index", id.Row), slog.Any("error", err))
	}
	panel.Refresh()
}

func (panel *Panel) resetSelected() {
	if panel.selected < 0 {
		return
	}
	if err := panel.timers.Reset(panel.selected); err != nil {
		panel.logger.Warn("reset timer", slog.Int("index", panel.selected), slog.Any("error", err))
	}
	panel.Refresh()
}

func (panel *Panel) removeSelected() {
	if panel.selected < 0 {
		return
	}
	if err := panel.timers.Remove(panel.selected); err != nil {
		panel.logger.Warn("remove timer", slog.Int("index", panel.selected), slog.Any("error", err))
	}
	panel.selected = -1
	panel.Refresh()
}

func (panel *Panel) updateCell(id widget.TableCellID, object fyne.CanvasObject) {
	label := object.(*widget.Label)
	if id.Row < 0 || id.Row >= len(panel.rows) {
		label.SetText("")
		return
	}
	label.TextStyle = fyne.TextStyle{Bold: id.Row == panel.selected}
	label.SetText(cellText(panel.rows[id.Row], id.Col))
}

func cellText(row timekeeper.Row, column int) string {
	switch column {
	case columnName:
		return row.Item.Name()
	case columnType:
		return row.Item.Type()
	case columnAction:
		return row.Item.Action()
	case columnRemaining:
		return row.RemainingText
	case columnETA:
		return row.ETAText
	default:
		return ""
	}
}

func columnTitle(column int) string {
	switch column {
	case columnName:
		return i18n.T("Name")
	case columnType:
		return i18n.T("Type")
	case columnAction:
		return i18n.T("Action")
	case columnRemaining:
		return i18n.T("Remaining")
	case columnETA:
		return i18n.T("ETA")
	default:
		return ""
	}
}
