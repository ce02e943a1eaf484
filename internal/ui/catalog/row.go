package catalog

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"ticks/internal/core/model"
	"ticks/internal/core/timekeeper"
	"ticks/internal/ui/dnd"
)

// itemRow is a label that can be dragged onto a drop target.
type itemRow struct {
	widget.BaseWidget
	label    *widget.Label
	router   *dnd.Router
	item     model.Item
	last     fyne.Position
	dragging bool
}

func newItemRow(router *dnd.Router) *itemRow {
	row := &itemRow{
		label:  widget.NewLabel(""),
		router: router,
	}
	row.label.Truncation = fyne.TextTruncateEllipsis
	row.ExtendBaseWidget(row)
	return row
}

func (row *itemRow) setItem(item model.Item) {
	row.item = item
	row.label.SetText(rowText(item))
}

func (row *itemRow) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(row.label)
}

func (row *itemRow) Dragged(event *fyne.DragEvent) {
	row.dragging = true
	row.last = event.AbsolutePosition
}

func (row *itemRow) DragEnd() {
	if !row.dragging {
		return
	}
	row.dragging = false
	row.router.Drop(row.item, row.last)
}

func rowText(item model.Item) string {
	text := item.Name()
	if item.Type() != "" {
		text = fmt.Sprintf("%s [%s]", text, item.Type())
	}
	text = fmt.Sprintf("%s  %s", text, timekeeper.FormatRemaining(item.Timeout()))
	if item.Action() != "" {
		text = fmt.Sprintf("%s  %s", text, item.Action())
	}
	return text
}
