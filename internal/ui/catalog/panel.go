// Package catalog renders the list of configured items. Rows are drag
// sources for the active timers panel.
package catalog

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"ticks/internal/core/model"
	"ticks/internal/i18n"
	"ticks/internal/ui/dnd"
	"ticks/internal/ui/itemdialog"
)

const newItemTimeout = 5 * time.Minute

// Panel shows a Catalog. Methods must run on the UI goroutine.
type Panel struct {
	window   fyne.Window
	router   *dnd.Router
	catalog  model.Catalog
	onChange func(model.Catalog)
	list     *widget.List
	content  fyne.CanvasObject
}

// New creates the panel. onChange is called after every user edit.
func New(window fyne.Window, router *dnd.Router, onChange func(model.Catalog)) *Panel {
	panel := &Panel{
		window:   window,
		router:   router,
		onChange: onChange,
	}

	panel.list = widget.NewList(
		func() int { return panel.catalog.Len() },
		panel.createRow,
		panel.updateRow,
	)

	header := widget.NewLabelWithStyle(i18n.T("Items"), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	addButton := widget.NewButtonWithIcon(i18n.T("New item"), theme.ContentAddIcon(), panel.newItem)
	panel.content = container.NewBorder(header, addButton, nil, nil, panel.list)
	return panel
}

// Content returns the panel's canvas object.
func (panel *Panel) Content() fyne.CanvasObject {
	return panel.content
}

// Catalog returns the items shown.
func (panel *Panel) Catalog() model.Catalog {
	return panel.catalog
}

// SetCatalog replaces the items shown without calling onChange.
func (panel *Panel) SetCatalog(catalog model.Catalog) {
	panel.catalog = catalog
	panel.list.Refresh()
}

func (panel *Panel) createRow() fyne.CanvasObject {
	row := newItemRow(panel.router)
	edit := widget.NewButtonWithIcon("", theme.DocumentCreateIcon(), nil)
	remove := widget.NewButtonWithIcon("", theme.DeleteIcon(), nil)
	return container.NewBorder(nil, nil, nil, container.NewHBox(edit, remove), row)
}

func (panel *Panel) updateRow(id widget.ListItemID, object fyne.CanvasObject) {
	item, ok := panel.catalog.At(id)
	if !ok {
		return
	}
	border := object.(*fyne.Container)
	row := border.Objects[0].(*itemRow)
	buttons := border.Objects[1].(*fyne.Container)

	row.setItem(item)
	buttons.Objects[0].(*widget.Button).OnTapped = func() { panel.editItem(item) }
	buttons.Objects[1].(*widget.Button).OnTapped = func() { panel.removeItem(item) }
}

func (panel *Panel) newItem() {
	itemdialog.Show(panel.window, model.NewItem(i18n.T("New item"), "", "", newItemTimeout), func(created model.Item) {
		panel.apply(panel.catalog.WithAddedItem(created))
	})
}

func (panel *Panel) editItem(item model.Item) {
	itemdialog.Show(panel.window, item, func(edited model.Item) {
		panel.apply(panel.catalog.WithUpdatedItem(item, edited))
	})
}

func (panel *Panel) removeItem(item model.Item) {
	panel.apply(panel.catalog.WithRemovedItem(item))
}

func (panel *Panel) apply(catalog model.Catalog) {
	panel.SetCatalog(catalog)
	if panel.onChange != nil {
		panel.onChange(catalog)
	}
}
