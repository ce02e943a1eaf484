// Package itemdialog edits a single Item in a modal form.
package itemdialog

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"ticks/internal/core/model"
	"ticks/internal/i18n"
)

// Show opens the item form over parent. onConfirm receives the edited item;
// cancelling does nothing.
func Show(parent fyne.Window, original model.Item, onConfirm func(model.Item)) {
	initial := FieldsOf(original)

	name := widget.NewEntry()
	name.SetText(initial.Name)
	kind := widget.NewEntry()
	kind.SetText(initial.Type)
	action := widget.NewEntry()
	action.SetText(initial.Action)
	timeout := widget.NewEntry()
	timeout.SetText(initial.Timeout)
	timeout.Validator = func(text string) error {
		_, err := Fields{Name: "-", Timeout: text}.Apply(original)
		return err
	}

	entries := []*widget.FormItem{
		widget.NewFormItem(i18n.T("Name"), name),
		widget.NewFormItem(i18n.T("Type"), kind),
		widget.NewFormItem(i18n.T("Action"), action),
		widget.NewFormItem(i18n.T("Timeout (seconds)"), timeout),
	}

	form := dialog.NewForm(i18n.T("Configure Item"), i18n.T("Save"), i18n.T("Cancel"), entries, func(confirmed bool) {
		if !confirmed {
			return
		}
		edited, err := Fields{
			Name:    name.Text,
			Type:    kind.Text,
			Action:  action.Text,
			Timeout: timeout.Text,
		}.Apply(original)
		if err != nil {
			dialog.ShowError(err, parent)
			return
		}
		onConfirm(edited)
	}, parent)
	form.Resize(fyne.NewSize(360, 0))
	form.Show()
}
