package notify

import "fyne.io/fyne/v2"

// Sender is satisfied by fyne.App.
type Sender interface {
	SendNotification(*fyne.Notification)
}

// Desktop forwards notifications to the OS notification center.
type Desktop struct {
	sender  Sender
	enabled func() bool
}

// NewDesktop creates a desktop sink. enabled may be nil.
func NewDesktop(sender Sender, enabled func() bool) *Desktop {
	return &Desktop{sender: sender, enabled: enabled}
}

// Notify sends the notification.
func (desktop *Desktop) Notify(notification Notification) error {
	if desktop.enabled != nil && !desktop.enabled() {
		return nil
	}
	desktop.sender.SendNotification(fyne.NewNotification(notification.Title, notification.Body))
	return nil
}
