package alert

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func TestWindow_ShowFillsLabels(t *testing.T) {
	alert := New(test.NewTempApp(t), nil)

	at := time.Date(2026, 10, 19, 14, 30, 5, 0, time.Local)
	alert.show("Tea", "remove the bag", at)

	assert.Equal(t, "Tea", alert.name.Text)
	assert.Equal(t, "remove the bag", alert.action.Text)
	assert.Equal(t, "14:30:05", alert.at.Text)
}

func TestWindow_ShowDisabledIsNoop(t *testing.T) {
	alert := New(test.NewTempApp(t), func() bool { return false })

	alert.Show("Tea", "", time.Now())

	assert.Empty(t, alert.name.Text)
}

func TestNew_CreatesOneWindow(t *testing.T) {
	app := test.NewTempApp(t)

	New(app, nil)

	assert.Len(t, app.Driver().AllWindows(), 1)
}
