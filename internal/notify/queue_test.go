package notify

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	mu   sync.Mutex
	seen []Notification
}

func (sink *recordingSink) Notify(notification Notification) error {
	sink.mu.Lock()
	defer sink.mu.Unlock()
	sink.seen = append(sink.seen, notification)
	return nil
}

func (sink *recordingSink) titles() []string {
	sink.mu.Lock()
	defer sink.mu.Unlock()
	titles := make([]string, 0, len(sink.seen))
	for _, notification := range sink.seen {
		titles = append(titles, notification.Title)
	}
	return titles
}

func TestQueue_EnqueueNeverBlocks(t *testing.T) {
	queue := NewQueue(1, nil)

	assert.True(t, queue.Enqueue(Notification{Title: "first"}))
	assert.False(t, queue.Enqueue(Notification{Title: "second"}))
	assert.Equal(t, int64(1), queue.Dropped())
}

func TestQueue_RunDeliversToAllSinks(t *testing.T) {
	first := &recordingSink{}
	failures := 0
	failing := Func(func(Notification) error {
		failures++
		return errors.New("no audio device")
	})
	second := &recordingSink{}
	queue := NewQueue(4, nil, first, failing, second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- queue.Run(ctx) }()

	require.True(t, queue.Enqueue(Notification{Title: "Tea"}))
	require.True(t, queue.Enqueue(Notification{Title: "Eggs"}))

	assert.Eventually(t, func() bool {
		return len(second.titles()) == 2
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{"Tea", "Eggs"}, first.titles())

	cancel()
	require.NoError(t, <-done)
	assert.Equal(t, 2, failures)
}

type fakeSender struct {
	sent []*fyne.Notification
}

func (sender *fakeSender) SendNotification(notification *fyne.Notification) {
	sender.sent = append(sender.sent, notification)
}

func TestDesktop_RespectsSwitch(t *testing.T) {
	sender := &fakeSender{}
	enabled := false
	desktop := NewDesktop(sender, func() bool { return enabled })

	require.NoError(t, desktop.Notify(Notification{Title: "Tea", Body: "remove the bag"}))
	assert.Empty(t, sender.sent)

	enabled = true
	require.NoError(t, desktop.Notify(Notification{Title: "Tea", Body: "remove the bag"}))
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "Tea", sender.sent[0].Title)
	assert.Equal(t, "remove the bag", sender.sent[0].Content)
}

func TestBell_DisabledSkipsAudio(t *testing.T) {
	bell := NewBell(880, 100*time.Millisecond)
	bell.SetEnabled(func() bool { return false })
	assert.NoError(t, bell.Notify(Notification{Title: "Tea"}))
}
