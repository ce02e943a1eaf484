package timekeeper

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticks/internal/core/model"
)

func nextEvent(t *testing.T, events <-chan Event, want EventType) Event {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case event, ok := <-events:
			require.True(t, ok, "event channel closed before %s", want)
			if event.Type == want {
				return event
			}
		case <-deadline:
			t.Fatalf("no %s event received", want)
		}
	}
}

func TestKeeper_AddStartedEmitsEvents(t *testing.T) {
	clock := clockwork.NewFakeClock()
	keeper := New(Config{Clock: clock})
	events := keeper.Subscribe(8)

	handle := keeper.AddStarted(model.NewItem("Tea", "", "", time.Minute))

	added := nextEvent(t, events, EventAdded)
	assert.Equal(t, handle.ID, added.ID)
	changed := nextEvent(t, events, EventStateChange)
	assert.Equal(t, StateRunning, changed.State)

	rows := keeper.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, StateRunning, rows[0].State)
}

func TestKeeper_TickCompletesAndNotifies(t *testing.T) {
	clock := clockwork.NewFakeClock()
	completed := make(chan model.Item, 1)
	keeper := New(Config{
		Clock:        clock,
		TickInterval: time.Second,
		OnComplete: func(item model.Item) {
			completed <- item
		},
	})
	events := keeper.Subscribe(16)
	keeper.AddStarted(model.NewItem("Eggs", "kitchen", "cool down", 2*time.Second))

	keeper.Start()
	defer keeper.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, clock.BlockUntilContext(ctx, 1))

	clock.Advance(time.Second)
	nextEvent(t, events, EventTick)
	running, done := keeper.Counts()
	assert.Equal(t, 1, running)
	assert.Equal(t, 0, done)

	clock.Advance(time.Second)
	event := nextEvent(t, events, EventCompleted)
	assert.Equal(t, "Eggs", event.Item.Name())

	select {
	case item := <-completed:
		assert.Equal(t, "cool down", item.Action())
	case <-time.After(2 * time.Second):
		t.Fatal("completion callback not invoked")
	}

	running, done = keeper.Counts()
	assert.Equal(t, 0, running)
	assert.Equal(t, 1, done)
}

func TestKeeper_ToggleResetRemove(t *testing.T) {
	clock := clockwork.NewFakeClock()
	keeper := New(Config{Clock: clock})

	first := keeper.Add(model.NewItem("A", "", "", time.Minute))
	second := keeper.Add(model.NewItem("B", "", "", time.Minute))

	require.NoError(t, keeper.Toggle(first.Index))
	assert.Equal(t, StateRunning, keeper.Rows()[0].State)

	clock.Advance(10 * time.Second)
	require.NoError(t, keeper.Reset(first.Index))
	assert.Equal(t, StateIdle, keeper.Rows()[0].State)
	assert.Equal(t, time.Minute, keeper.Rows()[0].Remaining)

	require.NoError(t, keeper.Remove(first.Index))
	index, ok := keeper.IndexOf(second.ID)
	require.True(t, ok)
	assert.Equal(t, 0, index)

	assert.ErrorIs(t, keeper.Toggle(3), ErrOutOfRange)
	assert.ErrorIs(t, keeper.Reset(3), ErrOutOfRange)
	assert.ErrorIs(t, keeper.Remove(3), ErrOutOfRange)
}

func TestKeeper_StopClosesSubscribers(t *testing.T) {
	keeper := New(Config{Clock: clockwork.NewFakeClock()})
	events := keeper.Subscribe(1)
	keeper.Start()
	keeper.Stop()

	_, ok := <-events
	assert.False(t, ok)

	// Stopping twice is harmless.
	keeper.Stop()
}

func TestNormalizeInterval(t *testing.T) {
	assert.Equal(t, time.Second, normalizeInterval(0))
	assert.Equal(t, time.Second, normalizeInterval(-time.Second))
	assert.Equal(t, minTickInterval, normalizeInterval(time.Millisecond))
	assert.Equal(t, 3*time.Second, normalizeInterval(3*time.Second))
	assert.Equal(t, maxTickInterval, normalizeInterval(time.Minute))
}

type messageHandler struct {
	messages chan string
}

func (handler messageHandler) Enabled(context.Context, slog.Level) bool { return true }

func (handler messageHandler) Handle(_ context.Context, record slog.Record) error {
	select {
	case handler.messages <- record.Message:
	default:
	}
	return nil
}

func (handler messageHandler) WithAttrs([]slog.Attr) slog.Handler { return handler }
func (handler messageHandler) WithGroup(string) slog.Handler      { return handler }

func waitForMessage(t *testing.T, messages <-chan string, want string) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case message := <-messages:
			if message == want {
				return
			}
		case <-deadline:
			t.Fatalf("no %q log record", want)
		}
	}
}

func TestKeeper_SetTickIntervalChangesCadence(t *testing.T) {
	clock := clockwork.NewFakeClock()
	messages := make(chan string, 16)
	keeper := New(Config{
		Clock:        clock,
		TickInterval: time.Second,
		Logger:       slog.New(messageHandler{messages: messages}),
	})
	events := keeper.Subscribe(8)
	keeper.Start()
	defer keeper.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, clock.BlockUntilContext(ctx, 1))

	clock.Advance(time.Second)
	nextEvent(t, events, EventTick)

	keeper.SetTickInterval(3 * time.Second)
	waitForMessage(t, messages, "tick interval changed")

	clock.Advance(time.Second)
	select {
	case event := <-events:
		t.Fatalf("unexpected %s event one second after the change", event.Type)
	case <-time.After(100 * time.Millisecond):
	}

	clock.Advance(2 * time.Second)
	nextEvent(t, events, EventTick)
}

func TestKeeper_SetTickIntervalClamps(t *testing.T) {
	keeper := New(Config{Clock: clockwork.NewFakeClock()})

	keeper.SetTickInterval(time.Hour)
	keeper.mu.Lock()
	assert.Equal(t, maxTickInterval, keeper.options.TickInterval)
	keeper.mu.Unlock()

	keeper.SetTickInterval(time.Millisecond)
	keeper.mu.Lock()
	assert.Equal(t, minTickInterval, keeper.options.TickInterval)
	keeper.mu.Unlock()
}
