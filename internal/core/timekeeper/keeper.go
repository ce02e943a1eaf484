package timekeeper

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"ticks/internal/core/model"
)

const (
	defaultTickInterval = time.Second
	minTickInterval     = 100 * time.Millisecond
	maxTickInterval     = 10 * time.Second
)

// Config contains runtime options for Keeper.
type Config struct {
	TickInterval time.Duration
	Clock        clockwork.Clock
	Logger       *slog.Logger
	// OnComplete runs on the ticking goroutine while the registry is locked.
	// It must hand work off (for example to a queue) and return immediately.
	OnComplete func(model.Item)
}

// Keeper hosts a Registry for a multi-goroutine application: the UI goroutine
// issues commands while a ticker goroutine drives UpdateAll. All registry
// access goes through the Keeper mutex.
type Keeper struct {
	mu         sync.Mutex
	options    Config
	registry   *Registry
	events     []chan Event
	stopCh     chan struct{}
	intervalCh chan time.Duration
	running    bool
}

// New creates a Keeper with the provided configuration.
func New(options Config) *Keeper {
	if options.Clock == nil {
		options.Clock = clockwork.NewRealClock()
	}
	if options.Logger == nil {
		options.Logger = slog.Default()
	}
	options.TickInterval = normalizeInterval(options.TickInterval)

	return &Keeper{
		options:    options,
		registry:   NewRegistry(options.Clock),
		intervalCh: make(chan time.Duration, 1),
	}
}

// Subscribe registers a new observer channel. Events are dropped for
// observers whose buffer is full.
func (keeper *Keeper) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	keeper.mu.Lock()
	keeper.events = append(keeper.events, ch)
	keeper.mu.Unlock()
	return ch
}

// Start launches the ticking loop.
func (keeper *Keeper) Start() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.running {
		return
	}
	keeper.running = true
	keeper.stopCh = make(chan struct{})

	keeper.options.Logger.Debug("keeper started", slog.Duration("tick_interval", keeper.options.TickInterval))
	go keeper.run(keeper.stopCh, keeper.options.TickInterval)
}

// Stop terminates the ticking loop and closes observers.
func (keeper *Keeper) Stop() {
	keeper.mu.Lock()
	if !keeper.running {
		keeper.mu.Unlock()
		return
	}
	close(keeper.stopCh)
	keeper.running = false
	events := keeper.events
	keeper.events = nil
	keeper.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// SetTickInterval changes the polling cadence of a running loop.
func (keeper *Keeper) SetTickInterval(interval time.Duration) {
	interval = normalizeInterval(interval)
	keeper.mu.Lock()
	keeper.options.TickInterval = interval
	keeper.mu.Unlock()

	select {
	case <-keeper.intervalCh:
	default:
	}
	select {
	case keeper.intervalCh <- interval:
	default:
	}
}

// Add appends an idle timer for item.
func (keeper *Keeper) Add(item model.Item) Handle {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.addLocked(item)
}

// AddStarted appends a timer for item and starts it.
func (keeper *Keeper) AddStarted(item model.Item) Handle {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	handle := keeper.addLocked(item)
	active, _ := keeper.registry.Get(handle.Index)
	active.Start()
	keeper.emitStateLocked(active)
	return handle
}

// Toggle pauses, resumes or restarts the timer at index.
func (keeper *Keeper) Toggle(index int) error {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if err := keeper.registry.Toggle(index); err != nil {
		return err
	}
	active, _ := keeper.registry.Get(index)
	keeper.emitStateLocked(active)
	return nil
}

// Reset returns the timer at index to idle.
func (keeper *Keeper) Reset(index int) error {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	active, err := keeper.registry.Get(index)
	if err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	active.Reset()
	keeper.emitStateLocked(active)
	return nil
}

// Remove deletes the timer at index.
func (keeper *Keeper) Remove(index int) error {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	active, err := keeper.registry.Remove(index)
	if err != nil {
		return err
	}
	keeper.emitLocked(Event{
		Type:  EventRemoved,
		ID:    active.ID(),
		Item:  active.Item(),
		State: active.State(),
		At:    keeper.options.Clock.Now(),
	})
	return nil
}

// IndexOf resolves a handle ID to its current position.
func (keeper *Keeper) IndexOf(id uuid.UUID) (int, bool) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.registry.IndexOf(id)
}

// Rows returns a render snapshot of every timer.
func (keeper *Keeper) Rows() []Row {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.registry.Rows(keeper.options.Clock.Now())
}

// Counts returns the number of running and completed timers.
func (keeper *Keeper) Counts() (running, completed int) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	for _, active := range keeper.registry.items {
		switch active.State() {
		case StateRunning:
			running++
		case StateCompleted:
			completed++
		}
	}
	return running, completed
}

func (keeper *Keeper) addLocked(item model.Item) Handle {
	var id uuid.UUID
	handle := keeper.registry.Add(item, func() {
		keeper.completeLocked(id, item)
	})
	id = handle.ID

	keeper.emitLocked(Event{
		Type:      EventAdded,
		ID:        id,
		Item:      item,
		State:     StateIdle,
		Remaining: max(item.Timeout(), 0),
		At:        keeper.options.Clock.Now(),
	})
	return handle
}

// completeLocked runs inside UpdateAll with the mutex held.
func (keeper *Keeper) completeLocked(id uuid.UUID, item model.Item) {
	keeper.options.Logger.Info("timer completed",
		slog.String("name", item.Name()),
		slog.String("type", item.Type()),
		slog.String("action", item.Action()),
	)
	keeper.emitLocked(Event{
		Type:  EventCompleted,
		ID:    id,
		Item:  item,
		State: StateCompleted,
		At:    keeper.options.Clock.Now(),
	})
	if keeper.options.OnComplete != nil {
		keeper.options.OnComplete(item)
	}
}

func (keeper *Keeper) run(stopCh <-chan struct{}, interval time.Duration) {
	ticker := keeper.options.Clock.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case next := <-keeper.intervalCh:
			ticker.Reset(next)
			keeper.options.Logger.Debug("tick interval changed", slog.Duration("tick_interval", next))
		case tickTime := <-ticker.Chan():
			keeper.tick(tickTime)
		}
	}
}

func (keeper *Keeper) tick(tickTime time.Time) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if !keeper.running {
		return
	}
	keeper.registry.UpdateAll(tickTime)
	keeper.emitLocked(Event{
		Type: EventTick,
		At:   tickTime,
	})
}

func (keeper *Keeper) emitStateLocked(active *ActiveItem) {
	keeper.emitLocked(Event{
		Type:      EventStateChange,
		ID:        active.ID(),
		Item:      active.Item(),
		State:     active.State(),
		Remaining: active.Remaining(),
		At:        keeper.options.Clock.Now(),
	})
}

func (keeper *Keeper) emitLocked(event Event) {
	for _, ch := range keeper.events {
		select {
		case ch <- event:
		default:
		}
	}
}

func normalizeInterval(interval time.Duration) time.Duration {
	if interval <= 0 {
		return defaultTickInterval
	}
	return min(max(interval, minTickInterval), maxTickInterval)
}
