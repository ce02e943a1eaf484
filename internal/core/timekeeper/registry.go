package timekeeper

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"ticks/internal/core/model"
)

// ErrOutOfRange indicates an index that does not refer to a live entry.
var ErrOutOfRange = errors.New("index out of range")

// Handle identifies an entry added to a Registry. Index is the position at
// insertion time; ID stays valid after other entries are removed.
type Handle struct {
	Index int
	ID    uuid.UUID
}

// Row is the render-ready view of one registry entry.
type Row struct {
	Index         int
	ID            uuid.UUID
	Item          model.Item
	State         State
	Remaining     time.Duration
	RemainingText string
	ETA           time.Time
	HasETA        bool
	ETAText       string
}

// Registry is the ordered collection of active timers. Insertion order is
// display order and value-equal items may appear more than once. Registry
// is not safe for concurrent use.
type Registry struct {
	clock clockwork.Clock
	items []*ActiveItem
}

// NewRegistry creates an empty registry reading time from clock.
func NewRegistry(clock clockwork.Clock) *Registry {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Registry{clock: clock}
}

// Add appends an idle timer for item. The caller decides when to start it.
func (registry *Registry) Add(item model.Item, onComplete func()) Handle {
	active := NewActiveItem(item, registry.clock, onComplete)
	registry.items = append(registry.items, active)
	return Handle{Index: len(registry.items) - 1, ID: active.ID()}
}

// Len returns the number of entries.
func (registry *Registry) Len() int {
	return len(registry.items)
}

// Get returns the entry at index.
func (registry *Registry) Get(index int) (*ActiveItem, error) {
	if index < 0 || index >= len(registry.items) {
		return nil, fmt.Errorf("get %d of %d: %w", index, len(registry.items), ErrOutOfRange)
	}
	return registry.items[index], nil
}

// IndexOf resolves a handle ID to its current position.
func (registry *Registry) IndexOf(id uuid.UUID) (int, bool) {
	index := slices.IndexFunc(registry.items, func(active *ActiveItem) bool {
		return active.ID() == id
	})
	return index, index >= 0
}

// UpdateAll updates every entry against now in sequence order and returns
// the entries that completed during this call.
func (registry *Registry) UpdateAll(now time.Time) []*ActiveItem {
	var completed []*ActiveItem
	for _, active := range registry.items {
		if active.UpdateAt(now) {
			completed = append(completed, active)
		}
	}
	return completed
}

// Toggle pauses a running entry, resumes an idle or paused one, and restarts
// a completed one from zero.
func (registry *Registry) Toggle(index int) error {
	active, err := registry.Get(index)
	if err != nil {
		return fmt.Errorf("toggle: %w", err)
	}
	switch {
	case active.IsRunning():
		active.Stop()
	case !active.IsCompleted():
		active.Start()
	default:
		active.Reset()
		active.Start()
	}
	return nil
}

// Remove deletes the entry at index. Later entries shift down by one.
func (registry *Registry) Remove(index int) (*ActiveItem, error) {
	active, err := registry.Get(index)
	if err != nil {
		return nil, fmt.Errorf("remove: %w", err)
	}
	registry.items = slices.Delete(registry.items, index, index+1)
	return active, nil
}

// All yields a row per entry computed against now. The sequence is lazy and
// may be ranged over repeatedly; it must not be used across mutations.
func (registry *Registry) All(now time.Time) iter.Seq2[int, Row] {
	return func(yield func(int, Row) bool) {
		for index, active := range registry.items {
			if !yield(index, rowOf(index, active, now)) {
				return
			}
		}
	}
}

// Rows returns a snapshot of all entries computed against now.
func (registry *Registry) Rows(now time.Time) []Row {
	rows := make([]Row, 0, len(registry.items))
	for _, row := range registry.All(now) {
		rows = append(rows, row)
	}
	return rows
}

func rowOf(index int, active *ActiveItem, now time.Time) Row {
	remaining := active.RemainingAt(now)
	eta, hasETA := active.ETAAt(now)
	return Row{
		Index:         index,
		ID:            active.ID(),
		Item:          active.Item(),
		State:         active.State(),
		Remaining:     remaining,
		RemainingText: FormatRemaining(remaining),
		ETA:           eta,
		HasETA:        hasETA,
		ETAText:       FormatETA(eta, hasETA),
	}
}
