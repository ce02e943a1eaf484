package timekeeper

import (
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"ticks/internal/core/model"
)

// ActiveItem is a countdown instance of an Item.
//
// Elapsed time is derived from clock deltas, never from tick counts, so
// irregular Update intervals do not skew the countdown. ActiveItem is not
// safe for concurrent use; Keeper serializes access.
type ActiveItem struct {
	id         uuid.UUID
	item       model.Item
	clock      clockwork.Clock
	onComplete func()

	state           State
	startedAt       time.Time
	accumulated     time.Duration
	completionFired bool
}

// NewActiveItem creates an idle timer for item. onComplete may be nil.
func NewActiveItem(item model.Item, clock clockwork.Clock, onComplete func()) *ActiveItem {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &ActiveItem{
		id:         uuid.New(),
		item:       item,
		clock:      clock,
		onComplete: onComplete,
		state:      StateIdle,
	}
}

// ID returns the stable handle of this timer.
func (active *ActiveItem) ID() uuid.UUID { return active.id }

// Item returns the template this timer was created from.
func (active *ActiveItem) Item() model.Item { return active.item }

// State returns the current lifecycle state.
func (active *ActiveItem) State() State { return active.state }

// IsRunning reports whether the countdown is advancing.
func (active *ActiveItem) IsRunning() bool { return active.state == StateRunning }

// IsCompleted reports whether the countdown reached its timeout.
func (active *ActiveItem) IsCompleted() bool { return active.state == StateCompleted }

// Start runs the countdown. A completed timer is re-armed from zero and a
// running timer is left untouched.
func (active *ActiveItem) Start() {
	switch active.state {
	case StateRunning:
		return
	case StateCompleted:
		active.Reset()
	}
	if active.state == StateIdle {
		active.accumulated = 0
	}
	active.startedAt = active.clock.Now()
	active.state = StateRunning
}

// Stop pauses a running countdown and banks the elapsed time.
func (active *ActiveItem) Stop() {
	if active.state != StateRunning {
		return
	}
	active.accumulated += active.clock.Since(active.startedAt)
	active.startedAt = time.Time{}
	active.state = StatePaused
}

// Reset returns the timer to idle with no elapsed time.
func (active *ActiveItem) Reset() {
	active.accumulated = 0
	active.startedAt = time.Time{}
	active.completionFired = false
	active.state = StateIdle
}

// Update checks the countdown against the current clock time.
func (active *ActiveItem) Update() bool {
	return active.UpdateAt(active.clock.Now())
}

// UpdateAt checks the countdown against now and reports whether the timer
// completed during this call. The completion callback fires at most once
// per run.
func (active *ActiveItem) UpdateAt(now time.Time) bool {
	if active.state != StateRunning {
		return false
	}
	if active.rawElapsedAt(now) < active.item.Timeout() || active.completionFired {
		return false
	}

	active.state = StateCompleted
	active.completionFired = true
	active.accumulated = max(active.item.Timeout(), 0)
	active.startedAt = time.Time{}
	if active.onComplete != nil {
		active.onComplete()
	}
	return true
}

// Elapsed returns the elapsed time clamped to the timeout.
func (active *ActiveItem) Elapsed() time.Duration {
	return active.ElapsedAt(active.clock.Now())
}

// ElapsedAt returns the elapsed time at now clamped to [0, timeout].
func (active *ActiveItem) ElapsedAt(now time.Time) time.Duration {
	limit := max(active.item.Timeout(), 0)
	return min(max(active.rawElapsedAt(now), 0), limit)
}

// Remaining returns the time left before completion, never negative.
func (active *ActiveItem) Remaining() time.Duration {
	return active.RemainingAt(active.clock.Now())
}

// RemainingAt returns the time left at now, never negative.
func (active *ActiveItem) RemainingAt(now time.Time) time.Duration {
	return max(active.item.Timeout()-active.rawElapsedAt(now), 0)
}

// RemainingString renders the remaining time as HH:MM:SS.
func (active *ActiveItem) RemainingString() string {
	return FormatRemaining(active.Remaining())
}

// ETA returns the expected completion time. It is only defined while the
// timer is running.
func (active *ActiveItem) ETA() (time.Time, bool) {
	return active.ETAAt(active.clock.Now())
}

// ETAAt returns the expected completion time relative to now.
func (active *ActiveItem) ETAAt(now time.Time) (time.Time, bool) {
	if active.state != StateRunning {
		return time.Time{}, false
	}
	return now.Add(active.RemainingAt(now)), true
}

func (active *ActiveItem) rawElapsedAt(now time.Time) time.Duration {
	if active.state != StateRunning {
		return active.accumulated
	}
	return active.accumulated + now.Sub(active.startedAt)
}
