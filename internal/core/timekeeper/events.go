package timekeeper

import (
	"time"

	"github.com/google/uuid"

	"ticks/internal/core/model"
)

// State represents the lifecycle of an ActiveItem.
type State string

const (
	StateIdle      State = "idle"
	StateRunning   State = "running"
	StatePaused    State = "paused"
	StateCompleted State = "completed"
)

// EventType defines the type of Keeper event.
type EventType string

const (
	EventAdded       EventType = "added"
	EventStateChange EventType = "state_change"
	EventTick        EventType = "tick"
	EventCompleted   EventType = "completed"
	EventRemoved     EventType = "removed"
)

// Event represents a Keeper update for observers.
type Event struct {
	Type      EventType
	ID        uuid.UUID
	Item      model.Item
	State     State
	Remaining time.Duration
	At        time.Time
}
