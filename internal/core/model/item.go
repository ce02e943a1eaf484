package model

import "time"

// Item is a static timer template. Values are immutable; the With* methods
// return modified copies.
type Item struct {
	name    string
	kind    string
	action  string
	timeout time.Duration
}

// NewItem creates an Item.
func NewItem(name, kind, action string, timeout time.Duration) Item {
	return Item{name: name, kind: kind, action: action, timeout: timeout}
}

// Name returns the item label.
func (item Item) Name() string { return item.name }

// Type returns the free-form item type.
func (item Item) Type() string { return item.kind }

// Action returns the action text shown when the timer completes.
func (item Item) Action() string { return item.action }

// Timeout returns the countdown length.
func (item Item) Timeout() time.Duration { return item.timeout }

// TimeoutSeconds returns the countdown length in whole seconds.
func (item Item) TimeoutSeconds() int {
	return int(item.timeout / time.Second)
}

// WithName returns a copy of item with name replaced.
func (item Item) WithName(name string) Item {
	item.name = name
	return item
}

// WithType returns a copy of item with its type replaced.
func (item Item) WithType(kind string) Item {
	item.kind = kind
	return item
}

// WithAction returns a copy of item with action replaced.
func (item Item) WithAction(action string) Item {
	item.action = action
	return item
}

// WithTimeout returns a copy of item with timeout replaced. The value is
// not validated.
func (item Item) WithTimeout(timeout time.Duration) Item {
	item.timeout = timeout
	return item
}
