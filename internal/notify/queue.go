// Package notify delivers timer completion notifications off the ticking
// goroutine. Producers call Enqueue, which never blocks; a single Run loop
// hands each notification to the configured sinks.
package notify

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"
)

// Notification describes one completed timer.
type Notification struct {
	Title string
	Body  string
	At    time.Time
}

// Sink presents a notification to the user.
type Sink interface {
	Notify(Notification) error
}

// Func adapts a plain function to Sink.
type Func func(Notification) error

// Notify calls fn.
func (fn Func) Notify(notification Notification) error {
	return fn(notification)
}

// Queue buffers notifications between producers and sinks.
type Queue struct {
	ch      chan Notification
	sinks   []Sink
	logger  *slog.Logger
	dropped atomic.Int64
}

// NewQueue creates a queue holding up to size pending notifications.
func NewQueue(size int, logger *slog.Logger, sinks ...Sink) *Queue {
	if size <= 0 {
		size = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Queue{
		ch:     make(chan Notification, size),
		sinks:  sinks,
		logger: logger,
	}
}

// Enqueue adds a notification without blocking. It returns false and counts
// a drop when the queue is full.
func (queue *Queue) Enqueue(notification Notification) bool {
	select {
	case queue.ch <- notification:
		return true
	default:
		queue.dropped.Add(1)
		return false
	}
}

// Dropped returns the number of notifications rejected by Enqueue.
func (queue *Queue) Dropped() int64 {
	return queue.dropped.Load()
}

// Run delivers notifications until ctx is cancelled.
func (queue *Queue) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case notification := <-queue.ch:
			queue.deliver(notification)
		}
	}
}

func (queue *Queue) deliver(notification Notification) {
	for _, sink := range queue.sinks {
		if err := sink.Notify(notification); err != nil {
			queue.logger.Warn("notification sink failed",
				slog.String("title", notification.Title),
				slog.Any("error", err),
			)
		}
	}
}
