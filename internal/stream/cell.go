// Package stream provides the replay-latest multicast primitive the derived
// state publishers are built on: a single-writer value cell that any number of
// consumers can subscribe to, each immediately receiving the current value and
// then every newer one, latest wins.
package stream

import (
	"context"
	"sync"
)

type subscriber[T any] struct {
	ch     chan T
	ctx    context.Context
	cancel context.CancelFunc
}

// Cell holds the most recently published value of type T and broadcasts
// updates to all live subscribers. Per-subscriber channels have capacity one
// and are drained before each send, so a slow consumer observes the newest
// value instead of a backlog; intermediate values may be skipped but never
// reordered.
type Cell[T any] struct {
	mu     sync.Mutex
	latest T
	seeded bool
	subs   []*subscriber[T]
	wake   chan struct{}
}

func NewCell[T any]() *Cell[T] {
	return &Cell[T]{wake: make(chan struct{}, 1)}
}

// Set stores v as the latest value and broadcasts it. Cancelled subscribers
// are pruned on the way through.
func (c *Cell[T]) Set(v T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.latest = v
	c.seeded = true

	active := c.subs[:0]
	for _, sub := range c.subs {
		select {
		case <-sub.ctx.Done():
			continue
		default:
		}
		active = append(active, sub)

		// Drain any unconsumed value first; with the mutex held the channel
		// then has room, so the send cannot block.
		select {
		case <-sub.ch:
		default:
		}
		sub.ch <- v
	}
	c.subs = active
}

// Latest returns the current value, if any has been published yet.
func (c *Cell[T]) Latest() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.latest, c.seeded
}

// Subscribe attaches a consumer. If a value has been published the channel is
// primed with it before Subscribe returns. The returned cancel detaches the
// subscriber immediately; it never affects other subscribers.
func (c *Cell[T]) Subscribe(ctx context.Context) (<-chan T, context.CancelFunc) {
	subCtx, cancel := context.WithCancel(ctx)
	sub := &subscriber[T]{
		ch:     make(chan T, 1),
		ctx:    subCtx,
		cancel: cancel,
	}

	c.mu.Lock()
	if c.seeded {
		sub.ch <- c.latest
	}
	wasIdle := c.liveCountLocked() == 0
	c.subs = append(c.subs, sub)
	c.mu.Unlock()

	if wasIdle {
		select {
		case c.wake <- struct{}{}:
		default:
		}
	}
	return sub.ch, cancel
}

// SubscriberCount reports how many subscribers are still live.
func (c *Cell[T]) SubscriberCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.liveCountLocked()
}

func (c *Cell[T]) liveCountLocked() int {
	n := 0
	for _, sub := range c.subs {
		select {
		case <-sub.ctx.Done():
		default:
			n++
		}
	}
	return n
}

// Wake signals when the cell transitions from zero subscribers to one. A
// producer that paused while the cell was idle listens here to know it must
// recompute from fresh state.
func (c *Cell[T]) Wake() <-chan struct{} {
	return c.wake
}
