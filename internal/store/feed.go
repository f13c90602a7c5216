package store

import "sync"

type Scope int

const (
	ScopeHarvests Scope = iota
	ScopeRecords
)

// Event describes a committed write. HarvestID is the harvest the write
// belongs to, for record writes the owning harvest.
type Event struct {
	Scope     Scope
	HarvestID uint
}

// Feed broadcasts change events from the gateway to any number of watchers.
// Delivery is a coalescing wake-up signal rather than an event log: watchers
// recompute from a full snapshot, so "something you care about changed" is all
// they need, and N writes may collapse into one signal.
type Feed struct {
	mu      sync.Mutex
	watches map[*Watch]struct{}
}

// Watch is one subscription to the feed. C carries at most one pending signal;
// a watcher that drains C is guaranteed to observe storage state at least as
// new as the write that produced the signal.
type Watch struct {
	C      chan struct{}
	filter func(Event) bool
	feed   *Feed
}

func NewFeed() *Feed {
	return &Feed{watches: make(map[*Watch]struct{})}
}

// Subscribe registers a watcher. A nil filter receives every event.
func (f *Feed) Subscribe(filter func(Event) bool) *Watch {
	w := &Watch{
		C:      make(chan struct{}, 1),
		filter: filter,
		feed:   f,
	}
	f.mu.Lock()
	f.watches[w] = struct{}{}
	f.mu.Unlock()
	return w
}

// Cancel detaches the watcher. No signals arrive after Cancel returns.
func (w *Watch) Cancel() {
	w.feed.mu.Lock()
	delete(w.feed.watches, w)
	w.feed.mu.Unlock()
}

// Publish notifies all watchers whose filter matches. It never blocks: a
// watcher with a signal already pending is left as-is.
func (f *Feed) Publish(event Event) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for w := range f.watches {
		if w.filter != nil && !w.filter(event) {
			continue
		}
		select {
		case w.C <- struct{}{}:
		default:
		}
	}
}
