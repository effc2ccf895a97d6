// Package realtime turns posts-table change notifications into an
// in-process feed that HTTP event streams can subscribe to. Consumers
// treat any event as a signal to re-fetch the whole list.
package realtime

import (
	"sync"
)

// Event describes a single change on the posts table.
type Event struct {
	Op     string `json:"op"`
	PostID string `json:"postId"`
}

const subscriberBuffer = 8

type Hub struct {
	mu        sync.Mutex
	subs      map[chan Event]struct{}
	onPublish func(Event)
}

func NewHub() *Hub {
	return &Hub{
		subs: make(map[chan Event]struct{}),
	}
}

// Subscribe registers a new subscriber channel. The caller must call
// Unsubscribe with the returned channel when done.
func (h *Hub) Subscribe() chan Event {
	ch := make(chan Event, subscriberBuffer)

	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	return ch
}

func (h *Hub) Unsubscribe(ch chan Event) {
	h.mu.Lock()
	delete(h.subs, ch)
	h.mu.Unlock()
}

// OnPublish installs an observer invoked once per published event.
// Set it before the listener starts; it is not safe to change later.
func (h *Hub) OnPublish(fn func(Event)) {
	h.mu.Lock()
	h.onPublish = fn
	h.mu.Unlock()
}

// Publish fans the event out to all subscribers. The send is
// non-blocking: a subscriber with a full buffer misses the event, which
// is harmless because any later event carries the same "re-fetch"
// meaning.
func (h *Hub) Publish(ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.onPublish != nil {
		h.onPublish(ev)
	}

	for ch := range h.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

// SubscriberCount reports the number of registered subscribers.
func (h *Hub) SubscriberCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
