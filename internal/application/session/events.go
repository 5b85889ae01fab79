// Package session owns the authenticated session lifecycle: sign-in and
// sign-out, the idle expiry watcher, and the auth-state events other
// components subscribe to.
package session

import (
	"sync"
	"time"
)

type EventType string

const (
	EventSignedIn         EventType = "signed_in"
	EventSignedOut        EventType = "signed_out"
	EventSessionExpired   EventType = "session_expired"
	EventProfileRefreshed EventType = "profile_refreshed"
)

// Event describes an auth-state change for one session.
type Event struct {
	Type      EventType
	UserID    uint
	SessionID string
	At        time.Time
}

// Hub fans auth-state events out to subscribers. Publishing never blocks: a
// subscriber that cannot keep up loses events rather than stalling sign-in
// or expiry paths.
type Hub struct {
	mu     sync.RWMutex
	nextID int
	subs   map[int]chan Event
}

func NewHub() *Hub {
	return &Hub{subs: make(map[int]chan Event)}
}

// Subscribe registers a listener. The returned cancel func must be called to
// release the channel.
func (h *Hub) Subscribe() (<-chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++
	ch := make(chan Event, 16)
	h.subs[id] = ch

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if c, ok := h.subs[id]; ok {
			delete(h.subs, id)
			close(c)
		}
	}
	return ch, cancel
}

func (h *Hub) Publish(e Event) {
	if e.At.IsZero() {
		e.At = time.Now()
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, ch := range h.subs {
		select {
		case ch <- e:
		default:
		}
	}
}
