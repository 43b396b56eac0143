package realtime

import (
	"sync"

	"warbler/warbler/sources/psql/models"
)

// Hub fans newly posted messages out to connected timeline streams.
// Each subscriber registers the author set it wants (itself plus the
// users it follows, mirroring the home timeline's author set).
type Hub struct {
	mu   sync.RWMutex
	next int
	subs map[int]*Subscriber
}

type Subscriber struct {
	id      int
	authors map[uint]struct{}
	// C delivers messages authored by anyone in the subscriber's author
	// set. Slow consumers drop messages rather than block the hub.
	C chan models.Message
}

func NewHub() *Hub {
	return &Hub{subs: make(map[int]*Subscriber)}
}

// Subscribe registers a stream interested in the given author ids.
func (h *Hub) Subscribe(authorIDs []uint) *Subscriber {
	authors := make(map[uint]struct{}, len(authorIDs))
	for _, id := range authorIDs {
		authors[id] = struct{}{}
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.next++
	sub := &Subscriber{
		id:      h.next,
		authors: authors,
		C:       make(chan models.Message, 16),
	}
	h.subs[sub.id] = sub
	return sub
}

// Unsubscribe removes the stream and closes its channel.
func (h *Hub) Unsubscribe(sub *Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.subs[sub.id]; !ok {
		return
	}
	delete(h.subs, sub.id)
	close(sub.C)
}

// Publish delivers a new message to every subscriber whose author set
// contains the message's author.
func (h *Hub) Publish(msg models.Message) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, sub := range h.subs {
		if _, ok := sub.authors[msg.UserID]; !ok {
			continue
		}
		select {
		case sub.C <- msg:
		default:
		}
	}
}
