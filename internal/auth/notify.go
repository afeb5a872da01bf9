package auth

import (
	"sync"
)

// Bus fans session events out to subscribers. Delivery is synchronous and
// happens at most once per subscriber per published transition; handlers
// must not block.
type Bus struct {
	mu     sync.Mutex
	nextID int64
	subs   map[int64]func(SessionEvent)
}

// NewBus creates an empty session event bus
func NewBus() *Bus {
	return &Bus{subs: make(map[int64]func(SessionEvent))}
}

// Subscribe registers a handler for session events. The returned
// subscription must be cancelled when the subscriber goes away; a leaked
// subscription keeps receiving events forever.
func (b *Bus) Subscribe(handler func(SessionEvent)) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	id := b.nextID
	b.subs[id] = handler
	return &Subscription{bus: b, id: id}
}

// Publish delivers an event to every current subscriber
func (b *Bus) Publish(ev SessionEvent) {
	b.mu.Lock()
	handlers := make([]func(SessionEvent), 0, len(b.subs))
	for _, h := range b.subs {
		handlers = append(handlers, h)
	}
	b.mu.Unlock()

	for _, h := range handlers {
		h(ev)
	}
}

// Subscription is a handle on one bus registration
type Subscription struct {
	bus  *Bus
	id   int64
	once sync.Once
}

// Cancel removes the subscription. Safe to call more than once.
func (s *Subscription) Cancel() {
	s.once.Do(func() {
		s.bus.mu.Lock()
		delete(s.bus.subs, s.id)
		s.bus.mu.Unlock()
	})
}

/*
Cloud Kitchen API is the backend for the Cloud Kitchen ordering site: public menu browsing with WhatsApp ordering and an admin panel for managing menu items and site settings.
Copyright (C) 2025 Cloud Kitchen
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU General Public License as published by
    the Free Software Foundation, either version 3 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU General Public License
    along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
