package auth

import (
	"sync"
)

// Guard watches one session and tells its owner whether admin screens may be
// shown. It evaluates once on construction, then re-evaluates on every
// session event from the bus, so an externally triggered sign-out or expiry
// reaches the watcher without a reload. State changes are emitted at most
// once per transition.
type Guard struct {
	store     *SessionStore
	sessionID string
	loginURL  string

	mu            sync.Mutex
	authenticated bool

	changes chan GuardState
	sub     *Subscription
}

// NewGuard creates a guard for the given session id (empty means no session
// cookie was presented). The initial state is always delivered on Changes.
func NewGuard(store *SessionStore, bus *Bus, sessionID, loginURL string) *Guard {
	g := &Guard{
		store:     store,
		sessionID: sessionID,
		loginURL:  loginURL,
		changes:   make(chan GuardState, 4),
	}
	g.evaluate(true)
	g.sub = bus.Subscribe(func(SessionEvent) {
		g.evaluate(false)
	})
	return g
}

// Authenticated reports the result of the most recent session check. The UI
// withholds protected content until the first true, avoiding a flash of
// admin screens before the check resolves.
func (g *Guard) Authenticated() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.authenticated
}

// Changes delivers guard states: the initial check, then one state per
// transition.
func (g *Guard) Changes() <-chan GuardState {
	return g.changes
}

// Close cancels the bus subscription. Must be called on watcher teardown; a
// leaked guard would keep re-evaluating against a gone watcher.
func (g *Guard) Close() {
	g.sub.Cancel()
}

func (g *Guard) evaluate(initial bool) {
	ok := false
	if g.sessionID != "" {
		if _, err := g.store.GetSession(g.sessionID); err == nil {
			ok = true
		}
	}

	g.mu.Lock()
	changed := ok != g.authenticated
	g.authenticated = ok
	g.mu.Unlock()

	if !initial && !changed {
		return
	}

	state := GuardState{Authenticated: ok}
	if !ok {
		state.RedirectTo = g.loginURL
	}

	// Never block the bus; a slow watcher just misses intermediate states.
	select {
	case g.changes <- state:
	default:
	}
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
