package auth

import (
	"context"
	"log"
	"sync"
	"time"
)

const (
	// JanitorSweepInterval is how often expired sessions are swept
	JanitorSweepInterval = 30 * time.Second
)

// SessionJanitor deletes expired sessions in the background and publishes an
// expiry event for each, which is how guards learn about expiry without any
// request arriving on the dead session.
type SessionJanitor struct {
	repo     *Repository
	bus      *Bus
	interval time.Duration
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

// NewSessionJanitor creates a new janitor
func NewSessionJanitor(repo *Repository, bus *Bus, interval time.Duration) *SessionJanitor {
	if interval == 0 {
		interval = JanitorSweepInterval
	}
	return &SessionJanitor{
		repo:     repo,
		bus:      bus,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start launches the background sweep goroutine
func (j *SessionJanitor) Start(ctx context.Context) {
	j.wg.Add(1)
	go func() {
		defer j.wg.Done()
		ticker := time.NewTicker(j.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				j.Sweep()
			case <-j.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop stops the sweep goroutine and waits for it to exit
func (j *SessionJanitor) Stop() {
	close(j.stopCh)
	j.wg.Wait()
}

// Sweep removes every expired session and publishes one expiry event per
// removed session.
func (j *SessionJanitor) Sweep() {
	rows, err := j.repo.db.Query("SELECT id FROM sessions WHERE expires_at <= ?", time.Now())
	if err != nil {
		log.Printf("session sweep query failed: %v", err)
		return
	}
	var expired []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			log.Printf("session sweep scan failed: %v", err)
			return
		}
		expired = append(expired, id)
	}
	rows.Close()

	for _, id := range expired {
		if _, err := j.repo.db.Exec("DELETE FROM sessions WHERE id = ?", id); err != nil {
			log.Printf("session sweep delete failed: %v", err)
			continue
		}
		j.bus.Publish(SessionEvent{Type: SessionExpired, SessionID: id})
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
