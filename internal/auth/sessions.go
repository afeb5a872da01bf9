package auth

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"cloudkitchen/internal/backend"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	// SessionCookieName is the name of the session cookie
	SessionCookieName = "kitchen_session"

	// DefaultSessionDuration is the default session lifetime
	DefaultSessionDuration = 7 * 24 * time.Hour // 7 days
)

// SessionStore manages server-side sessions and publishes every session
// state transition on the bus.
type SessionStore struct {
	repo            *Repository
	bus             *Bus
	sessionDuration time.Duration
	secureCookie    bool
}

// NewSessionStore creates a new session store
func NewSessionStore(repo *Repository, bus *Bus, sessionDuration time.Duration, secureCookie bool) *SessionStore {
	if sessionDuration == 0 {
		sessionDuration = DefaultSessionDuration
	}
	return &SessionStore{
		repo:            repo,
		bus:             bus,
		sessionDuration: sessionDuration,
		secureCookie:    secureCookie,
	}
}

// SignIn authenticates an admin by email and password and creates a session
func (s *SessionStore) SignIn(email, password string) (*Session, *Admin, error) {
	admin, err := s.repo.GetAdminByEmail(email)
	if err != nil {
		return nil, nil, err
	}
	if admin == nil {
		return nil, nil, backend.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, nil, backend.ErrInvalidCredentials
	}

	session, err := s.CreateSession(admin.ID)
	if err != nil {
		return nil, nil, err
	}
	return session, admin, nil
}

// SignOut invalidates a session
func (s *SessionStore) SignOut(sessionID string) error {
	if err := s.DeleteSession(sessionID); err != nil {
		return err
	}
	s.bus.Publish(SessionEvent{Type: SessionSignedOut, SessionID: sessionID})
	return nil
}

// CreateSession creates a new session for an admin
func (s *SessionStore) CreateSession(adminID int64) (*Session, error) {
	sessionID := uuid.New().String()
	expiresAt := time.Now().Add(s.sessionDuration)

	_, err := s.repo.db.Exec(`
		INSERT INTO sessions (id, admin_id, expires_at) VALUES (?, ?, ?)
	`, sessionID, adminID, expiresAt)
	if err != nil {
		return nil, err
	}

	s.bus.Publish(SessionEvent{Type: SessionSignedIn, SessionID: sessionID})

	return &Session{
		ID:        sessionID,
		AdminID:   adminID,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}, nil
}

// GetSession returns a session if it exists and is not expired. An absent or
// expired session is backend.ErrNotFound, not a transport failure.
func (s *SessionStore) GetSession(sessionID string) (*Session, error) {
	var session Session
	err := s.repo.db.QueryRow(`
		SELECT id, admin_id, expires_at, created_at
		FROM sessions
		WHERE id = ? AND expires_at > ?
	`, sessionID, time.Now()).Scan(&session.ID, &session.AdminID, &session.ExpiresAt, &session.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, backend.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// GetAdminFromSession returns the admin associated with a session
func (s *SessionStore) GetAdminFromSession(sessionID string) (*Admin, error) {
	session, err := s.GetSession(sessionID)
	if err != nil {
		return nil, err
	}
	return s.repo.GetAdminByID(session.AdminID)
}

// DeleteSession removes a session
func (s *SessionStore) DeleteSession(sessionID string) error {
	_, err := s.repo.db.Exec("DELETE FROM sessions WHERE id = ?", sessionID)
	return err
}

// SetSessionCookie sets the session cookie on the response
func (s *SessionStore) SetSessionCookie(c *gin.Context, sessionID string) {
	maxAge := int(s.sessionDuration.Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		SessionCookieName,
		sessionID,
		maxAge,
		"/",
		"",
		s.secureCookie,
		true, // httpOnly
	)
}

// ClearSessionCookie removes the session cookie
func (s *SessionStore) ClearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		SessionCookieName,
		"",
		-1,
		"/",
		"",
		s.secureCookie,
		true,
	)
}

// GetSessionFromCookie retrieves the session ID from the request cookie
func (s *SessionStore) GetSessionFromCookie(c *gin.Context) (string, error) {
	return c.Cookie(SessionCookieName)
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
