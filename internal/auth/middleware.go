package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	// Context keys
	ContextKeyAdmin = "auth_admin"
)

// Middleware provides session-based authentication middleware
type Middleware struct {
	sessionStore *SessionStore
}

// NewMiddleware creates a new middleware instance
func NewMiddleware(sessionStore *SessionStore) *Middleware {
	return &Middleware{sessionStore: sessionStore}
}

// RequireSession returns a middleware that validates session cookies
func (m *Middleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := m.sessionStore.GetSessionFromCookie(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "not authenticated",
			})
			return
		}

		admin, err := m.sessionStore.GetAdminFromSession(sessionID)
		if err != nil || admin == nil {
			m.sessionStore.ClearSessionCookie(c)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "session expired or invalid",
			})
			return
		}

		c.Set(ContextKeyAdmin, admin)
		c.Next()
	}
}

// OptionalSession attempts to load a session but doesn't fail if none exists
func (m *Middleware) OptionalSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := m.sessionStore.GetSessionFromCookie(c)
		if err != nil {
			c.Next()
			return
		}

		admin, err := m.sessionStore.GetAdminFromSession(sessionID)
		if err == nil && admin != nil {
			c.Set(ContextKeyAdmin, admin)
		}

		c.Next()
	}
}

// GetAdminFromContext retrieves the authenticated admin from the context
func GetAdminFromContext(c *gin.Context) *Admin {
	adminVal, exists := c.Get(ContextKeyAdmin)
	if !exists {
		return nil
	}
	admin, ok := adminVal.(*Admin)
	if !ok {
		return nil
	}
	return admin
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
