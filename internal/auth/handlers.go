package auth

import (
	"io"
	"net/http"

	"cloudkitchen/internal/v0/common"

	"github.com/gin-gonic/gin"
)

const (
	// LoginURL is where unauthenticated admin views are sent
	LoginURL = "/admin/login"
)

// Handler handles authentication endpoints
type Handler struct {
	repo         *Repository
	sessionStore *SessionStore
	bus          *Bus
}

// NewHandler creates a new auth handler
func NewHandler(repo *Repository, sessionStore *SessionStore, bus *Bus) *Handler {
	return &Handler{
		repo:         repo,
		sessionStore: sessionStore,
		bus:          bus,
	}
}

// Login signs an admin in with email and password
// POST /auth/login
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.CreateErrorResponse([]string{err.Error()}))
		return
	}

	session, admin, err := h.sessionStore.SignIn(req.Email, req.Password)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	h.sessionStore.SetSessionCookie(c, session.ID)
	c.JSON(http.StatusOK, common.CreateSuccessResponse(gin.H{
		"admin":   admin,
		"session": session,
	}))
}

// Logout invalidates the current session
// GET /auth/logout
func (h *Handler) Logout(c *gin.Context) {
	sessionID, err := h.sessionStore.GetSessionFromCookie(c)
	if err == nil {
		if err := h.sessionStore.SignOut(sessionID); err != nil {
			common.RespondError(c, err)
			return
		}
	}
	h.sessionStore.ClearSessionCookie(c)
	c.JSON(http.StatusOK, common.CreateSuccessResponse(nil))
}

// Session returns the current session, or null data when there is none.
// Absence is not an error here.
// GET /auth/session
func (h *Handler) Session(c *gin.Context) {
	sessionID, err := h.sessionStore.GetSessionFromCookie(c)
	if err != nil {
		c.JSON(http.StatusOK, common.CreateSuccessResponse(nil))
		return
	}

	session, err := h.sessionStore.GetSession(sessionID)
	if err != nil {
		// Expired or unknown cookie: same as no session
		c.JSON(http.StatusOK, common.CreateSuccessResponse(nil))
		return
	}
	c.JSON(http.StatusOK, common.CreateSuccessResponse(session))
}

// Me returns the authenticated admin
// GET /auth/me
func (h *Handler) Me(c *gin.Context) {
	admin := GetAdminFromContext(c)
	if admin == nil {
		c.JSON(http.StatusUnauthorized, common.CreateErrorResponse([]string{"not authenticated"}))
		return
	}
	c.JSON(http.StatusOK, common.CreateSuccessResponse(admin))
}

// Watch streams guard states for the caller's session over SSE. The first
// event is the immediate check (a redirect signal when no live session
// exists); later events follow session transitions, so a sign-out or expiry
// elsewhere reaches open admin views without a reload.
// GET /auth/watch
func (h *Handler) Watch(c *gin.Context) {
	sessionID, err := h.sessionStore.GetSessionFromCookie(c)
	if err != nil {
		sessionID = ""
	}

	guard := NewGuard(h.sessionStore, h.bus, sessionID, LoginURL)
	defer guard.Close()

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case state, ok := <-guard.Changes():
			if !ok {
				return false
			}
			c.SSEvent("session", state)
			return true
		case <-c.Request.Context().Done():
			return false
		}
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
