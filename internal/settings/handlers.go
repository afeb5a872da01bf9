package settings

import (
	"net/http"

	"cloudkitchen/internal/v0/common"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// GetSettings returns the singleton settings row
// GET /settings
func (h *Handler) GetSettings(c *gin.Context) {
	s, err := h.repo.Get()
	if err != nil {
		common.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, common.CreateSuccessResponse(s))
}

// PutSettings saves the settings, creating the row on first save
// PUT /settings
func (h *Handler) PutSettings(c *gin.Context) {
	var input SettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, common.CreateErrorResponse([]string{err.Error()}))
		return
	}
	s, err := h.repo.Upsert(input)
	if err != nil {
		common.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, common.CreateSuccessResponse(s))
}

// GetPage resolves a static page slug to its title and HTML content
// GET /settings/pages/:slug
func (h *Handler) GetPage(c *gin.Context) {
	page, ok := PageSlugs[c.Param("slug")]
	if !ok {
		c.JSON(http.StatusNotFound, common.CreateErrorResponse([]string{"unknown page"}))
		return
	}
	s, err := h.repo.Get()
	if err != nil {
		common.RespondError(c, err)
		return
	}
	content := page.Field(s)
	if content == "" {
		content = "<p>Content coming soon...</p>"
	}
	c.JSON(http.StatusOK, common.CreateSuccessResponse(gin.H{
		"title":   page.Title,
		"content": content,
	}))
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
