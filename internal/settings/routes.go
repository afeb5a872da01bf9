package settings

import (
	"cloudkitchen/internal/auth"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the settings routes. Reads are public because the
// site chrome (header, footer, static pages) renders from them; the write is
// session-protected.
func RegisterRoutes(rg *gin.RouterGroup, h *Handler, authMiddleware *auth.Middleware) {
	s := rg.Group("/settings")
	{
		s.GET("", h.GetSettings)
		s.GET("/pages/:slug", h.GetPage)

		protected := s.Group("")
		protected.Use(authMiddleware.RequireSession())
		{
			protected.PUT("", h.PutSettings)
		}
	}
}

//Cloud Kitchen API is the backend for the Cloud Kitchen ordering site: public menu browsing with WhatsApp ordering and an admin panel for managing menu items and site settings.
//Copyright (C) 2025 Cloud Kitchen
//This program is free software: you can redistribute it and/or modify
//it under the terms of the GNU General Public License as published by
//the Free Software Foundation, either version 3 of the License, or
//(at your option) any later version.
//
//This program is distributed in the hope that it will be useful,
//but WITHOUT ANY WARRANTY; without even the implied warranty of
//MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//GNU General Public License for more details.
//
//You should have received a copy of the GNU General Public License
//along with this program.  If not, see <https://www.gnu.org/licenses/>.
