package order

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the public ordering routes
func RegisterRoutes(rg *gin.RouterGroup, h *Handler) {
	o := rg.Group("/order")
	{
		o.GET("/foods/:id/whatsapp", h.GetFoodLink)
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
