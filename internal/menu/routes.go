package menu

import (
	"cloudkitchen/internal/auth"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the public browse routes and the
// session-protected admin routes
func RegisterRoutes(rg *gin.RouterGroup, h *Handler, authMiddleware *auth.Middleware) {
	menu := rg.Group("/menu")
	{
		// Public menu browsing
		menu.GET("/days", h.GetDays)
		menu.GET("/days/:id", h.GetDay)
		menu.GET("/days/:id/foods", h.GetDayFoods)
		menu.GET("/foods/special", h.GetSpecialFoods)
		menu.GET("/foods/:id", h.GetFood)

		// Admin menu management
		admin := menu.Group("")
		admin.Use(authMiddleware.RequireSession())
		{
			admin.GET("/foods", h.GetAllFoods)
			admin.POST("/foods", h.PostFood)
			admin.POST("/foods/image", h.PostFoodImage)
			admin.PATCH("/foods/:id", h.PatchFood)
			admin.DELETE("/foods/:id", h.DeleteFood)
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
