package order

import (
	"errors"
	"net/http"

	"cloudkitchen/internal/backend"
	"cloudkitchen/internal/menu"
	"cloudkitchen/internal/settings"
	"cloudkitchen/internal/v0/common"

	"github.com/gin-gonic/gin"
)

// Handler builds WhatsApp order links from a food, its day and the
// configured WhatsApp number
type Handler struct {
	menu     *menu.Repository
	settings *settings.Repository
}

func NewHandler(menuRepo *menu.Repository, settingsRepo *settings.Repository) *Handler {
	return &Handler{menu: menuRepo, settings: settingsRepo}
}

// GetFoodLink returns the pre-filled WhatsApp chat link for one food
// GET /order/foods/:id/whatsapp
func (h *Handler) GetFoodLink(c *gin.Context) {
	food, err := h.menu.GetFood(c.Param("id"))
	if err != nil {
		common.RespondError(c, err)
		return
	}
	day, err := h.menu.GetDay(food.DayID)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	s, err := h.settings.Get()
	if errors.Is(err, backend.ErrNotFound) || (err == nil && s.WhatsAppNumber == "") {
		c.JSON(http.StatusServiceUnavailable, common.CreateErrorResponse([]string{"WhatsApp ordering is not configured"}))
		return
	}
	if err != nil {
		common.RespondError(c, err)
		return
	}

	message := Message(food.Name, day.Name, food.Price)
	c.JSON(http.StatusOK, common.CreateSuccessResponse(gin.H{
		"url":   ChatURL(s.WhatsAppNumber, message),
		"price": FormatPrice(food.Price),
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
