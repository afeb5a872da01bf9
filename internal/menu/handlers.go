package menu

import (
	"net/http"

	"cloudkitchen/internal/storage"
	"cloudkitchen/internal/v0/common"

	"github.com/gin-gonic/gin"
)

// Handler holds the repository and image store the menu endpoints use
type Handler struct {
	repo   *Repository
	images *storage.ImageStore
}

func NewHandler(repo *Repository, images *storage.ImageStore) *Handler {
	return &Handler{repo: repo, images: images}
}

// GetDays returns the weekdays in listing order
// GET /menu/days
func (h *Handler) GetDays(c *gin.Context) {
	days, err := h.repo.ListDays()
	if err != nil {
		common.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, common.CreateSuccessResponse(days))
}

// GetDay returns one weekday
// GET /menu/days/:id
func (h *Handler) GetDay(c *gin.Context) {
	day, err := h.repo.GetDay(c.Param("id"))
	if err != nil {
		common.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, common.CreateSuccessResponse(day))
}

// GetDayFoods returns the foods of one day, optionally filtered by slot
// GET /menu/days/:id/foods?slot=dinner
func (h *Handler) GetDayFoods(c *gin.Context) {
	foods, err := h.repo.ListFoodsByDay(c.Param("id"), TimeSlot(c.Query("slot")))
	if err != nil {
		common.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, common.CreateSuccessResponse(foods))
}

// GetAllFoods returns every food with its day name for the admin manager
// GET /menu/foods
func (h *Handler) GetAllFoods(c *gin.Context) {
	foods, err := h.repo.ListAllFoods()
	if err != nil {
		common.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, common.CreateSuccessResponse(foods))
}

// GetSpecialFoods returns the home page specials
// GET /menu/foods/special
func (h *Handler) GetSpecialFoods(c *gin.Context) {
	foods, err := h.repo.ListSpecialFoods()
	if err != nil {
		common.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, common.CreateSuccessResponse(foods))
}

// GetFood returns one food
// GET /menu/foods/:id
func (h *Handler) GetFood(c *gin.Context) {
	food, err := h.repo.GetFood(c.Param("id"))
	if err != nil {
		common.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, common.CreateSuccessResponse(food))
}

// PostFood adds a food
// POST /menu/foods
func (h *Handler) PostFood(c *gin.Context) {
	var req FoodCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.CreateErrorResponse([]string{err.Error()}))
		return
	}
	food, err := h.repo.CreateFood(req)
	if err != nil {
		common.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, common.CreateSuccessResponse(food))
}

// PatchFood applies a partial update to a food
// PATCH /menu/foods/:id
func (h *Handler) PatchFood(c *gin.Context) {
	var req FoodUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.CreateErrorResponse([]string{err.Error()}))
		return
	}
	food, err := h.repo.UpdateFood(c.Param("id"), req)
	if err != nil {
		common.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, common.CreateSuccessResponse(food))
}

// DeleteFood removes a food
// DELETE /menu/foods/:id
func (h *Handler) DeleteFood(c *gin.Context) {
	if err := h.repo.DeleteFood(c.Param("id")); err != nil {
		common.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, common.CreateSuccessResponse(nil))
}

// PostFoodImage uploads a food image and returns its public URL
// POST /menu/foods/image
func (h *Handler) PostFoodImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, common.CreateErrorResponse([]string{"a 'file' form field is required"}))
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		common.RespondError(c, err)
		return
	}
	defer f.Close()

	url, err := h.images.SaveFood(fileHeader.Filename, f)
	if err != nil {
		common.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, common.CreateSuccessResponse(gin.H{"url": url}))
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
