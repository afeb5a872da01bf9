package menu

import (
	"time"
)

// TimeSlot is one of the four fixed meal periods of a day
type TimeSlot string

const (
	TimeSlotMorning TimeSlot = "morning"
	TimeSlotSnacks  TimeSlot = "snacks"
	TimeSlotEvening TimeSlot = "evening"
	TimeSlotDinner  TimeSlot = "dinner"
)

// TimeSlots lists every valid slot in serving order
var TimeSlots = []TimeSlot{TimeSlotMorning, TimeSlotSnacks, TimeSlotEvening, TimeSlotDinner}

// ValidTimeSlot reports whether s is one of the four enumerated slots
func ValidTimeSlot(s TimeSlot) bool {
	switch s {
	case TimeSlotMorning, TimeSlotSnacks, TimeSlotEvening, TimeSlotDinner:
		return true
	}
	return false
}

// Day groups the menu by weekday. Days are seeded by migration and never
// mutated through this API.
type Day struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	DisplayOrder int    `json:"display_order"`
}

// Food is a single menu item belonging to one day and one time slot
type Food struct {
	ID          string    `json:"id"`
	DayID       string    `json:"day_id"`
	TimeSlot    TimeSlot  `json:"time_slot"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	Ingredients []string  `json:"ingredients"`
	Available   bool      `json:"available"`
	IsSpecial   bool      `json:"is_special"`
	ImageURL    *string   `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`

	// Day is the owning day's name, populated only by the admin listing join
	Day string `json:"day,omitempty"`
}

// FoodCreateRequest is the request body for adding a food
type FoodCreateRequest struct {
	Name        string   `json:"name" binding:"required"`
	DayID       string   `json:"day_id" binding:"required"`
	TimeSlot    TimeSlot `json:"time_slot" binding:"required"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Description string   `json:"description"`
	Ingredients []string `json:"ingredients"`
	Available   bool     `json:"available"`
	IsSpecial   bool     `json:"is_special"`
	ImageURL    *string  `json:"image_url"`
}

// FoodUpdateRequest is the request body for a partial food update. ID and
// CreatedAt are accepted so clients can post a record back unchanged, but
// they are identity fields and are never written.
type FoodUpdateRequest struct {
	ID          *string    `json:"id"`
	CreatedAt   *time.Time `json:"created_at"`
	Name        *string    `json:"name"`
	DayID       *string    `json:"day_id"`
	TimeSlot    *TimeSlot  `json:"time_slot"`
	Price       *float64   `json:"price" binding:"omitempty,gte=0"`
	Description *string    `json:"description"`
	Ingredients []string   `json:"ingredients"`
	Available   *bool      `json:"available"`
	IsSpecial   *bool      `json:"is_special"`
	ImageURL    *string    `json:"image_url"`
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
