package order

import (
	"fmt"
	"net/url"
)

// Ordering happens over WhatsApp: the site hands the customer a wa.me link
// with a pre-filled chat message, no payment flow involved.

// FormatPrice renders a price the way the menu displays it
func FormatPrice(price float64) string {
	return fmt.Sprintf("₹%.2f", price)
}

// Message builds the pre-filled order message, URL-encoded for a chat link
func Message(foodName, dayName string, price float64) string {
	msg := fmt.Sprintf("Hi! I'd like to order *%s* for *%s* - %s", foodName, dayName, FormatPrice(price))
	return url.QueryEscape(msg)
}

// ChatURL builds the wa.me link for a phone number and an already-encoded message
func ChatURL(phoneNumber, encodedMessage string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", phoneNumber, encodedMessage)
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
