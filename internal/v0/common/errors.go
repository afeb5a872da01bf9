package common

import (
	"errors"
	"net/http"

	"cloudkitchen/internal/backend"

	"github.com/gin-gonic/gin"
)

// RespondError writes the response for a failed repository call. The mapping
// is fixed: validation 400, missing row 404, bad credentials 401, a write
// whose post-condition failed 403, everything else 500 with the message
// passed through untouched.
func RespondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case backend.IsValidation(err):
		status = http.StatusBadRequest
	case errors.Is(err, backend.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, backend.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case backend.IsPostCondition(err):
		status = http.StatusForbidden
	}
	c.JSON(status, CreateErrorResponse([]string{err.Error()}))
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
