package backend

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by every repository. Anything else coming out of a
// repository is a backend failure (driver, transport, constraint we don't
// recognise) and is passed through unmodified.
var (
	// ErrNotFound is returned when a single-row lookup matches no row.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidCredentials is returned on sign-in with a wrong email or password.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ValidationError is a request rejected by a data constraint: a missing
// required field, a value outside its enumeration, a reference to a row that
// does not exist.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// Validationf builds a ValidationError from a format string.
func Validationf(format string, args ...interface{}) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// PostConditionError is a write that reported success but affected no row.
// The write must not be treated as a success with unknown data, and it must
// not be treated as a benign no-op either: the most common cause is a write
// rejected by a permission policy, which looks identical at this layer.
type PostConditionError struct {
	Op string
}

func (e *PostConditionError) Error() string {
	return fmt.Sprintf("%s reported success but affected no row; you may not be authenticated with write access", e.Op)
}

// IsPostCondition reports whether err is a PostConditionError.
func IsPostCondition(err error) bool {
	var pe *PostConditionError
	return errors.As(err, &pe)
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
