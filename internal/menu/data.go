package menu

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"cloudkitchen/internal/backend"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"
)

type Repository struct {
	db *sql.DB
}

// NewRepository creates a new menu repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// DB returns the underlying database connection
func (r *Repository) DB() *sql.DB {
	return r.db
}

// --- Day Operations ---

// ListDays returns every weekday ordered for listing
func (r *Repository) ListDays() ([]Day, error) {
	rows, err := r.db.Query(`
		SELECT id, name, display_order
		FROM days
		ORDER BY display_order
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	days := []Day{}
	for rows.Next() {
		var d Day
		if err := rows.Scan(&d.ID, &d.Name, &d.DisplayOrder); err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, rows.Err()
}

// GetDay returns a single day by ID
func (r *Repository) GetDay(id string) (*Day, error) {
	var d Day
	err := r.db.QueryRow(`
		SELECT id, name, display_order
		FROM days WHERE id = ?
	`, id).Scan(&d.ID, &d.Name, &d.DisplayOrder)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, backend.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// --- Food Operations ---

const foodColumns = "id, day_id, time_slot, name, price, description, ingredients, available, is_special, image_url, created_at"

// ListFoodsByDay returns the foods of one day, optionally narrowed to a
// single time slot. An empty result is not an error.
func (r *Repository) ListFoodsByDay(dayID string, slot TimeSlot) ([]Food, error) {
	query := "SELECT " + foodColumns + " FROM foods WHERE day_id = ?"
	args := []interface{}{dayID}

	if slot != "" {
		if !ValidTimeSlot(slot) {
			return nil, backend.Validationf("time_slot must be one of %v", TimeSlots)
		}
		query += " AND time_slot = ?"
		args = append(args, string(slot))
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanFoods(rows)
}

// ListAllFoods returns every food with its owning day's name, newest first.
// Used by the admin menu manager.
func (r *Repository) ListAllFoods() ([]Food, error) {
	rows, err := r.db.Query(`
		SELECT f.id, f.day_id, f.time_slot, f.name, f.price, f.description,
		       f.ingredients, f.available, f.is_special, f.image_url, f.created_at,
		       d.name
		FROM foods f
		JOIN days d ON d.id = f.day_id
		ORDER BY f.created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	foods := []Food{}
	for rows.Next() {
		var f Food
		var ingredients string
		var imageURL sql.NullString
		if err := rows.Scan(&f.ID, &f.DayID, &f.TimeSlot, &f.Name, &f.Price, &f.Description,
			&ingredients, &f.Available, &f.IsSpecial, &imageURL, &f.CreatedAt, &f.Day); err != nil {
			return nil, err
		}
		if err := decodeIngredients(ingredients, &f); err != nil {
			return nil, err
		}
		if imageURL.Valid {
			f.ImageURL = &imageURL.String
		}
		foods = append(foods, f)
	}
	return foods, rows.Err()
}

// ListSpecialFoods returns the foods flagged for the home page, newest first
func (r *Repository) ListSpecialFoods() ([]Food, error) {
	rows, err := r.db.Query(`
		SELECT ` + foodColumns + `
		FROM foods
		WHERE is_special = 1
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanFoods(rows)
}

// GetFood returns a single food by ID
func (r *Repository) GetFood(id string) (*Food, error) {
	row := r.db.QueryRow("SELECT "+foodColumns+" FROM foods WHERE id = ?", id)
	f, err := scanFood(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, backend.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}

// CreateFood inserts a new food and returns it with its assigned identity
func (r *Repository) CreateFood(req FoodCreateRequest) (*Food, error) {
	if !ValidTimeSlot(req.TimeSlot) {
		return nil, backend.Validationf("time_slot must be one of %v", TimeSlots)
	}
	if req.Price == nil || *req.Price < 0 {
		return nil, backend.Validationf("price is required and must not be negative")
	}

	ingredients, err := encodeIngredients(req.Ingredients)
	if err != nil {
		return nil, err
	}

	id := uuid.New().String()
	createdAt := time.Now().UTC()

	res, err := r.db.Exec(`
		INSERT INTO foods (id, day_id, time_slot, name, price, description, ingredients, available, is_special, image_url, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, id, req.DayID, string(req.TimeSlot), req.Name, *req.Price, req.Description,
		ingredients, req.Available, req.IsSpecial, req.ImageURL, createdAt)
	if err != nil {
		return nil, translateConstraint(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, &backend.PostConditionError{Op: "food insert"}
	}

	return r.GetFood(id)
}

// UpdateFood applies a partial update to a food. The id and created_at of
// the stored record are immutable; values present in req are ignored.
func (r *Repository) UpdateFood(id string, req FoodUpdateRequest) (*Food, error) {
	sets := []string{}
	args := []interface{}{}

	if req.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *req.Name)
	}
	if req.DayID != nil {
		sets = append(sets, "day_id = ?")
		args = append(args, *req.DayID)
	}
	if req.TimeSlot != nil {
		if !ValidTimeSlot(*req.TimeSlot) {
			return nil, backend.Validationf("time_slot must be one of %v", TimeSlots)
		}
		sets = append(sets, "time_slot = ?")
		args = append(args, string(*req.TimeSlot))
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, backend.Validationf("price must not be negative")
		}
		sets = append(sets, "price = ?")
		args = append(args, *req.Price)
	}
	if req.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *req.Description)
	}
	if req.Ingredients != nil {
		ingredients, err := encodeIngredients(req.Ingredients)
		if err != nil {
			return nil, err
		}
		sets = append(sets, "ingredients = ?")
		args = append(args, ingredients)
	}
	if req.Available != nil {
		sets = append(sets, "available = ?")
		args = append(args, *req.Available)
	}
	if req.IsSpecial != nil {
		sets = append(sets, "is_special = ?")
		args = append(args, *req.IsSpecial)
	}
	if req.ImageURL != nil {
		sets = append(sets, "image_url = ?")
		args = append(args, *req.ImageURL)
	}

	if len(sets) == 0 {
		return nil, backend.Validationf("no updatable fields in request")
	}

	args = append(args, id)
	res, err := r.db.Exec("UPDATE foods SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return nil, translateConstraint(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	// Zero rows after a reported-successful update is a failure, not a
	// silent no-op: the row is gone or the write was rejected.
	if affected == 0 {
		return nil, &backend.PostConditionError{Op: "food update"}
	}

	return r.GetFood(id)
}

// DeleteFood removes a food. Whether deleting an unknown id fails is left to
// the database; SQLite reports success with zero rows affected.
func (r *Repository) DeleteFood(id string) error {
	_, err := r.db.Exec("DELETE FROM foods WHERE id = ?", id)
	return err
}

// --- helpers ---

func scanFood(row *sql.Row) (*Food, error) {
	var f Food
	var ingredients string
	var imageURL sql.NullString
	err := row.Scan(&f.ID, &f.DayID, &f.TimeSlot, &f.Name, &f.Price, &f.Description,
		&ingredients, &f.Available, &f.IsSpecial, &imageURL, &f.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err := decodeIngredients(ingredients, &f); err != nil {
		return nil, err
	}
	if imageURL.Valid {
		f.ImageURL = &imageURL.String
	}
	return &f, nil
}

func scanFoods(rows *sql.Rows) ([]Food, error) {
	foods := []Food{}
	for rows.Next() {
		var f Food
		var ingredients string
		var imageURL sql.NullString
		if err := rows.Scan(&f.ID, &f.DayID, &f.TimeSlot, &f.Name, &f.Price, &f.Description,
			&ingredients, &f.Available, &f.IsSpecial, &imageURL, &f.CreatedAt); err != nil {
			return nil, err
		}
		if err := decodeIngredients(ingredients, &f); err != nil {
			return nil, err
		}
		if imageURL.Valid {
			f.ImageURL = &imageURL.String
		}
		foods = append(foods, f)
	}
	return foods, rows.Err()
}

func encodeIngredients(ingredients []string) (string, error) {
	if ingredients == nil {
		ingredients = []string{}
	}
	b, err := json.Marshal(ingredients)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeIngredients(raw string, f *Food) error {
	if raw == "" {
		f.Ingredients = []string{}
		return nil
	}
	if err := json.Unmarshal([]byte(raw), &f.Ingredients); err != nil {
		return fmt.Errorf("decoding ingredients for food %s: %w", f.ID, err)
	}
	if f.Ingredients == nil {
		f.Ingredients = []string{}
	}
	return nil
}

// translateConstraint maps constraint violations onto the validation error
// class. Anything else passes through as-is.
func translateConstraint(err error) error {
	var se sqlite3.Error
	if errors.As(err, &se) && se.Code == sqlite3.ErrConstraint {
		switch se.ExtendedCode {
		case sqlite3.ErrConstraintForeignKey:
			return backend.Validationf("day_id does not reference a known day")
		case sqlite3.ErrConstraintCheck, sqlite3.ErrConstraintNotNull:
			return &backend.ValidationError{Msg: se.Error()}
		}
	}
	return err
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
