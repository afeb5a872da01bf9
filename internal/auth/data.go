package auth

import (
	"database/sql"
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
)

// Repository provides access to auth-related database operations
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new auth repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// DB returns the underlying database connection
func (r *Repository) DB() *sql.DB {
	return r.db
}

// EnableWAL enables Write-Ahead Logging mode for better concurrent performance
func (r *Repository) EnableWAL() error {
	_, err := r.db.Exec("PRAGMA journal_mode=WAL")
	return err
}

// GetAdminByEmail returns an admin by email, or nil when none exists
func (r *Repository) GetAdminByEmail(email string) (*Admin, error) {
	var a Admin
	err := r.db.QueryRow(`
		SELECT id, email, display_name, password_hash, created_at
		FROM admins WHERE email = ?
	`, email).Scan(&a.ID, &a.Email, &a.DisplayName, &a.PasswordHash, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// GetAdminByID returns an admin by ID, or nil when none exists
func (r *Repository) GetAdminByID(id int64) (*Admin, error) {
	var a Admin
	err := r.db.QueryRow(`
		SELECT id, email, display_name, password_hash, created_at
		FROM admins WHERE id = ?
	`, id).Scan(&a.ID, &a.Email, &a.DisplayName, &a.PasswordHash, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// CreateAdmin inserts a new admin with an already-hashed password
func (r *Repository) CreateAdmin(email, displayName, passwordHash string) (int64, error) {
	res, err := r.db.Exec(`
		INSERT INTO admins (email, display_name, password_hash) VALUES (?, ?, ?)
	`, email, displayName, passwordHash)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// EnsureAdmin makes sure the bootstrap admin exists. Called at startup with
// the configured credentials; does nothing when email or password is empty
// or the account already exists.
func (r *Repository) EnsureAdmin(email, password string) error {
	if email == "" || password == "" {
		return nil
	}
	existing, err := r.GetAdminByEmail(email)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if _, err := r.CreateAdmin(email, "Admin", string(hash)); err != nil {
		return err
	}
	log.Printf("Bootstrapped admin account %s", email)
	return nil
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
