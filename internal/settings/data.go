package settings

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"cloudkitchen/internal/backend"

	"github.com/google/uuid"
)

type Repository struct {
	db *sql.DB
}

// NewRepository creates a new settings repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const settingsColumns = `id, kitchen_name, tagline, phone, whatsapp_number, address, copyright,
	social_links, about_content, contact_content, privacy_policy, terms_of_service,
	refund_policy, legal_info, created_at, updated_at`

// Get returns the singleton settings row
func (r *Repository) Get() (*Settings, error) {
	row := r.db.QueryRow("SELECT " + settingsColumns + " FROM site_settings LIMIT 1")
	s, err := scanSettings(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, backend.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Upsert saves the settings. Because the row is a singleton with no
// identifier known to callers up front, the write first resolves a target:
// the id carried by the input, else the id of the existing row, else none,
// in which case a fresh row is inserted.
//
// The lookup and the write are two statements, not one transaction: two
// concurrent first-time saves can both see "no row" and both insert. With a
// single admin writing settings this stays a documented gap rather than
// something this layer serialises.
func (r *Repository) Upsert(input SettingsInput) (*Settings, error) {
	links, err := encodeSocialLinks(input.SocialLinks)
	if err != nil {
		return nil, err
	}

	targetID := input.ID
	if targetID == "" {
		err := r.db.QueryRow("SELECT id FROM site_settings LIMIT 1").Scan(&targetID)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
	}

	now := time.Now().UTC()

	if targetID != "" {
		res, err := r.db.Exec(`
			UPDATE site_settings SET
				kitchen_name = ?, tagline = ?, phone = ?, whatsapp_number = ?,
				address = ?, copyright = ?, social_links = ?,
				about_content = ?, contact_content = ?, privacy_policy = ?,
				terms_of_service = ?, refund_policy = ?, legal_info = ?,
				updated_at = ?
			WHERE id = ?
		`, input.KitchenName, input.Tagline, input.Phone, input.WhatsAppNumber,
			input.Address, input.Copyright, links,
			input.AboutContent, input.ContactContent, input.PrivacyPolicy,
			input.TermsOfService, input.RefundPolicy, input.LegalInfo,
			now, targetID)
		if err != nil {
			return nil, err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return nil, err
		}
		if affected == 0 {
			return nil, &backend.PostConditionError{Op: "settings update"}
		}
	} else {
		targetID = uuid.New().String()
		res, err := r.db.Exec(`
			INSERT INTO site_settings (id, kitchen_name, tagline, phone, whatsapp_number,
				address, copyright, social_links, about_content, contact_content,
				privacy_policy, terms_of_service, refund_policy, legal_info,
				created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, targetID, input.KitchenName, input.Tagline, input.Phone, input.WhatsAppNumber,
			input.Address, input.Copyright, links,
			input.AboutContent, input.ContactContent, input.PrivacyPolicy,
			input.TermsOfService, input.RefundPolicy, input.LegalInfo,
			now, now)
		if err != nil {
			return nil, err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return nil, err
		}
		if affected == 0 {
			return nil, &backend.PostConditionError{Op: "settings insert"}
		}
	}

	row := r.db.QueryRow("SELECT "+settingsColumns+" FROM site_settings WHERE id = ?", targetID)
	s, err := scanSettings(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &backend.PostConditionError{Op: "settings save"}
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func scanSettings(row *sql.Row) (*Settings, error) {
	var s Settings
	var links string
	err := row.Scan(&s.ID, &s.KitchenName, &s.Tagline, &s.Phone, &s.WhatsAppNumber,
		&s.Address, &s.Copyright, &links, &s.AboutContent, &s.ContactContent,
		&s.PrivacyPolicy, &s.TermsOfService, &s.RefundPolicy, &s.LegalInfo,
		&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if links == "" {
		s.SocialLinks = map[string]string{}
		return &s, nil
	}
	if err := json.Unmarshal([]byte(links), &s.SocialLinks); err != nil {
		return nil, err
	}
	if s.SocialLinks == nil {
		s.SocialLinks = map[string]string{}
	}
	return &s, nil
}

func encodeSocialLinks(links map[string]string) (string, error) {
	if links == nil {
		links = map[string]string{}
	}
	b, err := json.Marshal(links)
	if err != nil {
		return "", err
	}
	return string(b), nil
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
