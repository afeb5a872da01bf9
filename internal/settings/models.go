package settings

import (
	"time"
)

// Settings is the singleton site-wide configuration record. At most one row
// exists; it is created lazily on the first admin save.
type Settings struct {
	ID             string            `json:"id"`
	KitchenName    string            `json:"kitchen_name"`
	Tagline        string            `json:"tagline"`
	Phone          string            `json:"phone"`
	WhatsAppNumber string            `json:"whatsapp_number"`
	Address        string            `json:"address"`
	Copyright      string            `json:"copyright"`
	SocialLinks    map[string]string `json:"social_links"`

	// Free-form HTML content rendered by the site's static pages
	AboutContent   string `json:"about_content"`
	ContactContent string `json:"contact_content"`
	PrivacyPolicy  string `json:"privacy_policy"`
	TermsOfService string `json:"terms_of_service"`
	RefundPolicy   string `json:"refund_policy"`
	LegalInfo      string `json:"legal_info"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SettingsInput is the request body for saving settings. ID, when present,
// is only used to address the existing row; created_at and updated_at are
// lifecycle fields owned by the repository and have no input counterpart.
type SettingsInput struct {
	ID             string            `json:"id"`
	KitchenName    string            `json:"kitchen_name"`
	Tagline        string            `json:"tagline"`
	Phone          string            `json:"phone"`
	WhatsAppNumber string            `json:"whatsapp_number"`
	Address        string            `json:"address"`
	Copyright      string            `json:"copyright"`
	SocialLinks    map[string]string `json:"social_links"`
	AboutContent   string            `json:"about_content"`
	ContactContent string            `json:"contact_content"`
	PrivacyPolicy  string            `json:"privacy_policy"`
	TermsOfService string            `json:"terms_of_service"`
	RefundPolicy   string            `json:"refund_policy"`
	LegalInfo      string            `json:"legal_info"`
}

// PageSlugs maps the site's static page slugs onto the settings content
// field each page renders.
var PageSlugs = map[string]struct {
	Title string
	Field func(*Settings) string
}{
	"about":   {"About Us", func(s *Settings) string { return s.AboutContent }},
	"contact": {"Contact Us", func(s *Settings) string { return s.ContactContent }},
	"privacy": {"Privacy Policy", func(s *Settings) string { return s.PrivacyPolicy }},
	"terms":   {"Terms of Service", func(s *Settings) string { return s.TermsOfService }},
	"refund":  {"Refund Policy", func(s *Settings) string { return s.RefundPolicy }},
	"legal":   {"Legal Information", func(s *Settings) string { return s.LegalInfo }},
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
