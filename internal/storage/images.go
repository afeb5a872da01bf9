package storage

import (
	"crypto/rand"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/mr-tron/base58"
)

const (
	// FoodImagePrefix is the bucket-style directory for menu item images
	FoodImagePrefix = "food-images"

	// MediaRoutePrefix is the URL path the media directory is served under
	MediaRoutePrefix = "/media"
)

// ImageStore writes uploaded images under a local media directory and
// resolves their public URLs. Keys are random, so two uploads with the same
// original filename never collide.
type ImageStore struct {
	root    string
	baseURL string
}

// NewImageStore creates the media directory tree if needed
func NewImageStore(root, baseURL string) (*ImageStore, error) {
	if err := os.MkdirAll(filepath.Join(root, FoodImagePrefix), 0o755); err != nil {
		return nil, err
	}
	return &ImageStore{
		root:    root,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Root returns the media directory the store writes under
func (s *ImageStore) Root() string {
	return s.root
}

// SaveFood stores one food image and returns its public URL.
// Key format: Base58(random_bytes) + "-" + unix_millis + original extension.
func (s *ImageStore) SaveFood(filename string, r io.Reader) (string, error) {
	key, err := s.generateKey(filename)
	if err != nil {
		return "", err
	}

	// O_EXCL so a key collision surfaces as an error instead of an overwrite
	f, err := os.OpenFile(filepath.Join(s.root, FoodImagePrefix, key), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}

	return s.PublicURL(path.Join(FoodImagePrefix, key)), nil
}

// PublicURL resolves a stored object path to the URL it is served under
func (s *ImageStore) PublicURL(objectPath string) string {
	return s.baseURL + MediaRoutePrefix + "/" + objectPath
}

func (s *ImageStore) generateKey(filename string) (string, error) {
	randomBytes := make([]byte, 8)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", err
	}
	ext := strings.ToLower(filepath.Ext(filename))
	return fmt.Sprintf("%s-%d%s", base58.Encode(randomBytes), time.Now().UnixMilli(), ext), nil
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
