package settings

import (
	"database/sql"
	"testing"

	"cloudkitchen/internal/backend"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSettingsSchema = `
CREATE TABLE site_settings (
    id TEXT PRIMARY KEY,
    kitchen_name TEXT NOT NULL DEFAULT '',
    tagline TEXT NOT NULL DEFAULT '',
    phone TEXT NOT NULL DEFAULT '',
    whatsapp_number TEXT NOT NULL DEFAULT '',
    address TEXT NOT NULL DEFAULT '',
    copyright TEXT NOT NULL DEFAULT '',
    social_links TEXT NOT NULL DEFAULT '{}',
    about_content TEXT NOT NULL DEFAULT '',
    contact_content TEXT NOT NULL DEFAULT '',
    privacy_policy TEXT NOT NULL DEFAULT '',
    terms_of_service TEXT NOT NULL DEFAULT '',
    refund_policy TEXT NOT NULL DEFAULT '',
    legal_info TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL
);
`

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	db, err := sql.Open("sqlite3", "file::memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(testSettingsSchema)
	require.NoError(t, err)
	return NewRepository(db)
}

func countRows(t *testing.T, r *Repository) int {
	t.Helper()
	var n int
	require.NoError(t, r.db.QueryRow("SELECT COUNT(*) FROM site_settings").Scan(&n))
	return n
}

func TestGet_NoRow(t *testing.T) {
	r := newTestRepo(t)

	_, err := r.Get()
	assert.ErrorIs(t, err, backend.ErrNotFound)
}

func TestUpsert_FirstSaveCreatesSingleton(t *testing.T) {
	r := newTestRepo(t)

	saved, err := r.Upsert(SettingsInput{
		KitchenName:    "Cloud Kitchen",
		Tagline:        "Fresh Home-Cooked Meals",
		WhatsAppNumber: "918102110031",
		SocialLinks:    map[string]string{"instagram": "https://instagram.com/cloudkitchen"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, "Cloud Kitchen", saved.KitchenName)
	assert.Equal(t, "https://instagram.com/cloudkitchen", saved.SocialLinks["instagram"])
	assert.Equal(t, 1, countRows(t, r))
}

func TestUpsert_SecondSaveUpdatesSameRow(t *testing.T) {
	r := newTestRepo(t)

	first, err := r.Upsert(SettingsInput{KitchenName: "Cloud Kitchen"})
	require.NoError(t, err)

	// A second save without an id must find and update the existing row,
	// not create a sibling
	second, err := r.Upsert(SettingsInput{KitchenName: "Mom's Kitchen", Phone: "+91 12345 67890"})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Mom's Kitchen", second.KitchenName)
	assert.Equal(t, "+91 12345 67890", second.Phone)
	assert.Equal(t, first.CreatedAt.Unix(), second.CreatedAt.Unix())
	assert.Equal(t, 1, countRows(t, r))
}

func TestUpsert_Idempotent(t *testing.T) {
	r := newTestRepo(t)
	input := SettingsInput{
		KitchenName: "Cloud Kitchen",
		Address:     "123 Food Street, Bangalore, India",
	}

	first, err := r.Upsert(input)
	require.NoError(t, err)
	second, err := r.Upsert(input)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.KitchenName, second.KitchenName)
	assert.Equal(t, first.Address, second.Address)
	assert.Equal(t, 1, countRows(t, r))
}

func TestUpsert_CallerSuppliedID(t *testing.T) {
	r := newTestRepo(t)

	first, err := r.Upsert(SettingsInput{KitchenName: "Cloud Kitchen"})
	require.NoError(t, err)

	// The id from a previous read addresses the row directly
	second, err := r.Upsert(SettingsInput{ID: first.ID, KitchenName: "Cloud Kitchen v2"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Cloud Kitchen v2", second.KitchenName)
	assert.Equal(t, 1, countRows(t, r))
}

func TestUpsert_UnknownIDIsAPostConditionFailure(t *testing.T) {
	r := newTestRepo(t)

	// An update addressed at a row that is not there must fail loudly, the
	// same way a permission-rejected write looks from here
	_, err := r.Upsert(SettingsInput{ID: "no-such-row", KitchenName: "Ghost Kitchen"})
	require.Error(t, err)
	assert.True(t, backend.IsPostCondition(err), "expected a post-condition failure, got %v", err)
	assert.Equal(t, 0, countRows(t, r))
}
