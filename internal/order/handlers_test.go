package order

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cloudkitchen/internal/menu"
	"cloudkitchen/internal/settings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `
CREATE TABLE days (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    display_order INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE foods (
    id TEXT PRIMARY KEY,
    day_id TEXT NOT NULL REFERENCES days(id),
    time_slot TEXT NOT NULL CHECK (time_slot IN ('morning', 'snacks', 'evening', 'dinner')),
    name TEXT NOT NULL,
    price REAL NOT NULL CHECK (price >= 0),
    description TEXT NOT NULL DEFAULT '',
    ingredients TEXT NOT NULL DEFAULT '[]',
    available INTEGER NOT NULL DEFAULT 1,
    is_special INTEGER NOT NULL DEFAULT 0,
    image_url TEXT,
    created_at TIMESTAMP NOT NULL
);
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
INSERT INTO days (id, name, display_order) VALUES ('day-mon', 'Monday', 1);
`

func price(v float64) *float64 { return &v }

func newOrderServer(t *testing.T) (*gin.Engine, *menu.Repository, *settings.Repository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := sql.Open("sqlite3", "file::memory:?_foreign_keys=on")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	_, err = db.Exec(testSchema)
	require.NoError(t, err)

	menuRepo := menu.NewRepository(db)
	settingsRepo := settings.NewRepository(db)

	router := gin.New()
	v0 := router.Group("/api/v0")
	RegisterRoutes(v0, NewHandler(menuRepo, settingsRepo))
	return router, menuRepo, settingsRepo
}

func TestGetFoodLink(t *testing.T) {
	router, menuRepo, settingsRepo := newOrderServer(t)

	food, err := menuRepo.CreateFood(menu.FoodCreateRequest{
		Name: "Biryani", DayID: "day-mon", TimeSlot: menu.TimeSlotDinner, Price: price(250),
	})
	require.NoError(t, err)
	_, err = settingsRepo.Upsert(settings.SettingsInput{WhatsAppNumber: "918102110031"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/order/foods/"+food.ID+"/whatsapp", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data struct {
			URL   string `json:"url"`
			Price string `json:"price"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Contains(t, envelope.Data.URL, "https://wa.me/918102110031?text=")
	assert.Contains(t, envelope.Data.URL, "Biryani")
	assert.Contains(t, envelope.Data.URL, "Monday")
	assert.Equal(t, "₹250.00", envelope.Data.Price)
}

func TestGetFoodLink_UnknownFood(t *testing.T) {
	router, _, _ := newOrderServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/order/foods/no-such-food/whatsapp", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetFoodLink_NoSettings(t *testing.T) {
	router, menuRepo, _ := newOrderServer(t)

	food, err := menuRepo.CreateFood(menu.FoodCreateRequest{
		Name: "Biryani", DayID: "day-mon", TimeSlot: menu.TimeSlotDinner, Price: price(250),
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/order/foods/"+food.ID+"/whatsapp", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
