package menu

import (
	"database/sql"
	"testing"
	"time"

	"cloudkitchen/internal/backend"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMenuSchema = `
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
INSERT INTO days (id, name, display_order) VALUES
    ('day-wed', 'Wednesday', 3),
    ('day-mon', 'Monday', 1),
    ('day-tue', 'Tuesday', 2);
`

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	db, err := sql.Open("sqlite3", "file::memory:?_foreign_keys=on")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(testMenuSchema)
	require.NoError(t, err)
	return NewRepository(db)
}

func floatPtr(v float64) *float64 { return &v }

func strPtr(v string) *string { return &v }

func createTestFood(t *testing.T, r *Repository, dayID string, slot TimeSlot, name string, special bool) *Food {
	t.Helper()
	food, err := r.CreateFood(FoodCreateRequest{
		Name:        name,
		DayID:       dayID,
		TimeSlot:    slot,
		Price:       floatPtr(120),
		Description: "test dish",
		Ingredients: []string{"rice", "ghee"},
		Available:   true,
		IsSpecial:   special,
	})
	require.NoError(t, err)
	return food
}

func TestListDays_OrderedForListing(t *testing.T) {
	r := newTestRepo(t)

	days, err := r.ListDays()
	require.NoError(t, err)
	require.Len(t, days, 3)
	assert.Equal(t, "Monday", days[0].Name)
	assert.Equal(t, "Tuesday", days[1].Name)
	assert.Equal(t, "Wednesday", days[2].Name)
}

func TestGetDay_Unknown(t *testing.T) {
	r := newTestRepo(t)

	_, err := r.GetDay("no-such-day")
	assert.ErrorIs(t, err, backend.ErrNotFound)
}

func TestCreateFood_AssignsIdentity(t *testing.T) {
	r := newTestRepo(t)

	food := createTestFood(t, r, "day-mon", TimeSlotDinner, "Paneer Butter Masala", false)
	assert.NotEmpty(t, food.ID)
	assert.False(t, food.CreatedAt.IsZero())
	assert.Equal(t, "day-mon", food.DayID)
	assert.Equal(t, TimeSlotDinner, food.TimeSlot)
	assert.Equal(t, []string{"rice", "ghee"}, food.Ingredients)
}

func TestCreateFood_UnknownDay(t *testing.T) {
	r := newTestRepo(t)

	_, err := r.CreateFood(FoodCreateRequest{
		Name:     "Orphan Dish",
		DayID:    "no-such-day",
		TimeSlot: TimeSlotMorning,
		Price:    floatPtr(50),
	})
	require.Error(t, err)
	assert.True(t, backend.IsValidation(err), "expected a validation error, got %v", err)
}

func TestCreateFood_BadTimeSlot(t *testing.T) {
	r := newTestRepo(t)

	_, err := r.CreateFood(FoodCreateRequest{
		Name:     "Midnight Snack",
		DayID:    "day-mon",
		TimeSlot: "midnight",
		Price:    floatPtr(50),
	})
	require.Error(t, err)
	assert.True(t, backend.IsValidation(err))
}

func TestCreateFood_NegativePrice(t *testing.T) {
	r := newTestRepo(t)

	_, err := r.CreateFood(FoodCreateRequest{
		Name:     "Free Lunch",
		DayID:    "day-mon",
		TimeSlot: TimeSlotMorning,
		Price:    floatPtr(-1),
	})
	require.Error(t, err)
	assert.True(t, backend.IsValidation(err))
}

func TestUpdateFood_IgnoresImmutableFields(t *testing.T) {
	r := newTestRepo(t)
	food := createTestFood(t, r, "day-mon", TimeSlotDinner, "Dal Tadka", false)

	bogusTime := time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)
	updated, err := r.UpdateFood(food.ID, FoodUpdateRequest{
		ID:        strPtr("some-other-id"),
		CreatedAt: &bogusTime,
		Price:     floatPtr(99),
	})
	require.NoError(t, err)

	// Only price changed; identity and lifecycle fields are untouched
	assert.Equal(t, food.ID, updated.ID)
	assert.Equal(t, food.CreatedAt.Unix(), updated.CreatedAt.Unix())
	assert.Equal(t, 99.0, updated.Price)
	assert.Equal(t, food.Name, updated.Name)

	// And nothing was written under the bogus id
	_, err = r.GetFood("some-other-id")
	assert.ErrorIs(t, err, backend.ErrNotFound)
}

func TestUpdateFood_MissingRowIsNotASilentNoop(t *testing.T) {
	r := newTestRepo(t)

	_, err := r.UpdateFood("no-such-food", FoodUpdateRequest{Price: floatPtr(10)})
	require.Error(t, err)
	assert.True(t, backend.IsPostCondition(err), "expected a post-condition failure, got %v", err)
}

func TestUpdateFood_NoFields(t *testing.T) {
	r := newTestRepo(t)
	food := createTestFood(t, r, "day-mon", TimeSlotDinner, "Kheer", false)

	_, err := r.UpdateFood(food.ID, FoodUpdateRequest{})
	require.Error(t, err)
	assert.True(t, backend.IsValidation(err))
}

func TestListAllFoods_NewestFirstWithDayName(t *testing.T) {
	r := newTestRepo(t)
	createTestFood(t, r, "day-mon", TimeSlotMorning, "Poha", false)
	createTestFood(t, r, "day-tue", TimeSlotSnacks, "Samosa", false)
	createTestFood(t, r, "day-mon", TimeSlotDinner, "Biryani", false)

	foods, err := r.ListAllFoods()
	require.NoError(t, err)
	require.Len(t, foods, 3)

	for i := 1; i < len(foods); i++ {
		assert.False(t, foods[i-1].CreatedAt.Before(foods[i].CreatedAt),
			"foods must be ordered newest first")
	}
	assert.Equal(t, "Biryani", foods[0].Name)
	assert.Equal(t, "Monday", foods[0].Day)
	assert.Equal(t, "Tuesday", foods[1].Day)
}

func TestListSpecialFoods(t *testing.T) {
	r := newTestRepo(t)
	createTestFood(t, r, "day-mon", TimeSlotMorning, "Poha", false)
	special := createTestFood(t, r, "day-tue", TimeSlotEvening, "Chef's Thali", true)

	foods, err := r.ListSpecialFoods()
	require.NoError(t, err)
	require.Len(t, foods, 1)
	assert.Equal(t, special.ID, foods[0].ID)
}

func TestListFoodsByDay_SlotFilter(t *testing.T) {
	r := newTestRepo(t)
	createTestFood(t, r, "day-mon", TimeSlotMorning, "Poha", false)
	dinner := createTestFood(t, r, "day-mon", TimeSlotDinner, "Biryani", false)
	createTestFood(t, r, "day-tue", TimeSlotDinner, "Pulao", false)

	foods, err := r.ListFoodsByDay("day-mon", TimeSlotDinner)
	require.NoError(t, err)
	require.Len(t, foods, 1)
	assert.Equal(t, dinner.ID, foods[0].ID)

	// No slot filter returns the whole day
	foods, err = r.ListFoodsByDay("day-mon", "")
	require.NoError(t, err)
	assert.Len(t, foods, 2)

	// An empty result set is valid, not an error
	foods, err = r.ListFoodsByDay("day-wed", TimeSlotDinner)
	require.NoError(t, err)
	assert.Empty(t, foods)
}

func TestListFoodsByDay_BadSlot(t *testing.T) {
	r := newTestRepo(t)

	_, err := r.ListFoodsByDay("day-mon", "brunch")
	require.Error(t, err)
	assert.True(t, backend.IsValidation(err))
}

func TestDeleteFood(t *testing.T) {
	r := newTestRepo(t)
	food := createTestFood(t, r, "day-mon", TimeSlotDinner, "Biryani", false)

	require.NoError(t, r.DeleteFood(food.ID))
	_, err := r.GetFood(food.ID)
	assert.ErrorIs(t, err, backend.ErrNotFound)

	// Deleting an unknown id is backend-defined; SQLite reports success
	assert.NoError(t, r.DeleteFood(food.ID))
}
