package services

import (
	"context"
	"testing"
	"time"

	"github.com/Shaan-kapoor/restaurant-menu-platform/entity"
	"github.com/Shaan-kapoor/restaurant-menu-platform/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restaurant(name, description, cuisine string) entity.Restaurant {
	return entity.Restaurant{Name: name, Description: description, CuisineType: cuisine, IsActive: true}
}

func TestFilterRestaurants(t *testing.T) {
	all := []entity.Restaurant{
		restaurant("Pizza Palace", "Wood-fired pies", "Italian"),
		restaurant("Sushi Bar", "Fresh fish daily", "Japanese"),
		restaurant("Corner Deli", "Best pizza bagels in town", "American"),
	}

	t.Run("no_constraints_returns_input", func(t *testing.T) {
		got := FilterRestaurants(all, "", "")
		assert.Equal(t, all, got, "order and content unchanged")
	})

	t.Run("search_matches_name_or_description", func(t *testing.T) {
		got := FilterRestaurants(all, "pizza", "")
		require.Len(t, got, 2)
		assert.Equal(t, "Pizza Palace", got[0].Name)
		assert.Equal(t, "Corner Deli", got[1].Name)
	})

	t.Run("search_is_case_insensitive", func(t *testing.T) {
		assert.Len(t, FilterRestaurants(all, "PIZZA", ""), 2)
		assert.Len(t, FilterRestaurants(all, "sUsHi", ""), 1)
	})

	t.Run("cuisine_is_exact_match", func(t *testing.T) {
		got := FilterRestaurants(all, "", "Italian")
		require.Len(t, got, 1)
		assert.Equal(t, "Pizza Palace", got[0].Name)

		assert.Empty(t, FilterRestaurants(all, "", "italian"), "cuisine match is exact, not folded")
	})

	t.Run("search_and_cuisine_combine", func(t *testing.T) {
		assert.Empty(t, FilterRestaurants(all, "pizza", "Japanese"))
		assert.Len(t, FilterRestaurants(all, "pizza", "American"), 1)
	})
}

func TestCuisineTypes(t *testing.T) {
	all := []entity.Restaurant{
		restaurant("A", "", "Thai"),
		restaurant("B", "", "Italian"),
		restaurant("C", "", "Thai"),
		restaurant("D", "", ""),
	}
	assert.Equal(t, []string{"Italian", "Thai"}, CuisineTypes(all))
}

func TestListActiveRestaurants_SkipsInactive(t *testing.T) {
	db := setupDB(t)
	svc := newCatalogService(db)

	active := restaurant("Open", "", "Thai")
	inactive := restaurant("Closed", "", "Thai")
	inactive.IsActive = false
	require.NoError(t, db.Create(&active).Error)
	require.NoError(t, db.Create(&inactive).Error)

	got, err := svc.ListActiveRestaurants(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Open", got[0].Name)
}

func TestGetRestaurant_NotFound(t *testing.T) {
	svc := newCatalogService(setupDB(t))
	_, err := svc.GetRestaurant(context.Background(), 42)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestListMenuItems_DerivesCategories(t *testing.T) {
	db := setupDB(t)
	svc := newCatalogService(db)

	rest := restaurant("Casa", "", "Mexican")
	require.NoError(t, db.Create(&rest).Error)
	items := []entity.MenuItem{
		{Name: "Nachos", Category: "Appetizer", RestaurantID: rest.ID},
		{Name: "Burrito", Category: "Entree", RestaurantID: rest.ID},
		{Name: "Guacamole", Category: "Appetizer", RestaurantID: rest.ID},
	}
	require.NoError(t, db.Create(&items).Error)

	got, categories, err := svc.ListMenuItems(context.Background(), rest.ID)
	require.NoError(t, err)
	assert.Len(t, got, 3)
	assert.Equal(t, []string{"all", "Appetizer", "Entree"}, categories)
}

func TestListMenuItems_StrictOwnership(t *testing.T) {
	db := setupDB(t)
	svc := newCatalogService(db)

	a := restaurant("A", "", "Thai")
	b := restaurant("B", "", "Thai")
	b.UserID = 2 // distinct owner, the column is unique
	require.NoError(t, db.Create(&a).Error)
	require.NoError(t, db.Create(&b).Error)
	require.NoError(t, db.Create(&entity.MenuItem{Name: "Pad Thai", RestaurantID: a.ID}).Error)

	items, categories, err := svc.ListMenuItems(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Empty(t, items, "menu items never leak across restaurants")
	assert.Equal(t, []string{"all"}, categories)
}

func TestListOrdersForRestaurant_NewestFirst(t *testing.T) {
	db := setupDB(t)
	svc := newCatalogService(db)

	rest := restaurant("Casa", "", "Mexican")
	require.NoError(t, db.Create(&rest).Error)

	base := time.Now().Add(-time.Hour)
	for i, total := range []float64{10, 20, 30} {
		o := entity.Order{RestaurantID: rest.ID, UserID: 1, Total: total, Status: entity.OrderStatusPending}
		o.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, db.Create(&o).Error)
	}
	// an order for someone else's restaurant must not show up
	other := entity.Order{RestaurantID: rest.ID + 1, UserID: 1, Total: 99}
	require.NoError(t, db.Create(&other).Error)

	got, err := svc.ListOrdersForRestaurant(context.Background(), rest.ID)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, 30.0, got[0].Total)
	assert.Equal(t, 20.0, got[1].Total)
	assert.Equal(t, 10.0, got[2].Total)
}
