package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/Shaan-kapoor/restaurant-menu-platform/entity"
	"github.com/Shaan-kapoor/restaurant-menu-platform/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupDB opens a fresh in-memory database per test.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Restaurant{},
		&entity.MenuItem{},
		&entity.Order{}, &entity.OrderItem{},
	))
	return db
}

func newAuthService(t *testing.T, db *gorm.DB) *AuthService {
	t.Helper()
	users := repository.NewUserRepository(db)
	rests := repository.NewRestaurantRepository(db)
	return NewAuthService(db, users, rests, nil, "test-secret", time.Hour)
}

func newCatalogService(db *gorm.DB) *CatalogService {
	return NewCatalogService(
		repository.NewRestaurantRepository(db),
		repository.NewMenuRepository(db),
		repository.NewOrderRepository(db),
	)
}
