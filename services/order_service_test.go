package services

import (
	"context"
	"testing"

	"github.com/Shaan-kapoor/restaurant-menu-platform/entity"
	"github.com/Shaan-kapoor/restaurant-menu-platform/pkg/apperr"
	"github.com/Shaan-kapoor/restaurant-menu-platform/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type feedSpy struct {
	orders []*entity.Order
}

func (f *feedSpy) BroadcastOrder(o *entity.Order) { f.orders = append(f.orders, o) }

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(db,
		repository.NewOrderRepository(db),
		repository.NewMenuRepository(db),
		repository.NewRestaurantRepository(db),
	)
}

func seedRestaurant(t *testing.T, db *gorm.DB, active bool) (entity.Restaurant, []entity.MenuItem) {
	t.Helper()
	rest := entity.Restaurant{Name: "Casa", CuisineType: "Mexican", IsActive: active}
	require.NoError(t, db.Create(&rest).Error)
	items := []entity.MenuItem{
		{Name: "Nachos", Price: 6.50, RestaurantID: rest.ID},
		{Name: "Burrito", Price: 9.25, RestaurantID: rest.ID},
	}
	require.NoError(t, db.Create(&items).Error)
	return rest, items
}

func TestCheckout(t *testing.T) {
	t.Run("merges_duplicate_lines", func(t *testing.T) {
		db := setupDB(t)
		svc := newOrderService(db)
		feed := &feedSpy{}
		svc.Feed = feed
		rest, items := seedRestaurant(t, db, true)

		order, err := svc.Checkout(context.Background(), 1, rest.ID, []CheckoutLine{
			{MenuItemID: items[0].ID, Qty: 1},
			{MenuItemID: items[1].ID, Qty: 2},
			{MenuItemID: items[0].ID, Qty: 1},
		})
		require.NoError(t, err)

		require.Len(t, order.Items, 2, "same item id merges into one line")
		assert.Equal(t, 2, order.Items[0].Qty)
		assert.Equal(t, 13.00, order.Items[0].Total)
		assert.Equal(t, 2, order.Items[1].Qty)
		assert.Equal(t, 18.50, order.Items[1].Total)

		assert.Equal(t, entity.OrderStatusPending, order.Status)
		assert.Equal(t, 31.50, order.Total)
		require.Len(t, feed.orders, 1)
		assert.Equal(t, order.ID, feed.orders[0].ID)
	})

	t.Run("rejects_foreign_menu_item", func(t *testing.T) {
		db := setupDB(t)
		svc := newOrderService(db)
		rest, _ := seedRestaurant(t, db, true)

		other := entity.Restaurant{Name: "Other", UserID: 2, IsActive: true}
		require.NoError(t, db.Create(&other).Error)
		foreign := entity.MenuItem{Name: "Ramen", Price: 12, RestaurantID: other.ID}
		require.NoError(t, db.Create(&foreign).Error)

		_, err := svc.Checkout(context.Background(), 1, rest.ID, []CheckoutLine{
			{MenuItemID: foreign.ID, Qty: 1},
		})
		assert.True(t, apperr.IsValidation(err))
	})

	t.Run("rejects_inactive_restaurant", func(t *testing.T) {
		db := setupDB(t)
		svc := newOrderService(db)
		rest, items := seedRestaurant(t, db, false)

		_, err := svc.Checkout(context.Background(), 1, rest.ID, []CheckoutLine{
			{MenuItemID: items[0].ID, Qty: 1},
		})
		assert.True(t, apperr.IsValidation(err))
	})

	t.Run("rejects_empty_cart", func(t *testing.T) {
		db := setupDB(t)
		svc := newOrderService(db)
		rest, _ := seedRestaurant(t, db, true)

		_, err := svc.Checkout(context.Background(), 1, rest.ID, nil)
		assert.True(t, apperr.IsValidation(err))
	})

	t.Run("unknown_restaurant", func(t *testing.T) {
		db := setupDB(t)
		svc := newOrderService(db)

		_, err := svc.Checkout(context.Background(), 1, 42, []CheckoutLine{{MenuItemID: 1, Qty: 1}})
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})
}

func TestGetOrderFor(t *testing.T) {
	db := setupDB(t)
	svc := newOrderService(db)
	feedless := svc // no feed wired; broadcast must be skipped
	rest, items := seedRestaurant(t, db, true)

	// owner of the restaurant
	require.NoError(t, db.Model(&entity.Restaurant{}).Where("id = ?", rest.ID).Update("user_id", 7).Error)

	order, err := feedless.Checkout(context.Background(), 1, rest.ID, []CheckoutLine{
		{MenuItemID: items[0].ID, Qty: 1},
	})
	require.NoError(t, err)

	t.Run("purchaser_can_read", func(t *testing.T) {
		got, err := svc.GetOrderFor(context.Background(), 1, order.ID)
		require.NoError(t, err)
		assert.Equal(t, order.ID, got.ID)
	})

	t.Run("owner_can_read", func(t *testing.T) {
		got, err := svc.GetOrderFor(context.Background(), 7, order.ID)
		require.NoError(t, err)
		assert.Equal(t, order.ID, got.ID)
	})

	t.Run("stranger_cannot_read", func(t *testing.T) {
		_, err := svc.GetOrderFor(context.Background(), 99, order.ID)
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})
}
