package services

import (
	"context"
	"log"

	"github.com/Shaan-kapoor/restaurant-menu-platform/entity"
	"github.com/Shaan-kapoor/restaurant-menu-platform/pkg/apperr"
	"github.com/Shaan-kapoor/restaurant-menu-platform/pkg/cart"
	"github.com/Shaan-kapoor/restaurant-menu-platform/repository"

	"gorm.io/gorm"
)

// OrderFeed receives newly created orders for live dashboards.
type OrderFeed interface {
	BroadcastOrder(o *entity.Order)
}

type OrderService struct {
	DB        *gorm.DB
	Orders    *repository.OrderRepository
	Menus     *repository.MenuRepository
	Rests     *repository.RestaurantRepository
	Publisher OrderEventPublisher // nil disables events
	Feed      OrderFeed           // nil disables the live feed
}

func NewOrderService(db *gorm.DB, orders *repository.OrderRepository, menus *repository.MenuRepository, rests *repository.RestaurantRepository) *OrderService {
	return &OrderService{DB: db, Orders: orders, Menus: menus, Rests: rests}
}

type CheckoutLine struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
	Qty        int  `json:"qty" binding:"min=1"`
}

// Checkout turns submitted cart lines into a pending order. Lines are
// rebuilt through the cart aggregator so duplicate item ids merge into one
// line, and every item must belong to the target restaurant.
func (s *OrderService) Checkout(ctx context.Context, userID, restID uint, lines []CheckoutLine) (*entity.Order, error) {
	if len(lines) == 0 {
		return nil, apperr.Validation("cart is empty")
	}

	rest, err := s.Rests.FindByID(ctx, restID)
	if err != nil {
		return nil, err
	}
	if !rest.IsActive {
		return nil, apperr.Validation("restaurant is not accepting orders")
	}

	ids := make([]uint, 0, len(lines))
	for _, l := range lines {
		if l.Qty < 1 {
			return nil, apperr.Validation("quantity must be at least 1")
		}
		ids = append(ids, l.MenuItemID)
	}
	count, err := s.Menus.CountByIDsAndRestaurant(ctx, ids, restID)
	if err != nil {
		return nil, err
	}
	if count != int64(len(dedupe(ids))) {
		return nil, apperr.Validation("menu item not in this restaurant")
	}

	// Rebuild through the aggregator: same item id merges, never duplicates.
	var c cart.Cart
	for _, l := range lines {
		item, err := s.Menus.FindByID(ctx, l.MenuItemID)
		if err != nil {
			return nil, err
		}
		c = cart.Add(c, *item)
		if l.Qty > 1 {
			var have int
			for _, existing := range c {
				if existing.Item.ID == item.ID {
					have = existing.Quantity
				}
			}
			c = cart.SetQuantity(c, item.ID, have+l.Qty-1)
		}
	}

	subtotal := cart.TotalPrice(c)
	order := &entity.Order{
		Subtotal:     subtotal,
		Total:        subtotal,
		Status:       entity.OrderStatusPending,
		UserID:       userID,
		RestaurantID: restID,
	}
	for _, l := range c {
		order.Items = append(order.Items, entity.OrderItem{
			Name:       l.Item.Name,
			Qty:        l.Quantity,
			UnitPrice:  l.Item.Price,
			Total:      cart.TotalPrice(cart.Cart{l}),
			MenuItemID: l.Item.ID,
		})
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.Orders.Create(tx, order)
	})
	if err != nil {
		return nil, err
	}

	if s.Publisher != nil {
		if err := s.Publisher.PublishOrderCreated(ctx, order); err != nil {
			log.Printf("order event publish failed: %v", err)
		}
	}
	if s.Feed != nil {
		s.Feed.BroadcastOrder(order)
	}
	return order, nil
}

// GetOrderFor returns the order if requester is the purchaser or the owner
// of the restaurant it was placed with.
func (s *OrderService) GetOrderFor(ctx context.Context, userID uint, orderID uint) (*entity.Order, error) {
	order, err := s.Orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID == userID {
		return order, nil
	}
	rest, err := s.Rests.FindByID(ctx, order.RestaurantID)
	if err == nil && rest.UserID == userID {
		return order, nil
	}
	return nil, apperr.ErrNotFound
}

func (s *OrderService) ListForUser(ctx context.Context, userID uint) ([]entity.Order, error) {
	return s.Orders.FindByUser(ctx, userID)
}

func dedupe(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
