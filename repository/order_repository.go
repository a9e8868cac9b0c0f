package repository

import (
	"context"
	"errors"

	"github.com/Shaan-kapoor/restaurant-menu-platform/entity"
	"github.com/Shaan-kapoor/restaurant-menu-platform/pkg/apperr"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	if err := tx.Create(o).Error; err != nil {
		return apperr.Store("create order", err)
	}
	return nil
}

func (r *OrderRepository) FindByID(ctx context.Context, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.WithContext(ctx).Preload("Items").First(&o, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Store("find order", err)
	}
	return &o, nil
}

// FindByRestaurant returns a restaurant's orders, newest first.
func (r *OrderRepository) FindByRestaurant(ctx context.Context, restID uint) ([]entity.Order, error) {
	var orders []entity.Order
	if err := r.DB.WithContext(ctx).
		Where("restaurant_id = ?", restID).
		Order("created_at DESC").
		Preload("Items").
		Find(&orders).Error; err != nil {
		return nil, apperr.Store("list restaurant orders", err)
	}
	return orders, nil
}

func (r *OrderRepository) FindByUser(ctx context.Context, userID uint) ([]entity.Order, error) {
	var orders []entity.Order
	if err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Preload("Items").
		Find(&orders).Error; err != nil {
		return nil, apperr.Store("list user orders", err)
	}
	return orders, nil
}
