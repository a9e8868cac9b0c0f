package repository

import (
	"context"
	"errors"

	"github.com/Shaan-kapoor/restaurant-menu-platform/entity"
	"github.com/Shaan-kapoor/restaurant-menu-platform/pkg/apperr"

	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// FindByRestaurant returns every menu item under one restaurant. Items never
// leak across restaurants; ownership is strictly by restaurant id.
func (r *MenuRepository) FindByRestaurant(ctx context.Context, restID uint) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	if err := r.DB.WithContext(ctx).Where("restaurant_id = ?", restID).Find(&items).Error; err != nil {
		return nil, apperr.Store("list menu items", err)
	}
	return items, nil
}

func (r *MenuRepository) FindByID(ctx context.Context, id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.WithContext(ctx).First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Store("find menu item", err)
	}
	return &item, nil
}

func (r *MenuRepository) Create(ctx context.Context, item *entity.MenuItem) error {
	if err := r.DB.WithContext(ctx).Create(item).Error; err != nil {
		return apperr.Store("create menu item", err)
	}
	return nil
}

func (r *MenuRepository) Update(ctx context.Context, item *entity.MenuItem) error {
	if err := r.DB.WithContext(ctx).Save(item).Error; err != nil {
		return apperr.Store("update menu item", err)
	}
	return nil
}

func (r *MenuRepository) Delete(ctx context.Context, id uint) error {
	if err := r.DB.WithContext(ctx).Delete(&entity.MenuItem{}, id).Error; err != nil {
		return apperr.Store("delete menu item", err)
	}
	return nil
}

// CountByIDsAndRestaurant verifies every given item belongs to the restaurant.
func (r *MenuRepository) CountByIDsAndRestaurant(ctx context.Context, ids []uint, restID uint) (int64, error) {
	var count int64
	if err := r.DB.WithContext(ctx).Model(&entity.MenuItem{}).
		Where("id IN ? AND restaurant_id = ?", ids, restID).
		Count(&count).Error; err != nil {
		return 0, apperr.Store("count menu items", err)
	}
	return count, nil
}
