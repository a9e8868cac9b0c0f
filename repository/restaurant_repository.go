package repository

import (
	"context"
	"errors"

	"github.com/Shaan-kapoor/restaurant-menu-platform/entity"
	"github.com/Shaan-kapoor/restaurant-menu-platform/pkg/apperr"

	"gorm.io/gorm"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

// FindActive returns restaurants visible to anonymous visitors. No ordering
// beyond what the database returns.
func (r *RestaurantRepository) FindActive(ctx context.Context) ([]entity.Restaurant, error) {
	var rests []entity.Restaurant
	if err := r.DB.WithContext(ctx).Where("is_active = ?", true).Find(&rests).Error; err != nil {
		return nil, apperr.Store("list active restaurants", err)
	}
	return rests, nil
}

func (r *RestaurantRepository) FindByID(ctx context.Context, id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.WithContext(ctx).First(&rest, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Store("find restaurant", err)
	}
	return &rest, nil
}

// FindByOwner returns the owner's restaurant; a restaurant is keyed to
// exactly one owner.
func (r *RestaurantRepository) FindByOwner(ctx context.Context, userID uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.WithContext(ctx).Where("user_id = ?", userID).First(&rest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Store("find restaurant by owner", err)
	}
	return &rest, nil
}

func (r *RestaurantRepository) Create(ctx context.Context, rest *entity.Restaurant) error {
	if err := r.DB.WithContext(ctx).Create(rest).Error; err != nil {
		return apperr.Store("create restaurant", err)
	}
	return nil
}

func (r *RestaurantRepository) Update(ctx context.Context, rest *entity.Restaurant) error {
	if err := r.DB.WithContext(ctx).Save(rest).Error; err != nil {
		return apperr.Store("update restaurant", err)
	}
	return nil
}
