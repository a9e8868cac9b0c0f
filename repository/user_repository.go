package repository

import (
	"context"
	"errors"

	"github.com/Shaan-kapoor/restaurant-menu-platform/entity"
	"github.com/Shaan-kapoor/restaurant-menu-platform/pkg/apperr"

	"gorm.io/gorm"
)

// UserRepository owns access to the users table.
type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Store("find user by email", err)
	}
	return &user, nil
}

func (r *UserRepository) CountByEmail(ctx context.Context, email string) (int64, error) {
	var count int64
	if err := r.DB.WithContext(ctx).Model(&entity.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return 0, apperr.Store("count users by email", err)
	}
	return count, nil
}

func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	if err := r.DB.WithContext(ctx).Create(user).Error; err != nil {
		return apperr.Store("create user", err)
	}
	return nil
}

func (r *UserRepository) Update(ctx context.Context, userID uint, updates map[string]any) error {
	if err := r.DB.WithContext(ctx).Model(&entity.User{}).Where("id = ?", userID).Updates(updates).Error; err != nil {
		return apperr.Store("update user", err)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var user entity.User
	if err := r.DB.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Store("find user", err)
	}
	return &user, nil
}

// RoleByID reads only the role column; this is the source of truth the
// middleware re-derives authorization from.
func (r *UserRepository) RoleByID(ctx context.Context, id uint) (string, error) {
	var user entity.User
	if err := r.DB.WithContext(ctx).Select("role").First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperr.ErrNotFound
		}
		return "", apperr.Store("find user role", err)
	}
	return user.Role, nil
}
