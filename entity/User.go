package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleCustomer        = "customer"
	RoleRestaurantOwner = "restaurant_owner"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Name     string `json:"name"`
	Role     string `gorm:"not null;default:customer" json:"role"`

	// reward profile, initialised at signup
	PointsEarned    int    `json:"pointsEarned"`
	OrdersCompleted int    `json:"ordersCompleted"`
	CurrentTier     string `gorm:"default:bronze" json:"currentTier"`

	LastLogin *time.Time `json:"lastLogin"`

	ResetToken       string     `json:"-"`
	ResetTokenExpiry *time.Time `json:"-"`

	// Relations, preload only when needed
	Restaurant *Restaurant `gorm:"foreignKey:UserID" json:"-"`
	Orders     []Order     `json:"-"`
}
