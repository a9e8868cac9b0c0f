package entity

import (
	"gorm.io/gorm"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

type Order struct {
	gorm.Model
	Subtotal float64 `json:"subtotal"`
	Total    float64 `json:"total"`
	Status   string  `gorm:"not null;default:pending" json:"status"`

	UserID uint `json:"userId"`
	User   User `json:"-"` // preload only for owner views

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	Items []OrderItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}
