package entity

import (
	"gorm.io/gorm"
)

// OrderItem is a line-item snapshot taken at checkout; name and price are
// copied from the menu item so later menu edits do not rewrite history.
type OrderItem struct {
	gorm.Model
	Name      string  `json:"name"`
	Qty       int     `json:"qty"`
	UnitPrice float64 `json:"unitPrice"`
	Total     float64 `json:"total"`

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`
}
