// Package cart implements the client-local cart: an in-memory accumulation of
// menu items for a single restaurant's browsing session. Every operation
// returns a new cart and leaves its input untouched so callers can compare
// before/after snapshots when re-rendering.
package cart

import (
	"math"

	"github.com/Shaan-kapoor/restaurant-menu-platform/entity"
)

// Line is one cart entry: a menu item with a quantity of at least 1.
type Line struct {
	Item     entity.MenuItem `json:"item"`
	Quantity int             `json:"quantity"`
}

type Cart []Line

// Add appends item with quantity 1, or increments the existing line for the
// same item id. The input cart is not mutated.
func Add(c Cart, item entity.MenuItem) Cart {
	out := make(Cart, len(c))
	copy(out, c)
	for i := range out {
		if out[i].Item.ID == item.ID {
			out[i].Quantity++
			return out
		}
	}
	return append(out, Line{Item: item, Quantity: 1})
}

// Remove drops the line for itemID, if present.
func Remove(c Cart, itemID uint) Cart {
	out := make(Cart, 0, len(c))
	for _, l := range c {
		if l.Item.ID != itemID {
			out = append(out, l)
		}
	}
	return out
}

// SetQuantity replaces the quantity of the line for itemID. A quantity of
// zero or less removes the line. Unknown item ids leave the cart unchanged.
func SetQuantity(c Cart, itemID uint, qty int) Cart {
	if qty <= 0 {
		return Remove(c, itemID)
	}
	out := make(Cart, len(c))
	copy(out, c)
	for i := range out {
		if out[i].Item.ID == itemID {
			out[i].Quantity = qty
			break
		}
	}
	return out
}

// TotalItems is the sum of line quantities.
func TotalItems(c Cart) int {
	n := 0
	for _, l := range c {
		n += l.Quantity
	}
	return n
}

// TotalPrice is the sum of price*quantity, rounded to 2 decimal places.
func TotalPrice(c Cart) float64 {
	var total float64
	for _, l := range c {
		total += l.Item.Price * float64(l.Quantity)
	}
	return math.Round(total*100) / 100
}
