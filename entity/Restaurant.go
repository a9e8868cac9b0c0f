package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description"`
	CuisineType string `json:"cuisineType"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Website     string `json:"website"`
	ImageURL    string `json:"imageUrl"`

	Rating       float64 `json:"rating"`
	TotalRatings int     `json:"totalRatings"`
	IsActive     bool    `json:"isActive"`

	OpeningHours OpeningHours `gorm:"type:text" json:"openingHours"`

	// owner (users.id); one restaurant per owner
	UserID uint `gorm:"uniqueIndex" json:"ownerId"`
	User   User `json:"-"`

	MenuItems []MenuItem `json:"-"`
	Orders    []Order    `json:"-"`
}

type DayHours struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// OpeningHours maps a lowercase weekday name to its open/close window.
// A missing day means closed. Stored as a JSON text column.
type OpeningHours map[string]DayHours

func (h OpeningHours) Value() (driver.Value, error) {
	if h == nil {
		return nil, nil
	}
	return json.Marshal(h)
}

func (h *OpeningHours) Scan(value any) error {
	if value == nil {
		*h = nil
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("opening hours: unsupported column type")
	}
	return json.Unmarshal(raw, h)
}

// DefaultOpeningHours is applied to newly registered restaurants.
func DefaultOpeningHours() OpeningHours {
	return OpeningHours{
		"monday":    {Open: "09:00", Close: "22:00"},
		"tuesday":   {Open: "09:00", Close: "22:00"},
		"wednesday": {Open: "09:00", Close: "22:00"},
		"thursday":  {Open: "09:00", Close: "22:00"},
		"friday":    {Open: "09:00", Close: "23:00"},
		"saturday":  {Open: "10:00", Close: "23:00"},
		"sunday":    {Open: "10:00", Close: "22:00"},
	}
}
