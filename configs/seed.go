package configs

import (
	"log"

	"github.com/Shaan-kapoor/restaurant-menu-platform/entity"

	"golang.org/x/crypto/bcrypt"
)

// SeedDemo creates one demo owner with a restaurant and a small menu so a
// fresh database has something to browse. No-op when any restaurant exists.
func SeedDemo() error {
	var count int64
	if err := db.Model(&entity.Restaurant{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("demo-owner"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	owner := entity.User{
		Email:       "owner@demo.local",
		Password:    string(hashed),
		Name:        "Demo Owner",
		Role:        entity.RoleRestaurantOwner,
		CurrentTier: "bronze",
	}
	if err := db.Create(&owner).Error; err != nil {
		return err
	}

	rest := entity.Restaurant{
		Name:         "Demo Trattoria",
		Description:  "Wood-fired pizza and fresh pasta",
		CuisineType:  "Italian",
		Address:      "1 Demo Street",
		Phone:        "555-0100",
		IsActive:     true,
		OpeningHours: entity.DefaultOpeningHours(),
		UserID:       owner.ID,
	}
	if err := db.Create(&rest).Error; err != nil {
		return err
	}

	items := []entity.MenuItem{
		{Name: "Margherita", Description: "Tomato, mozzarella, basil", Price: 11.50, Category: "Pizza", RestaurantID: rest.ID},
		{Name: "Diavola", Description: "Spicy salami pizza", Price: 13.00, Category: "Pizza", RestaurantID: rest.ID},
		{Name: "Bruschetta", Description: "Grilled bread, tomato, garlic", Price: 6.00, Category: "Appetizer", RestaurantID: rest.ID},
		{Name: "Tiramisu", Price: 7.50, Category: "Dessert", RestaurantID: rest.ID},
	}
	if err := db.Create(&items).Error; err != nil {
		return err
	}

	log.Printf("seeded demo restaurant %q (owner %s)", rest.Name, owner.Email)
	return nil
}
