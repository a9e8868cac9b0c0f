package controllers

import (
	"errors"
	"net/http"

	"github.com/Shaan-kapoor/restaurant-menu-platform/entity"
	"github.com/Shaan-kapoor/restaurant-menu-platform/pkg/apperr"
	"github.com/Shaan-kapoor/restaurant-menu-platform/pkg/resp"
	"github.com/Shaan-kapoor/restaurant-menu-platform/pkg/rolegate"
	"github.com/Shaan-kapoor/restaurant-menu-platform/repository"
	"github.com/Shaan-kapoor/restaurant-menu-platform/services"
	"github.com/Shaan-kapoor/restaurant-menu-platform/utils"

	"github.com/gin-gonic/gin"
)

// DashboardTab is the closed set of dashboard views. Free-form tab strings
// invite invalid states; parse into this instead.
type DashboardTab string

const (
	TabOverview DashboardTab = "overview"
	TabMenu     DashboardTab = "menu"
	TabOrders   DashboardTab = "orders"
	TabSettings DashboardTab = "settings"
)

func ParseDashboardTab(raw string) (DashboardTab, error) {
	if raw == "" {
		return TabOverview, nil
	}
	switch t := DashboardTab(raw); t {
	case TabOverview, TabMenu, TabOrders, TabSettings:
		return t, nil
	}
	return "", apperr.Validation("unknown dashboard tab")
}

type DashboardController struct {
	Auth     *services.AuthService
	Catalog  *services.CatalogService
	MenuRepo *repository.MenuRepository
	RestRepo *repository.RestaurantRepository
}

func NewDashboardController(auth *services.AuthService, catalog *services.CatalogService, menus *repository.MenuRepository, rests *repository.RestaurantRepository) *DashboardController {
	return &DashboardController{Auth: auth, Catalog: catalog, MenuRepo: menus, RestRepo: rests}
}

// restaurantForOwner loads the caller's restaurant or renders the
// finish-signup redirect.
func (d *DashboardController) restaurantForOwner(c *gin.Context) (*entity.Restaurant, bool) {
	rest, err := d.Auth.RestaurantFor(c.Request.Context(), utils.CurrentUserID(c))
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			decision := rolegate.MissingOwnerRecord()
			resp.Redirect(c, http.StatusConflict, decision.RedirectTo)
			return nil, false
		}
		resp.Error(c, err)
		return nil, false
	}
	return rest, true
}

// GET /partner/dashboard?tab=
func (d *DashboardController) Dashboard(c *gin.Context) {
	tab, err := ParseDashboardTab(c.Query("tab"))
	if err != nil {
		resp.Error(c, err)
		return
	}

	rest, ok := d.restaurantForOwner(c)
	if !ok {
		return
	}

	payload := gin.H{"tab": tab, "restaurant": rest}

	switch tab {
	case TabOverview:
		items, _, err := d.Catalog.ListMenuItems(c.Request.Context(), rest.ID)
		if err != nil {
			resp.Error(c, err)
			return
		}
		orders, err := d.Catalog.ListOrdersForRestaurant(c.Request.Context(), rest.ID)
		if err != nil {
			resp.Error(c, err)
			return
		}
		payload["menuItems"] = items
		payload["recentOrders"] = orders
	case TabMenu:
		items, categories, err := d.Catalog.ListMenuItems(c.Request.Context(), rest.ID)
		if err != nil {
			resp.Error(c, err)
			return
		}
		payload["menuItems"] = items
		payload["categories"] = categories
	case TabOrders:
		orders, err := d.Catalog.ListOrdersForRestaurant(c.Request.Context(), rest.ID)
		if err != nil {
			resp.Error(c, err)
			return
		}
		payload["orders"] = orders
	case TabSettings:
		// settings renders from the restaurant record itself
	}

	resp.OK(c, payload)
}

type SettingsRequest struct {
	Name         string              `json:"name"`
	Description  string              `json:"description"`
	CuisineType  string              `json:"cuisineType"`
	Address      string              `json:"address"`
	Phone        string              `json:"phone"`
	Website      string              `json:"website"`
	ImageURL     string              `json:"imageUrl"`
	IsActive     *bool               `json:"isActive"`
	OpeningHours entity.OpeningHours `json:"openingHours"`
}

// PATCH /partner/dashboard/settings
func (d *DashboardController) UpdateSettings(c *gin.Context) {
	var req SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rest, ok := d.restaurantForOwner(c)
	if !ok {
		return
	}

	if req.Name != "" {
		rest.Name = req.Name
	}
	if req.Description != "" {
		rest.Description = req.Description
	}
	if req.CuisineType != "" {
		rest.CuisineType = req.CuisineType
	}
	if req.Address != "" {
		rest.Address = req.Address
	}
	if req.Phone != "" {
		rest.Phone = req.Phone
	}
	if req.Website != "" {
		rest.Website = req.Website
	}
	if req.ImageURL != "" {
		rest.ImageURL = req.ImageURL
	}
	if req.IsActive != nil {
		rest.IsActive = *req.IsActive
	}
	if req.OpeningHours != nil {
		rest.OpeningHours = req.OpeningHours
	}

	if err := d.RestRepo.Update(c.Request.Context(), rest); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, rest)
}

type MenuItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"min=0"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"imageUrl"`
}

// POST /partner/dashboard/menu
func (d *DashboardController) CreateMenuItem(c *gin.Context) {
	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rest, ok := d.restaurantForOwner(c)
	if !ok {
		return
	}

	item := entity.MenuItem{
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Category:     req.Category,
		ImageURL:     req.ImageURL,
		RestaurantID: rest.ID,
	}
	if err := d.MenuRepo.Create(c.Request.Context(), &item); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, item)
}

// PATCH /partner/dashboard/menu/:id
func (d *DashboardController) UpdateMenuItem(c *gin.Context) {
	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rest, ok := d.restaurantForOwner(c)
	if !ok {
		return
	}

	item, err := d.MenuRepo.FindByID(c.Request.Context(), parseID(c.Param("id")))
	if err != nil {
		resp.Error(c, err)
		return
	}
	if item.RestaurantID != rest.ID {
		resp.NotFound(c, "menu item not found")
		return
	}

	item.Name = req.Name
	item.Description = req.Description
	item.Price = req.Price
	item.Category = req.Category
	item.ImageURL = req.ImageURL

	if err := d.MenuRepo.Update(c.Request.Context(), item); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /partner/dashboard/menu/:id
func (d *DashboardController) DeleteMenuItem(c *gin.Context) {
	rest, ok := d.restaurantForOwner(c)
	if !ok {
		return
	}

	item, err := d.MenuRepo.FindByID(c.Request.Context(), parseID(c.Param("id")))
	if err != nil {
		resp.Error(c, err)
		return
	}
	if item.RestaurantID != rest.ID {
		resp.NotFound(c, "menu item not found")
		return
	}

	if err := d.MenuRepo.Delete(c.Request.Context(), item.ID); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": item.ID})
}
