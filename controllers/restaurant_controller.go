package controllers

import (
	"net/http"
	"strconv"

	"github.com/Shaan-kapoor/restaurant-menu-platform/pkg/resp"
	"github.com/Shaan-kapoor/restaurant-menu-platform/services"

	"github.com/gin-gonic/gin"
)

type RestaurantController struct {
	Catalog *services.CatalogService
	Auth    *services.AuthService
	QR      services.QRGenerator
}

func NewRestaurantController(catalog *services.CatalogService, auth *services.AuthService, qr services.QRGenerator) *RestaurantController {
	return &RestaurantController{Catalog: catalog, Auth: auth, QR: qr}
}

// GET /restaurants?search=&cuisine=
// Listing is active restaurants only; search/cuisine narrowing happens on
// the fetched set, same as the browsing page does.
func (rc *RestaurantController) List(c *gin.Context) {
	all, err := rc.Catalog.ListActiveRestaurants(c.Request.Context())
	if err != nil {
		resp.Error(c, err)
		return
	}

	filtered := services.FilterRestaurants(all, c.Query("search"), c.Query("cuisine"))
	resp.OK(c, gin.H{
		"restaurants":  filtered,
		"cuisineTypes": services.CuisineTypes(all),
	})
}

// GET /restaurants/:id, restaurant plus menu and derived category tabs
func (rc *RestaurantController) Detail(c *gin.Context) {
	id := parseID(c.Param("id"))
	if id == 0 {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}

	rest, err := rc.Catalog.GetRestaurant(c.Request.Context(), id)
	if err != nil {
		resp.Error(c, err)
		return
	}

	items, categories, err := rc.Catalog.ListMenuItems(c.Request.Context(), rest.ID)
	if err != nil {
		resp.Error(c, err)
		return
	}

	resp.OK(c, gin.H{
		"restaurant": rest,
		"menuItems":  items,
		"categories": categories,
	})
}

// GET /restaurants/:id/qr, a PNG QR code linking to the public menu
func (rc *RestaurantController) MenuQR(c *gin.Context) {
	id := parseID(c.Param("id"))
	if id == 0 {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	if _, err := rc.Catalog.GetRestaurant(c.Request.Context(), id); err != nil {
		resp.Error(c, err)
		return
	}

	png, err := rc.QR.MenuQR(id)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

type OwnerSignupRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`

	RestaurantName string `json:"restaurantName" binding:"required"`
	Description    string `json:"description"`
	CuisineType    string `json:"cuisineType" binding:"required"`
	Address        string `json:"address" binding:"required"`
	Phone          string `json:"phone" binding:"required"`
	Website        string `json:"website"`
	ImageURL       string `json:"imageUrl"`
}

// POST /restaurant-signup, owner account plus restaurant in one go
func (rc *RestaurantController) OwnerSignup(c *gin.Context) {
	var req OwnerSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, rest, err := rc.Auth.SignUpOwner(c.Request.Context(), services.OwnerSignUpInput{
		Account: services.SignUpInput{
			Email:           req.Email,
			Password:        req.Password,
			ConfirmPassword: req.ConfirmPassword,
			Name:            req.Name,
		},
		RestaurantName: req.RestaurantName,
		Description:    req.Description,
		CuisineType:    req.CuisineType,
		Address:        req.Address,
		Phone:          req.Phone,
		Website:        req.Website,
		ImageURL:       req.ImageURL,
	})
	if err != nil {
		resp.Error(c, err)
		return
	}

	resp.Created(c, gin.H{
		"user":       userPayload(user),
		"restaurant": rest,
	})
}

func parseID(raw string) uint {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0
	}
	return uint(id)
}
