package controllers

import (
	"github.com/Shaan-kapoor/restaurant-menu-platform/pkg/resp"
	"github.com/Shaan-kapoor/restaurant-menu-platform/services"
	"github.com/Shaan-kapoor/restaurant-menu-platform/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{Orders: orders}
}

type CheckoutRequest struct {
	Lines []services.CheckoutLine `json:"lines" binding:"required"`
}

// POST /checkout/:restaurantId
func (o *OrderController) Checkout(c *gin.Context) {
	restID := parseID(c.Param("restaurantId"))
	if restID == 0 {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := o.Orders.Checkout(c.Request.Context(), utils.CurrentUserID(c), restID, req.Lines)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /orders/:id, purchaser or owning restaurant only
func (o *OrderController) Detail(c *gin.Context) {
	order, err := o.Orders.GetOrderFor(c.Request.Context(), utils.CurrentUserID(c), parseID(c.Param("id")))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}

// GET /profile/orders
func (o *OrderController) ListForMe(c *gin.Context) {
	orders, err := o.Orders.ListForUser(c.Request.Context(), utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, orders)
}
