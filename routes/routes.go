package routes

import (
	"github.com/Shaan-kapoor/restaurant-menu-platform/configs"
	"github.com/Shaan-kapoor/restaurant-menu-platform/controllers"
	"github.com/Shaan-kapoor/restaurant-menu-platform/middlewares"
	"github.com/Shaan-kapoor/restaurant-menu-platform/pkg/rolegate"
	"github.com/Shaan-kapoor/restaurant-menu-platform/repository"
	"github.com/Shaan-kapoor/restaurant-menu-platform/services"
	"github.com/Shaan-kapoor/restaurant-menu-platform/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterRoutes wires repositories, services and controllers onto the
// engine and returns the order hub for main to run.
func RegisterRoutes(r *gin.Engine, cfg *configs.Config, db *gorm.DB, roleCache *repository.RoleCache, publisher services.OrderEventPublisher) *ws.OrderHub {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(db, userRepo, restRepo, roleCache, cfg.JWTSecret, cfg.JWTTTL)
	catalogSvc := services.NewCatalogService(restRepo, menuRepo, orderRepo)
	orderSvc := services.NewOrderService(db, orderRepo, menuRepo, restRepo)
	orderSvc.Publisher = publisher

	hub := ws.NewOrderHub(authSvc, catalogSvc)
	orderSvc.Feed = hub

	qr := services.DefaultQRGenerator{BaseURL: cfg.BaseURL}

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	restCtrl := controllers.NewRestaurantController(catalogSvc, authSvc, qr)
	dashCtrl := controllers.NewDashboardController(authSvc, catalogSvc, menuRepo, restRepo)
	orderCtrl := controllers.NewOrderController(orderSvc)

	public := middlewares.AuthMiddleware(cfg, authSvc, rolegate.PagePublic)
	customer := middlewares.AuthMiddleware(cfg, authSvc, rolegate.PageCustomerOnly)
	owner := middlewares.AuthMiddleware(cfg, authSvc, rolegate.PageOwnerOnly)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.POST("/logout", authCtrl.Logout)
		a.POST("/reset", authCtrl.Reset)
	}

	// Auth (protected)
	aAuth := a.Group("", customer)
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.PATCH("/me", authCtrl.UpdateMe)
	}

	// Public browsing
	r.GET("/restaurants", public, restCtrl.List)
	r.GET("/restaurants/:id", public, restCtrl.Detail)
	r.GET("/restaurants/:id/qr", public, restCtrl.MenuQR)

	// Owner signup (anonymous: it creates the account)
	r.POST("/restaurant-signup", restCtrl.OwnerSignup)

	// Orders (signed-in customers and owners alike)
	u := r.Group("/", customer)
	{
		u.POST("/checkout/:restaurantId", orderCtrl.Checkout)
		u.GET("/orders/:id", orderCtrl.Detail)
		u.GET("/profile/orders", orderCtrl.ListForMe)
	}

	// Partner dashboard (owner only)
	partner := r.Group("/partner", owner)
	{
		partner.GET("/dashboard", dashCtrl.Dashboard)
		partner.PATCH("/dashboard/settings", dashCtrl.UpdateSettings)
		partner.POST("/dashboard/menu", dashCtrl.CreateMenuItem)
		partner.PATCH("/dashboard/menu/:id", dashCtrl.UpdateMenuItem)
		partner.DELETE("/dashboard/menu/:id", dashCtrl.DeleteMenuItem)
	}

	// Live order feed
	r.GET("/ws/dashboard", middlewares.WSAuthMiddleware(cfg, authSvc, rolegate.PageOwnerOnly), hub.HandleWebSocket)

	return hub
}
