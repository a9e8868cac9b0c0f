package middlewares

import (
	"net/http"
	"strings"

	"github.com/Shaan-kapoor/restaurant-menu-platform/configs"
	"github.com/Shaan-kapoor/restaurant-menu-platform/pkg/resp"
	"github.com/Shaan-kapoor/restaurant-menu-platform/pkg/rolegate"
	"github.com/Shaan-kapoor/restaurant-menu-platform/services"
	"github.com/Shaan-kapoor/restaurant-menu-platform/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware resolves the request identity from the bearer token and
// gates the route by page class. The role is re-derived from the profile
// record on every request; the token's role claim is only a login-time
// snapshot and is never trusted for authorization.
func AuthMiddleware(cfg *configs.Config, auth *services.AuthService, page rolegate.Page) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, role := identityFromToken(c, bearerToken(c), cfg, auth)

		decision := rolegate.Authorize(page, userID, role)
		if !decision.Allow {
			resp.Redirect(c, http.StatusUnauthorized, decision.RedirectTo)
			c.Abort()
			return
		}

		c.Set("userId", userID)
		c.Set("role", role)
		c.Next()
	}
}

// WSAuthMiddleware is AuthMiddleware for websocket upgrades, where clients
// cannot set headers: the token travels in the query string.
func WSAuthMiddleware(cfg *configs.Config, auth *services.AuthService, page rolegate.Page) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, role := identityFromToken(c, c.Query("token"), cfg, auth)

		decision := rolegate.Authorize(page, userID, role)
		if !decision.Allow {
			resp.Redirect(c, http.StatusUnauthorized, decision.RedirectTo)
			c.Abort()
			return
		}

		c.Set("userId", userID)
		c.Set("role", role)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(h, "Bearer ")
}

func identityFromToken(c *gin.Context, token string, cfg *configs.Config, auth *services.AuthService) (uint, string) {
	if token == "" {
		return 0, ""
	}
	claims, err := utils.ParseToken(token, cfg.JWTSecret)
	if err != nil {
		return 0, ""
	}
	role, err := auth.ResolveRole(c.Request.Context(), claims.UserID)
	if err != nil {
		// profile record gone: treat as anonymous
		return 0, ""
	}
	return claims.UserID, role
}
