package resp

import (
	"errors"
	"net/http"

	"github.com/Shaan-kapoor/restaurant-menu-platform/pkg/apperr"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": data})
}
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"ok": true, "data": data})
}
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": msg})
}
func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": msg})
}
func Forbidden(c *gin.Context, msg string) {
	c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": msg})
}
func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": msg})
}
func ServerError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
}

// Redirect renders a role-gate redirect decision. The client performs the
// navigation; the status code tells it why.
func Redirect(c *gin.Context, status int, path string) {
	c.JSON(status, gin.H{"ok": false, "error": "not allowed", "redirectTo": path})
}

// Error maps the shared error taxonomy onto HTTP statuses.
func Error(c *gin.Context, err error) {
	switch {
	case apperr.IsValidation(err):
		BadRequest(c, err.Error())
	case apperr.IsAuth(err):
		Unauthorized(c, err.Error())
	case errors.Is(err, apperr.ErrNotFound):
		NotFound(c, err.Error())
	default:
		ServerError(c, err)
	}
}
