package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireAdmin is layered on top of AuthRequired for admin-only routes.
func RequireAdmin(c *gin.Context) {
	role, exists := c.Get("role")
	if !exists || role != "admin" {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Hanya admin yang dapat mengakses endpoint ini"})
		return
	}
	c.Next()
}
