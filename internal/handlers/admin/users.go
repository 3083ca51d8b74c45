package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tokobuku_backend/internal/database"
	"tokobuku_backend/internal/models"
)

// ListUsers returns every account without password hashes or profile photos.
func ListUsers(c *gin.Context) {
	var users []models.User
	err := database.DB.
		Select("id", "username", "email", "phone", "role", "created_at").
		Find(&users).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil daftar user"})
		return
	}

	c.JSON(http.StatusOK, users)
}
