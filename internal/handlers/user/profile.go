package user

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"tokobuku_backend/internal/database"
	"tokobuku_backend/internal/models"
)

type profileInput struct {
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	ProfilePhoto string `json:"profilePhoto"`
}

func GetProfile(c *gin.Context) {
	userID := c.GetUint("user_id")

	var u models.User
	if err := database.DB.First(&u, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User tidak ditemukan"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil profil"})
		return
	}

	c.JSON(http.StatusOK, u)
}

// UpdateProfile writes the four editable profile fields verbatim. Username
// and role are immutable through the public API.
func UpdateProfile(c *gin.Context) {
	userID := c.GetUint("user_id")

	var input profileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := database.DB.Model(&models.User{}).Where("id = ?", userID).
		Updates(map[string]interface{}{
			"email":         input.Email,
			"phone":         input.Phone,
			"address":       input.Address,
			"profile_photo": input.ProfilePhoto,
		}).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Update profil gagal"})
		return
	}

	var u models.User
	if err := database.DB.First(&u, userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Update profil gagal"})
		return
	}

	c.JSON(http.StatusOK, u)
}
