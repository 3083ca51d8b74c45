package user

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"tokobuku_backend/internal/database"
	"tokobuku_backend/internal/models"
	"tokobuku_backend/internal/services"
)

// Total is a pointer so a submitted zero is accepted and only an absent
// field is rejected.
type orderInput struct {
	Items models.OrderItems `json:"items" binding:"required"`
	Total *float64          `json:"total" binding:"required"`
}

// CreateOrder inserts one order owned by the caller. The total is stored as
// submitted; the server does not recompute it from the items. Insert and
// read-back run in one transaction so a committed order is always confirmed
// back to the caller.
func CreateOrder(c *gin.Context) {
	userID := c.GetUint("user_id")

	var input orderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order := models.Order{
		OrderNumber: fmt.Sprintf("ORD-%d", time.Now().UnixMilli()),
		UserID:      userID,
		Items:       input.Items,
		Total:       *input.Total,
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		return tx.First(&order, order.ID).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Pemesanan gagal"})
		return
	}

	// Best effort, never fails the request.
	var buyer models.User
	if err := database.DB.First(&buyer, userID).Error; err == nil {
		services.SendOrderConfirmation(buyer.Email, order)
	}

	c.JSON(http.StatusCreated, order)
}

// GetMyOrders returns the caller's orders, newest first. Never anyone else's.
func GetMyOrders(c *gin.Context) {
	userID := c.GetUint("user_id")

	var orders []models.Order
	err := database.DB.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&orders).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil pesanan"})
		return
	}

	c.JSON(http.StatusOK, orders)
}
