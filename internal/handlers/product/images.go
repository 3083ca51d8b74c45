package product

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tokobuku_backend/internal/database"
	"tokobuku_backend/internal/models"
	"tokobuku_backend/internal/services"
)

// UploadImage stores a cover image for a product in object storage and writes
// the resulting URL back onto the row. Admin only. Returns 503 when no object
// storage is configured.
func UploadImage(c *gin.Context) {
	var p models.Product
	if err := database.DB.First(&p, c.Param("productId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produk tidak ditemukan"})
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File gambar tidak ditemukan"})
		return
	}

	if services.MinioClient == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Upload gambar tidak tersedia"})
		return
	}

	url, err := services.UploadFile(c.Request.Context(), file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal upload gambar"})
		return
	}

	if err := database.DB.Model(&p).Update("image", url).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal update produk"})
		return
	}
	p.Image = url

	c.JSON(http.StatusOK, p)
}
