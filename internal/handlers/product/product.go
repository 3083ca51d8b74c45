package product

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tokobuku_backend/internal/database"
	"tokobuku_backend/internal/models"
)

type createInput struct {
	Title    string  `json:"title" binding:"required"`
	Author   string  `json:"author"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	Image    string  `json:"image"`
	Rating   float64 `json:"rating"`
	Reviews  int     `json:"reviews"`
	Discount int     `json:"discount"`
}

// updateInput uses pointers so a PUT only touches the fields it carries.
type updateInput struct {
	Title    *string  `json:"title"`
	Author   *string  `json:"author"`
	Price    *float64 `json:"price"`
	Category *string  `json:"category"`
	Image    *string  `json:"image"`
	Rating   *float64 `json:"rating"`
	Reviews  *int     `json:"reviews"`
	Discount *int     `json:"discount"`
}

// GetAllProducts is public. No pagination, no server-side filtering; category
// filtering happens in the client.
func GetAllProducts(c *gin.Context) {
	var products []models.Product
	if err := database.DB.Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil produk"})
		return
	}
	c.JSON(http.StatusOK, products)
}

func CreateProduct(c *gin.Context) {
	var input createInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p := models.Product{
		Title:    input.Title,
		Author:   input.Author,
		Price:    input.Price,
		Category: input.Category,
		Image:    input.Image,
		Rating:   input.Rating,
		Reviews:  input.Reviews,
		Discount: input.Discount,
	}
	if err := database.DB.Create(&p).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menambah produk"})
		return
	}

	c.JSON(http.StatusCreated, p)
}

func UpdateProduct(c *gin.Context) {
	var p models.Product
	if err := database.DB.First(&p, c.Param("productId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produk tidak ditemukan"})
		return
	}

	var input updateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Author != nil {
		updates["author"] = *input.Author
	}
	if input.Price != nil {
		updates["price"] = *input.Price
	}
	if input.Category != nil {
		updates["category"] = *input.Category
	}
	if input.Image != nil {
		updates["image"] = *input.Image
	}
	if input.Rating != nil {
		updates["rating"] = *input.Rating
	}
	if input.Reviews != nil {
		updates["reviews"] = *input.Reviews
	}
	if input.Discount != nil {
		updates["discount"] = *input.Discount
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&p).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal update produk"})
			return
		}
	}

	if err := database.DB.First(&p, p.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal update produk"})
		return
	}

	c.JSON(http.StatusOK, p)
}

func DeleteProduct(c *gin.Context) {
	result := database.DB.Delete(&models.Product{}, c.Param("productId"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal hapus produk"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produk tidak ditemukan"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Produk berhasil dihapus"})
}
