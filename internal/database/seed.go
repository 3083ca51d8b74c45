package database

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tokobuku_backend/internal/models"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.Product{}, &models.Order{})
}

// Seed creates the bootstrap admin account and the default catalog when the
// corresponding tables are empty. Safe to call on every startup.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Where("username = ?", "admin").Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		log.Println("📝 Creating default admin user...")
		hashed, err := bcrypt.GenerateFromPassword([]byte("123"), 10)
		if err != nil {
			return err
		}
		admin := models.User{
			Username: "admin",
			Email:    "admin@tokobuku.com",
			Password: string(hashed),
			Phone:    "+62812345678",
			Address:  "Jl. Buku No. 123, Jakarta",
			Role:     "admin",
		}
		if err := db.Create(&admin).Error; err != nil {
			return err
		}
		log.Println("✅ Admin user created (username: admin, password: 123)")
	}

	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		log.Println("📚 Inserting default products...")
		products := defaultProducts()
		if err := db.Create(&products).Error; err != nil {
			return err
		}
		log.Println("✅ Default products inserted (8 books)")
	}

	return nil
}

func defaultProducts() []models.Product {
	return []models.Product{
		{Title: "Clean Code", Author: "Robert C. Martin", Price: 189000, Category: "programming", Image: "https://images-na.ssl-images-amazon.com/images/P/0132350882.01.L.jpg", Rating: 4.8, Reviews: 45, Discount: 15},
		{Title: "The Pragmatic Programmer", Author: "David Thomas, Andrew Hunt", Price: 185000, Category: "programming", Image: "https://covers.openlibrary.org/b/id/8338103-L.jpg", Rating: 4.7, Reviews: 38, Discount: 10},
		{Title: "Design Patterns", Author: "Gang of Four", Price: 225000, Category: "programming", Image: "https://images-na.ssl-images-amazon.com/images/P/0201633612.01.L.jpg", Rating: 4.6, Reviews: 52, Discount: 5},
		{Title: "1984", Author: "George Orwell", Price: 95000, Category: "fiksi", Image: "https://images-na.ssl-images-amazon.com/images/P/0451524934.01.L.jpg", Rating: 4.9, Reviews: 128, Discount: 20},
		{Title: "Sapiens", Author: "Yuval Noah Harari", Price: 135000, Category: "nonfiksi", Image: "https://images-na.ssl-images-amazon.com/images/P/0062316095.01.L.jpg", Rating: 4.8, Reviews: 95},
		{Title: "Atomic Habits", Author: "James Clear", Price: 105000, Category: "self-help", Image: "https://images-na.ssl-images-amazon.com/images/P/0735211299.01.L.jpg", Rating: 4.9, Reviews: 210, Discount: 25},
		{Title: "The Silent Patient", Author: "Alex Michaelides", Price: 89000, Category: "fiksi", Image: "https://images-na.ssl-images-amazon.com/images/P/1250301696.01.L.jpg", Rating: 4.7, Reviews: 67, Discount: 12},
		{Title: "Mindset", Author: "Carol S. Dweck", Price: 125000, Category: "self-help", Image: "https://images-na.ssl-images-amazon.com/images/P/0345472322.01.L.jpg", Rating: 4.6, Reviews: 143, Discount: 8},
	}
}
