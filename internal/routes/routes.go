package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"tokobuku_backend/internal/handlers"
	"tokobuku_backend/internal/handlers/admin"
	"tokobuku_backend/internal/handlers/product"
	"tokobuku_backend/internal/handlers/user"
	"tokobuku_backend/internal/middleware"
)

func Register(r *gin.Engine) {
	// Interactive API docs; the UI loads the document from /api/swagger.json.
	r.GET("/api-docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler,
		ginSwagger.URL("/api/swagger.json")))

	api := r.Group("/api")

	// Public
	api.GET("/health", handlers.Health)
	api.GET("/swagger.json", handlers.SwaggerSpec)
	api.POST("/register", middleware.RegisterRateLimit(), user.Register)
	api.POST("/login", middleware.LoginRateLimit(), user.Login)
	api.GET("/products", product.GetAllProducts)

	// Token required
	auth := api.Group("", middleware.AuthRequired())
	auth.POST("/orders", user.CreateOrder)
	auth.GET("/orders", user.GetMyOrders)
	auth.GET("/users/profile", user.GetProfile)
	auth.PUT("/users/profile", user.UpdateProfile)

	// Admin only
	adminOnly := auth.Group("", middleware.RequireAdmin)
	adminOnly.POST("/products", product.CreateProduct)
	adminOnly.PUT("/products/:productId", product.UpdateProduct)
	adminOnly.DELETE("/products/:productId", product.DeleteProduct)
	adminOnly.POST("/products/:productId/image", product.UploadImage)
	adminOnly.GET("/users", admin.ListUsers)
}
