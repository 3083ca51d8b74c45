package main

import (
	"log"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"tokobuku_backend/internal/config"
	"tokobuku_backend/internal/database"
	"tokobuku_backend/internal/routes"
	"tokobuku_backend/internal/services"
)

func main() {
	config.Load()

	database.Connect()
	services.ConnectMinio()

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	routes.Register(r)

	port := config.Get("PORT", "5000")
	log.Println(strings.Repeat("=", 50))
	log.Println("✅ Backend Server Ready!")
	log.Printf("🚀 Server: http://localhost:%s", port)
	log.Println("📚 Admin: username: admin | password: 123")
	log.Println(strings.Repeat("=", 50))

	if err := r.Run(":" + port); err != nil {
		log.Fatal("❌ Server failed:", err)
	}
}
