package database

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"tokobuku_backend/internal/config"
)

var (
	DB    *gorm.DB
	Redis *redis.Client
)

func Connect() {
	connectMySQL()
	connectRedis()
}

func connectMySQL() {
	host := config.DBHost()
	port := config.DBPort()
	user := config.DBUser()
	password := config.DBPassword()
	name := config.DBName()

	log.Println("🔄 Initializing database...")
	log.Printf("   Host: %s", host)
	log.Printf("   User: %s", user)
	log.Printf("   Database: %s", name)

	// First connection selects no database so we can create it if missing.
	setupDSN := fmt.Sprintf("%s:%s@tcp(%s:%s)/?parseTime=true", user, password, host, port)
	setup, err := gorm.Open(mysql.Open(setupDSN), &gorm.Config{})
	if err != nil {
		failStartup(err)
	}
	log.Printf("📦 Creating database '%s' if not exists...", name)
	if err := setup.Exec("CREATE DATABASE IF NOT EXISTS " + name).Error; err != nil {
		failStartup(err)
	}
	if sqlDB, err := setup.DB(); err == nil {
		sqlDB.Close()
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
		user, password, host, port, name)
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		failStartup(err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		failStartup(err)
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(time.Hour)

	DB = db

	if err := Migrate(DB); err != nil {
		failStartup(err)
	}
	if err := Seed(DB); err != nil {
		failStartup(err)
	}
	log.Println("✅ Database initialized successfully!")
}

// failStartup logs troubleshooting hints for the usual local setup mistakes
// and aborts. The server never runs without its database.
func failStartup(err error) {
	log.Println("❌ Database initialization error:")
	log.Printf("   %v", err)
	log.Println("💡 Troubleshooting:")
	msg := err.Error()
	switch {
	case strings.Contains(msg, "connection refused"):
		log.Println("   → MySQL server refused connection")
		log.Println("   → Make sure MySQL is running (XAMPP Control Panel → Start MySQL)")
	case strings.Contains(msg, "Access denied"):
		log.Println("   → Authentication failed")
		log.Println("   → Check DB_USER and DB_PASSWORD in .env (default: root, empty password)")
	case strings.Contains(msg, "Unknown database"):
		log.Println("   → Database does not exist and cannot be created")
		log.Println("   → Check database permissions")
	}
	log.Println("📋 Current .env configuration:")
	log.Printf("   DB_HOST=%s", config.DBHost())
	log.Printf("   DB_USER=%s", config.DBUser())
	log.Printf("   DB_NAME=%s", config.DBName())
	log.Fatal("⚠️  Server failed to start due to database error")
}

// connectRedis is optional: without REDIS_HOST the rate-limiting middleware
// simply passes every request through.
func connectRedis() {
	addr := config.Get("REDIS_HOST", "")
	if addr == "" {
		log.Println("⚠️  REDIS_HOST not set — rate limiting disabled")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: config.Get("REDIS_PASSWORD", ""),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Println("⚠️  Redis unreachable — rate limiting disabled:", err)
		return
	}

	Redis = client
	log.Println("✅ Connected to Redis")
}
