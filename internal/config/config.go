package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func Load() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found — using system environment variables")
	} else {
		log.Println("✅ .env file loaded")
	}
}

// Get returns an environment variable or the given fallback. The fallbacks are
// insecure local-development defaults.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func DBHost() string { return Get("DB_HOST", "localhost") }
func DBPort() string { return Get("DB_PORT", "3306") }
func DBUser() string { return Get("DB_USER", "root") }

// DBPassword defaults to empty, matching a stock local MySQL/XAMPP install.
func DBPassword() string { return os.Getenv("DB_PASSWORD") }

func DBName() string { return Get("DB_NAME", "toko_buku") }

func JWTSecret() []byte {
	return []byte(Get("JWT_SECRET", "your_jwt_secret_key_change_in_production"))
}
