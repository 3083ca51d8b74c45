package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tokobuku_backend/internal/database"
)

const (
	loginMaxAttempts    = 5
	registerMaxAttempts = 3

	loginCooldown    = 15 * time.Minute
	registerCooldown = 30 * time.Minute
)

// LoginRateLimit counts failed logins per username in Redis and blocks the
// account for a cooldown once the limit is hit. A no-op when Redis is not
// configured.
func LoginRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if database.Redis == nil {
			c.Next()
			return
		}

		// Read the body without consuming it for the handler.
		bodyBytes, _ := io.ReadAll(c.Request.Body)
		c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

		var input struct {
			Username string `json:"username"`
		}
		if err := json.Unmarshal(bodyBytes, &input); err != nil || input.Username == "" {
			c.Next()
			return
		}

		ctx := context.Background()
		key := "login_attempts:" + input.Username
		cooldownKey := "login_cooldown:" + input.Username

		if database.Redis.Exists(ctx, cooldownKey).Val() > 0 {
			ttl := database.Redis.TTL(ctx, cooldownKey).Val()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       fmt.Sprintf("Terlalu banyak percobaan login. Coba lagi dalam %d menit", int(ttl.Minutes())+1),
				"retry_after": int(ttl.Seconds()),
			})
			return
		}

		attempts, _ := database.Redis.Get(ctx, key).Int()
		if attempts >= loginMaxAttempts {
			database.Redis.Set(ctx, cooldownKey, "1", loginCooldown)
			database.Redis.Del(ctx, key)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       fmt.Sprintf("Terlalu banyak percobaan login. Akun diblokir selama %d menit", int(loginCooldown.Minutes())),
				"retry_after": int(loginCooldown.Seconds()),
			})
			return
		}

		c.Next()

		switch c.Writer.Status() {
		case http.StatusUnauthorized:
			database.Redis.Incr(ctx, key)
			database.Redis.Expire(ctx, key, loginCooldown)
		case http.StatusOK:
			database.Redis.Del(ctx, key)
			database.Redis.Del(ctx, cooldownKey)
		}
	}
}

// RegisterRateLimit limits account creation per client IP.
func RegisterRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if database.Redis == nil {
			c.Next()
			return
		}

		ctx := context.Background()
		ip := c.ClientIP()
		key := "register_attempts:" + ip

		attempts, _ := database.Redis.Get(ctx, key).Int()
		if attempts >= registerMaxAttempts {
			ttl := database.Redis.TTL(ctx, key).Val()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       fmt.Sprintf("Terlalu banyak pendaftaran. Coba lagi dalam %d menit", int(ttl.Minutes())+1),
				"retry_after": int(ttl.Seconds()),
			})
			return
		}

		c.Next()

		if c.Writer.Status() == http.StatusCreated {
			database.Redis.Incr(ctx, key)
			database.Redis.Expire(ctx, key, registerCooldown)
		}
	}
}
