package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SwaggerSpec serves the OpenAPI document the interactive docs UI loads.
func SwaggerSpec(c *gin.Context) {
	c.Header("Content-Type", "application/json")
	c.JSON(http.StatusOK, swaggerDoc)
}

var swaggerDoc = gin.H{
	"openapi": "3.0.0",
	"info": gin.H{
		"title":       "Toko Buku Online API",
		"version":     "1.0.0",
		"description": "API Documentation untuk Toko Buku Online dengan Database MySQL",
		"contact": gin.H{
			"name":  "API Support",
			"email": "support@tokobuku.com",
		},
	},
	"servers": []gin.H{
		{"url": "http://localhost:5000", "description": "Development Server"},
	},
	"components": gin.H{
		"securitySchemes": gin.H{
			"BearerAuth": gin.H{
				"type":         "http",
				"scheme":       "bearer",
				"bearerFormat": "JWT",
				"description":  "JWT Token dari login endpoint",
			},
		},
		"schemas": gin.H{
			"User": gin.H{
				"type": "object",
				"properties": gin.H{
					"id":           gin.H{"type": "integer", "example": 1},
					"username":     gin.H{"type": "string", "example": "admin"},
					"email":        gin.H{"type": "string", "example": "admin@tokobuku.com"},
					"phone":        gin.H{"type": "string", "example": "+62812345678"},
					"address":      gin.H{"type": "string", "example": "Jl. Buku No. 123"},
					"profilePhoto": gin.H{"type": "string", "example": "data:image/jpeg;base64,..."},
					"role":         gin.H{"type": "string", "enum": []string{"user", "admin"}, "example": "admin"},
					"created_at":   gin.H{"type": "string", "format": "date-time"},
				},
			},
			"Product": gin.H{
				"type": "object",
				"properties": gin.H{
					"id":         gin.H{"type": "integer", "example": 1},
					"title":      gin.H{"type": "string", "example": "Clean Code"},
					"author":     gin.H{"type": "string", "example": "Robert C. Martin"},
					"price":      gin.H{"type": "number", "example": 189000},
					"category":   gin.H{"type": "string", "example": "programming"},
					"image":      gin.H{"type": "string", "example": "https://..."},
					"rating":     gin.H{"type": "number", "example": 4.8},
					"reviews":    gin.H{"type": "integer", "example": 45},
					"discount":   gin.H{"type": "integer", "example": 15},
					"created_at": gin.H{"type": "string", "format": "date-time"},
					"updated_at": gin.H{"type": "string", "format": "date-time"},
				},
			},
			"Order": gin.H{
				"type": "object",
				"properties": gin.H{
					"id":           gin.H{"type": "integer", "example": 1},
					"order_number": gin.H{"type": "string", "example": "ORD-1706868000000"},
					"user_id":      gin.H{"type": "integer", "example": 1},
					"items": gin.H{
						"type": "array",
						"items": gin.H{
							"type": "object",
							"properties": gin.H{
								"id":       gin.H{"type": "integer"},
								"title":    gin.H{"type": "string"},
								"image":    gin.H{"type": "string"},
								"quantity": gin.H{"type": "integer"},
								"price":    gin.H{"type": "number"},
							},
						},
					},
					"total":      gin.H{"type": "number", "example": 440000},
					"status":     gin.H{"type": "string", "example": "Dalam Pengiriman"},
					"created_at": gin.H{"type": "string", "format": "date-time"},
					"updated_at": gin.H{"type": "string", "format": "date-time"},
				},
			},
			"Error": gin.H{
				"type": "object",
				"properties": gin.H{
					"error": gin.H{"type": "string", "example": "Error message"},
				},
			},
		},
	},
	"paths": gin.H{
		"/api/health": gin.H{
			"get": gin.H{
				"tags":    []string{"Health"},
				"summary": "Cek status server",
				"responses": gin.H{
					"200": gin.H{"description": "Server berjalan"},
				},
			},
		},
		"/api/register": gin.H{
			"post": gin.H{
				"tags":    []string{"Auth"},
				"summary": "Registrasi user baru",
				"requestBody": gin.H{
					"required": true,
					"content": gin.H{"application/json": gin.H{"schema": gin.H{
						"type":     "object",
						"required": []string{"username", "email", "password"},
						"properties": gin.H{
							"username": gin.H{"type": "string"},
							"email":    gin.H{"type": "string"},
							"password": gin.H{"type": "string"},
						},
					}}},
				},
				"responses": gin.H{
					"201": gin.H{"description": "Registrasi berhasil"},
					"400": gin.H{"description": "Username atau email sudah terdaftar", "content": errorContent},
					"429": gin.H{"description": "Terlalu banyak pendaftaran", "content": errorContent},
				},
			},
		},
		"/api/login": gin.H{
			"post": gin.H{
				"tags":    []string{"Auth"},
				"summary": "Login dan terima token JWT",
				"requestBody": gin.H{
					"required": true,
					"content": gin.H{"application/json": gin.H{"schema": gin.H{
						"type":     "object",
						"required": []string{"username", "password"},
						"properties": gin.H{
							"username": gin.H{"type": "string", "example": "admin"},
							"password": gin.H{"type": "string", "example": "123"},
						},
					}}},
				},
				"responses": gin.H{
					"200": gin.H{"description": "Login berhasil, token dikembalikan"},
					"401": gin.H{"description": "Username atau password salah", "content": errorContent},
					"429": gin.H{"description": "Terlalu banyak percobaan login", "content": errorContent},
				},
			},
		},
		"/api/products": gin.H{
			"get": gin.H{
				"tags":    []string{"Products"},
				"summary": "Daftar semua produk (publik)",
				"responses": gin.H{
					"200": gin.H{"description": "Daftar produk", "content": gin.H{"application/json": gin.H{
						"schema": gin.H{"type": "array", "items": gin.H{"$ref": "#/components/schemas/Product"}},
					}}},
				},
			},
			"post": gin.H{
				"tags":     []string{"Products"},
				"summary":  "Tambah produk baru (admin)",
				"security": bearerSecurity,
				"requestBody": gin.H{
					"required": true,
					"content": gin.H{"application/json": gin.H{"schema": gin.H{"$ref": "#/components/schemas/Product"}}},
				},
				"responses": gin.H{
					"201": gin.H{"description": "Produk dibuat", "content": productContent},
					"401": gin.H{"description": "Token tidak ditemukan", "content": errorContent},
					"403": gin.H{"description": "Hanya admin", "content": errorContent},
				},
			},
		},
		"/api/products/{productId}": gin.H{
			"put": gin.H{
				"tags":       []string{"Products"},
				"summary":    "Update produk (admin, partial)",
				"security":   bearerSecurity,
				"parameters": productIDParam,
				"requestBody": gin.H{
					"content": gin.H{"application/json": gin.H{"schema": gin.H{"$ref": "#/components/schemas/Product"}}},
				},
				"responses": gin.H{
					"200": gin.H{"description": "Produk diperbarui", "content": productContent},
					"404": gin.H{"description": "Produk tidak ditemukan", "content": errorContent},
				},
			},
			"delete": gin.H{
				"tags":       []string{"Products"},
				"summary":    "Hapus produk (admin)",
				"security":   bearerSecurity,
				"parameters": productIDParam,
				"responses": gin.H{
					"200": gin.H{"description": "Produk berhasil dihapus"},
					"404": gin.H{"description": "Produk tidak ditemukan", "content": errorContent},
				},
			},
		},
		"/api/products/{productId}/image": gin.H{
			"post": gin.H{
				"tags":       []string{"Products"},
				"summary":    "Upload gambar produk (admin)",
				"security":   bearerSecurity,
				"parameters": productIDParam,
				"requestBody": gin.H{
					"content": gin.H{"multipart/form-data": gin.H{"schema": gin.H{
						"type": "object",
						"properties": gin.H{
							"image": gin.H{"type": "string", "format": "binary"},
						},
					}}},
				},
				"responses": gin.H{
					"200": gin.H{"description": "Gambar diunggah"},
					"400": gin.H{"description": "File gambar tidak ditemukan", "content": errorContent},
					"503": gin.H{"description": "Upload gambar tidak tersedia", "content": errorContent},
				},
			},
		},
		"/api/orders": gin.H{
			"post": gin.H{
				"tags":     []string{"Orders"},
				"summary":  "Buat pesanan baru",
				"security": bearerSecurity,
				"requestBody": gin.H{
					"required": true,
					"content": gin.H{"application/json": gin.H{"schema": gin.H{
						"type":     "object",
						"required": []string{"items", "total"},
						"properties": gin.H{
							"items": gin.H{"type": "array"},
							"total": gin.H{"type": "number"},
						},
					}}},
				},
				"responses": gin.H{
					"201": gin.H{"description": "Pesanan dibuat", "content": gin.H{"application/json": gin.H{
						"schema": gin.H{"$ref": "#/components/schemas/Order"},
					}}},
					"401": gin.H{"description": "Token tidak ditemukan", "content": errorContent},
				},
			},
			"get": gin.H{
				"tags":     []string{"Orders"},
				"summary":  "Daftar pesanan milik user, terbaru dulu",
				"security": bearerSecurity,
				"responses": gin.H{
					"200": gin.H{"description": "Daftar pesanan", "content": gin.H{"application/json": gin.H{
						"schema": gin.H{"type": "array", "items": gin.H{"$ref": "#/components/schemas/Order"}},
					}}},
				},
			},
		},
		"/api/users/profile": gin.H{
			"get": gin.H{
				"tags":     []string{"Users"},
				"summary":  "Profil user yang sedang login",
				"security": bearerSecurity,
				"responses": gin.H{
					"200": gin.H{"description": "Profil user", "content": userContent},
					"404": gin.H{"description": "User tidak ditemukan", "content": errorContent},
				},
			},
			"put": gin.H{
				"tags":     []string{"Users"},
				"summary":  "Update profil (email, phone, address, foto)",
				"security": bearerSecurity,
				"responses": gin.H{
					"200": gin.H{"description": "Profil diperbarui", "content": userContent},
				},
			},
		},
		"/api/users": gin.H{
			"get": gin.H{
				"tags":     []string{"Users"},
				"summary":  "Daftar semua user (admin)",
				"security": bearerSecurity,
				"responses": gin.H{
					"200": gin.H{"description": "Daftar user tanpa kolom sensitif"},
					"403": gin.H{"description": "Hanya admin", "content": errorContent},
				},
			},
		},
	},
}

var (
	bearerSecurity = []gin.H{{"BearerAuth": []string{}}}

	errorContent = gin.H{"application/json": gin.H{"schema": gin.H{"$ref": "#/components/schemas/Error"}}}

	productContent = gin.H{"application/json": gin.H{"schema": gin.H{"$ref": "#/components/schemas/Product"}}}

	userContent = gin.H{"application/json": gin.H{"schema": gin.H{"$ref": "#/components/schemas/User"}}}

	productIDParam = []gin.H{{
		"name":     "productId",
		"in":       "path",
		"required": true,
		"schema":   gin.H{"type": "integer"},
	}}
)
