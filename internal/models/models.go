package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

// User is an account row. The password hash is never serialized; the profile
// photo is omitted from JSON when empty so admin listings stay lean.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Password     string    `gorm:"size:255;not null" json:"-"`
	Phone        string    `gorm:"size:15" json:"phone"`
	Address      string    `gorm:"type:text" json:"address"`
	ProfilePhoto string    `gorm:"type:longtext" json:"profilePhoto,omitempty"`
	Role         string    `gorm:"size:10;default:user" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Product struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Author    string    `gorm:"size:255" json:"author"`
	Price     float64   `gorm:"not null" json:"price"`
	Category  string    `gorm:"size:50" json:"category"`
	Image     string    `gorm:"size:500" json:"image"`
	Rating    float64   `json:"rating"`
	Reviews   int       `gorm:"default:0" json:"reviews"`
	Discount  int       `gorm:"default:0" json:"discount"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OrderItem is a denormalized snapshot of a product at checkout time. Later
// catalog edits or deletions never change historical orders.
type OrderItem struct {
	ID       uint    `json:"id"`
	Title    string  `json:"title"`
	Image    string  `json:"image"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// OrderItems is stored serialized as JSON in a single column.
type OrderItems []OrderItem

func (items OrderItems) Value() (driver.Value, error) {
	return json.Marshal(items)
}

func (items *OrderItems) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*items = nil
		return nil
	case []byte:
		return json.Unmarshal(v, items)
	case string:
		return json.Unmarshal([]byte(v), items)
	}
	return errors.New("order items: unsupported column type")
}

const DefaultOrderStatus = "Dalam Pengiriman"

type Order struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	OrderNumber string     `gorm:"size:20;uniqueIndex;not null" json:"order_number"`
	UserID      uint       `gorm:"not null;index" json:"user_id"`
	User        User       `gorm:"foreignKey:UserID" json:"-"`
	Items       OrderItems `gorm:"type:json;not null" json:"items"`
	Total       float64    `gorm:"not null" json:"total"`
	Status      string     `gorm:"size:50" json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.Status == "" {
		o.Status = DefaultOrderStatus
	}
	return nil
}
