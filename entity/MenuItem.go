package entity

import (
	"gorm.io/gorm"
)

// MenuItem prices are stored in minor currency units (satang/cents) so
// total arithmetic stays exact integer math.
type MenuItem struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	Price       int64  `gorm:"not null" json:"price"`

	CategoryID uint         `json:"categoryId"`
	Category   MenuCategory `json:"-"`

	OrderItems []OrderItem `json:"-"`
}
