package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"` // bcrypt hash, never serialized
	Role     Role   `gorm:"not null;default:Customer" json:"role"`

	// Relations — preload only when needed
	Orders []Order `json:"-"`
}
