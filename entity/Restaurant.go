package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Address     string `json:"address"`
	Description string `json:"description"`
	Rating      float32 `json:"rating"`

	MenuCategories []MenuCategory `json:"-"`
	Orders         []Order        `json:"-"`
}
