package entity

import (
	"gorm.io/gorm"
)

type MenuCategory struct {
	gorm.Model
	Name string `gorm:"not null" json:"name"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	// deleting a category takes its items with it
	MenuItems []MenuItem `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"-"`
}
