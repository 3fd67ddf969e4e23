package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	Quantity int `gorm:"not null" json:"quantity"`
	// Name and Price are snapshots of the menu item at order creation;
	// later menu edits must not change them.
	Name  string `gorm:"not null" json:"name"`
	Price int64  `gorm:"not null" json:"price"`

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`
}
