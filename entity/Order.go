package entity

import (
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	// TotalAmount is derived from the order items at creation time and
	// never accepted from the client. Minor currency units.
	TotalAmount int64       `gorm:"not null" json:"totalAmount"`
	Status      OrderStatus `gorm:"not null;default:Pending" json:"status"`

	UserID uint `json:"userId"`
	User   User `json:"-"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	OrderItems []OrderItem `json:"-"`
}
