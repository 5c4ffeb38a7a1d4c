package entity

import (
	"gorm.io/gorm"
)

type Feedback struct {
	gorm.Model
	OrderID uint  `gorm:"uniqueIndex" json:"orderId"` // one feedback per order
	Order   Order `json:"-"`

	UserID uint `json:"userId"`
	User   User `json:"-"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	Rating       int    `gorm:"not null" json:"rating"` // 1-5 overall
	FoodQuality  int    `json:"foodQuality"`
	DeliveryTime int    `json:"deliveryTime"`
	Comment      string `json:"comment"`
}
