package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	Price       int64  `gorm:"not null" json:"price"` // cents
	Category    string `json:"category"`
	Image       string `json:"image"`
	Available   bool   `gorm:"default:true" json:"available"`
}
