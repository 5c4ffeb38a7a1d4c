package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Phone    string `json:"phone"`
	Cuisine  string `json:"cuisine"`

	Address Address `gorm:"embedded;embeddedPrefix:addr_" json:"address"`

	DeliveryTime string  `json:"deliveryTime"`
	MinOrder     int64   `json:"minOrder"` // cents
	Rating       float64 `json:"rating"`

	Menu   []MenuItem `json:"menu"`
	Orders []Order    `json:"-"`
}
