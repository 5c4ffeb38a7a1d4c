package entity

import (
	"gorm.io/gorm"
)

const (
	RoleUser       = "user"
	RoleRestaurant = "restaurant"
)

type User struct {
	gorm.Model
	Name     string `json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Phone    string `json:"phone"`

	// saved delivery address, used to prefill checkout
	Address Address `gorm:"embedded;embeddedPrefix:addr_" json:"address"`

	Orders    []Order    `json:"-"`
	Feedbacks []Feedback `json:"-"`
}
