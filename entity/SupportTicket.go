package entity

import (
	"gorm.io/gorm"
)

type SupportTicket struct {
	gorm.Model
	UserID *uint `json:"userId"` // nil when submitted anonymously

	Name    string `json:"name"`
	Email   string `gorm:"not null" json:"email"`
	Subject string `json:"subject"`
	Message string `gorm:"not null" json:"message"`
	Status  string `gorm:"default:open" json:"status"`
}
