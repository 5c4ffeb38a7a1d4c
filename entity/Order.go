package entity

import (
	"gorm.io/gorm"
)

// Order statuses. Transitions past pending are owned by the restaurant side.
const (
	OrderPending        = "pending"
	OrderPreparing      = "preparing"
	OrderOutForDelivery = "out-for-delivery"
	OrderDelivered      = "delivered"
	OrderCancelled      = "cancelled"
)

const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
)

const (
	PayCard           = "card"
	PayUPI            = "upi"
	PayCashOnDelivery = "cod"
)

type Order struct {
	gorm.Model
	OrderNumber string `gorm:"uniqueIndex" json:"orderNumber"`

	UserID uint `json:"userId"`
	User   User `json:"-"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	// all amounts in cents, snapshotted at assembly time
	Subtotal    int64 `json:"subtotal"`
	DeliveryFee int64 `json:"deliveryFee"`
	Tax         int64 `json:"tax"`
	Total       int64 `json:"total"`

	DeliveryAddress Address `gorm:"embedded;embeddedPrefix:addr_" json:"deliveryAddress"`

	Status        string `gorm:"default:pending" json:"status"`
	PaymentMethod string `json:"paymentMethod"`
	PaymentStatus string `gorm:"default:pending" json:"paymentStatus"`

	Items []OrderItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}
