package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	// snapshots, not re-read from the live menu
	Name      string `json:"name"`
	UnitPrice int64  `json:"unitPrice"` // cents
	Qty       int    `json:"qty"`
	Total     int64  `json:"total"` // cents
}
