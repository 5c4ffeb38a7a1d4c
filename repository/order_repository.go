package repository

import (
	"time"

	"backend/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetMenuItemBasics(itemID uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.Select("id, name, price, restaurant_id, available").First(&m, itemID).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

type OrderSummary struct {
	ID           uint      `json:"id"`
	OrderNumber  string    `json:"orderNumber"`
	RestaurantID uint      `json:"restaurantId"`
	Total        int64     `json:"total"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (r *OrderRepository) ListOrdersForUser(userID uint, limit int) ([]OrderSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []OrderSummary
	err := r.DB.Model(&entity.Order{}).
		Select("id, order_number, restaurant_id, total, status, created_at").
		Where("user_id = ?", userID).
		Order("id DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

func (r *OrderRepository) GetOrderForUser(userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items").Where("id = ? AND user_id = ?", orderID, userID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) ListOrdersForRestaurant(restID uint, status string, limit int) ([]entity.Order, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	q := r.DB.Preload("Items").Where("restaurant_id = ?", restID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var out []entity.Order
	err := q.Order("id DESC").Limit(limit).Find(&out).Error
	return out, err
}

// UpdateStatusGuard flips status only when the order is still in the expected
// state; the affected row count tells the caller whether the transition won.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to string) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}
