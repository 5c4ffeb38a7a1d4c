package services

import (
	"errors"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// OrderService assembles orders at checkout. Totals are always recomputed here
// from line snapshots; a total submitted by the client is never trusted.
type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	RestRepo *repository.RestaurantRepository
	Carts    *CartService

	DeliveryFee    int64 // cents
	TaxRatePercent int64

	log zerolog.Logger
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	restRepo *repository.RestaurantRepository,
	carts *CartService,
	deliveryFee, taxRatePercent int64,
	log zerolog.Logger,
) *OrderService {
	return &OrderService{
		DB:             db,
		Repo:           repo,
		RestRepo:       restRepo,
		Carts:          carts,
		DeliveryFee:    deliveryFee,
		TaxRatePercent: taxRatePercent,
		log:            log.With().Str("service", "order").Logger(),
	}
}

type OrderItemIn struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
	Qty        int  `json:"qty" binding:"required,min=1"`
}

type CreateOrderIn struct {
	RestaurantID    uint           `json:"restaurantId" binding:"required"`
	Items           []OrderItemIn  `json:"items" binding:"required,min=1"`
	DeliveryAddress entity.Address `json:"deliveryAddress"`
	PaymentMethod   string         `json:"paymentMethod" binding:"required,oneof=card upi cod"`
}

type CheckoutIn struct {
	DeliveryAddress entity.Address `json:"deliveryAddress"`
	PaymentMethod   string         `json:"paymentMethod" binding:"required,oneof=card upi cod"`
}

// Create assembles an order from an explicit item list. Prices come from the
// live menu at assembly time and are frozen into the order rows.
func (s *OrderService) Create(userID uint, in *CreateOrderIn) (*entity.Order, error) {
	if !in.DeliveryAddress.Complete() {
		return nil, apperr.Validation("delivery address requires street, city, state and zip")
	}

	ok, err := s.RestRepo.Exists(in.RestaurantID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if !ok {
		return nil, apperr.NotFound("restaurant not found")
	}

	rows := make([]entity.OrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		m, err := s.Repo.GetMenuItemBasics(it.MenuItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.NotFound("menu item not found")
			}
			return nil, apperr.Internal(err)
		}
		if m.RestaurantID != in.RestaurantID {
			return nil, apperr.Validation("menu item not in this restaurant")
		}
		rows = append(rows, entity.OrderItem{
			MenuItemID: m.ID,
			Name:       m.Name,
			UnitPrice:  m.Price,
			Qty:        it.Qty,
			Total:      m.Price * int64(it.Qty),
		})
	}

	return s.assemble(userID, in.RestaurantID, rows, in.DeliveryAddress, in.PaymentMethod)
}

// Checkout assembles an order from the session cart. The cart is cleared only
// after the order transaction commits.
func (s *OrderService) Checkout(userID uint, in *CheckoutIn) (*entity.Order, error) {
	if !in.DeliveryAddress.Complete() {
		return nil, apperr.Validation("delivery address requires street, city, state and zip")
	}

	snap := s.Carts.Snapshot(userID)
	if snap.Empty() {
		return nil, apperr.Validation("cart is empty")
	}

	rows := make([]entity.OrderItem, 0, len(snap.Lines))
	for _, l := range snap.Lines {
		rows = append(rows, entity.OrderItem{
			MenuItemID: l.Item.ID,
			Name:       l.Item.Name,
			UnitPrice:  l.Item.UnitPrice,
			Qty:        l.Qty,
			Total:      l.Total(),
		})
	}

	order, err := s.assemble(userID, snap.RestaurantID, rows, in.DeliveryAddress, in.PaymentMethod)
	if err != nil {
		return nil, err
	}
	s.Carts.Clear(userID)
	return order, nil
}

// assemble persists the order and its items in one transaction. Either the
// whole record lands or none of it does.
func (s *OrderService) assemble(userID, restaurantID uint, rows []entity.OrderItem, addr entity.Address, payMethod string) (*entity.Order, error) {
	var subtotal int64
	for _, r := range rows {
		subtotal += r.Total
	}
	tax := subtotal * s.TaxRatePercent / 100
	total := subtotal + s.DeliveryFee + tax

	payStatus := entity.PaymentCompleted
	if payMethod == entity.PayCashOnDelivery {
		payStatus = entity.PaymentPending
	}

	order := entity.Order{
		OrderNumber:     uuid.NewString(),
		UserID:          userID,
		RestaurantID:    restaurantID,
		Subtotal:        subtotal,
		DeliveryFee:     s.DeliveryFee,
		Tax:             tax,
		Total:           total,
		DeliveryAddress: addr,
		Status:          entity.OrderPending,
		PaymentMethod:   payMethod,
		PaymentStatus:   payStatus,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}
		for i := range rows {
			rows[i].OrderID = order.ID
			if err := s.Repo.CreateOrderItem(tx, &rows[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, apperr.Internal(err)
	}

	order.Items = rows
	s.log.Info().
		Uint("orderId", order.ID).
		Str("orderNumber", order.OrderNumber).
		Int64("total", order.Total).
		Msg("order created")
	return &order, nil
}

// ----- listing -----

func (s *OrderService) ListForUser(userID uint, limit int) ([]repository.OrderSummary, error) {
	out, err := s.Repo.ListOrdersForUser(userID, limit)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return out, nil
}

func (s *OrderService) DetailForUser(userID, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrderForUser(userID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("order not found")
		}
		return nil, apperr.Internal(err)
	}
	return o, nil
}

func (s *OrderService) ListForRestaurant(restID uint, status string, limit int) ([]entity.Order, error) {
	out, err := s.Repo.ListOrdersForRestaurant(restID, status, limit)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return out, nil
}
