package services

import (
	"errors"
	"sync"

	"backend/pkg/apperr"
	"backend/pkg/cart"
	"backend/repository"

	"gorm.io/gorm"
)

// CartService keeps the per-session carts. A cart belongs to exactly one user
// session and is never shared; the map itself is guarded because separate
// sessions land on separate goroutines.
type CartService struct {
	mu    sync.Mutex
	carts map[uint]*cart.Cart

	orderRepo *repository.OrderRepository // menu lookups + price snapshots
}

func NewCartService(orderRepo *repository.OrderRepository) *CartService {
	return &CartService{
		carts:     make(map[uint]*cart.Cart),
		orderRepo: orderRepo,
	}
}

func (s *CartService) cartFor(userID uint) *cart.Cart {
	if c, ok := s.carts[userID]; ok {
		return c
	}
	c := cart.New()
	s.carts[userID] = c
	return c
}

type CartView struct {
	RestaurantID uint        `json:"restaurantId"`
	Lines        []cart.Line `json:"lines"`
	Subtotal     int64       `json:"subtotal"`
}

func (s *CartService) view(c *cart.Cart) *CartView {
	lines := make([]cart.Line, len(c.Lines))
	copy(lines, c.Lines)
	return &CartView{RestaurantID: c.RestaurantID, Lines: lines, Subtotal: c.Total()}
}

func (s *CartService) Get(userID uint) *CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view(s.cartFor(userID))
}

// Add snapshots the live menu price into the cart line. Cross-restaurant adds
// without replace are rejected and leave the cart untouched.
func (s *CartService) Add(userID, restaurantID, menuItemID uint, replace bool) (*CartView, error) {
	m, err := s.orderRepo.GetMenuItemBasics(menuItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("menu item not found")
		}
		return nil, apperr.Internal(err)
	}
	if m.RestaurantID != restaurantID {
		return nil, apperr.Validation("menu item not in this restaurant")
	}
	if !m.Available {
		return nil, apperr.Validation("menu item not available")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cartFor(userID)
	item := cart.Item{ID: m.ID, Name: m.Name, UnitPrice: m.Price}
	if err := c.AddItem(item, restaurantID, replace); err != nil {
		if errors.Is(err, cart.ErrDifferentRestaurant) {
			return nil, apperr.Conflict(err.Error())
		}
		return nil, apperr.Internal(err)
	}
	return s.view(c), nil
}

func (s *CartService) SetQuantity(userID, menuItemID uint, qty int) *CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cartFor(userID)
	c.SetQuantity(menuItemID, qty)
	return s.view(c)
}

func (s *CartService) Remove(userID, menuItemID uint) *CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cartFor(userID)
	c.Remove(menuItemID)
	return s.view(c)
}

func (s *CartService) Clear(userID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cartFor(userID).Clear()
}

// Snapshot returns a copy of the cart for checkout. The live cart is cleared
// separately, only after the order is persisted.
func (s *CartService) Snapshot(userID uint) cart.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cartFor(userID)
	lines := make([]cart.Line, len(c.Lines))
	copy(lines, c.Lines)
	return cart.Cart{RestaurantID: c.RestaurantID, Lines: lines}
}
