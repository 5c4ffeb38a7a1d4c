package services

import (
	"errors"

	"backend/entity"
	"backend/pkg/apperr"

	"gorm.io/gorm"
)

// Status transitions past pending belong to the restaurant that owns the
// order. Each one is guarded so a stale client cannot skip or rewind a step.

func (s *OrderService) Accept(restID, orderID uint) error {
	return s.transition(restID, orderID, entity.OrderPending, entity.OrderPreparing)
}

func (s *OrderService) HandOff(restID, orderID uint) error {
	return s.transition(restID, orderID, entity.OrderPreparing, entity.OrderOutForDelivery)
}

func (s *OrderService) Complete(restID, orderID uint) error {
	return s.transition(restID, orderID, entity.OrderOutForDelivery, entity.OrderDelivered)
}

func (s *OrderService) Cancel(restID, orderID uint) error {
	return s.transition(restID, orderID, entity.OrderPending, entity.OrderCancelled)
}

func (s *OrderService) transition(restID, orderID uint, from, to string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.GetOrder(orderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("order not found")
			}
			return apperr.Internal(err)
		}
		if o.RestaurantID != restID {
			return apperr.Forbidden("not your order")
		}

		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, from, to)
		if err != nil {
			return apperr.Internal(err)
		}
		if affected == 0 {
			return apperr.Conflict("order is not " + from)
		}
		s.log.Info().Uint("orderId", o.ID).Str("from", from).Str("to", to).Msg("order status changed")
		return nil
	})
}
