package services

import (
	"errors"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"

	"gorm.io/gorm"
)

type FeedbackService struct {
	Repo      *repository.FeedbackRepository
	OrderRepo *repository.OrderRepository
	RestRepo  *repository.RestaurantRepository
}

func NewFeedbackService(repo *repository.FeedbackRepository, orders *repository.OrderRepository, rests *repository.RestaurantRepository) *FeedbackService {
	return &FeedbackService{Repo: repo, OrderRepo: orders, RestRepo: rests}
}

type FeedbackIn struct {
	OrderID      uint   `json:"orderId" binding:"required"`
	Rating       int    `json:"rating" binding:"required,min=1,max=5"`
	FoodQuality  int    `json:"foodQuality" binding:"omitempty,min=1,max=5"`
	DeliveryTime int    `json:"deliveryTime" binding:"omitempty,min=1,max=5"`
	Comment      string `json:"comment"`
}

// Create accepts feedback for one of the caller's own orders, once per order,
// and refreshes the restaurant's average rating.
func (s *FeedbackService) Create(userID uint, in *FeedbackIn) (*entity.Feedback, error) {
	order, err := s.OrderRepo.GetOrderForUser(userID, in.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("order not found")
		}
		return nil, apperr.Internal(err)
	}

	count, err := s.Repo.CountByOrder(order.ID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if count > 0 {
		return nil, apperr.Conflict("feedback already submitted for this order")
	}

	f := &entity.Feedback{
		OrderID:      order.ID,
		UserID:       userID,
		RestaurantID: order.RestaurantID,
		Rating:       in.Rating,
		FoodQuality:  in.FoodQuality,
		DeliveryTime: in.DeliveryTime,
		Comment:      in.Comment,
	}
	if err := s.Repo.Create(f); err != nil {
		return nil, apperr.Internal(err)
	}

	if avg, err := s.Repo.AverageRating(order.RestaurantID); err == nil {
		s.RestRepo.DB.Model(&entity.Restaurant{}).
			Where("id = ?", order.RestaurantID).
			Update("rating", avg)
	}
	return f, nil
}

func (s *FeedbackService) ListForRestaurant(restID uint, limit int) ([]entity.Feedback, error) {
	out, err := s.Repo.ListForRestaurant(restID, limit)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return out, nil
}
