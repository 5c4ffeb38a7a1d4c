package services

import (
	"errors"
	"strings"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"

	"gorm.io/gorm"
)

type RestaurantService struct {
	Repo         *repository.RestaurantRepository
	FeedbackRepo *repository.FeedbackRepository
}

func NewRestaurantService(repo *repository.RestaurantRepository, feedbacks *repository.FeedbackRepository) *RestaurantService {
	return &RestaurantService{Repo: repo, FeedbackRepo: feedbacks}
}

func (s *RestaurantService) List() ([]entity.Restaurant, error) {
	rests, err := s.Repo.FindAll()
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return rests, nil
}

func (s *RestaurantService) Get(id uint) (*entity.Restaurant, error) {
	rest, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("restaurant not found")
		}
		return nil, apperr.Internal(err)
	}
	return rest, nil
}

func (s *RestaurantService) Search(query string) ([]entity.Restaurant, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.List()
	}
	rests, err := s.Repo.Search(query)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return rests, nil
}

// ----- menu management (restaurant role) -----

type MenuItemIn struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       int64  `json:"price" binding:"required,min=1"` // cents
	Category    string `json:"category"`
	Image       string `json:"image"`
	Available   *bool  `json:"available"`
}

func (s *RestaurantService) AddMenuItem(restID uint, in *MenuItemIn) (*entity.MenuItem, error) {
	item := &entity.MenuItem{
		RestaurantID: restID,
		Name:         strings.TrimSpace(in.Name),
		Description:  in.Description,
		Price:        in.Price,
		Category:     in.Category,
		Image:        in.Image,
		Available:    true,
	}
	if in.Available != nil {
		item.Available = *in.Available
	}
	if err := s.Repo.CreateMenuItem(item); err != nil {
		return nil, apperr.Internal(err)
	}
	return item, nil
}

func (s *RestaurantService) UpdateMenuItem(restID, itemID uint, in *MenuItemIn) (*entity.MenuItem, error) {
	item, err := s.Repo.FindMenuItem(restID, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("menu item not found")
		}
		return nil, apperr.Internal(err)
	}

	item.Name = strings.TrimSpace(in.Name)
	item.Description = in.Description
	item.Price = in.Price
	item.Category = in.Category
	item.Image = in.Image
	if in.Available != nil {
		item.Available = *in.Available
	}
	if err := s.Repo.SaveMenuItem(item); err != nil {
		return nil, apperr.Internal(err)
	}
	return item, nil
}

func (s *RestaurantService) DeleteMenuItem(restID, itemID uint) error {
	affected, err := s.Repo.DeleteMenuItem(restID, itemID)
	if err != nil {
		return apperr.Internal(err)
	}
	if affected == 0 {
		return apperr.NotFound("menu item not found")
	}
	return nil
}
