package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type FeedbackRepository struct {
	DB *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{DB: db}
}

func (r *FeedbackRepository) Create(f *entity.Feedback) error {
	return r.DB.Create(f).Error
}

func (r *FeedbackRepository) CountByOrder(orderID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Feedback{}).Where("order_id = ?", orderID).Count(&count).Error
	return count, err
}

func (r *FeedbackRepository) ListForRestaurant(restID uint, limit int) ([]entity.Feedback, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []entity.Feedback
	err := r.DB.Where("restaurant_id = ?", restID).
		Order("id DESC").Limit(limit).Find(&out).Error
	return out, err
}

// AverageRating over all feedback for a restaurant; 0 when none exists.
func (r *FeedbackRepository) AverageRating(restID uint) (float64, error) {
	var avg *float64
	err := r.DB.Model(&entity.Feedback{}).
		Select("AVG(rating)").
		Where("restaurant_id = ?", restID).
		Scan(&avg).Error
	if err != nil || avg == nil {
		return 0, err
	}
	return *avg, nil
}
