package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type SupportRepository struct {
	DB *gorm.DB
}

func NewSupportRepository(db *gorm.DB) *SupportRepository {
	return &SupportRepository{DB: db}
}

func (r *SupportRepository) Create(t *entity.SupportTicket) error {
	return r.DB.Create(t).Error
}

func (r *SupportRepository) ListForUser(userID uint) ([]entity.SupportTicket, error) {
	var out []entity.SupportTicket
	err := r.DB.Where("user_id = ?", userID).Order("id DESC").Find(&out).Error
	return out, err
}
