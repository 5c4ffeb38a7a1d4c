package repository

import (
	"strings"

	"backend/entity"

	"gorm.io/gorm"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func (r *RestaurantRepository) FindByEmail(email string) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.Where("email = ?", email).First(&rest).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) CountByEmail(email string) (int64, error) {
	var count int64
	if err := r.DB.Model(&entity.Restaurant{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *RestaurantRepository) Create(rest *entity.Restaurant) error {
	return r.DB.Create(rest).Error
}

func (r *RestaurantRepository) FindAll() ([]entity.Restaurant, error) {
	var rests []entity.Restaurant
	err := r.DB.Preload("Menu").Find(&rests).Error
	return rests, err
}

func (r *RestaurantRepository) FindByID(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.Preload("Menu").First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) Exists(id uint) (bool, error) {
	var count int64
	if err := r.DB.Model(&entity.Restaurant{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Search matches restaurants by name, cuisine or menu item name,
// case-insensitive substring.
func (r *RestaurantRepository) Search(query string) ([]entity.Restaurant, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	var rests []entity.Restaurant
	err := r.DB.Preload("Menu").
		Where("LOWER(name) LIKE ?", pattern).
		Or("LOWER(cuisine) LIKE ?", pattern).
		Or("id IN (?)", r.DB.Model(&entity.MenuItem{}).
			Select("restaurant_id").
			Where("LOWER(name) LIKE ?", pattern)).
		Find(&rests).Error
	return rests, err
}

// ---------------- Menu items ----------------

func (r *RestaurantRepository) CreateMenuItem(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

func (r *RestaurantRepository) FindMenuItem(restaurantID, itemID uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.Where("id = ? AND restaurant_id = ?", itemID, restaurantID).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *RestaurantRepository) SaveMenuItem(item *entity.MenuItem) error {
	return r.DB.Save(item).Error
}

func (r *RestaurantRepository) DeleteMenuItem(restaurantID, itemID uint) (int64, error) {
	res := r.DB.Where("id = ? AND restaurant_id = ?", itemID, restaurantID).Delete(&entity.MenuItem{})
	return res.RowsAffected, res.Error
}
