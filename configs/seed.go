package configs

import (
	"log"

	"backend/entity"
	"backend/pkg/password"
)

// SeedDemoRestaurant creates a demo restaurant with a small menu so a fresh
// database has something to browse. Skipped unless DEMO_RESTAURANT_EMAIL and
// DEMO_RESTAURANT_PASSWORD are set.
func SeedDemoRestaurant() error {
	db := DB()
	email := getEnv("DEMO_RESTAURANT_EMAIL", "")
	pass := getEnv("DEMO_RESTAURANT_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding demo restaurant: missing DEMO_RESTAURANT_EMAIL/DEMO_RESTAURANT_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.Restaurant{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("demo restaurant already exists:", email)
		return nil
	}

	hash, err := password.Hash(pass)
	if err != nil {
		return err
	}
	rest := entity.Restaurant{
		Name:         "Demo Diner",
		Email:        email,
		Password:     hash,
		Cuisine:      "American",
		DeliveryTime: "30-40 min",
		Address: entity.Address{
			Street: "1 Demo St", City: "Springfield", State: "IL", Zip: "62701",
		},
		Menu: []entity.MenuItem{
			{Name: "Classic Burger", Description: "Beef patty, lettuce, tomato", Price: 1099, Category: "Mains", Available: true},
			{Name: "Fries", Price: 349, Category: "Sides", Available: true},
			{Name: "Lemonade", Price: 250, Category: "Drinks", Available: true},
		},
	}
	return db.Create(&rest).Error
}
