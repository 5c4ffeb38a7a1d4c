package services

import (
	"fmt"
	"strings"
	"testing"

	"backend/entity"
	"backend/repository"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens a private in-memory database, migrated and ready.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Restaurant{}, &entity.MenuItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Feedback{},
		&entity.SupportTicket{},
	))
	return db
}

func newAuthService(db *gorm.DB) *AuthService {
	return NewAuthService(
		repository.NewUserRepository(db),
		repository.NewRestaurantRepository(db),
		"test-secret", testTTL, zerolog.Nop(),
	)
}

// seedRestaurant creates a restaurant with two menu items priced 10.00 and
// 5.50 and returns it with Menu loaded.
func seedRestaurant(t *testing.T, db *gorm.DB, email string) *entity.Restaurant {
	t.Helper()
	rest := &entity.Restaurant{
		Name:     "Testaurant",
		Email:    email,
		Password: "irrelevant-hash",
		Menu: []entity.MenuItem{
			{Name: "Pizza", Price: 1000, Available: true},
			{Name: "Salad", Price: 550, Available: true},
		},
	}
	require.NoError(t, db.Create(rest).Error)
	return rest
}

func seedUser(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()
	user := &entity.User{Name: "Test User", Email: email, Password: "irrelevant-hash"}
	require.NoError(t, db.Create(user).Error)
	return user
}
