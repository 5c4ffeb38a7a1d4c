package services

import (
	"testing"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newFeedbackFixture(t *testing.T, db *gorm.DB) (*FeedbackService, *entity.Restaurant, *entity.User, *entity.Order) {
	t.Helper()
	rest := seedRestaurant(t, db, "r@x.com")
	user := seedUser(t, db, "u@x.com")

	orderSvc, _ := newOrderService(db)
	order, err := orderSvc.Create(user.ID, &CreateOrderIn{
		RestaurantID:    rest.ID,
		Items:           []OrderItemIn{{MenuItemID: rest.Menu[0].ID, Qty: 1}},
		DeliveryAddress: fullAddress,
		PaymentMethod:   entity.PayCard,
	})
	require.NoError(t, err)

	svc := NewFeedbackService(
		repository.NewFeedbackRepository(db),
		repository.NewOrderRepository(db),
		repository.NewRestaurantRepository(db),
	)
	return svc, rest, user, order
}

func TestFeedbackOncePerOrder(t *testing.T) {
	db := newTestDB(t)
	svc, _, user, order := newFeedbackFixture(t, db)

	f, err := svc.Create(user.ID, &FeedbackIn{OrderID: order.ID, Rating: 4, Comment: "good"})
	require.NoError(t, err)
	assert.Equal(t, order.RestaurantID, f.RestaurantID)

	_, err = svc.Create(user.ID, &FeedbackIn{OrderID: order.ID, Rating: 5})
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, kindOf(t, err))
}

func TestFeedbackRequiresOwnOrder(t *testing.T) {
	db := newTestDB(t)
	svc, _, _, order := newFeedbackFixture(t, db)
	stranger := seedUser(t, db, "stranger@x.com")

	_, err := svc.Create(stranger.ID, &FeedbackIn{OrderID: order.ID, Rating: 1})
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, kindOf(t, err))
}

func TestFeedbackUpdatesRestaurantRating(t *testing.T) {
	db := newTestDB(t)
	svc, rest, user, order := newFeedbackFixture(t, db)

	_, err := svc.Create(user.ID, &FeedbackIn{OrderID: order.ID, Rating: 4})
	require.NoError(t, err)

	var got entity.Restaurant
	require.NoError(t, db.First(&got, rest.ID).Error)
	assert.InDelta(t, 4.0, got.Rating, 0.001)

	list, err := svc.ListForRestaurant(rest.ID, 10)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
