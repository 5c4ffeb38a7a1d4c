package services

import (
	"testing"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newOrderService(db *gorm.DB) (*OrderService, *CartService) {
	orderRepo := repository.NewOrderRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	carts := NewCartService(orderRepo)
	svc := NewOrderService(db, orderRepo, restRepo, carts, 399, 8, zerolog.Nop())
	return svc, carts
}

var fullAddress = entity.Address{Street: "1 Main St", City: "Springfield", State: "IL", Zip: "62701"}

func TestCreateRecomputesTotalServerSide(t *testing.T) {
	db := newTestDB(t)
	rest := seedRestaurant(t, db, "r@x.com")
	user := seedUser(t, db, "u@x.com")
	svc, _ := newOrderService(db)

	// 2 x 10.00 = 20.00 subtotal; fee 3.99; tax 8% = 1.60; total 25.59
	order, err := svc.Create(user.ID, &CreateOrderIn{
		RestaurantID:    rest.ID,
		Items:           []OrderItemIn{{MenuItemID: rest.Menu[0].ID, Qty: 2}},
		DeliveryAddress: fullAddress,
		PaymentMethod:   entity.PayCard,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(2000), order.Subtotal)
	assert.Equal(t, int64(399), order.DeliveryFee)
	assert.Equal(t, int64(160), order.Tax)
	assert.Equal(t, int64(2559), order.Total)
	assert.Equal(t, entity.OrderPending, order.Status)
	assert.Equal(t, entity.PaymentCompleted, order.PaymentStatus)
	assert.NotEmpty(t, order.OrderNumber)
}

func TestCreateRequiresCompleteAddress(t *testing.T) {
	db := newTestDB(t)
	rest := seedRestaurant(t, db, "r@x.com")
	user := seedUser(t, db, "u@x.com")
	svc, _ := newOrderService(db)

	addr := fullAddress
	addr.Zip = ""
	_, err := svc.Create(user.ID, &CreateOrderIn{
		RestaurantID:    rest.ID,
		Items:           []OrderItemIn{{MenuItemID: rest.Menu[0].ID, Qty: 1}},
		DeliveryAddress: addr,
		PaymentMethod:   entity.PayCard,
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, kindOf(t, err))

	var count int64
	db.Model(&entity.Order{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreateRejectsForeignMenuItemWithoutPartialWrite(t *testing.T) {
	db := newTestDB(t)
	restA := seedRestaurant(t, db, "a@x.com")
	restB := seedRestaurant(t, db, "b@x.com")
	user := seedUser(t, db, "u@x.com")
	svc, _ := newOrderService(db)

	_, err := svc.Create(user.ID, &CreateOrderIn{
		RestaurantID: restA.ID,
		Items: []OrderItemIn{
			{MenuItemID: restA.Menu[0].ID, Qty: 1},
			{MenuItemID: restB.Menu[0].ID, Qty: 1},
		},
		DeliveryAddress: fullAddress,
		PaymentMethod:   entity.PayCard,
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, kindOf(t, err))

	var orders, items int64
	db.Model(&entity.Order{}).Count(&orders)
	db.Model(&entity.OrderItem{}).Count(&items)
	assert.Zero(t, orders)
	assert.Zero(t, items)
}

func TestCreateUnknownRestaurantNotFound(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "u@x.com")
	svc, _ := newOrderService(db)

	_, err := svc.Create(user.ID, &CreateOrderIn{
		RestaurantID:    404,
		Items:           []OrderItemIn{{MenuItemID: 1, Qty: 1}},
		DeliveryAddress: fullAddress,
		PaymentMethod:   entity.PayCard,
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, kindOf(t, err))
}

func TestCheckoutUsesCartSnapshotsAndClearsCart(t *testing.T) {
	db := newTestDB(t)
	rest := seedRestaurant(t, db, "r@x.com")
	user := seedUser(t, db, "u@x.com")
	svc, carts := newOrderService(db)

	pizza, salad := rest.Menu[0], rest.Menu[1]
	_, err := carts.Add(user.ID, rest.ID, pizza.ID, false)
	require.NoError(t, err)
	_, err = carts.Add(user.ID, rest.ID, pizza.ID, false)
	require.NoError(t, err)
	_, err = carts.Add(user.ID, rest.ID, salad.ID, false)
	require.NoError(t, err)

	// price change after carting must not affect the order
	require.NoError(t, db.Model(&entity.MenuItem{}).Where("id = ?", pizza.ID).Update("price", 9999).Error)

	order, err := svc.Checkout(user.ID, &CheckoutIn{
		DeliveryAddress: fullAddress,
		PaymentMethod:   entity.PayCashOnDelivery,
	})
	require.NoError(t, err)

	// 25.50 subtotal + 3.99 fee + 2.04 tax
	assert.Equal(t, int64(2550), order.Subtotal)
	assert.Equal(t, int64(2550+399+204), order.Total)
	assert.Equal(t, entity.PaymentPending, order.PaymentStatus)
	require.Len(t, order.Items, 2)
	assert.Equal(t, int64(1000), order.Items[0].UnitPrice)

	// cart cleared only after the order landed
	snap := carts.Snapshot(user.ID)
	assert.True(t, snap.Empty())
}

func TestCheckoutEmptyCartFails(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "u@x.com")
	svc, _ := newOrderService(db)

	_, err := svc.Checkout(user.ID, &CheckoutIn{
		DeliveryAddress: fullAddress,
		PaymentMethod:   entity.PayCard,
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, kindOf(t, err))
}

func TestCheckoutFailureLeavesCartIntact(t *testing.T) {
	db := newTestDB(t)
	rest := seedRestaurant(t, db, "r@x.com")
	user := seedUser(t, db, "u@x.com")
	svc, carts := newOrderService(db)

	_, err := carts.Add(user.ID, rest.ID, rest.Menu[0].ID, false)
	require.NoError(t, err)

	_, err = svc.Checkout(user.ID, &CheckoutIn{
		DeliveryAddress: entity.Address{Street: "1 Main St"}, // incomplete
		PaymentMethod:   entity.PayCard,
	})
	require.Error(t, err)

	snap := carts.Snapshot(user.ID)
	assert.False(t, snap.Empty())
}

func TestListAndDetailForUser(t *testing.T) {
	db := newTestDB(t)
	rest := seedRestaurant(t, db, "r@x.com")
	user := seedUser(t, db, "u@x.com")
	other := seedUser(t, db, "other@x.com")
	svc, _ := newOrderService(db)

	order, err := svc.Create(user.ID, &CreateOrderIn{
		RestaurantID:    rest.ID,
		Items:           []OrderItemIn{{MenuItemID: rest.Menu[0].ID, Qty: 1}},
		DeliveryAddress: fullAddress,
		PaymentMethod:   entity.PayCard,
	})
	require.NoError(t, err)

	list, err := svc.ListForUser(user.ID, 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, order.ID, list[0].ID)

	got, err := svc.DetailForUser(user.ID, order.ID)
	require.NoError(t, err)
	assert.Len(t, got.Items, 1)

	// another user must not see it
	_, err = svc.DetailForUser(other.ID, order.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, kindOf(t, err))
}

func TestStatusTransitionsAreGuarded(t *testing.T) {
	db := newTestDB(t)
	rest := seedRestaurant(t, db, "r@x.com")
	stranger := seedRestaurant(t, db, "s@x.com")
	user := seedUser(t, db, "u@x.com")
	svc, _ := newOrderService(db)

	order, err := svc.Create(user.ID, &CreateOrderIn{
		RestaurantID:    rest.ID,
		Items:           []OrderItemIn{{MenuItemID: rest.Menu[0].ID, Qty: 1}},
		DeliveryAddress: fullAddress,
		PaymentMethod:   entity.PayCard,
	})
	require.NoError(t, err)

	// another restaurant may not touch it
	err = svc.Accept(stranger.ID, order.ID)
	assert.Equal(t, apperr.KindForbidden, kindOf(t, err))

	require.NoError(t, svc.Accept(rest.ID, order.ID))

	// cancel is only valid from pending
	err = svc.Cancel(rest.ID, order.ID)
	assert.Equal(t, apperr.KindConflict, kindOf(t, err))

	require.NoError(t, svc.HandOff(rest.ID, order.ID))
	require.NoError(t, svc.Complete(rest.ID, order.ID))

	// replaying a finished transition conflicts
	err = svc.Complete(rest.ID, order.ID)
	assert.Equal(t, apperr.KindConflict, kindOf(t, err))
}
