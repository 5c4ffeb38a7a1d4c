package services

import (
	"testing"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartAddSnapshotsLivePrice(t *testing.T) {
	db := newTestDB(t)
	rest := seedRestaurant(t, db, "r@x.com")
	svc := NewCartService(repository.NewOrderRepository(db))

	pizza := rest.Menu[0]
	view, err := svc.Add(1, rest.ID, pizza.ID, false)
	require.NoError(t, err)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, int64(1000), view.Lines[0].Item.UnitPrice)

	// a later menu price change must not alter the carted line
	require.NoError(t, db.Model(&entity.MenuItem{}).Where("id = ?", pizza.ID).Update("price", 9999).Error)
	view = svc.Get(1)
	assert.Equal(t, int64(1000), view.Lines[0].Item.UnitPrice)
	assert.Equal(t, int64(1000), view.Subtotal)
}

func TestCartAddRejectsForeignMenuItem(t *testing.T) {
	db := newTestDB(t)
	restA := seedRestaurant(t, db, "a@x.com")
	restB := seedRestaurant(t, db, "b@x.com")
	svc := NewCartService(repository.NewOrderRepository(db))

	_, err := svc.Add(1, restA.ID, restB.Menu[0].ID, false)
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, kindOf(t, err))
}

func TestCartAddUnknownItemNotFound(t *testing.T) {
	db := newTestDB(t)
	rest := seedRestaurant(t, db, "r@x.com")
	svc := NewCartService(repository.NewOrderRepository(db))

	_, err := svc.Add(1, rest.ID, 9999, false)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, kindOf(t, err))
}

func TestCartCrossRestaurantConflictSurfacesAsConflict(t *testing.T) {
	db := newTestDB(t)
	restA := seedRestaurant(t, db, "a@x.com")
	restB := seedRestaurant(t, db, "b@x.com")
	svc := NewCartService(repository.NewOrderRepository(db))

	_, err := svc.Add(1, restA.ID, restA.Menu[0].ID, false)
	require.NoError(t, err)

	_, err = svc.Add(1, restB.ID, restB.Menu[0].ID, false)
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, kindOf(t, err))

	// cart untouched
	view := svc.Get(1)
	assert.Equal(t, restA.ID, view.RestaurantID)
	assert.Len(t, view.Lines, 1)

	// confirmed replace goes through
	view, err = svc.Add(1, restB.ID, restB.Menu[0].ID, true)
	require.NoError(t, err)
	assert.Equal(t, restB.ID, view.RestaurantID)
	assert.Len(t, view.Lines, 1)
}

func TestCartsAreIsolatedPerUser(t *testing.T) {
	db := newTestDB(t)
	rest := seedRestaurant(t, db, "r@x.com")
	svc := NewCartService(repository.NewOrderRepository(db))

	_, err := svc.Add(1, rest.ID, rest.Menu[0].ID, false)
	require.NoError(t, err)

	assert.Len(t, svc.Get(2).Lines, 0)
	assert.Len(t, svc.Get(1).Lines, 1)
}
