package services

import (
	"context"
	"errors"
	"testing"

	"github.com/csestrada2005/puebla-barf-connect-sub001/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCartStore struct {
	openOrderID   int64
	findErr       error
	created       int
	createdID     int64
	addedOrderIDs []int64
}

func (s *stubCartStore) FindOpenOrder(_ context.Context, _ int64) (int64, error) {
	return s.openOrderID, s.findErr
}

func (s *stubCartStore) CreateOpenOrder(_ context.Context, _ int64) (int64, error) {
	s.created++
	return s.createdID, nil
}

func (s *stubCartStore) GetProductInfo(_ context.Context, _ int64) (string, float64, error) {
	return "Res 1kg", 145, nil
}

func (s *stubCartStore) AddOrIncrementItem(_ context.Context, orderID, _ int64, _ int, _ float64) error {
	s.addedOrderIDs = append(s.addedOrderIDs, orderID)
	return nil
}

func (s *stubCartStore) SetItemQuantity(_ context.Context, _, _ int64, _ int) error { return nil }
func (s *stubCartStore) RemoveItem(_ context.Context, _, _ int64) error            { return nil }
func (s *stubCartStore) ClearItems(_ context.Context, _ int64) error               { return nil }
func (s *stubCartStore) GetItems(_ context.Context, _ int64) ([]model.CartItem, float64, error) {
	return nil, 0, nil
}

type stubCustomerResolver struct{}

func (stubCustomerResolver) GetCustomerID(_ context.Context, _ int64) (int64, error) {
	return 11, nil
}

func TestCartAddUsesExistingOpenOrder(t *testing.T) {
	store := &stubCartStore{openOrderID: 5}
	svc := NewCartService(store, stubCustomerResolver{})

	require.NoError(t, svc.Add(context.Background(), 1, 3, 2))

	assert.Equal(t, 0, store.created)
	assert.Equal(t, []int64{5}, store.addedOrderIDs)
}

func TestCartAddCreatesCartWhenMissing(t *testing.T) {
	store := &stubCartStore{findErr: pgx.ErrNoRows, createdID: 9}
	svc := NewCartService(store, stubCustomerResolver{})

	require.NoError(t, svc.Add(context.Background(), 1, 3, 1))

	assert.Equal(t, 1, store.created)
	assert.Equal(t, []int64{9}, store.addedOrderIDs)
}

func TestCartAddDoesNotCreateOnLookupFault(t *testing.T) {
	boom := errors.New("connection reset")
	store := &stubCartStore{findErr: boom}
	svc := NewCartService(store, stubCustomerResolver{})

	err := svc.Add(context.Background(), 1, 3, 1)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, store.created)
	assert.Empty(t, store.addedOrderIDs)
}
