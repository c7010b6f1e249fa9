package services

import (
	"context"
	"testing"
	"time"

	"github.com/shashiranjanraj/gokart/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func seedOrders(t *testing.T, repo *fakeOrderRepo, buyer primitive.ObjectID, n int) []models.Order {
	t.Helper()
	base := time.Now().Add(-time.Hour)
	for i := 0; i < n; i++ {
		order := &models.Order{
			Buyer:     models.OrderBuyer{ID: buyer, Name: "John Doe"},
			Status:    models.StatusNotProcess,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, repo.Create(context.Background(), order))
	}
	return repo.orders
}

func TestListByBuyerNewestFirst(t *testing.T) {
	repo := &fakeOrderRepo{}
	buyer := primitive.NewObjectID()
	seedOrders(t, repo, buyer, 3)
	seedOrders(t, repo, primitive.NewObjectID(), 2)

	orders, err := NewOrderService(repo).ListByBuyer(context.Background(), buyer.Hex())
	require.NoError(t, err)
	require.Len(t, orders, 3)
	for i := 1; i < len(orders); i++ {
		assert.False(t, orders[i].CreatedAt.After(orders[i-1].CreatedAt))
	}
	for _, o := range orders {
		assert.Equal(t, buyer, o.Buyer.ID)
	}
}

func TestListAllNewestFirst(t *testing.T) {
	repo := &fakeOrderRepo{}
	seedOrders(t, repo, primitive.NewObjectID(), 4)

	orders, err := NewOrderService(repo).ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 4)
	for i := 1; i < len(orders); i++ {
		assert.False(t, orders[i].CreatedAt.After(orders[i-1].CreatedAt))
	}
}

func TestUpdateStatusUnknownStatus(t *testing.T) {
	repo := &fakeOrderRepo{}
	seeded := seedOrders(t, repo, primitive.NewObjectID(), 1)

	_, err := NewOrderService(repo).UpdateStatus(context.Background(), seeded[0].ID.Hex(), "Teleported")
	assert.ErrorIs(t, err, ErrBadStatus)
}

func TestUpdateStatusMissingOrder(t *testing.T) {
	repo := &fakeOrderRepo{}

	_, err := NewOrderService(repo).UpdateStatus(context.Background(), primitive.NewObjectID().Hex(), "Processing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateStatusFollowsTransitionTable(t *testing.T) {
	repo := &fakeOrderRepo{}
	seeded := seedOrders(t, repo, primitive.NewObjectID(), 1)
	id := seeded[0].ID.Hex()
	svc := NewOrderService(repo)

	// Not Process cannot jump straight to Delivered.
	_, err := svc.UpdateStatus(context.Background(), id, "Delivered")
	assert.ErrorIs(t, err, ErrBadTransition)

	order, err := svc.UpdateStatus(context.Background(), id, "Processing")
	require.NoError(t, err)
	assert.Equal(t, models.StatusProcessing, order.Status)

	order, err = svc.UpdateStatus(context.Background(), id, "Shipped")
	require.NoError(t, err)
	assert.Equal(t, models.StatusShipped, order.Status)

	order, err = svc.UpdateStatus(context.Background(), id, "Delivered")
	require.NoError(t, err)
	assert.Equal(t, models.StatusDelivered, order.Status)

	// Delivered is terminal.
	_, err = svc.UpdateStatus(context.Background(), id, "Cancelled")
	assert.ErrorIs(t, err, ErrBadTransition)
}

func TestUpdateStatusSameStatusIsNoOp(t *testing.T) {
	repo := &fakeOrderRepo{}
	seeded := seedOrders(t, repo, primitive.NewObjectID(), 1)

	order, err := NewOrderService(repo).UpdateStatus(context.Background(), seeded[0].ID.Hex(), "Not Process")
	require.NoError(t, err)
	assert.Equal(t, models.StatusNotProcess, order.Status)
}
