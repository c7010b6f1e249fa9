package services

import (
	"context"
	"fmt"

	"github.com/shashiranjanraj/gokart/app/models"
	"github.com/shashiranjanraj/gokart/app/repositories"
)

// OrderService implements the order listing and status workflows.
type OrderService struct {
	orders repositories.OrderRepository
}

func NewOrderService(orders repositories.OrderRepository) *OrderService {
	return &OrderService{orders: orders}
}

// ListByBuyer returns the caller's orders, newest first.
func (s *OrderService) ListByBuyer(ctx context.Context, buyerID string) ([]models.Order, error) {
	orders, err := s.orders.FindByBuyer(ctx, buyerID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// ListAll returns every order, newest first. Admin only (enforced by
// middleware, not here).
func (s *OrderService) ListAll(ctx context.Context) ([]models.Order, error) {
	orders, err := s.orders.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list all orders: %w", err)
	}
	return orders, nil
}

// UpdateStatus moves an order to a new status. The target must be a member
// of the status set and reachable from the order's current status in the
// transition table; setting the current status again is a no-op that
// succeeds without writing.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID, newStatus string) (*models.Order, error) {
	status := models.OrderStatus(newStatus)
	if !status.Valid() {
		return nil, ErrBadStatus
	}

	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}
	if order == nil {
		return nil, ErrNotFound
	}

	if order.Status == status {
		return order, nil
	}
	if !order.Status.CanTransition(status) {
		return nil, ErrBadTransition
	}

	updated, err := s.orders.UpdateStatus(ctx, orderID, status)
	if err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}
	if updated == nil {
		return nil, ErrNotFound
	}
	return updated, nil
}
