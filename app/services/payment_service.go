package services

import (
	"context"
	"fmt"

	"github.com/shashiranjanraj/gokart/app/models"
	"github.com/shashiranjanraj/gokart/app/repositories"
	"github.com/shashiranjanraj/gokart/pkg/gateway"
	"github.com/shashiranjanraj/gokart/pkg/logger"
	"github.com/shashiranjanraj/gokart/pkg/metrics"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem is a product snapshot submitted by the SPA at checkout.
type CartItem struct {
	ID          string  `json:"_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// PaymentService drives the capture flow: sum the cart, submit a sale to the
// gateway, and persist an order carrying the verbatim gateway result. The
// gateway is injected so tests run against a double.
type PaymentService struct {
	orders repositories.OrderRepository
	users  repositories.UserRepository
	gw     gateway.Gateway
}

func NewPaymentService(orders repositories.OrderRepository, users repositories.UserRepository, gw gateway.Gateway) *PaymentService {
	return &PaymentService{orders: orders, users: users, gw: gw}
}

// ClientToken fetches a token the SPA needs to initialise the payment UI.
func (s *PaymentService) ClientToken(ctx context.Context) (string, error) {
	token, err := s.gw.ClientToken(ctx)
	if err != nil {
		return "", fmt.Errorf("client token: %w", err)
	}
	return token, nil
}

// Checkout submits the sale and, only on a successful capture, creates the
// order. A gateway failure creates nothing.
func (s *PaymentService) Checkout(ctx context.Context, buyerID string, cart []CartItem, nonce string) (*models.Order, error) {
	if len(cart) == 0 {
		return nil, ErrEmptyCart
	}
	if nonce == "" {
		return nil, ErrMissingNonce
	}

	buyer, err := s.users.FindByID(ctx, buyerID)
	if err != nil {
		return nil, fmt.Errorf("checkout: %w", err)
	}
	if buyer == nil {
		return nil, ErrNotFound
	}

	var total float64
	for _, item := range cart {
		total += item.Price
	}

	result, err := s.gw.Sale(ctx, total, nonce)
	if err != nil || result == nil || !result.Success {
		metrics.PaymentTransactions.WithLabelValues("failure").Inc()
		if err == nil {
			err = fmt.Errorf("gateway declined sale")
		}
		return nil, fmt.Errorf("checkout: sale: %w", err)
	}
	metrics.PaymentTransactions.WithLabelValues("success").Inc()

	items := make([]models.OrderItem, len(cart))
	for i, item := range cart {
		// A malformed product id degrades to a zero id: the snapshot still
		// records what was bought.
		pid, _ := primitive.ObjectIDFromHex(item.ID)
		items[i] = models.OrderItem{
			ProductID:   pid,
			Name:        item.Name,
			Description: item.Description,
			Price:       item.Price,
		}
	}

	order := &models.Order{
		Products: items,
		Payment:  *result,
		Buyer:    models.OrderBuyer{ID: buyer.ID, Name: buyer.Name},
		Status:   models.StatusNotProcess,
	}

	if err := s.orders.Create(ctx, order); err != nil {
		// The card was charged but the order write failed; loudly log the
		// transaction id so the operator can reconcile.
		logger.WithCtx(ctx).Error("order persist failed after capture",
			"transaction_id", result.TransactionID, "buyer_id", buyerID)
		return nil, fmt.Errorf("checkout: persist order: %w", err)
	}

	metrics.OrdersCreated.Inc()
	return order, nil
}
