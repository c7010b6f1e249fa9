package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shashiranjanraj/gokart/app/middlewares"
	"github.com/shashiranjanraj/gokart/app/models"
	"github.com/shashiranjanraj/gokart/app/services"
	"github.com/shashiranjanraj/gokart/pkg/logger"
	"github.com/shashiranjanraj/gokart/pkg/response"
)

type OrderController struct {
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

// List returns the caller's own orders, newest first, as a bare JSON array.
func (c *OrderController) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := middlewares.IdentityFrom(r.Context())
	if !ok {
		response.Fail(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	orders, err := c.orders.ListByBuyer(r.Context(), claims.UserID)
	if err != nil {
		logger.WithCtx(r.Context()).Error("list orders failed", "error", err.Error())
		response.Fail(w, http.StatusInternalServerError, "Error While Getting Orders")
		return
	}
	if orders == nil {
		// The SPA iterates the array; an empty list must be [], not null.
		orders = []models.Order{}
	}
	response.JSON(w, http.StatusOK, orders)
}

// ListAll returns every order, newest first. Admin route.
func (c *OrderController) ListAll(w http.ResponseWriter, r *http.Request) {
	orders, err := c.orders.ListAll(r.Context())
	if err != nil {
		logger.WithCtx(r.Context()).Error("list all orders failed", "error", err.Error())
		response.Fail(w, http.StatusInternalServerError, "Error While Getting All Orders")
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	response.JSON(w, http.StatusOK, orders)
}

// UpdateStatus moves an order to a new status and returns the updated order.
func (c *OrderController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status string `json:"status"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)

	order, err := c.orders.UpdateStatus(r.Context(), chi.URLParam(r, "orderId"), body.Status)
	switch {
	case errors.Is(err, services.ErrNotFound):
		response.Fail(w, http.StatusNotFound, "Order not found")
	case errors.Is(err, services.ErrBadStatus), errors.Is(err, services.ErrBadTransition):
		response.Fail(w, http.StatusBadRequest, "Failed to update order status")
	case err != nil:
		logger.WithCtx(r.Context()).Error("order status update failed", "error", err.Error())
		response.Fail(w, http.StatusInternalServerError, "Failed to update order status")
	default:
		response.JSON(w, http.StatusOK, order)
	}
}
