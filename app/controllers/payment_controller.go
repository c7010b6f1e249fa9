package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shashiranjanraj/gokart/app/middlewares"
	"github.com/shashiranjanraj/gokart/app/services"
	"github.com/shashiranjanraj/gokart/pkg/logger"
	"github.com/shashiranjanraj/gokart/pkg/response"
)

type PaymentController struct {
	payments *services.PaymentService
}

func NewPaymentController(payments *services.PaymentService) *PaymentController {
	return &PaymentController{payments: payments}
}

// Token hands the SPA the client token it needs to render the drop-in UI.
func (c *PaymentController) Token(w http.ResponseWriter, r *http.Request) {
	token, err := c.payments.ClientToken(r.Context())
	if err != nil {
		logger.WithCtx(r.Context()).Error("client token failed", "error", err.Error())
		response.Fail(w, http.StatusInternalServerError, "Error generating client token")
		return
	}
	response.JSON(w, http.StatusOK, response.M{"clientToken": token})
}

// Checkout captures the payment and records the order. The SPA only looks
// for {ok:true}; everything else it treats as a declined payment.
func (c *PaymentController) Checkout(w http.ResponseWriter, r *http.Request) {
	claims, ok := middlewares.IdentityFrom(r.Context())
	if !ok {
		response.Fail(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var body struct {
		Nonce string              `json:"nonce"`
		Cart  []services.CartItem `json:"cart"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)

	_, err := c.payments.Checkout(r.Context(), claims.UserID, body.Cart, body.Nonce)
	switch {
	case errors.Is(err, services.ErrEmptyCart):
		response.Fail(w, http.StatusBadRequest, "Cart is empty")
	case errors.Is(err, services.ErrMissingNonce):
		response.Fail(w, http.StatusBadRequest, "Payment method nonce is required")
	case errors.Is(err, services.ErrNotFound):
		response.Fail(w, http.StatusUnauthorized, "Unauthorized")
	case err != nil:
		logger.WithCtx(r.Context()).Error("checkout failed", "error", err.Error())
		response.Fail(w, http.StatusInternalServerError, "Payment failed")
	default:
		response.JSON(w, http.StatusOK, response.M{"ok": true})
	}
}
