package gateway

import (
	"context"
	"math"

	"github.com/braintree-go/braintree-go"
)

// Braintree implements Gateway against the Braintree API.
type Braintree struct {
	bt *braintree.Braintree
}

// NewBraintree builds a Braintree gateway from credentials. env is
// "production" or "sandbox".
func NewBraintree(env, merchantID, publicKey, privateKey string) *Braintree {
	e := braintree.Sandbox
	if env == "production" || env == "prod" {
		e = braintree.Production
	}
	return &Braintree{bt: braintree.New(e, merchantID, publicKey, privateKey)}
}

func (g *Braintree) ClientToken(ctx context.Context) (string, error) {
	return g.bt.ClientToken().Generate(ctx)
}

func (g *Braintree) Sale(ctx context.Context, amount float64, nonce string) (*Result, error) {
	cents := int64(math.Round(amount * 100))

	tx, err := g.bt.Transaction().Create(ctx, &braintree.TransactionRequest{
		Type:               "sale",
		Amount:             braintree.NewDecimal(cents, 2),
		PaymentMethodNonce: nonce,
		Options: &braintree.TransactionOptions{
			SubmitForSettlement: true,
		},
	})
	if err != nil {
		return &Result{Success: false, Message: err.Error()}, err
	}

	return &Result{
		Success:       true,
		TransactionID: tx.Id,
		Status:        string(tx.Status),
		Amount:        tx.Amount.String(),
		Raw: map[string]any{
			"id":     tx.Id,
			"status": tx.Status,
			"type":   tx.Type,
		},
	}, nil
}
