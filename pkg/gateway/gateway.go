// Package gateway abstracts the payment processor behind a two-call
// interface so the checkout workflow can be exercised with a test double.
// The production implementation talks to Braintree.
package gateway

import "context"

// Result is the gateway's answer to a sale request, stored verbatim on the
// order that the capture creates.
type Result struct {
	Success       bool           `bson:"success" json:"success"`
	TransactionID string         `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	Status        string         `bson:"status,omitempty" json:"status,omitempty"`
	Amount        string         `bson:"amount,omitempty" json:"amount,omitempty"`
	Message       string         `bson:"message,omitempty" json:"message,omitempty"`
	Raw           map[string]any `bson:"raw,omitempty" json:"raw,omitempty"`
}

// Gateway is the fixed contract with the external payment service:
// request a client token, submit a sale.
type Gateway interface {
	// ClientToken returns a token the SPA uses to initialise its drop-in UI.
	ClientToken(ctx context.Context) (string, error)

	// Sale submits a transaction for the given amount (in the gateway's
	// currency units) against a payment-method nonce. A declined sale
	// returns a Result with Success=false together with the error.
	Sale(ctx context.Context, amount float64, nonce string) (*Result, error)
}
