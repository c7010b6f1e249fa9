// Package services implements the business workflows: auth, orders, catalog
// and payment capture. Services return the sentinel errors below; the
// controllers map them onto the HTTP statuses and messages the storefront
// SPA depends on.
package services

import "errors"

var (
	// ErrEmailTaken: registration hit an email that already has an account,
	// either via the pre-check or via the unique index on a lost race.
	ErrEmailTaken = errors.New("email already registered")

	// ErrEmailNotFound: login with an email that has no account.
	ErrEmailNotFound = errors.New("email not registered")

	// ErrInvalidCredentials: login password did not match.
	ErrInvalidCredentials = errors.New("invalid password")

	// ErrWrongEmailOrAnswer: password reset could not match email+answer.
	// Deliberately does not say which half failed.
	ErrWrongEmailOrAnswer = errors.New("wrong email or answer")

	// ErrNotFound: a referenced entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrCategoryExists: category create/update collided on name or slug.
	ErrCategoryExists = errors.New("category already exists")

	// ErrBadCategory: a product referenced a category id that is not a
	// valid object id.
	ErrBadCategory = errors.New("invalid category reference")

	// ErrBadStatus: order-status update named a status outside the set.
	ErrBadStatus = errors.New("unknown order status")

	// ErrBadTransition: order-status update named a status the transition
	// table does not allow from the order's current state.
	ErrBadTransition = errors.New("order status transition not allowed")

	// ErrEmptyCart / ErrMissingNonce: checkout called without the inputs
	// the gateway needs.
	ErrEmptyCart    = errors.New("cart is empty")
	ErrMissingNonce = errors.New("payment method nonce is required")
)
