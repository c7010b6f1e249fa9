// Package repositories defines the persistence interfaces consumed by the
// service layer, plus their MongoDB implementations. Services depend on the
// interfaces only, so tests substitute in-memory fakes.
//
// Lookup methods return (nil, nil) when no document matches; absence is a
// domain condition, not an error.
package repositories

import (
	"context"
	"errors"

	"github.com/shashiranjanraj/gokart/app/models"
)

// ErrDuplicateKey is returned when an insert collides with a unique index
// (e.g. two concurrent registrations with the same email).
var ErrDuplicateKey = errors.New("repositories: duplicate key")

// UserRepository persists user records.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	// FindByEmailAndAnswer matches both fields at once; the reset workflow
	// never learns which of the two was wrong.
	FindByEmailAndAnswer(ctx context.Context, email, answer string) (*models.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}

// OrderRepository persists orders. Orders are never deleted.
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, id string) (*models.Order, error)
	FindByBuyer(ctx context.Context, buyerID string) ([]models.Order, error)
	// FindAll returns every order, newest first.
	FindAll(ctx context.Context) ([]models.Order, error)
	// UpdateStatus overwrites the status field and returns the updated
	// order, or (nil, nil) when the id does not exist.
	UpdateStatus(ctx context.Context, id string, status models.OrderStatus) (*models.Order, error)
}

// CategoryRepository persists categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	Update(ctx context.Context, category *models.Category) error
	// Delete reports whether a document was actually removed.
	Delete(ctx context.Context, id string) (bool, error)
	FindByName(ctx context.Context, name string) (*models.Category, error)
	FindBySlug(ctx context.Context, slug string) (*models.Category, error)
	FindByID(ctx context.Context, id string) (*models.Category, error)
	All(ctx context.Context) ([]models.Category, error)
}

// ProductFilter narrows a product listing by category membership and/or
// price range.
type ProductFilter struct {
	CategoryIDs []string
	PriceMin    *float64
	PriceMax    *float64
}

// ProductRepository persists products.
type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id string) (bool, error)
	FindByID(ctx context.Context, id string) (*models.Product, error)
	FindBySlug(ctx context.Context, slug string) (*models.Product, error)
	// Latest returns up to limit products, newest first.
	Latest(ctx context.Context, limit int) ([]models.Product, error)
	// Page returns one page of products, newest first.
	Page(ctx context.Context, page, perPage int) ([]models.Product, error)
	Count(ctx context.Context) (int64, error)
	Filter(ctx context.Context, filter ProductFilter) ([]models.Product, error)
	// Search matches keyword case-insensitively against name and description.
	Search(ctx context.Context, keyword string) ([]models.Product, error)
	// Related returns up to limit products sharing a category, excluding
	// the product itself.
	Related(ctx context.Context, productID, categoryID string, limit int) ([]models.Product, error)
	ByCategory(ctx context.Context, categoryID string) ([]models.Product, error)
}
