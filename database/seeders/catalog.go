package seeders

import (
	"context"
	"errors"
	"time"

	"github.com/gosimple/slug"
	"github.com/shashiranjanraj/gokart/app/models"
	"github.com/shashiranjanraj/gokart/config"
	"github.com/shashiranjanraj/gokart/pkg/auth"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func init() {
	Register("admin", SeedAdmin)
	Register("catalog", SeedCatalog)
}

// SeedAdmin creates the initial administrator account if no user holds the
// email yet. Credentials come from SEED_ADMIN_EMAIL / SEED_ADMIN_PASSWORD,
// with development defaults.
func SeedAdmin(ctx context.Context, db *mongo.Database) error {
	email := config.Get("SEED_ADMIN_EMAIL", "admin@gokart.local")
	password := config.Get("SEED_ADMIN_PASSWORD", "Admin123!")

	users := db.Collection("users")
	if err := users.FindOne(ctx, bson.M{"email": email}).Err(); err == nil {
		return nil
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	_, err = users.InsertOne(ctx, models.User{
		Name:      "Administrator",
		Email:     email,
		Password:  hash,
		Phone:     "000-000-0000",
		Address:   "Head Office",
		Answer:    "seeded",
		Role:      models.RoleAdmin,
		CreatedAt: now,
		UpdatedAt: now,
	})
	return err
}

// SeedCatalog inserts a starter category and product set so a fresh install
// renders a non-empty storefront. Runs only against an empty catalogue.
func SeedCatalog(ctx context.Context, db *mongo.Database) error {
	categories := db.Collection("categories")
	count, err := categories.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	type starter struct {
		category string
		products []models.Product
	}

	starters := []starter{
		{
			category: "Electronics",
			products: []models.Product{
				{Name: "Wireless Headphones", Description: "Over-ear, 30h battery", Price: 79.99, Quantity: 40, Shipping: true},
				{Name: "USB-C Charger", Description: "65W GaN wall charger", Price: 29.99, Quantity: 120, Shipping: true},
			},
		},
		{
			category: "Books",
			products: []models.Product{
				{Name: "The Pragmatic Shopkeeper", Description: "Running a small store well", Price: 18.50, Quantity: 25, Shipping: true},
			},
		},
		{
			category: "Clothing",
			products: []models.Product{
				{Name: "Plain Cotton T-Shirt", Description: "Unisex, pre-shrunk", Price: 12.00, Quantity: 200, Shipping: false},
			},
		},
	}

	products := db.Collection("products")
	now := time.Now().UTC()

	for _, s := range starters {
		category := models.Category{Name: s.category, Slug: slug.Make(s.category)}
		res, err := categories.InsertOne(ctx, category)
		if err != nil {
			return err
		}
		categoryID := res.InsertedID.(primitive.ObjectID)

		for _, p := range s.products {
			p.Slug = slug.Make(p.Name)
			p.Category = categoryID
			p.CreatedAt = now
			p.UpdatedAt = now
			if _, err := products.InsertOne(ctx, p); err != nil {
				return err
			}
		}
	}
	return nil
}
