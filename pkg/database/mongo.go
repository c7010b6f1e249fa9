// Package database owns the MongoDB client lifecycle and index bootstrap.
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/shashiranjanraj/gokart/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	client *mongo.Client
	db     *mongo.Database
)

// Connect opens the Mongo client and verifies the connection with a ping.
func Connect(ctx context.Context) error {
	opts := options.Client().
		ApplyURI(config.MongoURI()).
		SetServerSelectionTimeout(5 * time.Second)

	c, err := mongo.Connect(ctx, opts)
	if err != nil {
		return fmt.Errorf("database: connect: %w", err)
	}

	if err := c.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("database: ping: %w", err)
	}

	client = c
	db = c.Database(config.MongoDB())
	return nil
}

// Disconnect closes the Mongo client.
func Disconnect(ctx context.Context) error {
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}

// DB returns the application database handle.
func DB() *mongo.Database {
	return db
}

// Collection returns a collection handle by name.
func Collection(name string) *mongo.Collection {
	return db.Collection(name)
}

// EnsureIndexes creates the indexes the workflows rely on. The unique email
// index is what actually guarantees email uniqueness — the register
// handler's pre-check exists only to produce the friendly duplicate reply,
// and a lost check-then-act race surfaces here as a duplicate key error.
func EnsureIndexes(ctx context.Context) error {
	type spec struct {
		collection string
		models     []mongo.IndexModel
	}

	specs := []spec{
		{
			collection: "users",
			models: []mongo.IndexModel{
				{
					Keys:    bson.D{{Key: "email", Value: 1}},
					Options: options.Index().SetUnique(true),
				},
			},
		},
		{
			collection: "categories",
			models: []mongo.IndexModel{
				{
					Keys:    bson.D{{Key: "slug", Value: 1}},
					Options: options.Index().SetUnique(true),
				},
			},
		},
		{
			collection: "products",
			models: []mongo.IndexModel{
				{Keys: bson.D{{Key: "slug", Value: 1}}},
				{Keys: bson.D{{Key: "category", Value: 1}}},
				{Keys: bson.D{{Key: "createdAt", Value: -1}}},
			},
		},
		{
			collection: "orders",
			models: []mongo.IndexModel{
				{Keys: bson.D{{Key: "buyer._id", Value: 1}}},
				{Keys: bson.D{{Key: "createdAt", Value: -1}}},
			},
		},
	}

	for _, s := range specs {
		if _, err := db.Collection(s.collection).Indexes().CreateMany(ctx, s.models); err != nil {
			return fmt.Errorf("database: ensure indexes on %s: %w", s.collection, err)
		}
	}
	return nil
}
