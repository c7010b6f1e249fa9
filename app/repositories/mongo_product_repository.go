package repositories

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/shashiranjanraj/gokart/app/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoProductRepository is the Mongo-backed ProductRepository.
type MongoProductRepository struct {
	coll *mongo.Collection
}

func NewMongoProductRepository(db *mongo.Database) *MongoProductRepository {
	return &MongoProductRepository{coll: db.Collection("products")}
}

func (r *MongoProductRepository) Create(ctx context.Context, product *models.Product) error {
	now := time.Now().UTC()
	product.CreatedAt = now
	product.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, product)
	if err != nil {
		return fmt.Errorf("products: insert: %w", err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		product.ID = oid
	}
	return nil
}

func (r *MongoProductRepository) Update(ctx context.Context, product *models.Product) error {
	product.UpdatedAt = time.Now().UTC()

	_, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": product.ID},
		bson.M{"$set": bson.M{
			"name":        product.Name,
			"slug":        product.Slug,
			"description": product.Description,
			"price":       product.Price,
			"category":    product.Category,
			"quantity":    product.Quantity,
			"shipping":    product.Shipping,
			"photoUrl":    product.PhotoURL,
			"updatedAt":   product.UpdatedAt,
		}},
	)
	if err != nil {
		return fmt.Errorf("products: update: %w", err)
	}
	return nil
}

func (r *MongoProductRepository) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("products: delete: %w", err)
	}
	return res.DeletedCount > 0, nil
}

func (r *MongoProductRepository) FindByID(ctx context.Context, id string) (*models.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *MongoProductRepository) FindBySlug(ctx context.Context, slug string) (*models.Product, error) {
	return r.findOne(ctx, bson.M{"slug": slug})
}

func (r *MongoProductRepository) Latest(ctx context.Context, limit int) ([]models.Product, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))
	return r.find(ctx, bson.M{}, opts)
}

func (r *MongoProductRepository) Page(ctx context.Context, page, perPage int) ([]models.Product, error) {
	if page < 1 {
		page = 1
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((page - 1) * perPage)).
		SetLimit(int64(perPage))
	return r.find(ctx, bson.M{}, opts)
}

func (r *MongoProductRepository) Count(ctx context.Context) (int64, error) {
	total, err := r.coll.EstimatedDocumentCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("products: count: %w", err)
	}
	return total, nil
}

func (r *MongoProductRepository) Filter(ctx context.Context, filter ProductFilter) ([]models.Product, error) {
	query := bson.M{}

	if len(filter.CategoryIDs) > 0 {
		ids := make([]primitive.ObjectID, 0, len(filter.CategoryIDs))
		for _, id := range filter.CategoryIDs {
			oid, err := primitive.ObjectIDFromHex(id)
			if err != nil {
				continue
			}
			ids = append(ids, oid)
		}
		query["category"] = bson.M{"$in": ids}
	}

	price := bson.M{}
	if filter.PriceMin != nil {
		price["$gte"] = *filter.PriceMin
	}
	if filter.PriceMax != nil {
		price["$lte"] = *filter.PriceMax
	}
	if len(price) > 0 {
		query["price"] = price
	}

	return r.find(ctx, query, options.Find())
}

func (r *MongoProductRepository) Search(ctx context.Context, keyword string) ([]models.Product, error) {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(keyword), Options: "i"}
	query := bson.M{"$or": bson.A{
		bson.M{"name": pattern},
		bson.M{"description": pattern},
	}}
	return r.find(ctx, query, options.Find())
}

func (r *MongoProductRepository) Related(ctx context.Context, productID, categoryID string, limit int) ([]models.Product, error) {
	pid, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return []models.Product{}, nil
	}
	cid, err := primitive.ObjectIDFromHex(categoryID)
	if err != nil {
		return []models.Product{}, nil
	}

	query := bson.M{
		"category": cid,
		"_id":      bson.M{"$ne": pid},
	}
	return r.find(ctx, query, options.Find().SetLimit(int64(limit)))
}

func (r *MongoProductRepository) ByCategory(ctx context.Context, categoryID string) ([]models.Product, error) {
	cid, err := primitive.ObjectIDFromHex(categoryID)
	if err != nil {
		return []models.Product{}, nil
	}
	return r.find(ctx, bson.M{"category": cid}, options.Find())
}

func (r *MongoProductRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Product, error) {
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("products: find: %w", err)
	}
	defer cur.Close(ctx)

	products := []models.Product{}
	if err := cur.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("products: decode: %w", err)
	}
	return products, nil
}

func (r *MongoProductRepository) findOne(ctx context.Context, filter bson.M) (*models.Product, error) {
	var product models.Product
	err := r.coll.FindOne(ctx, filter).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("products: find: %w", err)
	}
	return &product, nil
}
