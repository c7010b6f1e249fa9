package services

import (
	"context"
	"fmt"

	"github.com/gosimple/slug"
	"github.com/shashiranjanraj/gokart/app/models"
	"github.com/shashiranjanraj/gokart/app/repositories"
	"github.com/shashiranjanraj/gokart/pkg/cache"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	productsCacheKey = "products:latest"

	// Listing limits carried over from the storefront's paging contract.
	homePageLimit   = 12
	productsPerPage = 6
	relatedLimit    = 3
)

// ProductInput carries the already-validated fields for create/update.
type ProductInput struct {
	Name        string
	Description string
	Price       float64
	Category    string
	Quantity    int
	Shipping    bool
	PhotoURL    string
}

// ProductService implements the catalog product workflows.
type ProductService struct {
	products   repositories.ProductRepository
	categories repositories.CategoryRepository
}

func NewProductService(products repositories.ProductRepository, categories repositories.CategoryRepository) *ProductService {
	return &ProductService{products: products, categories: categories}
}

// Create adds a product, deriving its slug from the name.
func (s *ProductService) Create(ctx context.Context, in ProductInput) (*models.Product, error) {
	categoryID, err := primitive.ObjectIDFromHex(in.Category)
	if err != nil {
		return nil, ErrBadCategory
	}

	product := &models.Product{
		Name:        in.Name,
		Slug:        slug.Make(in.Name),
		Description: in.Description,
		Price:       in.Price,
		Category:    categoryID,
		Quantity:    in.Quantity,
		Shipping:    in.Shipping,
		PhotoURL:    in.PhotoURL,
	}

	if err := s.products.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	_ = cache.Del(ctx, productsCacheKey)
	return product, nil
}

// Update overwrites a product's fields, regenerating the slug from the name.
func (s *ProductService) Update(ctx context.Context, id string, in ProductInput) (*models.Product, error) {
	categoryID, err := primitive.ObjectIDFromHex(in.Category)
	if err != nil {
		return nil, ErrBadCategory
	}

	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	if product == nil {
		return nil, ErrNotFound
	}

	product.Name = in.Name
	product.Slug = slug.Make(in.Name)
	product.Description = in.Description
	product.Price = in.Price
	product.Category = categoryID
	product.Quantity = in.Quantity
	product.Shipping = in.Shipping
	product.PhotoURL = in.PhotoURL

	if err := s.products.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	_ = cache.Del(ctx, productsCacheKey)
	return product, nil
}

// Delete removes a product.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	found, err := s.products.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if !found {
		return ErrNotFound
	}

	_ = cache.Del(ctx, productsCacheKey)
	return nil
}

// List returns the newest products for the home page, categories expanded,
// read through the cache.
func (s *ProductService) List(ctx context.Context) ([]models.ProductView, error) {
	var cached []models.ProductView
	if cache.Get(ctx, productsCacheKey, &cached) {
		return cached, nil
	}

	products, err := s.products.Latest(ctx, homePageLimit)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	views, err := s.expand(ctx, products)
	if err != nil {
		return nil, err
	}

	_ = cache.Set(ctx, productsCacheKey, views, catalogCacheTTL)
	return views, nil
}

// GetBySlug returns one product with its category expanded.
func (s *ProductService) GetBySlug(ctx context.Context, productSlug string) (*models.ProductView, error) {
	product, err := s.products.FindBySlug(ctx, productSlug)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	if product == nil {
		return nil, ErrNotFound
	}

	views, err := s.expand(ctx, []models.Product{*product})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// Filter narrows products by category set and/or price range.
func (s *ProductService) Filter(ctx context.Context, categoryIDs []string, priceRange []float64) ([]models.Product, error) {
	filter := repositories.ProductFilter{CategoryIDs: categoryIDs}
	if len(priceRange) == 2 {
		filter.PriceMin = &priceRange[0]
		filter.PriceMax = &priceRange[1]
	}

	products, err := s.products.Filter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("filter products: %w", err)
	}
	return products, nil
}

// Count returns the total product count.
func (s *ProductService) Count(ctx context.Context) (int64, error) {
	total, err := s.products.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return total, nil
}

// Page returns one page of products, newest first.
func (s *ProductService) Page(ctx context.Context, page int) ([]models.Product, error) {
	products, err := s.products.Page(ctx, page, productsPerPage)
	if err != nil {
		return nil, fmt.Errorf("page products: %w", err)
	}
	return products, nil
}

// Search matches keyword against product names and descriptions.
func (s *ProductService) Search(ctx context.Context, keyword string) ([]models.Product, error) {
	products, err := s.products.Search(ctx, keyword)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	return products, nil
}

// Related returns products sharing a category with the given product.
func (s *ProductService) Related(ctx context.Context, productID, categoryID string) ([]models.ProductView, error) {
	products, err := s.products.Related(ctx, productID, categoryID, relatedLimit)
	if err != nil {
		return nil, fmt.Errorf("related products: %w", err)
	}
	return s.expand(ctx, products)
}

// ByCategory returns a category (looked up by slug) and its products.
func (s *ProductService) ByCategory(ctx context.Context, categorySlug string) (*models.Category, []models.Product, error) {
	category, err := s.categories.FindBySlug(ctx, categorySlug)
	if err != nil {
		return nil, nil, fmt.Errorf("products by category: %w", err)
	}
	if category == nil {
		return nil, nil, ErrNotFound
	}

	products, err := s.products.ByCategory(ctx, category.ID.Hex())
	if err != nil {
		return nil, nil, fmt.Errorf("products by category: %w", err)
	}
	return category, products, nil
}

// expand joins each product to its category document.
func (s *ProductService) expand(ctx context.Context, products []models.Product) ([]models.ProductView, error) {
	categories, err := s.categories.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("expand categories: %w", err)
	}

	byID := make(map[primitive.ObjectID]*models.Category, len(categories))
	for i := range categories {
		byID[categories[i].ID] = &categories[i]
	}

	views := make([]models.ProductView, len(products))
	for i, p := range products {
		views[i] = models.ProductView{Product: p, Category: byID[p.Category]}
	}
	return views, nil
}
