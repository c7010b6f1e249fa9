package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gosimple/slug"
	"github.com/shashiranjanraj/gokart/app/models"
	"github.com/shashiranjanraj/gokart/app/repositories"
	"github.com/shashiranjanraj/gokart/pkg/cache"
)

const (
	categoriesCacheKey = "categories:all"
	catalogCacheTTL    = 5 * time.Minute
)

// CategoryService implements category CRUD. The full list is served through
// the Redis cache and invalidated on every write.
type CategoryService struct {
	categories repositories.CategoryRepository
}

func NewCategoryService(categories repositories.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

// Create adds a category, deriving its slug from the name.
func (s *CategoryService) Create(ctx context.Context, name string) (*models.Category, error) {
	existing, err := s.categories.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	if existing != nil {
		return nil, ErrCategoryExists
	}

	category := &models.Category{
		Name: name,
		Slug: slug.Make(name),
	}

	if err := s.categories.Create(ctx, category); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrCategoryExists
		}
		return nil, fmt.Errorf("create category: %w", err)
	}

	_ = cache.Del(ctx, categoriesCacheKey)
	return category, nil
}

// Update renames a category. The slug is regenerated from the new name, so
// previously shared category links may stop resolving.
func (s *CategoryService) Update(ctx context.Context, id, name string) (*models.Category, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	if category == nil {
		return nil, ErrNotFound
	}

	category.Name = name
	category.Slug = slug.Make(name)

	if err := s.categories.Update(ctx, category); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrCategoryExists
		}
		return nil, fmt.Errorf("update category: %w", err)
	}

	_ = cache.Del(ctx, categoriesCacheKey)
	return category, nil
}

// List returns all categories, read through the cache.
func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	var cached []models.Category
	if cache.Get(ctx, categoriesCacheKey, &cached) {
		return cached, nil
	}

	categories, err := s.categories.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	_ = cache.Set(ctx, categoriesCacheKey, categories, catalogCacheTTL)
	return categories, nil
}

// GetBySlug returns one category.
func (s *CategoryService) GetBySlug(ctx context.Context, categorySlug string) (*models.Category, error) {
	category, err := s.categories.FindBySlug(ctx, categorySlug)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	if category == nil {
		return nil, ErrNotFound
	}
	return category, nil
}

// Delete removes a category.
func (s *CategoryService) Delete(ctx context.Context, id string) error {
	found, err := s.categories.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if !found {
		return ErrNotFound
	}

	_ = cache.Del(ctx, categoriesCacheKey)
	return nil
}
