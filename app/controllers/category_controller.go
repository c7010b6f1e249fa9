package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shashiranjanraj/gokart/app/services"
	"github.com/shashiranjanraj/gokart/pkg/logger"
	"github.com/shashiranjanraj/gokart/pkg/response"
)

type CategoryController struct {
	categories *services.CategoryService
}

func NewCategoryController(categories *services.CategoryService) *CategoryController {
	return &CategoryController{categories: categories}
}

// Create adds a category. A duplicate name is a 200 with success=false, the
// reply the admin dashboard expects.
func (c *CategoryController) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name string `json:"name"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)

	if body.Name == "" {
		response.Fail(w, http.StatusUnauthorized, "Name is required")
		return
	}

	category, err := c.categories.Create(r.Context(), body.Name)
	switch {
	case errors.Is(err, services.ErrCategoryExists):
		response.Success(w, http.StatusOK, "Category Already Exists", nil)
	case err != nil:
		logger.WithCtx(r.Context()).Error("create category failed", "error", err.Error())
		response.Fail(w, http.StatusInternalServerError, "Error in Category")
	default:
		response.Success(w, http.StatusCreated, "new category created", response.M{"category": category})
	}
}

// Update renames a category.
func (c *CategoryController) Update(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name string `json:"name"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)

	category, err := c.categories.Update(r.Context(), chi.URLParam(r, "id"), body.Name)
	switch {
	case errors.Is(err, services.ErrNotFound):
		response.Fail(w, http.StatusNotFound, "Category not found")
	case err != nil:
		logger.WithCtx(r.Context()).Error("update category failed", "error", err.Error())
		response.Fail(w, http.StatusInternalServerError, "Error while updating category")
	default:
		response.Success(w, http.StatusOK, "Category Updated Successfully", response.M{"category": category})
	}
}

// List returns every category.
func (c *CategoryController) List(w http.ResponseWriter, r *http.Request) {
	categories, err := c.categories.List(r.Context())
	if err != nil {
		logger.WithCtx(r.Context()).Error("list categories failed", "error", err.Error())
		response.Fail(w, http.StatusInternalServerError, "Error while getting all categories")
		return
	}
	response.Success(w, http.StatusOK, "All Categories List", response.M{"category": categories})
}

// Get returns one category by slug.
func (c *CategoryController) Get(w http.ResponseWriter, r *http.Request) {
	category, err := c.categories.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
	switch {
	case errors.Is(err, services.ErrNotFound):
		response.Fail(w, http.StatusNotFound, "Category not found")
	case err != nil:
		logger.WithCtx(r.Context()).Error("get category failed", "error", err.Error())
		response.Fail(w, http.StatusInternalServerError, "Error While getting Single Category")
	default:
		response.Success(w, http.StatusOK, "Get Single Category Successfully", response.M{"category": category})
	}
}

// Delete removes a category by id.
func (c *CategoryController) Delete(w http.ResponseWriter, r *http.Request) {
	err := c.categories.Delete(r.Context(), chi.URLParam(r, "id"))
	switch {
	case errors.Is(err, services.ErrNotFound):
		response.Fail(w, http.StatusNotFound, "Category not found")
	case err != nil:
		logger.WithCtx(r.Context()).Error("delete category failed", "error", err.Error())
		response.Fail(w, http.StatusInternalServerError, "error while deleting category")
	default:
		response.Success(w, http.StatusOK, "Category Deleted Successfully", nil)
	}
}
