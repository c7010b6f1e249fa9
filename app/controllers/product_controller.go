package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shashiranjanraj/gokart/app/models"
	"github.com/shashiranjanraj/gokart/app/services"
	"github.com/shashiranjanraj/gokart/pkg/logger"
	"github.com/shashiranjanraj/gokart/pkg/response"
)

type ProductController struct {
	products *services.ProductService
}

func NewProductController(products *services.ProductService) *ProductController {
	return &ProductController{products: products}
}

// productBody is the create/update payload. The photo travels as a URL;
// binary upload was dropped when the admin UI moved to hosted images.
type productBody struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Quantity    int     `json:"quantity"`
	Shipping    bool    `json:"shipping"`
	PhotoURL    string  `json:"photoUrl"`
}

// check validates the payload and writes the matching 400 when a field is
// missing or out of range. It reports whether the payload passed.
func (b productBody) check(w http.ResponseWriter) bool {
	var msg string
	switch {
	case b.Name == "":
		msg = "Name is required"
	case b.Description == "":
		msg = "Description is required"
	case b.Price == 0:
		msg = "Price is required"
	case b.Price < 0:
		msg = "Price must be a positive number"
	case b.Category == "":
		msg = "Category is required"
	case b.Quantity == 0:
		msg = "Quantity is required"
	case b.Quantity < 0:
		msg = "Quantity must be a positive number"
	default:
		return true
	}
	response.Fail(w, http.StatusBadRequest, msg)
	return false
}

func (b productBody) input() services.ProductInput {
	return services.ProductInput{
		Name:        b.Name,
		Description: b.Description,
		Price:       b.Price,
		Category:    b.Category,
		Quantity:    b.Quantity,
		Shipping:    b.Shipping,
		PhotoURL:    b.PhotoURL,
	}
}

// Create adds a product.
func (c *ProductController) Create(w http.ResponseWriter, r *http.Request) {
	var body productBody
	_ = json.NewDecoder(r.Body).Decode(&body)
	if !body.check(w) {
		return
	}

	product, err := c.products.Create(r.Context(), body.input())
	switch {
	case errors.Is(err, services.ErrBadCategory):
		response.Fail(w, http.StatusBadRequest, "Category is required")
	case err != nil:
		logger.WithCtx(r.Context()).Error("create product failed", "error", err.Error())
		response.Fail(w, http.StatusInternalServerError, "Error in creating product")
	default:
		response.Success(w, http.StatusCreated, "Product created successfully", response.M{"products": product})
	}
}

// Update overwrites a product. A success is a 201, a quirk the admin UI
// depends on.
func (c *ProductController) Update(w http.ResponseWriter, r *http.Request) {
	var body productBody
	_ = json.NewDecoder(r.Body).Decode(&body)
	if !body.check(w) {
		return
	}

	product, err := c.products.Update(r.Context(), chi.URLParam(r, "pid"), body.input())
	switch {
	case errors.Is(err, services.ErrNotFound):
		response.Fail(w, http.StatusNotFound, "Product not found")
	case errors.Is(err, services.ErrBadCategory):
		response.Fail(w, http.StatusBadRequest, "Category is required")
	case err != nil:
		logger.WithCtx(r.Context()).Error("update product failed", "error", err.Error())
		response.Fail(w, http.StatusInternalServerError, "Error in updating product")
	default:
		response.Success(w, http.StatusCreated, "Product updated successfully", response.M{"products": product})
	}
}

// List returns the newest products for the home page.
func (c *ProductController) List(w http.ResponseWriter, r *http.Request) {
	products, err := c.products.List(r.Context())
	if err != nil {
		logger.WithCtx(r.Context()).Error("list products failed", "error", err.Error())
		response.Fail(w, http.StatusInternalServerError, "Erorr in getting products")
		return
	}
	response.Success(w, http.StatusOK, "ALlProducts ", response.M{
		"counTotal": len(products),
		"products":  products,
	})
}

// Get returns one product by slug.
func (c *ProductController) Get(w http.ResponseWriter, r *http.Request) {
	product, err := c.products.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
	switch {
	case errors.Is(err, services.ErrNotFound):
		response.Fail(w, http.StatusNotFound, "Product not found")
	case err != nil:
		logger.WithCtx(r.Context()).Error("get product failed", "error", err.Error())
		response.Fail(w, http.StatusInternalServerError, "Error while getting single product")
	default:
		response.Success(w, http.StatusOK, "Single Product Fetched", response.M{"product": product})
	}
}

// Delete removes a product by id.
func (c *ProductController) Delete(w http.ResponseWriter, r *http.Request) {
	err := c.products.Delete(r.Context(), chi.URLParam(r, "pid"))
	switch {
	case errors.Is(err, services.ErrNotFound):
		response.Fail(w, http.StatusNotFound, "Product not found")
	case err != nil:
		logger.WithCtx(r.Context()).Error("delete product failed", "error", err.Error())
		response.Fail(w, http.StatusInternalServerError, "Error while deleting product")
	default:
		response.Success(w, http.StatusOK, "Product Deleted successfully", nil)
	}
}

// Filter narrows products by the SPA's checkbox and radio widgets: checked
// carries category ids, radio a [min,max] price pair.
func (c *ProductController) Filter(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Checked []string  `json:"checked"`
		Radio   []float64 `json:"radio"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)

	products, err := c.products.Filter(r.Context(), body.Checked, body.Radio)
	if err != nil {
		logger.WithCtx(r.Context()).Error("filter products failed", "error", err.Error())
		response.Fail(w, http.StatusBadRequest, "Error WHile Filtering Products")
		return
	}
	response.Success(w, http.StatusOK, "", response.M{"products": products})
}

// Count returns the total product count for the pagination widget.
func (c *ProductController) Count(w http.ResponseWriter, r *http.Request) {
	total, err := c.products.Count(r.Context())
	if err != nil {
		logger.WithCtx(r.Context()).Error("product count failed", "error", err.Error())
		response.Fail(w, http.StatusBadRequest, "Error in product count")
		return
	}
	response.Success(w, http.StatusOK, "", response.M{"total": total})
}

// Page returns one page of products. A missing or malformed page number
// falls back to the first page.
func (c *ProductController) Page(w http.ResponseWriter, r *http.Request) {
	page, err := strconv.Atoi(chi.URLParam(r, "page"))
	if err != nil || page < 1 {
		page = 1
	}

	products, err := c.products.Page(r.Context(), page)
	if err != nil {
		logger.WithCtx(r.Context()).Error("product page failed", "error", err.Error())
		response.Fail(w, http.StatusBadRequest, "error in per page ctrl")
		return
	}
	response.Success(w, http.StatusOK, "", response.M{"products": products})
}

// Search matches keyword against names and descriptions and returns the
// matches as a bare JSON array.
func (c *ProductController) Search(w http.ResponseWriter, r *http.Request) {
	products, err := c.products.Search(r.Context(), chi.URLParam(r, "keyword"))
	if err != nil {
		logger.WithCtx(r.Context()).Error("product search failed", "error", err.Error())
		response.Fail(w, http.StatusBadRequest, "Error In Search Product API")
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	response.JSON(w, http.StatusOK, products)
}

// Related returns products sharing a category with the given product.
func (c *ProductController) Related(w http.ResponseWriter, r *http.Request) {
	products, err := c.products.Related(r.Context(), chi.URLParam(r, "pid"), chi.URLParam(r, "cid"))
	if err != nil {
		logger.WithCtx(r.Context()).Error("related products failed", "error", err.Error())
		response.Fail(w, http.StatusBadRequest, "error while geting related product")
		return
	}
	response.Success(w, http.StatusOK, "", response.M{"products": products})
}

// ByCategory returns a category and its products.
func (c *ProductController) ByCategory(w http.ResponseWriter, r *http.Request) {
	category, products, err := c.products.ByCategory(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		logger.WithCtx(r.Context()).Error("products by category failed", "error", err.Error())
		response.Fail(w, http.StatusBadRequest, "Error While Getting products")
		return
	}
	response.Success(w, http.StatusOK, "", response.M{
		"category": category,
		"products": products,
	})
}
