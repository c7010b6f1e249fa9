// Package routes registers the HTTP surface. Every route lives under
// /api/v1; the path spellings match what the SPA calls.
package routes

import (
	"github.com/shashiranjanraj/gokart/app/controllers"
	"github.com/shashiranjanraj/gokart/app/middlewares"
	"github.com/shashiranjanraj/gokart/pkg/metrics"
	"github.com/shashiranjanraj/gokart/pkg/router"
)

// Handlers bundles the controllers and gates the routes need.
type Handlers struct {
	Auth     *controllers.AuthController
	Orders   *controllers.OrderController
	Category *controllers.CategoryController
	Product  *controllers.ProductController
	Payment  *controllers.PaymentController
	Admin    *middlewares.AdminGate
}

// RegisterAPI mounts the full route table on r.
func RegisterAPI(r *router.Router, h Handlers) {
	signIn := router.Middleware(middlewares.RequireSignIn)
	admin := router.Middleware(h.Admin.RequireAdmin)

	api := r.Group("/api/v1")

	auth := api.Group("/auth")
	auth.Post("/register", "auth.register", h.Auth.Register)
	auth.Post("/login", "auth.login", h.Auth.Login)
	auth.Post("/forgot-password", "auth.forgot-password", h.Auth.ForgotPassword)
	auth.Get("/test", "auth.test", h.Auth.Test, signIn)
	auth.Get("/user-auth", "auth.user-auth", h.Auth.Check, signIn)
	auth.Get("/admin-auth", "auth.admin-auth", h.Auth.Check, signIn, admin)
	auth.Get("/orders", "orders.mine", h.Orders.List, signIn)
	auth.Get("/all-orders", "orders.all", h.Orders.ListAll, signIn, admin)
	auth.Put("/order-status/{orderId}", "orders.status", h.Orders.UpdateStatus, signIn, admin)

	category := api.Group("/category")
	category.Post("/create-category", "category.create", h.Category.Create, signIn, admin)
	category.Put("/update-category/{id}", "category.update", h.Category.Update, signIn, admin)
	category.Get("/get-category", "category.list", h.Category.List)
	category.Get("/single-category/{slug}", "category.single", h.Category.Get)
	category.Delete("/delete-category/{id}", "category.delete", h.Category.Delete, signIn, admin)

	product := api.Group("/product")
	product.Post("/create-product", "product.create", h.Product.Create, signIn, admin)
	product.Put("/update-product/{pid}", "product.update", h.Product.Update, signIn, admin)
	product.Get("/get-product", "product.list", h.Product.List)
	product.Get("/get-product/{slug}", "product.single", h.Product.Get)
	product.Delete("/delete-product/{pid}", "product.delete", h.Product.Delete)
	product.Post("/product-filters", "product.filters", h.Product.Filter)
	product.Get("/product-count", "product.count", h.Product.Count)
	product.Get("/product-list/{page}", "product.page", h.Product.Page)
	product.Get("/search/{keyword}", "product.search", h.Product.Search)
	product.Get("/related-product/{pid}/{cid}", "product.related", h.Product.Related)
	product.Get("/product-category/{slug}", "product.by-category", h.Product.ByCategory)
	product.Get("/braintree/token", "payment.token", h.Payment.Token, signIn)
	product.Post("/braintree/payment", "payment.checkout", h.Payment.Checkout, signIn)

	r.Get("/metrics", "metrics", metrics.Handler())
}
