// Package server wires the application together: config, stores, gateway,
// services, routes, and the HTTP listener lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shashiranjanraj/gokart/app/controllers"
	"github.com/shashiranjanraj/gokart/app/middlewares"
	"github.com/shashiranjanraj/gokart/app/repositories"
	"github.com/shashiranjanraj/gokart/app/routes"
	"github.com/shashiranjanraj/gokart/app/services"
	"github.com/shashiranjanraj/gokart/config"
	"github.com/shashiranjanraj/gokart/pkg/cache"
	"github.com/shashiranjanraj/gokart/pkg/database"
	"github.com/shashiranjanraj/gokart/pkg/gateway"
	"github.com/shashiranjanraj/gokart/pkg/logger"
	"github.com/shashiranjanraj/gokart/pkg/metrics"
	"github.com/shashiranjanraj/gokart/pkg/middleware"
	"github.com/shashiranjanraj/gokart/pkg/reqid"
	"github.com/shashiranjanraj/gokart/pkg/router"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 15 * time.Second

	rateLimitMax    = 300
	rateLimitWindow = time.Minute
)

// NewRouter builds the fully wired router against the given gateway.
// The gateway is a parameter so tests can hand in a double.
func NewRouter(gw gateway.Gateway) *router.Router {
	db := database.DB()
	users := repositories.NewMongoUserRepository(db)
	orders := repositories.NewMongoOrderRepository(db)
	categories := repositories.NewMongoCategoryRepository(db)
	products := repositories.NewMongoProductRepository(db)

	authSvc := services.NewAuthService(users)
	orderSvc := services.NewOrderService(orders)
	categorySvc := services.NewCategoryService(categories)
	productSvc := services.NewProductService(products, categories)
	paymentSvc := services.NewPaymentService(orders, users, gw)

	r := router.New()
	r.Use(
		metrics.Middleware(),
		middleware.Recovery,
		reqid.Middleware(),
		middleware.Logger,
		middleware.CORS(middleware.DefaultCORSOptions()),
		middleware.RateLimit(rateLimitMax, rateLimitWindow),
	)

	routes.RegisterAPI(r, routes.Handlers{
		Auth:     controllers.NewAuthController(authSvc),
		Orders:   controllers.NewOrderController(orderSvc),
		Category: controllers.NewCategoryController(categorySvc),
		Product:  controllers.NewProductController(productSvc),
		Payment:  controllers.NewPaymentController(paymentSvc),
		Admin:    middlewares.NewAdminGate(users),
	})
	return r
}

// Start boots the application and blocks until the process receives an
// interrupt, then drains in-flight requests before returning.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := database.Connect(ctx); err != nil {
		return err
	}
	defer func() { _ = database.Disconnect(context.Background()) }()

	if err := database.EnsureIndexes(ctx); err != nil {
		return err
	}

	// The cache is an optimization; a dead Redis degrades to store reads.
	if err := cache.Connect(ctx); err != nil {
		logger.Warn("cache unavailable, serving without it", "error", err.Error())
	}

	gw := gateway.NewBraintree(
		config.BraintreeEnv(),
		config.BraintreeMerchantID(),
		config.BraintreePublicKey(),
		config.BraintreePrivateKey(),
	)

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           NewRouter(gw).Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("gokart listening", "addr", srv.Addr, "env", config.AppEnv())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
