// File: lilac/main.go
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lilac/config"
	"lilac/cron"
	"lilac/database"
	customerRepoPkg "lilac/database/repository/customer"
	orderRepoPkg "lilac/database/repository/order"
	"lilac/handlers"
	"lilac/hooks"
	"lilac/middleware"
	"lilac/routes"
	"lilac/services/admin"
	"lilac/services/commerce"
	"lilac/services/customer"
	"lilac/services/personalization"
	"lilac/services/tasks"
	"lilac/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(middleware.MetricsMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	custRepo := customerRepoPkg.NewCachedCustomerRepo(
		customerRepoPkg.NewMongoCustomerRepo(),
		utils.GetCacheClient(),
	)
	ordRepo := orderRepoPkg.NewMongoOrderRepo()

	// services.
	noticeService := admin.NewNoticeService()

	hookEngine := hooks.NewEngine()
	commerceService := &commerce.DefaultCommerceService{
		Hooks:    hookEngine,
		Orders:   ordRepo,
		Payments: commerce.NewStripePaymentHandler(logger),
		Queue:    tasks.NewAsynqConfirmationQueue(),
	}

	personalizationService := &personalization.DefaultPersonalizationService{
		Repo: custRepo,
	}
	if err := personalizationService.Setup(hookEngine, commerceService); err != nil {
		if errors.Is(err, personalization.ErrCommerceUnavailable) {
			// The extension disables itself; checkout keeps its stock behavior.
			noticeService.Add("warning", "Checkout personalization requires the commerce engine; the extension is disabled.")
			logger.Warn("Checkout personalization disabled", zap.Error(err))
		} else {
			logger.Sugar().Fatalf("main: failed to set up checkout personalization: %v", err)
		}
	}

	customerService := &customer.DefaultCustomerService{
		Repo: custRepo,
	}

	if config.AppConfig.CommerceEnabled {
		cron.InitConfirmationWorker(ordRepo)
	}

	checkoutHandler := handlers.NewCheckoutHandler(commerceService)
	customerHandler := handlers.NewCustomerHandler(customerService)
	adminHandler := handlers.NewAdminHandler(noticeService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		GetCheckoutFieldsHandler: checkoutHandler.GetCheckoutFieldsHandler,
		SubmitCheckoutHandler:    checkoutHandler.SubmitCheckoutHandler,
		SignInHandler:            customerHandler.SignInHandler,
		GetNoticesHandler:        adminHandler.GetNoticesHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor([]*redis.Client{utils.GetCacheClient()}, database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
