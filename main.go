// File: beautybar/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"beautybar/config"
	"beautybar/cron"
	"beautybar/database"
	adminRepoPkg "beautybar/database/repository/admin"
	availabilityRepoPkg "beautybar/database/repository/availability"
	bookingRepoPkg "beautybar/database/repository/booking"
	catalogRepoPkg "beautybar/database/repository/catalog"
	"beautybar/handlers"
	"beautybar/middleware"
	"beautybar/routes"
	"beautybar/services/notification"
	"beautybar/services/scheduling"
	"beautybar/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	clock, err := scheduling.NewClock(config.AppConfig.BusinessTimezone)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize business clock: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(cors.Default())

	// repositories.
	catalogRepo := catalogRepoPkg.NewMongoCatalogRepo()
	availabilityRepo := availabilityRepoPkg.NewMongoAvailabilityRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	adminRepo := adminRepoPkg.NewMongoAdminRepo()

	// email queue.
	mailClient := asynq.NewClient(cron.RedisQueueOpt())
	defer mailClient.Close()
	notifier := notification.NewAsynqNotifier(mailClient, clock)
	cron.InitMailWorker(notification.NewSMTPMailerService())

	// the scheduling core.
	engine := &scheduling.DefaultSchedulingEngine{
		Clock:        clock,
		Catalog:      catalogRepo,
		Availability: availabilityRepo,
		Ledger:       bookingRepo,
		Notifier:     notifier,
	}

	cache := utils.GetCacheClient()

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Availability: handlers.NewAvailabilityHandler(engine, catalogRepo, cache),
		Booking:      handlers.NewBookingHandler(engine, bookingRepo, clock, cache),
		Catalog:      handlers.NewCatalogHandler(catalogRepo),
		Admin:        handlers.NewAdminHandler(adminRepo, catalogRepo, engine, cache),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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
