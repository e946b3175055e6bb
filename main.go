// File: maison/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"maison/config"
	"maison/handlers"
	"maison/middleware"
	"maison/routes"
	"maison/services/booking"
	"maison/services/cart"
	"maison/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitCartCache()
	cartClient := utils.GetCartCacheClient()
	utils.StartHealthMonitor(cartClient)

	// Core services.
	engine := booking.NewAvailabilityEngine(
		config.AppConfig.BookingWindowDays,
		config.AppConfig.SlotOccupancyRate,
	)
	bookingService := booking.NewBookingSessionService(
		engine,
		time.Duration(config.AppConfig.SubmitDelayMs)*time.Millisecond,
		time.Duration(config.AppConfig.SessionTTLMin)*time.Minute,
	)
	janitorCtx, stopJanitor := context.WithCancel(context.Background())
	defer stopJanitor()
	bookingService.StartJanitor(janitorCtx, time.Minute)

	cartService := cart.NewCartService(cartClient, utils.CartCacheTTL)

	handlerBundle := &handlers.HandlerBundle{
		BookingSvc: bookingService,
		CartSvc:    cartService,
		Engine:     engine,
		Logger:     logger,
	}

	// Create the Gin router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", handlerBundle.HealthCheck)
	routes.RegisterBookingRoutes(router, handlerBundle)
	routes.RegisterAvailabilityRoutes(router, handlerBundle)
	routes.RegisterCatalogRoutes(router, handlerBundle)
	routes.RegisterCartRoutes(router, handlerBundle)

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
