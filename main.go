// File: playday/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"playday/config"
	"playday/handlers"
	"playday/middleware"
	"playday/routes"
	"playday/services/images"
	ai "playday/services/intelligence"
	"playday/services/trip"
	"playday/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitRedis()
	utils.StartHealthMonitor([]*redis.Client{utils.GetCacheClient(), utils.GetSessionCacheClient()})

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	sessionTTL := time.Duration(config.AppConfig.SessionTTLMin) * time.Minute

	// services.
	generator := ai.NewGeminiClient(config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)
	plannerService := ai.NewDefaultPlannerService(
		generator,
		config.AppConfig.GenMaxAttempts,
		time.Duration(config.AppConfig.GenRetryDelayMS)*time.Millisecond,
		time.Duration(config.AppConfig.GenRequestSecs)*time.Second,
		logger,
	)
	imageService := images.NewGoogleImageService(
		config.AppConfig.ImageSearchAPIKey,
		config.AppConfig.ImageSearchCX,
		utils.GetCacheClient(),
		sessionTTL,
		logger,
	)
	sessionStore := trip.NewRedisSessionStore(utils.GetSessionCacheClient(), sessionTTL)
	sessionService := &trip.DefaultSessionService{
		Store:   sessionStore,
		Planner: plannerService,
		Images:  imageService,
	}

	tripHandler := handlers.NewTripHandler(sessionService, logger)

	// Register routes with the assembled handler.
	routes.RegisterRoutes(router, tripHandler)

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
