package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"duitku/internal/api"
	"duitku/internal/api/handlers"
	"duitku/internal/repository"
	"duitku/internal/service"
	"duitku/pkg/auth"
	"duitku/pkg/config"
	"duitku/pkg/logger"
	"duitku/pkg/postgres"

	"go.uber.org/zap"
)

// @title Duitku API
// @version 1.0
// @description Personal budget tracking API: categories, transactions and a period-based dashboard.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token. Browser clients use the http-only token cookie instead.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting duitku service")

	// Initialize database
	ctx := context.Background()
	if err := postgres.RunMigrations(ctx, &cfg.Database, appLogger); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db, appLogger)
	catRepo := repository.NewCategoryRepository(db, appLogger)
	txRepo := repository.NewTransactionRepository(db, appLogger)

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager, appLogger)
	dashboardService := service.NewDashboardService(txRepo, appLogger)
	txService := service.NewTransactionService(txRepo, catRepo, appLogger)
	catService := service.NewCategoryService(catRepo, appLogger)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, jwtManager, appLogger)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, appLogger)
	txHandler := handlers.NewTransactionHandler(txService, appLogger)
	catHandler := handlers.NewCategoryHandler(catService, appLogger)

	// Setup router
	app := api.SetupRouter(authHandler, dashboardHandler, txHandler, catHandler, jwtManager, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
