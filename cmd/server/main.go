package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/vitrine/marketplace-backend/config"
	"github.com/vitrine/marketplace-backend/internal/app/controller"
	"github.com/vitrine/marketplace-backend/internal/app/repository"
	"github.com/vitrine/marketplace-backend/internal/app/service"
	"github.com/vitrine/marketplace-backend/internal/db"
	"github.com/vitrine/marketplace-backend/internal/middleware"
	"github.com/vitrine/marketplace-backend/internal/router"
	"github.com/vitrine/marketplace-backend/internal/scheduler"
	"github.com/vitrine/marketplace-backend/internal/storage"
	"github.com/vitrine/marketplace-backend/pkg/logger"
	"github.com/vitrine/marketplace-backend/pkg/redis"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := cfg.Log.Level
	if logLevel == "" {
		logLevel = "info"
		if cfg.Server.Environment == "development" {
			logLevel = "debug"
		}
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      cfg.Log.Format,
		EnableColor: cfg.Log.Format == "console",
	})

	logger.Info("Starting Marketplace Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize database
	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations
	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Periodic connection pool stats
	if cfg.Database.StatsEnabled() {
		sqlDB, err := db.GetDB().DB()
		if err != nil {
			logger.Fatal("Failed to get database instance", err)
		}
		statsScheduler := scheduler.NewDBStatsScheduler(sqlDB, cfg.Database.StatsSchedule)
		if err := statsScheduler.Start(); err != nil {
			logger.Fatal("Failed to start database stats scheduler", err)
		}
		defer statsScheduler.Stop()
	}

	// Optional token blacklist. Interfaces stay nil when Redis is not configured.
	var (
		revocationChecker middleware.TokenRevocationChecker
		tokenRevoker      service.TokenRevoker
	)
	if cfg.Redis.Enabled() {
		blacklist, err := redis.New(&cfg.Redis)
		if err != nil {
			logger.Fatal("Failed to connect to Redis", err)
		}
		defer blacklist.Close()
		revocationChecker = blacklist
		tokenRevoker = blacklist
	} else {
		logger.Warn("REDIS_HOST not set, logout will not revoke tokens")
	}

	// Optional presigned image uploads
	var uploadSigner service.ImageUploadSigner
	if cfg.S3.Enabled() {
		s3Storage, err := storage.NewS3Storage(context.Background(), &cfg.S3)
		if err != nil {
			logger.Fatal("Failed to initialize S3 storage", err)
		}
		uploadSigner = s3Storage
	} else {
		logger.Warn("AWS_S3_BUCKET not set, image upload URLs are disabled")
	}

	// Initialize repositories
	conn := db.GetDB()
	userRepo := repository.NewUserRepository(conn)
	storeRepo := repository.NewStoreRepository(conn)
	categoryRepo := repository.NewCategoryRepository(conn)
	productRepo := repository.NewProductRepository(conn)
	imageRepo := repository.NewProductImageRepository(conn)
	storeReviewRepo := repository.NewStoreReviewRepository(conn)
	productReviewRepo := repository.NewProductReviewRepository(conn)
	commentRepo := repository.NewCommentRepository(conn)

	// Initialize services
	userService := service.NewUserService(userRepo)
	authService := service.NewAuthService(userService, tokenRevoker, cfg.JWT.Secret, cfg.JWT.Expiry)
	storeService := service.NewStoreService(storeRepo, userRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	productService := service.NewProductService(productRepo, storeRepo, categoryRepo)
	imageService := service.NewProductImageService(imageRepo, productRepo, uploadSigner)
	storeReviewService := service.NewStoreReviewService(storeReviewRepo, storeRepo, userRepo)
	productReviewService := service.NewProductReviewService(productReviewRepo, productRepo, userRepo)
	commentService := service.NewCommentService(commentRepo, storeReviewRepo, productReviewRepo, userRepo)

	// Setup router
	r := router.NewRouter(
		controller.NewAuthController(authService),
		controller.NewUserController(userService),
		controller.NewStoreController(storeService),
		controller.NewCategoryController(categoryService),
		controller.NewProductController(productService),
		controller.NewProductImageController(imageService),
		controller.NewStoreReviewController(storeReviewService),
		controller.NewProductReviewController(productReviewService),
		controller.NewCommentController(commentService),
		middleware.NewAuthMiddleware(cfg.JWT.Secret, revocationChecker),
		cfg,
	)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: r.Setup(),
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server started successfully", map[string]interface{}{
			"address": srv.Addr,
			"pid":     os.Getpid(),
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...", map[string]interface{}{
		"timeout": cfg.Server.ShutdownTimeout.String(),
	})

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", err)
	}

	logger.Info("Server stopped successfully")
}
