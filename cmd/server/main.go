package main

import (
	"context"
	"fmt"
	"os"

	"github.com/thdihan/rangva-server/internal/api"
	"github.com/thdihan/rangva-server/internal/config"
	"github.com/thdihan/rangva-server/internal/database"
	"github.com/thdihan/rangva-server/internal/database/repository"
	"github.com/thdihan/rangva-server/internal/database/service"
	"github.com/thdihan/rangva-server/internal/handler"
	"github.com/thdihan/rangva-server/internal/logger"
	"github.com/thdihan/rangva-server/internal/mailer"
	"github.com/thdihan/rangva-server/internal/storage"
)

func main() {
	// 1. Config
	cfg := config.LoadConfig()

	// 2. Logger
	appLogger := logger.New(cfg)

	appLogger.Info("🚀 Starting server...",
		"environment", cfg.AppEnv,
		"storage", cfg.StorageType,
	)

	// 3. Connect to Database
	if err := database.ConnectDatabase(cfg, appLogger); err != nil {
		appLogger.Error("❌ Failed to connect to database", "error", err)
		os.Exit(1)
	}

	db := database.GetDatabase()

	// 4. Initialize Repositories
	userRepo := repository.NewUserRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	doctorRepo := repository.NewDoctorRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	tagRepo := repository.NewTagRepository(db)
	galleryRepo := repository.NewGalleryRepository(db)

	// 5. Initialize Storage Backends
	backends := map[string]storage.Storage{}

	localStore, err := storage.NewLocalStorage(cfg, appLogger)
	if err != nil {
		appLogger.Error("❌ Failed to initialize local storage", "error", err)
		os.Exit(1)
	}
	backends[config.StorageLocal] = localStore

	if cfg.StorageType == config.StorageCloud {
		s3Store, err := storage.NewS3Storage(context.Background(), cfg, appLogger)
		if err != nil {
			appLogger.Error("❌ Failed to initialize S3 storage", "error", err)
			os.Exit(1)
		}
		backends[config.StorageCloud] = s3Store
	}

	// 6. Initialize Services
	smtpMailer := mailer.NewSMTPMailer(cfg, appLogger)
	authService := service.NewAuthService(userRepo, smtpMailer, cfg, appLogger)
	userService := service.NewUserService(userRepo, adminRepo, doctorRepo, backends[cfg.StorageType], appLogger)
	adminService := service.NewAdminService(adminRepo, appLogger)
	categoryService := service.NewCategoryService(categoryRepo, appLogger)
	productService := service.NewProductService(productRepo, tagRepo, categoryRepo, appLogger)
	galleryService := service.NewGalleryService(galleryRepo, backends, cfg.StorageType, appLogger)

	// 7. Initialize Handlers
	handlers := api.Handlers{
		Auth:     handler.NewAuthHandler(authService, cfg, appLogger),
		User:     handler.NewUserHandler(userService, appLogger),
		Admin:    handler.NewAdminHandler(adminService, appLogger),
		Category: handler.NewCategoryHandler(categoryService, appLogger),
		Product:  handler.NewProductHandler(productService, appLogger),
		Gallery:  handler.NewGalleryHandler(galleryService, appLogger),
	}

	// 8. Setup Router and Start HTTP Server
	r := api.SetupRouter(cfg, handlers, authService, appLogger)

	addr := fmt.Sprintf(":%s", cfg.Port)
	appLogger.Info("🌍 HTTP Server running...", "port", cfg.Port)
	if err := r.Run(addr); err != nil {
		appLogger.Error("❌ HTTP Server failed to start", "error", err)
		os.Exit(1)
	}
}
