package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"video-service/internal/delivery/http/handlers"
	"video-service/internal/delivery/http/routers"
	"video-service/internal/domain/repositories"
	"video-service/internal/infrastructure/cache"
	"video-service/internal/infrastructure/db"
	"video-service/internal/infrastructure/media"
	infrarepo "video-service/internal/infrastructure/repositories"
	"video-service/internal/infrastructure/storage"
	"video-service/internal/pkg/config"
	"video-service/internal/usecases"
	consts "video-service/pkg/constants"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
	cfg := config.LoadConfig()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer logger.Sync()

	database, err := db.NewPostgresDB(cfg.Database)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	if err := db.AutoMigrate(database); err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}

	// Storage backend is chosen once here; nothing downstream branches on it.
	var store repositories.StorageBackend
	switch cfg.Storage.Mode {
	case "s3":
		s3Store, err := storage.NewS3Storage(context.Background(),
			cfg.Storage.S3Bucket, cfg.Storage.S3Region, cfg.Storage.PresignTTL, logger)
		if err != nil {
			logger.Fatal("s3 storage init failed", zap.Error(err))
		}
		store = s3Store
	default:
		store = storage.NewLocalStorage(cfg.Storage.LocalRoot, logger)
	}

	var listCache repositories.ListingCache = cache.NewNoopListingCache()
	var rdb *redis.Client
	if cfg.Redis.Host != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr: fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		})
		listCache = cache.NewRedisListingCache(rdb, cfg.Redis.ListTTL, logger)
	}

	videoRepo := infrarepo.NewVideoRepository(database)
	pipeline := usecases.NewVideoPipeline(
		videoRepo,
		store,
		listCache,
		media.NewFFProber(),
		media.NewFFThumbnailer(),
		media.NewFFTranscoder(cfg.Transcode.Timeout),
		cfg.Upload.TempDir,
		cfg.Transcode.Workers,
		logger,
	)
	resolver := usecases.NewDeliveryResolver(store)
	videoHandler := handlers.NewVideoHandler(pipeline, resolver, logger)

	app := fiber.New(fiber.Config{
		BodyLimit:             int(cfg.Upload.MaxFileSize),
		StreamRequestBody:     true,
		DisableStartupMessage: false,
	})
	app.Use(fiberlogger.New())
	app.Use(cors.New())

	routers.SetupVideoRoutes(app, videoHandler, logger)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": consts.StatusOK})
	})

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	go func() {
		if err := app.Listen(addr); err != nil {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()
	logger.Info("server started", zap.String("addr", addr), zap.String("storage", cfg.Storage.Mode))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutdown signal received")

	ctxShut, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctxShut); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}

	pipeline.Close()
	if rdb != nil {
		rdb.Close()
	}
	logger.Info("server stopped")
}
