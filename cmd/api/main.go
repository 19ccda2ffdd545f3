package main

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"vehicle-service/internal/config"
	"vehicle-service/internal/domain"
	"vehicle-service/internal/handler"
	"vehicle-service/internal/middleware"
	"vehicle-service/internal/pkg/identifier"
	"vehicle-service/internal/pkg/logging"
	"vehicle-service/internal/repository"
	"vehicle-service/internal/seed"
	"vehicle-service/internal/service"
	"vehicle-service/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	zlog, err := logging.New(cfg.Environment)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	db, err := config.NewPostgresDB(cfg)
	if err != nil {
		zlog.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	ctx := context.Background()
	if err := config.EnsureSchema(ctx, db); err != nil {
		zlog.Fatal("failed to ensure database schema", zap.Error(err))
	}

	redisClient, err := config.NewRedisClient(cfg)
	if err != nil {
		zlog.Warn("failed to connect to Redis, list caching disabled", zap.Error(err))
		redisClient = nil
	} else {
		defer redisClient.Close()
	}

	store, err := newPhotoStorage(cfg)
	if err != nil {
		zlog.Fatal("failed to initialize photo storage", zap.Error(err))
	}

	repos := repository.NewRepositories(db)
	idgen := identifier.NewGenerator(rand.NewSource(time.Now().UnixNano()))
	services := service.NewServices(repos, store, redisClient, idgen, cfg, zlog)
	handlers := handler.NewHandlers(services, cfg)

	if cfg.SeedData {
		if err := seed.Seed(ctx, repos.Vehicle, zlog); err != nil {
			zlog.Warn("failed to seed sample data", zap.Error(err))
		}
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
		BodyLimit:    int(cfg.MaxPhotoSizeMB)*1024*1024 + 1024*1024,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, X-User-Subject, X-User-Roles",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))

	setupRoutes(app, handlers)

	zlog.Info("server starting", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		zlog.Fatal("failed to start server", zap.Error(err))
	}
}

func setupRoutes(app *fiber.App, h *handler.Handlers) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	v1 := app.Group("/api/v1")

	vehicles := v1.Group("/vehicles", middleware.GatewayAuth())

	vehicles.Post("/",
		middleware.RequireAnyRole(domain.RoleCustomer, domain.RoleAdmin, domain.RoleSuperAdmin),
		h.Vehicle.Register)
	vehicles.Get("/",
		middleware.RequireAnyRole(domain.RoleCustomer, domain.RoleAdmin, domain.RoleEmployee),
		h.Vehicle.List)

	vehicles.Delete("/photos/:photoId",
		middleware.RequireAnyRole(domain.RoleCustomer),
		h.Photo.DeleteSingle)

	vehicles.Get("/:vehicleId",
		middleware.RequireAnyRole(domain.RoleCustomer, domain.RoleAdmin, domain.RoleEmployee),
		h.Vehicle.Get)
	vehicles.Put("/:vehicleId",
		middleware.RequireAnyRole(domain.RoleCustomer, domain.RoleAdmin, domain.RoleEmployee),
		h.Vehicle.Update)
	vehicles.Delete("/:vehicleId",
		middleware.RequireAnyRole(domain.RoleCustomer, domain.RoleAdmin, domain.RoleEmployee),
		h.Vehicle.Delete)

	vehicles.Post("/:vehicleId/photos",
		middleware.RequireAnyRole(domain.RoleCustomer),
		h.Photo.Upload)
	vehicles.Get("/:vehicleId/photos",
		middleware.RequireAnyRole(domain.RoleCustomer),
		h.Photo.List)
	vehicles.Get("/:vehicleId/photos/:fileName",
		middleware.RequireAnyRole(domain.RoleCustomer),
		h.Photo.ServeFile)

	vehicles.Get("/:vehicleId/history",
		middleware.RequireAnyRole(domain.RoleCustomer, domain.RoleAdmin, domain.RoleEmployee),
		h.History.Get)
}

func newPhotoStorage(cfg *config.Config) (storage.PhotoStorage, error) {
	if cfg.PhotoStorage == "minio" {
		client, err := config.NewMinIOClient(cfg)
		if err != nil {
			return nil, err
		}
		return storage.NewMinIOStorage(client, cfg.MinIOBucket), nil
	}
	return storage.NewLocalStorage(cfg.UploadDir)
}
