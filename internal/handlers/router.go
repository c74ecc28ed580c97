package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"storehub/internal/middleware"
	"storehub/internal/services"
	"storehub/internal/storage"
)

// AppConfig holds the transport settings of the HTTP app.
type AppConfig struct {
	Development   bool
	UploadDir     string
	UploadMaxMB   int
	AuthRateRPS   float64
	AuthRateBurst int
}

// Services groups the business services the handlers call.
type Services struct {
	Auth      *services.AuthService
	Users     *services.UserService
	Stores    *services.StoreService
	Products  *services.ProductService
	Inventory *services.InventoryService
}

// NewApp builds the Fiber app with every route mounted.
func NewApp(cfg AppConfig, log *zap.Logger, svc Services, images storage.ImageStore) *fiber.App {
	if log == nil {
		log = zap.NewNop()
	}
	app := fiber.New(fiber.Config{
		ErrorHandler:          ErrorHandler(cfg.Development, log),
		BodyLimit:             (cfg.UploadMaxMB + 1) * 1024 * 1024,
		DisableStartupMessage: true,
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.Metrics())
	app.Use(middleware.AccessLog(log))
	app.Use(recover.New(recover.Config{
		EnableStackTrace:  cfg.Development,
		StackTraceHandler: captureStack,
	}))
	app.Use(cors.New())

	if cfg.UploadDir != "" {
		app.Static("/uploads", cfg.UploadDir)
	}
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	auth := middleware.AuthRequired(svc.Auth)
	var authLimits []fiber.Handler
	if cfg.AuthRateRPS > 0 {
		authLimits = append(authLimits, middleware.RateLimitPerIP(rate.Limit(cfg.AuthRateRPS), cfg.AuthRateBurst))
	}

	NewAuthHandler(svc.Auth).RegisterRoutes(app, authLimits...)
	NewUserHandler(svc.Users, images).RegisterRoutes(app, auth)
	NewStoreHandler(svc.Stores, images).RegisterRoutes(app)
	NewProductHandler(svc.Products, images).RegisterRoutes(app)
	NewInventoryHandler(svc.Inventory).RegisterRoutes(app)

	app.Use(invalidRoute)
	return app
}
