package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	_ "go.uber.org/automaxprocs"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"storehub/internal/config"
	"storehub/internal/database"
	"storehub/internal/handlers"
	"storehub/internal/logger"
	"storehub/internal/repositories"
	"storehub/internal/services"
	"storehub/internal/storage"
	"storehub/pkg/rabbitmq"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zl, flush := logger.New(logger.Options{
		Level: cfg.Log.Level,
		JSON:  cfg.Log.JSON && !cfg.IsDevelopment(),
		File:  cfg.Log.File,
	})
	defer flush()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, zl); err != nil {
		zl.Error("server stopped with error", zap.Error(err))
		flush()
		os.Exit(1)
	}
	zl.Info("server gracefully stopped")
}

// run wires every component and serves until ctx is cancelled.
func run(ctx context.Context, cfg *config.Config, zl *zap.Logger) error {
	db, err := database.Open(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}
	if cfg.DB.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			return err
		}
	}

	var (
		mq     *rabbitmq.Client
		events services.EventPublisher
	)
	if cfg.RabbitMQ.URL != "" {
		mq, err = rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQ.URL}, zl)
		if err != nil {
			return err
		}
		defer mq.Close()
		events = mq
	} else {
		zl.Info("RABBITMQ_URL not set, inventory events disabled")
	}

	app, err := newApp(cfg, zl, db, events)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		zl.Info("starting server", zap.String("addr", cfg.App.Port), zap.String("env", cfg.App.Env))
		return app.Listen(cfg.App.Port)
	})
	g.Go(func() error {
		<-gctx.Done()
		zl.Info("shutting down server")
		return app.ShutdownWithTimeout(shutdownTimeout)
	})
	if mq != nil {
		g.Go(func() error {
			err := mq.Consume(gctx, services.LogInventoryEvents(zl))
			if errors.Is(err, rabbitmq.ErrClosed) && gctx.Err() != nil {
				return nil
			}
			return err
		})
	}
	return g.Wait()
}

// newApp builds repositories, services and the HTTP app on top of db.
func newApp(cfg *config.Config, zl *zap.Logger, db *gorm.DB, events services.EventPublisher) (*fiber.App, error) {
	images, err := storage.NewDiskImageStore(cfg.App.UploadDir, cfg.App.BaseURL, cfg.App.UploadMaxMB)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare uploads: %w", err)
	}

	userRepo := repositories.NewGORMUserRepository(db)
	storeRepo := repositories.NewGORMStoreRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)
	inventoryRepo := repositories.NewGORMInventoryRepository(db)
	counterRepo := repositories.NewGORMCounterRepository(db)

	tokenTTL := time.Duration(cfg.JWT.ExpiresInSec) * time.Second
	svc := handlers.Services{
		Auth:      services.NewAuthService(userRepo, cfg.JWT.Secret, tokenTTL),
		Users:     services.NewUserService(userRepo, storeRepo, counterRepo),
		Stores:    services.NewStoreService(storeRepo),
		Products:  services.NewProductService(productRepo),
		Inventory: services.NewInventoryService(inventoryRepo, storeRepo, productRepo, events, zl),
	}

	return handlers.NewApp(handlers.AppConfig{
		Development:   cfg.IsDevelopment(),
		UploadDir:     cfg.App.UploadDir,
		UploadMaxMB:   cfg.App.UploadMaxMB,
		AuthRateRPS:   cfg.AuthRate.RPS,
		AuthRateBurst: cfg.AuthRate.Burst,
	}, zl, svc, images), nil
}
