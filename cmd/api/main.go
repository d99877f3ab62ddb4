package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/cahayaphone/crm-backend/internal/api/http"
	"github.com/cahayaphone/crm-backend/internal/api/http/handlers"
	"github.com/cahayaphone/crm-backend/internal/config"
	"github.com/cahayaphone/crm-backend/internal/observability"
	"github.com/cahayaphone/crm-backend/internal/persistence"
	"github.com/cahayaphone/crm-backend/internal/repository"
	"github.com/cahayaphone/crm-backend/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.ProvisionSchema {
		if err := persistence.ProvisionSchema(ctx, pg.PoolHandle(), cfg.Auth.BcryptCost, logger); err != nil {
			logger.Fatal("failed to provision schema", zap.Error(err))
		}
	}

	pool := pg.PoolHandle()
	customerRepo := repository.NewCustomerRepository(pool)
	adminRepo := repository.NewAdminRepository(pool)
	messageRepo := repository.NewMessageRepository(pool)

	customerService := service.NewCustomerService(customerRepo, messageRepo)
	authService := service.NewAuthService(adminRepo)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.CORS, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:    handlers.NewHealthHandler("Cahaya Phone CRM API"),
		Customers: handlers.NewCustomersHandler(customerService),
		Admin:     handlers.NewAdminHandler(authService, customerService),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
