package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ZachChoo/grocery-inventory/internal/application/auth"
	"github.com/ZachChoo/grocery-inventory/internal/application/notification"
	"github.com/ZachChoo/grocery-inventory/internal/application/usecase"
	"github.com/ZachChoo/grocery-inventory/internal/infrastructure/postgres"
	"github.com/ZachChoo/grocery-inventory/internal/infrastructure/smtp"
	httpRouter "github.com/ZachChoo/grocery-inventory/internal/interfaces/http"
	"github.com/ZachChoo/grocery-inventory/internal/metrics"
	"github.com/ZachChoo/grocery-inventory/pkg/config"
	"github.com/ZachChoo/grocery-inventory/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)

	userUC := usecase.NewUserUseCase(userRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	saleUC := usecase.NewSaleUseCase(saleRepo, productRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// Metrics registry feeds the notification recorder; the listener itself
	// only starts when METRICS_ADDR is set.
	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)
	if cfg.Metrics.Addr != "" {
		go metrics.Serve(ctx, cfg.Metrics.Addr, registry, log)
	}

	mailer := smtp.NewMailer(cfg.SMTP)
	notifySvc := notification.NewService(
		saleRepo, userRepo, mailer, log,
		cfg.Notify.LookaheadDays,
		notification.WithRecorder(collector),
	)
	scheduler, err := notification.NewScheduler(notifySvc, log, cfg.Notify)
	if err != nil {
		log.Fatal().Err(err).Msg("configure notification scheduler")
	}
	go scheduler.Start(ctx)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		UserUC:    userUC,
		ProductUC: productUC,
		SaleUC:    saleUC,
		Notifier:  notifySvc,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")
	cancel() // stops the scheduler and the metrics listener

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
