package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/stock-alerts-api/internal/application/alerts"
	"github.com/jhoicas/stock-alerts-api/internal/infrastructure/cache"
	"github.com/jhoicas/stock-alerts-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/stock-alerts-api/internal/interfaces/http"
	"github.com/jhoicas/stock-alerts-api/pkg/config"
	"github.com/jhoicas/stock-alerts-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Int("recent_sales_days", cfg.Alerts.RecentSalesDays).
		Int("default_threshold", cfg.Alerts.DefaultThreshold).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	salesRepo := postgres.NewSalesRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)

	// Umbrales detrás de un caché con TTL: la tabla cambia poco y se lee en
	// cada petición.
	thresholdRepo := cache.NewThresholdCache(
		postgres.NewThresholdRepository(pool),
		time.Duration(cfg.Alerts.ThresholdCacheTTL)*time.Second,
	)

	alertsUC := alerts.NewLowStockAlertUseCase(
		productRepo, inventoryRepo, thresholdRepo, salesRepo, supplierRepo,
		alerts.Config{
			RecentSalesDays:  cfg.Alerts.RecentSalesDays,
			DefaultThreshold: cfg.Alerts.DefaultThreshold,
		},
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Stock Alerts API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AlertsUC: alertsUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
