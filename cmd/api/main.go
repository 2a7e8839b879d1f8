package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/dronify/warehouse-api/internal/application/inventory"
	"github.com/dronify/warehouse-api/internal/application/requests"
	"github.com/dronify/warehouse-api/internal/application/statistics"
	"github.com/dronify/warehouse-api/internal/application/usecase"
	"github.com/dronify/warehouse-api/internal/infrastructure/postgres"
	httpRouter "github.com/dronify/warehouse-api/internal/interfaces/http"
	"github.com/dronify/warehouse-api/pkg/config"
	"github.com/dronify/warehouse-api/pkg/logger"
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
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	itemRepo := postgres.NewItemRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	requestRepo := postgres.NewRequestRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	statsRepo := postgres.NewStatisticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	applyMovementUC := inventory.NewApplyMovementUseCase(txRunner)
	catalogUC := inventory.NewCatalogUseCase(txRunner, itemRepo, movementRepo, warehouseRepo)
	requestsUC := requests.NewUseCase(txRunner, requestRepo, itemRepo)
	statisticsUC := statistics.NewUseCase(statsRepo, itemRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo)

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
		ApplyMovement:      applyMovementUC,
		CatalogUC:          catalogUC,
		RequestsUC:         requestsUC,
		StatisticsUC:       statisticsUC,
		WarehouseUC:        warehouseUC,
		DefaultWarehouseID: cfg.Warehouse.DefaultID,
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
