package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dronify/warehouse-api/internal/application/inventory"
	"github.com/dronify/warehouse-api/internal/application/requests"
	"github.com/dronify/warehouse-api/internal/application/statistics"
	"github.com/dronify/warehouse-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ApplyMovement      *inventory.ApplyMovementUseCase
	CatalogUC          *inventory.CatalogUseCase
	RequestsUC         *requests.UseCase
	StatisticsUC       *statistics.UseCase
	WarehouseUC        *usecase.WarehouseUseCase
	DefaultWarehouseID int64
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	inventoryHandler := NewInventoryHandler(deps.ApplyMovement, deps.CatalogUC, deps.RequestsUC, deps.DefaultWarehouseID)
	requestHandler := NewRequestHandler(deps.RequestsUC)
	statisticsHandler := NewStatisticsHandler(deps.StatisticsUC, deps.DefaultWarehouseID)
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)

	// Catálogo de ítems
	items := api.Group("/items")
	items.Post("/", inventoryHandler.AddItem)
	items.Get("/", inventoryHandler.ListItems)
	items.Get("/:id", inventoryHandler.GetItem)
	items.Get("/:id/events", inventoryHandler.ItemEvents)

	// Resolución por código de escaneo
	api.Get("/scan/:code", inventoryHandler.GetItemByScan)

	// Movimientos de stock
	invGroup := api.Group("/inventory")
	invGroup.Post("/movements", inventoryHandler.ApplyMovement)

	// Solicitudes de retiro
	reqGroup := api.Group("/requests")
	reqGroup.Post("/", requestHandler.Create)
	reqGroup.Get("/", requestHandler.List)
	reqGroup.Post("/:id/status", requestHandler.UpdateStatus)

	// Estadísticas
	stats := api.Group("/statistics")
	stats.Get("/summary", statisticsHandler.Summary)
	stats.Get("/quantity-changes", statisticsHandler.QuantityChanges)
	stats.Get("/top-added", statisticsHandler.TopAdded)
	stats.Get("/top-removed", statisticsHandler.TopRemoved)
	stats.Get("/activity/daily", statisticsHandler.ActivityByDay)
	stats.Get("/activity/types", statisticsHandler.ActivityByType)

	// Reportes
	api.Get("/reports", statisticsHandler.Report)
	api.Get("/reports/low-stock", inventoryHandler.LowStock)

	// Panel de control
	api.Get("/dashboard", inventoryHandler.Dashboard)

	// Bodegas
	warehouses := api.Group("/warehouses")
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
}
