package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/dronify/warehouse-api/internal/application/statistics"
)

// StatisticsHandler maneja las consultas del motor de estadísticas.
// Todas toman ?warehouse_id y ?days (clampeado a {7, 30, 90}).
type StatisticsHandler struct {
	uc                 *statistics.UseCase
	defaultWarehouseID int64
}

// NewStatisticsHandler construye el handler.
func NewStatisticsHandler(uc *statistics.UseCase, defaultWarehouseID int64) *StatisticsHandler {
	return &StatisticsHandler{uc: uc, defaultWarehouseID: defaultWarehouseID}
}

func (h *StatisticsHandler) scope(c *fiber.Ctx) (warehouseID int64, days int) {
	warehouseID = h.defaultWarehouseID
	if raw := c.Query("warehouse_id"); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil && id > 0 {
			warehouseID = id
		}
	}
	return warehouseID, statistics.ClampDays(c.QueryInt("days", statistics.DefaultDays))
}

// Summary GET /api/statistics/summary
func (h *StatisticsHandler) Summary(c *fiber.Ctx) error {
	warehouseID, days := h.scope(c)
	out, err := h.uc.Summary(c.Context(), warehouseID, days)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"days": days, "summary": out})
}

// QuantityChanges GET /api/statistics/quantity-changes
func (h *StatisticsHandler) QuantityChanges(c *fiber.Ctx) error {
	warehouseID, days := h.scope(c)
	out, err := h.uc.QuantityChanges(c.Context(), warehouseID, days)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"days": days, "items": emptyIfNil(out)})
}

// TopAdded GET /api/statistics/top-added
func (h *StatisticsHandler) TopAdded(c *fiber.Ctx) error {
	warehouseID, days := h.scope(c)
	out, err := h.uc.TopAdded(c.Context(), warehouseID, days, c.QueryInt("limit", 10))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"days": days, "items": emptyIfNil(out)})
}

// TopRemoved GET /api/statistics/top-removed
func (h *StatisticsHandler) TopRemoved(c *fiber.Ctx) error {
	warehouseID, days := h.scope(c)
	out, err := h.uc.TopRemoved(c.Context(), warehouseID, days, c.QueryInt("limit", 10))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"days": days, "items": emptyIfNil(out)})
}

// ActivityByDay GET /api/statistics/activity/daily
func (h *StatisticsHandler) ActivityByDay(c *fiber.Ctx) error {
	warehouseID, days := h.scope(c)
	out, err := h.uc.ActivityByDay(c.Context(), warehouseID, days)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"days": days, "activity": emptyIfNil(out)})
}

// ActivityByType GET /api/statistics/activity/types
func (h *StatisticsHandler) ActivityByType(c *fiber.Ctx) error {
	warehouseID, days := h.scope(c)
	out, err := h.uc.ActivityByType(c.Context(), warehouseID, days)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"days": days, "activity": emptyIfNil(out)})
}

// Report GET /api/reports — reporte compuesto de administración.
func (h *StatisticsHandler) Report(c *fiber.Ctx) error {
	warehouseID, days := h.scope(c)
	out, err := h.uc.Report(c.Context(), warehouseID, days)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// emptyIfNil serializa [] en vez de null cuando no hay filas.
func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
