package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/dronify/warehouse-api/internal/application/dto"
	"github.com/dronify/warehouse-api/internal/application/inventory"
	"github.com/dronify/warehouse-api/internal/application/requests"
	"github.com/dronify/warehouse-api/internal/domain/entity"
)

// InventoryHandler maneja las peticiones HTTP de movimientos y catálogo.
type InventoryHandler struct {
	applyMovement      *inventory.ApplyMovementUseCase
	catalog            *inventory.CatalogUseCase
	requestsUC         *requests.UseCase
	defaultWarehouseID int64
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(
	applyMovement *inventory.ApplyMovementUseCase,
	catalog *inventory.CatalogUseCase,
	requestsUC *requests.UseCase,
	defaultWarehouseID int64,
) *InventoryHandler {
	return &InventoryHandler{
		applyMovement:      applyMovement,
		catalog:            catalog,
		requestsUC:         requestsUC,
		defaultWarehouseID: defaultWarehouseID,
	}
}

// warehouseID resuelve la bodega del query param o cae a la por defecto.
func (h *InventoryHandler) warehouseID(c *fiber.Ctx) int64 {
	if raw := c.Query("warehouse_id"); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil && id > 0 {
			return id
		}
	}
	return h.defaultWarehouseID
}

// ApplyMovement aplica un movimiento de stock (ADD, REMOVE, RETURN).
// POST /api/inventory/movements
func (h *InventoryHandler) ApplyMovement(c *fiber.Ctx) error {
	var in dto.ApplyMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	warehouseID := in.WarehouseID
	if warehouseID == 0 {
		warehouseID = h.defaultWarehouseID
	}
	result, err := h.applyMovement.ApplyMovement(c.Context(), inventory.MovementInputDTO{
		WarehouseID: warehouseID,
		ItemID:      in.ItemID,
		ScanCode:    in.ScanCode,
		UserID:      in.UserID,
		Action:      entity.Action(in.Action),
		Quantity:    in.Quantity,
		Note:        in.Note,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MovementResponse{
		MovementID:  result.MovementID,
		ItemID:      result.ItemID,
		NewQuantity: result.NewQuantity,
	})
}

// AddItem registra un ítem nuevo en el catálogo.
// POST /api/items
func (h *InventoryHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	warehouseID := in.WarehouseID
	if warehouseID == 0 {
		warehouseID = h.defaultWarehouseID
	}
	item, err := h.catalog.AddItem(c.Context(), inventory.AddItemDTO{
		WarehouseID: warehouseID,
		Name:        in.Name,
		Type:        entity.ItemType(in.Type),
		Description: in.Description,
		Quantity:    in.Quantity,
		MinQuantity: in.MinQuantity,
		Location:    in.Location,
		ScanCode:    in.ScanCode,
		UserID:      in.UserID,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toItemResponse(item))
}

// ListItems lista los ítems con existencia de la bodega.
// GET /api/items
func (h *InventoryHandler) ListItems(c *fiber.Ctx) error {
	items, err := h.catalog.ListInventory(h.warehouseID(c))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toItemResponse(it))
	}
	return c.JSON(fiber.Map{"total": len(out), "items": out})
}

// GetItem obtiene un ítem por ID.
// GET /api/items/:id
func (h *InventoryHandler) GetItem(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	item, err := h.catalog.GetItemByID(id)
	if err != nil {
		return respondError(c, err)
	}
	if item == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "ITEM_NOT_FOUND", Message: "ítem no encontrado"})
	}
	return c.JSON(toItemResponse(item))
}

// GetItemByScan obtiene un ítem por código QR dentro de la bodega.
// GET /api/scan/:code
func (h *InventoryHandler) GetItemByScan(c *fiber.Ctx) error {
	item, err := h.catalog.GetItemByScanCode(h.warehouseID(c), c.Params("code"))
	if err != nil {
		return respondError(c, err)
	}
	if item == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "ITEM_NOT_FOUND", Message: "ítem no encontrado"})
	}
	return c.JSON(toItemResponse(item))
}

// ItemEvents historial de movimientos de un ítem.
// GET /api/items/:id/events
func (h *InventoryHandler) ItemEvents(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	events, err := h.catalog.ItemEvents(id, c.QueryInt("limit"))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.ItemEventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, dto.ItemEventResponse{
			ID:        e.ID,
			Action:    string(e.Action),
			Quantity:  e.Quantity,
			UserID:    e.UserID,
			Note:      e.Note,
			CreatedAt: e.CreatedAt,
		})
	}
	return c.JSON(fiber.Map{"total": len(out), "events": out})
}

// LowStock reporte de ítems bajo su mínimo.
// GET /api/reports/low-stock
func (h *InventoryHandler) LowStock(c *fiber.Ctx) error {
	rows, err := h.catalog.LowStock(h.warehouseID(c), c.QueryInt("limit"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(rows), "items": rows})
}

// Dashboard resumen de la bodega: totales y solicitudes pendientes.
// GET /api/dashboard
func (h *InventoryHandler) Dashboard(c *fiber.Ctx) error {
	warehouseID := h.warehouseID(c)
	items, quantity, err := h.catalog.DashboardTotals(warehouseID)
	if err != nil {
		return respondError(c, err)
	}
	pending, err := h.requestsUC.PendingCount()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.DashboardResponse{
		WarehouseID:     warehouseID,
		TotalItems:      items,
		TotalQuantity:   quantity,
		PendingRequests: pending,
	})
}

func toItemResponse(it *entity.Item) dto.ItemResponse {
	return dto.ItemResponse{
		ID:          it.ID,
		SKU:         it.SKU,
		Name:        it.Name,
		Type:        string(it.Type),
		Description: it.Description,
		Quantity:    it.Quantity,
		MinQuantity: it.MinQuantity,
		Location:    it.Location,
		WarehouseID: it.WarehouseID,
		ScanCode:    it.ScanCode,
		CreatedAt:   it.CreatedAt,
		UpdatedAt:   it.UpdatedAt,
	}
}
