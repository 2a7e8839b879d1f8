package dto

import "time"

// ApplyMovementRequest body para POST /api/inventory/movements.
// Se identifica el ítem por item_id o por scan_code, nunca por ambos.
type ApplyMovementRequest struct {
	WarehouseID int64  `json:"warehouse_id,omitempty"`
	ItemID      int64  `json:"item_id,omitempty"`
	ScanCode    string `json:"scan_code,omitempty"`
	UserID      int64  `json:"user_id"`
	Action      string `json:"action"` // ADD, REMOVE, RETURN
	Quantity    int64  `json:"quantity"`
	Note        string `json:"note,omitempty"`
}

// MovementResponse resultado de aplicar un movimiento.
type MovementResponse struct {
	MovementID  int64 `json:"movement_id"`
	ItemID      int64 `json:"item_id"`
	NewQuantity int64 `json:"new_quantity"`
}

// AddItemRequest body para POST /api/items.
type AddItemRequest struct {
	WarehouseID int64  `json:"warehouse_id,omitempty"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
	Quantity    int64  `json:"quantity"`
	MinQuantity int64  `json:"min_quantity,omitempty"`
	Location    string `json:"location,omitempty"`
	ScanCode    string `json:"scan_code,omitempty"`
	UserID      int64  `json:"user_id"`
}

// ItemResponse ítem del catálogo en respuestas.
type ItemResponse struct {
	ID          int64     `json:"id"`
	SKU         string    `json:"sku"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Description string    `json:"description,omitempty"`
	Quantity    int64     `json:"quantity"`
	MinQuantity int64     `json:"min_quantity"`
	Location    string    `json:"location,omitempty"`
	WarehouseID int64     `json:"warehouse_id"`
	ScanCode    string    `json:"scan_code,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ItemEventResponse entrada del historial de un ítem.
type ItemEventResponse struct {
	ID        int64     `json:"id"`
	Action    string    `json:"action"`
	Quantity  int64     `json:"quantity"`
	UserID    int64     `json:"user_id"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// LowStockItemDTO fila del reporte de stock bajo.
type LowStockItemDTO struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Quantity    int64  `json:"quantity"`
	MinQuantity int64  `json:"min_quantity"`
}

// DashboardResponse resumen de la bodega para el dashboard.
type DashboardResponse struct {
	WarehouseID     int64 `json:"warehouse_id"`
	TotalItems      int64 `json:"total_items"`
	TotalQuantity   int64 `json:"total_quantity"`
	PendingRequests int64 `json:"pending_requests"`
}
