package dto

// SummaryDTO resumen global de actividad en la ventana consultada.
type SummaryDTO struct {
	ActiveItems       int64 `json:"active_items"`
	TotalTransactions int64 `json:"total_transactions"`
	TotalAdded        int64 `json:"total_added"`
	TotalRemoved      int64 `json:"total_removed"`
	ActiveUsers       int64 `json:"active_users"`
	ActiveDays        int64 `json:"active_days"`
}

// QuantityChangeDTO movimiento neto por ítem dentro de la ventana.
// Solo incluye ítems con al menos un evento.
type QuantityChangeDTO struct {
	ItemID          int64  `json:"item_id"`
	Name            string `json:"name"`
	Type            string `json:"type"`
	SKU             string `json:"sku"`
	CurrentQuantity int64  `json:"current_quantity"`
	TotalAdded      int64  `json:"total_added"`
	TotalRemoved    int64  `json:"total_removed"`
	TotalEvents     int64  `json:"total_events"`
}

// TopItemDTO fila de los rankings de más agregado / más retirado.
type TopItemDTO struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	SKU      string `json:"sku"`
	Quantity int64  `json:"quantity"`
	Events   int64  `json:"events"`
}

// DailyActivityDTO actividad agregada de un día calendario.
type DailyActivityDTO struct {
	Date         string `json:"date"` // YYYY-MM-DD
	Added        int64  `json:"added"`
	Removed      int64  `json:"removed"`
	Transactions int64  `json:"transactions"`
}

// TypeActivityDTO actividad agregada por categoría de ítem.
type TypeActivityDTO struct {
	Type         string `json:"type"`
	ItemCount    int64  `json:"item_count"`
	TotalAdded   int64  `json:"total_added"`
	TotalRemoved int64  `json:"total_removed"`
	TotalEvents  int64  `json:"total_events"`
}

// ReportDTO reporte compuesto para la vista de administración.
type ReportDTO struct {
	Days          int                `json:"days"`
	Summary       SummaryDTO         `json:"summary"`
	DailyActivity []DailyActivityDTO `json:"daily_activity"`
	TypeActivity  []TypeActivityDTO  `json:"type_activity"`
	TopAdded      []TopItemDTO       `json:"top_added"`
	TopRemoved    []TopItemDTO       `json:"top_removed"`
	LowStock      []LowStockItemDTO  `json:"low_stock"`
}
