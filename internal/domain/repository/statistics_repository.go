package repository

import (
	"context"
	"time"

	"github.com/dronify/warehouse-api/internal/domain/entity"
)

// StatisticsRepository consultas de solo lectura para el motor de
// estadísticas. Devuelve filas crudas del ledger y del catálogo; toda la
// agregación ocurre en el caso de uso, de modo que cada reporte sea
// reproducible reproduciendo únicamente las entradas del ledger en la ventana.
type StatisticsRepository interface {
	// MovementsInWindow entradas del ledger de una bodega con
	// timestamp >= since, en orden de creación.
	MovementsInWindow(ctx context.Context, warehouseID int64, since time.Time) ([]*entity.StockMovement, error)
	// ItemsByWarehouse todos los ítems de la bodega (incluye cantidad cero).
	ItemsByWarehouse(ctx context.Context, warehouseID int64) ([]*entity.Item, error)
	// ActiveItemCount ítems con cantidad > 0 en la bodega.
	ActiveItemCount(ctx context.Context, warehouseID int64) (int64, error)
}
