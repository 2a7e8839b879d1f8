package repository

import "github.com/dronify/warehouse-api/internal/domain/entity"

// StockMovementRepository define el puerto de persistencia del ledger de
// movimientos. Solo inserta y lee: las entradas nunca se actualizan ni borran.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	// ListByItem últimos movimientos de un ítem, más recientes primero.
	ListByItem(itemID int64, limit int) ([]*entity.StockMovement, error)
}
