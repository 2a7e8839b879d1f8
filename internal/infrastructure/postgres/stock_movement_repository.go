package postgres

import (
	"context"
	"fmt"

	"github.com/dronify/warehouse-api/internal/domain/entity"
	"github.com/dronify/warehouse-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación del ledger sobre PostgreSQL (usable con
// pool o tx). Solo INSERT y SELECT: el ledger es append-only.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create anexa una entrada al ledger y asigna el ID de secuencia.
func (r *StockMovementRepo) Create(movement *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (warehouse_id, item_id, user_id, action, quantity, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		movement.WarehouseID, movement.ItemID, movement.UserID,
		string(movement.Action), movement.Quantity, nullable(movement.Note), movement.CreatedAt,
	).Scan(&movement.ID)
	if err != nil {
		return fmt.Errorf("create stock movement: %w", err)
	}
	return nil
}

// ListByItem últimos movimientos de un ítem, más recientes primero.
func (r *StockMovementRepo) ListByItem(itemID int64, limit int) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, warehouse_id, item_id, user_id, action, quantity, note, created_at
		FROM stock_movements
		WHERE item_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`
	rows, err := r.q.Query(context.Background(), query, itemID, limit)
	if err != nil {
		return nil, fmt.Errorf("list movements by item: %w", err)
	}
	defer rows.Close()
	var out []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		var action string
		var note *string
		if err := rows.Scan(&m.ID, &m.WarehouseID, &m.ItemID, &m.UserID,
			&action, &m.Quantity, &note, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		m.Action = entity.Action(action)
		if note != nil {
			m.Note = *note
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}
