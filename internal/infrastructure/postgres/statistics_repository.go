package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dronify/warehouse-api/internal/domain/entity"
	"github.com/dronify/warehouse-api/internal/domain/repository"
)

var _ repository.StatisticsRepository = (*StatisticsRepo)(nil)

// StatisticsRepo consultas de solo lectura para el motor de estadísticas.
// Devuelve filas crudas; la agregación vive en el caso de uso. Lee solo datos
// confirmados: un movimiento en vuelo no aparece hasta su commit.
type StatisticsRepo struct {
	pool *pgxpool.Pool
}

// NewStatisticsRepository construye el adaptador de estadísticas.
func NewStatisticsRepository(pool *pgxpool.Pool) *StatisticsRepo {
	return &StatisticsRepo{pool: pool}
}

// MovementsInWindow entradas del ledger de la bodega con created_at >= since,
// en orden de creación.
func (r *StatisticsRepo) MovementsInWindow(ctx context.Context, warehouseID int64, since time.Time) ([]*entity.StockMovement, error) {
	const query = `
		SELECT id, warehouse_id, item_id, user_id, action, quantity, note, created_at
		FROM stock_movements
		WHERE warehouse_id = $1 AND created_at >= $2
		ORDER BY created_at, id`
	rows, err := r.pool.Query(ctx, query, warehouseID, since)
	if err != nil {
		return nil, fmt.Errorf("statistics.MovementsInWindow: %w", err)
	}
	defer rows.Close()
	var out []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		var action string
		var note *string
		if err := rows.Scan(&m.ID, &m.WarehouseID, &m.ItemID, &m.UserID,
			&action, &m.Quantity, &note, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("statistics.MovementsInWindow scan: %w", err)
		}
		m.Action = entity.Action(action)
		if note != nil {
			m.Note = *note
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}

// ItemsByWarehouse todos los ítems de la bodega, incluida cantidad cero.
func (r *StatisticsRepo) ItemsByWarehouse(ctx context.Context, warehouseID int64) ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE warehouse_id = $1 ORDER BY name`
	rows, err := r.pool.Query(ctx, query, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("statistics.ItemsByWarehouse: %w", err)
	}
	defer rows.Close()
	var out []*entity.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("statistics.ItemsByWarehouse scan: %w", err)
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

// ActiveItemCount ítems con cantidad > 0 en la bodega.
func (r *StatisticsRepo) ActiveItemCount(ctx context.Context, warehouseID int64) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM items WHERE warehouse_id = $1 AND quantity > 0`,
		warehouseID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("statistics.ActiveItemCount: %w", err)
	}
	return count, nil
}
