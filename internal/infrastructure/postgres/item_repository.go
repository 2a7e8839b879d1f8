package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dronify/warehouse-api/internal/domain"
	"github.com/dronify/warehouse-api/internal/domain/entity"
	"github.com/dronify/warehouse-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

const itemColumns = `id, sku, name, type, description, quantity, min_quantity, location, warehouse_id, scan_code, created_at, updated_at`

// ItemRepo implementación de ItemRepository sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// Create inserta un ítem y asigna el ID generado.
func (r *ItemRepo) Create(item *entity.Item) error {
	query := `
		INSERT INTO items (sku, name, type, description, quantity, min_quantity, location, warehouse_id, scan_code, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		item.SKU, item.Name, string(item.Type), nullable(item.Description),
		item.Quantity, item.MinQuantity, nullable(item.Location),
		item.WarehouseID, nullable(item.ScanCode), item.CreatedAt, item.UpdatedAt,
	).Scan(&item.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create item: %w", err)
	}
	return nil
}

// GetByID obtiene un ítem por ID. Devuelve nil si no existe.
func (r *ItemRepo) GetByID(id int64) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get item")
}

// GetByScanCode obtiene un ítem por código QR dentro de una bodega.
// Devuelve nil si no existe.
func (r *ItemRepo) GetByScanCode(warehouseID int64, scanCode string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE warehouse_id = $1 AND scan_code = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, warehouseID, scanCode), "get item by scan code")
}

// GetForUpdate obtiene el ítem y bloquea su fila (SELECT FOR UPDATE). Si la
// fila sigue bloqueada al agotar lock_timeout devuelve ErrContention.
func (r *ItemRepo) GetForUpdate(id int64) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1 FOR UPDATE`
	item, err := r.scanOne(r.q.QueryRow(context.Background(), query, id), "get item for update")
	if err != nil {
		if isLockTimeout(err) {
			return nil, domain.ErrContention
		}
		return nil, err
	}
	return item, nil
}

// UpdateQuantity fija la cantidad del ítem. Solo lo invoca el coordinador,
// con la fila ya bloqueada y dentro de su transacción.
func (r *ItemRepo) UpdateQuantity(id int64, quantity int64) error {
	query := `UPDATE items SET quantity = $1, updated_at = now() WHERE id = $2`
	tag, err := r.q.Exec(context.Background(), query, quantity, id)
	if err != nil {
		return fmt.Errorf("update item quantity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

// ListActive lista ítems con cantidad > 0 de la bodega, ordenados por nombre.
func (r *ItemRepo) ListActive(warehouseID int64) ([]*entity.Item, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM items
		WHERE warehouse_id = $1 AND quantity > 0
		ORDER BY name`
	return r.list(query, "list active items", warehouseID)
}

// ListLowStock lista ítems con 0 < cantidad < mínimo, ordenados por severidad
// (cantidad / mínimo ascendente).
func (r *ItemRepo) ListLowStock(warehouseID int64, limit int) ([]*entity.Item, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM items
		WHERE warehouse_id = $1 AND quantity < min_quantity AND quantity > 0
		ORDER BY quantity::float / min_quantity ASC
		LIMIT $2`
	return r.list(query, "list low stock items", warehouseID, limit)
}

// DashboardTotals totales de la bodega: ítems y unidades en existencia.
func (r *ItemRepo) DashboardTotals(warehouseID int64) (items int64, quantity int64, err error) {
	query := `
		SELECT COUNT(*), COALESCE(SUM(quantity), 0)
		FROM items WHERE warehouse_id = $1`
	err = r.q.QueryRow(context.Background(), query, warehouseID).Scan(&items, &quantity)
	if err != nil {
		return 0, 0, fmt.Errorf("dashboard totals: %w", err)
	}
	return items, quantity, nil
}

func (r *ItemRepo) list(query, op string, args ...any) ([]*entity.Item, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	var out []*entity.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("%s scan: %w", op, err)
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func (r *ItemRepo) scanOne(row pgx.Row, op string) (*entity.Item, error) {
	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if isLockTimeout(err) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return item, nil
}

func scanItem(row pgx.Row) (*entity.Item, error) {
	var it entity.Item
	var typ string
	var description, location, scanCode *string
	err := row.Scan(&it.ID, &it.SKU, &it.Name, &typ, &description, &it.Quantity,
		&it.MinQuantity, &location, &it.WarehouseID, &scanCode, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		return nil, err
	}
	it.Type = entity.ItemType(typ)
	if description != nil {
		it.Description = *description
	}
	if location != nil {
		it.Location = *location
	}
	if scanCode != nil {
		it.ScanCode = *scanCode
	}
	return &it, nil
}

// nullable convierte cadenas vacías en NULL.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
