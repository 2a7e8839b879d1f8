package repository

import "github.com/dronify/warehouse-api/internal/domain/entity"

// ItemRepository define el puerto de persistencia del catálogo de ítems.
// La cantidad solo se escribe dentro de la transacción del coordinador.
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id int64) (*entity.Item, error)
	// GetByScanCode busca por código QR externo dentro de una bodega.
	// Lookup separado del de ID: nunca se adivina por el tipo del parámetro.
	GetByScanCode(warehouseID int64, scanCode string) (*entity.Item, error)
	// GetForUpdate bloquea la fila del ítem (SELECT FOR UPDATE) para el
	// ciclo leer-validar-escribir del coordinador.
	GetForUpdate(id int64) (*entity.Item, error)
	UpdateQuantity(id int64, quantity int64) error
	// ListActive lista ítems con cantidad > 0 ordenados por nombre.
	ListActive(warehouseID int64) ([]*entity.Item, error)
	// ListLowStock lista ítems con 0 < cantidad < mínimo, ordenados por
	// severidad (cantidad / mínimo ascendente).
	ListLowStock(warehouseID int64, limit int) ([]*entity.Item, error)
	// DashboardTotals totales de la bodega: ítems y unidades en existencia.
	DashboardTotals(warehouseID int64) (items int64, quantity int64, err error)
}
