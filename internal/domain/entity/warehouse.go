package entity

import "time"

// Warehouse bodega que agrupa ítems y movimientos. Entidad de solo lectura
// en el camino caliente; se crea por bootstrap administrativo.
type Warehouse struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}
