package repository

import "github.com/dronify/warehouse-api/internal/domain/entity"

// WarehouseRepository define el puerto de persistencia de bodegas.
type WarehouseRepository interface {
	Create(warehouse *entity.Warehouse) (int64, error)
	GetByID(id int64) (*entity.Warehouse, error)
	List() ([]*entity.Warehouse, error)
}
