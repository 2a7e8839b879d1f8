package repository

import "github.com/dronify/warehouse-api/internal/domain/entity"

// RequestRepository define el puerto de persistencia de solicitudes de
// inventario. Las solicitudes nunca se borran (se retienen para auditoría).
type RequestRepository interface {
	Create(request *entity.Request) (int64, error)
	GetByID(id int64) (*entity.Request, error)
	// GetForUpdate bloquea la fila de la solicitud para validar y aplicar
	// una transición de estado sin carreras entre aprobadores.
	GetForUpdate(id int64) (*entity.Request, error)
	UpdateStatus(id int64, status entity.RequestStatus, adminNote string) error
	// ListAll listado admin con campos de usuario e ítem resueltos.
	// status vacío lista todos los estados.
	ListAll(status entity.RequestStatus, limit int) ([]*entity.Request, error)
	ListByUser(userID int64, limit int) ([]*entity.Request, error)
	CountPending() (int64, error)
}
