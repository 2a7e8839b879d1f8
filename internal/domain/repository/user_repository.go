package repository

import "github.com/dronify/warehouse-api/internal/domain/entity"

// UserRepository define el puerto de persistencia de usuarios. El core solo
// referencia la identidad del actor; el login vive fuera.
type UserRepository interface {
	Create(user *entity.User) (int64, error)
	GetByID(id int64) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
}
