package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin = "ADMIN"
	RoleStaff = "STAFF"
)

// User actor que origina movimientos y solicitudes. La autenticación vive
// fuera del core; aquí solo importa la identidad referenciada por el ledger.
type User struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName nombre para mostrar en listados.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
