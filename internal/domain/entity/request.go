package entity

import "time"

// RequestStatus estado de una solicitud de inventario (conjunto cerrado).
type RequestStatus string

const (
	StatusPending   RequestStatus = "PENDING"
	StatusApproved  RequestStatus = "APPROVED"
	StatusRejected  RequestStatus = "REJECTED"
	StatusCompleted RequestStatus = "COMPLETED"
)

// IsValid reporta si el estado pertenece al conjunto cerrado.
func (s RequestStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCompleted:
		return true
	}
	return false
}

// IsTerminal reporta si ninguna transición sale del estado.
func (s RequestStatus) IsTerminal() bool {
	return s == StatusRejected || s == StatusCompleted
}

// CanTransitionTo valida la máquina de estados:
// PENDING → APPROVED | REJECTED; APPROVED → COMPLETED.
// Las transiciones son monótonas y unidireccionales.
func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	switch s {
	case StatusPending:
		return next == StatusApproved || next == StatusRejected
	case StatusApproved:
		return next == StatusCompleted
	}
	return false
}

// Request solicitud de retiro de inventario de un usuario hacia un admin.
// La cantidad queda fija en la creación; nunca se borra (auditoría).
type Request struct {
	ID        int64
	UserID    int64
	ItemID    int64
	Quantity  int64
	Message   string
	Status    RequestStatus
	AdminNote string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Campos de presentación resueltos por JOIN en los listados.
	UserName  string
	UserEmail string
	ItemName  string
	ItemType  ItemType
	ItemScan  string
}
