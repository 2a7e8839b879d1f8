package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Se detectan antes de cualquier escritura durable: el estado no cambia.
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrItemNotFound      = errors.New("ítem no encontrado")
	ErrInvalidQuantity   = errors.New("la cantidad debe ser un entero positivo")
	ErrInvalidAction     = errors.New("acción de inventario no reconocida")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrInvalidTransition = errors.New("transición de estado no permitida")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")

	// ErrContention indica que la fila del ítem siguió bloqueada tras agotar
	// el lock_timeout. Es el único error que el caller puede reintentar.
	ErrContention = errors.New("ítem bloqueado por otra operación, reintentar")
)
