package entity

import "time"

// Action tipo de movimiento de stock (conjunto cerrado).
type Action string

const (
	ActionAdd    Action = "ADD"    // entrada
	ActionRemove Action = "REMOVE" // salida
	ActionReturn Action = "RETURN" // devolución (suma como ADD)
)

// IsValid reporta si la acción pertenece al conjunto cerrado.
func (a Action) IsValid() bool {
	switch a {
	case ActionAdd, ActionRemove, ActionReturn:
		return true
	}
	return false
}

// Delta devuelve el efecto con signo de aplicar la acción con qty unidades.
// qty siempre se recibe y se persiste positivo; el signo lo implica la acción.
func (a Action) Delta(qty int64) int64 {
	if a == ActionRemove {
		return -qty
	}
	return qty
}

// StockMovement entrada inmutable del ledger de movimientos: una por cada
// mutación de cantidad aplicada. Nunca se actualiza ni se borra; es la
// fuente de verdad para todos los reportes.
type StockMovement struct {
	ID          int64
	WarehouseID int64
	ItemID      int64
	UserID      int64
	Action      Action
	Quantity    int64 // estrictamente positivo
	Note        string
	CreatedAt   time.Time
}

// Delta efecto con signo de este movimiento sobre la cantidad del ítem.
func (m *StockMovement) Delta() int64 {
	return m.Action.Delta(m.Quantity)
}
