package entity

import "time"

// ItemType categoría de un ítem del catálogo (conjunto cerrado).
type ItemType string

const (
	TypeBattery    ItemType = "BATTERY"
	TypeMotor      ItemType = "MOTOR"
	TypeESC        ItemType = "ESC"
	TypeFrame      ItemType = "FRAME"
	TypeController ItemType = "CONTROLLER"
	TypeDrone      ItemType = "DRONE"
	TypePropeller  ItemType = "PROPELLER"
	TypeCamera     ItemType = "CAMERA"
	TypeFin        ItemType = "FIN"
	TypeOther      ItemType = "OTHER"
)

// ItemTypes lista de categorías válidas, en orden de presentación.
var ItemTypes = []ItemType{
	TypeBattery, TypeMotor, TypeESC, TypeFrame, TypeController,
	TypeDrone, TypePropeller, TypeCamera, TypeFin, TypeOther,
}

// IsValid reporta si la categoría pertenece al conjunto cerrado.
func (t ItemType) IsValid() bool {
	switch t {
	case TypeBattery, TypeMotor, TypeESC, TypeFrame, TypeController,
		TypeDrone, TypePropeller, TypeCamera, TypeFin, TypeOther:
		return true
	}
	return false
}

// Item representa un ítem físico del catálogo de una bodega.
// Quantity es el total acumulado de los deltas del ledger desde su creación
// y solo lo muta el coordinador de movimientos; nunca es negativo.
type Item struct {
	ID          int64
	SKU         string
	Name        string
	Type        ItemType
	Description string
	Quantity    int64
	MinQuantity int64
	Location    string
	WarehouseID int64
	ScanCode    string // código QR externo, opcional
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsLowStock reporta si el ítem está bajo su mínimo configurado.
// Un ítem en cero exacto queda fuera del reporte (filtro quantity > 0).
func (i *Item) IsLowStock() bool {
	return i.Quantity > 0 && i.Quantity < i.MinQuantity
}
