package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dronify/warehouse-api/internal/domain/entity"
)

func TestItemType_IsValid(t *testing.T) {
	for _, it := range entity.ItemTypes {
		assert.True(t, it.IsValid(), "tipo de catálogo %s", it)
	}
	assert.False(t, entity.ItemType("WHEEL").IsValid())
	assert.False(t, entity.ItemType("battery").IsValid(), "los tipos distinguen mayúsculas")
	assert.False(t, entity.ItemType("").IsValid())
}

func TestItem_IsLowStock(t *testing.T) {
	item := &entity.Item{MinQuantity: 5}

	item.Quantity = 3
	assert.True(t, item.IsLowStock())

	item.Quantity = 5
	assert.False(t, item.IsLowStock(), "en el mínimo exacto no hay alerta")

	item.Quantity = 0
	assert.False(t, item.IsLowStock(), "el cero exacto queda fuera del reporte")

	item.Quantity = 4
	item.MinQuantity = 4
	assert.False(t, item.IsLowStock())
}
