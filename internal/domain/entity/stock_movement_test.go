package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dronify/warehouse-api/internal/domain/entity"
)

func TestAction_IsValid(t *testing.T) {
	assert.True(t, entity.ActionAdd.IsValid())
	assert.True(t, entity.ActionRemove.IsValid())
	assert.True(t, entity.ActionReturn.IsValid())

	assert.False(t, entity.Action("").IsValid())
	assert.False(t, entity.Action("add").IsValid(), "las acciones distinguen mayúsculas")
	assert.False(t, entity.Action("TRANSFER").IsValid())
}

func TestAction_Delta(t *testing.T) {
	assert.Equal(t, int64(5), entity.ActionAdd.Delta(5))
	assert.Equal(t, int64(-5), entity.ActionRemove.Delta(5))
	assert.Equal(t, int64(5), entity.ActionReturn.Delta(5), "RETURN suma igual que ADD")
}

func TestStockMovement_Delta(t *testing.T) {
	m := &entity.StockMovement{Action: entity.ActionRemove, Quantity: 3}
	assert.Equal(t, int64(-3), m.Delta())

	m.Action = entity.ActionReturn
	assert.Equal(t, int64(3), m.Delta())
}
