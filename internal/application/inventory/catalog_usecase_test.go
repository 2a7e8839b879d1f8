package inventory_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dronify/warehouse-api/internal/application/inventory"
	"github.com/dronify/warehouse-api/internal/domain"
	"github.com/dronify/warehouse-api/internal/domain/entity"
)

func newCatalogFixture(t *testing.T) (*inventory.CatalogUseCase, *memStore) {
	t.Helper()
	store := newMemStore()
	store.addWarehouse(1, "Bodega principal")
	uc := inventory.NewCatalogUseCase(
		&memTxRunner{s: store},
		&memItemRepo{s: store},
		&memMovementRepo{s: store},
		&memWarehouseRepo{s: store},
	)
	return uc, store
}

func TestAddItem_ConCantidadInicial(t *testing.T) {
	uc, store := newCatalogFixture(t)

	item, err := uc.AddItem(context.Background(), inventory.AddItemDTO{
		WarehouseID: 1,
		Name:        "  Motor U8 Lite ",
		Type:        entity.TypeMotor,
		Quantity:    12,
		UserID:      3,
	})
	require.NoError(t, err)

	assert.Equal(t, "Motor U8 Lite", item.Name, "el nombre se normaliza")
	assert.Equal(t, int64(12), item.Quantity)
	assert.Equal(t, int64(5), item.MinQuantity, "mínimo por defecto")
	assert.True(t, strings.HasPrefix(item.SKU, "ITEM"))
	assert.Len(t, item.SKU, 12)

	// El alta con cantidad deja un ADD en el ledger, en la misma transacción
	require.Len(t, store.movements, 1)
	m := store.movements[0]
	assert.Equal(t, entity.ActionAdd, m.Action)
	assert.Equal(t, int64(12), m.Quantity)
	assert.Equal(t, item.ID, m.ItemID)
	assert.Equal(t, int64(3), m.UserID)
}

func TestAddItem_SinCantidadInicial(t *testing.T) {
	uc, store := newCatalogFixture(t)

	item, err := uc.AddItem(context.Background(), inventory.AddItemDTO{
		WarehouseID: 1,
		Name:        "Frame carbono",
		Type:        entity.TypeFrame,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), item.Quantity)
	assert.Empty(t, store.movements, "sin cantidad inicial no hay movimiento")
}

func TestAddItem_EntradaInvalida(t *testing.T) {
	uc, _ := newCatalogFixture(t)
	ctx := context.Background()

	_, err := uc.AddItem(ctx, inventory.AddItemDTO{WarehouseID: 1, Name: "  ", Type: entity.TypeMotor})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.AddItem(ctx, inventory.AddItemDTO{WarehouseID: 1, Name: "Rueda", Type: entity.ItemType("WHEEL")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "tipo fuera del conjunto cerrado")

	_, err = uc.AddItem(ctx, inventory.AddItemDTO{WarehouseID: 1, Name: "Motor", Type: entity.TypeMotor, Quantity: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = uc.AddItem(ctx, inventory.AddItemDTO{WarehouseID: 9, Name: "Motor", Type: entity.TypeMotor})
	assert.ErrorIs(t, err, domain.ErrNotFound, "bodega inexistente")
}

func TestItemEvents(t *testing.T) {
	uc, store := newCatalogFixture(t)
	item := seedItem(store, 10)
	for i := 0; i < 3; i++ {
		_ = (&memMovementRepo{s: store}).Create(&entity.StockMovement{
			ItemID: item.ID, WarehouseID: 1, UserID: 1,
			Action: entity.ActionAdd, Quantity: int64(i + 1),
		})
	}

	events, err := uc.ItemEvents(item.ID, 2)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, int64(3), events[0].Quantity, "más recientes primero")

	_, err = uc.ItemEvents(99, 10)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestLowStock(t *testing.T) {
	uc, store := newCatalogFixture(t)
	store.addItem(&entity.Item{Name: "Bajo", Type: entity.TypeESC, Quantity: 2, MinQuantity: 10, WarehouseID: 1})
	store.addItem(&entity.Item{Name: "Sano", Type: entity.TypeESC, Quantity: 50, MinQuantity: 10, WarehouseID: 1})
	store.addItem(&entity.Item{Name: "Agotado", Type: entity.TypeESC, Quantity: 0, MinQuantity: 10, WarehouseID: 1})

	out, err := uc.LowStock(1, 0)
	require.NoError(t, err)
	require.Len(t, out, 1, "solo cuenta 0 < cantidad < mínimo")
	assert.Equal(t, "Bajo", out[0].Name)
}

func TestGetItemByScanCode_Validacion(t *testing.T) {
	uc, _ := newCatalogFixture(t)

	_, err := uc.GetItemByScanCode(1, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
