package inventory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dronify/warehouse-api/internal/application/inventory"
	"github.com/dronify/warehouse-api/internal/domain"
	"github.com/dronify/warehouse-api/internal/domain/entity"
)

func newApplyFixture(t *testing.T) (*inventory.ApplyMovementUseCase, *memStore) {
	t.Helper()
	store := newMemStore()
	store.addWarehouse(1, "Bodega principal")
	uc := inventory.NewApplyMovementUseCase(&memTxRunner{s: store})
	return uc, store
}

func seedItem(store *memStore, qty int64) *entity.Item {
	return store.addItem(&entity.Item{
		SKU:         "ITEMAB12CD34",
		Name:        "Batería LiPo 6S",
		Type:        entity.TypeBattery,
		Quantity:    qty,
		MinQuantity: 5,
		WarehouseID: 1,
		ScanCode:    "QR-BAT-01",
	})
}

func TestApplyMovement_CantidadInvalida(t *testing.T) {
	uc, store := newApplyFixture(t)
	seedItem(store, 10)

	for _, qty := range []int64{0, -3} {
		_, err := uc.ApplyMovement(context.Background(), inventory.MovementInputDTO{
			WarehouseID: 1, ItemID: 1, UserID: 1,
			Action: entity.ActionAdd, Quantity: qty,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity, "cantidad %d", qty)
	}
	assert.Empty(t, store.movements, "una entrada rechazada no llega al ledger")
}

func TestApplyMovement_AccionInvalida(t *testing.T) {
	uc, store := newApplyFixture(t)
	seedItem(store, 10)

	_, err := uc.ApplyMovement(context.Background(), inventory.MovementInputDTO{
		WarehouseID: 1, ItemID: 1, UserID: 1,
		Action: entity.Action("TRANSFER"), Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidAction)
	assert.Empty(t, store.movements)
}

func TestApplyMovement_SinIdentificador(t *testing.T) {
	uc, _ := newApplyFixture(t)

	_, err := uc.ApplyMovement(context.Background(), inventory.MovementInputDTO{
		WarehouseID: 1, UserID: 1,
		Action: entity.ActionAdd, Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestApplyMovement_ItemInexistente(t *testing.T) {
	uc, _ := newApplyFixture(t)

	_, err := uc.ApplyMovement(context.Background(), inventory.MovementInputDTO{
		WarehouseID: 1, ItemID: 99, UserID: 1,
		Action: entity.ActionAdd, Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestApplyMovement_BodegaEquivocada(t *testing.T) {
	uc, store := newApplyFixture(t)
	item := seedItem(store, 10)

	_, err := uc.ApplyMovement(context.Background(), inventory.MovementInputDTO{
		WarehouseID: 2, ItemID: item.ID, UserID: 1,
		Action: entity.ActionAdd, Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrItemNotFound,
		"un ítem de otra bodega no es visible para el movimiento")
}

func TestApplyMovement_Deltas(t *testing.T) {
	uc, store := newApplyFixture(t)
	item := seedItem(store, 10)

	cases := []struct {
		action entity.Action
		qty    int64
		want   int64
	}{
		{entity.ActionAdd, 5, 15},
		{entity.ActionRemove, 3, 12},
		{entity.ActionReturn, 2, 14}, // RETURN suma igual que ADD
	}
	for _, tc := range cases {
		result, err := uc.ApplyMovement(context.Background(), inventory.MovementInputDTO{
			WarehouseID: 1, ItemID: item.ID, UserID: 7,
			Action: tc.action, Quantity: tc.qty, Note: "prueba",
		})
		require.NoError(t, err, "acción %s", tc.action)
		assert.Equal(t, tc.want, result.NewQuantity, "acción %s", tc.action)
		assert.Equal(t, tc.want, store.items[item.ID].Quantity)
	}

	// Cada movimiento aplicado queda apareado con una entrada del ledger
	require.Len(t, store.movements, len(cases))
	for i, tc := range cases {
		m := store.movements[i]
		assert.Equal(t, tc.action, m.Action)
		assert.Equal(t, tc.qty, m.Quantity, "el ledger guarda la cantidad positiva")
		assert.Equal(t, int64(7), m.UserID)
		assert.Equal(t, int64(1), m.WarehouseID)
	}
}

func TestApplyMovement_StockInsuficiente(t *testing.T) {
	uc, store := newApplyFixture(t)
	item := seedItem(store, 10)

	_, err := uc.ApplyMovement(context.Background(), inventory.MovementInputDTO{
		WarehouseID: 1, ItemID: item.ID, UserID: 1,
		Action: entity.ActionRemove, Quantity: 11,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(10), store.items[item.ID].Quantity, "la cantidad no cambia")
	assert.Empty(t, store.movements, "el rechazo no deja entrada en el ledger")
}

func TestApplyMovement_PorCodigoDeEscaneo(t *testing.T) {
	uc, store := newApplyFixture(t)
	item := seedItem(store, 10)

	result, err := uc.ApplyMovement(context.Background(), inventory.MovementInputDTO{
		WarehouseID: 1, ScanCode: "QR-BAT-01", UserID: 1,
		Action: entity.ActionAdd, Quantity: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, item.ID, result.ItemID)
	assert.Equal(t, int64(12), result.NewQuantity)

	// El mismo código en otra bodega no resuelve
	_, err = uc.ApplyMovement(context.Background(), inventory.MovementInputDTO{
		WarehouseID: 2, ScanCode: "QR-BAT-01", UserID: 1,
		Action: entity.ActionAdd, Quantity: 2,
	})
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

// TestApplyMovement_SecuenciaCompleta recorre la secuencia de referencia:
// 10 → ADD 5 → 15 → REMOVE 20 (rechazado) → REMOVE 15 → 0.
func TestApplyMovement_SecuenciaCompleta(t *testing.T) {
	uc, store := newApplyFixture(t)
	item := seedItem(store, 10)
	ctx := context.Background()

	r, err := uc.ApplyMovement(ctx, inventory.MovementInputDTO{
		WarehouseID: 1, ItemID: item.ID, UserID: 1,
		Action: entity.ActionAdd, Quantity: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(15), r.NewQuantity)

	_, err = uc.ApplyMovement(ctx, inventory.MovementInputDTO{
		WarehouseID: 1, ItemID: item.ID, UserID: 1,
		Action: entity.ActionRemove, Quantity: 20,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(15), store.items[item.ID].Quantity)

	r, err = uc.ApplyMovement(ctx, inventory.MovementInputDTO{
		WarehouseID: 1, ItemID: item.ID, UserID: 1,
		Action: entity.ActionRemove, Quantity: 15,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), r.NewQuantity)

	// En cero exacto el ítem queda fuera del reporte de stock bajo
	assert.False(t, store.items[item.ID].IsLowStock())

	// Dos movimientos aplicados, el rechazado no cuenta
	assert.Len(t, store.movements, 2)
}

// TestApplyMovement_Concurrencia lanza movimientos en paralelo sobre el mismo
// ítem y verifica que la cantidad final sea la suma exacta de los deltas y
// que el ledger tenga una entrada por movimiento aplicado.
func TestApplyMovement_Concurrencia(t *testing.T) {
	uc, store := newApplyFixture(t)
	item := seedItem(store, 100)
	ctx := context.Background()

	const workers = 32
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		action := entity.ActionAdd
		if i%2 == 0 {
			action = entity.ActionRemove
		}
		go func(a entity.Action) {
			defer wg.Done()
			_, err := uc.ApplyMovement(ctx, inventory.MovementInputDTO{
				WarehouseID: 1, ItemID: item.ID, UserID: 1,
				Action: a, Quantity: 1,
			})
			assert.NoError(t, err)
		}(action)
	}
	wg.Wait()

	// 16 ADD y 16 REMOVE de una unidad: la cantidad vuelve al punto inicial
	assert.Equal(t, int64(100), store.items[item.ID].Quantity)
	assert.Len(t, store.movements, workers)

	// La cantidad final coincide con reproducir los deltas del ledger
	replayed := int64(100)
	for _, m := range store.movements {
		replayed += m.Delta()
	}
	assert.Equal(t, store.items[item.ID].Quantity, replayed)
}
