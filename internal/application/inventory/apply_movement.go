package inventory

import (
	"context"
	"time"

	"github.com/dronify/warehouse-api/internal/domain"
	"github.com/dronify/warehouse-api/internal/domain/entity"
	"github.com/dronify/warehouse-api/internal/domain/repository"
)

// ApplyMovementUseCase es el único escritor de cantidades: aplica un
// movimiento de stock (ADD, REMOVE, RETURN) bloqueando la fila del ítem
// (SELECT FOR UPDATE), valida que la cantidad resultante no sea negativa y
// anexa la entrada del ledger en la misma transacción. Movimientos sobre
// ítems distintos no se bloquean entre sí.
type ApplyMovementUseCase struct {
	txRunner TxRunner
}

// NewApplyMovementUseCase construye el coordinador.
func NewApplyMovementUseCase(txRunner TxRunner) *ApplyMovementUseCase {
	return &ApplyMovementUseCase{txRunner: txRunner}
}

// MovementInputDTO entrada para aplicar un movimiento de stock.
// El ítem se identifica por ItemID o por ScanCode (lookup dentro de la
// bodega); si ambos vienen, manda ItemID.
type MovementInputDTO struct {
	WarehouseID int64
	ItemID      int64
	ScanCode    string
	UserID      int64
	Action      entity.Action
	Quantity    int64
	Note        string
}

// MovementResult resultado de un movimiento aplicado.
type MovementResult struct {
	MovementID  int64
	ItemID      int64
	NewQuantity int64
}

// ApplyMovement valida la entrada, inicia una transacción, bloquea la fila
// del ítem, recalcula la cantidad y anexa la entrada del ledger. Commit si
// todo ok; Rollback ante cualquier error (nada parcial queda visible).
func (uc *ApplyMovementUseCase) ApplyMovement(ctx context.Context, input MovementInputDTO) (*MovementResult, error) {
	// Validaciones de negocio antes de tocar la BD
	if input.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if !input.Action.IsValid() {
		return nil, domain.ErrInvalidAction
	}
	if input.ItemID == 0 && input.ScanCode == "" {
		return nil, domain.ErrItemNotFound
	}

	var result *MovementResult
	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		itemID := input.ItemID
		if itemID == 0 {
			// Resolver el código QR dentro de la bodega antes de bloquear
			item, err := itemRepo.GetByScanCode(input.WarehouseID, input.ScanCode)
			if err != nil {
				return err
			}
			if item == nil {
				return domain.ErrItemNotFound
			}
			itemID = item.ID
		}
		r, err := ApplyInTx(itemRepo, movementRepo, itemID, input.UserID, input.Action, input.Quantity, input.Note, input.WarehouseID)
		if err != nil {
			return err
		}
		result = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ApplyInTx ejecuta el protocolo leer-validar-escribir-anexar usando los
// repositorios proporcionados (misma transacción del caller). Lo usa
// ApplyMovement y también el workflow de solicitudes al completar una
// solicitud, para que el retiro y la transición queden en una sola tx.
// warehouseID distinto de cero restringe el ítem a esa bodega.
func ApplyInTx(
	itemRepo repository.ItemRepository,
	movementRepo repository.StockMovementRepository,
	itemID, userID int64,
	action entity.Action,
	quantity int64,
	note string,
	warehouseID int64,
) (*MovementResult, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if !action.IsValid() {
		return nil, domain.ErrInvalidAction
	}

	// Bloquea la fila del ítem; el segundo caller concurrente espera el
	// commit del primero y relee la cantidad ya confirmada.
	item, err := itemRepo.GetForUpdate(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}
	if warehouseID != 0 && item.WarehouseID != warehouseID {
		return nil, domain.ErrItemNotFound
	}

	newQty := item.Quantity + action.Delta(quantity)
	if newQty < 0 {
		return nil, domain.ErrInsufficientStock
	}

	if err := itemRepo.UpdateQuantity(item.ID, newQty); err != nil {
		return nil, err
	}
	movement := &entity.StockMovement{
		WarehouseID: item.WarehouseID,
		ItemID:      item.ID,
		UserID:      userID,
		Action:      action,
		Quantity:    quantity,
		Note:        note,
		CreatedAt:   time.Now(),
	}
	if err := movementRepo.Create(movement); err != nil {
		return nil, err
	}
	return &MovementResult{
		MovementID:  movement.ID,
		ItemID:      item.ID,
		NewQuantity: newQty,
	}, nil
}
