package requests

import (
	"context"
	"fmt"
	"time"

	"github.com/dronify/warehouse-api/internal/application/inventory"
	"github.com/dronify/warehouse-api/internal/domain"
	"github.com/dronify/warehouse-api/internal/domain/entity"
	"github.com/dronify/warehouse-api/internal/domain/repository"
)

const defaultListLimit = 50

// UseCase workflow de solicitudes de inventario: creación por staff y
// transiciones de estado por admin. Al pasar a COMPLETED se aplica el retiro
// (REMOVE) por el coordinador dentro de la misma transacción, para que el
// ledger y el workflow queden consistentes.
//
// Crear una solicitud no reserva stock: entre APPROVED y COMPLETED otro
// actor puede retirar el mismo ítem, y completar fallará con stock
// insuficiente. Esa carrera es aceptada; la solicitud queda en APPROVED.
type UseCase struct {
	txRunner    TxRunner
	requestRepo repository.RequestRepository
	itemRepo    repository.ItemRepository
}

// NewUseCase construye el workflow.
func NewUseCase(txRunner TxRunner, requestRepo repository.RequestRepository, itemRepo repository.ItemRepository) *UseCase {
	return &UseCase{txRunner: txRunner, requestRepo: requestRepo, itemRepo: itemRepo}
}

// CreateRequest crea una solicitud en PENDING. La cantidad queda fija.
func (uc *UseCase) CreateRequest(userID, itemID, quantity int64, message string) (int64, error) {
	if quantity <= 0 {
		return 0, domain.ErrInvalidQuantity
	}
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return 0, err
	}
	if item == nil {
		return 0, domain.ErrItemNotFound
	}
	now := time.Now()
	return uc.requestRepo.Create(&entity.Request{
		UserID:    userID,
		ItemID:    itemID,
		Quantity:  quantity,
		Message:   message,
		Status:    entity.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

// ListAll listado admin; status vacío devuelve todos los estados.
func (uc *UseCase) ListAll(status entity.RequestStatus, limit int) ([]*entity.Request, error) {
	if status != "" && !status.IsValid() {
		return nil, domain.ErrInvalidInput
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	return uc.requestRepo.ListAll(status, limit)
}

// ListByUser solicitudes propias de un usuario (vista staff).
func (uc *UseCase) ListByUser(userID int64, limit int) ([]*entity.Request, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return uc.requestRepo.ListByUser(userID, limit)
}

// PendingCount solicitudes en PENDING (badge del dashboard admin).
func (uc *UseCase) PendingCount() (int64, error) {
	return uc.requestRepo.CountPending()
}

// UpdateStatus aplica una transición de la máquina de estados:
// PENDING → APPROVED | REJECTED; APPROVED → COMPLETED. Bloquea la fila de la
// solicitud para serializar aprobadores concurrentes. En COMPLETED retira la
// cantidad solicitada vía el coordinador, en la misma transacción: si no hay
// stock suficiente, nada cambia y la solicitud sigue en APPROVED.
func (uc *UseCase) UpdateStatus(ctx context.Context, requestID int64, newStatus entity.RequestStatus, adminNote string, actorID int64) error {
	if !newStatus.IsValid() || newStatus == entity.StatusPending {
		return domain.ErrInvalidTransition
	}
	return uc.txRunner.RunRequest(ctx, func(
		itemRepo repository.ItemRepository,
		movementRepo repository.StockMovementRepository,
		requestRepo repository.RequestRepository,
	) error {
		req, err := requestRepo.GetForUpdate(requestID)
		if err != nil {
			return err
		}
		if req == nil {
			return domain.ErrNotFound
		}
		if !req.Status.CanTransitionTo(newStatus) {
			return domain.ErrInvalidTransition
		}
		if newStatus == entity.StatusCompleted {
			note := fmt.Sprintf("solicitud #%d completada", req.ID)
			if _, err := inventory.ApplyInTx(itemRepo, movementRepo,
				req.ItemID, actorID, entity.ActionRemove, req.Quantity, note, 0); err != nil {
				return err
			}
		}
		return requestRepo.UpdateStatus(req.ID, newStatus, adminNote)
	})
}
