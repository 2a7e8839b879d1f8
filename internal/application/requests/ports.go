package requests

import (
	"context"

	"github.com/dronify/warehouse-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con los
// repositorios del workflow atados a esa tx. Completar una solicitud muta la
// solicitud, la cantidad del ítem y el ledger en una sola unidad atómica.
type TxRunner interface {
	RunRequest(ctx context.Context, fn func(
		itemRepo repository.ItemRepository,
		movementRepo repository.StockMovementRepository,
		requestRepo repository.RequestRepository,
	) error) error
}
