package inventory

import (
	"context"

	"github.com/dronify/warehouse-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza commit-o-rollback en toda salida:
// es la única frontera de atomicidad del coordinador de movimientos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.ItemRepository,
		movementRepo repository.StockMovementRepository,
	) error) error
}
