package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dronify/warehouse-api/internal/application/dto"
	"github.com/dronify/warehouse-api/internal/domain"
	"github.com/dronify/warehouse-api/internal/domain/entity"
	"github.com/dronify/warehouse-api/internal/domain/repository"
)

const (
	defaultMinQuantity = 5
	defaultEventLimit  = 20
	defaultLowStockTop = 10
)

// CatalogUseCase consultas y altas del catálogo de ítems. Las lecturas van
// directo contra los repositorios (sin bloqueo); el alta pasa por el
// coordinador para que la cantidad inicial también quede en el ledger.
type CatalogUseCase struct {
	txRunner      TxRunner
	itemRepo      repository.ItemRepository
	movementRepo  repository.StockMovementRepository
	warehouseRepo repository.WarehouseRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(
	txRunner TxRunner,
	itemRepo repository.ItemRepository,
	movementRepo repository.StockMovementRepository,
	warehouseRepo repository.WarehouseRepository,
) *CatalogUseCase {
	return &CatalogUseCase{
		txRunner:      txRunner,
		itemRepo:      itemRepo,
		movementRepo:  movementRepo,
		warehouseRepo: warehouseRepo,
	}
}

// AddItemDTO entrada para registrar un ítem nuevo en el catálogo.
type AddItemDTO struct {
	WarehouseID int64
	Name        string
	Type        entity.ItemType
	Description string
	Quantity    int64
	MinQuantity int64
	Location    string
	ScanCode    string
	UserID      int64
}

// AddItem registra un ítem con SKU generado. Si trae cantidad inicial, esta
// se aplica como un movimiento ADD dentro de la misma transacción, de modo
// que la invariante cantidad = suma de deltas del ledger valga desde el alta.
func (uc *CatalogUseCase) AddItem(ctx context.Context, input AddItemDTO) (*entity.Item, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	if !input.Type.IsValid() {
		return nil, domain.ErrInvalidInput
	}
	if input.Quantity < 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if input.MinQuantity <= 0 {
		input.MinQuantity = defaultMinQuantity
	}
	wh, err := uc.warehouseRepo.GetByID(input.WarehouseID)
	if err != nil {
		return nil, err
	}
	if wh == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	item := &entity.Item{
		SKU:         generateSKU(),
		Name:        strings.TrimSpace(input.Name),
		Type:        input.Type,
		Description: input.Description,
		Quantity:    0,
		MinQuantity: input.MinQuantity,
		Location:    input.Location,
		WarehouseID: input.WarehouseID,
		ScanCode:    input.ScanCode,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	err = uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		if err := itemRepo.Create(item); err != nil {
			return err
		}
		if input.Quantity == 0 {
			return nil
		}
		r, err := ApplyInTx(itemRepo, movementRepo, item.ID, input.UserID,
			entity.ActionAdd, input.Quantity, "alta inicial de inventario", input.WarehouseID)
		if err != nil {
			return err
		}
		item.Quantity = r.NewQuantity
		return nil
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// generateSKU genera un SKU único: ITEM + 8 hex en mayúsculas.
func generateSKU() string {
	return "ITEM" + strings.ToUpper(uuid.New().String()[:8])
}

// GetItemByID obtiene un ítem por ID. Devuelve nil si no existe.
func (uc *CatalogUseCase) GetItemByID(id int64) (*entity.Item, error) {
	return uc.itemRepo.GetByID(id)
}

// GetItemByScanCode obtiene un ítem por código QR dentro de una bodega.
// Devuelve nil si no existe.
func (uc *CatalogUseCase) GetItemByScanCode(warehouseID int64, scanCode string) (*entity.Item, error) {
	if scanCode == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.itemRepo.GetByScanCode(warehouseID, scanCode)
}

// ListInventory lista los ítems con existencia (cantidad > 0) de la bodega,
// ordenados por nombre.
func (uc *CatalogUseCase) ListInventory(warehouseID int64) ([]*entity.Item, error) {
	return uc.itemRepo.ListActive(warehouseID)
}

// LowStock reporte de ítems bajo su mínimo (0 < cantidad < mínimo),
// ordenados por severidad. limit <= 0 aplica el tope por defecto.
func (uc *CatalogUseCase) LowStock(warehouseID int64, limit int) ([]dto.LowStockItemDTO, error) {
	if limit <= 0 {
		limit = defaultLowStockTop
	}
	items, err := uc.itemRepo.ListLowStock(warehouseID, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LowStockItemDTO, 0, len(items))
	for _, it := range items {
		out = append(out, dto.LowStockItemDTO{
			Name:        it.Name,
			Type:        string(it.Type),
			Quantity:    it.Quantity,
			MinQuantity: it.MinQuantity,
		})
	}
	return out, nil
}

// ItemEvents últimos movimientos del ledger para un ítem, más recientes
// primero. limit <= 0 aplica el tope por defecto.
func (uc *CatalogUseCase) ItemEvents(itemID int64, limit int) ([]*entity.StockMovement, error) {
	if limit <= 0 {
		limit = defaultEventLimit
	}
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}
	return uc.movementRepo.ListByItem(itemID, limit)
}

// DashboardTotals totales de ítems y unidades de la bodega.
func (uc *CatalogUseCase) DashboardTotals(warehouseID int64) (items, quantity int64, err error) {
	return uc.itemRepo.DashboardTotals(warehouseID)
}
