package inventory_test

import (
	"context"
	"sync"

	"github.com/dronify/warehouse-api/internal/domain/entity"
	"github.com/dronify/warehouse-api/internal/domain/repository"
)

// memStore estado compartido de los fakes en memoria. El mutex serializa las
// transacciones igual que lo hace el lock de fila en Postgres.
type memStore struct {
	mu             sync.Mutex
	items          map[int64]*entity.Item
	movements      []*entity.StockMovement
	warehouses     map[int64]*entity.Warehouse
	nextItemID     int64
	nextMovementID int64
}

func newMemStore() *memStore {
	return &memStore{
		items:          make(map[int64]*entity.Item),
		warehouses:     make(map[int64]*entity.Warehouse),
		nextItemID:     1,
		nextMovementID: 1,
	}
}

func (s *memStore) addWarehouse(id int64, name string) {
	s.warehouses[id] = &entity.Warehouse{ID: id, Name: name}
}

func (s *memStore) addItem(item *entity.Item) *entity.Item {
	if item.ID == 0 {
		item.ID = s.nextItemID
		s.nextItemID++
	} else if item.ID >= s.nextItemID {
		s.nextItemID = item.ID + 1
	}
	s.items[item.ID] = item
	return item
}

// snapshot copia el estado para poder simular rollback.
func (s *memStore) snapshot() (map[int64]*entity.Item, []*entity.StockMovement, int64, int64) {
	items := make(map[int64]*entity.Item, len(s.items))
	for id, it := range s.items {
		cp := *it
		items[id] = &cp
	}
	movements := make([]*entity.StockMovement, len(s.movements))
	copy(movements, s.movements)
	return items, movements, s.nextItemID, s.nextMovementID
}

func (s *memStore) restore(items map[int64]*entity.Item, movements []*entity.StockMovement, nextItem, nextMovement int64) {
	s.items = items
	s.movements = movements
	s.nextItemID = nextItem
	s.nextMovementID = nextMovement
}

// memItemRepo implementación en memoria de repository.ItemRepository.
type memItemRepo struct{ s *memStore }

var _ repository.ItemRepository = (*memItemRepo)(nil)

func (r *memItemRepo) Create(item *entity.Item) error {
	r.s.addItem(item)
	return nil
}

func (r *memItemRepo) GetByID(id int64) (*entity.Item, error) {
	item, ok := r.s.items[id]
	if !ok {
		return nil, nil
	}
	cp := *item
	return &cp, nil
}

func (r *memItemRepo) GetByScanCode(warehouseID int64, scanCode string) (*entity.Item, error) {
	for _, item := range r.s.items {
		if item.WarehouseID == warehouseID && item.ScanCode == scanCode {
			cp := *item
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memItemRepo) GetForUpdate(id int64) (*entity.Item, error) {
	return r.GetByID(id)
}

func (r *memItemRepo) UpdateQuantity(id int64, quantity int64) error {
	item, ok := r.s.items[id]
	if !ok {
		return nil
	}
	item.Quantity = quantity
	return nil
}

func (r *memItemRepo) ListActive(warehouseID int64) ([]*entity.Item, error) {
	var out []*entity.Item
	for _, item := range r.s.items {
		if item.WarehouseID == warehouseID && item.Quantity > 0 {
			cp := *item
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memItemRepo) ListLowStock(warehouseID int64, limit int) ([]*entity.Item, error) {
	var out []*entity.Item
	for _, item := range r.s.items {
		if item.WarehouseID == warehouseID && item.IsLowStock() {
			cp := *item
			out = append(out, &cp)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memItemRepo) DashboardTotals(warehouseID int64) (int64, int64, error) {
	var items, quantity int64
	for _, item := range r.s.items {
		if item.WarehouseID == warehouseID {
			items++
			quantity += item.Quantity
		}
	}
	return items, quantity, nil
}

// memMovementRepo implementación en memoria del ledger.
type memMovementRepo struct{ s *memStore }

var _ repository.StockMovementRepository = (*memMovementRepo)(nil)

func (r *memMovementRepo) Create(movement *entity.StockMovement) error {
	movement.ID = r.s.nextMovementID
	r.s.nextMovementID++
	cp := *movement
	r.s.movements = append(r.s.movements, &cp)
	return nil
}

func (r *memMovementRepo) ListByItem(itemID int64, limit int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for i := len(r.s.movements) - 1; i >= 0; i-- {
		if r.s.movements[i].ItemID == itemID {
			cp := *r.s.movements[i]
			out = append(out, &cp)
			if limit > 0 && len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

// memWarehouseRepo implementación en memoria de repository.WarehouseRepository.
type memWarehouseRepo struct{ s *memStore }

var _ repository.WarehouseRepository = (*memWarehouseRepo)(nil)

func (r *memWarehouseRepo) Create(warehouse *entity.Warehouse) (int64, error) {
	id := int64(len(r.s.warehouses) + 1)
	warehouse.ID = id
	r.s.warehouses[id] = warehouse
	return id, nil
}

func (r *memWarehouseRepo) GetByID(id int64) (*entity.Warehouse, error) {
	w, ok := r.s.warehouses[id]
	if !ok {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

func (r *memWarehouseRepo) List() ([]*entity.Warehouse, error) {
	var out []*entity.Warehouse
	for _, w := range r.s.warehouses {
		cp := *w
		out = append(out, &cp)
	}
	return out, nil
}

// memTxRunner serializa transacciones con el mutex del store y deshace los
// cambios si fn devuelve error, imitando el commit-o-rollback real.
type memTxRunner struct{ s *memStore }

func (t *memTxRunner) Run(ctx context.Context, fn func(
	itemRepo repository.ItemRepository,
	movementRepo repository.StockMovementRepository,
) error) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	items, movements, nextItem, nextMovement := t.s.snapshot()
	if err := fn(&memItemRepo{s: t.s}, &memMovementRepo{s: t.s}); err != nil {
		t.s.restore(items, movements, nextItem, nextMovement)
		return err
	}
	return nil
}
