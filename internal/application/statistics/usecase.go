// Package statistics contiene el motor de estadísticas: agregaciones de solo
// lectura sobre el ledger de movimientos, por bodega y ventana de días.
//
// Toda cifra se calcula recorriendo las entradas del ledger dentro de la
// ventana (nunca desde contadores derivados), de modo que cualquier reporte
// sea reproducible reproduciendo el ledger.
package statistics

import (
	"context"
	"sort"
	"time"

	"github.com/dronify/warehouse-api/internal/application/dto"
	"github.com/dronify/warehouse-api/internal/domain/entity"
	"github.com/dronify/warehouse-api/internal/domain/repository"
)

const (
	// DefaultDays ventana por defecto cuando el caller pide una no soportada.
	DefaultDays = 30

	reportTopLimit      = 5
	reportLowStockLimit = 10
	dateLayout          = "2006-01-02"
)

// UseCase motor de estadísticas. Lee ledger y catálogo; nunca los muta.
type UseCase struct {
	statsRepo repository.StatisticsRepository
	itemRepo  repository.ItemRepository
}

// NewUseCase construye el motor.
func NewUseCase(statsRepo repository.StatisticsRepository, itemRepo repository.ItemRepository) *UseCase {
	return &UseCase{statsRepo: statsRepo, itemRepo: itemRepo}
}

// ClampDays normaliza la ventana a los valores soportados {7, 30, 90}.
// Cualquier otro valor cae al default de 30.
func ClampDays(days int) int {
	switch days {
	case 7, 30, 90:
		return days
	}
	return DefaultDays
}

// window devuelve los movimientos de la bodega desde hace days días.
func (uc *UseCase) window(ctx context.Context, warehouseID int64, days int) ([]*entity.StockMovement, int, error) {
	days = ClampDays(days)
	since := time.Now().AddDate(0, 0, -days)
	movements, err := uc.statsRepo.MovementsInWindow(ctx, warehouseID, since)
	if err != nil {
		return nil, days, err
	}
	return movements, days, nil
}

// Summary resumen global de la ventana: ítems activos, transacciones,
// unidades agregadas/retiradas, usuarios y días con actividad.
// Los RETURN cuentan como transacción pero no suman en added/removed.
func (uc *UseCase) Summary(ctx context.Context, warehouseID int64, days int) (dto.SummaryDTO, error) {
	movements, _, err := uc.window(ctx, warehouseID, days)
	if err != nil {
		return dto.SummaryDTO{}, err
	}
	active, err := uc.statsRepo.ActiveItemCount(ctx, warehouseID)
	if err != nil {
		return dto.SummaryDTO{}, err
	}

	users := make(map[int64]struct{})
	daysSeen := make(map[string]struct{})
	out := dto.SummaryDTO{ActiveItems: active}
	for _, m := range movements {
		out.TotalTransactions++
		switch m.Action {
		case entity.ActionAdd:
			out.TotalAdded += m.Quantity
		case entity.ActionRemove:
			out.TotalRemoved += m.Quantity
		}
		users[m.UserID] = struct{}{}
		daysSeen[m.CreatedAt.Format(dateLayout)] = struct{}{}
	}
	out.ActiveUsers = int64(len(users))
	out.ActiveDays = int64(len(daysSeen))
	return out, nil
}

// QuantityChanges movimiento neto por ítem en la ventana. Solo ítems con al
// menos un evento; ordenados por eventos descendente y luego por nombre.
func (uc *UseCase) QuantityChanges(ctx context.Context, warehouseID int64, days int) ([]dto.QuantityChangeDTO, error) {
	movements, _, err := uc.window(ctx, warehouseID, days)
	if err != nil {
		return nil, err
	}
	items, err := uc.itemIndex(ctx, warehouseID)
	if err != nil {
		return nil, err
	}

	byItem := make(map[int64]*dto.QuantityChangeDTO)
	for _, m := range movements {
		item, ok := items[m.ItemID]
		if !ok {
			continue
		}
		row, ok := byItem[m.ItemID]
		if !ok {
			row = &dto.QuantityChangeDTO{
				ItemID:          item.ID,
				Name:            item.Name,
				Type:            string(item.Type),
				SKU:             item.SKU,
				CurrentQuantity: item.Quantity,
			}
			byItem[m.ItemID] = row
		}
		row.TotalEvents++
		switch m.Action {
		case entity.ActionAdd:
			row.TotalAdded += m.Quantity
		case entity.ActionRemove:
			row.TotalRemoved += m.Quantity
		}
	}

	out := make([]dto.QuantityChangeDTO, 0, len(byItem))
	for _, row := range byItem {
		out = append(out, *row)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].TotalEvents != out[j].TotalEvents {
			return out[i].TotalEvents > out[j].TotalEvents
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

// TopAdded ranking de ítems por unidades agregadas (solo ADD), descendente.
func (uc *UseCase) TopAdded(ctx context.Context, warehouseID int64, days, limit int) ([]dto.TopItemDTO, error) {
	return uc.topByAction(ctx, warehouseID, days, limit, entity.ActionAdd)
}

// TopRemoved ranking de ítems por unidades retiradas (solo REMOVE), descendente.
func (uc *UseCase) TopRemoved(ctx context.Context, warehouseID int64, days, limit int) ([]dto.TopItemDTO, error) {
	return uc.topByAction(ctx, warehouseID, days, limit, entity.ActionRemove)
}

func (uc *UseCase) topByAction(ctx context.Context, warehouseID int64, days, limit int, action entity.Action) ([]dto.TopItemDTO, error) {
	if limit <= 0 {
		limit = reportTopLimit
	}
	movements, _, err := uc.window(ctx, warehouseID, days)
	if err != nil {
		return nil, err
	}
	items, err := uc.itemIndex(ctx, warehouseID)
	if err != nil {
		return nil, err
	}

	byItem := make(map[int64]*dto.TopItemDTO)
	for _, m := range movements {
		if m.Action != action {
			continue
		}
		item, ok := items[m.ItemID]
		if !ok {
			continue
		}
		row, ok := byItem[m.ItemID]
		if !ok {
			row = &dto.TopItemDTO{Name: item.Name, Type: string(item.Type), SKU: item.SKU}
			byItem[m.ItemID] = row
		}
		row.Quantity += m.Quantity
		row.Events++
	}

	out := make([]dto.TopItemDTO, 0, len(byItem))
	for _, row := range byItem {
		out = append(out, *row)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Quantity != out[j].Quantity {
			return out[i].Quantity > out[j].Quantity
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// ActivityByDay actividad por día calendario, más recientes primero.
func (uc *UseCase) ActivityByDay(ctx context.Context, warehouseID int64, days int) ([]dto.DailyActivityDTO, error) {
	movements, _, err := uc.window(ctx, warehouseID, days)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string]*dto.DailyActivityDTO)
	for _, m := range movements {
		day := m.CreatedAt.Format(dateLayout)
		row, ok := byDay[day]
		if !ok {
			row = &dto.DailyActivityDTO{Date: day}
			byDay[day] = row
		}
		row.Transactions++
		switch m.Action {
		case entity.ActionAdd:
			row.Added += m.Quantity
		case entity.ActionRemove:
			row.Removed += m.Quantity
		}
	}

	out := make([]dto.DailyActivityDTO, 0, len(byDay))
	for _, row := range byDay {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}

// ActivityByType actividad por categoría de ítem. Incluye categorías con
// ítems pero sin eventos en la ventana; ordenadas por eventos descendente y
// luego por categoría.
func (uc *UseCase) ActivityByType(ctx context.Context, warehouseID int64, days int) ([]dto.TypeActivityDTO, error) {
	movements, _, err := uc.window(ctx, warehouseID, days)
	if err != nil {
		return nil, err
	}
	items, err := uc.itemIndex(ctx, warehouseID)
	if err != nil {
		return nil, err
	}

	byType := make(map[string]*dto.TypeActivityDTO)
	for _, item := range items {
		t := string(item.Type)
		row, ok := byType[t]
		if !ok {
			row = &dto.TypeActivityDTO{Type: t}
			byType[t] = row
		}
		row.ItemCount++
	}
	for _, m := range movements {
		item, ok := items[m.ItemID]
		if !ok {
			continue
		}
		row := byType[string(item.Type)]
		row.TotalEvents++
		switch m.Action {
		case entity.ActionAdd:
			row.TotalAdded += m.Quantity
		case entity.ActionRemove:
			row.TotalRemoved += m.Quantity
		}
	}

	out := make([]dto.TypeActivityDTO, 0, len(byType))
	for _, row := range byType {
		out = append(out, *row)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].TotalEvents != out[j].TotalEvents {
			return out[i].TotalEvents > out[j].TotalEvents
		}
		return out[i].Type < out[j].Type
	})
	return out, nil
}

// Report reporte compuesto de administración: resumen, actividad diaria y
// por categoría, rankings (top 5) y stock bajo (top 10).
func (uc *UseCase) Report(ctx context.Context, warehouseID int64, days int) (*dto.ReportDTO, error) {
	days = ClampDays(days)
	summary, err := uc.Summary(ctx, warehouseID, days)
	if err != nil {
		return nil, err
	}
	daily, err := uc.ActivityByDay(ctx, warehouseID, days)
	if err != nil {
		return nil, err
	}
	byType, err := uc.ActivityByType(ctx, warehouseID, days)
	if err != nil {
		return nil, err
	}
	topAdded, err := uc.TopAdded(ctx, warehouseID, days, reportTopLimit)
	if err != nil {
		return nil, err
	}
	topRemoved, err := uc.TopRemoved(ctx, warehouseID, days, reportTopLimit)
	if err != nil {
		return nil, err
	}
	lowStock, err := uc.itemRepo.ListLowStock(warehouseID, reportLowStockLimit)
	if err != nil {
		return nil, err
	}
	low := make([]dto.LowStockItemDTO, 0, len(lowStock))
	for _, it := range lowStock {
		low = append(low, dto.LowStockItemDTO{
			Name:        it.Name,
			Type:        string(it.Type),
			Quantity:    it.Quantity,
			MinQuantity: it.MinQuantity,
		})
	}
	return &dto.ReportDTO{
		Days:          days,
		Summary:       summary,
		DailyActivity: daily,
		TypeActivity:  byType,
		TopAdded:      topAdded,
		TopRemoved:    topRemoved,
		LowStock:      low,
	}, nil
}

// itemIndex catálogo de la bodega indexado por ID.
func (uc *UseCase) itemIndex(ctx context.Context, warehouseID int64) (map[int64]*entity.Item, error) {
	items, err := uc.statsRepo.ItemsByWarehouse(ctx, warehouseID)
	if err != nil {
		return nil, err
	}
	index := make(map[int64]*entity.Item, len(items))
	for _, it := range items {
		index[it.ID] = it
	}
	return index, nil
}
