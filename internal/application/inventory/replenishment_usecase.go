package inventory

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/domain/inventory"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

// targetFactor stock objetivo de reposición en múltiplos del mínimo.
var targetFactor = decimal.NewFromInt(2)

// ReplenishmentUseCase genera la lista de compras para los insumos en bajo o reorden.
type ReplenishmentUseCase struct {
	itemRepo repository.InventoryItemRepository
}

// NewReplenishmentUseCase construye el caso de uso de reposición.
func NewReplenishmentUseCase(itemRepo repository.InventoryItemRepository) *ReplenishmentUseCase {
	return &ReplenishmentUseCase{itemRepo: itemRepo}
}

// GenerateReplenishmentList sugiere cuánto comprar de cada insumo con alerta para llevarlo
// a 2x su mínimo. Ordena primero los de estado bajo y luego por déficit relativo.
func (uc *ReplenishmentUseCase) GenerateReplenishmentList(ctx context.Context, category string) ([]dto.ReplenishmentSuggestionDTO, error) {
	items, err := uc.itemRepo.List(ctx, repository.InventoryItemFilter{Category: category})
	if err != nil {
		return nil, err
	}
	suggestions := make([]dto.ReplenishmentSuggestionDTO, 0)
	for _, it := range items {
		status := inventory.EvaluateStock(it.Quantity, it.MinimumQuantity)
		if status == inventory.StatusOK || !it.MinimumQuantity.IsPositive() {
			continue
		}
		target := it.MinimumQuantity.Mul(targetFactor)
		qty := target.Sub(it.Quantity)
		if !qty.IsPositive() {
			continue
		}
		suggestions = append(suggestions, dto.ReplenishmentSuggestionDTO{
			ItemID:            it.ID,
			Name:              it.Name,
			Unit:              it.Unit,
			Supplier:          it.Supplier,
			Status:            string(status),
			CurrentStock:      it.Quantity,
			MinimumQuantity:   it.MinimumQuantity,
			TargetStock:       target,
			SuggestedQuantity: qty,
			UnitCost:          it.UnitCost,
			EstimatedCost:     inventory.StockValue(qty, it.UnitCost),
		})
	}

	// déficit relativo = (mínimo - actual) / mínimo
	deficit := func(s dto.ReplenishmentSuggestionDTO) decimal.Decimal {
		return s.MinimumQuantity.Sub(s.CurrentStock).Div(s.MinimumQuantity)
	}
	sort.SliceStable(suggestions, func(i, j int) bool {
		a, b := suggestions[i], suggestions[j]
		if a.Status != b.Status {
			return a.Status == string(inventory.StatusBajo)
		}
		da, db := deficit(a), deficit(b)
		if !da.Equal(db) {
			return da.GreaterThan(db)
		}
		return a.EstimatedCost.GreaterThan(b.EstimatedCost)
	})
	for i := range suggestions {
		suggestions[i].Priority = i + 1
	}
	return suggestions, nil
}
