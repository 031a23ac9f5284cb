package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

// StockValue valor del stock de un insumo a su costo unitario.
func StockValue(quantity, unitCost decimal.Decimal) decimal.Decimal {
	if !quantity.IsPositive() || unitCost.IsNegative() {
		return decimal.Zero
	}
	return quantity.Mul(unitCost)
}

// Summary resumen de alertas y valor del inventario.
type Summary struct {
	TotalItems   int
	LowStock     int
	ReorderStock int
	TotalValue   decimal.Decimal
}

// Summarize recorre los insumos y cuenta cuántos están en bajo y en reorden.
func Summarize(items []*entity.InventoryItem) Summary {
	s := Summary{TotalValue: decimal.Zero}
	for _, it := range items {
		if it == nil {
			continue
		}
		s.TotalItems++
		switch EvaluateStock(it.Quantity, it.MinimumQuantity) {
		case StatusBajo:
			s.LowStock++
		case StatusReorden:
			s.ReorderStock++
		}
		s.TotalValue = s.TotalValue.Add(StockValue(it.Quantity, it.UnitCost))
	}
	return s
}
